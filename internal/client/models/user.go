// Package models defines client-side data models shared by the QuickTicket
// CLI: the authenticated user, the daily ticket state, and the catalog/cart
// payloads exchanged with the backend.
package models

// User is the authenticated identity held by the client. It mirrors the
// identity payload returned by the backend on login and register.
type User struct {
	Name       string `json:"name"`
	NationalID string `json:"nationalId"`
	Email      string `json:"email"`
}

// LocalUser is an account cached in the local database after a successful
// registration. PasswordHash is a bcrypt hash; the raw password is never
// stored.
type LocalUser struct {
	ID           int64
	Name         string
	Email        string
	PasswordHash string
}
