// Package prefs persists the client's string key-value preferences: the
// logged-in identity fields and the last ticket date. Absence of the
// logged_email key means "logged out"; Clear is the persisted effect of
// logging out.
package prefs

import "context"

// Well-known preference keys.
const (
	KeyLoggedEmail    = "logged_email"
	KeyUserName       = "user_name"
	KeyUserNationalID = "user_national_id"
	KeyLastTicketDate = "last_ticket_date"
)

type Repository interface {
	// Get returns the value for key, or ("", nil) when the key is absent.
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value string) error
	Delete(ctx context.Context, key string) error
	Clear(ctx context.Context) error
}
