// Package session owns the client's session and daily-ticket state: who is
// logged in, whether today's meal ticket has been claimed, and how cached
// state is reconciled against the backend and the local preference store.
//
// The local calendar-date comparison is authoritative for clearing the
// claim flag (a new day resets it, even offline); the backend is
// authoritative for setting it. Refresh responses are applied only if no
// later write (login, register, claim, logout) has landed since they were
// issued.
package session
