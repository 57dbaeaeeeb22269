package cli

import (
	"context"
	"errors"
	"os"

	"github.com/quickticket/quickticket-cli/internal/client/session"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Login prompts for credentials and submits them to the session state
// machine. Field-level validation errors are printed per field; gateway
// failures surface through the effect printer.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout, "Enter password")
	if err != nil {
		return err
	}
	defer wipe(password)

	if err := a.session.Login(ctx, email, string(password)); err != nil {
		printFieldErrors(err)
		return err
	}
	return nil
}

// Register prompts for the registration form and submits it. Post-success
// behavior (session replacement, persistence, ticket refresh) lives in the
// state machine.
func (a *App) Register(ctx context.Context) error {
	name, err := getSimpleText(a.reader, "Enter full name", os.Stdout)
	if err != nil {
		return err
	}
	nationalID, err := getSimpleText(a.reader, "Enter national id", os.Stdout)
	if err != nil {
		return err
	}
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout, "Enter password (min 6 characters)")
	if err != nil {
		return err
	}
	defer wipe(password)

	repeat, err := getPassword(os.Stdout, "Repeat password")
	if err != nil {
		return err
	}
	defer wipe(repeat)

	if err := a.session.Register(ctx, name, nationalID, email, string(password), string(repeat)); err != nil {
		printFieldErrors(err)
		return err
	}
	return nil
}

// Logout clears the session. It cannot fail.
func (a *App) Logout(ctx context.Context) error {
	a.session.Logout(ctx)
	printlnFn("Logged out")
	return nil
}

// printFieldErrors renders field-scoped validation messages; any other
// error is left to the effect printer.
func printFieldErrors(err error) {
	var verr *session.ValidationError
	if !errors.As(err, &verr) {
		return
	}
	for field, msg := range verr.Fields {
		printlnFn(field + ": " + msg)
	}
}
