package cli

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/quickticket/quickticket-cli/internal/client/models"
)

// Ticket shows today's claim state and, if the ticket is still available,
// offers to claim it. A successful claim renders the validity countdown.
func (a *App) Ticket(ctx context.Context) error {
	if !a.session.IsLoggedIn() {
		printlnFn("Please login first")
		return nil
	}

	a.session.EnsureTicketStateForToday(ctx)

	ticket := a.session.Ticket()
	if ticket.UsedToday {
		printlnFn("Today's ticket has already been claimed")
		return nil
	}

	answer, err := getSimpleText(a.reader, "Claim today's ticket? (y/n)", os.Stdout)
	if err != nil {
		return err
	}
	if answer != "y" && answer != "yes" {
		return nil
	}

	if err := a.session.ClaimTicket(ctx); err != nil {
		return err
	}

	RunCountdown(ctx, os.Stdout, a.config.CountdownSeconds, time.Second)
	return nil
}

// Status prints the current session identity and ticket state.
func (a *App) Status(ctx context.Context) error {
	if !a.session.IsLoggedIn() {
		printlnFn("Not logged in")
		return nil
	}

	user := a.session.User()
	ticket := a.session.Ticket()

	printlnFn(fmt.Sprintf("Name:        %s", user.Name))
	printlnFn(fmt.Sprintf("National id: %s", user.NationalID))
	printlnFn(fmt.Sprintf("Email:       %s", user.Email))
	if ticket.UsedToday {
		printlnFn("Ticket:      claimed today")
	} else if ticket.LastTicketDate != "" && ticket.LastTicketDate != models.Day(time.Now()) {
		printlnFn(fmt.Sprintf("Ticket:      available (last claimed %s)", ticket.LastTicketDate))
	} else {
		printlnFn("Ticket:      available")
	}
	return nil
}
