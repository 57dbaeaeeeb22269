package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	Ticket(ctx context.Context) error
	Status(ctx context.Context) error
	Products(ctx context.Context) error
	Cart(ctx context.Context) error
	AddToCart(ctx context.Context) error
	RemoveFromCart(ctx context.Context) error
}

// runREPL starts a simple read-eval-print loop for the QuickTicket CLI.
//
// It reads a line from the provided scanner, parses the first token as the
// command, and dispatches to methods on 'a'. Unknown commands are reported
// back to the user. The loop exits on scanner EOF or when the user types
// "exit" or "quit".
//
// Commands while not logged in: help, register, login, products, exit.
// Commands while logged in: help, ticket, status, products, cart, add,
// remove, logout, exit.
//
// Any errors returned by command handlers are ignored here; handlers report
// their own errors (directly or through the effect printer). This keeps the
// REPL loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("qt> %s > ", statusFn()))
		if !scanner.Scan() {
			return
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn("Available commands: (t)icket, status, products, cart, add, remove, logout, exit")
			} else {
				printlnFn("Available commands: register, login, products, exit")
			}

		case "register":
			_ = a.Register(ctx)

		case "login":
			_ = a.Login(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "t", "ticket":
			_ = a.Ticket(ctx)

		case "status":
			_ = a.Status(ctx)

		case "products":
			_ = a.Products(ctx)

		case "cart":
			_ = a.Cart(ctx)

		case "add":
			_ = a.AddToCart(ctx)

		case "remove":
			_ = a.RemoveFromCart(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
