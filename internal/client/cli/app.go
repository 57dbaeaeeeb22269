// Package cli implements the interactive QuickTicket terminal client:
// a REPL over the session state machine, the product catalog, and the cart.
package cli

import (
	"bufio"
	"context"
	"database/sql"
	"log/slog"
	"net/http"
	"os"
	"time"

	_ "modernc.org/sqlite"

	"github.com/quickticket/quickticket-cli/internal/client/config"
	"github.com/quickticket/quickticket-cli/internal/client/gateway"
	"github.com/quickticket/quickticket-cli/internal/client/services"
	"github.com/quickticket/quickticket-cli/internal/client/session"
	"github.com/quickticket/quickticket-cli/internal/client/storage"
	"github.com/quickticket/quickticket-cli/internal/logging"
)

type App struct {
	config  *config.Config
	session *session.Manager
	catalog services.CatalogService
	cart    services.CartService
	client  gateway.Client
	db      *sql.DB
	log     logging.Logger
	reader  *bufio.Reader
}

func NewApp(c *config.Config) (*App, error) {
	ctx := context.Background()

	logger := logging.NewSlogLogger(slog.New(slog.NewTextHandler(os.Stderr, nil))).With("component", "cli")

	db, err := storage.InitDatabase(ctx, c.DatabasePath)
	if err != nil {
		logger.Error(ctx, "error initializing database", "error", err)
		return nil, err
	}

	apiClient := gateway.NewRESTClient(c.ServerBaseURL, &http.Client{Timeout: c.RequestTimeout})

	sm := session.NewManager(apiClient, db, logger)

	return &App{
		config:  c,
		session: sm,
		catalog: services.NewCatalogService(apiClient),
		cart:    services.NewCartService(apiClient),
		client:  apiClient,
		db:      db,
		log:     logger,
		reader:  bufio.NewReader(os.Stdin),
	}, nil
}

// Run restores any persisted session, starts the effect printer and the
// background ticket watcher, and enters the REPL. It returns when the user
// exits or stdin closes.
func (a *App) Run(ctx context.Context) error {
	defer a.Close()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	if err := a.session.Initialize(ctx); err != nil {
		return err
	}

	go a.printEffects(ctx)
	go a.StartTicketWatcher(ctx, a.config.TicketRefreshInterval)

	runREPL(ctx, a, a.getStatus, bufio.NewScanner(os.Stdin))
	return nil
}

func (a *App) Close() {
	_ = a.client.Close()
	_ = a.db.Close()
}

func (a *App) isLoggedIn() bool {
	return a.session.IsLoggedIn()
}

func (a *App) getStatus() string {
	user := a.session.User()
	if user.Email == "" {
		return ""
	}
	return "(" + user.Email + ")"
}

// printEffects drains the state machine's one-shot signals and renders them
// for the user.
func (a *App) printEffects(ctx context.Context) {
	for {
		select {
		case e := <-a.session.Effects():
			switch e.Kind {
			case session.EffectLoginSucceeded:
				printlnFn("Logged in!")
			case session.EffectRegisterSucceeded:
				printlnFn("Account created!")
			case session.EffectMessage:
				printlnFn(e.Message)
			}
		case <-ctx.Done():
			return
		}
	}
}

// StartTicketWatcher periodically re-evaluates the daily ticket state while
// the app runs. Besides keeping the claim flag fresh, this picks up the
// midnight rollover without waiting for a user action.
func (a *App) StartTicketWatcher(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			if a.session.IsLoggedIn() {
				a.session.EnsureTicketStateForToday(ctx)
			}
		case <-ctx.Done():
			return
		}
	}
}
