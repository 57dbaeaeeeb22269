package session

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"sync"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/quickticket/quickticket-cli/internal/client/gateway"
	"github.com/quickticket/quickticket-cli/internal/client/models"
	"github.com/quickticket/quickticket-cli/internal/client/repositories/prefs"
	"github.com/quickticket/quickticket-cli/internal/client/repositories/users"
	"github.com/quickticket/quickticket-cli/internal/dbx"
	"github.com/quickticket/quickticket-cli/internal/logging"
)

// ErrNotLoggedIn is returned by operations that require an active session.
var ErrNotLoggedIn = errors.New("not logged in")

// Messages surfaced to the user through Message effects.
const (
	MsgInvalidCredentials = "invalid credentials"
	MsgEmailInUse         = "email already in use"
	MsgTicketGenerated    = "ticket generated successfully"
)

// Manager is the session & ticket state machine. It owns the in-memory
// session and daily-ticket state, mirrors them to the local preference
// store, and reconciles them against the backend.
//
// All state mutations happen under one mutex, so no reader ever observes
// a half-updated session/ticket pair. The gen counter is bumped by every
// session-level write (login, register, claim, logout); a refresh response
// is applied only if the generation captured when it was issued is still
// current, which also discards responses that land after a logout.
type Manager struct {
	gateway gateway.Client
	db      *sql.DB
	log     logging.Logger
	now     func() time.Time

	mu       sync.Mutex
	loggedIn bool
	user     models.User
	ticket   models.TicketState
	gen      uint64

	effects chan Effect
}

// Option configures a Manager.
type Option func(*Manager)

// WithClock overrides the manager's time source. Tests use it to control
// what "today" means.
func WithClock(now func() time.Time) Option {
	return func(m *Manager) { m.now = now }
}

// NewManager builds a state machine over the given backend client and
// local database.
func NewManager(gw gateway.Client, db *sql.DB, log logging.Logger, opts ...Option) *Manager {
	m := &Manager{
		gateway: gw,
		db:      db,
		log:     log,
		now:     time.Now,
		effects: make(chan Effect, effectBuffer),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

func (m *Manager) prefsRepo() prefs.Repository {
	return prefs.NewSQLiteRepository(m.db)
}

func (m *Manager) usersRepo() users.Repository {
	return users.NewSQLiteRepository(m.db)
}

// IsLoggedIn reports whether a session is active.
func (m *Manager) IsLoggedIn() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.loggedIn
}

// User returns a copy of the current session identity. Zero value when
// logged out.
func (m *Manager) User() models.User {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.user
}

// Ticket returns a copy of the current ticket state.
func (m *Manager) Ticket() models.TicketState {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.ticket
}

// Initialize restores a persisted session, if any, without waiting on the
// network, then triggers a background ticket refresh. Missing fields
// default to empty strings; no error is surfaced for partial data.
func (m *Manager) Initialize(ctx context.Context) error {
	repo := m.prefsRepo()

	email, err := repo.Get(ctx, prefs.KeyLoggedEmail)
	if err != nil {
		return err
	}
	if email == "" {
		return nil
	}

	name, err := repo.Get(ctx, prefs.KeyUserName)
	if err != nil {
		m.log.Warn(ctx, "failed to read persisted user name", "error", err)
	}
	nationalID, err := repo.Get(ctx, prefs.KeyUserNationalID)
	if err != nil {
		m.log.Warn(ctx, "failed to read persisted national id", "error", err)
	}
	lastTicketDate, err := repo.Get(ctx, prefs.KeyLastTicketDate)
	if err != nil {
		m.log.Warn(ctx, "failed to read persisted ticket date", "error", err)
	}

	m.mu.Lock()
	m.user = models.User{Name: name, NationalID: nationalID, Email: email}
	m.loggedIn = true
	// Only the date is persisted; the claim flag stays false until either
	// a refresh confirms it or a claim sets it.
	m.ticket = models.TicketState{LastTicketDate: lastTicketDate}
	m.gen++
	m.mu.Unlock()

	go m.RefreshTicketStatus(ctx)
	return nil
}

// Login validates credentials locally, authenticates against the backend,
// and on success replaces the session wholesale, persists the identity,
// resets the ticket state, triggers a background refresh, and emits a
// LoginSucceeded effect. On backend failure the session is left unchanged
// and a Message effect describes the failure.
func (m *Manager) Login(ctx context.Context, email, password string) error {
	email = strings.TrimSpace(email)
	if verr := ValidateLogin(email, password); verr != nil {
		return verr
	}

	user, err := m.gateway.Login(ctx, email, password)
	if err != nil {
		m.emitMessage(loginFailureMessage(err))
		return err
	}

	m.applyIdentity(ctx, *user)
	go m.RefreshTicketStatus(ctx)
	m.emit(Effect{Kind: EffectLoginSucceeded})
	return nil
}

// Register validates the form locally, rejects emails already registered
// from this device, creates the account on the backend, and on success
// behaves like a login (plus caching the account locally) and emits a
// RegisterSucceeded effect.
func (m *Manager) Register(ctx context.Context, name, nationalID, email, password, repeatPassword string) error {
	email = strings.TrimSpace(email)
	if verr := ValidateRegistration(name, nationalID, email, password, repeatPassword); verr != nil {
		return verr
	}

	if count, err := m.usersRepo().CountByEmail(ctx, email); err != nil {
		m.log.Warn(ctx, "local duplicate-email check failed", "error", err)
	} else if count > 0 {
		m.emitMessage(MsgEmailInUse)
		return gateway.ErrEmailInUse
	}

	user, err := m.gateway.Register(ctx, gateway.RegisterRequest{
		Name:       name,
		NationalID: nationalID,
		Email:      email,
		Password:   password,
	})
	if err != nil {
		m.emitMessage(registerFailureMessage(err))
		return err
	}

	m.applyIdentity(ctx, *user)
	m.cacheLocalUser(ctx, user.Name, user.Email, password)
	go m.RefreshTicketStatus(ctx)
	m.emit(Effect{Kind: EffectRegisterSucceeded})
	return nil
}

// applyIdentity replaces the session with the backend identity, resets the
// ticket state to unknown, and persists the identity keys in a single
// transaction. A persistence failure is logged; the in-memory session
// stays valid.
func (m *Manager) applyIdentity(ctx context.Context, user models.User) {
	m.mu.Lock()
	m.user = user
	m.loggedIn = true
	m.ticket = models.TicketState{}
	m.gen++
	m.mu.Unlock()

	err := dbx.WithTx(ctx, m.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := prefs.NewSQLiteRepository(tx)
		if err := repo.Set(ctx, prefs.KeyLoggedEmail, user.Email); err != nil {
			return err
		}
		if err := repo.Set(ctx, prefs.KeyUserName, user.Name); err != nil {
			return err
		}
		if err := repo.Set(ctx, prefs.KeyUserNationalID, user.NationalID); err != nil {
			return err
		}
		return repo.Set(ctx, prefs.KeyLastTicketDate, "")
	})
	if err != nil {
		m.log.Error(ctx, "failed to persist session", "error", err)
	}
}

// cacheLocalUser stores a bcrypt-hashed copy of a freshly registered
// account for the offline duplicate-email check.
func (m *Manager) cacheLocalUser(ctx context.Context, name, email, password string) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		m.log.Warn(ctx, "failed to hash password for local cache", "error", err)
		return
	}
	if _, err := m.usersRepo().Insert(ctx, models.LocalUser{
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
	}); err != nil {
		m.log.Warn(ctx, "failed to cache registered account", "error", err)
	}
}

// EnsureTicketStateForToday lazily applies the daily reset: if the cached
// ticket date is not today's local date, the claim flag is cleared
// immediately, without waiting for the network. A background refresh is
// always triggered afterwards. Idempotent; safe to call every time the
// home view becomes visible.
func (m *Manager) EnsureTicketStateForToday(ctx context.Context) {
	m.mu.Lock()
	if !m.loggedIn {
		m.mu.Unlock()
		return
	}
	if m.ticket.LastTicketDate != models.Day(m.now()) {
		m.ticket.UsedToday = false
	}
	m.mu.Unlock()

	go m.RefreshTicketStatus(ctx)
}

// RefreshTicketStatus pulls the authoritative ticket status from the
// backend and overwrites the cached state. Best-effort: failures are
// swallowed (logged at debug), and a response is discarded if a
// session-level write landed after it was issued.
func (m *Manager) RefreshTicketStatus(ctx context.Context) {
	m.mu.Lock()
	if !m.loggedIn {
		m.mu.Unlock()
		return
	}
	email := m.user.Email
	issuedAt := m.gen
	m.mu.Unlock()

	status, err := m.gateway.TicketStatus(ctx, email)
	if err != nil {
		m.log.Debug(ctx, "ticket status refresh failed", "error", err)
		return
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.loggedIn || m.gen != issuedAt {
		// Superseded by a claim, login, or logout issued after us.
		return
	}

	state := models.TicketState{
		UsedToday:      status.UsedToday,
		LastTicketDate: status.LastTicketDate,
	}
	if state.LastTicketDate != models.Day(m.now()) {
		state.UsedToday = false
	}
	m.ticket = state

	if err := m.prefsRepo().Set(ctx, prefs.KeyLastTicketDate, state.LastTicketDate); err != nil {
		m.log.Warn(ctx, "failed to persist ticket date", "error", err)
	}
}

// ClaimTicket claims today's meal ticket. On success the claim flag and
// date are set optimistically from the local clock, the date is persisted,
// and a success message is emitted. On failure state is left unchanged and
// the failure description is emitted; there is no automatic retry.
func (m *Manager) ClaimTicket(ctx context.Context) error {
	m.mu.Lock()
	if !m.loggedIn {
		m.mu.Unlock()
		return ErrNotLoggedIn
	}
	email := m.user.Email
	m.mu.Unlock()

	if _, err := m.gateway.ClaimTicket(ctx, email); err != nil {
		m.emitMessage(claimFailureMessage(err))
		return err
	}

	today := models.Day(m.now())

	m.mu.Lock()
	if !m.loggedIn {
		// Logged out while the claim was in flight; discard the response.
		m.mu.Unlock()
		return ErrNotLoggedIn
	}
	m.ticket = models.TicketState{UsedToday: true, LastTicketDate: today}
	m.gen++
	if err := m.prefsRepo().Set(ctx, prefs.KeyLastTicketDate, today); err != nil {
		m.log.Warn(ctx, "failed to persist ticket date", "error", err)
	}
	m.mu.Unlock()

	m.emitMessage(MsgTicketGenerated)
	return nil
}

// Logout clears all persisted keys and resets the in-memory session and
// ticket state. Synchronous, no network call; a storage failure is logged
// but does not keep the session alive.
func (m *Manager) Logout(ctx context.Context) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.prefsRepo().Clear(ctx); err != nil {
		m.log.Error(ctx, "failed to clear persisted session", "error", err)
	}
	m.user = models.User{}
	m.ticket = models.TicketState{}
	m.loggedIn = false
	m.gen++
}

func loginFailureMessage(err error) string {
	if errors.Is(err, gateway.ErrInvalidCredentials) {
		return MsgInvalidCredentials
	}
	return err.Error()
}

func registerFailureMessage(err error) string {
	if errors.Is(err, gateway.ErrEmailInUse) {
		return MsgEmailInUse
	}
	return err.Error()
}

func claimFailureMessage(err error) string {
	if err.Error() == "" {
		return "could not generate the ticket"
	}
	return err.Error()
}
