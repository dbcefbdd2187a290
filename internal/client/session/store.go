// Package session owns the answer to "who is logged in".
//
// The Store is the single writer of the credential and identity. It starts
// in StateInitializing, restores the persisted credential (if any) and
// verifies it against the service, then settles into StateAuthenticated or
// StateUnauthenticated. The gateway reads the credential through Token()
// on every outbound request and forces a teardown through Invalidate()
// when the service rejects it.
//
// Session lifecycle changes are announced on the event bus: EventSessionReady
// once after Initialize settles, EventSessionInvalidated whenever a live
// session is torn down by an authorization-denied signal. Hosts subscribe to
// the latter to bring the user back to the login entry point; the store
// itself never touches any UI.
package session

import (
	"context"
	"sync"

	"github.com/asaskevich/EventBus"

	"github.com/dmitrijs2005/ecgdesk/internal/client/models"
	"github.com/dmitrijs2005/ecgdesk/internal/client/repositories/credentials"
	"github.com/dmitrijs2005/ecgdesk/internal/common"
	"github.com/dmitrijs2005/ecgdesk/internal/logging"
)

// State is the derived session status. Authenticated holds iff both the
// credential and the identity are present.
type State string

const (
	StateInitializing    State = "initializing"
	StateUnauthenticated State = "unauthenticated"
	StateAuthenticated   State = "authenticated"
)

// AuthClient is the slice of the API surface the store needs. The concrete
// implementation is api.AuthAPI; tests substitute a fake.
type AuthClient interface {
	Login(ctx context.Context, email, password string) (string, error)
	Register(ctx context.Context, email, password, fullName string) (*models.User, error)
	Me(ctx context.Context) (*models.User, error)
	Logout(ctx context.Context) error
}

// Store is the session state machine. It is constructed once per process
// and injected into every consumer; there is no ambient global session.
type Store struct {
	mu       sync.Mutex
	state    State
	token    string
	identity *models.User
	busy     bool

	auth AuthClient
	repo credentials.Repository
	bus  EventBus.Bus
	log  logging.Logger

	ready sync.Once
}

// New returns a Store in StateInitializing. BindAuth must be called before
// any operation that talks to the service; the two-step construction breaks
// the cycle between the store (token source) and the gateway (API carrier).
func New(repo credentials.Repository, bus EventBus.Bus, log logging.Logger) *Store {
	return &Store{
		state: StateInitializing,
		repo:  repo,
		bus:   bus,
		log:   log,
	}
}

// BindAuth wires the authentication API built on top of the gateway.
func (s *Store) BindAuth(auth AuthClient) {
	s.auth = auth
}

// State returns the current session state.
func (s *Store) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Token returns the current credential, or "" when none is held. It is the
// send-time read used by the gateway.
func (s *Store) Token() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.token
}

// Identity returns the cached profile, or nil when unauthenticated.
func (s *Store) Identity() *models.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.identity
}

// Busy reports whether a login/registration/verification call is in flight.
// Callers use it to avoid issuing overlapping logins; the store does not
// serialize them itself — overlapping calls race and the last write wins.
func (s *Store) Busy() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.busy
}

func (s *Store) setBusy(v bool) {
	s.mu.Lock()
	s.busy = v
	s.mu.Unlock()
}

// Initialize restores the persisted credential and verifies it against the
// service. It must be called exactly once, at startup. Whatever the outcome,
// EventSessionReady is published exactly once.
func (s *Store) Initialize(ctx context.Context) error {
	defer s.emitReady()

	s.setBusy(true)
	defer s.setBusy(false)

	token, err := s.repo.Get(ctx)
	if err != nil {
		s.log.Warn(ctx, "credential restore failed", "error", err)
	}

	if token == "" {
		s.mu.Lock()
		s.state = StateUnauthenticated
		s.mu.Unlock()
		return nil
	}

	s.mu.Lock()
	s.token = token
	s.mu.Unlock()

	user, err := s.auth.Me(ctx)
	if err != nil {
		// Stale or rejected credential: erase it everywhere.
		s.mu.Lock()
		s.token = ""
		s.identity = nil
		s.state = StateUnauthenticated
		s.mu.Unlock()
		if cerr := s.repo.Clear(ctx); cerr != nil {
			s.log.Warn(ctx, "erasing stale credential", "error", cerr)
		}
		s.log.Info(ctx, "stored credential rejected, starting unauthenticated")
		return err
	}

	s.mu.Lock()
	s.identity = user
	s.state = StateAuthenticated
	s.mu.Unlock()
	s.log.Info(ctx, "session restored", "email", user.Email)
	return nil
}

func (s *Store) emitReady() {
	s.ready.Do(func() {
		s.bus.Publish(common.EventSessionReady)
	})
}

// Login authenticates and populates the identity. The credential is only
// retained if both the login call and the follow-up profile fetch succeed.
func (s *Store) Login(ctx context.Context, email, password string) error {
	s.setBusy(true)
	defer s.setBusy(false)

	token, err := s.auth.Login(ctx, email, password)
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.token = token
	s.mu.Unlock()

	if err := s.repo.Set(ctx, token); err != nil {
		s.discardCredential(ctx)
		return err
	}

	user, err := s.auth.Me(ctx)
	if err != nil {
		s.discardCredential(ctx)
		return err
	}

	s.mu.Lock()
	s.identity = user
	s.state = StateAuthenticated
	s.mu.Unlock()
	s.log.Info(ctx, "logged in", "email", user.Email)
	return nil
}

func (s *Store) discardCredential(ctx context.Context) {
	s.mu.Lock()
	s.token = ""
	s.identity = nil
	s.state = StateUnauthenticated
	s.mu.Unlock()
	if err := s.repo.Clear(ctx); err != nil {
		s.log.Warn(ctx, "erasing credential", "error", err)
	}
}

// Register creates an account and returns the created profile. The session
// state does not change: registration never authenticates, and the profile
// is handed to the caller instead of being cached as the session identity.
func (s *Store) Register(ctx context.Context, email, password, fullName string) (*models.User, error) {
	s.setBusy(true)
	defer s.setBusy(false)

	return s.auth.Register(ctx, email, password, fullName)
}

// Logout clears the identity, the credential and the durable record, then
// notifies the service best-effort. It cannot fail and is idempotent.
func (s *Store) Logout(ctx context.Context) {
	s.mu.Lock()
	hadToken := s.token != ""
	s.mu.Unlock()

	if hadToken {
		if err := s.auth.Logout(ctx); err != nil {
			s.log.Debug(ctx, "remote logout failed", "error", err)
		}
	}

	s.mu.Lock()
	s.token = ""
	s.identity = nil
	s.state = StateUnauthenticated
	s.mu.Unlock()

	if err := s.repo.Clear(ctx); err != nil {
		s.log.Warn(ctx, "erasing credential on logout", "error", err)
	}
	s.log.Info(ctx, "logged out")
}

// Invalidate is the authorization-denied signal from the gateway. It clears
// the in-memory credential and identity and erases the durable record.
// EventSessionInvalidated is published only when a live session was actually
// torn down, so concurrent 401s produce a single observable transition.
func (s *Store) Invalidate() {
	s.mu.Lock()
	had := s.token != "" || s.identity != nil
	s.token = ""
	s.identity = nil
	s.state = StateUnauthenticated
	s.mu.Unlock()

	if !had {
		return
	}

	ctx := context.Background()
	if err := s.repo.Clear(ctx); err != nil {
		s.log.Warn(ctx, "erasing credential on invalidation", "error", err)
	}
	s.bus.Publish(common.EventSessionInvalidated)
}
