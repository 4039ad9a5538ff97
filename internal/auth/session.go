package auth

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/me/jobdesk/pkg/jobportal"
)

// DefaultResumeTimeout bounds the startup identity check. Without it a
// hung request would pin the session in the initializing state forever
// and block every protected page.
const DefaultResumeTimeout = 15 * time.Second

// ErrNotAuthenticated is returned by operations that require a signed-in
// user while the session is anonymous.
var ErrNotAuthenticated = errors.New("no authenticated user")

// State describes the session lifecycle.
type State string

const (
	// StateInitializing is the once-per-process startup window while a
	// persisted token is being re-validated against the portal.
	StateInitializing State = "INITIALIZING"
	// StateAnonymous means nobody is signed in.
	StateAnonymous State = "ANONYMOUS"
	// StateAuthenticated means a user identity is loaded.
	StateAuthenticated State = "AUTHENTICATED"
)

// Session is the read view handed to guards and page handlers.
type Session struct {
	User    *jobportal.User
	Loading bool
}

// State derives the lifecycle state from the session value.
func (s Session) State() State {
	switch {
	case s.Loading:
		return StateInitializing
	case s.User != nil:
		return StateAuthenticated
	default:
		return StateAnonymous
	}
}

// UserPatch is a shallow partial update for the signed-in user. Only
// non-nil fields are applied.
type UserPatch struct {
	Email        *string
	Username     *string
	ProfileImage *string
}

// Manager owns the authenticated-user value and drives every session
// transition: startup resume, login, registration, third-party login,
// logout. It is the only writer of session state; everything else reads
// through Snapshot. Construct one per process and inject it; session
// state is deliberately not package-global so tests can run isolated
// managers side by side.
//
// Overlapping mutations (say a login racing a logout) are not
// serialized against each other beyond field-level locking; the last
// writer wins, which is acceptable for a single-operator client.
type Manager struct {
	client        *jobportal.Client
	tokens        *TokenStore
	logger        *slog.Logger
	resumeTimeout time.Duration

	mu      sync.RWMutex
	user    *jobportal.User
	loading bool

	resumeOnce sync.Once
}

// NewManager creates a session manager. The session starts in the
// initializing state; call Resume once at startup to leave it.
func NewManager(client *jobportal.Client, tokens *TokenStore, logger *slog.Logger) *Manager {
	return &Manager{
		client:        client,
		tokens:        tokens,
		logger:        logger.With("component", "session"),
		resumeTimeout: DefaultResumeTimeout,
		loading:       true,
	}
}

// SetResumeTimeout overrides the startup identity-check timeout.
func (m *Manager) SetResumeTimeout(d time.Duration) {
	m.resumeTimeout = d
}

// Snapshot returns the current session value. The returned user pointer
// is never mutated in place; updates swap in a fresh copy.
func (m *Manager) Snapshot() Session {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return Session{User: m.user, Loading: m.loading}
}

// Resume performs the startup re-authentication check exactly once per
// manager: if a token pair is persisted, the identity is fetched from
// the portal; any failure (expired, revoked, unreachable) clears the
// pair and lands in the anonymous state. Subsequent calls are no-ops.
func (m *Manager) Resume(ctx context.Context) {
	m.resumeOnce.Do(func() { m.resume(ctx) })
}

func (m *Manager) resume(ctx context.Context) {
	defer func() {
		m.mu.Lock()
		m.loading = false
		m.mu.Unlock()
	}()

	pair, ok, err := m.tokens.Load(ctx)
	if err != nil {
		m.logger.Error("reading stored tokens failed", "error", err)
		return
	}
	if !ok {
		m.logger.Debug("no stored tokens, starting anonymous")
		return
	}

	m.client.SetToken(pair.Access)

	checkCtx, cancel := context.WithTimeout(ctx, m.resumeTimeout)
	defer cancel()

	user, err := m.client.Profile(checkCtx)
	if err != nil {
		// Stale or revoked pair. Self-heal: drop it entirely.
		m.logger.Info("stored token rejected, clearing", "error", err)
		m.client.SetToken("")
		if clearErr := m.tokens.Clear(context.WithoutCancel(ctx)); clearErr != nil {
			m.logger.Error("clearing stored tokens failed", "error", clearErr)
		}
		return
	}

	m.setUser(user)
	m.logger.Info("session resumed", "user", user.Username, "role", user.Role)
}

// Login exchanges credentials for a token pair, persists it, loads the
// identity and enriches it with the role-specific profile image. On any
// failure the session is left exactly as it was and the error carries a
// display-ready message.
func (m *Manager) Login(ctx context.Context, email, password string) (*jobportal.User, error) {
	pair, err := m.client.Login(ctx, email, password)
	if err != nil {
		return nil, err
	}
	if err := m.tokens.Save(ctx, pair); err != nil {
		return nil, err
	}
	m.client.SetToken(pair.Access)

	user, err := m.client.Profile(ctx)
	if err != nil {
		// Tokens stored but identity unknown; that state is not
		// representable, so roll back to anonymous.
		m.client.SetToken("")
		if clearErr := m.tokens.Clear(context.WithoutCancel(ctx)); clearErr != nil {
			m.logger.Error("clearing stored tokens failed", "error", clearErr)
		}
		return nil, err
	}

	m.enrichProfileImage(ctx, user)
	m.setUser(user)
	m.logger.Info("user logged in", "user", user.Username, "role", user.Role)
	return user, nil
}

// Register creates an account. Session state never changes here; the
// caller follows up with Login.
func (m *Manager) Register(ctx context.Context, req jobportal.RegisterRequest) (*jobportal.User, error) {
	return m.client.Register(ctx, req)
}

// GoogleLogin exchanges an identity-provider credential. Unlike Login
// the portal returns tokens and identity together, so no separate
// identity fetch happens.
func (m *Manager) GoogleLogin(ctx context.Context, credential string) (*jobportal.User, error) {
	result, err := m.client.GoogleLogin(ctx, credential)
	if err != nil {
		return nil, err
	}

	pair := jobportal.TokenPair{Access: result.Access, Refresh: result.Refresh}
	if err := m.tokens.Save(ctx, pair); err != nil {
		return nil, err
	}
	m.client.SetToken(pair.Access)

	user := result.User
	m.setUser(&user)
	m.logger.Info("user logged in via google", "user", user.Username, "role", user.Role)
	return &user, nil
}

// Logout invalidates the session server-side on a best-effort basis,
// then unconditionally clears the persisted pair and the in-memory
// user. A failing server call must never leave the client believing it
// is still signed in, so its error is logged and swallowed.
func (m *Manager) Logout(ctx context.Context) {
	if err := m.client.Logout(ctx); err != nil {
		m.logger.Warn("server-side logout failed, clearing local session anyway", "error", err)
	}

	m.client.SetToken("")
	if err := m.tokens.Clear(context.WithoutCancel(ctx)); err != nil {
		m.logger.Error("clearing stored tokens failed", "error", err)
	}

	m.mu.Lock()
	m.user = nil
	m.loading = false
	m.mu.Unlock()
	m.logger.Info("user logged out")
}

// UpdateUser shallow-merges the patch into the signed-in user without a
// network round trip, used after profile edits that change display
// fields such as a freshly uploaded image. Returns ErrNotAuthenticated
// while anonymous.
func (m *Manager) UpdateUser(patch UserPatch) (*jobportal.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.user == nil {
		return nil, ErrNotAuthenticated
	}

	updated := *m.user
	if patch.Email != nil {
		updated.Email = *patch.Email
	}
	if patch.Username != nil {
		updated.Username = *patch.Username
	}
	if patch.ProfileImage != nil {
		updated.ProfileImage = patch.ProfileImage
	}
	m.user = &updated
	return &updated, nil
}

// enrichProfileImage merges in the role-specific image when the
// identity record came back without one. At most one extra lookup; a
// missing profile or a failed lookup is not an error.
func (m *Manager) enrichProfileImage(ctx context.Context, user *jobportal.User) {
	if user.ProfileImage != nil && *user.ProfileImage != "" {
		return
	}

	switch user.Role {
	case jobportal.RoleEmployee:
		profiles, err := m.client.EmployeeProfiles(ctx)
		if err != nil {
			m.logger.Debug("employee profile lookup failed", "error", err)
			return
		}
		if len(profiles) > 0 {
			user.ProfileImage = profiles[0].ProfileImage
		}
	case jobportal.RoleEmployer:
		profiles, err := m.client.CompanyProfiles(ctx)
		if err != nil {
			m.logger.Debug("company profile lookup failed", "error", err)
			return
		}
		if len(profiles) > 0 {
			user.ProfileImage = profiles[0].CompanyLogo
		}
	}
}

// setUser installs an identity and ends the startup window: an
// explicit sign-in outranks whatever the resume check would decide.
func (m *Manager) setUser(user *jobportal.User) {
	m.mu.Lock()
	m.user = user
	m.loading = false
	m.mu.Unlock()
}
