// Package session manages the client-local authenticated identity: login,
// signup, logout, and profile updates, with the current user cached in
// memory and persisted across restarts. The cached identity is advisory
// only, never a security boundary, and the credential field never leaves
// this package's store lookups.
package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"golang.org/x/crypto/bcrypt"

	"inkwell/internal/common"
	"inkwell/internal/models"
	"inkwell/internal/repositories/users"
	"inkwell/internal/storage"
)

// State is the authentication state of the session.
type State string

const (
	StateAnonymous      State = "anonymous"
	StateAuthenticating State = "authenticating"
	StateAuthenticated  State = "authenticated"
)

// sessionKey is the backend name the cached identity persists under.
const sessionKey = "current_user"

// SignupParams carries the profile fields and secret for a new account.
type SignupParams struct {
	Email    string
	Username string
	Name     string
	Bio      string
	Avatar   string
	Secret   string
}

// Manager caches at most one authenticated user. All exposed identities are
// sanitized copies with the credential stripped.
type Manager struct {
	users   users.Repository
	backend storage.Backend

	mu      sync.Mutex
	state   State
	current *models.User
}

// NewManager constructs a Manager and restores a previously persisted
// session, if any. A corrupt or missing session record starts Anonymous.
func NewManager(ctx context.Context, repo users.Repository, backend storage.Backend) (*Manager, error) {
	m := &Manager{users: repo, backend: backend, state: StateAnonymous}

	data, ok, err := backend.Get(ctx, sessionKey)
	if err != nil {
		return nil, fmt.Errorf("restore session: %w", err)
	}
	if ok {
		var u models.User
		if err := json.Unmarshal(data, &u); err == nil && u.ID != "" {
			u.CredentialSecret = ""
			m.current = &u
			m.state = StateAuthenticated
		}
	}
	return m, nil
}

// State returns the current authentication state.
func (m *Manager) State() State {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state
}

// Current returns a copy of the cached identity, or nil when Anonymous.
// The copy never includes the credential field.
func (m *Manager) Current() *models.User {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.current == nil {
		return nil
	}
	return m.current.Sanitized()
}

// cache stores the sanitized identity in memory and persists it so the
// session survives a restart.
func (m *Manager) cache(ctx context.Context, u *models.User) error {
	public := u.Sanitized()
	data, err := json.Marshal(public)
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}
	if err := m.backend.Set(ctx, sessionKey, data); err != nil {
		return fmt.Errorf("persist session: %w", err)
	}
	m.current = public
	m.state = StateAuthenticated
	return nil
}

// Login authenticates by email and secret. Unknown email and wrong secret
// are indistinguishable: both return common.ErrorUnauthorized and leave the
// session Anonymous.
func (m *Manager) Login(ctx context.Context, email, secret string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.state = StateAuthenticating

	user, err := m.users.FindByEmail(ctx, email)
	if err != nil {
		m.reset()
		if errors.Is(err, common.ErrorNotFound) {
			return common.ErrorUnauthorized
		}
		return err
	}
	if bcrypt.CompareHashAndPassword([]byte(user.CredentialSecret), []byte(secret)) != nil {
		m.reset()
		return common.ErrorUnauthorized
	}
	if err := m.cache(ctx, user); err != nil {
		m.reset()
		return err
	}
	return nil
}

// Signup creates the account with empty follower/following sets and
// transitions straight to Authenticated. An email or username collision
// returns common.ErrorAlreadyExists and leaves the session Anonymous.
func (m *Manager) Signup(ctx context.Context, params SignupParams) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.state = StateAuthenticating

	hash, err := bcrypt.GenerateFromPassword([]byte(params.Secret), bcrypt.DefaultCost)
	if err != nil {
		m.reset()
		return fmt.Errorf("hash credential: %w", err)
	}

	created, err := m.users.Create(ctx, &models.User{
		Email:            params.Email,
		Username:         params.Username,
		Name:             params.Name,
		Bio:              params.Bio,
		Avatar:           params.Avatar,
		Followers:        []string{},
		Following:        []string{},
		CredentialSecret: string(hash),
	})
	if err != nil {
		m.reset()
		return err
	}
	if err := m.cache(ctx, created); err != nil {
		m.reset()
		return err
	}
	return nil
}

// Logout clears the cached identity unconditionally.
func (m *Manager) Logout(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.reset()
	if err := m.backend.Delete(ctx, sessionKey); err != nil {
		return fmt.Errorf("clear session: %w", err)
	}
	return nil
}

// UpdateProfile merges the patch into the authenticated user's document and
// refreshes the cached identity. If the store no longer has the user, the
// session keeps its stale cached identity and the error is returned.
func (m *Manager) UpdateProfile(ctx context.Context, patch models.UserPatch) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.state != StateAuthenticated || m.current == nil {
		return common.ErrorNotLoggedIn
	}
	merged, err := m.users.Update(ctx, m.current.ID, patch)
	if err != nil {
		return err
	}
	return m.cache(ctx, merged)
}

// reset drops the in-memory identity. The persisted session record is only
// removed by Logout.
func (m *Manager) reset() {
	m.current = nil
	m.state = StateAnonymous
}
