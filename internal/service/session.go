package service

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/atinyakov/staffdeck/internal/models"
	"github.com/atinyakov/staffdeck/internal/notify"
	"github.com/atinyakov/staffdeck/internal/repository"
)

// SessionRepository defines the persistence operations required by the
// session manager.
type SessionRepository interface {
	// Load returns the previously persisted session record, if a valid
	// one exists. Corrupt stored data must be discarded, not surfaced.
	Load() (repository.SessionRecord, bool)
	// Save persists the record after the in-memory session was updated.
	Save(rec repository.SessionRecord) error
	// Clear removes the persisted identity. Idempotent.
	Clear() error
}

// SessionManager validates credentials against the UserStore and holds the
// single current authenticated identity. Session validity is binary: there
// is no expiry state.
type SessionManager struct {
	users    *UserStore
	repo     SessionRepository
	notifier notify.Notifier

	current   *models.User
	sessionID string
	listeners []func(*models.User)
}

// NewSessionManager constructs a manager. The session starts absent; call
// Restore to pick up a persisted identity.
func NewSessionManager(users *UserStore, repo SessionRepository, notifier notify.Notifier) *SessionManager {
	return &SessionManager{users: users, repo: repo, notifier: notifier}
}

// Current returns the authenticated identity, or nil when signed out.
func (m *SessionManager) Current() *models.User {
	return m.current
}

// IsAuthenticated reports whether a session is present.
func (m *SessionManager) IsAuthenticated() bool {
	return m.current != nil
}

// OnChange registers a listener invoked whenever the session changes.
// Listeners receive the new identity (nil on logout) and are how gated
// views revoke access immediately.
func (m *SessionManager) OnChange(fn func(*models.User)) {
	m.listeners = append(m.listeners, fn)
}

func (m *SessionManager) setCurrent(u *models.User) {
	m.current = u
	for _, fn := range m.listeners {
		fn(u)
	}
}

// Login checks the credential pair against the user table. On a match the
// secret-stripped identity becomes the current session and is persisted;
// on a mismatch the session is left unchanged. Rapid repeated calls are
// last-write-wins: each call fully settles the session before returning.
func (m *SessionManager) Login(username, password string) bool {
	user, ok := m.users.Authenticate(username, password)
	if !ok {
		m.notifier.Error("Invalid username or password")
		return false
	}

	m.sessionID = uuid.NewString()
	m.setCurrent(&user)
	if err := m.repo.Save(repository.SessionRecord{SessionID: m.sessionID, User: user}); err != nil {
		// The in-memory session stands; only restart restore degrades.
		// One combined message instead of an error beside a welcome toast.
		m.notifier.Error(fmt.Sprintf("Welcome, %s! Your session could not be saved and will not survive a restart", user.Name))
		return true
	}
	m.notifier.Success(fmt.Sprintf("Welcome, %s!", user.Name))
	return true
}

// Logout clears the session and the persisted identity. Idempotent: calling
// it while signed out does nothing.
func (m *SessionManager) Logout() {
	if m.current == nil {
		return
	}
	m.sessionID = ""
	m.setCurrent(nil)
	_ = m.repo.Clear()
	m.notifier.Info("You have been logged out")
}

// Restore is invoked once at process start and adopts a previously
// persisted identity. An unreadable stored value was already discarded by
// the repository, so the session simply stays absent.
func (m *SessionManager) Restore() {
	rec, ok := m.repo.Load()
	if !ok {
		return
	}
	m.sessionID = rec.SessionID
	m.setCurrent(&rec.User)
}

// HasRole reports whether the current session's role is in allowed.
// It is false whenever no session is present.
func (m *SessionManager) HasRole(allowed ...models.Role) bool {
	if m.current == nil {
		return false
	}
	for _, r := range allowed {
		if m.current.Role == r {
			return true
		}
	}
	return false
}
