package service

import (
	"errors"
	"strings"
	"testing"

	"github.com/atinyakov/staffdeck/internal/models"
	"github.com/atinyakov/staffdeck/internal/repository"
)

// fakeSessionRepo implements SessionRepository in memory.
type fakeSessionRepo struct {
	rec     repository.SessionRecord
	has     bool
	saveErr error
	saves   int
	clears  int
}

func (f *fakeSessionRepo) Load() (repository.SessionRecord, bool) {
	return f.rec, f.has
}

func (f *fakeSessionRepo) Save(rec repository.SessionRecord) error {
	if f.saveErr != nil {
		return f.saveErr
	}
	f.rec = rec
	f.has = true
	f.saves++
	return nil
}

func (f *fakeSessionRepo) Clear() error {
	f.rec = repository.SessionRecord{}
	f.has = false
	f.clears++
	return nil
}

// recordingNotifier captures notifications by kind.
type recordingNotifier struct {
	successes []string
	infos     []string
	errors    []string
}

func (n *recordingNotifier) Success(msg string) { n.successes = append(n.successes, msg) }
func (n *recordingNotifier) Info(msg string)    { n.infos = append(n.infos, msg) }
func (n *recordingNotifier) Error(msg string)   { n.errors = append(n.errors, msg) }

func newTestManager(t *testing.T) (*SessionManager, *fakeSessionRepo, *recordingNotifier) {
	t.Helper()
	users, err := NewUserStore(testEntries())
	if err != nil {
		t.Fatalf("NewUserStore failed: %v", err)
	}
	repo := &fakeSessionRepo{}
	notifier := &recordingNotifier{}
	return NewSessionManager(users, repo, notifier), repo, notifier
}

func TestLogin_Success(t *testing.T) {
	m, repo, notifier := newTestManager(t)

	if !m.Login("admin1", "pass123") {
		t.Fatal("expected login to succeed")
	}
	u := m.Current()
	if u == nil {
		t.Fatal("expected a current session")
	}
	if u.Role != models.RoleAdmin {
		t.Errorf("role = %q; want admin", u.Role)
	}
	if repo.saves != 1 {
		t.Errorf("repo saves = %d; want 1", repo.saves)
	}
	if repo.rec.SessionID == "" {
		t.Error("expected persisted record to carry a session id")
	}
	if len(notifier.successes) != 1 || notifier.successes[0] != "Welcome, Amelia Hart!" {
		t.Errorf("unexpected success notifications: %v", notifier.successes)
	}
}

func TestLogin_Failure_LeavesSessionUnchanged(t *testing.T) {
	m, repo, notifier := newTestManager(t)
	m.Login("admin1", "pass123")

	if m.Login("admin1", "wrong") {
		t.Fatal("expected login to fail")
	}
	if u := m.Current(); u == nil || u.Username != "admin1" {
		t.Errorf("session changed on failed login: %+v", u)
	}
	if repo.saves != 1 {
		t.Errorf("repo saves = %d; want 1 (no save on failure)", repo.saves)
	}
	if len(notifier.errors) != 1 {
		t.Errorf("expected one error notification, got %v", notifier.errors)
	}
}

func TestLogin_SaveFailureSignsInWithSingleNotification(t *testing.T) {
	m, repo, notifier := newTestManager(t)
	repo.saveErr = errors.New("disk full")

	if !m.Login("admin1", "pass123") {
		t.Fatal("expected login to succeed despite the failed save")
	}
	if u := m.Current(); u == nil || u.Username != "admin1" {
		t.Errorf("current = %+v; want admin1", u)
	}

	// The degradation is folded into one message, not an error beside a
	// welcome toast.
	if len(notifier.successes) != 0 {
		t.Errorf("unexpected success notifications: %v", notifier.successes)
	}
	if len(notifier.errors) != 1 {
		t.Fatalf("expected one notification, got %v", notifier.errors)
	}
	if !strings.Contains(notifier.errors[0], "Welcome, Amelia Hart!") ||
		!strings.Contains(notifier.errors[0], "could not be saved") {
		t.Errorf("notification %q must name the user and the degradation", notifier.errors[0])
	}
}

func TestLogin_LastWriteWins(t *testing.T) {
	m, _, _ := newTestManager(t)

	m.Login("admin1", "pass123")
	m.Login("hr1", "hrpass")

	u := m.Current()
	if u == nil || u.Username != "hr1" {
		t.Errorf("current = %+v; want hr1 (most recent login)", u)
	}
}

func TestLogout_ClearsAndIsIdempotent(t *testing.T) {
	m, repo, notifier := newTestManager(t)
	m.Login("admin1", "pass123")

	m.Logout()
	if m.Current() != nil {
		t.Error("expected no session after logout")
	}
	if repo.has {
		t.Error("expected persisted identity to be cleared")
	}

	m.Logout() // second call is safe and silent
	if repo.clears != 1 {
		t.Errorf("repo clears = %d; want 1", repo.clears)
	}
	if len(notifier.infos) != 1 {
		t.Errorf("expected one logout notification, got %v", notifier.infos)
	}
}

func TestRestore_AdoptsPersistedIdentity(t *testing.T) {
	m, repo, _ := newTestManager(t)
	repo.rec = repository.SessionRecord{
		SessionID: "s-1",
		User:      models.User{ID: 2, Username: "hr1", Name: "Noah Briggs", Role: models.RoleHR},
	}
	repo.has = true

	m.Restore()
	if u := m.Current(); u == nil || u.Username != "hr1" {
		t.Errorf("restored session = %+v; want hr1", u)
	}
}

func TestRestore_AbsentStaysSignedOut(t *testing.T) {
	m, _, _ := newTestManager(t)
	m.Restore()
	if m.Current() != nil {
		t.Error("expected no session after restore from empty storage")
	}
}

func TestRestoreThenLogout(t *testing.T) {
	m, repo, _ := newTestManager(t)
	repo.rec = repository.SessionRecord{SessionID: "s-1", User: models.User{ID: 1, Username: "admin1", Role: models.RoleAdmin}}
	repo.has = true

	m.Restore()
	m.Logout()

	if m.Current() != nil {
		t.Error("expected absent session")
	}
	if repo.has {
		t.Error("expected no persisted identity to remain")
	}
}

func TestHasRole(t *testing.T) {
	m, _, _ := newTestManager(t)

	if m.HasRole(models.RoleAdmin) {
		t.Error("HasRole must be false without a session")
	}

	m.Login("admin1", "pass123")
	if !m.HasRole(models.RoleAdmin, models.RoleHR) {
		t.Error("expected admin to pass an {admin, hr} check")
	}
	if m.HasRole(models.RoleHR) {
		t.Error("admin must not pass an hr-only check")
	}
}

func TestOnChange_FiresOnLoginAndLogout(t *testing.T) {
	m, _, _ := newTestManager(t)

	var seen []*models.User
	m.OnChange(func(u *models.User) { seen = append(seen, u) })

	m.Login("admin1", "pass123")
	m.Logout()

	if len(seen) != 2 {
		t.Fatalf("listener fired %d times; want 2", len(seen))
	}
	if seen[0] == nil || seen[1] != nil {
		t.Errorf("unexpected listener payloads: %v", seen)
	}
}
