package service

import (
	"fmt"

	"github.com/atinyakov/staffdeck/internal/models"
	"github.com/atinyakov/staffdeck/internal/notify"
)

// BookmarkRepository defines the persistence operations required by the
// bookmark store.
type BookmarkRepository interface {
	// Load returns the persisted bookmarks in insertion order. Corrupt
	// stored data is reported as empty, never as an error.
	Load() []models.Employee
	// Save writes the full list after a mutation.
	Save(list []models.Employee) error
}

// BookmarkStore holds the user's bookmarked employee snapshots: an ordered
// set keyed by employee id, written through to durable storage after every
// mutation.
type BookmarkStore struct {
	repo     BookmarkRepository
	notifier notify.Notifier

	list []models.Employee
	ids  map[int]struct{}
}

// NewBookmarkStore restores the persisted set and returns the store.
func NewBookmarkStore(repo BookmarkRepository, notifier notify.Notifier) *BookmarkStore {
	s := &BookmarkStore{repo: repo, notifier: notifier, ids: make(map[int]struct{})}
	for _, e := range repo.Load() {
		if _, dup := s.ids[e.ID]; dup {
			continue
		}
		s.list = append(s.list, e)
		s.ids[e.ID] = struct{}{}
	}
	return s
}

// Add bookmarks the employee. Adding an already-bookmarked id is a no-op
// with no notification and no storage write.
func (s *BookmarkStore) Add(e models.Employee) {
	if _, ok := s.ids[e.ID]; ok {
		return
	}
	s.list = append(s.list, e)
	s.ids[e.ID] = struct{}{}
	s.persist()
	s.notifier.Success(fmt.Sprintf("%s bookmarked", e.FullName()))
}

// Remove drops the bookmark with the given id. Removing an absent id is a
// no-op that leaves the stored form untouched. The notification names the
// employee from the entry being removed.
func (s *BookmarkStore) Remove(id int) {
	if _, ok := s.ids[id]; !ok {
		return
	}
	var removed models.Employee
	kept := s.list[:0]
	for _, e := range s.list {
		if e.ID == id {
			removed = e
			continue
		}
		kept = append(kept, e)
	}
	s.list = kept
	delete(s.ids, id)
	s.persist()
	s.notifier.Info(fmt.Sprintf("%s removed from bookmarks", removed.FullName()))
}

// IsBookmarked is a pure membership test.
func (s *BookmarkStore) IsBookmarked(id int) bool {
	_, ok := s.ids[id]
	return ok
}

// All returns the bookmarked employees in insertion order. The returned
// slice is a copy; mutating it does not affect the store.
func (s *BookmarkStore) All() []models.Employee {
	out := make([]models.Employee, len(s.list))
	copy(out, s.list)
	return out
}

// Len returns the number of bookmarks.
func (s *BookmarkStore) Len() int {
	return len(s.list)
}

func (s *BookmarkStore) persist() {
	if err := s.repo.Save(s.list); err != nil {
		s.notifier.Error("Could not save bookmarks")
	}
}
