package repository

import (
	"encoding/json"
	"fmt"

	"go.uber.org/zap"

	"github.com/atinyakov/staffdeck/internal/models"
)

const bookmarksKey = "bookmarkedEmployees"

// BookmarkRepository persists the bookmarked employee snapshots as a JSON
// array, preserving insertion order.
type BookmarkRepository struct {
	kv  Store
	log *zap.Logger
}

// NewBookmarkRepository returns a repository over kv.
func NewBookmarkRepository(kv Store, log *zap.Logger) *BookmarkRepository {
	return &BookmarkRepository{kv: kv, log: log}
}

// Load returns the persisted bookmarks. Missing or corrupt data is logged
// and reported as an empty set; startup never fails on it.
func (r *BookmarkRepository) Load() []models.Employee {
	raw, ok, err := r.kv.Get(bookmarksKey)
	if err != nil {
		r.log.Warn("reading persisted bookmarks failed", zap.Error(err))
		return nil
	}
	if !ok {
		return nil
	}

	var list []models.Employee
	if err := json.Unmarshal([]byte(raw), &list); err != nil {
		r.log.Warn("discarding corrupt persisted bookmarks", zap.Error(err))
		return nil
	}
	return list
}

// Save writes the full bookmark list. Called after every mutation.
func (r *BookmarkRepository) Save(list []models.Employee) error {
	if list == nil {
		list = []models.Employee{}
	}
	b, err := json.Marshal(list)
	if err != nil {
		return fmt.Errorf("encode bookmarks: %w", err)
	}
	return r.kv.Set(bookmarksKey, string(b))
}
