// Package service implements the dashboard's client-side state machine:
// credential lookup, the authenticated session, route gating, the bookmark
// set and the derived filtering and analytics views.
package service

import (
	"encoding/json"
	"fmt"
	"os"

	"golang.org/x/crypto/bcrypt"

	"github.com/atinyakov/staffdeck/internal/models"
)

// UserEntry is one row of the credential table file. Either PasswordHash
// (bcrypt) or Password (plaintext, hashed at load) must be set.
type UserEntry struct {
	ID           int         `json:"id"`
	Username     string      `json:"username"`
	Password     string      `json:"password,omitempty"`
	PasswordHash string      `json:"password_hash,omitempty"`
	Name         string      `json:"name"`
	Role         models.Role `json:"role"`
}

// UserStore is the static, read-only credential table backing login.
type UserStore struct {
	byUsername map[string]UserEntry
}

// NewUserStoreFromFile reads the JSON credential table at path. Plaintext
// password entries are bcrypt-hashed immediately so the table never holds a
// recoverable secret in memory.
func NewUserStoreFromFile(path string) (*UserStore, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read users file: %w", err)
	}
	var entries []UserEntry
	if err := json.Unmarshal(b, &entries); err != nil {
		return nil, fmt.Errorf("parse users file: %w", err)
	}
	return NewUserStore(entries)
}

// NewUserStore builds the table from entries.
func NewUserStore(entries []UserEntry) (*UserStore, error) {
	byUsername := make(map[string]UserEntry, len(entries))
	for _, e := range entries {
		if e.Username == "" {
			return nil, fmt.Errorf("user entry %d: empty username", e.ID)
		}
		if e.PasswordHash == "" {
			if e.Password == "" {
				return nil, fmt.Errorf("user %q: no credential", e.Username)
			}
			hash, err := bcrypt.GenerateFromPassword([]byte(e.Password), bcrypt.DefaultCost)
			if err != nil {
				return nil, fmt.Errorf("hash password for %q: %w", e.Username, err)
			}
			e.PasswordHash = string(hash)
		}
		e.Password = ""
		if _, dup := byUsername[e.Username]; dup {
			return nil, fmt.Errorf("duplicate username %q", e.Username)
		}
		byUsername[e.Username] = e
	}
	return &UserStore{byUsername: byUsername}, nil
}

// Authenticate checks the (username, password) pair against the table.
// On a match it returns the identity with the secret stripped; otherwise
// ok is false.
func (s *UserStore) Authenticate(username, password string) (models.User, bool) {
	e, ok := s.byUsername[username]
	if !ok {
		return models.User{}, false
	}
	if bcrypt.CompareHashAndPassword([]byte(e.PasswordHash), []byte(password)) != nil {
		return models.User{}, false
	}
	return models.User{ID: e.ID, Username: e.Username, Name: e.Name, Role: e.Role}, true
}
