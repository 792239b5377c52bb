package repository

import (
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/gorilla/securecookie"
	"go.uber.org/zap"

	"github.com/atinyakov/staffdeck/internal/models"
)

const sessionKey = "auth_user"

// keyFile holds the securecookie hash and block keys, hex-joined, so a
// restart can decode the previously persisted identity.
const keyFile = "storage.key"

// SessionRecord is the persisted shape of an authenticated session.
type SessionRecord struct {
	// SessionID identifies the login that produced this record.
	SessionID string      `json:"session_id"`
	User      models.User `json:"user"`
}

// SessionRepository persists the current identity, encoded with securecookie
// so a tampered or truncated value is rejected on load instead of producing
// a forged session.
type SessionRepository struct {
	kv    Store
	codec *securecookie.SecureCookie
	log   *zap.Logger
}

// NewSessionRepository builds a repository over kv using keys stored in dir.
// Keys are generated on first use; when they cannot be recovered, fresh keys
// are written and any previously persisted session becomes undecodable,
// which callers observe as an absent session.
func NewSessionRepository(kv Store, dir string, log *zap.Logger) (*SessionRepository, error) {
	hashKey, blockKey, err := loadOrCreateKeys(dir)
	if err != nil {
		return nil, err
	}
	codec := securecookie.New(hashKey, blockKey)
	codec.SetSerializer(securecookie.JSONEncoder{})
	// Session validity has no time component; only tampering invalidates
	// a stored record, so the codec's timestamp expiry is disabled.
	codec.MaxAge(0)
	return &SessionRepository{kv: kv, codec: codec, log: log}, nil
}

// Load returns the persisted session record, if a valid one exists.
// A corrupt or undecodable value is removed and reported as absent.
func (r *SessionRepository) Load() (SessionRecord, bool) {
	raw, ok, err := r.kv.Get(sessionKey)
	if err != nil || !ok {
		return SessionRecord{}, false
	}

	var rec SessionRecord
	if err := r.codec.Decode(sessionKey, raw, &rec); err != nil {
		r.log.Warn("discarding corrupt persisted session", zap.Error(err))
		_ = r.kv.Remove(sessionKey)
		return SessionRecord{}, false
	}
	if rec.User.Username == "" {
		_ = r.kv.Remove(sessionKey)
		return SessionRecord{}, false
	}
	return rec, true
}

// Save persists the session record. The write happens after the in-memory
// session was already updated; a failed write degrades restart restore only.
func (r *SessionRepository) Save(rec SessionRecord) error {
	encoded, err := r.codec.Encode(sessionKey, rec)
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}
	return r.kv.Set(sessionKey, encoded)
}

// Clear removes the persisted identity. Clearing an absent session is safe.
func (r *SessionRepository) Clear() error {
	return r.kv.Remove(sessionKey)
}

// loadOrCreateKeys reads the codec keys from dir, generating and persisting
// new ones when the file is missing or unusable.
func loadOrCreateKeys(dir string) (hashKey, blockKey []byte, err error) {
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, nil, fmt.Errorf("create storage dir: %w", err)
	}
	path := filepath.Join(dir, keyFile)

	if b, err := os.ReadFile(path); err == nil {
		parts := strings.Split(strings.TrimSpace(string(b)), ":")
		if len(parts) == 2 {
			h, herr := hex.DecodeString(parts[0])
			bl, berr := hex.DecodeString(parts[1])
			if herr == nil && berr == nil && len(h) == 32 && len(bl) == 32 {
				return h, bl, nil
			}
		}
		// Unusable key file: fall through and regenerate.
	}

	hashKey = securecookie.GenerateRandomKey(32)
	blockKey = securecookie.GenerateRandomKey(32)
	if hashKey == nil || blockKey == nil {
		return nil, nil, fmt.Errorf("generate storage keys: no entropy")
	}
	content := hex.EncodeToString(hashKey) + ":" + hex.EncodeToString(blockKey)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		return nil, nil, fmt.Errorf("write storage keys: %w", err)
	}
	return hashKey, blockKey, nil
}
