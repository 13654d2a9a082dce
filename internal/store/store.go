package store

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/kwhalen/repbook/internal/domain"
	bolt "go.etcd.io/bbolt"
)

// Bucket and key names
var (
	bucketSession   = []byte("session")
	keyAccessToken  = []byte("access_token")
	keyRefreshToken = []byte("refresh_token")
)

// SessionStore implements domain.SessionStore using BoltDB. Both tokens are
// written and cleared in a single transaction so a reload never observes a
// half-updated pair.
type SessionStore struct {
	db *bolt.DB

	// Memory-only mode (no persistence)
	mu  sync.Mutex
	mem domain.Session
}

// NewSessionStore opens (or creates) the session database under dataDir.
// An empty dataDir yields a memory-only store that forgets the session on
// exit, which is useful in tests.
func NewSessionStore(dataDir string) (*SessionStore, error) {
	if dataDir == "" {
		return &SessionStore{}, nil
	}

	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return nil, err
	}

	dbPath := filepath.Join(dataDir, "session.db")
	db, err := bolt.Open(dbPath, 0600, &bolt.Options{Timeout: 1 * time.Second})
	if err != nil {
		return nil, fmt.Errorf("failed to open session db: %w", err)
	}

	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(bucketSession)
		return err
	})
	if err != nil {
		db.Close()
		return nil, err
	}

	return &SessionStore{db: db}, nil
}

func (s *SessionStore) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// Load reads the stored token pair. Absent keys map to empty tokens.
func (s *SessionStore) Load() (domain.Session, error) {
	if s.db == nil {
		s.mu.Lock()
		defer s.mu.Unlock()
		return s.mem, nil
	}

	var session domain.Session

	err := s.db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket(bucketSession)
		if b == nil {
			return nil
		}
		if v := b.Get(keyAccessToken); v != nil {
			session.AccessToken = string(v)
		}
		if v := b.Get(keyRefreshToken); v != nil {
			session.RefreshToken = string(v)
		}
		return nil
	})
	if err != nil {
		return domain.Session{}, fmt.Errorf("failed to load session: %w", err)
	}

	return session, nil
}

// Save writes both tokens in one transaction
func (s *SessionStore) Save(session domain.Session) error {
	if s.db == nil {
		s.mu.Lock()
		s.mem = session
		s.mu.Unlock()
		return nil
	}

	return s.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket(bucketSession)
		if err := b.Put(keyAccessToken, []byte(session.AccessToken)); err != nil {
			return err
		}
		return b.Put(keyRefreshToken, []byte(session.RefreshToken))
	})
}

// Clear removes both tokens in one transaction
func (s *SessionStore) Clear() error {
	if s.db == nil {
		s.mu.Lock()
		s.mem = domain.Session{}
		s.mu.Unlock()
		return nil
	}

	return s.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket(bucketSession)
		if b == nil {
			return nil
		}
		if err := b.Delete(keyAccessToken); err != nil {
			return err
		}
		return b.Delete(keyRefreshToken)
	})
}
