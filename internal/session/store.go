package session

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"sync"
	"time"
)

// Store persists sessions keyed by token hash. The Redis implementation is
// the durable analog of the original dashboard's browser storage; the memory
// implementation backs tests and single-node development.
type Store interface {
	Put(ctx context.Context, s Session, ttl time.Duration) error
	Get(ctx context.Context, token string) (Session, bool, error)
	Delete(ctx context.Context, token string) error
}

// hashToken gives the storage key; raw tokens are never persisted as keys.
func hashToken(token string) string {
	h := sha256.Sum256([]byte(token))
	return hex.EncodeToString(h[:])
}

type memoryEntry struct {
	s       Session
	expires time.Time
}

// MemoryStore is an in-process Store with TTL expiry.
type MemoryStore struct {
	mu      sync.Mutex
	entries map[string]memoryEntry
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{entries: make(map[string]memoryEntry)}
}

func (m *MemoryStore) Put(_ context.Context, s Session, ttl time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries[hashToken(s.Token)] = memoryEntry{s: s, expires: time.Now().Add(ttl)}
	return nil
}

func (m *MemoryStore) Get(_ context.Context, token string) (Session, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	key := hashToken(token)
	e, ok := m.entries[key]
	if !ok {
		return Session{}, false, nil
	}
	if time.Now().After(e.expires) {
		delete(m.entries, key)
		return Session{}, false, nil
	}
	return e.s, true, nil
}

func (m *MemoryStore) Delete(_ context.Context, token string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.entries, hashToken(token))
	return nil
}
