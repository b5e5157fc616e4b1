package session

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/sirupsen/logrus"

	"mostface/internal/models"
)

// MemoryAdapter keeps the persisted slices in process memory. It backs tests
// and the default no-backend configuration. Values round-trip through JSON so
// the serialization path matches the durable backends.
type MemoryAdapter struct {
	mu     sync.Mutex
	values map[string][]byte
	log    *logrus.Entry
}

// NewMemoryAdapter creates an empty in-memory adapter.
func NewMemoryAdapter(log *logrus.Entry) *MemoryAdapter {
	return &MemoryAdapter{values: make(map[string][]byte), log: log}
}

// Load decodes whatever was saved earlier in this process.
func (a *MemoryAdapter) Load(ctx context.Context) (*Snapshot, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	return decodeSnapshot(a.values[CurrentUserKey], a.values[UserDirectoryKey], a.log), nil
}

// SaveCurrentUser stores the session owner; nil deletes the key.
func (a *MemoryAdapter) SaveCurrentUser(ctx context.Context, user *models.User) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	if user == nil {
		delete(a.values, CurrentUserKey)
		return nil
	}
	raw, err := json.Marshal(user)
	if err != nil {
		return err
	}
	a.values[CurrentUserKey] = raw
	return nil
}

// SaveDirectory stores the full user directory.
func (a *MemoryAdapter) SaveDirectory(ctx context.Context, users []models.User) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	raw, err := json.Marshal(users)
	if err != nil {
		return err
	}
	a.values[UserDirectoryKey] = raw
	return nil
}

// Close is a no-op.
func (a *MemoryAdapter) Close() error {
	return nil
}

// Corrupt overwrites a stored key with invalid JSON. Test hook for the
// corrupted-snapshot recovery path.
func (a *MemoryAdapter) Corrupt(key string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.values[key] = []byte("{not json")
}
