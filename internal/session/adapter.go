package session

import (
	"context"
	"encoding/json"

	"github.com/sirupsen/logrus"

	"mostface/internal/models"
)

// Persisted key layout. Absence of CurrentUserKey means logged out.
const (
	CurrentUserKey   = "mostface:current_user"
	UserDirectoryKey = "mostface:user_directory"
)

// Snapshot is the slice of state that survives a reload.
type Snapshot struct {
	CurrentUser *models.User  `json:"current_user,omitempty"`
	Directory   []models.User `json:"directory"`
}

// Adapter abstracts the durable key-value storage behind the store. Load runs
// once at startup; the Save methods run synchronously after the dispatches
// that touch their slice. Implementations must treat corrupted or missing
// values as "no snapshot", never as a fatal error.
type Adapter interface {
	Load(ctx context.Context) (*Snapshot, error)
	SaveCurrentUser(ctx context.Context, user *models.User) error
	SaveDirectory(ctx context.Context, users []models.User) error
	Close() error
}

// decodeSnapshot assembles a snapshot from the raw persisted values, dropping
// any slice that fails to decode. A nil result means no usable prior session.
func decodeSnapshot(currentRaw, directoryRaw []byte, log *logrus.Entry) *Snapshot {
	snap := &Snapshot{}
	usable := false

	if len(currentRaw) > 0 {
		var user models.User
		if err := json.Unmarshal(currentRaw, &user); err != nil {
			log.WithError(err).Warn("corrupted current-user value, discarding")
		} else {
			snap.CurrentUser = &user
			usable = true
		}
	}

	if len(directoryRaw) > 0 {
		var directory []models.User
		if err := json.Unmarshal(directoryRaw, &directory); err != nil {
			log.WithError(err).Warn("corrupted user-directory value, discarding")
		} else {
			snap.Directory = directory
			usable = true
		}
	}

	if !usable {
		return nil
	}
	return snap
}
