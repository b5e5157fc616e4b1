package store

import (
	"context"
	"sync"

	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel"

	"mostface/internal/models"
	"mostface/internal/observability"
	"mostface/internal/session"
)

// Listener receives a state snapshot after every dispatch.
type Listener func(State)

// Store owns the entity registry. All mutation goes through Dispatch, which
// serializes dispatches, applies the reducer, triggers the persistence
// adapter for the slices that must survive a reload, and notifies
// subscribers synchronously. Readers only ever see deep-copied snapshots.
type Store struct {
	mu        sync.Mutex
	state     State
	ids       *IDGenerator
	adapter   session.Adapter
	log       *logrus.Entry
	listeners map[int]Listener
	nextSub   int
}

// New builds an empty store over the given persistence adapter.
func New(adapter session.Adapter, log *logrus.Entry) *Store {
	return &Store{
		state: State{
			Users:         []models.User{},
			Posts:         []models.Post{},
			Items:         []models.MarketplaceItem{},
			Notifications: []models.Notification{},
			Chats:         []models.Chat{},
		},
		ids:       NewIDGenerator(),
		adapter:   adapter,
		log:       log,
		listeners: make(map[int]Listener),
	}
}

// Bootstrap loads the persisted snapshot, once, at process start. A missing
// or corrupted snapshot means a logged-out, empty-directory session; it is
// never fatal.
func (s *Store) Bootstrap(ctx context.Context) {
	snap, err := s.adapter.Load(ctx)
	if err != nil {
		s.log.WithError(err).Warn("session load failed, starting with empty state")
		return
	}
	if snap == nil {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if snap.CurrentUser != nil {
		u := *snap.CurrentUser
		s.state.CurrentUser = &u
		s.ids.Observe(u.ID)
	}
	if len(snap.Directory) > 0 {
		s.state.Users = append([]models.User{}, snap.Directory...)
		for _, u := range snap.Directory {
			s.ids.Observe(u.ID)
		}
	}
	s.log.WithField("directory_size", len(snap.Directory)).Info("session restored")
}

// NextID exposes the store's identifier generator so callers can assign ids
// before dispatching.
func (s *Store) NextID() int64 {
	return s.ids.NextID()
}

// GetState returns a snapshot sharing no memory with the registry.
func (s *Store) GetState() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Clone()
}

// Subscribe registers a listener and returns its unsubscribe function.
func (s *Store) Subscribe(l Listener) func() {
	s.mu.Lock()
	id := s.nextSub
	s.nextSub++
	s.listeners[id] = l
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		delete(s.listeners, id)
		s.mu.Unlock()
	}
}

// Dispatch applies one action. It reports whether the action changed the
// state, so silent no-ops (unknown chat or notification ids) stay observable
// to callers and tests. Persistence failures are reported to the
// observability sink and never roll back the in-memory mutation.
func (s *Store) Dispatch(ctx context.Context, a Action) bool {
	ctx, span := otel.Tracer("mostface/store").Start(ctx, "store.dispatch")
	defer span.End()

	s.mu.Lock()
	next, applied := Reduce(s.state, a)
	s.state = next
	snapshot := next.Clone()
	listeners := make([]Listener, 0, len(s.listeners))
	for _, l := range s.listeners {
		listeners = append(listeners, l)
	}
	s.mu.Unlock()

	observability.IncDispatch(a.name(), applied)

	if applied {
		s.persist(ctx, a, snapshot)
	}

	for _, l := range listeners {
		l(snapshot)
	}
	return applied
}

// persist writes back the slices a dispatch may have touched. Only the
// current-user pointer and the user directory are durable.
func (s *Store) persist(ctx context.Context, a Action, snapshot State) {
	switch a.(type) {
	case SetCurrentUser:
		if err := s.adapter.SaveCurrentUser(ctx, snapshot.CurrentUser); err != nil {
			s.reportSaveFailure(ctx, session.CurrentUserKey, err)
		}
	case RegisterUser:
		if err := s.adapter.SaveDirectory(ctx, snapshot.Users); err != nil {
			s.reportSaveFailure(ctx, session.UserDirectoryKey, err)
		}
	}
}

func (s *Store) reportSaveFailure(ctx context.Context, key string, err error) {
	s.log.WithError(err).WithField("key", key).Error("session save failed, in-memory state remains authoritative")
	observability.IncSessionSaveError(key)
	_ = observability.PublishEvent(ctx, observability.RoutingKeySessionSaveFailed, observability.EventEnvelope{
		EventType: "store_events",
		EventName: "session_save_failed",
		Payload:   map[string]string{"key": key, "reason": err.Error()},
	}, nil)
}
