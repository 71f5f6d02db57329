package userstore

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"github.com/idilsaglam/demo/internal/model"
)

// Fetcher loads the full user list from somewhere remote.
type Fetcher interface {
	FetchUsers(ctx context.Context) ([]model.User, error)
}

type Option func(*Store)

func WithLogger(l *zap.Logger) Option {
	return func(s *Store) {
		if l != nil {
			s.log = l
		}
	}
}

// Store holds the last successfully fetched user snapshot.
type Store struct {
	mu    sync.RWMutex
	users []model.User

	fetcher Fetcher
	log     *zap.Logger
}

func New(f Fetcher, opts ...Option) *Store {
	s := &Store{
		users:   []model.User{},
		fetcher: f,
		log:     zap.NewNop(),
	}
	for _, o := range opts {
		o(s)
	}
	return s
}

// Users returns a copy of the current snapshot.
func (s *Store) Users() []model.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.User, len(s.users))
	copy(out, s.users)
	return out
}

func (s *Store) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.users = []model.User{}
}

// GetAllUsers starts a fetch in the background and returns without waiting.
// A successful fetch replaces the whole list; a failed one leaves it as is.
// Overlapping fetches are allowed and the last one to finish wins.
func (s *Store) GetAllUsers(ctx context.Context) *Fetch {
	ctx, cancel := context.WithCancel(ctx)
	f := &Fetch{done: make(chan struct{}), cancel: cancel}
	go func() {
		defer cancel()
		defer close(f.done)
		users, err := s.fetcher.FetchUsers(ctx)
		if err != nil {
			s.log.Debug("fetch users failed", zap.Error(err))
			f.err = err
			return
		}
		if users == nil {
			users = []model.User{}
		}
		s.mu.Lock()
		// a canceled fetch never lands, even if the response was already read
		if err := ctx.Err(); err != nil {
			s.mu.Unlock()
			s.log.Debug("fetch users canceled", zap.Error(err))
			f.err = err
			return
		}
		s.users = users
		s.mu.Unlock()
		s.log.Debug("fetched users", zap.Int("count", len(users)))
	}()
	return f
}
