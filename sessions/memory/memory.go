// Package memory provides an in-memory sessions.Store backed by an LRU
// cache with TTL support. Suitable for single-process bot deployments;
// state is lost on restart.
package memory

import (
	"context"
	"fmt"
	"sync"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/haryo/vcfconv/sessions"
)

const sweepInterval = 5 * time.Minute

type item struct {
	sess      sessions.Session
	expiresAt time.Time
}

func (it *item) expired(now time.Time) bool {
	return now.After(it.expiresAt)
}

// Store implements sessions.Store in memory.
type Store struct {
	mu    sync.RWMutex
	cache *lru.Cache[int64, *item]
	stop  chan struct{}
	once  sync.Once
}

var _ sessions.Store = (*Store)(nil)

// New creates a store bounded to maxChats concurrent sessions. Least
// recently used sessions are evicted past that bound; expired ones are
// swept in the background.
func New(maxChats int) (*Store, error) {
	cache, err := lru.New[int64, *item](maxChats)
	if err != nil {
		return nil, fmt.Errorf("sessions/memory: create cache: %w", err)
	}
	s := &Store{cache: cache, stop: make(chan struct{})}
	go s.sweep()
	return s, nil
}

func (s *Store) Get(ctx context.Context, chatID int64) (*sessions.Session, error) {
	s.mu.RLock()
	it, ok := s.cache.Get(chatID)
	s.mu.RUnlock()
	if !ok {
		return nil, nil
	}
	if it.expired(time.Now()) {
		s.mu.Lock()
		s.cache.Remove(chatID)
		s.mu.Unlock()
		return nil, nil
	}
	// Copy out so callers can't mutate cached state without a Put.
	sess := it.sess
	return &sess, nil
}

func (s *Store) Put(ctx context.Context, chatID int64, sess *sessions.Session, opts ...sessions.Option) error {
	var o sessions.Options
	o.Apply(opts)

	if sess.CreatedAt.IsZero() {
		sess.CreatedAt = time.Now()
	}
	it := &item{sess: *sess, expiresAt: time.Now().Add(o.TTL)}

	s.mu.Lock()
	s.cache.Add(chatID, it)
	s.mu.Unlock()
	return nil
}

func (s *Store) Delete(ctx context.Context, chatID int64) error {
	s.mu.Lock()
	s.cache.Remove(chatID)
	s.mu.Unlock()
	return nil
}

// Close stops the background sweeper and drops all sessions.
func (s *Store) Close() error {
	s.once.Do(func() { close(s.stop) })
	s.mu.Lock()
	s.cache.Purge()
	s.mu.Unlock()
	return nil
}

func (s *Store) sweep() {
	ticker := time.NewTicker(sweepInterval)
	defer ticker.Stop()
	for {
		select {
		case <-s.stop:
			return
		case <-ticker.C:
			now := time.Now()
			s.mu.Lock()
			for _, key := range s.cache.Keys() {
				if it, ok := s.cache.Peek(key); ok && it.expired(now) {
					s.cache.Remove(key)
				}
			}
			s.mu.Unlock()
		}
	}
}
