// Package redis provides a Redis-backed sessions.Store. Session values
// are stored as JSON under a configurable key prefix with the TTL
// enforced by Redis itself, so expiry survives bot restarts and works
// across replicas.
package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/joeshaw/envdecode"
	"github.com/redis/go-redis/v9"

	"github.com/haryo/vcfconv/sessions"
)

// Config for the Redis store. Defaults can be loaded via envdecode.
type Config struct {
	// RedisAddr like "localhost:6379". ENV: REDIS_ADDR
	RedisAddr string `env:"REDIS_ADDR,default=localhost:6379"`
	// KeyPrefix for all session keys. ENV: SESSIONS_KEY_PREFIX
	KeyPrefix string `env:"SESSIONS_KEY_PREFIX,default=vcfconv:sessions:"`

	// Client overrides RedisAddr with an existing client (tests).
	Client *redis.Client
}

// Store implements sessions.Store on Redis.
type Store struct {
	client    *redis.Client
	keyPrefix string
}

var _ sessions.Store = (*Store)(nil)

// New connects and pings the backend so misconfiguration surfaces at
// startup, not on the first user interaction.
func New(cfg Config) (*Store, error) {
	cl := cfg.Client
	if cl == nil {
		addr := cfg.RedisAddr
		if addr == "" {
			addr = "localhost:6379"
		}
		cl = redis.NewClient(&redis.Options{Addr: addr})
	}
	if err := cl.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("sessions/redis: ping: %w", err)
	}
	prefix := cfg.KeyPrefix
	if prefix == "" {
		prefix = "vcfconv:sessions:"
	}
	return &Store{client: cl, keyPrefix: prefix}, nil
}

// NewFromEnv builds a Store using envdecode to populate Config.
// Defaults are provided via struct tags, so decode errors are ignored.
func NewFromEnv() (*Store, error) {
	var cfg Config
	_ = envdecode.Decode(&cfg)
	return New(cfg)
}

func (s *Store) key(chatID int64) string {
	return s.keyPrefix + strconv.FormatInt(chatID, 10)
}

func (s *Store) Get(ctx context.Context, chatID int64) (*sessions.Session, error) {
	data, err := s.client.Get(ctx, s.key(chatID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("sessions/redis: get: %w", err)
	}
	var sess sessions.Session
	if err := json.Unmarshal(data, &sess); err != nil {
		// Treat undecodable state as absent rather than wedging the
		// chat forever.
		return nil, nil
	}
	return &sess, nil
}

func (s *Store) Put(ctx context.Context, chatID int64, sess *sessions.Session, opts ...sessions.Option) error {
	var o sessions.Options
	o.Apply(opts)

	if sess.CreatedAt.IsZero() {
		sess.CreatedAt = time.Now()
	}
	data, err := json.Marshal(sess)
	if err != nil {
		return fmt.Errorf("sessions/redis: marshal: %w", err)
	}
	if err := s.client.Set(ctx, s.key(chatID), data, o.TTL).Err(); err != nil {
		return fmt.Errorf("sessions/redis: set: %w", err)
	}
	return nil
}

func (s *Store) Delete(ctx context.Context, chatID int64) error {
	if err := s.client.Del(context.WithoutCancel(ctx), s.key(chatID)).Err(); err != nil {
		return fmt.Errorf("sessions/redis: del: %w", err)
	}
	return nil
}

func (s *Store) Close() error { return s.client.Close() }
