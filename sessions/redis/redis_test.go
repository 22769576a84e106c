package redis

import (
	"context"
	"testing"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/haryo/vcfconv/sessions"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()

	client := goredis.NewClient(&goredis.Options{
		Addr: "127.0.0.1:6379",
		DB:   2, // separate DB for session tests
	})
	ctx := context.Background()
	if err := client.Ping(ctx).Err(); err != nil {
		t.Skipf("Redis not available: %v", err)
	}
	t.Cleanup(func() { client.FlushDB(ctx) })

	s, err := New(Config{Client: client, KeyPrefix: "vcfconv:test:sessions:"})
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}
	return s
}

func TestRedisStore(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	t.Run("GetMissing", func(t *testing.T) {
		sess, err := s.Get(ctx, 42)
		if err != nil {
			t.Fatalf("Get() failed: %v", err)
		}
		if sess != nil {
			t.Fatal("expected nil session")
		}
	})

	t.Run("PutGetDelete", func(t *testing.T) {
		in := &sessions.Session{
			LastFile:   "/tmp/chat42/contacts.xlsx",
			Merging:    true,
			MergeFiles: []string{"a.vcf", "b.vcf"},
		}
		if err := s.Put(ctx, 42, in); err != nil {
			t.Fatalf("Put() failed: %v", err)
		}

		got, err := s.Get(ctx, 42)
		if err != nil {
			t.Fatalf("Get() failed: %v", err)
		}
		if got == nil || got.LastFile != in.LastFile || len(got.MergeFiles) != 2 || !got.Merging {
			t.Fatalf("Get() = %+v", got)
		}

		if err := s.Delete(ctx, 42); err != nil {
			t.Fatalf("Delete() failed: %v", err)
		}
		if sess, _ := s.Get(ctx, 42); sess != nil {
			t.Fatal("session should be gone after Delete")
		}
	})

	t.Run("TTL", func(t *testing.T) {
		ttl := 200 * time.Millisecond
		if err := s.Put(ctx, 7, &sessions.Session{ExpectSplit: true}, sessions.WithTTL(ttl)); err != nil {
			t.Fatalf("Put() failed: %v", err)
		}
		if sess, _ := s.Get(ctx, 7); sess == nil {
			t.Fatal("session should exist before expiry")
		}
		time.Sleep(ttl + 100*time.Millisecond)
		if sess, _ := s.Get(ctx, 7); sess != nil {
			t.Fatal("session should expire via Redis TTL")
		}
	})
}
