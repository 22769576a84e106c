// Package sessions defines the per-chat state store used by the bot
// layer. A Session records what a conversation is in the middle of: the
// last uploaded file awaiting a format choice, an accumulating merge
// file list, or an armed split/free-text expectation. Sessions are
// keyed by chat id, created explicitly, and expire via TTL so abandoned
// conversations never pin temp files forever.
//
// Two implementations exist: memory (LRU with TTL sweep, for
// single-process deployments) and redis (for deployments where the bot
// restarts or runs replicated). The codec and converters never touch
// this package.
package sessions

import (
	"context"
	"time"
)

// Session is the mutable per-chat state. The zero value is a valid
// fresh session.
type Session struct {
	// LastFile is the path of the most recently uploaded document,
	// kept until the user picks a conversion target.
	LastFile string `json:"last_file,omitempty"`

	// Merging marks an active /merge session; MergeFiles accumulates
	// the uploaded vCard paths in arrival order.
	Merging    bool     `json:"merging,omitempty"`
	MergeFiles []string `json:"merge_files,omitempty"`

	// ExpectSplit marks that the next uploaded vCard should be split.
	ExpectSplit bool `json:"expect_split,omitempty"`

	// ExpectFreeText marks that the next text message should be parsed
	// into vCards (/makevcf).
	ExpectFreeText bool `json:"expect_free_text,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}

// Store persists sessions keyed by chat id.
type Store interface {
	// Get returns the session for a chat, or nil when none exists or
	// it has expired. An error means the backend itself failed.
	Get(ctx context.Context, chatID int64) (*Session, error)

	// Put stores the session, resetting its TTL.
	Put(ctx context.Context, chatID int64, sess *Session, opts ...Option) error

	// Delete removes the session. Deleting an absent session is not an
	// error.
	Delete(ctx context.Context, chatID int64) error

	// Close releases backend resources.
	Close() error
}

// DefaultTTL applies when a Put carries no WithTTL option.
const DefaultTTL = 30 * time.Minute

// Option configures a store operation.
type Option func(*Options)

// Options carries per-operation settings.
type Options struct {
	TTL time.Duration
}

// WithTTL overrides the session's time-to-live for this Put.
func WithTTL(ttl time.Duration) Option {
	return func(o *Options) { o.TTL = ttl }
}

// Apply folds options over defaults.
func (o *Options) Apply(opts []Option) {
	o.TTL = DefaultTTL
	for _, opt := range opts {
		opt(o)
	}
}
