package bot

import (
	"log/slog"
	"net/http"
	"time"
)

// Option customizes a Bot.
type Option func(*Bot)

// WithLogger sets the logger. If not provided, logs are discarded.
func WithLogger(l *slog.Logger) Option {
	return func(b *Bot) {
		if l != nil {
			b.log = l
		}
	}
}

// WithTempDir overrides where uploads are staged.
func WithTempDir(dir string) Option {
	return func(b *Bot) {
		if dir != "" {
			b.tmpDir = dir
		}
	}
}

// WithSessionTTL overrides how long idle conversations keep their
// state.
func WithSessionTTL(ttl time.Duration) Option {
	return func(b *Bot) {
		if ttl > 0 {
			b.sessionTTL = ttl
		}
	}
}

// WithMaxFileBytes overrides the upload size cap.
func WithMaxFileBytes(n int64) Option {
	return func(b *Bot) {
		if n > 0 {
			b.maxFileBytes = n
		}
	}
}

// WithHTTPClient overrides the client used to download uploads.
func WithHTTPClient(c *http.Client) Option {
	return func(b *Bot) {
		if c != nil {
			b.httpClient = c
		}
	}
}
