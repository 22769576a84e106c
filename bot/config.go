package bot

import (
	"fmt"
	"time"

	"github.com/joeshaw/envdecode"
)

// Config is the bot's environment configuration.
type Config struct {
	// Token authenticates against the Telegram Bot API. ENV: BOT_TOKEN
	Token string `env:"BOT_TOKEN,required"`

	// RedisAddr enables the Redis session store when non-empty;
	// otherwise sessions live in process memory. ENV: REDIS_ADDR
	RedisAddr string `env:"REDIS_ADDR"`

	// TempDir is where uploads are staged. Empty means the system
	// temp directory. ENV: VCFCONV_TMP_DIR
	TempDir string `env:"VCFCONV_TMP_DIR"`

	// SessionTTL bounds how long an idle conversation keeps its state
	// and staged files. ENV: VCFCONV_SESSION_TTL
	SessionTTL time.Duration `env:"VCFCONV_SESSION_TTL,default=30m"`

	// MaxFileBytes rejects documents larger than this before download.
	// ENV: VCFCONV_MAX_FILE_BYTES
	MaxFileBytes int64 `env:"VCFCONV_MAX_FILE_BYTES,default=15728640"`
}

// LoadConfig populates Config from the environment. A missing token is
// a hard error: the bot cannot do anything without it.
func LoadConfig() (Config, error) {
	var cfg Config
	if err := envdecode.Decode(&cfg); err != nil {
		return Config{}, fmt.Errorf("bot: config: %w", err)
	}
	return cfg, nil
}
