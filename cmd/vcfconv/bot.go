package main

import (
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/spf13/cobra"

	"github.com/haryo/vcfconv/bot"
	"github.com/haryo/vcfconv/sessions"
	"github.com/haryo/vcfconv/sessions/memory"
	redissessions "github.com/haryo/vcfconv/sessions/redis"
)

var botCmd = &cobra.Command{
	Use:   "bot",
	Short: "Run the Telegram contact-converter bot",
	Long: `Run the Telegram bot. Configuration comes from the environment:

  BOT_TOKEN               Telegram bot token (required)
  REDIS_ADDR              Redis address for session storage (optional;
                          sessions are in-memory when unset)
  VCFCONV_TMP_DIR         staging directory for uploads
  VCFCONV_SESSION_TTL     idle session lifetime (default 30m)
  VCFCONV_MAX_FILE_BYTES  upload size cap (default 15 MiB)`,
	Args: cobra.NoArgs,
	RunE: runBot,
}

// memoryStoreSize bounds how many concurrent chats keep in-memory
// sessions before the oldest are evicted.
const memoryStoreSize = 4096

func runBot(cmd *cobra.Command, args []string) error {
	cfg, err := bot.LoadConfig()
	if err != nil {
		return err
	}

	var store sessions.Store
	if cfg.RedisAddr != "" {
		store, err = redissessions.New(redissessions.Config{RedisAddr: cfg.RedisAddr})
		if err != nil {
			return fmt.Errorf("redis sessions: %w", err)
		}
		logger.Info("using redis session store", slog.String("addr", cfg.RedisAddr))
	} else {
		store, err = memory.New(memoryStoreSize)
		if err != nil {
			return fmt.Errorf("memory sessions: %w", err)
		}
		logger.Info("using in-memory session store")
	}
	defer func() {
		if err := store.Close(); err != nil {
			logger.Warn("closing session store", slog.String("err", err.Error()))
		}
	}()

	api, err := tgbotapi.NewBotAPI(cfg.Token)
	if err != nil {
		return fmt.Errorf("telegram: %w", err)
	}
	logger.Info("authenticated", slog.String("bot", api.Self.UserName))

	opts := []bot.Option{
		bot.WithLogger(logger),
		bot.WithSessionTTL(cfg.SessionTTL),
		bot.WithMaxFileBytes(cfg.MaxFileBytes),
	}
	if cfg.TempDir != "" {
		opts = append(opts, bot.WithTempDir(cfg.TempDir))
	}
	b := bot.New(api, store, opts...)

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	updCfg := tgbotapi.NewUpdate(0)
	updCfg.Timeout = 30
	updates := api.GetUpdatesChan(updCfg)
	go func() {
		<-ctx.Done()
		api.StopReceivingUpdates()
	}()

	if err := b.Run(ctx, updates); err != nil && ctx.Err() == nil {
		return err
	}
	return nil
}
