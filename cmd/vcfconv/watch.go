package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/haryo/vcfconv/convert"
	"github.com/haryo/vcfconv/tabular"
)

var (
	watchTo  string
	watchOut string
)

var watchCmd = &cobra.Command{
	Use:   "watch DIR",
	Short: "Watch a directory and convert contact files as they appear",
	Long: `Watch monitors a directory and converts every supported contact
file dropped into it to the --to format, writing results next to the
source or into --out. Files already present when the watch starts are
converted first.`,
	Args: cobra.ExactArgs(1),
	RunE: runWatch,
}

func init() {
	watchCmd.Flags().StringVar(&watchTo, "to", ".vcf", "Target extension (.vcf, .csv, .tsv, .xlsx)")
	watchCmd.Flags().StringVar(&watchOut, "out", "", "Output directory (default: alongside the source)")
}

// settleDelay gives writers time to finish before a created file is
// read. Telegram-sized contact files land well within this window.
const settleDelay = 200 * time.Millisecond

func runWatch(cmd *cobra.Command, args []string) error {
	dir := args[0]
	target := strings.ToLower(watchTo)
	if !strings.HasPrefix(target, ".") {
		target = "." + target
	}
	if target != convert.VCFExtension && !tabular.SupportedExtension(target) {
		return fmt.Errorf("unsupported target format %q", watchTo)
	}
	if watchOut != "" {
		if err := os.MkdirAll(watchOut, 0o755); err != nil {
			return err
		}
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("watch: %w", err)
	}
	defer func() {
		_ = w.Close()
	}()
	if err := w.Add(dir); err != nil {
		return fmt.Errorf("watch %s: %w", dir, err)
	}

	// Convert whatever is already there before waiting for events.
	entries, err := os.ReadDir(dir)
	if err != nil {
		return err
	}
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		convertWatched(ctx, filepath.Join(dir, e.Name()), target)
	}

	logger.InfoContext(ctx, "watching", slog.String("dir", dir), slog.String("to", target))
	for {
		select {
		case <-ctx.Done():
			logger.Info("watch stopped")
			return nil
		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if ev.Op&fsnotify.Create != fsnotify.Create {
				continue
			}
			fi, err := os.Stat(ev.Name)
			if err != nil || fi.IsDir() {
				continue
			}
			time.Sleep(settleDelay)
			convertWatched(ctx, ev.Name, target)
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			logger.WarnContext(ctx, "watch error", slog.String("err", err.Error()))
		}
	}
}

func convertWatched(ctx context.Context, src, target string) {
	ext := strings.ToLower(filepath.Ext(src))
	if ext == target {
		return
	}
	if ext != convert.VCFExtension && !tabular.SupportedExtension(src) {
		return
	}

	dst := strings.TrimSuffix(src, filepath.Ext(src)) + target
	if watchOut != "" {
		dst = filepath.Join(watchOut, filepath.Base(dst))
	}
	if err := convert.Convert(src, dst); err != nil {
		logger.WarnContext(ctx, "conversion failed",
			slog.String("src", filepath.Base(src)),
			slog.String("err", err.Error()))
		return
	}
	logger.InfoContext(ctx, "converted",
		slog.String("src", filepath.Base(src)),
		slog.String("dst", filepath.Base(dst)))
}
