// Package bot is the Telegram front end: it receives contact files,
// offers conversion targets via inline keyboards, and drives the
// convert package. All per-chat state lives in a sessions.Store; the
// bot itself is stateless and safe to restart.
package bot

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/haryo/vcfconv/convert"
	"github.com/haryo/vcfconv/internal/logctx"
	"github.com/haryo/vcfconv/sessions"
	"github.com/haryo/vcfconv/vcard"
)

// Sender is the slice of the Telegram API the bot needs. It is
// satisfied by *tgbotapi.BotAPI and by test fakes.
type Sender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
	Request(c tgbotapi.Chattable) (*tgbotapi.APIResponse, error)
	GetFileDirectURL(fileID string) (string, error)
}

const defaultMaxFileBytes = 15 << 20

// Bot handles Telegram updates for the contact converter.
type Bot struct {
	api   Sender
	store sessions.Store
	log   *slog.Logger

	tmpDir       string
	sessionTTL   time.Duration
	maxFileBytes int64
	httpClient   *http.Client
}

// New creates a Bot. The store owns session expiry; the bot only reads
// and writes it.
func New(api Sender, store sessions.Store, opts ...Option) *Bot {
	b := &Bot{
		api:          api,
		store:        store,
		log:          slog.New(slog.NewTextHandler(io.Discard, nil)),
		tmpDir:       filepath.Join(os.TempDir(), "vcfconv-bot"),
		sessionTTL:   sessions.DefaultTTL,
		maxFileBytes: defaultMaxFileBytes,
		httpClient:   http.DefaultClient,
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Run consumes updates until the context is canceled. Each update is
// handled synchronously; a panic-free handler and best-effort error
// replies keep one bad update from taking the loop down.
func (b *Bot) Run(ctx context.Context, updates <-chan tgbotapi.Update) error {
	b.log.InfoContext(ctx, "bot loop starting")
	for {
		select {
		case <-ctx.Done():
			b.log.InfoContext(ctx, "bot loop stopping", slog.String("reason", ctx.Err().Error()))
			return ctx.Err()
		case upd, ok := <-updates:
			if !ok {
				return nil
			}
			b.HandleUpdate(ctx, upd)
		}
	}
}

// HandleUpdate dispatches one update. Exported so transports and tests
// can feed updates directly.
func (b *Bot) HandleUpdate(ctx context.Context, upd tgbotapi.Update) {
	switch {
	case upd.CallbackQuery != nil:
		ctx = b.updateContext(ctx, upd, "callback", "")
		b.handleCallback(ctx, upd.CallbackQuery)
	case upd.Message != nil && upd.Message.IsCommand():
		ctx = b.updateContext(ctx, upd, "command", "")
		b.handleCommand(ctx, upd.Message)
	case upd.Message != nil && upd.Message.Document != nil:
		ctx = b.updateContext(ctx, upd, "document", upd.Message.Document.FileName)
		b.handleDocument(ctx, upd.Message)
	case upd.Message != nil && upd.Message.Text != "":
		ctx = b.updateContext(ctx, upd, "text", "")
		b.handleText(ctx, upd.Message)
	}
}

func (b *Bot) updateContext(ctx context.Context, upd tgbotapi.Update, kind, fileName string) context.Context {
	var chatID int64
	var username string
	if upd.Message != nil && upd.Message.Chat != nil {
		chatID = upd.Message.Chat.ID
		if upd.Message.From != nil {
			username = upd.Message.From.UserName
		}
	} else if upd.CallbackQuery != nil {
		if upd.CallbackQuery.From != nil {
			username = upd.CallbackQuery.From.UserName
		}
		if upd.CallbackQuery.Message != nil && upd.CallbackQuery.Message.Chat != nil {
			chatID = upd.CallbackQuery.Message.Chat.ID
		}
	}
	ctx = logctx.WithChatData(ctx, &logctx.ChatData{ChatID: chatID, Username: username})
	return logctx.WithUpdateData(ctx, &logctx.UpdateData{
		UpdateID: upd.UpdateID,
		Kind:     kind,
		FileName: fileName,
	})
}

const usageText = `Send me a contacts file (.csv, .txt, .tsv, .xlsx or .vcf) and pick a target format.

Commands:
/split - send a .vcf next and get one file per contact, zipped
/merge - start a merge session, upload .vcf files, then /finish_merge
/makevcf - send contact lines as text and get a .vcf back
/cancel - forget the current session`

func (b *Bot) handleCommand(ctx context.Context, msg *tgbotapi.Message) {
	chatID := msg.Chat.ID
	switch msg.Command() {
	case "start", "help":
		b.reply(ctx, chatID, usageText)

	case "split":
		sess := b.session(ctx, chatID)
		sess.ExpectSplit = true
		b.putSession(ctx, chatID, sess)
		b.reply(ctx, chatID, "Send the .vcf you want split. You'll get a ZIP with one contact per file.")

	case "merge":
		b.putSession(ctx, chatID, &sessions.Session{Merging: true})
		b.reply(ctx, chatID, "Merge session started. Upload .vcf files one by one, then send /finish_merge.")

	case "finish_merge":
		b.finishMerge(ctx, chatID)

	case "makevcf":
		sess := b.session(ctx, chatID)
		sess.ExpectFreeText = true
		b.putSession(ctx, chatID, sess)
		b.reply(ctx, chatID, "Send contact lines like:\nName: John Doe; Phone: +628123; Email: j@example.com\nor CSV-like: John Doe, +628123, j@example.com")

	case "cancel":
		if err := b.store.Delete(ctx, chatID); err != nil {
			b.log.ErrorContext(ctx, "delete session", slog.String("err", err.Error()))
		}
		b.cleanupChat(chatID)
		b.reply(ctx, chatID, "Session cleared.")

	default:
		b.reply(ctx, chatID, "Unknown command. Try /help.")
	}
}

func (b *Bot) handleText(ctx context.Context, msg *tgbotapi.Message) {
	chatID := msg.Chat.ID
	sess := b.session(ctx, chatID)
	if !sess.ExpectFreeText {
		b.reply(ctx, chatID, "I work with files. Send a contacts file, or /makevcf to build one from text.")
		return
	}

	sess.ExpectFreeText = false
	b.putSession(ctx, chatID, sess)

	recs := convert.FromFreeText(msg.Text)
	if len(recs) == 0 {
		b.reply(ctx, chatID, "I couldn't find any contacts in that text. See /makevcf for the expected shapes.")
		return
	}
	doc := tgbotapi.NewDocument(chatID, tgbotapi.FileBytes{
		Name:  "created.vcf",
		Bytes: []byte(vcard.EncodeAll(recs)),
	})
	if _, err := b.api.Send(doc); err != nil {
		b.log.ErrorContext(ctx, "send created vcf", slog.String("err", err.Error()))
		return
	}
	b.log.InfoContext(ctx, "created vcf from text", slog.Int("contacts", len(recs)))
}

func (b *Bot) finishMerge(ctx context.Context, chatID int64) {
	sess := b.session(ctx, chatID)
	if !sess.Merging || len(sess.MergeFiles) == 0 {
		b.reply(ctx, chatID, "Nothing to merge. Start with /merge and upload .vcf files first.")
		return
	}

	out := filepath.Join(b.chatDir(chatID), "merged.vcf")
	if err := convert.MergeVCFFiles(out, sess.MergeFiles...); err != nil {
		b.log.ErrorContext(ctx, "merge failed", slog.String("err", err.Error()))
		b.reply(ctx, chatID, "Merge failed: "+err.Error())
		return
	}
	if _, err := b.api.Send(tgbotapi.NewDocument(chatID, tgbotapi.FilePath(out))); err != nil {
		b.log.ErrorContext(ctx, "send merged vcf", slog.String("err", err.Error()))
		return
	}

	if err := b.store.Delete(ctx, chatID); err != nil {
		b.log.ErrorContext(ctx, "delete session", slog.String("err", err.Error()))
	}
	b.cleanupChat(chatID)
	b.log.InfoContext(ctx, "merge finished", slog.Int("files", len(sess.MergeFiles)))
}

func (b *Bot) handleCallback(ctx context.Context, cq *tgbotapi.CallbackQuery) {
	// Always answer the callback so the client stops its spinner.
	if _, err := b.api.Request(tgbotapi.NewCallback(cq.ID, "")); err != nil {
		b.log.WarnContext(ctx, "answer callback", slog.String("err", err.Error()))
	}
	if cq.Message == nil || cq.Message.Chat == nil {
		return
	}
	chatID := cq.Message.Chat.ID

	targetExt, ok := parseCallback(cq.Data)
	if !ok {
		return
	}

	sess := b.session(ctx, chatID)
	if sess.LastFile == "" {
		b.edit(ctx, chatID, cq.Message.MessageID, "I lost track of your file. Please upload it again.")
		return
	}
	if _, err := os.Stat(sess.LastFile); err != nil {
		b.edit(ctx, chatID, cq.Message.MessageID, "Your file has expired. Please upload it again.")
		return
	}

	src := sess.LastFile
	dst := src[:len(src)-len(filepath.Ext(src))] + targetExt
	ctx = logctx.WithConversionData(ctx, &logctx.ConversionData{
		From: filepath.Ext(src),
		To:   targetExt,
	})

	if err := convert.Convert(src, dst); err != nil {
		b.log.ErrorContext(ctx, "conversion failed", slog.String("err", err.Error()))
		b.edit(ctx, chatID, cq.Message.MessageID, "Conversion failed: "+err.Error())
		return
	}

	b.edit(ctx, chatID, cq.Message.MessageID, "Done. Sending "+filepath.Base(dst)+"…")
	if _, err := b.api.Send(tgbotapi.NewDocument(chatID, tgbotapi.FilePath(dst))); err != nil {
		b.log.ErrorContext(ctx, "send converted file", slog.String("err", err.Error()))
		return
	}
	b.log.InfoContext(ctx, "conversion delivered")
}

// session loads the chat's session, returning a fresh one when absent.
// Store failures degrade to a fresh session: the bot stays usable even
// when the backend hiccups, at the cost of forgetting mid-flight state.
func (b *Bot) session(ctx context.Context, chatID int64) *sessions.Session {
	sess, err := b.store.Get(ctx, chatID)
	if err != nil {
		b.log.ErrorContext(ctx, "load session", slog.String("err", err.Error()))
	}
	if sess == nil {
		sess = &sessions.Session{}
	}
	return sess
}

func (b *Bot) putSession(ctx context.Context, chatID int64, sess *sessions.Session) {
	if err := b.store.Put(ctx, chatID, sess, sessions.WithTTL(b.sessionTTL)); err != nil {
		b.log.ErrorContext(ctx, "store session", slog.String("err", err.Error()))
	}
}

func (b *Bot) reply(ctx context.Context, chatID int64, text string) {
	if _, err := b.api.Send(tgbotapi.NewMessage(chatID, text)); err != nil {
		b.log.ErrorContext(ctx, "send reply", slog.String("err", err.Error()))
	}
}

func (b *Bot) edit(ctx context.Context, chatID int64, messageID int, text string) {
	if _, err := b.api.Send(tgbotapi.NewEditMessageText(chatID, messageID, text)); err != nil {
		b.log.ErrorContext(ctx, "edit message", slog.String("err", err.Error()))
	}
}

// chatDir is the per-chat staging directory.
func (b *Bot) chatDir(chatID int64) string {
	dir := filepath.Join(b.tmpDir, strconv.FormatInt(chatID, 10))
	if err := os.MkdirAll(dir, 0o700); err != nil {
		b.log.Error("create chat dir", slog.String("err", err.Error()))
	}
	return dir
}

// cleanupChat removes the chat's staged files, best effort.
func (b *Bot) cleanupChat(chatID int64) {
	_ = os.RemoveAll(filepath.Join(b.tmpDir, strconv.FormatInt(chatID, 10)))
}
