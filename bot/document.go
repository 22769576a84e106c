package bot

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/elnormous/contenttype"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/google/uuid"

	"github.com/haryo/vcfconv/convert"
	"github.com/haryo/vcfconv/tabular"
)

// tabularMediaTypes are the application/* subtypes we accept for
// spreadsheet uploads. Anything text/* is accepted as-is; Telegram
// clients are loose about MIME so this is a sanity check, not a gate.
var tabularMediaTypes = []contenttype.MediaType{
	contenttype.NewMediaType("application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"),
	contenttype.NewMediaType("application/vnd.ms-excel"),
	contenttype.NewMediaType("application/octet-stream"),
	contenttype.NewMediaType("application/csv"),
	contenttype.NewMediaType("application/zip"),
}

func allowedMediaType(mime string) bool {
	if mime == "" {
		return true
	}
	mt, err := contenttype.ParseMediaType(mime)
	if err != nil {
		return false
	}
	if mt.Type == "text" {
		return true
	}
	for _, allowed := range tabularMediaTypes {
		if mt.Type == allowed.Type && mt.Subtype == allowed.Subtype {
			return true
		}
	}
	return false
}

func supportedUpload(name string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	return ext == convert.VCFExtension || tabular.SupportedExtension(name)
}

func (b *Bot) handleDocument(ctx context.Context, msg *tgbotapi.Message) {
	chatID := msg.Chat.ID
	doc := msg.Document

	if !supportedUpload(doc.FileName) {
		b.reply(ctx, chatID, "I can't read that file type. Send .csv, .txt, .tsv, .xlsx or .vcf.")
		return
	}
	if !allowedMediaType(doc.MimeType) {
		b.reply(ctx, chatID, "That doesn't look like a contacts file.")
		return
	}
	if b.maxFileBytes > 0 && int64(doc.FileSize) > b.maxFileBytes {
		b.reply(ctx, chatID, fmt.Sprintf("File too large. The limit is %d MB.", b.maxFileBytes>>20))
		return
	}

	local, err := b.download(ctx, chatID, doc)
	if err != nil {
		b.log.ErrorContext(ctx, "download document", slog.String("err", err.Error()))
		b.reply(ctx, chatID, "I couldn't download that file, please try again.")
		return
	}
	b.log.InfoContext(ctx, "document staged", slog.String("path", filepath.Base(local)))

	ext := strings.ToLower(filepath.Ext(doc.FileName))
	sess := b.session(ctx, chatID)

	switch {
	case sess.Merging:
		if ext != convert.VCFExtension {
			b.reply(ctx, chatID, "Merge sessions only take .vcf files.")
			return
		}
		sess.MergeFiles = append(sess.MergeFiles, local)
		b.putSession(ctx, chatID, sess)
		b.reply(ctx, chatID, fmt.Sprintf("Added. %d file(s) queued. Send more or /finish_merge.", len(sess.MergeFiles)))

	case sess.ExpectSplit:
		if ext != convert.VCFExtension {
			b.reply(ctx, chatID, "/split needs a .vcf file.")
			return
		}
		sess.ExpectSplit = false
		b.putSession(ctx, chatID, sess)
		b.sendSplitZip(ctx, chatID, local)

	default:
		sess.LastFile = local
		b.putSession(ctx, chatID, sess)
		kb, ok := targetsKeyboard(doc.FileName)
		if !ok {
			b.reply(ctx, chatID, "No conversions available for that file type.")
			return
		}
		out := tgbotapi.NewMessage(chatID, "Got it. Convert "+doc.FileName+" to:")
		out.ReplyMarkup = kb
		if _, err := b.api.Send(out); err != nil {
			b.log.ErrorContext(ctx, "send target keyboard", slog.String("err", err.Error()))
		}
	}
}

func (b *Bot) sendSplitZip(ctx context.Context, chatID int64, src string) {
	out := filepath.Join(b.chatDir(chatID), "contacts.zip")
	f, err := os.Create(out)
	if err != nil {
		b.log.ErrorContext(ctx, "create zip", slog.String("err", err.Error()))
		b.reply(ctx, chatID, "Split failed, please try again.")
		return
	}
	n, err := convert.SplitVCFToZip(src, f)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		b.log.ErrorContext(ctx, "split vcf", slog.String("err", err.Error()))
		b.reply(ctx, chatID, "Split failed: "+err.Error())
		return
	}
	if n == 0 {
		b.reply(ctx, chatID, "That .vcf has no contacts to split.")
		return
	}
	if _, err := b.api.Send(tgbotapi.NewDocument(chatID, tgbotapi.FilePath(out))); err != nil {
		b.log.ErrorContext(ctx, "send zip", slog.String("err", err.Error()))
		return
	}
	b.log.InfoContext(ctx, "split delivered", slog.Int("contacts", n))
}

// download fetches the document into the chat's staging directory. The
// uuid name avoids collisions between repeated uploads of the same
// file; the original extension is kept for format routing.
func (b *Bot) download(ctx context.Context, chatID int64, doc *tgbotapi.Document) (string, error) {
	url, err := b.api.GetFileDirectURL(doc.FileID)
	if err != nil {
		return "", fmt.Errorf("resolve file url: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", err
	}
	resp, err := b.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("fetch file: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("fetch file: unexpected status %s", resp.Status)
	}

	ext := strings.ToLower(filepath.Ext(doc.FileName))
	local := filepath.Join(b.chatDir(chatID), uuid.NewString()+ext)
	f, err := os.Create(local)
	if err != nil {
		return "", err
	}

	var body io.Reader = resp.Body
	if b.maxFileBytes > 0 {
		body = io.LimitReader(resp.Body, b.maxFileBytes+1)
	}
	n, err := io.Copy(f, body)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		os.Remove(local)
		return "", err
	}
	if b.maxFileBytes > 0 && n > b.maxFileBytes {
		os.Remove(local)
		return "", fmt.Errorf("file exceeds %d byte limit", b.maxFileBytes)
	}
	return local, nil
}
