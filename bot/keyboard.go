package bot

import (
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/haryo/vcfconv/convert"
)

// callbackPrefix namespaces conversion choices in callback data, so the
// handler can cheaply reject stale or foreign callbacks.
const callbackPrefix = "conv:"

// buttonLabels maps target extensions to button captions.
var buttonLabels = map[string]string{
	".vcf":  "To VCF",
	".csv":  "To CSV",
	".tsv":  "To TSV",
	".xlsx": "To XLSX",
}

// targetsKeyboard builds the inline keyboard of conversion targets for
// an uploaded file, two buttons per row. It returns false when the
// extension has no targets.
func targetsKeyboard(path string) (tgbotapi.InlineKeyboardMarkup, bool) {
	targets := convert.ConversionTargets(path)
	if len(targets) == 0 {
		return tgbotapi.InlineKeyboardMarkup{}, false
	}

	var rows [][]tgbotapi.InlineKeyboardButton
	var row []tgbotapi.InlineKeyboardButton
	for _, ext := range targets {
		label := buttonLabels[ext]
		if label == "" {
			label = "To " + strings.ToUpper(strings.TrimPrefix(ext, "."))
		}
		row = append(row, tgbotapi.NewInlineKeyboardButtonData(label, callbackPrefix+ext))
		if len(row) == 2 {
			rows = append(rows, row)
			row = nil
		}
	}
	if len(row) > 0 {
		rows = append(rows, row)
	}
	return tgbotapi.NewInlineKeyboardMarkup(rows...), true
}

// parseCallback extracts the target extension from callback data,
// reporting false for anything this bot did not produce.
func parseCallback(data string) (string, bool) {
	if !strings.HasPrefix(data, callbackPrefix) {
		return "", false
	}
	ext := strings.TrimPrefix(data, callbackPrefix)
	if !strings.HasPrefix(ext, ".") {
		return "", false
	}
	return ext, true
}
