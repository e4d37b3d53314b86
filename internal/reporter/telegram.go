package reporter

import (
	"fmt"
	"html"
	"strings"

	"go-uncareers-harvester/internal/config"
	"go-uncareers-harvester/internal/scraper"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

type TelegramReporter struct {
	bot    *tgbotapi.BotAPI
	chatID int64
}

func NewTelegramReporter(cfg *config.Config) (*TelegramReporter, error) {
	bot, err := tgbotapi.NewBotAPI(cfg.TelegramToken)
	if err != nil {
		return nil, fmt.Errorf("failed to init telegram bot: %w", err)
	}

	//turn this on in case of debug
	//bot.Debug = true

	return &TelegramReporter{
		bot:    bot,
		chatID: cfg.TelegramChatID,
	}, nil
}

func (t *TelegramReporter) SendMessage(text string) error {
	msg := tgbotapi.NewMessage(t.chatID, text)
	msg.ParseMode = "HTML" //use HTML for bold/italic
	_, err := t.bot.Send(msg)
	return err
}

// SendSummary reports how a run went and where the CSV was written.
func (t *TelegramReporter) SendSummary(source string, summary scraper.Summary, outputPath string) error {
	return t.SendMessage(formatSummary(source, summary, outputPath))
}

func (t *TelegramReporter) SendError(errReq error) error {
	text := fmt.Sprintf("⚠️ <b>Harvest Error</b>:\n%s", html.EscapeString(errReq.Error()))
	return t.SendMessage(text)
}

func formatSummary(source string, s scraper.Summary, outputPath string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "✅ <b>%s harvest finished</b>\n", html.EscapeString(source))
	fmt.Fprintf(&b, "📄 Pages: %d/%d visited\n", s.PagesVisited, s.PagesTotal)
	if len(s.SkippedPages) > 0 {
		pages := make([]string, len(s.SkippedPages))
		for i, p := range s.SkippedPages {
			pages[i] = fmt.Sprint(p.Page)
		}
		fmt.Fprintf(&b, "⏭️ Skipped pages: %s\n", strings.Join(pages, ", "))
	}
	fmt.Fprintf(&b, "📦 Rows: %d extracted, %d skipped\n", s.RowsExtracted, s.RowsSkipped())
	fmt.Fprintf(&b, "🎯 Relevant postings: %d\n", s.Kept)
	fmt.Fprintf(&b, "📁 %s", html.EscapeString(outputPath))
	return b.String()
}
