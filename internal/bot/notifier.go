// Package bot delivers messages over Telegram and listens for the bot's
// commands.
package bot

import (
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/palpitebot/palpitebot/internal/pkg/config"
)

// Telegram caps messages at 4096 characters; split a little earlier so the
// HTML tags of a block are never cut in half.
const maxMessageLength = 4000

// Min interval between sends to the same chat to stay under Telegram's rate
// limit (~30 messages/min).
const sendInterval = 2 * time.Second

// Notifier sends messages to the configured channel and to individual chats.
type Notifier struct {
	bot      *tgbotapi.BotAPI
	cfg      config.TelegramConfig
	logger   *slog.Logger
	mu       sync.Mutex
	lastSend time.Time
}

func NewNotifier(cfg config.TelegramConfig, logger *slog.Logger) (*Notifier, error) {
	api, err := tgbotapi.NewBotAPI(cfg.Token)
	if err != nil {
		return nil, fmt.Errorf("failed to create telegram bot: %w", err)
	}
	api.Debug = false

	if _, err := api.GetMe(); err != nil {
		return nil, fmt.Errorf("failed to verify telegram bot: %w", err)
	}

	logger.Info("telegram bot initialized", "account", api.Self.UserName)
	return &Notifier{bot: api, cfg: cfg, logger: logger}, nil
}

// API exposes the underlying bot for the command listener.
func (n *Notifier) API() *tgbotapi.BotAPI {
	return n.bot
}

// SendToChannel posts a message to the configured channel, split into chunks
// when it exceeds the Telegram length limit.
func (n *Notifier) SendToChannel(text string) error {
	return n.SendTo(n.cfg.ChannelID, text)
}

// SendTo sends a message to a chat in HTML mode, chunked and rate-limited.
func (n *Notifier) SendTo(chatID int64, text string) error {
	for _, chunk := range SplitMessage(text, maxMessageLength) {
		n.throttle()

		msg := tgbotapi.NewMessage(chatID, chunk)
		msg.ParseMode = tgbotapi.ModeHTML
		msg.DisableWebPagePreview = true
		if _, err := n.bot.Send(msg); err != nil {
			return fmt.Errorf("failed to send telegram message: %w", err)
		}
	}
	return nil
}

func (n *Notifier) throttle() {
	n.mu.Lock()
	defer n.mu.Unlock()

	if wait := sendInterval - time.Since(n.lastSend); wait > 0 {
		time.Sleep(wait)
	}
	n.lastSend = time.Now()
}

// SplitMessage chunks a message at the given limit, preferring paragraph and
// line boundaries so a match block is not torn apart mid-line.
func SplitMessage(text string, limit int) []string {
	if len(text) <= limit {
		return []string{text}
	}

	var chunks []string
	var builder strings.Builder

	for _, line := range strings.Split(text, "\n") {
		// A single oversized line is split hard; does not happen with the
		// messages this bot builds.
		for len(line) > limit {
			chunks = append(chunks, flush(&builder), line[:limit])
			line = line[limit:]
		}

		if builder.Len() > 0 && builder.Len()+len(line)+1 > limit {
			chunks = append(chunks, flush(&builder))
		}
		if builder.Len() > 0 {
			builder.WriteByte('\n')
		}
		builder.WriteString(line)
	}
	if builder.Len() > 0 {
		chunks = append(chunks, flush(&builder))
	}

	// Drop empty chunks produced by flushing an empty builder.
	filtered := chunks[:0]
	for _, chunk := range chunks {
		if strings.TrimSpace(chunk) != "" {
			filtered = append(filtered, chunk)
		}
	}
	return filtered
}

func flush(builder *strings.Builder) string {
	chunk := builder.String()
	builder.Reset()
	return chunk
}
