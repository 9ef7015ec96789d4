package bot

import (
	"context"
	"log/slog"
	"strings"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/palpitebot/palpitebot/internal/pkg/config"
)

// PredictionService is what the listener needs from the analysis pipeline.
type PredictionService interface {
	// DailyMessage builds the full predictions post for a date.
	DailyMessage(ctx context.Context, date time.Time) (string, error)
	// MatchMessage analyzes the next fixture matching a free-text query.
	MatchMessage(ctx context.Context, query string) (string, error)
}

const helpText = `🤖 <b>Bot de Previsões Futebol</b>

Comandos disponíveis:
/previsoes [data] — análise completa dos jogos do dia
/jogo &lt;equipa&gt; — análise do próximo jogo de uma equipa (ex.: /jogo benfica)
/jogo &lt;equipa-equipa&gt; — análise de um confronto (ex.: /jogo city-psg)
/help — esta mensagem`

// Listener answers bot commands over long polling.
type Listener struct {
	notifier *Notifier
	service  PredictionService
	cfg      config.TelegramConfig
	logger   *slog.Logger
}

func NewListener(notifier *Notifier, service PredictionService, cfg config.TelegramConfig, logger *slog.Logger) *Listener {
	return &Listener{
		notifier: notifier,
		service:  service,
		cfg:      cfg,
		logger:   logger,
	}
}

// Run processes updates until the context ends.
func (l *Listener) Run(ctx context.Context) {
	update := tgbotapi.NewUpdate(0)
	update.Timeout = l.cfg.UpdateTimeout

	api := l.notifier.API()
	updates := api.GetUpdatesChan(update)
	l.logger.Info("command listener started")

	for {
		select {
		case <-ctx.Done():
			api.StopReceivingUpdates()
			l.logger.Info("command listener stopped")
			return
		case upd := <-updates:
			if upd.Message == nil {
				continue
			}
			l.handleMessage(ctx, upd.Message)
		}
	}
}

func (l *Listener) handleMessage(ctx context.Context, message *tgbotapi.Message) {
	text := strings.TrimSpace(message.Text)
	if text == "" || !strings.HasPrefix(text, "/") {
		return
	}

	chatID := message.Chat.ID
	if !l.chatAllowed(chatID) {
		l.logger.Warn("command from unauthorized chat", "chatId", chatID)
		return
	}

	parts := strings.Fields(text)
	command := strings.ToLower(strings.SplitN(parts[0], "@", 2)[0])
	args := strings.TrimSpace(strings.TrimPrefix(text, parts[0]))

	switch command {
	case "/previsoes", "/previsões":
		l.replyDaily(ctx, chatID, args)
	case "/jogo":
		l.replyMatch(ctx, chatID, args)
	case "/start", "/help", "/ajuda":
		l.reply(chatID, helpText)
	default:
		l.reply(chatID, "Comando desconhecido. Use /help para ver os comandos disponíveis.")
	}
}

func (l *Listener) chatAllowed(chatID int64) bool {
	if len(l.cfg.AllowedChatIDs) == 0 {
		return true
	}
	for _, id := range l.cfg.AllowedChatIDs {
		if id == chatID {
			return true
		}
	}
	return false
}

func (l *Listener) replyDaily(ctx context.Context, chatID int64, dateArg string) {
	date := time.Now().UTC()
	if dateArg != "" {
		parsed, err := parseDateArg(dateArg)
		if err != nil {
			l.reply(chatID, "Data inválida. Use AAAA-MM-DD ou DD/MM/AAAA (ex.: /previsoes 2026-09-20).")
			return
		}
		date = parsed
	}

	l.reply(chatID, "⏳ A analisar os jogos, aguarde...")

	message, err := l.service.DailyMessage(ctx, date)
	if err != nil {
		l.logger.Error("daily analysis failed", "error", err)
		l.reply(chatID, "😔 Não foi possível concluir a análise. Tente novamente mais tarde.")
		return
	}
	l.reply(chatID, message)
}

func (l *Listener) replyMatch(ctx context.Context, chatID int64, query string) {
	if query == "" {
		l.reply(chatID, "Forneça o nome de uma equipa ou o confronto (ex.: /jogo city-psg).")
		return
	}

	message, err := l.service.MatchMessage(ctx, query)
	if err != nil {
		l.logger.Warn("match lookup failed", "query", query, "error", err)
		l.reply(chatID, "😔 Não encontrei esse jogo: "+err.Error())
		return
	}
	l.reply(chatID, message)
}

func parseDateArg(arg string) (time.Time, error) {
	if t, err := time.Parse("2006-01-02", arg); err == nil {
		return t, nil
	}
	return time.Parse("02/01/2006", arg)
}

func (l *Listener) reply(chatID int64, text string) {
	if err := l.notifier.SendTo(chatID, text); err != nil {
		l.logger.Error("failed to send reply", "chatId", chatID, "error", err)
	}
}
