package telegram

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	tgbot "github.com/go-telegram/bot"

	"github.com/yungbote/notebook-gallery-backend/internal/logger"
)

// Channel delivers owner notifications. Send reports success as a bool and
// never returns an error: notification delivery is advisory everywhere it is
// used and callers must not branch on failure details.
type Channel interface {
	Send(ctx context.Context, title string, content string) bool
}

type channel struct {
	log    *logger.Logger
	bot    *tgbot.Bot
	chatID int64
}

func NewChannel(log *logger.Logger) (Channel, error) {
	if log == nil {
		return nil, fmt.Errorf("logger required")
	}

	token := strings.TrimSpace(os.Getenv("TELEGRAM_BOT_TOKEN"))
	if token == "" {
		return nil, fmt.Errorf("missing TELEGRAM_BOT_TOKEN")
	}

	chatIDStr := strings.TrimSpace(os.Getenv("TELEGRAM_OWNER_CHAT_ID"))
	chatID, err := strconv.ParseInt(chatIDStr, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid TELEGRAM_OWNER_CHAT_ID %q: %w", chatIDStr, err)
	}

	b, err := tgbot.New(token)
	if err != nil {
		return nil, fmt.Errorf("create telegram bot: %w", err)
	}

	return &channel{
		log:    log.With("service", "TelegramChannel"),
		bot:    b,
		chatID: chatID,
	}, nil
}

func (c *channel) Send(ctx context.Context, title string, content string) bool {
	text := title
	if content != "" {
		text = title + "\n\n" + content
	}

	_, err := c.bot.SendMessage(ctx, &tgbot.SendMessageParams{
		ChatID: c.chatID,
		Text:   text,
	})
	if err != nil {
		c.log.Warn("Failed to send owner notification", "title", title, "error", err)
		return false
	}
	return true
}
