package bot

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/krugerlabs/kruger-trivia/internal/config"
)

const (
	cmdStart  = "start"
	cmdPlay   = "play"
	cmdCancel = "cancel"

	updateTimeout  = 60
	handlerTimeout = 10 * time.Second
)

// Bot wires the conversation controller to the Telegram API.
type Bot struct {
	api        *tgbotapi.BotAPI
	controller *Controller
}

func New(cfg *config.BotConfig, controller *Controller) (*Bot, error) {
	api, err := tgbotapi.NewBotAPI(cfg.BotToken)
	if err != nil {
		return nil, fmt.Errorf("failed to create bot API: %w", err)
	}
	api.Debug = cfg.Debug

	return &Bot{api: api, controller: controller}, nil
}

// Start polls for updates until the update channel closes.
func (b *Bot) Start() {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = updateTimeout

	updates := b.api.GetUpdatesChan(u)
	config.Logger().Info("Bot polling for updates")

	for update := range updates {
		if update.Message == nil {
			continue
		}
		b.handleMessage(update.Message)
	}
}

func (b *Bot) handleMessage(message *tgbotapi.Message) {
	userID := message.From.ID
	log := config.Logger().WithField("user_id", userID)
	log.WithField("text", message.Text).Debug("Received message")

	ctx, cancel := context.WithTimeout(context.Background(), handlerTimeout)
	defer cancel()

	var replies []Reply
	switch {
	case strings.HasPrefix(message.Text, "/"+cmdStart):
		replies = b.controller.Start(userID)
	case strings.HasPrefix(message.Text, "/"+cmdPlay):
		replies = b.controller.Play(ctx, userID)
	case strings.HasPrefix(message.Text, "/"+cmdCancel):
		replies = b.controller.Cancel(userID)
	case strings.HasPrefix(message.Text, "/"):
		replies = []Reply{{Text: "Unknown command. Use /play to start a new game or /cancel to stop."}}
	default:
		replies = b.controller.Answer(ctx, userID, message.Text)
	}

	for _, reply := range replies {
		b.send(message.Chat.ID, reply)
	}
}

func (b *Bot) send(chatID int64, reply Reply) {
	msg := tgbotapi.NewMessage(chatID, reply.Text)

	if reply.OptionCount > 0 {
		rows := make([][]tgbotapi.KeyboardButton, reply.OptionCount)
		for i := range rows {
			rows[i] = tgbotapi.NewKeyboardButtonRow(tgbotapi.NewKeyboardButton(strconv.Itoa(i + 1)))
		}
		keyboard := tgbotapi.NewReplyKeyboard(rows...)
		keyboard.OneTimeKeyboard = true
		msg.ReplyMarkup = keyboard
	} else if reply.RemoveKeyboard {
		msg.ReplyMarkup = tgbotapi.NewRemoveKeyboard(false)
	}

	if _, err := b.api.Send(msg); err != nil {
		config.Logger().WithError(err).Error("Error sending message")
	}
}
