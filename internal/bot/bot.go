package bot

import (
	"context"
	"fmt"
	"log"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"autoquotes/internal/catalog"
	"autoquotes/internal/config"
	"autoquotes/internal/models"
	"autoquotes/internal/service"
)

// Bot - транспорт чата: длинный опрос обновлений, диспетчеризация
// сообщений и callback-кнопок, реализация service.Messenger.
type Bot struct {
	api      *tgbotapi.BotAPI
	services *service.Service
	catalog  *catalog.Catalog
	cfg      *config.Config
	sessions *sessionStore
}

func NewBot(cfg *config.Config, services *service.Service, cat *catalog.Catalog) (*Bot, error) {
	api, err := tgbotapi.NewBotAPI(cfg.Bot.Token)
	if err != nil {
		return nil, fmt.Errorf("ошибка при создании бота: %w", err)
	}

	log.Printf("Бот авторизован: @%s", api.Self.UserName)

	return &Bot{
		api:      api,
		services: services,
		catalog:  cat,
		cfg:      cfg,
		sessions: newSessionStore(),
	}, nil
}

// Run запускает цикл опроса и блокирует до отмены контекста
func (b *Bot) Run(ctx context.Context) {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = b.cfg.Bot.PollTimeout

	updates := b.api.GetUpdatesChan(u)

	for {
		select {
		case <-ctx.Done():
			b.api.StopReceivingUpdates()
			return
		case update := <-updates:
			b.handleUpdate(ctx, update)
		}
	}
}

func (b *Bot) handleUpdate(ctx context.Context, update tgbotapi.Update) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("Паника при обработке обновления: %v", r)
		}
	}()

	switch {
	case update.Message != nil:
		b.handleMessage(ctx, update.Message)
	case update.CallbackQuery != nil:
		b.handleCallback(ctx, update.CallbackQuery)
	}
}

// --- service.Messenger ---

func (b *Bot) SendText(chatID int64, text string) error {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ParseMode = tgbotapi.ModeHTML
	_, err := b.api.Send(msg)
	return err
}

// SendRequestNotification - уведомление продавцу с кнопками ответить/пропустить
func (b *Bot) SendRequestNotification(chatID int64, text string, requestID int64, lang models.Language) error {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ParseMode = tgbotapi.ModeHTML
	msg.ReplyMarkup = requestNotificationKeyboard(requestID, lang)
	_, err := b.api.Send(msg)
	return err
}

// SendOfferNotification - уведомление клиенту с кнопкой связи с продавцом
func (b *Bot) SendOfferNotification(chatID int64, text string, offerID int64, lang models.Language) error {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ParseMode = tgbotapi.ModeHTML
	msg.ReplyMarkup = contactSellerKeyboard(offerID, lang)
	_, err := b.api.Send(msg)
	return err
}

func (b *Bot) SendPhotoAlbum(chatID int64, urls []string) error {
	if len(urls) == 0 {
		return nil
	}

	media := make([]interface{}, 0, len(urls))
	for _, u := range urls {
		media = append(media, tgbotapi.NewInputMediaPhoto(tgbotapi.FileURL(u)))
	}

	group := tgbotapi.NewMediaGroup(chatID, media)
	_, err := b.api.SendMediaGroup(group)
	return err
}

// --- вспомогательные отправки ---

func (b *Bot) send(chatID int64, text string, markup interface{}) {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ParseMode = tgbotapi.ModeHTML
	if markup != nil {
		msg.ReplyMarkup = markup
	}

	if _, err := b.api.Send(msg); err != nil {
		log.Printf("Не удалось отправить сообщение %d: %v", chatID, err)
	}
}

func (b *Bot) editText(chatID int64, messageID int, text string) {
	edit := tgbotapi.NewEditMessageText(chatID, messageID, text)
	edit.ParseMode = tgbotapi.ModeHTML

	if _, err := b.api.Request(edit); err != nil {
		log.Printf("Не удалось изменить сообщение %d: %v", chatID, err)
	}
}

func (b *Bot) editTextWithMarkup(chatID int64, messageID int, text string, markup tgbotapi.InlineKeyboardMarkup) {
	edit := tgbotapi.NewEditMessageTextAndMarkup(chatID, messageID, text, markup)
	edit.ParseMode = tgbotapi.ModeHTML

	if _, err := b.api.Request(edit); err != nil {
		log.Printf("Не удалось изменить сообщение %d: %v", chatID, err)
	}
}

func (b *Bot) editMarkup(chatID int64, messageID int, markup tgbotapi.InlineKeyboardMarkup) {
	edit := tgbotapi.NewEditMessageReplyMarkup(chatID, messageID, markup)

	if _, err := b.api.Request(edit); err != nil {
		log.Printf("Не удалось обновить клавиатуру %d: %v", chatID, err)
	}
}

func (b *Bot) answerCallback(callbackID string) {
	if _, err := b.api.Request(tgbotapi.NewCallback(callbackID, "")); err != nil {
		log.Printf("Не удалось ответить на callback: %v", err)
	}
}

func (b *Bot) answerCallbackAlert(callbackID, text string) {
	if _, err := b.api.Request(tgbotapi.NewCallbackWithAlert(callbackID, text)); err != nil {
		log.Printf("Не удалось ответить на callback: %v", err)
	}
}
