package bot

import (
	"context"
	"strconv"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"autoquotes/internal/locales"
	"autoquotes/internal/models"
)

// menuPressed сравнивает текст сообщения с пунктом меню на любом языке
func menuPressed(text, key string) bool {
	return text == locales.T(key, models.LanguageRU, nil) ||
		text == locales.T(key, models.LanguageUZ, nil)
}

func (b *Bot) handleMessage(ctx context.Context, m *tgbotapi.Message) {
	chatID := m.Chat.ID
	sess := b.sessions.Get(chatID)

	if m.IsCommand() && m.Command() == "start" {
		b.onStart(ctx, m)
		return
	}

	if m.Contact != nil && sess.Step == stepRegContact {
		b.onContactShared(ctx, m)
		return
	}

	switch sess.Step {
	case stepOfferPrice:
		b.onPriceEntered(ctx, m)
		return
	case stepOfferComment:
		b.onCommentEntered(ctx, m)
		return
	}

	switch {
	case menuPressed(m.Text, "my_requests"):
		b.onMyRequests(ctx, m)
	case menuPressed(m.Text, "active_requests"):
		b.onSellerRequests(ctx, m)
	case menuPressed(m.Text, "settings"):
		b.onSettings(ctx, m)
	}
}

func (b *Bot) handleCallback(ctx context.Context, cq *tgbotapi.CallbackQuery) {
	data := cq.Data

	switch {
	case strings.HasPrefix(data, "lang:"):
		b.onLanguageChosen(ctx, cq)
	case strings.HasPrefix(data, "role:"):
		b.onRoleChosen(ctx, cq)
	case strings.HasPrefix(data, "toggle_brand:"):
		b.onBrandToggled(ctx, cq)
	case data == "brands_done":
		b.onBrandsDone(ctx, cq)
	case strings.HasPrefix(data, "respond:"):
		b.onRespond(ctx, cq)
	case strings.HasPrefix(data, "currency:"):
		b.onCurrencyChosen(ctx, cq)
	case strings.HasPrefix(data, "availability:"):
		b.onAvailabilityChosen(ctx, cq)
	case data == "skip_comment":
		b.onSkipComment(ctx, cq)
	case strings.HasPrefix(data, "skip:"):
		b.onSkipRequest(cq)
	case strings.HasPrefix(data, "request_detail:"):
		b.onRequestDetail(ctx, cq)
	case strings.HasPrefix(data, "contact:"):
		b.onContactSeller(ctx, cq)
	case strings.HasPrefix(data, "close_request:"):
		b.onCloseRequest(ctx, cq)
	case data == "settings:language":
		b.onSettingsLanguage(cq)
	case data == "settings:brands":
		b.onSettingsBrands(ctx, cq)
	default:
		b.answerCallback(cq.ID)
	}
}

// callbackID извлекает числовой идентификатор из data вида "prefix:id"
func callbackID(data string) int64 {
	parts := strings.SplitN(data, ":", 2)
	if len(parts) != 2 {
		return 0
	}

	id, err := strconv.ParseInt(parts[1], 10, 64)
	if err != nil {
		return 0
	}
	return id
}

// user возвращает пользователя и его язык; без пользователя язык ru
func (b *Bot) user(ctx context.Context, telegramID int64) (*models.User, models.Language) {
	user, err := b.services.User.GetByTelegramID(ctx, telegramID)
	if err != nil || user == nil {
		return nil, models.LanguageRU
	}
	return user, user.Language
}
