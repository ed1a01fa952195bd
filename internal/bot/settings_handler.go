package bot

import (
	"context"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"autoquotes/internal/locales"
)

func (b *Bot) onSettings(ctx context.Context, m *tgbotapi.Message) {
	user, lang := b.user(ctx, m.From.ID)
	if user == nil {
		return
	}

	b.send(m.Chat.ID, locales.T("settings_title", lang, nil), settingsKeyboard(user.IsSeller(), lang))
}

func (b *Bot) onSettingsLanguage(cq *tgbotapi.CallbackQuery) {
	sess := b.sessions.Get(cq.Message.Chat.ID)
	sess.Step = stepNone

	b.editTextWithMarkup(cq.Message.Chat.ID, cq.Message.MessageID,
		locales.T("choose_language_setting", sess.Language, nil),
		languageKeyboard(),
	)
	b.answerCallback(cq.ID)
}

// onSettingsBrands открывает пересбор брендов с предзаполнением
// текущего набора продавца
func (b *Bot) onSettingsBrands(ctx context.Context, cq *tgbotapi.CallbackQuery) {
	chatID := cq.Message.Chat.ID

	user, lang := b.user(ctx, cq.From.ID)
	if user == nil || !user.IsSeller() {
		b.answerCallback(cq.ID)
		return
	}

	current, err := b.services.User.GetSellerBrands(ctx, user.ID)
	if err != nil {
		b.answerCallback(cq.ID)
		return
	}

	sess := b.sessions.Get(chatID)
	sess.Step = stepSettingsBrands
	sess.Language = lang
	sess.SelectedBrands = make(map[string]bool, len(current))
	for _, brand := range current {
		sess.SelectedBrands[brand] = true
	}

	brands, err := b.catalog.Brands()
	if err != nil {
		b.answerCallback(cq.ID)
		return
	}

	b.editTextWithMarkup(chatID, cq.Message.MessageID,
		locales.T("choose_brands", lang, nil),
		brandsKeyboard(brands, sess.SelectedBrands, lang),
	)
	b.answerCallback(cq.ID)
}
