package bot

import (
	"context"
	"sort"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"autoquotes/internal/locales"
	"autoquotes/internal/models"
)

// onStart - /start: идемпотентная регистрация личности и либо меню по
// роли, либо запуск анкеты регистрации
func (b *Bot) onStart(ctx context.Context, m *tgbotapi.Message) {
	chatID := m.Chat.ID
	b.sessions.Clear(chatID)

	user, err := b.services.User.Identify(ctx, m.From.ID, m.From.FirstName, m.From.UserName)
	if err != nil {
		b.send(chatID, locales.T("choose_language", models.LanguageRU, nil), languageKeyboard())
		return
	}

	if user.HasRole() {
		lang := user.Language
		if user.IsClient() {
			b.sendClientMenu(chatID, locales.T("client_registered", lang, nil), lang)
			return
		}

		brands, _ := b.services.User.GetSellerBrands(ctx, user.ID)
		b.sendSellerMenu(chatID,
			locales.T("seller_registered", lang, locales.Args{"brands": strings.Join(brands, ", ")}),
			lang,
		)
		return
	}

	sess := b.sessions.Get(chatID)
	sess.Step = stepRegLanguage

	b.send(chatID, locales.T("choose_language", models.LanguageRU, nil), languageKeyboard())
}

// onLanguageChosen обрабатывает выбор языка и при регистрации, и в настройках
func (b *Bot) onLanguageChosen(ctx context.Context, cq *tgbotapi.CallbackQuery) {
	chatID := cq.Message.Chat.ID
	lang := models.Language(strings.TrimPrefix(cq.Data, "lang:"))

	user, _ := b.user(ctx, cq.From.ID)
	if user == nil {
		user, _ = b.services.User.Identify(ctx, cq.From.ID, cq.From.FirstName, cq.From.UserName)
		if user == nil {
			b.answerCallback(cq.ID)
			return
		}
	}

	if err := b.services.User.SetLanguage(ctx, user.ID, lang); err != nil {
		b.answerCallback(cq.ID)
		return
	}

	sess := b.sessions.Get(chatID)

	if sess.Step == stepRegLanguage {
		sess.Language = lang
		sess.Step = stepRegContact

		b.editText(chatID, cq.Message.MessageID, locales.T("choose_language", lang, nil)+" ✅")
		b.send(chatID, locales.T("share_contact", lang, nil), contactKeyboard(lang))
		b.answerCallback(cq.ID)
		return
	}

	// смена языка из настроек
	b.editText(chatID, cq.Message.MessageID, locales.T("language_changed", lang, nil))

	if user.IsClient() {
		b.sendClientMenu(chatID, "✅", lang)
	} else if user.IsSeller() {
		b.sendSellerMenu(chatID, "✅", lang)
	}

	b.answerCallback(cq.ID)
}

func (b *Bot) onContactShared(ctx context.Context, m *tgbotapi.Message) {
	chatID := m.Chat.ID
	sess := b.sessions.Get(chatID)
	lang := sess.Language
	if lang == "" {
		lang = models.LanguageRU
	}

	user, _ := b.user(ctx, m.From.ID)
	if user == nil {
		return
	}

	if err := b.services.User.SetPhone(ctx, user.ID, m.Contact.PhoneNumber); err != nil {
		return
	}

	firstName := m.Contact.FirstName
	if firstName == "" {
		firstName = m.From.FirstName
	}

	sess.FirstName = firstName
	sess.Step = stepRegRole

	b.send(chatID,
		locales.T("choose_role", lang, locales.Args{"first_name": firstName}),
		roleKeyboard(lang),
	)
}

// onRoleChosen - одноразовое назначение роли; смены роли не существует
func (b *Bot) onRoleChosen(ctx context.Context, cq *tgbotapi.CallbackQuery) {
	chatID := cq.Message.Chat.ID
	sess := b.sessions.Get(chatID)
	if sess.Step != stepRegRole {
		b.answerCallback(cq.ID)
		return
	}

	lang := sess.Language
	if lang == "" {
		lang = models.LanguageRU
	}

	role := models.Role(strings.TrimPrefix(cq.Data, "role:"))

	user, _ := b.user(ctx, cq.From.ID)
	if user == nil {
		b.answerCallback(cq.ID)
		return
	}

	if err := b.services.User.SetRole(ctx, user.ID, role); err != nil {
		b.answerCallback(cq.ID)
		return
	}

	if role == models.RoleClient {
		b.sessions.Clear(chatID)
		b.editText(chatID, cq.Message.MessageID, locales.T("choose_role", lang, locales.Args{"first_name": sess.FirstName})+" ✅")
		b.sendClientMenu(chatID, locales.T("client_registered", lang, nil), lang)
		b.answerCallback(cq.ID)
		return
	}

	// продавец выбирает бренды
	sess.Step = stepRegBrands
	sess.SelectedBrands = make(map[string]bool)

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

func (b *Bot) onBrandToggled(ctx context.Context, cq *tgbotapi.CallbackQuery) {
	chatID := cq.Message.Chat.ID
	sess := b.sessions.Get(chatID)
	if sess.Step != stepRegBrands && sess.Step != stepSettingsBrands {
		b.answerCallback(cq.ID)
		return
	}

	lang := sess.Language
	if lang == "" {
		lang = models.LanguageRU
	}

	brand := strings.TrimPrefix(cq.Data, "toggle_brand:")
	if sess.SelectedBrands == nil {
		sess.SelectedBrands = make(map[string]bool)
	}

	if sess.SelectedBrands[brand] {
		delete(sess.SelectedBrands, brand)
	} else {
		sess.SelectedBrands[brand] = true
	}

	brands, err := b.catalog.Brands()
	if err != nil {
		b.answerCallback(cq.ID)
		return
	}

	b.editMarkup(chatID, cq.Message.MessageID, brandsKeyboard(brands, sess.SelectedBrands, lang))
	b.answerCallback(cq.ID)
}

// onBrandsDone фиксирует набор брендов: пустой выбор отклоняется,
// прежний набор остается нетронутым
func (b *Bot) onBrandsDone(ctx context.Context, cq *tgbotapi.CallbackQuery) {
	chatID := cq.Message.Chat.ID
	sess := b.sessions.Get(chatID)
	if sess.Step != stepRegBrands && sess.Step != stepSettingsBrands {
		b.answerCallback(cq.ID)
		return
	}

	lang := sess.Language
	if lang == "" {
		lang = models.LanguageRU
	}

	if len(sess.SelectedBrands) == 0 {
		b.answerCallbackAlert(cq.ID, locales.T("select_at_least_one", lang, nil))
		return
	}

	user, _ := b.user(ctx, cq.From.ID)
	if user == nil {
		b.answerCallback(cq.ID)
		return
	}

	selected := make([]string, 0, len(sess.SelectedBrands))
	for brand := range sess.SelectedBrands {
		selected = append(selected, brand)
	}
	sort.Strings(selected)

	if err := b.services.User.SetSellerBrands(ctx, user.ID, selected); err != nil {
		b.answerCallback(cq.ID)
		return
	}

	fromSettings := sess.Step == stepSettingsBrands
	b.sessions.Clear(chatID)

	brandsStr := strings.Join(selected, ", ")

	if fromSettings {
		b.editText(chatID, cq.Message.MessageID,
			locales.T("brands_updated", lang, locales.Args{"brands": brandsStr}))
		b.answerCallback(cq.ID)
		return
	}

	b.editText(chatID, cq.Message.MessageID, locales.T("choose_brands", lang, nil)+" ✅")
	b.sendSellerMenu(chatID,
		locales.T("seller_registered", lang, locales.Args{"brands": brandsStr}),
		lang,
	)
	b.answerCallback(cq.ID)
}
