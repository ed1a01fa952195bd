package bot

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"autoquotes/internal/locales"
	"autoquotes/internal/models"
	"autoquotes/internal/service"
)

// onRespond начинает многошаговый ответ продавца: цена -> валюта ->
// наличие -> комментарий. Повторный ответ и неактивный запрос
// отсекаются уже здесь, чтобы не гонять продавца по шагам впустую
func (b *Bot) onRespond(ctx context.Context, cq *tgbotapi.CallbackQuery) {
	chatID := cq.Message.Chat.ID
	requestID := callbackID(cq.Data)

	user, lang := b.user(ctx, cq.From.ID)
	if user == nil || !user.IsSeller() {
		b.answerCallback(cq.ID)
		return
	}

	detail, err := b.services.Request.GetDetail(ctx, requestID)
	if err != nil {
		b.answerCallbackAlert(cq.ID, locales.T("request_not_active", lang, nil))
		return
	}

	if detail.Status != models.StatusActive {
		b.answerCallbackAlert(cq.ID, locales.T("request_not_active", lang, nil))
		return
	}

	responded, err := b.services.Offer.HasResponded(ctx, requestID, user.ID)
	if err == nil && responded {
		b.answerCallbackAlert(cq.ID, locales.T("already_responded", lang, nil))
		return
	}

	sess := b.sessions.Get(chatID)
	sess.Step = stepOfferPrice
	sess.Language = lang
	sess.RequestID = requestID

	b.send(chatID, locales.T("enter_price", lang, nil), nil)
	b.answerCallback(cq.ID)
}

func (b *Bot) onPriceEntered(ctx context.Context, m *tgbotapi.Message) {
	chatID := m.Chat.ID
	sess := b.sessions.Get(chatID)
	_, lang := b.user(ctx, m.From.ID)

	raw := strings.ReplaceAll(strings.TrimSpace(m.Text), " ", "")
	price, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || price <= 0 {
		b.send(chatID, locales.T("invalid_price", lang, nil), nil)
		return
	}

	sess.Price = price
	sess.Step = stepOfferCurrency

	b.send(chatID, locales.T("choose_currency", lang, nil), currencyKeyboard(lang))
}

func (b *Bot) onCurrencyChosen(ctx context.Context, cq *tgbotapi.CallbackQuery) {
	chatID := cq.Message.Chat.ID
	sess := b.sessions.Get(chatID)
	if sess.Step != stepOfferCurrency {
		b.answerCallback(cq.ID)
		return
	}

	_, lang := b.user(ctx, cq.From.ID)

	currency, ok := models.ParseCurrency(strings.TrimPrefix(cq.Data, "currency:"))
	if !ok {
		b.answerCallback(cq.ID)
		return
	}

	sess.Currency = currency
	sess.Step = stepOfferAvailability

	b.editText(chatID, cq.Message.MessageID,
		locales.T("choose_currency", lang, nil)+" "+locales.CurrencyLabel(currency, lang))
	b.send(chatID, locales.T("choose_availability", lang, nil), availabilityKeyboard(lang))
	b.answerCallback(cq.ID)
}

func (b *Bot) onAvailabilityChosen(ctx context.Context, cq *tgbotapi.CallbackQuery) {
	chatID := cq.Message.Chat.ID
	sess := b.sessions.Get(chatID)
	if sess.Step != stepOfferAvailability {
		b.answerCallback(cq.ID)
		return
	}

	_, lang := b.user(ctx, cq.From.ID)

	availability, ok := models.ParseAvailability(strings.TrimPrefix(cq.Data, "availability:"))
	if !ok {
		b.answerCallback(cq.ID)
		return
	}

	sess.Availability = availability
	sess.Step = stepOfferComment

	b.editText(chatID, cq.Message.MessageID,
		locales.T("choose_availability", lang, nil)+" "+locales.AvailabilityLabel(availability, lang))
	b.send(chatID, locales.T("enter_comment", lang, nil), skipCommentKeyboard(lang))
	b.answerCallback(cq.ID)
}

func (b *Bot) onCommentEntered(ctx context.Context, m *tgbotapi.Message) {
	b.saveOffer(ctx, m.Chat.ID, m.From.ID, strings.TrimSpace(m.Text))
}

func (b *Bot) onSkipComment(ctx context.Context, cq *tgbotapi.CallbackQuery) {
	sess := b.sessions.Get(cq.Message.Chat.ID)
	if sess.Step != stepOfferComment {
		b.answerCallback(cq.ID)
		return
	}

	b.editMarkup(cq.Message.Chat.ID, cq.Message.MessageID, tgbotapi.InlineKeyboardMarkup{
		InlineKeyboard: [][]tgbotapi.InlineKeyboardButton{},
	})
	b.saveOffer(ctx, cq.Message.Chat.ID, cq.From.ID, "")
	b.answerCallback(cq.ID)
}

// saveOffer фиксирует черновик из сессии. Уведомление клиенту уходит
// по событию создания предложения, отдельно его слать не нужно
func (b *Bot) saveOffer(ctx context.Context, chatID, telegramID int64, comment string) {
	sess := b.sessions.Get(chatID)

	user, lang := b.user(ctx, telegramID)
	if user == nil {
		b.sessions.Clear(chatID)
		return
	}

	_, err := b.services.Offer.SubmitOffer(ctx, service.SubmitOfferInput{
		RequestID:    sess.RequestID,
		SellerID:     user.ID,
		Price:        sess.Price,
		Currency:     sess.Currency,
		Availability: sess.Availability,
		Comment:      comment,
	})

	b.sessions.Clear(chatID)

	switch {
	case errors.Is(err, service.ErrDuplicateOffer):
		b.send(chatID, locales.T("already_responded", lang, nil), nil)
		return
	case errors.Is(err, service.ErrRequestNotActive), errors.Is(err, service.ErrNotFound):
		b.send(chatID, locales.T("request_not_active", lang, nil), nil)
		return
	case err != nil:
		return
	}

	commentLine := ""
	if comment != "" {
		commentLine = "💬 " + comment + "\n"
	}

	b.send(chatID, locales.T("offer_sent", lang, locales.Args{
		"price":        locales.FormatPrice(sess.Price),
		"currency":     locales.CurrencyLabel(sess.Currency, lang),
		"availability": locales.AvailabilityLabel(sess.Availability, lang),
		"comment_line": commentLine,
	}), nil)
}

// onSkipRequest убирает кнопки из уведомления, запрос остается открытым
func (b *Bot) onSkipRequest(cq *tgbotapi.CallbackQuery) {
	sess := b.sessions.Get(cq.Message.Chat.ID)
	lang := sess.Language
	if lang == "" {
		lang = models.LanguageRU
	}

	b.editMarkup(cq.Message.Chat.ID, cq.Message.MessageID, tgbotapi.InlineKeyboardMarkup{
		InlineKeyboard: [][]tgbotapi.InlineKeyboardButton{},
	})
	b.answerCallbackAlert(cq.ID, locales.T("skipped", lang, nil))
}

// onSellerRequests - открытые запросы по брендам продавца, без тех,
// на которые он уже ответил
func (b *Bot) onSellerRequests(ctx context.Context, m *tgbotapi.Message) {
	chatID := m.Chat.ID

	user, lang := b.user(ctx, m.From.ID)
	if user == nil || !user.IsSeller() {
		return
	}

	requests, err := b.services.Request.ListOpenForSeller(ctx, user.ID)
	if err != nil {
		return
	}

	if len(requests) == 0 {
		b.send(chatID, locales.T("no_seller_requests", lang, nil), nil)
		return
	}

	var sb strings.Builder
	sb.WriteString(locales.T("seller_requests_list", lang, nil))
	sb.WriteString("\n\n")

	for i, req := range requests {
		sb.WriteString(locales.T("seller_request_item", lang, locales.Args{
			"num":         fmt.Sprintf("%d", i+1),
			"brand":       req.Brand,
			"model":       req.Model,
			"year":        fmt.Sprintf("%d", req.Year),
			"description": req.Description,
			"part_type":   locales.PartTypeLabel(req.PartType, lang),
			"time_ago":    locales.TimeAgo(req.CreatedAt, lang),
		}))
		sb.WriteString("\n\n")
	}

	b.send(chatID, strings.TrimRight(sb.String(), "\n"), sellerRequestsKeyboard(requests, lang))
}
