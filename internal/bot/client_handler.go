package bot

import (
	"context"
	"fmt"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"autoquotes/internal/locales"
)

// onMyRequests - активные запросы клиента со счетчиком предложений
func (b *Bot) onMyRequests(ctx context.Context, m *tgbotapi.Message) {
	chatID := m.Chat.ID

	user, lang := b.user(ctx, m.From.ID)
	if user == nil || !user.IsClient() {
		return
	}

	items, err := b.services.Request.ListActive(ctx, user.ID)
	if err != nil {
		return
	}

	if len(items) == 0 {
		b.send(chatID, locales.T("no_requests", lang, nil), nil)
		return
	}

	var sb strings.Builder
	sb.WriteString(locales.T("my_requests_list", lang, nil))
	sb.WriteString("\n\n")

	for i, item := range items {
		sb.WriteString(locales.T("request_item", lang, locales.Args{
			"num":         fmt.Sprintf("%d", i+1),
			"brand":       item.Brand,
			"model":       item.Model,
			"year":        fmt.Sprintf("%d", item.Year),
			"description": item.Description,
			"offers_text": locales.OffersCount(item.OfferCount, lang),
			"time_ago":    locales.TimeAgo(item.CreatedAt, lang),
		}))
		sb.WriteString("\n\n")
	}

	b.send(chatID, strings.TrimRight(sb.String(), "\n"), myRequestsKeyboard(items, lang))
}

func (b *Bot) onRequestDetail(ctx context.Context, cq *tgbotapi.CallbackQuery) {
	chatID := cq.Message.Chat.ID
	requestID := callbackID(cq.Data)

	user, lang := b.user(ctx, cq.From.ID)
	if user == nil {
		b.answerCallback(cq.ID)
		return
	}

	detail, err := b.services.Request.GetDetail(ctx, requestID)
	if err != nil || detail.ClientID != user.ID {
		b.answerCallback(cq.ID)
		return
	}

	args := locales.Args{
		"brand":       detail.Brand,
		"model":       detail.Model,
		"year":        fmt.Sprintf("%d", detail.Year),
		"description": detail.Description,
		"part_type":   locales.PartTypeLabel(detail.PartType, lang),
		"time_ago":    locales.TimeAgo(detail.CreatedAt, lang),
		"count":       fmt.Sprintf("%d", len(detail.Offers)),
	}

	var sb strings.Builder
	if len(detail.Offers) == 0 {
		sb.WriteString(locales.T("request_detail_no_offers", lang, args))
	} else {
		sb.WriteString(locales.T("request_detail", lang, args))
		sb.WriteString("\n")
		for i, offer := range detail.Offers {
			sb.WriteString(locales.T("offer_line", lang, locales.Args{
				"num":          fmt.Sprintf("%d", i+1),
				"seller_name":  offer.SellerName,
				"price":        locales.FormatPrice(offer.Price),
				"currency":     locales.CurrencyLabel(offer.Currency, lang),
				"availability": locales.AvailabilityLabel(offer.Availability, lang),
			}))
			sb.WriteString("\n")
		}
	}

	b.send(chatID, strings.TrimRight(sb.String(), "\n"), requestDetailKeyboard(detail.Offers, detail.ID, lang))
	b.answerCallback(cq.ID)
}

// onContactSeller раскрывает контакты продавца по конкретному
// предложению. Ссылка на телеграм: @username, а без него - deeplink
// по числовому id
func (b *Bot) onContactSeller(ctx context.Context, cq *tgbotapi.CallbackQuery) {
	chatID := cq.Message.Chat.ID
	offerID := callbackID(cq.Data)

	user, lang := b.user(ctx, cq.From.ID)
	if user == nil {
		b.answerCallback(cq.ID)
		return
	}

	offer, err := b.services.Offer.GetOfferWithSeller(ctx, offerID)
	if err != nil {
		b.answerCallback(cq.ID)
		return
	}

	tgLink := locales.T("tg_link_deeplink", lang, locales.Args{
		"user_id": fmt.Sprintf("%d", offer.SellerTelegramID),
	})
	if offer.SellerUsername.Valid && offer.SellerUsername.String != "" {
		tgLink = locales.T("tg_link_username", lang, locales.Args{
			"username": offer.SellerUsername.String,
		})
	}

	phone := "-"
	if offer.SellerPhone.Valid && offer.SellerPhone.String != "" {
		phone = offer.SellerPhone.String
	}

	b.send(chatID, locales.T("seller_contacts", lang, locales.Args{
		"seller_name":   offer.SellerName,
		"telegram_link": tgLink,
		"phone":         phone,
	}), nil)
	b.answerCallback(cq.ID)
}

// onCloseRequest закрывает запрос досрочно. Закрыть может только
// владелец и только активный запрос, повторное нажатие безвредно
func (b *Bot) onCloseRequest(ctx context.Context, cq *tgbotapi.CallbackQuery) {
	chatID := cq.Message.Chat.ID
	requestID := callbackID(cq.Data)

	user, lang := b.user(ctx, cq.From.ID)
	if user == nil {
		b.answerCallback(cq.ID)
		return
	}

	closed, err := b.services.Request.CloseRequest(ctx, requestID, user.ID)
	if err != nil {
		b.answerCallback(cq.ID)
		return
	}

	if !closed {
		b.answerCallbackAlert(cq.ID, locales.T("request_not_active", lang, nil))
		return
	}

	b.editMarkup(chatID, cq.Message.MessageID, tgbotapi.InlineKeyboardMarkup{
		InlineKeyboard: [][]tgbotapi.InlineKeyboardButton{},
	})
	b.send(chatID, locales.T("request_closed", lang, locales.Args{
		"request_id": fmt.Sprintf("%d", requestID),
	}), nil)
	b.answerCallback(cq.ID)
}
