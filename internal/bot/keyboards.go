package bot

import (
	"fmt"
	"strconv"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"autoquotes/internal/locales"
	"autoquotes/internal/models"
)

func languageKeyboard() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("🇷🇺 Русский", "lang:ru"),
			tgbotapi.NewInlineKeyboardButtonData("🇺🇿 O'zbekcha", "lang:uz"),
		),
	)
}

func roleKeyboard(lang models.Language) tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(locales.T("role_client", lang, nil), "role:client"),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(locales.T("role_seller", lang, nil), "role:seller"),
		),
	)
}

func contactKeyboard(lang models.Language) tgbotapi.ReplyKeyboardMarkup {
	kb := tgbotapi.NewReplyKeyboard(
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButtonContact(locales.T("share_contact_btn", lang, nil)),
		),
	)
	kb.ResizeKeyboard = true
	kb.OneTimeKeyboard = true
	return kb
}

func sellerMenu(lang models.Language) tgbotapi.ReplyKeyboardMarkup {
	kb := tgbotapi.NewReplyKeyboard(
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButton(locales.T("active_requests", lang, nil)),
		),
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButton(locales.T("settings", lang, nil)),
		),
	)
	kb.ResizeKeyboard = true
	return kb
}

// brandsKeyboard - мультивыбор брендов по три в ряд с отметками
func brandsKeyboard(brands []string, selected map[string]bool, lang models.Language) tgbotapi.InlineKeyboardMarkup {
	var rows [][]tgbotapi.InlineKeyboardButton
	var row []tgbotapi.InlineKeyboardButton

	for _, brand := range brands {
		check := "☐"
		if selected[brand] {
			check = "☑"
		}

		row = append(row, tgbotapi.NewInlineKeyboardButtonData(
			check+" "+brand, "toggle_brand:"+brand,
		))

		if len(row) == 3 {
			rows = append(rows, row)
			row = nil
		}
	}
	if len(row) > 0 {
		rows = append(rows, row)
	}

	rows = append(rows, tgbotapi.NewInlineKeyboardRow(
		tgbotapi.NewInlineKeyboardButtonData(locales.T("done", lang, nil), "brands_done"),
	))

	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}

func requestNotificationKeyboard(requestID int64, lang models.Language) tgbotapi.InlineKeyboardMarkup {
	id := strconv.FormatInt(requestID, 10)
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(locales.T("respond_price", lang, nil), "respond:"+id),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(locales.T("skip", lang, nil), "skip:"+id),
		),
	)
}

func currencyKeyboard(lang models.Language) tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(locales.T("currency_sum", lang, nil), "currency:sum"),
			tgbotapi.NewInlineKeyboardButtonData(locales.T("currency_usd", lang, nil), "currency:usd"),
		),
	)
}

func availabilityKeyboard(lang models.Language) tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(locales.T("in_stock", lang, nil), "availability:in_stock"),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(locales.T("order_1_3", lang, nil), "availability:order_1_3"),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(locales.T("order_3_7", lang, nil), "availability:order_3_7"),
		),
	)
}

func skipCommentKeyboard(lang models.Language) tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(locales.T("skip_comment", lang, nil), "skip_comment"),
		),
	)
}

func contactSellerKeyboard(offerID int64, lang models.Language) tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(
				locales.T("contact_seller", lang, nil),
				fmt.Sprintf("contact:%d", offerID),
			),
		),
	)
}

// requestDetailKeyboard - кнопка связи по каждому предложению + закрытие запроса
func requestDetailKeyboard(offers []models.OfferWithSeller, requestID int64, lang models.Language) tgbotapi.InlineKeyboardMarkup {
	var rows [][]tgbotapi.InlineKeyboardButton

	for _, offer := range offers {
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(
				locales.T("contact_btn", lang, locales.Args{"seller_name": offer.SellerName}),
				fmt.Sprintf("contact:%d", offer.ID),
			),
		))
	}

	rows = append(rows, tgbotapi.NewInlineKeyboardRow(
		tgbotapi.NewInlineKeyboardButtonData(
			locales.T("close_request_btn", lang, nil),
			fmt.Sprintf("close_request:%d", requestID),
		),
	))

	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}

func myRequestsKeyboard(items []models.RequestSummary, lang models.Language) tgbotapi.InlineKeyboardMarkup {
	var rows [][]tgbotapi.InlineKeyboardButton

	for _, item := range items {
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(
				locales.T("detail_btn", lang, locales.Args{"request_id": strconv.FormatInt(item.ID, 10)}),
				fmt.Sprintf("request_detail:%d", item.ID),
			),
		))
	}

	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}

func sellerRequestsKeyboard(requests []*models.Request, lang models.Language) tgbotapi.InlineKeyboardMarkup {
	var rows [][]tgbotapi.InlineKeyboardButton

	for _, req := range requests {
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(
				locales.T("respond_btn", lang, locales.Args{"request_id": strconv.FormatInt(req.ID, 10)}),
				fmt.Sprintf("respond:%d", req.ID),
			),
		))
	}

	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}

func settingsKeyboard(isSeller bool, lang models.Language) tgbotapi.InlineKeyboardMarkup {
	rows := [][]tgbotapi.InlineKeyboardButton{
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(locales.T("change_language", lang, nil), "settings:language"),
		),
	}

	if isSeller {
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(locales.T("change_brands", lang, nil), "settings:brands"),
		))
	}

	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}
