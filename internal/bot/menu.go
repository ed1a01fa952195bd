package bot

import (
	"encoding/json"
	"log"
	"strconv"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"autoquotes/internal/locales"
	"autoquotes/internal/models"
)

// tgbotapi v5.5.1 не знает кнопок web_app (Bot API 6.0),
// поэтому меню клиента отправляем с reply_markup, собранным вручную
type webAppInfo struct {
	URL string `json:"url"`
}

type menuButton struct {
	Text   string      `json:"text"`
	WebApp *webAppInfo `json:"web_app,omitempty"`
}

// sendClientMenu показывает меню клиента: кнопка запуска веб-формы
// подбора запчасти, список запросов и настройки
func (b *Bot) sendClientMenu(chatID int64, text string, lang models.Language) {
	keyboard := map[string]interface{}{
		"keyboard": [][]menuButton{
			{
				{
					Text:   locales.T("find_part", lang, nil),
					WebApp: &webAppInfo{URL: b.cfg.Bot.WebAppURL},
				},
			},
			{
				{Text: locales.T("my_requests", lang, nil)},
				{Text: locales.T("settings", lang, nil)},
			},
		},
		"resize_keyboard": true,
	}

	markup, err := json.Marshal(keyboard)
	if err != nil {
		log.Printf("Не удалось собрать клавиатуру меню: %v", err)
		b.send(chatID, text, nil)
		return
	}

	params := tgbotapi.Params{
		"chat_id":      strconv.FormatInt(chatID, 10),
		"text":         text,
		"parse_mode":   "HTML",
		"reply_markup": string(markup),
	}

	if _, err := b.api.MakeRequest("sendMessage", params); err != nil {
		log.Printf("Не удалось отправить меню клиента %d: %v", chatID, err)
	}
}

func (b *Bot) sendSellerMenu(chatID int64, text string, lang models.Language) {
	b.send(chatID, text, sellerMenu(lang))
}
