package locales

import (
	"strings"

	"autoquotes/internal/models"
)

// Args - именованные подстановки вида {key} в тексте
type Args map[string]string

var catalogs = map[models.Language]map[string]string{
	models.LanguageRU: ru,
	models.LanguageUZ: uz,
}

// T возвращает текст по ключу для языка пользователя.
// Неизвестный язык откатывается на русский, неизвестный ключ - на сам ключ.
func T(key string, lang models.Language, args Args) string {
	texts, ok := catalogs[lang]
	if !ok {
		texts = ru
	}

	text, ok := texts[key]
	if !ok {
		text, ok = ru[key]
		if !ok {
			return key
		}
	}

	for k, v := range args {
		text = strings.ReplaceAll(text, "{"+k+"}", v)
	}

	return text
}
