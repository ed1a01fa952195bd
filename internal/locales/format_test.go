package locales

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"autoquotes/internal/models"
)

func TestT(t *testing.T) {
	t.Run("Подстановка аргументов", func(t *testing.T) {
		text := T("request_closed", models.LanguageRU, Args{"request_id": "42"})
		assert.Equal(t, "Запрос #42 закрыт.", text)
	})

	t.Run("Неизвестный язык откатывается на русский", func(t *testing.T) {
		assert.Equal(t,
			T("settings_title", models.LanguageRU, nil),
			T("settings_title", "en", nil),
		)
	})

	t.Run("Неизвестный ключ возвращается как есть", func(t *testing.T) {
		assert.Equal(t, "no_such_key", T("no_such_key", models.LanguageRU, nil))
	})

	t.Run("Каждый русский ключ есть в узбекском каталоге", func(t *testing.T) {
		for key := range ru {
			_, ok := uz[key]
			assert.True(t, ok, "нет узбекского перевода для %q", key)
		}
	})
}

func TestFormatPrice(t *testing.T) {
	assert.Equal(t, "450", FormatPrice(450))
	assert.Equal(t, "4 500", FormatPrice(4500))
	assert.Equal(t, "450 000", FormatPrice(450000))
	assert.Equal(t, "1 250 000", FormatPrice(1250000))
}

func TestOffersCount(t *testing.T) {
	assert.Equal(t, "Предложений нет", OffersCount(0, models.LanguageRU))
	assert.Equal(t, "1 предложение", OffersCount(1, models.LanguageRU))
	assert.Equal(t, "3 предложения", OffersCount(3, models.LanguageRU))
	assert.Equal(t, "7 предложений", OffersCount(7, models.LanguageRU))
}

func TestTimeAgo(t *testing.T) {
	now := time.Now()

	assert.Equal(t, "1 мин назад", TimeAgo(now, models.LanguageRU))
	assert.Equal(t, "30 мин назад", TimeAgo(now.Add(-30*time.Minute), models.LanguageRU))
	assert.Equal(t, "5 ч назад", TimeAgo(now.Add(-5*time.Hour), models.LanguageRU))
	assert.Equal(t, "2 дн назад", TimeAgo(now.Add(-49*time.Hour), models.LanguageRU))
}

func TestLabels(t *testing.T) {
	assert.Equal(t, "Оригинал", PartTypeLabel(models.PartTypeOriginal, models.LanguageRU))
	assert.Equal(t, "сум", CurrencyLabel(models.CurrencySum, models.LanguageRU))
	assert.Equal(t, "В наличии", AvailabilityLabel(models.AvailabilityInStock, models.LanguageRU))
}
