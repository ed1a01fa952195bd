package locales

import (
	"strconv"
	"time"

	"autoquotes/internal/models"
)

// TimeAgo форматирует давность события словами
func TimeAgo(dt time.Time, lang models.Language) string {
	minutes := int(time.Since(dt).Minutes())
	if minutes < 1 {
		minutes = 1
	}

	if minutes < 60 {
		return T("time_ago_minutes", lang, Args{"n": strconv.Itoa(minutes)})
	}

	hours := minutes / 60
	if hours < 24 {
		return T("time_ago_hours", lang, Args{"n": strconv.Itoa(hours)})
	}

	days := hours / 24
	return T("time_ago_days", lang, Args{"n": strconv.Itoa(days)})
}

// OffersCount подбирает форму числительного для количества предложений
func OffersCount(count int, lang models.Language) string {
	switch {
	case count == 0:
		return T("no_offers_text", lang, nil)
	case count == 1:
		return T("offers_count_1", lang, nil)
	case count >= 2 && count <= 4:
		return T("offers_count_2_4", lang, Args{"count": strconv.Itoa(count)})
	}
	return T("offers_count", lang, Args{"count": strconv.Itoa(count)})
}

// FormatPrice разделяет тысячи пробелами: 450000 -> "450 000"
func FormatPrice(price int64) string {
	s := strconv.FormatInt(price, 10)
	if len(s) <= 3 {
		return s
	}

	var out []byte
	for i, c := range []byte(s) {
		if i > 0 && (len(s)-i)%3 == 0 {
			out = append(out, ' ')
		}
		out = append(out, c)
	}
	return string(out)
}

func PartTypeLabel(pt models.PartType, lang models.Language) string {
	return T("part_type_"+string(pt), lang, nil)
}

func CurrencyLabel(c models.Currency, lang models.Language) string {
	return T("currency_"+string(c)+"_label", lang, nil)
}

func AvailabilityLabel(a models.Availability, lang models.Language) string {
	return T("availability_"+string(a), lang, nil)
}
