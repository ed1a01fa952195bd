package locales

var ru = map[string]string{
	"choose_language": "Выберите язык / Tilni tanlang",
	"share_contact": "📱 Сначала отправьте свой номер телефона.\n" +
		"Он нужен, чтобы с вами могли связаться.",
	"share_contact_btn": "📱 Отправить контакт",
	"choose_role":       "Добро пожаловать, {first_name}! Кто вы?",
	"role_client":       "🔍 Ищу запчасть",
	"role_seller":       "🏪 Я продавец",
	"client_registered": "✅ Вы зарегистрированы!\n" +
		"Чтобы найти запчасть, нажмите «Найти запчасть».",
	"find_part":   "🔍 Найти запчасть",
	"my_requests": "📋 Мои запросы",
	"settings":    "⚙️ Настройки",
	"choose_brands": "По каким маркам вы продаёте запчасти?\n" +
		"Запросы будут приходить только по этим маркам.",
	"done":                 "✅ Готово",
	"select_at_least_one":  "Выберите хотя бы один бренд",
	"seller_registered": "✅ Вы зарегистрированы как продавец!\n" +
		"Бренды: {brands}\n\n" +
		"Когда клиент создаст запрос по вашим маркам — вы получите уведомление.",
	"active_requests": "📋 Активные запросы",
	"request_created": "✅ Запрос #{request_id} создан!\n\n" +
		"🚗 {brand} {model} ({year})\n" +
		"📋 {description}\n" +
		"📦 {part_type}\n\n" +
		"Ждите ответов от продавцов. Мы вам сообщим!",
	"request_created_no_sellers": "✅ Запрос #{request_id} создан!\n\n" +
		"🚗 {brand} {model} ({year})\n" +
		"📋 {description}\n" +
		"📦 {part_type}\n\n" +
		"⚠️ Пока нет продавцов по марке {brand}. " +
		"Как только кто-то зарегистрируется, мы вам сообщим.",
	"new_request_notification": "🔔 Новый запрос #{request_id}!\n\n" +
		"🚗 {brand} {model} ({year})\n" +
		"📋 {description}\n" +
		"📦 {part_type}",
	"respond_price":       "💰 Ответить ценой",
	"skip":                "⏭ Пропустить",
	"skipped":             "Пропущено",
	"enter_price":         "Введите цену (только число):",
	"invalid_price":       "Введите число, например: 450000",
	"choose_currency":     "Валюта:",
	"currency_sum":        "🇺🇿 Сум",
	"currency_usd":        "🇺🇸 USD",
	"choose_availability": "Наличие:",
	"in_stock":            "✅ В наличии",
	"order_1_3":           "📦 Под заказ 1-3 дня",
	"order_3_7":           "📦 Под заказ 3-7 дней",
	"enter_comment": "Комментарий (необязательно):\n" +
		"Например: «Есть доставка» или «Самовывоз с рынка Сергели»",
	"skip_comment": "⏭ Пропустить",
	"offer_sent": "✅ Предложение отправлено!\n\n" +
		"💵 {price} {currency}\n" +
		"📍 {availability}\n" +
		"{comment_line}\n" +
		"Если клиент заинтересуется — он свяжется с вами.",
	"new_offer": "💰 Новое предложение по запросу #{request_id}!\n\n" +
		"🚗 {brand} {model} ({year})\n" +
		"📋 {description}\n\n" +
		"👤 {seller_name}\n" +
		"💵 {price} {currency}\n" +
		"📍 {availability}\n" +
		"{comment_line}",
	"contact_seller": "📞 Связаться",
	"seller_contacts": "📞 Контакты продавца:\n\n" +
		"👤 {seller_name}\n" +
		"{telegram_link}\n" +
		"📱 {phone}",
	"my_requests_list": "📋 Ваши запросы:",
	"no_requests": "📋 У вас пока нет запросов.\n" +
		"Нажмите «Найти запчасть», чтобы создать первый запрос!",
	"request_item": "{num}️⃣ {brand} {model} ({year}) — {description}\n" +
		"   💬 {offers_text} · {time_ago}",
	"offers_count":     "{count} предложений",
	"offers_count_1":   "1 предложение",
	"offers_count_2_4": "{count} предложения",
	"no_offers_text":   "Предложений нет",
	"detail_btn":       "Подробнее #{request_id}",
	"request_detail": "🚗 {brand} {model} ({year})\n" +
		"📋 {description}\n" +
		"📦 {part_type}\n" +
		"⏰ Создан {time_ago}\n\n" +
		"Предложения ({count}):",
	"request_detail_no_offers": "🚗 {brand} {model} ({year})\n" +
		"📋 {description}\n" +
		"📦 {part_type}\n" +
		"⏰ Создан {time_ago}\n\n" +
		"Предложений пока нет.",
	"offer_line":        "{num}. {seller_name} — {price} {currency} · {availability}",
	"contact_btn":       "📞 Связаться: {seller_name}",
	"close_request_btn": "❌ Закрыть запрос",
	"request_closed":    "Запрос #{request_id} закрыт.",
	"seller_requests_list": "📋 Запросы по вашим брендам:",
	"no_seller_requests": "📋 Нет активных запросов по вашим брендам.\n" +
		"Мы сообщим, когда появятся новые!",
	"seller_request_item": "{num}️⃣ {brand} {model} ({year}) — {description}\n" +
		"   📦 {part_type} · {time_ago}",
	"respond_btn":             "💰 Ответить #{request_id}",
	"settings_title":          "⚙️ Настройки",
	"change_language":         "🌐 Сменить язык",
	"change_brands":           "📝 Изменить бренды",
	"choose_language_setting": "Выберите язык / Tilni tanlang:",
	"language_changed":        "Язык изменён на русский ✅",
	"brands_updated":          "Бренды обновлены: {brands} ✅",
	"already_responded":       "Вы уже ответили на этот запрос.",
	"request_not_active":      "Этот запрос уже закрыт или истёк.",
	"part_type_original":      "Оригинал",
	"part_type_duplicate":     "Дубликат",
	"part_type_used":          "Б/У",
	"availability_in_stock":   "В наличии",
	"availability_order_1_3":  "Под заказ 1-3 дня",
	"availability_order_3_7":  "Под заказ 3-7 дней",
	"currency_sum_label":      "сум",
	"currency_usd_label":      "USD",
	"time_ago_minutes":        "{n} мин назад",
	"time_ago_hours":          "{n} ч назад",
	"time_ago_days":           "{n} дн назад",
	"tg_link_username":        "🔗 @{username}",
	"tg_link_deeplink":        "🔗 <a href=\"tg://user?id={user_id}\">Написать в Telegram</a>",
}
