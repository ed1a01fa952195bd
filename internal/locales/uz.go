package locales

var uz = map[string]string{
	"choose_language": "Выберите язык / Tilni tanlang",
	"share_contact": "📱 Avval telefon raqamingizni yuboring.\n" +
		"Bu siz bilan bog'lanish uchun kerak.",
	"share_contact_btn": "📱 Kontaktni yuborish",
	"choose_role":       "Xush kelibsiz, {first_name}! Siz kimsiz?",
	"role_client":       "🔍 Ehtiyot qism qidiryapman",
	"role_seller":       "🏪 Men sotuvchiman",
	"client_registered": "✅ Siz ro'yxatdan o'tdingiz!\n" +
		"Ehtiyot qism qidirish uchun «Ehtiyot qism topish» tugmasini bosing.",
	"find_part":   "🔍 Ehtiyot qism topish",
	"my_requests": "📋 Mening so'rovlarim",
	"settings":    "⚙️ Sozlamalar",
	"choose_brands": "Qaysi markalar bo'yicha ehtiyot qism sotasiz?\n" +
		"Faqat shu markalar bo'yicha so'rovlar keladi.",
	"done":                "✅ Tayyor",
	"select_at_least_one": "Kamida bitta brend tanlang",
	"seller_registered": "✅ Siz sotuvchi sifatida ro'yxatdan o'tdingiz!\n" +
		"Brendlar: {brands}\n\n" +
		"Mijoz sizning markalaringiz bo'yicha so'rov yaratganda — xabar olasiz.",
	"active_requests": "📋 Faol so'rovlar",
	"request_created": "✅ So'rov #{request_id} yaratildi!\n\n" +
		"🚗 {brand} {model} ({year})\n" +
		"📋 {description}\n" +
		"📦 {part_type}\n\n" +
		"Sotuvchilardan javob kuting. Biz sizga xabar beramiz!",
	"request_created_no_sellers": "✅ So'rov #{request_id} yaratildi!\n\n" +
		"🚗 {brand} {model} ({year})\n" +
		"📋 {description}\n" +
		"📦 {part_type}\n\n" +
		"⚠️ Hozircha {brand} markasi bo'yicha sotuvchilar yo'q. " +
		"Kimdir ro'yxatdan o'tsa, sizga xabar beramiz.",
	"new_request_notification": "🔔 Yangi so'rov #{request_id}!\n\n" +
		"🚗 {brand} {model} ({year})\n" +
		"📋 {description}\n" +
		"📦 {part_type}",
	"respond_price":       "💰 Narx bilan javob berish",
	"skip":                "⏭ O'tkazib yuborish",
	"skipped":             "O'tkazib yuborildi",
	"enter_price":         "Narxni kiriting (faqat raqam):",
	"invalid_price":       "Raqam kiriting, masalan: 450000",
	"choose_currency":     "Valyuta:",
	"currency_sum":        "🇺🇿 So'm",
	"currency_usd":        "🇺🇸 USD",
	"choose_availability": "Mavjudligi:",
	"in_stock":            "✅ Mavjud",
	"order_1_3":           "📦 Buyurtma 1-3 kun",
	"order_3_7":           "📦 Buyurtma 3-7 kun",
	"enter_comment": "Izoh (ixtiyoriy):\n" +
		"Masalan: «Yetkazib berish bor» yoki «Sergeli bozoridan olib ketish»",
	"skip_comment": "⏭ O'tkazib yuborish",
	"offer_sent": "✅ Taklif yuborildi!\n\n" +
		"💵 {price} {currency}\n" +
		"📍 {availability}\n" +
		"{comment_line}\n" +
		"Mijoz qiziqsa — siz bilan bog'lanadi.",
	"new_offer": "💰 So'rov #{request_id} bo'yicha yangi taklif!\n\n" +
		"🚗 {brand} {model} ({year})\n" +
		"📋 {description}\n\n" +
		"👤 {seller_name}\n" +
		"💵 {price} {currency}\n" +
		"📍 {availability}\n" +
		"{comment_line}",
	"contact_seller": "📞 Bog'lanish",
	"seller_contacts": "📞 Sotuvchi kontaktlari:\n\n" +
		"👤 {seller_name}\n" +
		"{telegram_link}\n" +
		"📱 {phone}",
	"my_requests_list": "📋 Sizning so'rovlaringiz:",
	"no_requests": "📋 Sizda hali so'rovlar yo'q.\n" +
		"Birinchi so'rov yaratish uchun «Ehtiyot qism topish» tugmasini bosing!",
	"request_item": "{num}️⃣ {brand} {model} ({year}) — {description}\n" +
		"   💬 {offers_text} · {time_ago}",
	"offers_count":     "{count} ta taklif",
	"offers_count_1":   "1 ta taklif",
	"offers_count_2_4": "{count} ta taklif",
	"no_offers_text":   "Takliflar yo'q",
	"detail_btn":       "Batafsil #{request_id}",
	"request_detail": "🚗 {brand} {model} ({year})\n" +
		"📋 {description}\n" +
		"📦 {part_type}\n" +
		"⏰ Yaratilgan {time_ago}\n\n" +
		"Takliflar ({count}):",
	"request_detail_no_offers": "🚗 {brand} {model} ({year})\n" +
		"📋 {description}\n" +
		"📦 {part_type}\n" +
		"⏰ Yaratilgan {time_ago}\n\n" +
		"Hozircha takliflar yo'q.",
	"offer_line":        "{num}. {seller_name} — {price} {currency} · {availability}",
	"contact_btn":       "📞 Bog'lanish: {seller_name}",
	"close_request_btn": "❌ So'rovni yopish",
	"request_closed":    "So'rov #{request_id} yopildi.",
	"seller_requests_list": "📋 Sizning brendlaringiz bo'yicha so'rovlar:",
	"no_seller_requests": "📋 Brendlaringiz bo'yicha faol so'rovlar yo'q.\n" +
		"Yangilari paydo bo'lganda xabar beramiz!",
	"seller_request_item": "{num}️⃣ {brand} {model} ({year}) — {description}\n" +
		"   📦 {part_type} · {time_ago}",
	"respond_btn":             "💰 Javob berish #{request_id}",
	"settings_title":          "⚙️ Sozlamalar",
	"change_language":         "🌐 Tilni o'zgartirish",
	"change_brands":           "📝 Brendlarni o'zgartirish",
	"choose_language_setting": "Выберите язык / Tilni tanlang:",
	"language_changed":        "Til o'zbekchaga o'zgartirildi ✅",
	"brands_updated":          "Brendlar yangilandi: {brands} ✅",
	"already_responded":       "Siz bu so'rovga allaqachon javob bergansiz.",
	"request_not_active":      "Bu so'rov allaqachon yopilgan yoki muddati tugagan.",
	"part_type_original":      "Original",
	"part_type_duplicate":     "Dublikat",
	"part_type_used":          "B/U",
	"availability_in_stock":   "Mavjud",
	"availability_order_1_3":  "Buyurtma 1-3 kun",
	"availability_order_3_7":  "Buyurtma 3-7 kun",
	"currency_sum_label":      "so'm",
	"currency_usd_label":      "USD",
	"time_ago_minutes":        "{n} daq oldin",
	"time_ago_hours":          "{n} soat oldin",
	"time_ago_days":           "{n} kun oldin",
	"tg_link_username":        "🔗 @{username}",
	"tg_link_deeplink":        "🔗 <a href=\"tg://user?id={user_id}\">Telegramda yozish</a>",
}
