package auth

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"sort"
	"strings"
)

var (
	ErrMissingSignature = errors.New("подпись отсутствует")
	ErrInvalidSignature = errors.New("недействительная подпись")
	ErrMissingUser      = errors.New("данные пользователя отсутствуют")
)

// WebAppUser - полезная нагрузка поля user в init_data
type WebAppUser struct {
	ID           int64  `json:"id"`
	FirstName    string `json:"first_name"`
	LastName     string `json:"last_name"`
	Username     string `json:"username"`
	LanguageCode string `json:"language_code"`
}

// ValidateInitData проверяет подпись init_data веб-приложения по HMAC-SHA256.
// Секрет - HMAC("WebAppData", токен бота); подпись считается по
// отсортированным строкам key=value без самого поля hash. Любое
// несоответствие закрывает доступ, "неизвестно" не бывает.
func ValidateInitData(initData, botToken string) (*WebAppUser, error) {
	parsed, err := url.ParseQuery(initData)
	if err != nil {
		return nil, fmt.Errorf("ошибка разбора init_data: %w", err)
	}

	receivedHash := parsed.Get("hash")
	if receivedHash == "" {
		return nil, ErrMissingSignature
	}
	parsed.Del("hash")

	// каноническое представление: отсортированные key=value через \n
	keys := make([]string, 0, len(parsed))
	for key := range parsed {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	pairs := make([]string, 0, len(keys))
	for _, key := range keys {
		pairs = append(pairs, key+"="+parsed.Get(key))
	}
	dataCheckString := strings.Join(pairs, "\n")

	secret := hmac.New(sha256.New, []byte("WebAppData"))
	secret.Write([]byte(botToken))
	secretKey := secret.Sum(nil)

	mac := hmac.New(sha256.New, secretKey)
	mac.Write([]byte(dataCheckString))
	computedHash := hex.EncodeToString(mac.Sum(nil))

	// сравнение за постоянное время
	if !hmac.Equal([]byte(computedHash), []byte(receivedHash)) {
		return nil, ErrInvalidSignature
	}

	userJSON := parsed.Get("user")
	if userJSON == "" {
		return nil, ErrMissingUser
	}

	var user WebAppUser
	if err := json.Unmarshal([]byte(userJSON), &user); err != nil {
		return nil, fmt.Errorf("ошибка разбора данных пользователя: %w", err)
	}

	if user.ID == 0 {
		return nil, ErrMissingUser
	}

	return &user, nil
}

// SignInitData подписывает payload тем же способом, что и проверка.
// Используется в тестах и утилитах.
func SignInitData(values url.Values, botToken string) string {
	keys := make([]string, 0, len(values))
	for key := range values {
		if key == "hash" {
			continue
		}
		keys = append(keys, key)
	}
	sort.Strings(keys)

	pairs := make([]string, 0, len(keys))
	for _, key := range keys {
		pairs = append(pairs, key+"="+values.Get(key))
	}

	secret := hmac.New(sha256.New, []byte("WebAppData"))
	secret.Write([]byte(botToken))
	secretKey := secret.Sum(nil)

	mac := hmac.New(sha256.New, secretKey)
	mac.Write([]byte(strings.Join(pairs, "\n")))
	return hex.EncodeToString(mac.Sum(nil))
}
