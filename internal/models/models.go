package models

import (
	"database/sql"
	"time"
)

type Role string

const (
	RoleClient Role = "client"
	RoleSeller Role = "seller"
)

type Language string

const (
	LanguageRU Language = "ru"
	LanguageUZ Language = "uz"
)

type PartType string

const (
	PartTypeOriginal  PartType = "original"
	PartTypeDuplicate PartType = "duplicate"
	PartTypeUsed      PartType = "used"
)

// ParsePartType проверяет значение по закрытому перечислению
func ParsePartType(s string) (PartType, bool) {
	switch PartType(s) {
	case PartTypeOriginal, PartTypeDuplicate, PartTypeUsed:
		return PartType(s), true
	}
	return "", false
}

type RequestStatus string

const (
	StatusActive  RequestStatus = "active"
	StatusClosed  RequestStatus = "closed"
	StatusExpired RequestStatus = "expired"
)

type Currency string

const (
	CurrencySum Currency = "sum"
	CurrencyUSD Currency = "usd"
)

func ParseCurrency(s string) (Currency, bool) {
	switch Currency(s) {
	case CurrencySum, CurrencyUSD:
		return Currency(s), true
	}
	return "", false
}

type Availability string

const (
	AvailabilityInStock Availability = "in_stock"
	AvailabilityOrder13 Availability = "order_1_3"
	AvailabilityOrder37 Availability = "order_3_7"
)

func ParseAvailability(s string) (Availability, bool) {
	switch Availability(s) {
	case AvailabilityInStock, AvailabilityOrder13, AvailabilityOrder37:
		return Availability(s), true
	}
	return "", false
}

type User struct {
	ID          int64          `json:"id" db:"id"`
	TelegramID  int64          `json:"telegramId" db:"telegram_id"`
	PhoneNumber sql.NullString `json:"phoneNumber" db:"phone_number"`
	FirstName   sql.NullString `json:"firstName" db:"first_name"`
	Username    sql.NullString `json:"username" db:"username"`
	Role        sql.NullString `json:"role" db:"role"`
	Language    Language       `json:"language" db:"language"`
	CreatedAt   time.Time      `json:"createdAt" db:"created_at"`
}

// HasRole сообщает, завершена ли регистрация пользователя
func (u *User) HasRole() bool {
	return u.Role.Valid && u.Role.String != ""
}

func (u *User) IsClient() bool {
	return u.Role.Valid && Role(u.Role.String) == RoleClient
}

func (u *User) IsSeller() bool {
	return u.Role.Valid && Role(u.Role.String) == RoleSeller
}

// DisplayName возвращает имя для уведомлений, по умолчанию "Seller"
func (u *User) DisplayName() string {
	if u.FirstName.Valid && u.FirstName.String != "" {
		return u.FirstName.String
	}
	return "Seller"
}

type SellerBrand struct {
	ID       int64  `json:"id" db:"id"`
	SellerID int64  `json:"sellerId" db:"seller_id"`
	Brand    string `json:"brand" db:"brand"`
}

type Request struct {
	ID          int64         `json:"id" db:"id"`
	ClientID    int64         `json:"clientId" db:"client_id"`
	Brand       string        `json:"brand" db:"brand"`
	Model       string        `json:"model" db:"model"`
	Year        int           `json:"year" db:"year"`
	Description string        `json:"description" db:"description"`
	PartType    PartType      `json:"partType" db:"part_type"`
	Status      RequestStatus `json:"status" db:"status"`
	CreatedAt   time.Time     `json:"createdAt" db:"created_at"`
	ExpiresAt   time.Time     `json:"expiresAt" db:"expires_at"`
	Photos      []RequestPhoto `json:"photos" db:"-"`
}

type RequestPhoto struct {
	ID        int64     `json:"id" db:"id"`
	RequestID int64     `json:"requestId" db:"request_id"`
	FilePath  string    `json:"filePath" db:"file_path"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
}

type Offer struct {
	ID           int64          `json:"id" db:"id"`
	RequestID    int64          `json:"requestId" db:"request_id"`
	SellerID     int64          `json:"sellerId" db:"seller_id"`
	Price        int64          `json:"price" db:"price"`
	Currency     Currency       `json:"currency" db:"currency"`
	Availability Availability   `json:"availability" db:"availability"`
	Comment      sql.NullString `json:"comment" db:"comment"`
	CreatedAt    time.Time      `json:"createdAt" db:"created_at"`
}

// RequestSummary - строка списка "Мои запросы" с количеством предложений
type RequestSummary struct {
	ID          int64     `json:"id" db:"id"`
	Brand       string    `json:"brand" db:"brand"`
	Model       string    `json:"model" db:"model"`
	Year        int       `json:"year" db:"year"`
	Description string    `json:"description" db:"description"`
	OfferCount  int       `json:"offerCount" db:"offer_count"`
	CreatedAt   time.Time `json:"createdAt" db:"created_at"`
}

// OfferWithSeller - предложение вместе с контактами продавца
type OfferWithSeller struct {
	Offer
	SellerName       string         `json:"sellerName" db:"seller_name"`
	SellerTelegramID int64          `json:"sellerTelegramId" db:"seller_telegram_id"`
	SellerUsername   sql.NullString `json:"sellerUsername" db:"seller_username"`
	SellerPhone      sql.NullString `json:"sellerPhone" db:"seller_phone"`
}

// RequestDetail - запрос со всеми предложениями
type RequestDetail struct {
	Request
	Offers []OfferWithSeller `json:"offers"`
}
