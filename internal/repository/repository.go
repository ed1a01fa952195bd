package repository

import (
	"context"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"

	"autoquotes/internal/models"
)

var (
	// ErrNotFound - строка не найдена, на границе компонента это не сбой
	ErrNotFound = errors.New("запись не найдена")
	// ErrDuplicateOffer - нарушение UNIQUE (request_id, seller_id)
	ErrDuplicateOffer = errors.New("предложение уже существует")
)

type UserRepository interface {
	UpsertIdentity(ctx context.Context, telegramID int64, firstName, username string) (*models.User, error)
	GetByTelegramID(ctx context.Context, telegramID int64) (*models.User, error)
	GetByID(ctx context.Context, userID int64) (*models.User, error)
	SetRole(ctx context.Context, userID int64, role models.Role) error
	SetLanguage(ctx context.Context, userID int64, lang models.Language) error
	SetPhone(ctx context.Context, userID int64, phone string) error
	ReplaceBrands(ctx context.Context, sellerID int64, brands []string) error
	GetBrands(ctx context.Context, sellerID int64) ([]string, error)
	FindSellersByBrand(ctx context.Context, brand string) ([]*models.User, error)
}

type RequestRepository interface {
	Create(ctx context.Context, req *models.Request, photoPaths []string) error
	GetByID(ctx context.Context, requestID int64) (*models.Request, error)
	GetDetail(ctx context.Context, requestID int64) (*models.RequestDetail, error)
	ListActiveByClient(ctx context.Context, clientID int64) ([]models.RequestSummary, error)
	ListOpenForSeller(ctx context.Context, sellerID int64) ([]*models.Request, error)
	Close(ctx context.Context, requestID, clientID int64) (bool, error)
	ExpireStale(ctx context.Context, now time.Time) (int64, error)
}

type OfferRepository interface {
	Create(ctx context.Context, offer *models.Offer) error
	GetWithSeller(ctx context.Context, offerID int64) (*models.OfferWithSeller, error)
	CountByRequest(ctx context.Context, requestID int64) (int, error)
	Exists(ctx context.Context, requestID, sellerID int64) (bool, error)
}

type Repository struct {
	User    UserRepository
	Request RequestRepository
	Offer   OfferRepository
}

func NewRepository(db *sqlx.DB) *Repository {
	return &Repository{
		User:    NewUserRepository(db),
		Request: NewRequestRepository(db),
		Offer:   NewOfferRepository(db),
	}
}
