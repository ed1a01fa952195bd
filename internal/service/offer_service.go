package service

import (
	"context"
	"database/sql"
	"errors"

	"autoquotes/internal/models"
	"autoquotes/internal/repository"
)

// OfferCreatedFunc вызывается после фиксации транзакции создания предложения
type OfferCreatedFunc func(ctx context.Context, offer *models.Offer, req *models.Request)

type SubmitOfferInput struct {
	RequestID    int64
	SellerID     int64
	Price        int64
	Currency     models.Currency
	Availability models.Availability
	Comment      string
}

type OfferService interface {
	SubmitOffer(ctx context.Context, in SubmitOfferInput) (*models.Offer, error)
	EligibleSellers(ctx context.Context, brand string) ([]*models.User, error)
	GetOfferWithSeller(ctx context.Context, offerID int64) (*models.OfferWithSeller, error)
	HasResponded(ctx context.Context, requestID, sellerID int64) (bool, error)
}

type offerService struct {
	offerRepo   repository.OfferRepository
	requestRepo repository.RequestRepository
	userRepo    repository.UserRepository
	onCreated   OfferCreatedFunc
}

func NewOfferService(offerRepo repository.OfferRepository, requestRepo repository.RequestRepository, userRepo repository.UserRepository, onCreated OfferCreatedFunc) OfferService {
	return &offerService{
		offerRepo:   offerRepo,
		requestRepo: requestRepo,
		userRepo:    userRepo,
		onCreated:   onCreated,
	}
}

// SubmitOffer записывает предложение ровно один раз на пару (запрос, продавец).
// Проверка и вставка атомарны, последнее слово за ограничением уникальности:
// из двух одновременных попыток одного продавца пройдет ровно одна.
func (s *offerService) SubmitOffer(ctx context.Context, in SubmitOfferInput) (*models.Offer, error) {
	if in.Price <= 0 {
		return nil, ErrValidation
	}

	if _, ok := models.ParseCurrency(string(in.Currency)); !ok {
		return nil, ErrValidation
	}

	if _, ok := models.ParseAvailability(string(in.Availability)); !ok {
		return nil, ErrValidation
	}

	req, err := s.requestRepo.GetByID(ctx, in.RequestID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if req.Status != models.StatusActive {
		return nil, ErrRequestNotActive
	}

	offer := &models.Offer{
		RequestID:    in.RequestID,
		SellerID:     in.SellerID,
		Price:        in.Price,
		Currency:     in.Currency,
		Availability: in.Availability,
		Comment:      sql.NullString{String: in.Comment, Valid: in.Comment != ""},
	}

	if err := s.offerRepo.Create(ctx, offer); err != nil {
		if errors.Is(err, repository.ErrDuplicateOffer) {
			return nil, ErrDuplicateOffer
		}
		return nil, err
	}

	// событие после фиксации, сбой доставки не откатывает предложение
	if s.onCreated != nil {
		s.onCreated(ctx, offer, req)
	}

	return offer, nil
}

// EligibleSellers - продавцы, набор брендов которых содержит бренд запроса.
// Порядок не гарантируется.
func (s *offerService) EligibleSellers(ctx context.Context, brand string) ([]*models.User, error) {
	return s.userRepo.FindSellersByBrand(ctx, brand)
}

func (s *offerService) GetOfferWithSeller(ctx context.Context, offerID int64) (*models.OfferWithSeller, error) {
	offer, err := s.offerRepo.GetWithSeller(ctx, offerID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return offer, nil
}

func (s *offerService) HasResponded(ctx context.Context, requestID, sellerID int64) (bool, error) {
	return s.offerRepo.Exists(ctx, requestID, sellerID)
}
