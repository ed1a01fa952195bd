package service

import (
	"context"
	"errors"
	"time"

	"autoquotes/internal/models"
	"autoquotes/internal/repository"
)

// RequestCreatedFunc вызывается после фиксации транзакции создания запроса
type RequestCreatedFunc func(ctx context.Context, req *models.Request)

type CreateRequestInput struct {
	TelegramID  int64
	Brand       string
	Model       string
	Year        int
	Description string
	PartType    string
	PhotoRefs   []string
}

type RequestService interface {
	CreateRequest(ctx context.Context, in CreateRequestInput) (*models.Request, error)
	CloseRequest(ctx context.Context, requestID, clientID int64) (bool, error)
	ListActive(ctx context.Context, clientID int64) ([]models.RequestSummary, error)
	GetDetail(ctx context.Context, requestID int64) (*models.RequestDetail, error)
	ListOpenForSeller(ctx context.Context, sellerID int64) ([]*models.Request, error)
	SweepExpired(ctx context.Context, now time.Time) (int64, error)
}

type requestService struct {
	requestRepo repository.RequestRepository
	userRepo    repository.UserRepository
	ttl         time.Duration
	onCreated   RequestCreatedFunc
}

func NewRequestService(requestRepo repository.RequestRepository, userRepo repository.UserRepository, ttl time.Duration, onCreated RequestCreatedFunc) RequestService {
	return &requestService{
		requestRepo: requestRepo,
		userRepo:    userRepo,
		ttl:         ttl,
		onCreated:   onCreated,
	}
}

// CreateRequest создает запрос от имени клиента. Статус active,
// срок действия - created_at + TTL. Фото сохраняются в той же транзакции.
func (s *requestService) CreateRequest(ctx context.Context, in CreateRequestInput) (*models.Request, error) {
	user, err := s.userRepo.GetByTelegramID(ctx, in.TelegramID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrAuthorization
		}
		return nil, err
	}

	if !user.IsClient() {
		return nil, ErrAuthorization
	}

	partType, ok := models.ParsePartType(in.PartType)
	if !ok {
		return nil, ErrValidation
	}

	// не больше трех фото на запрос
	photoRefs := in.PhotoRefs
	if len(photoRefs) > 3 {
		photoRefs = photoRefs[:3]
	}

	now := time.Now().UTC()
	req := &models.Request{
		ClientID:    user.ID,
		Brand:       in.Brand,
		Model:       in.Model,
		Year:        in.Year,
		Description: in.Description,
		PartType:    partType,
		Status:      models.StatusActive,
		CreatedAt:   now,
		ExpiresAt:   now.Add(s.ttl),
	}

	if err := s.requestRepo.Create(ctx, req, photoRefs); err != nil {
		return nil, err
	}

	// событие после фиксации, сбой доставки не откатывает запрос
	if s.onCreated != nil {
		s.onCreated(ctx, req)
	}

	return req, nil
}

// CloseRequest переводит active -> closed только для владельца.
// false означает "ничего не сделал", это не ошибка.
func (s *requestService) CloseRequest(ctx context.Context, requestID, clientID int64) (bool, error) {
	return s.requestRepo.Close(ctx, requestID, clientID)
}

func (s *requestService) ListActive(ctx context.Context, clientID int64) ([]models.RequestSummary, error) {
	return s.requestRepo.ListActiveByClient(ctx, clientID)
}

func (s *requestService) GetDetail(ctx context.Context, requestID int64) (*models.RequestDetail, error) {
	detail, err := s.requestRepo.GetDetail(ctx, requestID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return detail, nil
}

func (s *requestService) ListOpenForSeller(ctx context.Context, sellerID int64) ([]*models.Request, error) {
	return s.requestRepo.ListOpenForSeller(ctx, sellerID)
}

// SweepExpired переводит все просроченные активные запросы в expired
func (s *requestService) SweepExpired(ctx context.Context, now time.Time) (int64, error) {
	return s.requestRepo.ExpireStale(ctx, now)
}
