package service

import (
	"context"

	"autoquotes/internal/models"
	"autoquotes/internal/repository"
)

type UserService interface {
	Identify(ctx context.Context, telegramID int64, firstName, username string) (*models.User, error)
	GetByTelegramID(ctx context.Context, telegramID int64) (*models.User, error)
	SetRole(ctx context.Context, userID int64, role models.Role) error
	SetLanguage(ctx context.Context, userID int64, lang models.Language) error
	SetPhone(ctx context.Context, userID int64, phone string) error
	SetSellerBrands(ctx context.Context, sellerID int64, brands []string) error
	GetSellerBrands(ctx context.Context, sellerID int64) ([]string, error)
}

type userService struct {
	userRepo repository.UserRepository
}

func NewUserService(userRepo repository.UserRepository) UserService {
	return &userService{userRepo: userRepo}
}

// Identify - идемпотентная регистрация по внешнему идентификатору:
// создает при первом контакте, обновляет отображаемые поля при повторном
func (s *userService) Identify(ctx context.Context, telegramID int64, firstName, username string) (*models.User, error) {
	return s.userRepo.UpsertIdentity(ctx, telegramID, firstName, username)
}

func (s *userService) GetByTelegramID(ctx context.Context, telegramID int64) (*models.User, error) {
	user, err := s.userRepo.GetByTelegramID(ctx, telegramID)
	if err != nil {
		if err == repository.ErrNotFound {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return user, nil
}

// SetRole назначает роль один раз; операции смены роли нет
func (s *userService) SetRole(ctx context.Context, userID int64, role models.Role) error {
	if role != models.RoleClient && role != models.RoleSeller {
		return ErrValidation
	}
	return s.userRepo.SetRole(ctx, userID, role)
}

func (s *userService) SetLanguage(ctx context.Context, userID int64, lang models.Language) error {
	if lang != models.LanguageRU && lang != models.LanguageUZ {
		return ErrValidation
	}
	return s.userRepo.SetLanguage(ctx, userID, lang)
}

func (s *userService) SetPhone(ctx context.Context, userID int64, phone string) error {
	return s.userRepo.SetPhone(ctx, userID, phone)
}

// SetSellerBrands заменяет весь набор брендов целиком.
// Пустой набор отклоняется, прежние бренды остаются нетронутыми.
func (s *userService) SetSellerBrands(ctx context.Context, sellerID int64, brands []string) error {
	if len(brands) == 0 {
		return ErrValidation
	}
	return s.userRepo.ReplaceBrands(ctx, sellerID, brands)
}

func (s *userService) GetSellerBrands(ctx context.Context, sellerID int64) ([]string, error) {
	return s.userRepo.GetBrands(ctx, sellerID)
}
