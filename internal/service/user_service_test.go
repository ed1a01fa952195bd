package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"autoquotes/internal/models"
	"autoquotes/internal/repository"
)

func TestUserService_SetRole(t *testing.T) {
	ctx := context.Background()

	t.Run("Допустимая роль передается в хранилище", func(t *testing.T) {
		userRepo := new(MockUserRepository)
		userRepo.On("SetRole", ctx, int64(1), models.RoleSeller).Return(nil)

		svc := NewUserService(userRepo)

		err := svc.SetRole(ctx, 1, models.RoleSeller)

		assert.NoError(t, err)
		userRepo.AssertExpectations(t)
	})

	t.Run("Неизвестная роль отклоняется", func(t *testing.T) {
		svc := NewUserService(new(MockUserRepository))

		err := svc.SetRole(ctx, 1, "admin")

		assert.ErrorIs(t, err, ErrValidation)
	})
}

func TestUserService_SetLanguage(t *testing.T) {
	svc := NewUserService(new(MockUserRepository))

	err := svc.SetLanguage(context.Background(), 1, "en")

	assert.ErrorIs(t, err, ErrValidation)
}

func TestUserService_SetSellerBrands(t *testing.T) {
	ctx := context.Background()

	t.Run("Набор заменяется целиком", func(t *testing.T) {
		userRepo := new(MockUserRepository)
		userRepo.On("ReplaceBrands", ctx, int64(5), []string{"Chevrolet", "Toyota"}).Return(nil)

		svc := NewUserService(userRepo)

		err := svc.SetSellerBrands(ctx, 5, []string{"Chevrolet", "Toyota"})

		assert.NoError(t, err)
		userRepo.AssertExpectations(t)
	})

	t.Run("Пустой набор отклоняется без обращения к хранилищу", func(t *testing.T) {
		userRepo := new(MockUserRepository)

		svc := NewUserService(userRepo)

		err := svc.SetSellerBrands(ctx, 5, nil)

		assert.ErrorIs(t, err, ErrValidation)
		userRepo.AssertNotCalled(t, "ReplaceBrands")
	})
}

func TestUserService_GetByTelegramID(t *testing.T) {
	userRepo := new(MockUserRepository)
	userRepo.On("GetByTelegramID", context.Background(), int64(777)).Return(nil, repository.ErrNotFound)

	svc := NewUserService(userRepo)

	_, err := svc.GetByTelegramID(context.Background(), 777)

	assert.ErrorIs(t, err, ErrNotFound)
}
