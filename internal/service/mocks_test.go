package service

import (
	"context"
	"io"
	"time"

	"github.com/stretchr/testify/mock"

	"autoquotes/internal/models"
)

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) UpsertIdentity(ctx context.Context, telegramID int64, firstName, username string) (*models.User, error) {
	args := m.Called(ctx, telegramID, firstName, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) GetByTelegramID(ctx context.Context, telegramID int64) (*models.User, error) {
	args := m.Called(ctx, telegramID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) GetByID(ctx context.Context, userID int64) (*models.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) SetRole(ctx context.Context, userID int64, role models.Role) error {
	args := m.Called(ctx, userID, role)
	return args.Error(0)
}

func (m *MockUserRepository) SetLanguage(ctx context.Context, userID int64, lang models.Language) error {
	args := m.Called(ctx, userID, lang)
	return args.Error(0)
}

func (m *MockUserRepository) SetPhone(ctx context.Context, userID int64, phone string) error {
	args := m.Called(ctx, userID, phone)
	return args.Error(0)
}

func (m *MockUserRepository) ReplaceBrands(ctx context.Context, sellerID int64, brands []string) error {
	args := m.Called(ctx, sellerID, brands)
	return args.Error(0)
}

func (m *MockUserRepository) GetBrands(ctx context.Context, sellerID int64) ([]string, error) {
	args := m.Called(ctx, sellerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockUserRepository) FindSellersByBrand(ctx context.Context, brand string) ([]*models.User, error) {
	args := m.Called(ctx, brand)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.User), args.Error(1)
}

type MockRequestRepository struct {
	mock.Mock
}

func (m *MockRequestRepository) Create(ctx context.Context, req *models.Request, photoPaths []string) error {
	args := m.Called(ctx, req, photoPaths)
	return args.Error(0)
}

func (m *MockRequestRepository) GetByID(ctx context.Context, requestID int64) (*models.Request, error) {
	args := m.Called(ctx, requestID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Request), args.Error(1)
}

func (m *MockRequestRepository) GetDetail(ctx context.Context, requestID int64) (*models.RequestDetail, error) {
	args := m.Called(ctx, requestID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.RequestDetail), args.Error(1)
}

func (m *MockRequestRepository) ListActiveByClient(ctx context.Context, clientID int64) ([]models.RequestSummary, error) {
	args := m.Called(ctx, clientID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.RequestSummary), args.Error(1)
}

func (m *MockRequestRepository) ListOpenForSeller(ctx context.Context, sellerID int64) ([]*models.Request, error) {
	args := m.Called(ctx, sellerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Request), args.Error(1)
}

func (m *MockRequestRepository) Close(ctx context.Context, requestID, clientID int64) (bool, error) {
	args := m.Called(ctx, requestID, clientID)
	return args.Bool(0), args.Error(1)
}

func (m *MockRequestRepository) ExpireStale(ctx context.Context, now time.Time) (int64, error) {
	args := m.Called(ctx, now)
	return args.Get(0).(int64), args.Error(1)
}

type MockOfferRepository struct {
	mock.Mock
}

func (m *MockOfferRepository) Create(ctx context.Context, offer *models.Offer) error {
	args := m.Called(ctx, offer)
	return args.Error(0)
}

func (m *MockOfferRepository) GetWithSeller(ctx context.Context, offerID int64) (*models.OfferWithSeller, error) {
	args := m.Called(ctx, offerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.OfferWithSeller), args.Error(1)
}

func (m *MockOfferRepository) CountByRequest(ctx context.Context, requestID int64) (int, error) {
	args := m.Called(ctx, requestID)
	return args.Int(0), args.Error(1)
}

func (m *MockOfferRepository) Exists(ctx context.Context, requestID, sellerID int64) (bool, error) {
	args := m.Called(ctx, requestID, sellerID)
	return args.Bool(0), args.Error(1)
}

type MockMessenger struct {
	mock.Mock
}

func (m *MockMessenger) SendText(chatID int64, text string) error {
	args := m.Called(chatID, text)
	return args.Error(0)
}

func (m *MockMessenger) SendRequestNotification(chatID int64, text string, requestID int64, lang models.Language) error {
	args := m.Called(chatID, text, requestID, lang)
	return args.Error(0)
}

func (m *MockMessenger) SendOfferNotification(chatID int64, text string, offerID int64, lang models.Language) error {
	args := m.Called(chatID, text, offerID, lang)
	return args.Error(0)
}

func (m *MockMessenger) SendPhotoAlbum(chatID int64, urls []string) error {
	args := m.Called(chatID, urls)
	return args.Error(0)
}

type MockStorage struct {
	mock.Mock
}

func (m *MockStorage) UploadPhoto(ctx context.Context, requestRef string, fileName string, file io.Reader, size int64) (string, error) {
	args := m.Called(ctx, requestRef, fileName, file, size)
	return args.String(0), args.Error(1)
}

func (m *MockStorage) PhotoURL(ctx context.Context, objectName string) (string, error) {
	args := m.Called(ctx, objectName)
	return args.String(0), args.Error(1)
}

func (m *MockStorage) DeletePhoto(ctx context.Context, objectName string) error {
	args := m.Called(ctx, objectName)
	return args.Error(0)
}
