package test

import (
	"context"
	"io"
	"time"

	"github.com/stretchr/testify/mock"

	"autoquotes/internal/models"
	"autoquotes/internal/service"
)

type MockRequestService struct {
	mock.Mock
}

func (m *MockRequestService) CreateRequest(ctx context.Context, in service.CreateRequestInput) (*models.Request, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Request), args.Error(1)
}

func (m *MockRequestService) CloseRequest(ctx context.Context, requestID, clientID int64) (bool, error) {
	args := m.Called(ctx, requestID, clientID)
	return args.Bool(0), args.Error(1)
}

func (m *MockRequestService) ListActive(ctx context.Context, clientID int64) ([]models.RequestSummary, error) {
	args := m.Called(ctx, clientID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.RequestSummary), args.Error(1)
}

func (m *MockRequestService) GetDetail(ctx context.Context, requestID int64) (*models.RequestDetail, error) {
	args := m.Called(ctx, requestID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.RequestDetail), args.Error(1)
}

func (m *MockRequestService) ListOpenForSeller(ctx context.Context, sellerID int64) ([]*models.Request, error) {
	args := m.Called(ctx, sellerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Request), args.Error(1)
}

func (m *MockRequestService) SweepExpired(ctx context.Context, now time.Time) (int64, error) {
	args := m.Called(ctx, now)
	return args.Get(0).(int64), args.Error(1)
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
