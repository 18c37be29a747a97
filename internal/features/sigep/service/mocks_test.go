package service

import (
	"context"

	"sigep-gateway/internal/features/sigep/domain"

	"github.com/stretchr/testify/mock"
)

// MockGateway is a mock implementation of ports.Gateway
type MockGateway struct {
	mock.Mock
}

func (m *MockGateway) ListAvailableServices(ctx context.Context) ([]domain.Service, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Service), args.Error(1)
}

func (m *MockGateway) IsServiceAvailable(ctx context.Context, serviceCode, destinationZip string) bool {
	args := m.Called(ctx, serviceCode, destinationZip)
	return args.Bool(0)
}

func (m *MockGateway) FetchClientData(ctx context.Context) (*domain.ClientData, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ClientData), args.Error(1)
}

func (m *MockGateway) RequestTrackingCodes(ctx context.Context, serviceID string, quantity int) ([]string, error) {
	args := m.Called(ctx, serviceID, quantity)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockGateway) GenerateCheckDigits(ctx context.Context, codes []string) ([]int, error) {
	args := m.Called(ctx, codes)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]int), args.Error(1)
}

func (m *MockGateway) RequestBatchDocument(ctx context.Context, remoteID int64, codes []string) (string, error) {
	args := m.Called(ctx, remoteID, codes)
	return args.String(0), args.Error(1)
}

func (m *MockGateway) CloseBatch(ctx context.Context, xml string, internalNumber int64, codes []string) (int64, error) {
	args := m.Called(ctx, xml, internalNumber, codes)
	return args.Get(0).(int64), args.Error(1)
}

// MockBatchRepository is a mock implementation of ports.BatchRepository
type MockBatchRepository struct {
	mock.Mock
}

func (m *MockBatchRepository) NextInternalNumber(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockBatchRepository) Save(ctx context.Context, batch *domain.Batch) error {
	args := m.Called(ctx, batch)
	return args.Error(0)
}

func (m *MockBatchRepository) Get(ctx context.Context, remoteID int64) (*domain.Batch, error) {
	args := m.Called(ctx, remoteID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Batch), args.Error(1)
}
