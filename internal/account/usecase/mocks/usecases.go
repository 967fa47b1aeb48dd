package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/allisson/azurecli/internal/account/domain"
)

// MockSubscriptionUseCase is a mock implementation of SubscriptionUseCase for testing.
type MockSubscriptionUseCase struct {
	mock.Mock
}

// List mocks the List method of SubscriptionUseCase.
func (m *MockSubscriptionUseCase) List(ctx context.Context) ([]domain.Subscription, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Subscription), args.Error(1)
}

// Resolve mocks the Resolve method of SubscriptionUseCase.
func (m *MockSubscriptionUseCase) Resolve(ctx context.Context, nameOrID string) (*domain.Subscription, error) {
	args := m.Called(ctx, nameOrID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Subscription), args.Error(1)
}

// SetCurrent mocks the SetCurrent method of SubscriptionUseCase.
func (m *MockSubscriptionUseCase) SetCurrent(ctx context.Context, id string) (*domain.Subscription, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Subscription), args.Error(1)
}

// Current mocks the Current method of SubscriptionUseCase.
func (m *MockSubscriptionUseCase) Current(ctx context.Context) (*domain.Subscription, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Subscription), args.Error(1)
}

// MockCredentialUseCase is a mock implementation of CredentialUseCase for testing.
type MockCredentialUseCase struct {
	mock.Mock
}

// Import mocks the Import method of CredentialUseCase.
func (m *MockCredentialUseCase) Import(ctx context.Context, path string) (*domain.ImportResult, error) {
	args := m.Called(ctx, path)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ImportResult), args.Error(1)
}

// Load mocks the Load method of CredentialUseCase.
func (m *MockCredentialUseCase) Load(ctx context.Context, path string) (*domain.PublishSettings, error) {
	args := m.Called(ctx, path)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PublishSettings), args.Error(1)
}

// ExportCertificate mocks the ExportCertificate method of CredentialUseCase.
func (m *MockCredentialUseCase) ExportCertificate(
	ctx context.Context,
	sub *domain.Subscription,
	outputPath string,
) error {
	args := m.Called(ctx, sub, outputPath)
	return args.Error(0)
}

// Clear mocks the Clear method of CredentialUseCase.
func (m *MockCredentialUseCase) Clear(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

// MockProviderRegistrar is a mock implementation of ProviderRegistrar for testing.
type MockProviderRegistrar struct {
	mock.Mock
}

// Register mocks the Register method of ProviderRegistrar.
func (m *MockProviderRegistrar) Register(ctx context.Context, sub *domain.Subscription) error {
	args := m.Called(ctx, sub)
	return args.Error(0)
}
