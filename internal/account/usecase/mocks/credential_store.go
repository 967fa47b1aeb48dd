// Package mocks provides mock implementations of the account use case interfaces.
package mocks

import (
	"github.com/stretchr/testify/mock"

	"github.com/allisson/azurecli/internal/account/domain"
)

// MockCredentialStore is a mock implementation of CredentialStore for testing.
type MockCredentialStore struct {
	mock.Mock
}

// Locate mocks the Locate method of CredentialStore.
func (m *MockCredentialStore) Locate(override string) string {
	args := m.Called(override)
	return args.String(0)
}

// CertificatePath mocks the CertificatePath method of CredentialStore.
func (m *MockCredentialStore) CertificatePath() string {
	args := m.Called()
	return args.String(0)
}

// Read mocks the Read method of CredentialStore.
func (m *MockCredentialStore) Read(path string) ([]byte, error) {
	args := m.Called(path)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

// Parse mocks the Parse method of CredentialStore.
func (m *MockCredentialStore) Parse(raw []byte) (*domain.PublishSettings, error) {
	args := m.Called(raw)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PublishSettings), args.Error(1)
}

// Validate mocks the Validate method of CredentialStore.
func (m *MockCredentialStore) Validate(settings *domain.PublishSettings) error {
	args := m.Called(settings)
	return args.Error(0)
}

// Load mocks the Load method of CredentialStore.
func (m *MockCredentialStore) Load(path string) (*domain.PublishSettings, error) {
	args := m.Called(path)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PublishSettings), args.Error(1)
}

// ImportPublishSettings mocks the ImportPublishSettings method of CredentialStore.
func (m *MockCredentialStore) ImportPublishSettings(raw []byte) error {
	args := m.Called(raw)
	return args.Error(0)
}

// RemovePublishSettings mocks the RemovePublishSettings method of CredentialStore.
func (m *MockCredentialStore) RemovePublishSettings() error {
	args := m.Called()
	return args.Error(0)
}

// ConvertCertificate mocks the ConvertCertificate method of CredentialStore.
func (m *MockCredentialStore) ConvertCertificate(pfx []byte) ([]byte, error) {
	args := m.Called(pfx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

// WriteCertificate mocks the WriteCertificate method of CredentialStore.
func (m *MockCredentialStore) WriteCertificate(path string, pemData []byte) error {
	args := m.Called(path, pemData)
	return args.Error(0)
}

// ReadConfig mocks the ReadConfig method of CredentialStore.
func (m *MockCredentialStore) ReadConfig() (*domain.LocalConfig, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.LocalConfig), args.Error(1)
}

// WriteConfig mocks the WriteConfig method of CredentialStore.
func (m *MockCredentialStore) WriteConfig(cfg *domain.LocalConfig) error {
	args := m.Called(cfg)
	return args.Error(0)
}

// Lock mocks the Lock method of CredentialStore.
func (m *MockCredentialStore) Lock() (func() error, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(func() error), args.Error(1)
}

// Clear mocks the Clear method of CredentialStore.
func (m *MockCredentialStore) Clear() error {
	args := m.Called()
	return args.Error(0)
}
