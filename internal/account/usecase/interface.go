// Package usecase implements the account workflows on top of the credential
// store: listing and selecting subscriptions, importing publish settings or
// certificates and exporting management certificates.
package usecase

import (
	"context"

	"github.com/allisson/azurecli/internal/account/domain"
)

// CredentialStore defines the on-disk account state used by the use cases.
type CredentialStore interface {
	Locate(override string) string
	CertificatePath() string
	Read(path string) ([]byte, error)
	Parse(raw []byte) (*domain.PublishSettings, error)
	Validate(settings *domain.PublishSettings) error
	Load(path string) (*domain.PublishSettings, error)
	ImportPublishSettings(raw []byte) error
	RemovePublishSettings() error
	ConvertCertificate(pfx []byte) ([]byte, error)
	WriteCertificate(path string, pemData []byte) error
	ReadConfig() (*domain.LocalConfig, error)
	WriteConfig(cfg *domain.LocalConfig) error
	// Lock takes the cross-process lock of the configuration directory.
	// The returned function releases it and must always be called.
	Lock() (func() error, error)
	Clear() error
}

// SubscriptionUseCase lists the imported subscriptions and manages which one is current.
type SubscriptionUseCase interface {
	// List returns the imported subscriptions in document order.
	// It fails with domain.ErrNoCredentials when nothing has been imported.
	List(ctx context.Context) ([]domain.Subscription, error)
	// Resolve finds a subscription by id or name, ignoring case. An empty
	// nameOrID resolves the persisted current subscription, and yields
	// (nil, nil) when none is persisted.
	Resolve(ctx context.Context, nameOrID string) (*domain.Subscription, error)
	// SetCurrent persists id as the current subscription, refreshing the
	// stored management certificate and endpoint.
	SetCurrent(ctx context.Context, id string) (*domain.Subscription, error)
	// Current is Resolve with an empty selector.
	Current(ctx context.Context) (*domain.Subscription, error)
}

// CredentialUseCase imports, exports and removes account credentials.
type CredentialUseCase interface {
	// Import installs the publish settings or certificate file at path and
	// selects the first declared subscription. When that selection fails the
	// previously imported document is put back.
	Import(ctx context.Context, path string) (*domain.ImportResult, error)
	// Load reads the publish settings at path, or the imported ones when
	// path is empty.
	Load(ctx context.Context, path string) (*domain.PublishSettings, error)
	// ExportCertificate writes the subscription's management certificate as
	// PEM to outputPath.
	ExportCertificate(ctx context.Context, sub *domain.Subscription, outputPath string) error
	// Clear removes every imported account file.
	Clear(ctx context.Context) error
}

// ProviderRegistrar registers the resource providers a subscription needs
// after import.
type ProviderRegistrar interface {
	Register(ctx context.Context, sub *domain.Subscription) error
}
