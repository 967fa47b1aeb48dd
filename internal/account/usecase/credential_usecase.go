package usecase

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/allisson/azurecli/internal/account/domain"
	"github.com/allisson/azurecli/internal/account/store"
)

// credentialUseCase implements CredentialUseCase.
type credentialUseCase struct {
	store         CredentialStore
	subscriptions SubscriptionUseCase
	logger        *slog.Logger
}

// NewCredentialUseCase creates a CredentialUseCase. Imports select their
// first subscription through subscriptions.
func NewCredentialUseCase(
	store CredentialStore,
	subscriptions SubscriptionUseCase,
	logger *slog.Logger,
) CredentialUseCase {
	return &credentialUseCase{
		store:         store,
		subscriptions: subscriptions,
		logger:        logger,
	}
}

// Import installs a publish settings document, or a bare PEM or PKCS#12
// certificate, from path.
//
// The previously imported document is restored when the first subscription
// cannot be made current, so the document and the persisted selection never
// disagree.
func (c *credentialUseCase) Import(ctx context.Context, path string) (*domain.ImportResult, error) {
	raw, err := c.store.Read(path)
	if err != nil {
		return nil, err
	}

	settings, err := c.store.Parse(raw)
	if err != nil {
		if errors.Is(err, domain.ErrCertificateContainer) {
			return c.importCertificate(raw)
		}
		return nil, err
	}
	if err := c.store.Validate(settings); err != nil {
		return nil, err
	}

	var previous []byte
	if err := withLock(c.store, c.logger, func() error {
		prev, err := c.readInstalledDocument()
		if err != nil {
			return err
		}
		previous = prev
		if err := c.store.ImportPublishSettings(raw); err != nil {
			return err
		}
		if len(settings.Subscriptions) > 0 {
			return nil
		}
		// Nothing to select in the new document.
		if err := c.store.WriteConfig(&domain.LocalConfig{}); err != nil {
			c.restoreDocument(previous)
			return err
		}
		return nil
	}); err != nil {
		return nil, err
	}

	result := &domain.ImportResult{Subscriptions: settings.Subscriptions}
	if len(settings.Subscriptions) == 0 {
		c.logger.Warn("imported publish settings declare no subscriptions", slog.String("path", path))
		return result, nil
	}

	for _, name := range domain.DuplicateNames(settings.Subscriptions) {
		c.logger.Warn("subscription name is not unique, select it by id", slog.String("name", name))
	}

	current, err := c.subscriptions.SetCurrent(ctx, settings.Subscriptions[0].ID)
	if err != nil {
		if lockErr := withLock(c.store, c.logger, func() error {
			c.restoreDocument(previous)
			return nil
		}); lockErr != nil {
			c.logger.Error("failed to restore previous publish settings", slog.Any("error", lockErr))
		}
		return nil, err
	}
	result.Current = current
	result.CertificatePath = c.installedCertificate(current)

	return result, nil
}

// readInstalledDocument returns the currently imported publish settings, or
// nil when nothing has been imported.
func (c *credentialUseCase) readInstalledDocument() ([]byte, error) {
	raw, err := c.store.Read(c.store.Locate(""))
	if err != nil {
		if errors.Is(err, domain.ErrCredentialsNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return raw, nil
}

// restoreDocument puts previous back in place, or removes the imported
// document when there was none. Must be called with the store lock held.
func (c *credentialUseCase) restoreDocument(previous []byte) {
	var err error
	if previous == nil {
		err = c.store.RemovePublishSettings()
	} else {
		err = c.store.ImportPublishSettings(previous)
	}
	if err != nil {
		c.logger.Error("failed to restore previous publish settings", slog.Any("error", err))
		return
	}
	c.logger.Debug("previous publish settings restored")
}

// installedCertificate returns the stored management certificate path when it
// holds the certificate of sub, and "" otherwise.
func (c *credentialUseCase) installedCertificate(sub *domain.Subscription) string {
	if sub == nil || !sub.HasCertificate() {
		return ""
	}
	pfx, err := store.DecodeSubscriptionCertificate(sub)
	if err != nil {
		return ""
	}
	want, err := c.store.ConvertCertificate(pfx)
	if err != nil {
		return ""
	}

	path := c.store.CertificatePath()
	got, err := c.store.Read(path)
	if err != nil || !bytes.Equal(got, want) {
		c.logger.Warn("management certificate was not refreshed",
			slog.String("subscription_id", sub.ID),
			slog.String("path", path),
		)
		return ""
	}
	return path
}

// importCertificate installs a certificate container as the management certificate.
func (c *credentialUseCase) importCertificate(raw []byte) (*domain.ImportResult, error) {
	container := store.DetectCertificateContainer(raw)

	var (
		pemData []byte
		err     error
	)
	switch container {
	case store.ContainerPKCS12:
		pemData, err = c.store.ConvertCertificate(raw)
	case store.ContainerPEM:
		pemData, err = store.NormalizePEM(raw)
	default:
		return nil, domain.ErrMalformedCredentials
	}
	if err != nil {
		return nil, err
	}

	path := c.store.CertificatePath()
	if err := withLock(c.store, c.logger, func() error {
		return c.store.WriteCertificate(path, pemData)
	}); err != nil {
		return nil, err
	}

	c.logger.Info("management certificate imported",
		slog.String("container", container.String()),
		slog.String("path", path),
	)
	return &domain.ImportResult{
		Container:       container.String(),
		CertificatePath: path,
	}, nil
}

// Load reads and validates publish settings. An empty path loads the
// imported document.
func (c *credentialUseCase) Load(ctx context.Context, path string) (*domain.PublishSettings, error) {
	location := c.store.Locate(path)
	settings, err := c.store.Load(location)
	if err != nil {
		if errors.Is(err, domain.ErrCredentialsNotFound) {
			return nil, fmt.Errorf("%w: %s", domain.ErrNoCredentials, location)
		}
		return nil, err
	}
	return settings, nil
}

// ExportCertificate converts the subscription certificate to PEM and writes
// it to outputPath with owner-only permissions.
func (c *credentialUseCase) ExportCertificate(
	ctx context.Context,
	sub *domain.Subscription,
	outputPath string,
) error {
	pfx, err := store.DecodeSubscriptionCertificate(sub)
	if err != nil {
		return err
	}
	pemData, err := c.store.ConvertCertificate(pfx)
	if err != nil {
		return err
	}
	if err := c.store.WriteCertificate(outputPath, pemData); err != nil {
		return err
	}

	c.logger.Info("management certificate exported",
		slog.String("subscription_id", sub.ID),
		slog.String("path", outputPath),
	)
	return nil
}

// Clear removes the imported publish settings, certificate and config.
func (c *credentialUseCase) Clear(ctx context.Context) error {
	return withLock(c.store, c.logger, c.store.Clear)
}
