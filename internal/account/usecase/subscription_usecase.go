package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/allisson/azurecli/internal/account/domain"
	"github.com/allisson/azurecli/internal/account/store"
	"github.com/allisson/azurecli/internal/validation"
)

// Config holds subscription use case configuration.
type Config struct {
	// StrictCertificateRefresh makes SetCurrent fail when the management
	// certificate of the new subscription cannot be converted or written.
	StrictCertificateRefresh bool
}

// subscriptionUseCase implements SubscriptionUseCase on top of a CredentialStore.
// It keeps no state between calls: every operation reads the store again.
type subscriptionUseCase struct {
	config Config
	store  CredentialStore
	logger *slog.Logger
}

// NewSubscriptionUseCase creates a SubscriptionUseCase backed by store.
func NewSubscriptionUseCase(config Config, store CredentialStore, logger *slog.Logger) SubscriptionUseCase {
	return &subscriptionUseCase{
		config: config,
		store:  store,
		logger: logger,
	}
}

// List returns the subscriptions of the imported publish settings.
func (s *subscriptionUseCase) List(ctx context.Context) ([]domain.Subscription, error) {
	settings, err := s.store.Load(s.store.Locate(""))
	if err != nil {
		if errors.Is(err, domain.ErrCredentialsNotFound) {
			return nil, domain.ErrNoCredentials
		}
		return nil, err
	}
	return settings.Subscriptions, nil
}

// Resolve finds the subscription selected by nameOrID or, when it is empty,
// the persisted current subscription.
func (s *subscriptionUseCase) Resolve(ctx context.Context, nameOrID string) (*domain.Subscription, error) {
	selector := strings.TrimSpace(nameOrID)
	if selector == "" {
		cfg, err := s.store.ReadConfig()
		if err != nil {
			return nil, err
		}
		if cfg.Subscription == "" {
			return nil, nil
		}
		selector = cfg.Subscription
	}

	subscriptions, err := s.List(ctx)
	if err != nil {
		return nil, err
	}

	sub, found := domain.FindSubscription(subscriptions, selector)
	if !found {
		return nil, fmt.Errorf("%w: %s", domain.ErrUnknownSubscription, selector)
	}

	if !strings.EqualFold(sub.ID, selector) && domain.IsAmbiguousName(subscriptions, selector) {
		s.logger.Warn("subscription name is ambiguous, using the first match",
			slog.String("name", selector),
			slog.String("subscription_id", sub.ID),
		)
	}

	return sub, nil
}

// Current resolves the persisted current subscription.
func (s *subscriptionUseCase) Current(ctx context.Context) (*domain.Subscription, error) {
	return s.Resolve(ctx, "")
}

// SetCurrent makes id the current subscription.
//
// The endpoint is validated before anything is written and the config file
// is always written last, so a failed call leaves the previous selection in
// place.
func (s *subscriptionUseCase) SetCurrent(ctx context.Context, id string) (*domain.Subscription, error) {
	subscriptions, err := s.List(ctx)
	if err != nil {
		return nil, err
	}

	sub, found := domain.FindSubscriptionByID(subscriptions, strings.TrimSpace(id))
	if !found {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidSubscription, id)
	}

	err = withLock(s.store, s.logger, func() error {
		cfg, err := s.store.ReadConfig()
		if err != nil {
			return err
		}

		if sub.ServiceManagementURL != "" && sub.ServiceManagementURL != cfg.Endpoint {
			endpoint, err := validation.NormalizeEndpoint(sub.ServiceManagementURL)
			if err != nil {
				return fmt.Errorf("%w: %s: %v", domain.ErrInvalidEndpoint, sub.ServiceManagementURL, err)
			}
			cfg.Endpoint = endpoint
		}

		if sub.HasCertificate() {
			if err := s.refreshCertificate(sub); err != nil {
				if s.config.StrictCertificateRefresh {
					return err
				}
				s.logger.Warn("failed to refresh management certificate",
					slog.String("subscription_id", sub.ID),
					slog.Any("error", err),
				)
			}
		}

		cfg.Subscription = sub.ID
		return s.store.WriteConfig(cfg)
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("current subscription set",
		slog.String("subscription_id", sub.ID),
		slog.String("name", sub.Name),
	)
	return sub, nil
}

// refreshCertificate converts the subscription certificate and replaces the
// stored management certificate with it.
func (s *subscriptionUseCase) refreshCertificate(sub *domain.Subscription) error {
	pfx, err := store.DecodeSubscriptionCertificate(sub)
	if err != nil {
		return err
	}
	pemData, err := s.store.ConvertCertificate(pfx)
	if err != nil {
		return err
	}
	return s.store.WriteCertificate(s.store.CertificatePath(), pemData)
}

// withLock runs fn while holding the store lock.
func withLock(st CredentialStore, logger *slog.Logger, fn func() error) error {
	unlock, err := st.Lock()
	if err != nil {
		return err
	}
	defer func() {
		if err := unlock(); err != nil {
			logger.Error("failed to release config directory lock", slog.Any("error", err))
		}
	}()
	return fn()
}
