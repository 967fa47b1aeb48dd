package usecase

import (
	"context"
	"time"

	"github.com/allisson/azurecli/internal/account/domain"
	"github.com/allisson/azurecli/internal/metrics"
)

// subscriptionUseCaseWithMetrics decorates SubscriptionUseCase with metrics instrumentation.
type subscriptionUseCaseWithMetrics struct {
	next    SubscriptionUseCase
	metrics metrics.BusinessMetrics
}

// NewSubscriptionUseCaseWithMetrics wraps a SubscriptionUseCase with metrics recording.
func NewSubscriptionUseCaseWithMetrics(useCase SubscriptionUseCase, m metrics.BusinessMetrics) SubscriptionUseCase {
	return &subscriptionUseCaseWithMetrics{
		next:    useCase,
		metrics: m,
	}
}

func (s *subscriptionUseCaseWithMetrics) List(ctx context.Context) ([]domain.Subscription, error) {
	start := time.Now()
	subscriptions, err := s.next.List(ctx)
	s.metrics.Observe(ctx, "subscription_list", time.Since(start), err)
	return subscriptions, err
}

func (s *subscriptionUseCaseWithMetrics) Resolve(ctx context.Context, nameOrID string) (*domain.Subscription, error) {
	start := time.Now()
	sub, err := s.next.Resolve(ctx, nameOrID)
	s.metrics.Observe(ctx, "subscription_resolve", time.Since(start), err)
	return sub, err
}

func (s *subscriptionUseCaseWithMetrics) SetCurrent(ctx context.Context, id string) (*domain.Subscription, error) {
	start := time.Now()
	sub, err := s.next.SetCurrent(ctx, id)
	s.metrics.Observe(ctx, "subscription_set", time.Since(start), err)
	return sub, err
}

func (s *subscriptionUseCaseWithMetrics) Current(ctx context.Context) (*domain.Subscription, error) {
	start := time.Now()
	sub, err := s.next.Current(ctx)
	s.metrics.Observe(ctx, "subscription_current", time.Since(start), err)
	return sub, err
}

// credentialUseCaseWithMetrics decorates CredentialUseCase with metrics instrumentation.
type credentialUseCaseWithMetrics struct {
	next    CredentialUseCase
	metrics metrics.BusinessMetrics
}

// NewCredentialUseCaseWithMetrics wraps a CredentialUseCase with metrics recording.
func NewCredentialUseCaseWithMetrics(useCase CredentialUseCase, m metrics.BusinessMetrics) CredentialUseCase {
	return &credentialUseCaseWithMetrics{
		next:    useCase,
		metrics: m,
	}
}

func (c *credentialUseCaseWithMetrics) Import(ctx context.Context, path string) (*domain.ImportResult, error) {
	start := time.Now()
	result, err := c.next.Import(ctx, path)
	c.metrics.Observe(ctx, "credentials_import", time.Since(start), err)
	return result, err
}

func (c *credentialUseCaseWithMetrics) Load(ctx context.Context, path string) (*domain.PublishSettings, error) {
	start := time.Now()
	settings, err := c.next.Load(ctx, path)
	c.metrics.Observe(ctx, "credentials_load", time.Since(start), err)
	return settings, err
}

func (c *credentialUseCaseWithMetrics) ExportCertificate(
	ctx context.Context,
	sub *domain.Subscription,
	outputPath string,
) error {
	start := time.Now()
	err := c.next.ExportCertificate(ctx, sub, outputPath)
	c.metrics.Observe(ctx, "certificate_export", time.Since(start), err)
	return err
}

func (c *credentialUseCaseWithMetrics) Clear(ctx context.Context) error {
	start := time.Now()
	err := c.next.Clear(ctx)
	c.metrics.Observe(ctx, "credentials_clear", time.Since(start), err)
	return err
}
