package usecase

import (
	"context"
	"log/slog"

	"github.com/allisson/azurecli/internal/account/domain"
)

// DefaultResourceProviders are the resource providers registered for a
// subscription after import.
var DefaultResourceProviders = []string{"website", "mobileservice"}

// LoggingProviderRegistrar records the registrations it would perform. The
// management API client is not part of this module.
type LoggingProviderRegistrar struct {
	providers []string
	logger    *slog.Logger
}

// NewLoggingProviderRegistrar creates a registrar for providers.
func NewLoggingProviderRegistrar(providers []string, logger *slog.Logger) *LoggingProviderRegistrar {
	return &LoggingProviderRegistrar{
		providers: providers,
		logger:    logger,
	}
}

// Register logs one entry per resource provider.
func (r *LoggingProviderRegistrar) Register(ctx context.Context, sub *domain.Subscription) error {
	if sub == nil {
		return domain.ErrSubscriptionRequired
	}
	for _, provider := range r.providers {
		r.logger.InfoContext(ctx, "resource provider registration requested",
			slog.String("subscription_id", sub.ID),
			slog.String("provider", provider),
		)
	}
	return nil
}
