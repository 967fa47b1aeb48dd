package commands

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/allisson/azurecli/internal/account/domain"
	accountUseCase "github.com/allisson/azurecli/internal/account/usecase"
)

// RunAccountSet makes the subscription selected by name or id the current one.
func RunAccountSet(
	ctx context.Context,
	subscriptionUseCase accountUseCase.SubscriptionUseCase,
	logger *slog.Logger,
	writer io.Writer,
	nameOrID string,
) error {
	if strings.TrimSpace(nameOrID) == "" {
		return domain.ErrSubscriptionRequired
	}

	sub, err := subscriptionUseCase.Resolve(ctx, nameOrID)
	if err != nil {
		return fmt.Errorf("failed to resolve subscription: %w", err)
	}

	current, err := subscriptionUseCase.SetCurrent(ctx, sub.ID)
	if err != nil {
		return fmt.Errorf("failed to set current subscription: %w", err)
	}

	logger.Debug("subscription selected", slog.String("selector", nameOrID), slog.String("subscription_id", current.ID))
	_, _ = fmt.Fprintf(writer, "Setting subscription to %s (%s)\n", current.Name, current.ID)
	return nil
}
