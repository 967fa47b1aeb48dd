package commands

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	accountUseCase "github.com/allisson/azurecli/internal/account/usecase"
)

// RunAccountShow prints the current subscription.
func RunAccountShow(
	ctx context.Context,
	subscriptionUseCase accountUseCase.SubscriptionUseCase,
	logger *slog.Logger,
	writer io.Writer,
	format string,
) error {
	if err := validateFormat(format); err != nil {
		return err
	}

	current, err := subscriptionUseCase.Current(ctx)
	if err != nil {
		return fmt.Errorf("failed to resolve current subscription: %w", err)
	}

	if current == nil {
		logger.Debug("no current subscription")
		if format == formatJSON {
			return writeJSON(writer, map[string]any{"current": nil})
		}
		_, _ = fmt.Fprintln(writer, "No current subscription, use \"azurecli account set\" to select one")
		return nil
	}

	if format == formatJSON {
		return writeJSON(writer, map[string]any{"current": current})
	}

	_, _ = fmt.Fprintf(writer, "Name: %s\n", current.Name)
	_, _ = fmt.Fprintf(writer, "Id: %s\n", current.ID)
	if current.ServiceManagementURL != "" {
		_, _ = fmt.Fprintf(writer, "Endpoint: %s\n", current.ServiceManagementURL)
	}
	return nil
}
