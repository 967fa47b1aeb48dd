package commands

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	accountUseCase "github.com/allisson/azurecli/internal/account/usecase"
)

// RunAccountClear removes the imported publish settings, the management
// certificate and the current subscription selection.
func RunAccountClear(
	ctx context.Context,
	credentialUseCase accountUseCase.CredentialUseCase,
	logger *slog.Logger,
	writer io.Writer,
) error {
	logger.Info("clearing account credentials")

	if err := credentialUseCase.Clear(ctx); err != nil {
		return fmt.Errorf("failed to clear account credentials: %w", err)
	}

	_, _ = fmt.Fprintln(writer, "Account credentials removed")
	return nil
}
