package commands

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/allisson/azurecli/internal/account/domain"
	accountUseCase "github.com/allisson/azurecli/internal/account/usecase"
)

// RunAccountImport imports a publish settings file, or a PEM or PKCS#12
// management certificate, into the configuration directory. The first
// subscription of the file becomes the current one and its resource
// providers are registered unless skipRegister is set.
func RunAccountImport(
	ctx context.Context,
	credentialUseCase accountUseCase.CredentialUseCase,
	registrar accountUseCase.ProviderRegistrar,
	logger *slog.Logger,
	writer io.Writer,
	path string,
	skipRegister bool,
	format string,
) error {
	if path == "" {
		return fmt.Errorf("a publish settings file is required")
	}
	if err := validateFormat(format); err != nil {
		return err
	}

	logger.Info("importing account credentials", slog.String("path", path))

	result, err := credentialUseCase.Import(ctx, path)
	if err != nil {
		return fmt.Errorf("failed to import %s: %w", path, err)
	}

	if result.Current != nil && !skipRegister {
		if err := registrar.Register(ctx, result.Current); err != nil {
			return fmt.Errorf("failed to register resource providers: %w", err)
		}
	}

	if format == formatJSON {
		return outputImportJSON(writer, result)
	}
	outputImportText(writer, result)
	return nil
}

func outputImportText(writer io.Writer, result *domain.ImportResult) {
	if result.IsCertificateOnly() {
		_, _ = fmt.Fprintf(writer, "Imported %s management certificate to %s\n", result.Container, result.CertificatePath)
		return
	}

	_, _ = fmt.Fprintf(writer, "Imported %d subscription(s)\n", len(result.Subscriptions))
	if result.Current != nil {
		_, _ = fmt.Fprintf(writer, "Current subscription: %s (%s)\n", result.Current.Name, result.Current.ID)
	}
	if result.CertificatePath != "" {
		_, _ = fmt.Fprintf(writer, "Management certificate: %s\n", result.CertificatePath)
	}
}

func outputImportJSON(writer io.Writer, result *domain.ImportResult) error {
	output := map[string]any{
		"subscriptions": result.Subscriptions,
	}
	if result.Subscriptions == nil {
		output["subscriptions"] = []domain.Subscription{}
	}
	if result.Container != "" {
		output["container"] = result.Container
	}
	if result.Current != nil {
		output["current"] = result.Current
	}
	if result.CertificatePath != "" {
		output["certificate_path"] = result.CertificatePath
	}
	return writeJSON(writer, output)
}
