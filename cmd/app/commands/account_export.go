package commands

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/allisson/azurecli/internal/account/domain"
	accountUseCase "github.com/allisson/azurecli/internal/account/usecase"
)

// RunAccountExport writes the management certificate of a subscription as
// PEM. The subscription is taken from the selector, then from the current
// subscription, then from a single-subscription document, and finally asked
// for interactively. The default output file is "<subscription name>.pem".
func RunAccountExport(
	ctx context.Context,
	credentialUseCase accountUseCase.CredentialUseCase,
	subscriptionUseCase accountUseCase.SubscriptionUseCase,
	logger *slog.Logger,
	io IOTuple,
	selector string,
	outputFile string,
	publishSettingsPath string,
) error {
	settings, err := credentialUseCase.Load(ctx, publishSettingsPath)
	if err != nil {
		return fmt.Errorf("to export a certificate a valid publish settings file needs to be either specified or imported: %w", err)
	}

	sub, err := selectExportSubscription(ctx, subscriptionUseCase, logger, settings.Subscriptions, selector, io)
	if err != nil {
		return err
	}

	if outputFile == "" {
		outputFile = defaultCertificateFileName(sub.Name)
	}

	if err := credentialUseCase.ExportCertificate(ctx, sub, outputFile); err != nil {
		return fmt.Errorf("failed to export certificate of subscription %s: %w", sub.Name, err)
	}

	_, _ = fmt.Fprintf(io.Writer, "Exported management certificate of %s (%s) to %s\n", sub.Name, sub.ID, outputFile)
	return nil
}

// selectExportSubscription picks the subscription to export from subscriptions.
func selectExportSubscription(
	ctx context.Context,
	subscriptionUseCase accountUseCase.SubscriptionUseCase,
	logger *slog.Logger,
	subscriptions []domain.Subscription,
	selector string,
	io IOTuple,
) (*domain.Subscription, error) {
	if selector = strings.TrimSpace(selector); selector != "" {
		sub, found := domain.FindSubscription(subscriptions, selector)
		if !found {
			return nil, fmt.Errorf("%w: %s", domain.ErrUnknownSubscription, selector)
		}
		return sub, nil
	}

	current, err := subscriptionUseCase.Current(ctx)
	switch {
	case err == nil && current != nil:
		if sub, found := domain.FindSubscriptionByID(subscriptions, current.ID); found {
			return sub, nil
		}
	case errors.Is(err, domain.ErrNoCredentials), errors.Is(err, domain.ErrUnknownSubscription):
		logger.Debug("no usable current subscription", slog.Any("error", err))
	case err != nil:
		return nil, err
	}

	switch len(subscriptions) {
	case 0:
		return nil, fmt.Errorf("%w: the publish settings file declares no subscriptions", domain.ErrSubscriptionRequired)
	case 1:
		sub := subscriptions[0]
		return &sub, nil
	}

	return promptForSubscription(subscriptions, io)
}

// promptForSubscription asks the user to choose a subscription by number, id or name.
func promptForSubscription(subscriptions []domain.Subscription, io IOTuple) (*domain.Subscription, error) {
	if io.Reader == nil {
		return nil, domain.ErrSubscriptionRequired
	}

	writer := io.Writer
	_, _ = fmt.Fprintln(writer, "Subscriptions:")
	for i, sub := range subscriptions {
		_, _ = fmt.Fprintf(writer, "  %d) %s (%s)\n", i+1, sub.Name, sub.ID)
	}
	_, _ = fmt.Fprint(writer, "Subscription: ")

	answer, err := bufio.NewReader(io.Reader).ReadString('\n')
	answer = strings.TrimSpace(answer)
	if answer == "" {
		if err != nil {
			return nil, fmt.Errorf("failed to read subscription: %w", err)
		}
		return nil, domain.ErrSubscriptionRequired
	}

	if n, convErr := strconv.Atoi(answer); convErr == nil && n >= 1 && n <= len(subscriptions) {
		sub := subscriptions[n-1]
		return &sub, nil
	}

	sub, found := domain.FindSubscription(subscriptions, answer)
	if !found {
		return nil, fmt.Errorf("%w: %s", domain.ErrUnknownSubscription, answer)
	}
	return sub, nil
}

// defaultCertificateFileName derives "<name>.pem", replacing path separators.
func defaultCertificateFileName(name string) string {
	cleaned := strings.Map(func(r rune) rune {
		switch r {
		case '/', '\\', ':':
			return '_'
		}
		return r
	}, strings.TrimSpace(name))
	if cleaned == "" || cleaned == "." || cleaned == ".." {
		cleaned = "managementCertificate"
	}
	return cleaned + ".pem"
}
