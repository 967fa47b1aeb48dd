package commands

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"text/tabwriter"

	"github.com/allisson/azurecli/internal/account/domain"
	accountUseCase "github.com/allisson/azurecli/internal/account/usecase"
)

// subscriptionOutput is the JSON shape of a listed subscription.
type subscriptionOutput struct {
	ID                   string `json:"id"`
	Name                 string `json:"name"`
	ServiceManagementURL string `json:"serviceManagementUrl,omitempty"`
	Current              bool   `json:"current"`
}

// RunAccountList prints the imported subscriptions and marks the current one.
func RunAccountList(
	ctx context.Context,
	subscriptionUseCase accountUseCase.SubscriptionUseCase,
	logger *slog.Logger,
	writer io.Writer,
	format string,
) error {
	if err := validateFormat(format); err != nil {
		return err
	}

	subscriptions, err := subscriptionUseCase.List(ctx)
	if err != nil {
		return fmt.Errorf("failed to list subscriptions: %w", err)
	}

	currentID := ""
	current, err := subscriptionUseCase.Current(ctx)
	if err != nil {
		logger.Warn("failed to resolve current subscription", slog.Any("error", err))
	} else if current != nil {
		currentID = current.ID
	}

	outputs := make([]subscriptionOutput, 0, len(subscriptions))
	for _, sub := range subscriptions {
		outputs = append(outputs, subscriptionOutput{
			ID:                   sub.ID,
			Name:                 sub.Name,
			ServiceManagementURL: sub.ServiceManagementURL,
			Current:              currentID != "" && strings.EqualFold(sub.ID, currentID),
		})
	}

	for _, name := range domain.DuplicateNames(subscriptions) {
		logger.Warn("subscription name is not unique, select it by id", slog.String("name", name))
	}

	if format == formatJSON {
		return writeJSON(writer, outputs)
	}
	return outputListText(writer, outputs)
}

func outputListText(writer io.Writer, outputs []subscriptionOutput) error {
	tw := tabwriter.NewWriter(writer, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(tw, "Name\tId\tCurrent")
	for _, out := range outputs {
		_, _ = fmt.Fprintf(tw, "%s\t%s\t%t\n", out.Name, out.ID, out.Current)
	}
	return tw.Flush()
}
