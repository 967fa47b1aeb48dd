// Package integration provides end-to-end tests for the account workflows,
// assembled through the application container against a real configuration
// directory.
package integration

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/allisson/azurecli/internal/account/domain"
	"github.com/allisson/azurecli/internal/app"
	"github.com/allisson/azurecli/internal/config"
	"github.com/allisson/azurecli/internal/testutil"
)

// integrationTestContext holds the configuration directory and the file
// imported into it.
type integrationTestContext struct {
	workDir      string
	configDir    string
	settingsPath string
	ids          []string
}

func setupIntegrationTest(t *testing.T, subscriptions int) *integrationTestContext {
	t.Helper()

	workDir := t.TempDir()
	entries := make([]testutil.SubscriptionEntry, 0, subscriptions)
	ids := make([]string, 0, subscriptions)
	for i := 0; i < subscriptions; i++ {
		id := fmt.Sprintf("0000000%d-0000-0000-0000-000000000000", i)
		ids = append(ids, id)
		entries = append(entries, testutil.SubscriptionEntry{
			ID:                   id,
			Name:                 fmt.Sprintf("Subscription %d", i),
			Certificate:          testutil.NewPFXBase64(t, ""),
			ServiceManagementURL: "https://management.core.windows.net",
		})
	}

	settingsPath := filepath.Join(workDir, "credentials.publishsettings")
	raw := testutil.PublishSettingsXML(testutil.PublishProfile{
		SchemaVersion: domain.SchemaVersion2,
		Subscriptions: entries,
	})
	require.NoError(t, os.WriteFile(settingsPath, raw, 0o600))

	return &integrationTestContext{
		workDir:      workDir,
		configDir:    filepath.Join(workDir, ".azure"),
		settingsPath: settingsPath,
		ids:          ids,
	}
}

func (tc *integrationTestContext) newContainer(metricsEnabled bool) *app.Container {
	return app.NewContainer(&config.Config{
		ConfigDir:        tc.configDir,
		LogLevel:         "error",
		LogFormat:        "text",
		MetricsEnabled:   metricsEnabled,
		MetricsNamespace: "azurecli",
		MetricsTextfile:  filepath.Join(tc.workDir, "metrics.prom"),
	})
}

func readLocalConfig(t *testing.T, configDir string) domain.LocalConfig {
	t.Helper()
	raw, err := os.ReadFile(filepath.Join(configDir, "config.json"))
	require.NoError(t, err)
	var cfg domain.LocalConfig
	require.NoError(t, json.Unmarshal(raw, &cfg))
	return cfg
}

func TestIntegration_ImportExport(t *testing.T) {
	ctx := context.Background()
	tc := setupIntegrationTest(t, 3)

	container := tc.newContainer(true)
	credentialUseCase, err := container.CredentialUseCase()
	require.NoError(t, err)
	subscriptionUseCase, err := container.SubscriptionUseCase()
	require.NoError(t, err)

	result, err := credentialUseCase.Import(ctx, tc.settingsPath)
	require.NoError(t, err)
	require.Len(t, result.Subscriptions, 3)
	assert.Equal(t, tc.ids[0], result.Current.ID)
	assert.FileExists(t, filepath.Join(tc.configDir, "managementCertificate.pem"))

	cfg := readLocalConfig(t, tc.configDir)
	assert.Equal(t, tc.ids[0], cfg.Subscription)
	assert.Equal(t, "https://management.core.windows.net/", cfg.Endpoint)

	sub, err := subscriptionUseCase.Resolve(ctx, "SUBSCRIPTION 2")
	require.NoError(t, err)
	output := filepath.Join(tc.workDir, "export.pem")
	require.NoError(t, credentialUseCase.ExportCertificate(ctx, sub, output))

	pemData, err := os.ReadFile(output)
	require.NoError(t, err)
	assert.Contains(t, string(pemData), "-----BEGIN CERTIFICATE-----")

	require.NoError(t, container.Shutdown(ctx))
	metricsRaw, err := os.ReadFile(filepath.Join(tc.workDir, "metrics.prom"))
	require.NoError(t, err)
	assert.Regexp(t, `azurecli_operations_total\{[^}]*operation="credentials_import"[^}]*\} 1`, string(metricsRaw))
	assert.Regexp(t, `azurecli_operations_total\{[^}]*operation="certificate_export"[^}]*\} 1`, string(metricsRaw))
}

func TestIntegration_SelectionSurvivesNewContainers(t *testing.T) {
	ctx := context.Background()
	tc := setupIntegrationTest(t, 2)

	first := tc.newContainer(false)
	credentialUseCase, err := first.CredentialUseCase()
	require.NoError(t, err)
	_, err = credentialUseCase.Import(ctx, tc.settingsPath)
	require.NoError(t, err)

	subscriptionUseCase, err := first.SubscriptionUseCase()
	require.NoError(t, err)
	_, err = subscriptionUseCase.SetCurrent(ctx, tc.ids[1])
	require.NoError(t, err)
	require.NoError(t, first.Shutdown(ctx))

	second := tc.newContainer(false)
	subscriptionUseCase, err = second.SubscriptionUseCase()
	require.NoError(t, err)
	current, err := subscriptionUseCase.Current(ctx)
	require.NoError(t, err)
	require.NotNil(t, current)
	assert.Equal(t, tc.ids[1], current.ID)
	assert.Equal(t, "Subscription 1", current.Name)
}

func TestIntegration_ConcurrentSetCurrent(t *testing.T) {
	ctx := context.Background()
	tc := setupIntegrationTest(t, 4)

	setup := tc.newContainer(false)
	credentialUseCase, err := setup.CredentialUseCase()
	require.NoError(t, err)
	_, err = credentialUseCase.Import(ctx, tc.settingsPath)
	require.NoError(t, err)

	var wg sync.WaitGroup
	errs := make(chan error, 4*len(tc.ids))
	for round := 0; round < 4; round++ {
		for _, id := range tc.ids {
			wg.Add(1)
			go func(id string) {
				defer wg.Done()
				container := tc.newContainer(false)
				subscriptionUseCase, err := container.SubscriptionUseCase()
				if err != nil {
					errs <- err
					return
				}
				_, err = subscriptionUseCase.SetCurrent(ctx, id)
				errs <- err
			}(id)
		}
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		require.NoError(t, err)
	}

	cfg := readLocalConfig(t, tc.configDir)
	assert.True(t, slices.Contains(tc.ids, cfg.Subscription), cfg.Subscription)

	leftovers, err := filepath.Glob(filepath.Join(tc.configDir, ".*.tmp"))
	require.NoError(t, err)
	assert.Empty(t, leftovers)
}
