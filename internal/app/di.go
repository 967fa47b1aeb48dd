// Package app provides dependency injection container for assembling application components.
package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/google/uuid"

	accountStore "github.com/allisson/azurecli/internal/account/store"
	accountUseCase "github.com/allisson/azurecli/internal/account/usecase"
	"github.com/allisson/azurecli/internal/config"
	"github.com/allisson/azurecli/internal/metrics"
)

// Container holds all application dependencies and provides methods to access them.
// It follows the lazy initialization pattern - components are created on first access.
type Container struct {
	// Configuration
	config *config.Config

	// Infrastructure
	logger          *slog.Logger
	logOutput       io.Writer
	invocationID    string
	metricsProvider *metrics.Provider
	businessMetrics metrics.BusinessMetrics

	// Account
	store               *accountStore.Store
	subscriptionUseCase accountUseCase.SubscriptionUseCase
	credentialUseCase   accountUseCase.CredentialUseCase
	providerRegistrar   accountUseCase.ProviderRegistrar

	// Initialization flags and mutex for thread-safety
	mu                      sync.Mutex
	loggerInit              sync.Once
	metricsProviderInit     sync.Once
	businessMetricsInit     sync.Once
	storeInit               sync.Once
	subscriptionUseCaseInit sync.Once
	credentialUseCaseInit   sync.Once
	providerRegistrarInit   sync.Once
	initErrors              map[string]error
}

// NewContainer creates a new dependency injection container with the provided configuration.
func NewContainer(cfg *config.Config) *Container {
	return &Container{
		config:       cfg,
		logOutput:    os.Stderr,
		invocationID: uuid.Must(uuid.NewV7()).String(),
		initErrors:   make(map[string]error),
	}
}

// Config returns the application configuration.
func (c *Container) Config() *config.Config {
	return c.config
}

// InvocationID identifies this process run in every log record.
func (c *Container) InvocationID() string {
	return c.invocationID
}

// Logger returns the configured logger instance.
// It creates a new logger on first access based on the log level and format in configuration.
func (c *Container) Logger() *slog.Logger {
	c.loggerInit.Do(func() {
		c.logger = c.initLogger()
	})
	return c.logger
}

// MetricsProvider returns the OpenTelemetry metrics provider.
func (c *Container) MetricsProvider() (*metrics.Provider, error) {
	var err error
	c.metricsProviderInit.Do(func() {
		c.metricsProvider, err = metrics.NewProvider()
		if err != nil {
			c.initErrors["metricsProvider"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["metricsProvider"]; exists {
		return nil, storedErr
	}
	return c.metricsProvider, nil
}

// BusinessMetrics returns the business metrics recorder. A no-op recorder is
// returned when metrics are disabled.
func (c *Container) BusinessMetrics() (metrics.BusinessMetrics, error) {
	var err error
	c.businessMetricsInit.Do(func() {
		c.businessMetrics, err = c.initBusinessMetrics()
		if err != nil {
			c.initErrors["businessMetrics"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["businessMetrics"]; exists {
		return nil, storedErr
	}
	return c.businessMetrics, nil
}

// Shutdown performs cleanup of all initialized resources.
// When metrics are enabled the collected metrics are written to the
// configured textfile before the provider is shut down.
func (c *Container) Shutdown(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	var shutdownErrors []error

	if c.metricsProvider != nil {
		if c.config.MetricsEnabled && c.config.MetricsTextfile != "" {
			if err := writeMetricsTextfile(c.metricsProvider, c.config.MetricsTextfile); err != nil {
				shutdownErrors = append(shutdownErrors, fmt.Errorf("metrics textfile: %w", err))
			}
		}
		if err := c.metricsProvider.Shutdown(ctx); err != nil {
			shutdownErrors = append(shutdownErrors, fmt.Errorf("metrics provider shutdown: %w", err))
		}
	}

	// Return combined errors if any occurred
	if len(shutdownErrors) > 0 {
		return fmt.Errorf("shutdown errors: %v", shutdownErrors)
	}

	return nil
}

// initLogger creates a structured logger on stderr, leaving stdout to command output.
func (c *Container) initLogger() *slog.Logger {
	var logLevel slog.Level
	switch strings.ToLower(c.config.LogLevel) {
	case "debug":
		logLevel = slog.LevelDebug
	case "info":
		logLevel = slog.LevelInfo
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelWarn
	}

	opts := &slog.HandlerOptions{Level: logLevel}

	var handler slog.Handler
	if strings.EqualFold(c.config.LogFormat, "json") {
		handler = slog.NewJSONHandler(c.logOutput, opts)
	} else {
		handler = slog.NewTextHandler(c.logOutput, opts)
	}

	return slog.New(handler).With(slog.String("invocation_id", c.invocationID))
}

// initBusinessMetrics creates the OpenTelemetry backed recorder when metrics are enabled.
func (c *Container) initBusinessMetrics() (metrics.BusinessMetrics, error) {
	if !c.config.MetricsEnabled {
		return metrics.NewNoOpBusinessMetrics(), nil
	}

	provider, err := c.MetricsProvider()
	if err != nil {
		return nil, fmt.Errorf("failed to get metrics provider for business metrics: %w", err)
	}

	businessMetrics, err := metrics.NewBusinessMetrics(provider.MeterProvider(), c.config.MetricsNamespace)
	if err != nil {
		return nil, fmt.Errorf("failed to create business metrics: %w", err)
	}
	return businessMetrics, nil
}

// writeMetricsTextfile writes the provider registry to path, creating its directory.
func writeMetricsTextfile(provider *metrics.Provider, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return err
	}
	return provider.WriteTextfile(path)
}
