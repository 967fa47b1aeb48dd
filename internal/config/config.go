// Package config provides application configuration through environment variables.
package config

import (
	"os"
	"path/filepath"

	"github.com/allisson/go-env"
	"github.com/joho/godotenv"
)

const (
	// DefaultConfigDirName is the directory created under the user's home
	// directory when AZURE_CONFIG_DIR is not set.
	DefaultConfigDirName = ".azure"

	// metricsTextfileName is the default Prometheus textfile written when
	// metrics are enabled.
	metricsTextfileName = "metrics.prom"
)

// Config holds all application configuration.
type Config struct {
	// ConfigDir is the per-user directory holding publish settings, the
	// derived management certificate and the local config file.
	ConfigDir string

	// LogLevel is the logging level (e.g., "debug", "info", "warn", "error").
	LogLevel string
	// LogFormat selects the slog handler ("text" or "json").
	LogFormat string

	// PFXPassword is the password used to open PKCS#12 management certificates.
	// Publish settings files ship certificates without a password.
	PFXPassword string

	// StrictCertificateRefresh aborts a subscription switch when the management
	// certificate cannot be converted, instead of logging and continuing.
	StrictCertificateRefresh bool

	// MetricsEnabled indicates whether business metrics are collected and
	// written to MetricsTextfile when the command finishes.
	MetricsEnabled bool
	// MetricsNamespace is the namespace for the application metrics.
	MetricsNamespace string
	// MetricsTextfile is the Prometheus textfile collector output path.
	MetricsTextfile string
}

// Load loads configuration from environment variables and .env file.
func Load() *Config {
	// Try to load .env file recursively
	loadDotEnv()

	configDir := env.GetString("AZURE_CONFIG_DIR", defaultConfigDir())

	return &Config{
		ConfigDir: configDir,

		// Logging
		LogLevel:  env.GetString("LOG_LEVEL", "warn"),
		LogFormat: env.GetString("LOG_FORMAT", "text"),

		// Certificates
		PFXPassword:              env.GetString("PFX_PASSWORD", ""),
		StrictCertificateRefresh: env.GetBool("STRICT_CERTIFICATE_REFRESH", false),

		// Metrics
		MetricsEnabled:   env.GetBool("METRICS_ENABLED", false),
		MetricsNamespace: env.GetString("METRICS_NAMESPACE", "azurecli"),
		MetricsTextfile: env.GetString(
			"METRICS_TEXTFILE",
			filepath.Join(configDir, metricsTextfileName),
		),
	}
}

// defaultConfigDir resolves $HOME/.azure, falling back to a relative .azure
// directory when the home directory cannot be determined.
func defaultConfigDir() string {
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return DefaultConfigDirName
	}
	return filepath.Join(home, DefaultConfigDirName)
}

// loadDotEnv searches for a .env file recursively from the current directory
// up to the root directory and loads it if found.
func loadDotEnv() {
	// Get current working directory
	cwd, err := os.Getwd()
	if err != nil {
		return
	}

	// Search for .env file recursively up the directory tree
	dir := cwd
	for {
		envPath := filepath.Join(dir, ".env")
		if _, err := os.Stat(envPath); err == nil {
			// .env file found, load it
			_ = godotenv.Load(envPath)
			return
		}

		// Move to parent directory
		parent := filepath.Dir(dir)
		if parent == dir {
			// Reached root directory
			break
		}
		dir = parent
	}
}
