// Package store implements the credential store: the publish settings file,
// the derived management certificate and the local config file kept in the
// per-user configuration directory.
//
// Every write goes through a temporary file and a rename, and read-modify-write
// sequences are expected to run under Lock so that concurrent invocations in
// other processes cannot interleave.
package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/allisson/azurecli/internal/account/domain"
)

// File names inside the configuration directory.
const (
	PublishSettingsFileName = "publishSettings.xml"
	CertificateFileName     = "managementCertificate.pem"
	ConfigFileName          = "config.json"
	lockFileName            = ".lock"
)

// Sensitive files are never readable by group or others.
const (
	privateFileMode = 0o600
	privateDirMode  = 0o700
)

// Store owns the on-disk account state in a single configuration directory.
type Store struct {
	dir         string
	pfxPassword string
	logger      *slog.Logger
}

// NewStore creates a Store rooted at dir. The directory is created lazily on
// the first write.
func NewStore(dir, pfxPassword string, logger *slog.Logger) *Store {
	return &Store{
		dir:         dir,
		pfxPassword: pfxPassword,
		logger:      logger,
	}
}

// Dir returns the configuration directory.
func (s *Store) Dir() string {
	return s.dir
}

// Locate returns the publish settings path, or override when it is not empty.
// It does not check that the file exists.
func (s *Store) Locate(override string) string {
	if override != "" {
		return override
	}
	return filepath.Join(s.dir, PublishSettingsFileName)
}

// CertificatePath returns the path of the derived management certificate.
func (s *Store) CertificatePath() string {
	return filepath.Join(s.dir, CertificateFileName)
}

// ConfigPath returns the path of the local config file.
func (s *Store) ConfigPath() string {
	return filepath.Join(s.dir, ConfigFileName)
}

// Read returns the content of path. A missing file yields ErrCredentialsNotFound.
func (s *Store) Read(path string) ([]byte, error) {
	s.logger.Debug("reading publish settings", slog.String("path", path))

	raw, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", domain.ErrCredentialsNotFound, path)
		}
		return nil, ioError("reading", path, err)
	}
	return raw, nil
}

// Parse decodes raw publish settings. See the package level Parse.
func (s *Store) Parse(raw []byte) (*domain.PublishSettings, error) {
	return Parse(raw)
}

// Validate checks document invariants. See the package level Validate.
func (s *Store) Validate(settings *domain.PublishSettings) error {
	return Validate(settings)
}

// Load reads, parses and validates the publish settings at path.
func (s *Store) Load(path string) (*domain.PublishSettings, error) {
	raw, err := s.Read(path)
	if err != nil {
		return nil, err
	}

	settings, err := Parse(raw)
	if err != nil {
		return nil, err
	}

	if err := Validate(settings); err != nil {
		return nil, err
	}

	s.logger.Debug("publish settings loaded",
		slog.String("path", path),
		slog.String("schema_version", settings.SchemaVersion),
		slog.Int("subscriptions", len(settings.Subscriptions)),
	)
	return settings, nil
}

// ImportPublishSettings stores raw as the current publish settings file.
// Callers validate raw before importing it.
func (s *Store) ImportPublishSettings(raw []byte) error {
	return writeFileAtomic(s.Locate(""), raw, privateFileMode)
}

// RemovePublishSettings deletes the imported publish settings file. A missing
// file is not an error.
func (s *Store) RemovePublishSettings() error {
	path := s.Locate("")
	if err := os.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return ioError("removing", path, err)
	}
	return nil
}

// ConvertCertificate converts PKCS#12 data to PEM using the configured password.
func (s *Store) ConvertCertificate(pfx []byte) ([]byte, error) {
	return ConvertCertificate(pfx, s.pfxPassword)
}

// WriteCertificate atomically writes PEM data to path with owner-only permissions.
func (s *Store) WriteCertificate(path string, pemData []byte) error {
	if err := writeFileAtomic(path, pemData, privateFileMode); err != nil {
		return err
	}
	s.logger.Debug("certificate written", slog.String("path", path))
	return nil
}

// ReadConfig returns the local config. A missing file yields an empty config.
func (s *Store) ReadConfig() (*domain.LocalConfig, error) {
	path := s.ConfigPath()
	raw, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return &domain.LocalConfig{}, nil
		}
		return nil, ioError("reading", path, err)
	}

	var cfg domain.LocalConfig
	if err := json.Unmarshal(raw, &cfg); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", domain.ErrCorruptConfig, path, err)
	}
	return &cfg, nil
}

// WriteConfig atomically replaces the local config file.
func (s *Store) WriteConfig(cfg *domain.LocalConfig) error {
	if cfg == nil {
		cfg = &domain.LocalConfig{}
	}
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode local config: %w", err)
	}
	data = append(data, '\n')

	return writeFileAtomic(s.ConfigPath(), data, privateFileMode)
}

// Lock takes an exclusive advisory lock on the configuration directory and
// returns the function that releases it.
func (s *Store) Lock() (func() error, error) {
	if err := os.MkdirAll(s.dir, privateDirMode); err != nil {
		return nil, ioError("creating directory", s.dir, err)
	}

	path := filepath.Join(s.dir, lockFileName)
	f, err := os.OpenFile(path, os.O_CREATE|os.O_RDWR, privateFileMode)
	if err != nil {
		return nil, ioError("opening lock file", path, err)
	}
	if err := lockFile(f); err != nil {
		_ = f.Close()
		return nil, ioError("locking", path, err)
	}

	return func() error {
		unlockErr := unlockFile(f)
		closeErr := f.Close()
		if unlockErr != nil {
			return ioError("unlocking", path, unlockErr)
		}
		if closeErr != nil {
			return ioError("closing lock file", path, closeErr)
		}
		return nil
	}, nil
}

// Clear removes the publish settings, the derived certificate and the local
// config. Missing files are ignored.
func (s *Store) Clear() error {
	var errs []error
	for _, path := range []string{s.Locate(""), s.CertificatePath(), s.ConfigPath()} {
		if err := os.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
			errs = append(errs, ioError("removing", path, err))
			continue
		}
		s.logger.Debug("removed account file", slog.String("path", path))
	}
	return errors.Join(errs...)
}
