package domain

import (
	"github.com/allisson/azurecli/internal/errors"
)

// Account error definitions.
//
// Each error wraps one of the standard errors from internal/errors so the
// command layer can classify failures without depending on this package.
var (
	// ErrCredentialsNotFound indicates the publish settings file does not exist.
	//
	// This is the expected state before "account import" has run. Callers
	// treat it as "no document" rather than a fatal error.
	ErrCredentialsNotFound = errors.Wrap(errors.ErrNotFound, "publish settings file not found")

	// ErrNoCredentials is the user-facing variant of ErrCredentialsNotFound
	// returned by listing operations.
	ErrNoCredentials = errors.Wrap(
		errors.ErrNotFound,
		`no publish settings file found, please use "azurecli account import" first`,
	)

	// ErrMalformedCredentials indicates the file is neither a publish settings
	// document nor a certificate container.
	ErrMalformedCredentials = errors.Wrap(errors.ErrInvalidInput, "malformed credentials file")

	// ErrCertificateContainer indicates the file is not publish settings XML
	// but looks like a PEM or PKCS#12 certificate container.
	ErrCertificateContainer = errors.Wrap(errors.ErrInvalidInput, "file is a certificate container")

	// ErrInvalidPublishSettings indicates the XML parsed but lacks both a
	// management certificate and schema version 2.0, or carries invalid
	// subscription entries.
	ErrInvalidPublishSettings = errors.Wrap(
		errors.ErrInvalidInput,
		`invalid publish settings file, use "azurecli account download" to download publishing credentials`,
	)

	// ErrUnknownSubscription indicates a selector matched no subscription id or name.
	ErrUnknownSubscription = errors.Wrap(errors.ErrNotFound, "unknown subscription")

	// ErrInvalidSubscription indicates an id passed to SetCurrent is not imported.
	ErrInvalidSubscription = errors.Wrap(errors.ErrInvalidInput, "invalid subscription")

	// ErrDuplicateSubscription indicates two subscriptions share an id, ignoring case.
	ErrDuplicateSubscription = errors.Wrap(errors.ErrConflict, "duplicate subscription id")

	// ErrInvalidEndpoint indicates a malformed service management URL.
	ErrInvalidEndpoint = errors.Wrap(errors.ErrInvalidInput, "invalid service management endpoint")

	// ErrCertificateConversion indicates a PKCS#12 payload could not be converted to PEM.
	ErrCertificateConversion = errors.Wrap(errors.ErrInvalidInput, "certificate conversion failed")

	// ErrMissingCertificate indicates a subscription carries no management certificate.
	ErrMissingCertificate = errors.Wrap(errors.ErrInvalidInput, "subscription has no management certificate")

	// ErrCorruptConfig indicates the local config file exists but cannot be decoded.
	ErrCorruptConfig = errors.Wrap(errors.ErrInvalidInput, "corrupt local config file")

	// ErrSubscriptionRequired indicates a command needs a subscription and none
	// could be selected.
	ErrSubscriptionRequired = errors.Wrap(errors.ErrInvalidInput, "subscription is required")
)
