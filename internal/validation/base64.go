package validation

import (
	"encoding/base64"

	validation "github.com/jellydator/validation"
)

// Base64Certificate accepts the ManagementCertificate attribute of a publish
// settings file: standard base64 text holding a PKCS#12 payload. An empty
// value passes, since schema 2.0 subscriptions may carry no certificate.
var Base64Certificate = validation.By(func(value interface{}) error {
	s, ok := value.(string)
	if !ok {
		return validation.NewError("validation_certificate_type", "management certificate must be a string")
	}
	if s == "" {
		return nil
	}
	if _, err := base64.StdEncoding.DecodeString(s); err != nil {
		return validation.NewError(
			"validation_certificate_base64",
			"management certificate must be standard base64 encoded",
		)
	}
	return nil
})
