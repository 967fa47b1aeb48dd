package store

import (
	"bytes"
	"encoding/base64"
	"encoding/pem"
	"fmt"

	"golang.org/x/crypto/pkcs12"

	"github.com/allisson/azurecli/internal/account/domain"
)

// certificateBlockType is the PEM block type of an X.509 certificate.
const certificateBlockType = "CERTIFICATE"

// ConvertCertificate converts PKCS#12 data to PEM text holding every
// certificate and private key in the container.
//
// The conversion is deterministic: the same input bytes always produce the
// same PEM bytes.
func ConvertCertificate(pfx []byte, password string) ([]byte, error) {
	if len(pfx) == 0 {
		return nil, fmt.Errorf("%w: empty pkcs12 data", domain.ErrCertificateConversion)
	}

	blocks, err := pkcs12.ToPEM(pfx, password)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrCertificateConversion, err)
	}
	if len(blocks) == 0 {
		return nil, fmt.Errorf("%w: pkcs12 data holds no certificates", domain.ErrCertificateConversion)
	}

	var buf bytes.Buffer
	for _, block := range blocks {
		if err := pem.Encode(&buf, block); err != nil {
			return nil, fmt.Errorf("%w: %v", domain.ErrCertificateConversion, err)
		}
	}
	return buf.Bytes(), nil
}

// DecodeSubscriptionCertificate returns the raw PKCS#12 bytes of the
// subscription's base64 management certificate.
func DecodeSubscriptionCertificate(sub *domain.Subscription) ([]byte, error) {
	if sub == nil || !sub.HasCertificate() {
		return nil, domain.ErrMissingCertificate
	}
	pfx, err := base64.StdEncoding.DecodeString(sub.ManagementCertificate)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid base64: %v", domain.ErrCertificateConversion, err)
	}
	return pfx, nil
}

// NormalizePEM re-encodes PEM input block by block, dropping any text outside
// the armor. The input must contain at least one certificate.
func NormalizePEM(raw []byte) ([]byte, error) {
	var (
		buf          bytes.Buffer
		certificates int
	)
	rest := raw
	for {
		var block *pem.Block
		block, rest = pem.Decode(rest)
		if block == nil {
			break
		}
		if block.Type == certificateBlockType {
			certificates++
		}
		if err := pem.Encode(&buf, block); err != nil {
			return nil, fmt.Errorf("%w: %v", domain.ErrCertificateConversion, err)
		}
	}
	if certificates == 0 {
		return nil, fmt.Errorf("%w: no certificate found in pem data", domain.ErrCertificateConversion)
	}
	return buf.Bytes(), nil
}
