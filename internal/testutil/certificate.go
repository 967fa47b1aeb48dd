// Package testutil provides fixtures for account tests: self-signed
// management certificates packed as PKCS#12 and publish settings documents.
//
// Usage:
//
//	pfx := testutil.NewPFX(t, "")
//	xml := testutil.PublishSettingsXML(testutil.PublishProfile{
//	    SchemaVersion: "2.0",
//	    Subscriptions: []testutil.SubscriptionEntry{{ID: "A", Name: "Sub1", Certificate: pfx}},
//	})
package testutil

import (
	"crypto/ecdsa"
	"crypto/elliptic"
	"crypto/rand"
	"crypto/x509"
	"crypto/x509/pkix"
	"encoding/base64"
	"math/big"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	gopkcs12 "software.sslmate.com/src/go-pkcs12"
)

// NewPFX returns a PKCS#12 container holding a fresh self-signed certificate
// and its private key, encrypted with the legacy algorithms used by publish
// settings files.
func NewPFX(t *testing.T, password string) []byte {
	t.Helper()

	key, err := ecdsa.GenerateKey(elliptic.P256(), rand.Reader)
	require.NoError(t, err, "failed to generate key")

	serial, err := rand.Int(rand.Reader, big.NewInt(1<<62))
	require.NoError(t, err, "failed to generate serial")

	template := &x509.Certificate{
		SerialNumber: serial,
		Subject:      pkix.Name{CommonName: "Windows Azure Tools"},
		NotBefore:    time.Now().Add(-time.Hour),
		NotAfter:     time.Now().Add(24 * time.Hour),
		KeyUsage:     x509.KeyUsageDigitalSignature,
		ExtKeyUsage:  []x509.ExtKeyUsage{x509.ExtKeyUsageClientAuth},
	}
	der, err := x509.CreateCertificate(rand.Reader, template, template, &key.PublicKey, key)
	require.NoError(t, err, "failed to create certificate")

	cert, err := x509.ParseCertificate(der)
	require.NoError(t, err, "failed to parse certificate")

	pfx, err := gopkcs12.LegacyDES.Encode(key, cert, nil, password)
	require.NoError(t, err, "failed to encode pkcs12")

	return pfx
}

// NewPFXBase64 is NewPFX encoded the way publish settings embed certificates.
func NewPFXBase64(t *testing.T, password string) string {
	t.Helper()
	return base64.StdEncoding.EncodeToString(NewPFX(t, password))
}
