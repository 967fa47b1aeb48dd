package store

import (
	"encoding/base64"
	"encoding/pem"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/allisson/azurecli/internal/account/domain"
	"github.com/allisson/azurecli/internal/testutil"
)

func TestConvertCertificate(t *testing.T) {
	t.Run("produces certificate and key blocks", func(t *testing.T) {
		pfx := testutil.NewPFX(t, "")

		pemData, err := ConvertCertificate(pfx, "")
		require.NoError(t, err)

		var types []string
		rest := pemData
		for {
			var block *pem.Block
			block, rest = pem.Decode(rest)
			if block == nil {
				break
			}
			types = append(types, block.Type)
		}
		assert.Contains(t, types, "CERTIFICATE")
		assert.Contains(t, types, "PRIVATE KEY")
		assert.Empty(t, rest)
	})

	t.Run("is deterministic", func(t *testing.T) {
		pfx := testutil.NewPFX(t, "")

		first, err := ConvertCertificate(pfx, "")
		require.NoError(t, err)
		for i := 0; i < 3; i++ {
			again, err := ConvertCertificate(pfx, "")
			require.NoError(t, err)
			assert.Equal(t, first, again)
		}
	})

	t.Run("password protected container", func(t *testing.T) {
		pfx := testutil.NewPFX(t, "s3cret")

		_, err := ConvertCertificate(pfx, "s3cret")
		require.NoError(t, err)

		_, err = ConvertCertificate(pfx, "wrong")
		assert.ErrorIs(t, err, domain.ErrCertificateConversion)
	})

	t.Run("malformed input", func(t *testing.T) {
		for _, input := range [][]byte{nil, []byte("not a pfx"), {0x30, 0x03, 0x02, 0x01, 0x03}} {
			_, err := ConvertCertificate(input, "")
			assert.ErrorIs(t, err, domain.ErrCertificateConversion)
		}
	})
}

func TestDecodeSubscriptionCertificate(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		sub := &domain.Subscription{ID: "A", ManagementCertificate: base64.StdEncoding.EncodeToString([]byte("pfx"))}
		pfx, err := DecodeSubscriptionCertificate(sub)
		require.NoError(t, err)
		assert.Equal(t, []byte("pfx"), pfx)
	})

	t.Run("missing certificate", func(t *testing.T) {
		_, err := DecodeSubscriptionCertificate(&domain.Subscription{ID: "A"})
		assert.ErrorIs(t, err, domain.ErrMissingCertificate)

		_, err = DecodeSubscriptionCertificate(nil)
		assert.ErrorIs(t, err, domain.ErrMissingCertificate)
	})

	t.Run("invalid base64", func(t *testing.T) {
		_, err := DecodeSubscriptionCertificate(&domain.Subscription{ID: "A", ManagementCertificate: "%%%"})
		assert.ErrorIs(t, err, domain.ErrCertificateConversion)
	})
}

func TestNormalizePEM(t *testing.T) {
	pemData, err := ConvertCertificate(testutil.NewPFX(t, ""), "")
	require.NoError(t, err)

	t.Run("drops surrounding text", func(t *testing.T) {
		input := append([]byte("Bag Attributes\n  friendlyName: azure\n"), pemData...)
		input = append(input, []byte("trailing garbage\n")...)

		normalized, err := NormalizePEM(input)
		require.NoError(t, err)
		assert.Equal(t, pemData, normalized)
	})

	t.Run("requires a certificate", func(t *testing.T) {
		keyOnly := pem.EncodeToMemory(&pem.Block{Type: "PRIVATE KEY", Bytes: []byte{1, 2, 3}})
		_, err := NormalizePEM(keyOnly)
		assert.ErrorIs(t, err, domain.ErrCertificateConversion)

		_, err = NormalizePEM([]byte("nothing here"))
		assert.ErrorIs(t, err, domain.ErrCertificateConversion)
	})
}
