package shopee

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSigner(t *testing.T) {
	t.Run("rejects missing partner id", func(t *testing.T) {
		_, err := NewSigner(0, "key")
		assert.Error(t, err)
	})

	t.Run("rejects missing partner key", func(t *testing.T) {
		_, err := NewSigner(2007001, "")
		assert.Error(t, err)
	})
}

func TestSignBasic(t *testing.T) {
	signer, err := NewSigner(2007001, "test-partner-key")
	require.NoError(t, err)

	// Known vector: HMAC-SHA256("test-partner-key", "2007001/api/v2/shop/auth_partner1700000000")
	got := signer.SignBasic("/api/v2/shop/auth_partner", 1700000000)
	assert.Equal(t, "ea5ec6c7adcabf5006e694683b3581e16d4743f3cc8b2010f179ba26fd30124c", got)
}

func TestSignFull(t *testing.T) {
	signer, err := NewSigner(2007001, "test-partner-key")
	require.NoError(t, err)

	// Known vector over partner_id + path + timestamp + access_token + shop_id
	got := signer.SignFull("/api/v2/ams/get_conversion_report", 1700000000, "token-abc", 123456)
	assert.Equal(t, "3743b55cbffbc94a7230c210c0968dda65630b6b13dd3b483a1560b0f1a90e18", got)
}

func TestSignIsDeterministic(t *testing.T) {
	signer, err := NewSigner(2007001, "test-partner-key")
	require.NoError(t, err)

	a := signer.SignFull("/api/v2/ams/get_conversion_report", 1700000000, "token-abc", 123456)
	b := signer.SignFull("/api/v2/ams/get_conversion_report", 1700000000, "token-abc", 123456)
	assert.Equal(t, a, b)
}

func TestSignAvalanche(t *testing.T) {
	signer, err := NewSigner(2007001, "test-partner-key")
	require.NoError(t, err)

	base := signer.SignFull("/api/v2/ams/get_conversion_report", 1700000000, "token-abc", 123456)

	variants := []string{
		signer.SignFull("/api/v2/ams/get_conversion_reporu", 1700000000, "token-abc", 123456),
		signer.SignFull("/api/v2/ams/get_conversion_report", 1700000001, "token-abc", 123456),
		signer.SignFull("/api/v2/ams/get_conversion_report", 1700000000, "token-abd", 123456),
		signer.SignFull("/api/v2/ams/get_conversion_report", 1700000000, "token-abc", 123457),
	}
	for _, v := range variants {
		assert.NotEqual(t, base, v)
	}

	other, err := NewSigner(2007001, "other-partner-key")
	require.NoError(t, err)
	assert.NotEqual(t, base, other.SignFull("/api/v2/ams/get_conversion_report", 1700000000, "token-abc", 123456))
}
