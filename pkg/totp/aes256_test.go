package totp_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SambridhiGhimire/Dryvana-Ecom-Store/pkg/totp"
)

func TestEncryptDecryptSecret(t *testing.T) {
	t.Parallel()

	encoded, err := totp.GenerateEncryptionKey()
	require.NoError(t, err)

	key, err := totp.DecodeEncryptionKey(encoded)
	require.NoError(t, err)
	require.Len(t, key, totp.KeySize)

	secret, err := totp.GenerateSecret()
	require.NoError(t, err)

	sealed, err := totp.EncryptSecret(secret, key)
	require.NoError(t, err)
	assert.NotEqual(t, secret, sealed)

	plain, err := totp.DecryptSecret(sealed, key)
	require.NoError(t, err)
	assert.Equal(t, secret, plain)
}

func TestEncryptSecret_KeyLength(t *testing.T) {
	t.Parallel()

	_, err := totp.EncryptSecret("whatever", []byte("short"))
	assert.ErrorIs(t, err, totp.ErrInvalidEncryptionKeyLength)

	_, err = totp.DecryptSecret("whatever", []byte("short"))
	assert.ErrorIs(t, err, totp.ErrInvalidEncryptionKeyLength)
}

func TestDecryptSecret_Tampered(t *testing.T) {
	t.Parallel()

	encoded, err := totp.GenerateEncryptionKey()
	require.NoError(t, err)
	key, err := totp.DecodeEncryptionKey(encoded)
	require.NoError(t, err)

	sealed, err := totp.EncryptSecret("JBSWY3DPEHPK3PXP", key)
	require.NoError(t, err)

	otherEncoded, err := totp.GenerateEncryptionKey()
	require.NoError(t, err)
	otherKey, err := totp.DecodeEncryptionKey(otherEncoded)
	require.NoError(t, err)

	_, err = totp.DecryptSecret(sealed, otherKey)
	assert.ErrorIs(t, err, totp.ErrFailedToDecryptSecret)

	_, err = totp.DecryptSecret("AAAA", key)
	assert.ErrorIs(t, err, totp.ErrFailedToDecryptSecret)
}

func TestDecodeEncryptionKey_Invalid(t *testing.T) {
	t.Parallel()

	_, err := totp.DecodeEncryptionKey("not base64 !!!")
	assert.Error(t, err)

	_, err = totp.DecodeEncryptionKey("c2hvcnQ=") // "short"
	assert.ErrorIs(t, err, totp.ErrInvalidEncryptionKeyLength)
}
