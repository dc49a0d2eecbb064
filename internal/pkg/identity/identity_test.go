package identity

import (
	"encoding/base64"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// 32 bytes, hex-encoded.
const testKey = "000102030405060708090a0b0c0d0e0f101112131415161718191a1b1c1d1e1f"

func newTestEncryptor(t *testing.T) *Encryptor {
	t.Helper()
	e, err := NewEncryptor(testKey)
	require.NoError(t, err)
	return e
}

func TestNewEncryptor_MissingKey(t *testing.T) {
	_, err := NewEncryptor("")
	require.Error(t, err)
}

func TestNewEncryptor_NonHexKey(t *testing.T) {
	_, err := NewEncryptor("not hex at all")
	require.Error(t, err)
}

func TestNewEncryptor_WrongKeyLength(t *testing.T) {
	_, err := NewEncryptor("00010203") // 4 bytes
	require.Error(t, err)
	assert.Contains(t, err.Error(), "32 bytes")
}

func TestEncrypt_Deterministic(t *testing.T) {
	e := newTestEncryptor(t)
	for _, username := range []string{"jdoe", "a", "averylongusernamethatspansblocks", "jdoe3"} {
		first := e.Encrypt(username)
		second := e.Encrypt(username)
		assert.Equal(t, first, second, "username %q", username)
	}
}

func TestEncrypt_DeterministicAcrossInstances(t *testing.T) {
	a := newTestEncryptor(t)
	b := newTestEncryptor(t)
	assert.Equal(t, a.Encrypt("jdoe"), b.Encrypt("jdoe"))
}

func TestEncrypt_DistinctUsernamesDistinctIDs(t *testing.T) {
	e := newTestEncryptor(t)
	assert.NotEqual(t, e.Encrypt("jdoe"), e.Encrypt("jdoe2"))
}

func TestEncrypt_OutputIsOpaque(t *testing.T) {
	e := newTestEncryptor(t)
	username := "jdoe"
	out := e.Encrypt(username)

	// Valid base64 over whole AES blocks, and no plaintext leakage.
	raw, err := base64.StdEncoding.DecodeString(out)
	require.NoError(t, err)
	assert.Equal(t, 0, len(raw)%16)
	assert.NotEqual(t, username, out)
	assert.False(t, strings.Contains(out, username))
	assert.False(t, strings.Contains(string(raw), username))
}

func TestEncrypt_DifferentKeyDifferentIDs(t *testing.T) {
	e := newTestEncryptor(t)
	other, err := NewEncryptor(strings.Repeat("ef", 32))
	require.NoError(t, err)
	assert.NotEqual(t, e.Encrypt("jdoe"), other.Encrypt("jdoe"))
}
