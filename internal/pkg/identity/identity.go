package identity

import (
	"bytes"
	"crypto/aes"
	"crypto/cipher"
	"encoding/base64"
	"encoding/hex"
	"errors"
	"fmt"
)

// iv is fixed on purpose: the same username must always map to the same
// author ID so a student's reviews can be correlated (e.g. for moderation)
// without ever storing the username. The trade-off is that equal plaintexts
// produce equal ciphertexts; key rotation would change every author ID.
const iv = "5183666c72eec9e4"

// Encryptor deterministically maps a plaintext institutional username to an
// opaque author ID (AES-256-CBC, base64). Constructed once at startup;
// a missing or malformed key is a fatal configuration error, not a
// per-request condition.
type Encryptor struct {
	block cipher.Block
}

// NewEncryptor builds an Encryptor from a hex-encoded 32-byte key.
func NewEncryptor(hexKey string) (*Encryptor, error) {
	if hexKey == "" {
		return nil, errors.New("encryption key not set")
	}
	key, err := hex.DecodeString(hexKey)
	if err != nil {
		return nil, fmt.Errorf("encryption key is not valid hex: %w", err)
	}
	if len(key) != 32 {
		return nil, fmt.Errorf("encryption key must be 32 bytes, got %d", len(key))
	}
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, err
	}
	return &Encryptor{block: block}, nil
}

// Encrypt returns the author ID for the given username. Same input, same
// output, for the lifetime of the key.
func (e *Encryptor) Encrypt(username string) string {
	padded := pad([]byte(username), aes.BlockSize)
	out := make([]byte, len(padded))
	cipher.NewCBCEncrypter(e.block, []byte(iv)).CryptBlocks(out, padded)
	return base64.StdEncoding.EncodeToString(out)
}

// pad applies PKCS#7 padding up to the block size.
func pad(b []byte, size int) []byte {
	n := size - len(b)%size
	return append(b, bytes.Repeat([]byte{byte(n)}, n)...)
}
