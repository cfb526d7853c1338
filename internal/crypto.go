package internal

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/base64"
	"encoding/hex"
	"fmt"
)

// NewEncryptionKey generates a random 256-bit key, hex encoded. Each
// profile gets its own key at creation time.
func NewEncryptionKey() (string, error) {
	key := make([]byte, 32)
	if _, err := rand.Read(key); err != nil {
		return "", &CryptoError{Op: "keygen", Err: err}
	}
	return hex.EncodeToString(key), nil
}

// Encrypt encrypts plaintext with the profile key using AES-256-GCM and
// returns a base64 string with the nonce prepended.
func Encrypt(plaintext, keyHex string) (string, error) {
	gcm, err := newGCM(keyHex)
	if err != nil {
		return "", &CryptoError{Op: "encrypt", Err: err}
	}

	nonce := make([]byte, gcm.NonceSize())
	if _, err := rand.Read(nonce); err != nil {
		return "", &CryptoError{Op: "encrypt", Err: err}
	}

	sealed := gcm.Seal(nonce, nonce, []byte(plaintext), nil)
	return base64.StdEncoding.EncodeToString(sealed), nil
}

// Decrypt reverses Encrypt. It fails if the key is wrong or the stored
// blob has been tampered with.
func Decrypt(encoded, keyHex string) (string, error) {
	gcm, err := newGCM(keyHex)
	if err != nil {
		return "", &CryptoError{Op: "decrypt", Err: err}
	}

	sealed, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return "", &CryptoError{Op: "decrypt", Err: fmt.Errorf("invalid base64: %w", err)}
	}

	if len(sealed) < gcm.NonceSize() {
		return "", &CryptoError{Op: "decrypt", Err: fmt.Errorf("ciphertext too short: %d bytes", len(sealed))}
	}

	nonce, ciphertext := sealed[:gcm.NonceSize()], sealed[gcm.NonceSize():]
	plaintext, err := gcm.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return "", &CryptoError{Op: "decrypt", Err: err}
	}

	return string(plaintext), nil
}

func newGCM(keyHex string) (cipher.AEAD, error) {
	key, err := hex.DecodeString(keyHex)
	if err != nil {
		return nil, fmt.Errorf("invalid key encoding: %w", err)
	}
	if len(key) != 32 {
		return nil, fmt.Errorf("key must be 32 bytes, got %d", len(key))
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, err
	}

	return cipher.NewGCM(block)
}
