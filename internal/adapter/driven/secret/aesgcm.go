// Package secret implements the SecretSealer port with AES-256-GCM.
package secret

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"io"

	"github.com/ericfisherdev/deploydrop/internal/domain/port/driven"
)

// KeySize is the required key length in bytes for AES-256.
const KeySize = 32

// Compile-time interface satisfaction check.
var _ driven.SecretSealer = (*AESGCMSealer)(nil)

// AESGCMSealer seals values with AES-256-GCM. The output is base64 of
// nonce (12 bytes) || ciphertext || tag.
type AESGCMSealer struct {
	aead cipher.AEAD // nil when no key is configured.
}

// NewAESGCMSealer creates a sealer from a 32-byte key. A nil key yields a
// sealer whose operations all return driven.ErrEncryptionKeyNotSet.
func NewAESGCMSealer(key []byte) (*AESGCMSealer, error) {
	if key == nil {
		return &AESGCMSealer{}, nil
	}
	if len(key) != KeySize {
		return nil, fmt.Errorf("secret key must be %d bytes, got %d", KeySize, len(key))
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("aes.NewCipher: %w", err)
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("cipher.NewGCM: %w", err)
	}

	return &AESGCMSealer{aead: gcm}, nil
}

// Seal encrypts plaintext with a fresh random nonce.
func (s *AESGCMSealer) Seal(plaintext string) (string, error) {
	if s.aead == nil {
		return "", driven.ErrEncryptionKeyNotSet
	}

	nonce := make([]byte, s.aead.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return "", fmt.Errorf("rand nonce: %w", err)
	}

	// Seal appends the ciphertext to nonce, producing: nonce || ciphertext || tag.
	ciphertext := s.aead.Seal(nonce, nonce, []byte(plaintext), nil)
	return base64.StdEncoding.EncodeToString(ciphertext), nil
}

// Open decrypts a base64-encoded value produced by Seal.
func (s *AESGCMSealer) Open(sealed string) (string, error) {
	if s.aead == nil {
		return "", driven.ErrEncryptionKeyNotSet
	}

	data, err := base64.StdEncoding.DecodeString(sealed)
	if err != nil {
		return "", fmt.Errorf("base64 decode: %w", err)
	}

	nonceSize := s.aead.NonceSize()
	if len(data) < nonceSize {
		return "", errors.New("ciphertext too short")
	}

	nonce, ciphertext := data[:nonceSize], data[nonceSize:]
	plaintext, err := s.aead.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return "", fmt.Errorf("gcm.Open: %w", err)
	}

	return string(plaintext), nil
}
