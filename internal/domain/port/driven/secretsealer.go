package driven

import "errors"

// ErrEncryptionKeyNotSet is returned by SecretSealer operations when
// DEPLOYDROP_SECRET_KEY has not been configured.
var ErrEncryptionKeyNotSet = errors.New("encryption key not configured: set DEPLOYDROP_SECRET_KEY")

// SecretSealer defines the driven port for protecting credential values at rest.
// Sealed values are opaque strings safe to persist; Open reverses Seal.
type SecretSealer interface {
	// Seal encrypts plaintext. Returns ErrEncryptionKeyNotSet if the adapter
	// was constructed without a key.
	Seal(plaintext string) (string, error)

	// Open decrypts a value previously produced by Seal.
	// Returns ErrEncryptionKeyNotSet if the adapter was constructed without a key.
	Open(sealed string) (string, error)
}
