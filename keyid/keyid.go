// Package keyid builds display-safe fingerprints for ML-DSA public keys.
// A key ID commits to both the level and the public key, so the same key
// material at two levels never shares an ID. IDs contain no secret
// material and are safe to log or embed in contact cards.
package keyid

import (
	"errors"
	"fmt"

	"github.com/mr-tron/base58/base58"
	"golang.org/x/crypto/blake2b"

	mldsabip39 "github.com/silica-network/go-mldsa-bip39"
)

// Prefix marks the fingerprint format version.
const Prefix = "mldsa1"

var ErrInvalidPublicKey = errors.New("invalid public key")

// Build returns the fingerprint for a public key at the given level:
// Prefix + base58(blake2b-256(domainSeparator || publicKey)).
func Build(level mldsabip39.Level, publicKey []byte) (string, error) {
	if len(publicKey) != level.PublicKeySize() {
		return "", fmt.Errorf("%w: expected %d bytes for %s, got %d",
			ErrInvalidPublicKey, level.PublicKeySize(), level, len(publicKey))
	}
	sep := level.DomainSeparator()
	msg := make([]byte, 0, len(sep)+len(publicKey))
	msg = append(msg, sep...)
	msg = append(msg, publicKey...)
	h := blake2b.Sum256(msg)
	return Prefix + base58.Encode(h[:]), nil
}

// Verify reports whether id is the fingerprint of publicKey at level.
func Verify(id string, level mldsabip39.Level, publicKey []byte) (bool, error) {
	expected, err := Build(level, publicKey)
	if err != nil {
		return false, err
	}
	return id == expected, nil
}

// FromKeyPair builds the fingerprint of a keypair's public key.
func FromKeyPair(kp *mldsabip39.KeyPair) (string, error) {
	return Build(kp.Level(), kp.PublicKey())
}
