// Package keystore provides encrypted, portable backup of the BIP39
// mnemonic behind a set of ML-DSA keys. Only the mnemonic is ever
// persisted; signing keys are re-derived from it on demand.
package keystore

import (
	"crypto/rand"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/crypto/argon2"
	"golang.org/x/crypto/chacha20poly1305"
)

const (
	envelopeVersion     = 1
	saltSize            = 16
	filePrefix          = "MLDSAKS1\n"
	defaultArgonTime    = uint32(2)
	defaultArgonMemKB   = uint32(64 * 1024)
	defaultArgonThreads = uint8(1)
)

var (
	// ErrAuthFailed reports a wrong password or tampered ciphertext.
	ErrAuthFailed = errors.New("keystore authentication failed")
	// ErrInvalidEnvelope reports an envelope with unknown framing,
	// version or KDF parameters.
	ErrInvalidEnvelope = errors.New("keystore envelope is invalid")
)

// Envelope is the at-rest form of an encrypted mnemonic: argon2id key
// derivation parameters plus an XChaCha20-Poly1305 ciphertext. The JSON
// encoding is stable and may be stored or transferred anywhere.
type Envelope struct {
	Version     uint32 `json:"version"`
	KDF         string `json:"kdf"`
	KDFTime     uint32 `json:"kdf_time"`
	KDFMemoryKB uint32 `json:"kdf_memory_kb"`
	KDFThreads  uint8  `json:"kdf_threads"`
	Salt        []byte `json:"salt"`
	Nonce       []byte `json:"nonce"`
	Ciphertext  []byte `json:"ciphertext"`
}

// EncryptMnemonic seals a mnemonic under a password-derived key.
func EncryptMnemonic(mnemonic, password []byte) (*Envelope, error) {
	salt := make([]byte, saltSize)
	if _, err := rand.Read(salt); err != nil {
		return nil, err
	}
	key := argon2.IDKey(password, salt, defaultArgonTime, defaultArgonMemKB, defaultArgonThreads, chacha20poly1305.KeySize)
	defer zeroBytes(key)

	aead, err := chacha20poly1305.NewX(key)
	if err != nil {
		return nil, err
	}
	nonce := make([]byte, chacha20poly1305.NonceSizeX)
	if _, err := rand.Read(nonce); err != nil {
		return nil, err
	}

	return &Envelope{
		Version:     envelopeVersion,
		KDF:         "argon2id",
		KDFTime:     defaultArgonTime,
		KDFMemoryKB: defaultArgonMemKB,
		KDFThreads:  defaultArgonThreads,
		Salt:        salt,
		Nonce:       nonce,
		Ciphertext:  aead.Seal(nil, nonce, mnemonic, nil),
	}, nil
}

// DecryptMnemonic opens an envelope. Wrong passwords and tampered
// ciphertexts are indistinguishable and both return ErrAuthFailed.
func DecryptMnemonic(env *Envelope, password []byte) ([]byte, error) {
	if env == nil || env.Version != envelopeVersion || env.KDF != "argon2id" {
		return nil, ErrInvalidEnvelope
	}
	key := argon2.IDKey(password, env.Salt, env.KDFTime, env.KDFMemoryKB, env.KDFThreads, chacha20poly1305.KeySize)
	defer zeroBytes(key)

	aead, err := chacha20poly1305.NewX(key)
	if err != nil {
		return nil, err
	}
	plaintext, err := aead.Open(nil, env.Nonce, env.Ciphertext, nil)
	if err != nil {
		return nil, ErrAuthFailed
	}
	return plaintext, nil
}

// WriteEnvelopeFile persists an envelope as a prefixed JSON file with
// owner-only permissions.
func WriteEnvelopeFile(path string, env *Envelope) error {
	raw, err := json.Marshal(env)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return err
	}
	return os.WriteFile(path, append([]byte(filePrefix), raw...), 0o600)
}

// ReadEnvelopeFile loads an envelope written by WriteEnvelopeFile.
func ReadEnvelopeFile(path string) (*Envelope, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if !strings.HasPrefix(string(raw), filePrefix) {
		return nil, fmt.Errorf("%w: missing file prefix", ErrInvalidEnvelope)
	}
	var env Envelope
	if err := json.Unmarshal(raw[len(filePrefix):], &env); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidEnvelope, err)
	}
	return &env, nil
}

func zeroBytes(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
