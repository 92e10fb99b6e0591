package mldsabip39

import (
	"fmt"
	"log/slog"
)

const redactedValue = "[REDACTED]"

// KeyPair is an ML-DSA keypair addressed by its 32-byte scheme seed. The
// expanded signing key is regenerated from the seed on every Sign call and
// never stored. The seed is secret; the public key and level are not.
//
// A KeyPair owns its seed exclusively. Call Zeroize (or Close) when the
// keypair is no longer needed so the seed is wiped from memory instead of
// waiting for the garbage collector.
type KeyPair struct {
	level     Level
	seed      [SchemeSeedSize]byte
	publicKey []byte
	zeroized  bool
}

func newKeyPair(level Level, seed *[SchemeSeedSize]byte, publicKey []byte) *KeyPair {
	kp := &KeyPair{level: level, publicKey: publicKey}
	kp.seed = *seed
	return kp
}

// Level returns the security level this keypair was derived for.
func (kp *KeyPair) Level() Level {
	return kp.level
}

// Seed returns a copy of the 32-byte scheme seed. The seed alone is enough
// to recreate the signing key on any conforming implementation; treat the
// copy as secret and wipe it when done.
func (kp *KeyPair) Seed() []byte {
	return append([]byte(nil), kp.seed[:]...)
}

// PublicKey returns a copy of the packed public key. Its length always
// equals Level().PublicKeySize().
func (kp *KeyPair) PublicKey() []byte {
	return append([]byte(nil), kp.publicKey...)
}

// Sign regenerates the signing key from the stored seed and signs message.
func (kp *KeyPair) Sign(message []byte) (*Signature, error) {
	if kp.zeroized {
		return nil, fmt.Errorf("%w: keypair has been zeroized", ErrSigningFailed)
	}
	sig, err := backendSign(kp, message)
	observeOp("sign", kp.level, err == nil)
	return sig, err
}

// Verify checks sig over message against this keypair's public key. A
// structurally valid but wrong signature returns (false, nil); only
// malformed inputs produce an error.
func (kp *KeyPair) Verify(message []byte, sig *Signature) (bool, error) {
	ok, err := backendVerify(kp.publicKey, kp.level, message, sig)
	observeOp("verify", kp.level, err == nil)
	return ok, err
}

// DerivationPath re-renders the path string for this keypair's level. It
// is purely descriptive; it does not re-derive anything.
func (kp *KeyPair) DerivationPath(coin, account, index uint32) string {
	return DerivationPath(kp.level, coin, account, index)
}

// Zeroize overwrites the scheme seed with zeros. The keypair can still
// verify afterwards but refuses to sign.
func (kp *KeyPair) Zeroize() {
	zeroBytes(kp.seed[:])
	kp.zeroized = true
}

// Close zeroizes the keypair. It implements io.Closer so callers can use
// the usual defer pattern; it never fails.
func (kp *KeyPair) Close() error {
	kp.Zeroize()
	return nil
}

// String never includes the seed.
func (kp *KeyPair) String() string {
	return fmt.Sprintf("KeyPair{level: %s, public_key_len: %d, seed: %s}",
		kp.level, len(kp.publicKey), redactedValue)
}

// GoString mirrors String so %#v cannot leak the seed either.
func (kp *KeyPair) GoString() string {
	return kp.String()
}

// LogValue implements slog.LogValuer with the seed redacted.
func (kp *KeyPair) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("level", kp.level.String()),
		slog.Int("public_key_len", len(kp.publicKey)),
		slog.String("seed", redactedValue),
	)
}

func zeroBytes(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
