package mldsabip39

import (
	"fmt"

	"golang.org/x/crypto/sha3"
)

// SilicaCoinType is the coin type used by DeriveKeyPair when no explicit
// coin is given.
const SilicaCoinType uint32 = 1337

// CoarseSeedSize is the required length of the BIP39 seed passed to the
// derivation functions.
const CoarseSeedSize = 64

// DerivationPath renders the BIP44-style path for a key slot:
// m/{purpose}'/{coin}'/{account}'/0/{index}. The purpose field is implied
// by the level. The format is stable and part of the interoperability
// contract.
func DerivationPath(level Level, coin, account, index uint32) string {
	return fmt.Sprintf("m/%d'/%d'/%d'/0/%d", level.Purpose(), coin, account, index)
}

// DeriveKeyPair derives the keypair at (account, index) for the given
// level, using the default Silica coin type.
func DeriveKeyPair(coarseSeed []byte, account, index uint32, level Level) (*KeyPair, error) {
	return DeriveKeyPairWithCoin(coarseSeed, SilicaCoinType, account, index, level)
}

// DeriveKeyPairWithCoin derives the keypair at (coin, account, index) for
// the given level. The same inputs always produce the same keypair.
func DeriveKeyPairWithCoin(coarseSeed []byte, coin, account, index uint32, level Level) (*KeyPair, error) {
	if len(coarseSeed) != CoarseSeedSize {
		return nil, fmt.Errorf("%w: expected %d bytes, got %d", ErrInvalidSeedLength, CoarseSeedSize, len(coarseSeed))
	}
	if !level.valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedLevel, int(level))
	}

	path := DerivationPath(level, coin, account, index)
	schemeSeed := deriveSchemeSeed(coarseSeed, path, level)
	defer zeroBytes(schemeSeed[:])

	kp, err := generateKeyPair(level, &schemeSeed)
	observeOp("keygen", level, err == nil)
	return kp, err
}

// deriveSchemeSeed extracts the 32-byte ML-DSA seed for one (level, path)
// slot. SHAKE256 absorbs, in strict order, the level's domain separator,
// the 64-byte coarse seed and the UTF-8 path string. The domain separator
// keeps levels from ever colliding; the path keeps key slots independent.
func deriveSchemeSeed(coarseSeed []byte, path string, level Level) [SchemeSeedSize]byte {
	x := sha3.NewShake256()
	_, _ = x.Write(level.DomainSeparator())
	_, _ = x.Write(coarseSeed)
	_, _ = x.Write([]byte(path))

	var seed [SchemeSeedSize]byte
	_, _ = x.Read(seed[:])
	return seed
}
