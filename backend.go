package mldsabip39

import (
	"fmt"

	"github.com/cloudflare/circl/sign/mldsa/mldsa44"
	"github.com/cloudflare/circl/sign/mldsa/mldsa65"
	"github.com/cloudflare/circl/sign/mldsa/mldsa87"
)

// The circl ML-DSA packages are the opaque signature primitive. Keys are
// rebuilt from the 32-byte seed on every use; expanded private keys never
// outlive a single call.

func generateKeyPair(level Level, seed *[SchemeSeedSize]byte) (*KeyPair, error) {
	var publicKey []byte
	switch level {
	case LevelMLDSA44:
		pk, _ := mldsa44.NewKeyFromSeed(seed)
		var buf [mldsa44.PublicKeySize]byte
		pk.Pack(&buf)
		publicKey = buf[:]
	case LevelMLDSA65:
		pk, _ := mldsa65.NewKeyFromSeed(seed)
		var buf [mldsa65.PublicKeySize]byte
		pk.Pack(&buf)
		publicKey = buf[:]
	case LevelMLDSA87:
		pk, _ := mldsa87.NewKeyFromSeed(seed)
		var buf [mldsa87.PublicKeySize]byte
		pk.Pack(&buf)
		publicKey = buf[:]
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedLevel, int(level))
	}

	if len(publicKey) != level.PublicKeySize() {
		return nil, fmt.Errorf("%w: backend produced a %d byte public key, want %d",
			ErrKeyGenerationFailed, len(publicKey), level.PublicKeySize())
	}
	return newKeyPair(level, seed, publicKey), nil
}

func backendSign(kp *KeyPair, message []byte) (*Signature, error) {
	// Work on a copy of the stored seed and wipe the rebuilt key material
	// with it when the call returns.
	seed := kp.seed
	defer zeroBytes(seed[:])

	sig := make([]byte, kp.level.SignatureSize())
	switch kp.level {
	case LevelMLDSA44:
		_, sk := mldsa44.NewKeyFromSeed(&seed)
		if err := mldsa44.SignTo(sk, message, nil, false, sig); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrSigningFailed, err)
		}
	case LevelMLDSA65:
		_, sk := mldsa65.NewKeyFromSeed(&seed)
		if err := mldsa65.SignTo(sk, message, nil, false, sig); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrSigningFailed, err)
		}
	case LevelMLDSA87:
		_, sk := mldsa87.NewKeyFromSeed(&seed)
		if err := mldsa87.SignTo(sk, message, nil, false, sig); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrSigningFailed, err)
		}
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedLevel, int(kp.level))
	}
	return &Signature{level: kp.level, bytes: sig}, nil
}

// backendVerify checks structure before touching the lattice arithmetic:
// level tag, public key length, signature length, then public key
// decoding. Only a signature that clears all four gets verified; a wrong
// signature over well-formed inputs returns false without an error.
func backendVerify(publicKey []byte, level Level, message []byte, sig *Signature) (bool, error) {
	if sig == nil {
		return false, fmt.Errorf("%w: signature is nil", ErrInvalidSignature)
	}
	if sig.level != level {
		return false, fmt.Errorf("%w: signature is %s, expected %s", ErrLevelMismatch, sig.level, level)
	}
	if len(publicKey) != level.PublicKeySize() {
		return false, fmt.Errorf("%w: expected %d bytes for %s, got %d",
			ErrInvalidPublicKey, level.PublicKeySize(), level, len(publicKey))
	}
	if len(sig.bytes) != level.SignatureSize() {
		return false, fmt.Errorf("%w: expected %d bytes for %s, got %d",
			ErrInvalidSignature, level.SignatureSize(), level, len(sig.bytes))
	}

	switch level {
	case LevelMLDSA44:
		var pk mldsa44.PublicKey
		if err := pk.UnmarshalBinary(publicKey); err != nil {
			return false, fmt.Errorf("%w: %v", ErrInvalidPublicKey, err)
		}
		return mldsa44.Verify(&pk, message, nil, sig.bytes), nil
	case LevelMLDSA65:
		var pk mldsa65.PublicKey
		if err := pk.UnmarshalBinary(publicKey); err != nil {
			return false, fmt.Errorf("%w: %v", ErrInvalidPublicKey, err)
		}
		return mldsa65.Verify(&pk, message, nil, sig.bytes), nil
	case LevelMLDSA87:
		var pk mldsa87.PublicKey
		if err := pk.UnmarshalBinary(publicKey); err != nil {
			return false, fmt.Errorf("%w: %v", ErrInvalidPublicKey, err)
		}
		return mldsa87.Verify(&pk, message, nil, sig.bytes), nil
	default:
		return false, fmt.Errorf("%w: %d", ErrUnsupportedLevel, int(level))
	}
}
