package mldsabip39

import "errors"

var (
	// ErrInvalidMnemonic reports a phrase the BIP39 wordlist or checksum
	// rejects.
	ErrInvalidMnemonic = errors.New("invalid mnemonic")
	// ErrInvalidSeedLength reports a coarse seed that is not exactly 64
	// bytes.
	ErrInvalidSeedLength = errors.New("invalid seed length")
	// ErrInvalidPublicKey reports a public key of the wrong length or
	// with an undecodable structure.
	ErrInvalidPublicKey = errors.New("invalid public key")
	// ErrInvalidSignature reports signature bytes of the wrong length
	// for the claimed level.
	ErrInvalidSignature = errors.New("invalid signature")
	// ErrLevelMismatch reports a signature whose level tag differs from
	// the level it is being verified against.
	ErrLevelMismatch = errors.New("signature level mismatch")
	// ErrSigningFailed reports that the underlying primitive rejected a
	// well-formed signing request. Not expected in normal operation.
	ErrSigningFailed = errors.New("signing failed")
	// ErrKeyGenerationFailed reports that the underlying primitive
	// produced an inconsistent keypair. Not expected in normal operation.
	ErrKeyGenerationFailed = errors.New("key generation failed")
	// ErrUnsupportedLevel reports a level value outside the three
	// supported parameter sets.
	ErrUnsupportedLevel = errors.New("unsupported ML-DSA level")
)
