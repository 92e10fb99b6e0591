package mldsabip39

// Level selects one of the three ML-DSA parameter sets defined by FIPS 204.
// The set of levels is closed; every operation in this package switches
// over all three explicitly.
type Level int

const (
	// LevelMLDSA44 is NIST category 2 (128-bit security), the smallest
	// keys and signatures. Default for most use cases.
	LevelMLDSA44 Level = iota + 1
	// LevelMLDSA65 is NIST category 3 (192-bit security), intended for
	// high-value accounts such as treasury or governance keys.
	LevelMLDSA65
	// LevelMLDSA87 is NIST category 5 (256-bit security), reserved for
	// critical infrastructure.
	LevelMLDSA87
)

// DefaultLevel is the level used when callers have no specific requirement.
const DefaultLevel = LevelMLDSA44

// SchemeSeedSize is the ML-DSA keygen seed size, identical for all levels.
const SchemeSeedSize = 32

// Level-unique derivation constants. The domain separator feeds the seed
// derivation hash; the purpose field goes into the path string. Both must
// stay pairwise distinct across levels, or two levels could derive the
// same key from one mnemonic.
const (
	domainSeparator44 = "ML-DSA-BIP39:ML-DSA-44:V1"
	domainSeparator65 = "ML-DSA-BIP39:ML-DSA-65:V1"
	domainSeparator87 = "ML-DSA-BIP39:ML-DSA-87:V1"
)

// Levels returns all supported levels in ascending security order.
func Levels() []Level {
	return []Level{LevelMLDSA44, LevelMLDSA65, LevelMLDSA87}
}

func (l Level) valid() bool {
	switch l {
	case LevelMLDSA44, LevelMLDSA65, LevelMLDSA87:
		return true
	}
	return false
}

// Purpose returns the BIP44-style purpose field for this level.
func (l Level) Purpose() uint32 {
	switch l {
	case LevelMLDSA44:
		return 8844
	case LevelMLDSA65:
		return 8865
	case LevelMLDSA87:
		return 8887
	}
	return 0
}

// DomainSeparator returns the level-unique prefix fed to the seed
// derivation hash. The returned slice is a fresh copy.
func (l Level) DomainSeparator() []byte {
	switch l {
	case LevelMLDSA44:
		return []byte(domainSeparator44)
	case LevelMLDSA65:
		return []byte(domainSeparator65)
	case LevelMLDSA87:
		return []byte(domainSeparator87)
	}
	return nil
}

// PublicKeySize returns the packed public key size in bytes.
func (l Level) PublicKeySize() int {
	switch l {
	case LevelMLDSA44:
		return 1312
	case LevelMLDSA65:
		return 1952
	case LevelMLDSA87:
		return 2592
	}
	return 0
}

// SignatureSize returns the signature size in bytes.
func (l Level) SignatureSize() int {
	switch l {
	case LevelMLDSA44:
		return 2420
	case LevelMLDSA65:
		return 3309
	case LevelMLDSA87:
		return 4627
	}
	return 0
}

// SeedSize returns the keygen seed size; 32 bytes for every level.
func (l Level) SeedSize() int {
	return SchemeSeedSize
}

// NISTCategory returns the NIST security category (2, 3 or 5).
func (l Level) NISTCategory() uint8 {
	switch l {
	case LevelMLDSA44:
		return 2
	case LevelMLDSA65:
		return 3
	case LevelMLDSA87:
		return 5
	}
	return 0
}

// SecurityBits returns the classical security strength in bits.
func (l Level) SecurityBits() uint16 {
	switch l {
	case LevelMLDSA44:
		return 128
	case LevelMLDSA65:
		return 192
	case LevelMLDSA87:
		return 256
	}
	return 0
}

// String returns the FIPS 204 parameter set name.
func (l Level) String() string {
	switch l {
	case LevelMLDSA44:
		return "ML-DSA-44"
	case LevelMLDSA65:
		return "ML-DSA-65"
	case LevelMLDSA87:
		return "ML-DSA-87"
	}
	return "ML-DSA-unknown"
}
