package mldsabip39

import (
	"bytes"
	"fmt"
)

// Signature is a level-tagged ML-DSA signature. The byte layout is the
// raw, unframed signature encoding of the level's parameter set, exactly
// Level().SignatureSize() bytes. Signatures are not secret.
type Signature struct {
	level Level
	bytes []byte
}

// SignatureFromBytes reconstructs a signature received from the wire or
// storage. The length is validated against the level before the bytes are
// accepted; no cryptographic work happens here.
func SignatureFromBytes(level Level, raw []byte) (*Signature, error) {
	if !level.valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedLevel, int(level))
	}
	if len(raw) != level.SignatureSize() {
		return nil, fmt.Errorf("%w: expected %d bytes for %s, got %d",
			ErrInvalidSignature, level.SignatureSize(), level, len(raw))
	}
	return &Signature{level: level, bytes: append([]byte(nil), raw...)}, nil
}

// Level returns the security level this signature was produced under.
func (s *Signature) Level() Level {
	return s.level
}

// Bytes returns a copy of the raw signature bytes.
func (s *Signature) Bytes() []byte {
	return append([]byte(nil), s.bytes...)
}

// Equal reports whether two signatures carry the same level and bytes.
func (s *Signature) Equal(other *Signature) bool {
	if s == nil || other == nil {
		return s == other
	}
	return s.level == other.level && bytes.Equal(s.bytes, other.bytes)
}

func (s *Signature) String() string {
	return fmt.Sprintf("Signature{level: %s, len: %d}", s.level, len(s.bytes))
}
