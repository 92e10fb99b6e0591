package keystore

import (
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/tyler-smith/go-bip39"
	"golang.org/x/time/rate"

	mldsabip39 "github.com/silica-network/go-mldsa-bip39"
)

// Failed password attempts drain a token bucket; once empty, further
// attempts are refused until it refills.
const (
	attemptInterval = 2 * time.Second
	attemptBurst    = 3
)

var (
	ErrPasswordRequired  = errors.New("password is required")
	ErrMnemonicRequired  = errors.New("mnemonic is required")
	ErrInvalidPassword   = errors.New("invalid password")
	ErrSeedNotAvailable  = errors.New("seed is not available")
	ErrPasswordThrottled = errors.New("password attempts are temporarily throttled")
)

// Store keeps one encrypted mnemonic in memory and answers unlock
// requests. The plaintext mnemonic exists only for the duration of a
// single call. Safe for concurrent use.
type Store struct {
	mu       sync.Mutex
	envelope *Envelope
	attempts *rate.Limiter
	now      func() time.Time
}

func New() *Store {
	return newStoreWithClock(time.Now)
}

func newStoreWithClock(now func() time.Time) *Store {
	return &Store{
		attempts: rate.NewLimiter(rate.Every(attemptInterval), attemptBurst),
		now:      now,
	}
}

// Create generates a fresh 24-word mnemonic, seals it under password and
// returns it for the caller to present exactly once for backup.
func (s *Store) Create(password string) (string, error) {
	if strings.TrimSpace(password) == "" {
		return "", ErrPasswordRequired
	}
	entropy, err := bip39.NewEntropy(256)
	if err != nil {
		return "", err
	}
	mnemonic, err := bip39.NewMnemonic(entropy)
	if err != nil {
		return "", err
	}
	return s.Import(mnemonic, password)
}

// Import seals an existing mnemonic under password, replacing any
// previously stored envelope. Returns the normalized mnemonic.
func (s *Store) Import(mnemonic, password string) (string, error) {
	mnemonic = strings.TrimSpace(mnemonic)
	if mnemonic == "" {
		return "", ErrMnemonicRequired
	}
	if strings.TrimSpace(password) == "" {
		return "", ErrPasswordRequired
	}
	if !bip39.IsMnemonicValid(mnemonic) {
		return "", mldsabip39.ErrInvalidMnemonic
	}

	env, err := EncryptMnemonic([]byte(mnemonic), []byte(password))
	if err != nil {
		return "", err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.envelope = env
	return mnemonic, nil
}

// Export returns the stored mnemonic if password is correct.
func (s *Store) Export(password string) (string, error) {
	if strings.TrimSpace(password) == "" {
		return "", ErrPasswordRequired
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.unlock(password)
}

// ChangePassword re-seals the stored mnemonic under a new password.
func (s *Store) ChangePassword(oldPassword, newPassword string) error {
	oldPassword = strings.TrimSpace(oldPassword)
	newPassword = strings.TrimSpace(newPassword)
	if oldPassword == "" || newPassword == "" {
		return ErrPasswordRequired
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	mnemonic, err := s.unlock(oldPassword)
	if err != nil {
		return err
	}
	env, err := EncryptMnemonic([]byte(mnemonic), []byte(newPassword))
	if err != nil {
		return err
	}
	s.envelope = env
	return nil
}

// ValidateMnemonic reports whether a phrase passes BIP39 validation.
func (s *Store) ValidateMnemonic(mnemonic string) bool {
	return bip39.IsMnemonicValid(strings.TrimSpace(mnemonic))
}

// DeriveKeyPair unlocks the store and derives the keypair at
// (account, index) for level, using the default coin type and an empty
// BIP39 passphrase. Intermediate secrets are wiped before returning.
func (s *Store) DeriveKeyPair(password string, account, index uint32, level mldsabip39.Level) (*mldsabip39.KeyPair, error) {
	return s.DeriveKeyPairWithCoin(password, mldsabip39.SilicaCoinType, account, index, level)
}

// DeriveKeyPairWithCoin is DeriveKeyPair with an explicit coin type.
func (s *Store) DeriveKeyPairWithCoin(password string, coin, account, index uint32, level mldsabip39.Level) (*mldsabip39.KeyPair, error) {
	s.mu.Lock()
	mnemonic, err := s.unlock(password)
	s.mu.Unlock()
	if err != nil {
		return nil, err
	}

	seed, err := mldsabip39.MnemonicToSeed(mnemonic, "")
	if err != nil {
		return nil, err
	}
	defer zeroBytes(seed)
	return mldsabip39.DeriveKeyPairWithCoin(seed, coin, account, index, level)
}

// Envelope returns a copy of the stored envelope for persistence, or nil
// if the store is empty.
func (s *Store) Envelope() *Envelope {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.envelope == nil {
		return nil
	}
	env := *s.envelope
	env.Salt = append([]byte(nil), s.envelope.Salt...)
	env.Nonce = append([]byte(nil), s.envelope.Nonce...)
	env.Ciphertext = append([]byte(nil), s.envelope.Ciphertext...)
	return &env
}

// Restore replaces the stored envelope with one previously obtained from
// Envelope or ReadEnvelopeFile. The password is not checked here; the
// next unlock will.
func (s *Store) Restore(env *Envelope) error {
	if env == nil || env.Version != envelopeVersion || env.KDF != "argon2id" {
		return ErrInvalidEnvelope
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.envelope = env
	return nil
}

// unlock decrypts the envelope under the attempt throttle. Caller holds
// s.mu.
func (s *Store) unlock(password string) (string, error) {
	if s.envelope == nil {
		return "", ErrSeedNotAvailable
	}
	if !s.attempts.AllowN(s.now(), 1) {
		return "", ErrPasswordThrottled
	}
	plaintext, err := DecryptMnemonic(s.envelope, []byte(password))
	if err != nil {
		return "", ErrInvalidPassword
	}
	// Successful unlock resets the attempt budget.
	s.attempts = rate.NewLimiter(rate.Every(attemptInterval), attemptBurst)

	mnemonic := strings.TrimSpace(string(plaintext))
	zeroBytes(plaintext)
	if !bip39.IsMnemonicValid(mnemonic) {
		return "", fmt.Errorf("%w: stored mnemonic is corrupted", mldsabip39.ErrInvalidMnemonic)
	}
	return mnemonic, nil
}
