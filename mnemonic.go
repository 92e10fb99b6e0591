package mldsabip39

import (
	"fmt"
	"strings"

	"github.com/tyler-smith/go-bip39"
)

// MnemonicToSeed converts a BIP39 mnemonic phrase and optional passphrase
// (empty string for none) into the 64-byte coarse seed that all key
// derivation starts from.
func MnemonicToSeed(mnemonic, passphrase string) ([]byte, error) {
	mnemonic = strings.TrimSpace(mnemonic)
	if !bip39.IsMnemonicValid(mnemonic) {
		return nil, fmt.Errorf("%w: wordlist or checksum mismatch", ErrInvalidMnemonic)
	}
	return bip39.NewSeed(mnemonic, passphrase), nil
}
