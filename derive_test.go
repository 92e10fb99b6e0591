package mldsabip39

import (
	"bytes"
	"errors"
	"testing"
)

func testCoarseSeed(t *testing.T) []byte {
	t.Helper()
	seed, err := MnemonicToSeed(testMnemonic, "")
	if err != nil {
		t.Fatalf("mnemonic to seed failed: %v", err)
	}
	return seed
}

func TestDerivationPathFormat(t *testing.T) {
	cases := []struct {
		level                Level
		coin, account, index uint32
		want                 string
	}{
		{LevelMLDSA44, 1337, 0, 0, "m/8844'/1337'/0'/0/0"},
		{LevelMLDSA65, 1337, 0, 0, "m/8865'/1337'/0'/0/0"},
		{LevelMLDSA87, 1337, 0, 0, "m/8887'/1337'/0'/0/0"},
		{LevelMLDSA44, 60, 2, 7, "m/8844'/60'/2'/0/7"},
	}
	for _, c := range cases {
		if got := DerivationPath(c.level, c.coin, c.account, c.index); got != c.want {
			t.Fatalf("path = %q, want %q", got, c.want)
		}
	}
}

func TestDeriveKeyPairDeterministic(t *testing.T) {
	seed := testCoarseSeed(t)
	kp1, err := DeriveKeyPair(seed, 0, 0, LevelMLDSA44)
	if err != nil {
		t.Fatalf("derive 1 failed: %v", err)
	}
	defer kp1.Zeroize()
	kp2, err := DeriveKeyPair(seed, 0, 0, LevelMLDSA44)
	if err != nil {
		t.Fatalf("derive 2 failed: %v", err)
	}
	defer kp2.Zeroize()

	if !bytes.Equal(kp1.PublicKey(), kp2.PublicKey()) {
		t.Fatal("public keys should be deterministic")
	}
	if !bytes.Equal(kp1.Seed(), kp2.Seed()) {
		t.Fatal("scheme seeds should be deterministic")
	}
}

func TestDeriveKeyPairIndexSensitivity(t *testing.T) {
	seed := testCoarseSeed(t)
	kp0, err := DeriveKeyPair(seed, 0, 0, LevelMLDSA44)
	if err != nil {
		t.Fatalf("derive index 0 failed: %v", err)
	}
	defer kp0.Zeroize()
	kp1, err := DeriveKeyPair(seed, 0, 1, LevelMLDSA44)
	if err != nil {
		t.Fatalf("derive index 1 failed: %v", err)
	}
	defer kp1.Zeroize()

	if bytes.Equal(kp0.PublicKey(), kp1.PublicKey()) {
		t.Fatal("different indices must produce different public keys")
	}
}

func TestDeriveKeyPairLevelSensitivity(t *testing.T) {
	seed := testCoarseSeed(t)
	kp44, err := DeriveKeyPair(seed, 0, 0, LevelMLDSA44)
	if err != nil {
		t.Fatalf("derive 44 failed: %v", err)
	}
	defer kp44.Zeroize()
	kp65, err := DeriveKeyPair(seed, 0, 0, LevelMLDSA65)
	if err != nil {
		t.Fatalf("derive 65 failed: %v", err)
	}
	defer kp65.Zeroize()

	if bytes.Equal(kp44.Seed(), kp65.Seed()) {
		t.Fatal("different levels must produce different scheme seeds")
	}
}

func TestDeriveKeyPairCoinSensitivity(t *testing.T) {
	seed := testCoarseSeed(t)
	kpDefault, err := DeriveKeyPair(seed, 0, 0, LevelMLDSA44)
	if err != nil {
		t.Fatalf("derive default coin failed: %v", err)
	}
	defer kpDefault.Zeroize()
	kpCustom, err := DeriveKeyPairWithCoin(seed, 60, 0, 0, LevelMLDSA44)
	if err != nil {
		t.Fatalf("derive custom coin failed: %v", err)
	}
	defer kpCustom.Zeroize()

	if bytes.Equal(kpDefault.Seed(), kpCustom.Seed()) {
		t.Fatal("different coin types must produce different scheme seeds")
	}
}

func TestDeriveSchemeSeedPathSensitivity(t *testing.T) {
	coarse := make([]byte, CoarseSeedSize)
	for i := range coarse {
		coarse[i] = 0x42
	}
	s1 := deriveSchemeSeed(coarse, "m/8844'/1337'/0'/0/0", LevelMLDSA44)
	s2 := deriveSchemeSeed(coarse, "m/8844'/1337'/0'/0/1", LevelMLDSA44)
	if s1 == s2 {
		t.Fatal("different paths must produce different scheme seeds")
	}
}

func TestDeriveKeyPairRejectsBadSeedLength(t *testing.T) {
	for _, n := range []int{0, 32, 63, 65} {
		if _, err := DeriveKeyPair(make([]byte, n), 0, 0, LevelMLDSA44); !errors.Is(err, ErrInvalidSeedLength) {
			t.Fatalf("seed length %d: expected ErrInvalidSeedLength, got %v", n, err)
		}
	}
}

func TestDeriveKeyPairRejectsUnknownLevel(t *testing.T) {
	seed := make([]byte, CoarseSeedSize)
	if _, err := DeriveKeyPair(seed, 0, 0, Level(99)); !errors.Is(err, ErrUnsupportedLevel) {
		t.Fatalf("expected ErrUnsupportedLevel, got %v", err)
	}
}

func TestDeriveKeyPairSizesPerLevel(t *testing.T) {
	seed := testCoarseSeed(t)
	for _, level := range Levels() {
		kp, err := DeriveKeyPair(seed, 0, 0, level)
		if err != nil {
			t.Fatalf("%s: derive failed: %v", level, err)
		}
		if got := len(kp.PublicKey()); got != level.PublicKeySize() {
			t.Fatalf("%s: public key length = %d, want %d", level, got, level.PublicKeySize())
		}
		if got := len(kp.Seed()); got != SchemeSeedSize {
			t.Fatalf("%s: seed length = %d, want %d", level, got, SchemeSeedSize)
		}
		kp.Zeroize()
	}
}
