// Package mldsabip39 derives ML-DSA (FIPS 204) signature keypairs from
// BIP39 mnemonic phrases, so that post-quantum signing keys can be backed
// up and recovered from a single seed phrase instead of raw key material.
//
// One mnemonic produces many independent keys, addressed by BIP44-style
// derivation paths:
//
//	m/{purpose}'/{coin}'/{account}'/0/{index}
//
// The purpose field is level-specific (8844, 8865 or 8887), so the same
// phrase never yields the same key for two different security levels. The
// 32-byte ML-DSA seed for a path is extracted with SHAKE256 over a
// level-unique domain separator, the 64-byte BIP39 seed and the path
// string.
//
// Three parameter sets are supported:
//
//	Level     | NIST category | Security | Public key | Signature
//	ML-DSA-44 | 2             | 128-bit  | 1312 B     | 2420 B
//	ML-DSA-65 | 3             | 192-bit  | 1952 B     | 3309 B
//	ML-DSA-87 | 5             | 256-bit  | 2592 B     | 4627 B
//
// Keypairs store only the 32-byte seed; the expanded signing key is
// regenerated on every Sign call and never persisted. Callers own the
// keypair's lifetime and should Close (or Zeroize) it when done so the
// seed is wiped from memory.
package mldsabip39
