// Package wallet implements the single development wallet: BIP-39
// mnemonic generation, BIP-32/BIP-44 derivation of the EVM account, and
// the JSON file store that owns the record on disk.
package wallet

import (
	"fmt"
	"io"

	"github.com/tyler-smith/go-bip39"
)

// Supported mnemonic entropy sizes.
const (
	// MnemonicEntropyBits12 yields a 12-word mnemonic.
	MnemonicEntropyBits12 = 128

	// MnemonicEntropyBits24 yields a 24-word mnemonic.
	MnemonicEntropyBits24 = 256

	// DefaultMnemonicEntropyBits is the default used for new wallets.
	DefaultMnemonicEntropyBits = MnemonicEntropyBits12
)

// GenerateMnemonic creates a new BIP-39 mnemonic from crypto/rand entropy.
func GenerateMnemonic(bits int) (string, error) {
	if err := checkEntropyBits(bits); err != nil {
		return "", err
	}
	entropy, err := bip39.NewEntropy(bits)
	if err != nil {
		return "", fmt.Errorf("generate entropy: %w", err)
	}
	return mnemonicFromEntropy(entropy)
}

// GenerateMnemonicFrom creates a new BIP-39 mnemonic reading entropy from r.
func GenerateMnemonicFrom(r io.Reader, bits int) (string, error) {
	if err := checkEntropyBits(bits); err != nil {
		return "", err
	}
	entropy := make([]byte, bits/8)
	if _, err := io.ReadFull(r, entropy); err != nil {
		return "", fmt.Errorf("generate entropy: %w", err)
	}
	return mnemonicFromEntropy(entropy)
}

func mnemonicFromEntropy(entropy []byte) (string, error) {
	defer clear(entropy)
	mnemonic, err := bip39.NewMnemonic(entropy)
	if err != nil {
		return "", fmt.Errorf("generate mnemonic: %w", err)
	}
	return mnemonic, nil
}

func checkEntropyBits(bits int) error {
	if bits != MnemonicEntropyBits12 && bits != MnemonicEntropyBits24 {
		return fmt.Errorf("entropy must be %d or %d bits, got %d",
			MnemonicEntropyBits12, MnemonicEntropyBits24, bits)
	}
	return nil
}

// ValidateMnemonic checks if a mnemonic is valid per BIP-39
// (correct word count, valid words, valid checksum).
func ValidateMnemonic(mnemonic string) bool {
	return bip39.IsMnemonicValid(mnemonic)
}
