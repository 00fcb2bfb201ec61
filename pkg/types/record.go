// Package types defines the data shared between the wallet store,
// the key generator and the chain client.
package types

import (
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/common"
)

// PrivateKeyHexLen is the length of a hex-encoded 32-byte private key.
const PrivateKeyHexLen = 64

// WalletRecord is the single persisted development wallet.
//
// Address and PrivateKey are always derived from Mnemonic; they are never
// set independently.
type WalletRecord struct {
	Address    string `json:"address"`    // EIP-55 checksummed, 0x-prefixed
	PrivateKey string `json:"privateKey"` // raw scalar, hex without 0x
	Mnemonic   string `json:"mnemonic"`   // BIP-39 phrase, space separated
}

// Validate checks that the record is syntactically well formed.
// It does not check that the fields derive from each other.
func (r WalletRecord) Validate() error {
	if r.Address == "" {
		return fmt.Errorf("missing address")
	}
	if r.PrivateKey == "" {
		return fmt.Errorf("missing private key")
	}
	if strings.TrimSpace(r.Mnemonic) == "" {
		return fmt.Errorf("missing mnemonic")
	}
	if !strings.HasPrefix(r.Address, "0x") || !common.IsHexAddress(r.Address) {
		return fmt.Errorf("invalid address %q", r.Address)
	}
	if len(r.PrivateKey) != PrivateKeyHexLen {
		return fmt.Errorf("private key must be %d hex chars, got %d", PrivateKeyHexLen, len(r.PrivateKey))
	}
	if _, err := hex.DecodeString(r.PrivateKey); err != nil {
		return fmt.Errorf("invalid private key: %w", err)
	}
	return nil
}

// WordCount returns the number of words in the mnemonic.
func (r WalletRecord) WordCount() int {
	return len(strings.Fields(r.Mnemonic))
}
