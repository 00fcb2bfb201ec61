package wallet

import (
	"fmt"
	"strings"

	"github.com/odyssey-tools/devwallet/pkg/types"
)

// RecordFromMnemonic derives the wallet record for a mnemonic at
// DefaultDerivationPath with an empty BIP-39 passphrase.
func RecordFromMnemonic(mnemonic string) (types.WalletRecord, error) {
	seed, err := SeedFromMnemonic(mnemonic, "")
	if err != nil {
		return types.WalletRecord{}, err
	}
	defer clear(seed)

	master, err := NewMasterKey(seed)
	if err != nil {
		return types.WalletRecord{}, err
	}
	hdKey, err := master.DeriveAddress(0, ChangeExternal, 0)
	if err != nil {
		return types.WalletRecord{}, fmt.Errorf("derive %s: %w", DefaultDerivationPath, err)
	}

	priv, err := hdKey.PrivateKey()
	if err != nil {
		return types.WalletRecord{}, err
	}
	defer priv.Zero()

	addr, err := hdKey.Address()
	if err != nil {
		return types.WalletRecord{}, fmt.Errorf("derive address: %w", err)
	}
	if addr != priv.Address() {
		return types.WalletRecord{}, fmt.Errorf("derive address: public and private key disagree")
	}

	return types.WalletRecord{
		Address:    addr.Hex(),
		PrivateKey: priv.Hex(),
		Mnemonic:   mnemonic,
	}, nil
}

// VerifyRecord re-derives the record from its mnemonic and checks that the
// stored address and private key match.
func VerifyRecord(r types.WalletRecord) error {
	derived, err := RecordFromMnemonic(r.Mnemonic)
	if err != nil {
		return fmt.Errorf("verify record: %w", err)
	}
	if !strings.EqualFold(derived.Address, r.Address) ||
		!strings.EqualFold(derived.PrivateKey, r.PrivateKey) {
		return ErrDerivationMismatch
	}
	return nil
}
