package wallet

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned when no wallet file exists.
	ErrNotFound = errors.New("wallet not found")

	// ErrExists is returned by Store.Create when a wallet file is already present.
	ErrExists = errors.New("wallet already exists")

	// ErrNotCorrupt is returned by Store.Quarantine when the file holds a
	// valid record by the time it is moved; the record is left in place.
	ErrNotCorrupt = errors.New("wallet file is no longer corrupt")

	// ErrInvalidMnemonic is returned for phrases that fail BIP-39 validation.
	ErrInvalidMnemonic = errors.New("invalid mnemonic")

	// ErrNoKeyMaterial is returned when derivation yields no private key.
	ErrNoKeyMaterial = errors.New("derived key has no private key material")

	// ErrDerivationMismatch is returned when a record's address or private
	// key is not the derivation of its mnemonic.
	ErrDerivationMismatch = errors.New("wallet record does not match its mnemonic")
)

// CorruptError reports a wallet file that exists but cannot be used.
type CorruptError struct {
	Path string
	Err  error
}

func (e *CorruptError) Error() string {
	return fmt.Sprintf("wallet file %s is unusable: %v", e.Path, e.Err)
}

func (e *CorruptError) Unwrap() error {
	return e.Err
}
