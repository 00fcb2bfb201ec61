// Package crypto provides the hashing and key primitives used to turn
// HD-derived key material into EVM addresses.
package crypto

import (
	"fmt"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
	"github.com/ethereum/go-ethereum/common"
	"golang.org/x/crypto/sha3"
)

// HashSize is the length of a Keccak-256 digest.
const HashSize = 32

// Keccak256 computes the legacy (pre-NIST) Keccak-256 hash used by EVM chains.
func Keccak256(data ...[]byte) [HashSize]byte {
	h := sha3.NewLegacyKeccak256()
	for _, d := range data {
		h.Write(d)
	}
	var out [HashSize]byte
	copy(out[:], h.Sum(nil))
	return out
}

// AddressFromPubKey derives an EVM address from a secp256k1 public key.
// Both compressed (33 byte) and uncompressed (65 byte) encodings are accepted.
// Address = Keccak256(uncompressed_pubkey[1:])[12:].
func AddressFromPubKey(pubKey []byte) (common.Address, error) {
	pub, err := secp256k1.ParsePubKey(pubKey)
	if err != nil {
		return common.Address{}, fmt.Errorf("parse public key: %w", err)
	}
	uncompressed := pub.SerializeUncompressed()
	h := Keccak256(uncompressed[1:])
	return common.BytesToAddress(h[HashSize-common.AddressLength:]), nil
}
