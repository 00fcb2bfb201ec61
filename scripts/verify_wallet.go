// verify_wallet.go checks that a wallet file's address and private key are
// the derivation of its mnemonic.
// Usage: go run scripts/verify_wallet.go [wallet.json]
package main

import (
	"encoding/hex"
	"fmt"
	"os"

	"github.com/odyssey-tools/devwallet/config"
	"github.com/odyssey-tools/devwallet/internal/wallet"
	"github.com/odyssey-tools/devwallet/pkg/crypto"
)

func main() {
	path := config.DefaultWalletFile()
	if len(os.Args) > 1 {
		path = os.Args[1]
	}

	store, err := wallet.NewStore(path)
	if err != nil {
		fail(err)
	}
	rec, err := store.Read()
	if err != nil {
		fail(err)
	}

	key, err := crypto.PrivateKeyFromHex(rec.PrivateKey)
	if err != nil {
		fail(err)
	}
	defer key.Zero()

	fmt.Printf("path=%s\n", store.Path())
	fmt.Printf("pubkey=%s\n", hex.EncodeToString(key.PublicKey()))
	fmt.Printf("address=%s\n", key.Address().Hex())
	fmt.Printf("words=%d\n", rec.WordCount())

	if err := wallet.VerifyRecord(*rec); err != nil {
		fail(err)
	}
	fmt.Println("ok")
}

func fail(err error) {
	fmt.Fprintln(os.Stderr, err)
	os.Exit(1)
}
