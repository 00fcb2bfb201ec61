package wallet

import (
	"io"

	klog "github.com/odyssey-tools/devwallet/internal/log"
	"github.com/odyssey-tools/devwallet/pkg/types"
)

// Generator creates fresh wallet records.
type Generator struct {
	entropyBits int
	rand        io.Reader
}

// NewGenerator returns a generator producing mnemonics with the given
// entropy size. Zero selects DefaultMnemonicEntropyBits.
func NewGenerator(entropyBits int) (*Generator, error) {
	if entropyBits == 0 {
		entropyBits = DefaultMnemonicEntropyBits
	}
	if err := checkEntropyBits(entropyBits); err != nil {
		return nil, err
	}
	return &Generator{entropyBits: entropyBits}, nil
}

// WithRand returns a copy of g that reads entropy from r instead of crypto/rand.
func (g *Generator) WithRand(r io.Reader) *Generator {
	cp := *g
	cp.rand = r
	return &cp
}

// EntropyBits returns the mnemonic entropy size in bits.
func (g *Generator) EntropyBits() int {
	return g.entropyBits
}

// Generate produces a new mnemonic and derives its wallet record.
func (g *Generator) Generate() (types.WalletRecord, error) {
	var (
		mnemonic string
		err      error
	)
	if g.rand != nil {
		mnemonic, err = GenerateMnemonicFrom(g.rand, g.entropyBits)
	} else {
		mnemonic, err = GenerateMnemonic(g.entropyBits)
	}
	if err != nil {
		return types.WalletRecord{}, err
	}
	r, err := RecordFromMnemonic(mnemonic)
	if err != nil {
		return types.WalletRecord{}, err
	}
	klog.Wallet.Debug().
		Str("address", r.Address).
		Int("words", r.WordCount()).
		Str("path", DefaultDerivationPath).
		Msg("wallet generated")
	return r, nil
}
