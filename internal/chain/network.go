// Package chain reads account state from an EVM chain over JSON-RPC.
package chain

import (
	"math/big"
	"strings"
)

// Currency describes a chain's native token.
type Currency struct {
	Name     string
	Symbol   string
	Decimals uint8
}

// Explorer is a block explorer for a chain.
type Explorer struct {
	Name string
	URL  string
}

// Network holds the static parameters of an EVM network.
type Network struct {
	ChainID  uint64
	Name     string
	Currency Currency
	RPCURL   string
	Explorer Explorer
	Testnet  bool
}

// StoryOdyssey is the Story Protocol Odyssey testnet.
var StoryOdyssey = Network{
	ChainID: 1516,
	Name:    "Story Odyssey",
	Currency: Currency{
		Name:     "IP",
		Symbol:   "IP",
		Decimals: 18,
	},
	RPCURL: "https://rpc.odyssey.storyrpc.io",
	Explorer: Explorer{
		Name: "Story Odyssey Explorer",
		URL:  "https://odyssey.storyscan.xyz",
	},
	Testnet: true,
}

// WithRPCURL returns a copy of n that talks to url instead.
func (n Network) WithRPCURL(url string) Network {
	n.RPCURL = url
	return n
}

// AddressURL returns the explorer page for an address.
func (n Network) AddressURL(address string) string {
	return strings.TrimRight(n.Explorer.URL, "/") + "/address/" + address
}

// FormatAmount renders a base-unit amount in whole currency units,
// e.g. 1500000000000000000 wei as "1.5 IP". Trailing zeros are trimmed.
func (n Network) FormatAmount(amount *big.Int) string {
	if amount == nil {
		amount = new(big.Int)
	}
	neg := amount.Sign() < 0
	abs := new(big.Int).Abs(amount)

	unit := new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(n.Currency.Decimals)), nil)
	whole, frac := new(big.Int).QuoRem(abs, unit, new(big.Int))

	s := whole.String()
	if frac.Sign() != 0 {
		fs := frac.String()
		fs = strings.Repeat("0", int(n.Currency.Decimals)-len(fs)) + fs
		s += "." + strings.TrimRight(fs, "0")
	}
	if neg {
		s = "-" + s
	}
	return s + " " + n.Currency.Symbol
}
