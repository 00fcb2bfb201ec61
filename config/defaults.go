package config

import (
	"github.com/odyssey-tools/devwallet/internal/chain"
	"github.com/odyssey-tools/devwallet/internal/rpcclient"
	"github.com/odyssey-tools/devwallet/internal/wallet"
)

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		WalletFile: DefaultWalletFile(),
		Chain: ChainConfig{
			RPCURL:        chain.StoryOdyssey.RPCURL,
			Timeout:       rpcclient.DefaultTimeout,
			VerifyChainID: false,
		},
		Wallet: WalletConfig{
			MnemonicBits: wallet.DefaultMnemonicEntropyBits,
		},
		Log: LogConfig{
			Level: "warn",
			JSON:  false,
		},
	}
}
