package config

import (
	"fmt"
	"net/url"
	"strings"

	klog "github.com/odyssey-tools/devwallet/internal/log"
	"github.com/odyssey-tools/devwallet/internal/wallet"
)

// Validate checks the configuration for obvious operator mistakes.
func Validate(cfg *Config) error {
	if cfg == nil {
		return fmt.Errorf("config is nil")
	}
	if strings.TrimSpace(cfg.WalletFile) == "" {
		return fmt.Errorf("wallet.file must not be empty")
	}

	u, err := url.Parse(cfg.Chain.RPCURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("chain.rpc_url must be an http(s) URL, got %q", cfg.Chain.RPCURL)
	}
	if cfg.Chain.Timeout < 0 {
		return fmt.Errorf("chain.timeout must not be negative")
	}

	switch cfg.Wallet.MnemonicBits {
	case wallet.MnemonicEntropyBits12, wallet.MnemonicEntropyBits24:
	default:
		return fmt.Errorf("wallet.mnemonic_bits must be %d or %d",
			wallet.MnemonicEntropyBits12, wallet.MnemonicEntropyBits24)
	}

	if !klog.ValidLevel(cfg.Log.Level) {
		return fmt.Errorf("log.level must be debug, info, warn, error or off")
	}
	return nil
}
