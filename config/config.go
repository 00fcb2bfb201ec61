// Package config handles devwallet configuration.
//
// Settings are resolved in order of increasing precedence:
//   - Built-in defaults (Default)
//   - An optional devwallet.conf file beside the executable
//   - DEVWALLET_* environment variables
//
// With nothing set, the tool uses wallet.json beside the executable and the
// public Story Odyssey RPC endpoint.
package config

import (
	"os"
	"path/filepath"
	"time"
)

// File names looked up beside the executable.
const (
	WalletFileName = "wallet.json"
	ConfigFileName = "devwallet.conf"
)

// Config holds devwallet runtime configuration.
type Config struct {
	// WalletFile is the path of the JSON wallet record.
	WalletFile string `conf:"wallet.file" split_words:"true"`

	Chain  ChainConfig
	Wallet WalletConfig
	Log    LogConfig
}

// ChainConfig holds settings for the balance query.
type ChainConfig struct {
	RPCURL        string        `conf:"chain.rpc_url" envconfig:"RPC_URL"`
	Timeout       time.Duration `conf:"chain.timeout"`
	VerifyChainID bool          `conf:"chain.verify_chain_id" split_words:"true"`
}

// WalletConfig holds wallet generation settings.
type WalletConfig struct {
	// MnemonicBits is the entropy of new mnemonics: 128 (12 words) or 256 (24 words).
	MnemonicBits int `conf:"wallet.mnemonic_bits" split_words:"true"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level string `conf:"log.level"`
	File  string `conf:"log.file"`
	JSON  bool   `conf:"log.json"`
}

// ExecutableDir returns the directory holding the running binary, or the
// working directory if it cannot be determined.
func ExecutableDir() string {
	exe, err := os.Executable()
	if err != nil {
		return "."
	}
	if resolved, err := filepath.EvalSymlinks(exe); err == nil {
		exe = resolved
	}
	return filepath.Dir(exe)
}

// DefaultWalletFile returns wallet.json beside the executable.
func DefaultWalletFile() string {
	return filepath.Join(ExecutableDir(), WalletFileName)
}

// DefaultConfigFile returns devwallet.conf beside the executable.
func DefaultConfigFile() string {
	return filepath.Join(ExecutableDir(), ConfigFileName)
}
