// Package devwallet ensures a local development wallet exists and reports
// its balance on the Story Odyssey testnet.
//
// The first call generates a BIP-39 wallet and stores it as JSON; later
// calls reuse the stored wallet. Every call queries the current balance.
package devwallet

import (
	"context"
	"errors"
	"fmt"
	"math/big"

	"github.com/odyssey-tools/devwallet/config"
	"github.com/odyssey-tools/devwallet/internal/chain"
	klog "github.com/odyssey-tools/devwallet/internal/log"
	"github.com/odyssey-tools/devwallet/internal/wallet"
	"github.com/odyssey-tools/devwallet/pkg/types"
	"github.com/rs/zerolog"
)

// Errors callers may match with errors.Is / errors.As.
var (
	ErrNotFound           = wallet.ErrNotFound
	ErrExists             = wallet.ErrExists
	ErrNotCorrupt         = wallet.ErrNotCorrupt
	ErrInvalidMnemonic    = wallet.ErrInvalidMnemonic
	ErrNoKeyMaterial      = wallet.ErrNoKeyMaterial
	ErrDerivationMismatch = wallet.ErrDerivationMismatch
)

type (
	CorruptError       = wallet.CorruptError
	NetworkError       = chain.NetworkError
	ChainMismatchError = chain.ChainMismatchError
)

// Store persists the single wallet record.
type Store interface {
	Path() string
	Read() (*types.WalletRecord, error)
	Create(r types.WalletRecord) error
	Quarantine() (string, error)
}

// Generator creates new wallet records.
type Generator interface {
	Generate() (types.WalletRecord, error)
}

// BalanceReader queries account balances.
type BalanceReader interface {
	Balance(ctx context.Context, address string) (*big.Int, error)
}

// NetworkVerifier checks that the chain endpoint serves the expected chain.
type NetworkVerifier interface {
	VerifyNetwork(ctx context.Context) error
}

// Result is the outcome of EnsureWallet.
type Result struct {
	Record  types.WalletRecord
	Balance *big.Int // wei
	// Created is true when this call generated and stored the wallet.
	Created bool
	// Quarantined is where an unusable wallet file was moved, if any.
	Quarantined string
}

// Service ensures the wallet exists and fetches its balance.
type Service struct {
	store    Store
	gen      Generator
	chain    BalanceReader
	verifier NetworkVerifier
	logger   zerolog.Logger
}

// Option configures a Service.
type Option func(*Service)

// WithNetworkCheck makes EnsureWallet verify the endpoint's chain id before
// querying the balance.
func WithNetworkCheck(v NetworkVerifier) Option {
	return func(s *Service) { s.verifier = v }
}

// WithLogger replaces the service logger.
func WithLogger(l zerolog.Logger) Option {
	return func(s *Service) { s.logger = l }
}

// NewService creates a Service from its collaborators.
func NewService(store Store, gen Generator, balances BalanceReader, opts ...Option) *Service {
	s := &Service{
		store:  store,
		gen:    gen,
		chain:  balances,
		logger: klog.Service,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// New wires a Service from configuration.
func New(cfg *config.Config) (*Service, error) {
	store, err := wallet.NewStore(cfg.WalletFile)
	if err != nil {
		return nil, fmt.Errorf("open wallet store: %w", err)
	}
	gen, err := wallet.NewGenerator(cfg.Wallet.MnemonicBits)
	if err != nil {
		return nil, fmt.Errorf("create generator: %w", err)
	}
	client, err := chain.NewClient(chain.StoryOdyssey.WithRPCURL(cfg.Chain.RPCURL), cfg.Chain.Timeout)
	if err != nil {
		return nil, fmt.Errorf("create chain client: %w", err)
	}

	var opts []Option
	if cfg.Chain.VerifyChainID {
		opts = append(opts, WithNetworkCheck(client))
	}
	return NewService(store, gen, client, opts...), nil
}

// EnsureWallet loads the stored wallet, creating it first if none exists,
// and returns it together with its current balance.
func (s *Service) EnsureWallet(ctx context.Context) (*Result, error) {
	res, err := s.ensureRecord()
	if err != nil {
		return nil, err
	}

	if s.verifier != nil {
		if err := s.verifier.VerifyNetwork(ctx); err != nil {
			return nil, fmt.Errorf("verify network: %w", err)
		}
	}

	balance, err := s.chain.Balance(ctx, res.Record.Address)
	if err != nil {
		return nil, fmt.Errorf("fetch balance: %w", err)
	}
	res.Balance = balance

	s.logger.Debug().
		Str("address", res.Record.Address).
		Str("balance", balance.String()).
		Msg("balance fetched")
	return res, nil
}

func (s *Service) ensureRecord() (*Result, error) {
	res := &Result{}

	r, err := s.store.Read()
	var corrupt *wallet.CorruptError
	switch {
	case err == nil:
		s.logger.Info().Str("path", s.store.Path()).Str("address", r.Address).Msg("reusing existing wallet")
		res.Record = *r
		return res, nil

	case errors.Is(err, wallet.ErrNotFound):

	case errors.As(err, &corrupt):
		s.logger.Warn().Err(corrupt.Err).Str("path", corrupt.Path).Msg("wallet file is unusable, moving it aside")
		dst, qerr := s.store.Quarantine()
		if errors.Is(qerr, wallet.ErrNotCorrupt) {
			// Another process replaced the file with a valid wallet.
			return s.adopt(res)
		}
		if qerr != nil {
			return nil, fmt.Errorf("quarantine wallet: %w", qerr)
		}
		res.Quarantined = dst

	default:
		return nil, fmt.Errorf("read wallet: %w", err)
	}

	created, err := s.gen.Generate()
	if err != nil {
		return nil, fmt.Errorf("generate wallet: %w", err)
	}

	err = s.store.Create(created)
	switch {
	case err == nil:
		s.logger.Info().Str("path", s.store.Path()).Str("address", created.Address).Msg("wallet not found, generated new wallet")
		res.Record = created
		res.Created = true
		return res, nil

	case errors.Is(err, wallet.ErrExists):
		// Another process created the wallet first; adopt its record.
		return s.adopt(res)

	default:
		return nil, fmt.Errorf("save wallet: %w", err)
	}
}

// adopt reuses a wallet another process stored while this one was
// deciding to create its own.
func (s *Service) adopt(res *Result) (*Result, error) {
	r, err := s.store.Read()
	if err != nil {
		return nil, fmt.Errorf("read wallet: %w", err)
	}
	s.logger.Info().Str("path", s.store.Path()).Str("address", r.Address).Msg("wallet created concurrently, reusing it")
	res.Record = *r
	res.Created = false
	return res, nil
}

// EnsureWallet loads configuration, then ensures the wallet exists and
// returns it with its balance in wei.
func EnsureWallet(ctx context.Context) (types.WalletRecord, *big.Int, error) {
	cfg, err := config.Load()
	if err != nil {
		return types.WalletRecord{}, nil, err
	}
	svc, err := New(cfg)
	if err != nil {
		return types.WalletRecord{}, nil, err
	}
	res, err := svc.EnsureWallet(ctx)
	if err != nil {
		return types.WalletRecord{}, nil, err
	}
	return res.Record, res.Balance, nil
}
