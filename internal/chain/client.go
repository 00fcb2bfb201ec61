package chain

import (
	"context"
	"fmt"
	"math/big"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	klog "github.com/odyssey-tools/devwallet/internal/log"
	"github.com/odyssey-tools/devwallet/internal/rpcclient"
)

// Client issues read-only queries against one network.
type Client struct {
	network Network
	rpc     *rpcclient.Client
}

// NewClient creates a client for network with the given HTTP timeout.
// A zero timeout selects rpcclient.DefaultTimeout.
func NewClient(network Network, timeout time.Duration) (*Client, error) {
	if strings.TrimSpace(network.RPCURL) == "" {
		return nil, fmt.Errorf("network %q has no RPC URL", network.Name)
	}
	return &Client{
		network: network,
		rpc:     rpcclient.NewWithTimeout(network.RPCURL, timeout),
	}, nil
}

// Network returns the network definition the client was built with.
func (c *Client) Network() Network {
	return c.network
}

// Balance returns the latest balance of address in base units (wei).
func (c *Client) Balance(ctx context.Context, address string) (*big.Int, error) {
	if !common.IsHexAddress(address) {
		return nil, fmt.Errorf("invalid address %q", address)
	}

	var result string
	if err := c.rpc.CallContext(ctx, "eth_getBalance", []interface{}{address, "latest"}, &result); err != nil {
		return nil, c.netErr("get balance", err)
	}

	balance, err := hexutil.DecodeBig(result)
	if err != nil {
		return nil, c.netErr("get balance", fmt.Errorf("decode quantity %q: %w", result, err))
	}

	klog.Chain.Debug().
		Str("address", address).
		Str("balance", c.network.FormatAmount(balance)).
		Str("explorer", c.network.AddressURL(address)).
		Msg("balance fetched")
	return balance, nil
}

// ChainID returns the chain id reported by the endpoint.
func (c *Client) ChainID(ctx context.Context) (uint64, error) {
	var result string
	if err := c.rpc.CallContext(ctx, "eth_chainId", nil, &result); err != nil {
		return 0, c.netErr("get chain id", err)
	}
	id, err := hexutil.DecodeUint64(result)
	if err != nil {
		return 0, c.netErr("get chain id", fmt.Errorf("decode quantity %q: %w", result, err))
	}
	return id, nil
}

// VerifyNetwork checks that the endpoint serves the configured chain.
func (c *Client) VerifyNetwork(ctx context.Context) error {
	id, err := c.ChainID(ctx)
	if err != nil {
		return err
	}
	if id != c.network.ChainID {
		return &ChainMismatchError{Want: c.network.ChainID, Got: id}
	}
	return nil
}

func (c *Client) netErr(op string, err error) error {
	return &NetworkError{Op: op, Endpoint: c.rpc.Endpoint(), Err: err}
}
