package chain

import "fmt"

// NetworkError reports a failed request to the chain endpoint: transport
// failures, timeouts, non-2xx responses, JSON-RPC errors and malformed
// results.
type NetworkError struct {
	Op       string
	Endpoint string
	Err      error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("%s via %s: %v", e.Op, e.Endpoint, e.Err)
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}

// ChainMismatchError is returned when the endpoint serves a different chain
// than the configured network.
type ChainMismatchError struct {
	Want uint64
	Got  uint64
}

func (e *ChainMismatchError) Error() string {
	return fmt.Sprintf("endpoint serves chain %d, want %d", e.Got, e.Want)
}
