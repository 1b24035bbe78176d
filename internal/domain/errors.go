package domain

import "errors"

var (
	// ErrNotConnected is returned when the RPC endpoint is unreachable or
	// the liveness check fails; fatal for that chain's cycle
	ErrNotConnected = errors.New("rpc endpoint not connected")

	// ErrCallExhausted is returned when a read operation used up its
	// bounded retries; the token is skipped for the cycle
	ErrCallExhausted = errors.New("rpc call retries exhausted")

	// ErrMetadataIncomplete is returned when any of the four required
	// ERC-20 accessors could not be read; no partial record is produced
	ErrMetadataIncomplete = errors.New("token metadata incomplete")
)
