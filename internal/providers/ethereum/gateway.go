package ethereum

import (
	"context"
	"fmt"
	"math/big"
	"sync"

	"github.com/ethereum/go-ethereum/common"
	"go.uber.org/zap"

	"github.com/superchain/token-explorer/internal/adapter"
	"github.com/superchain/token-explorer/internal/domain"
	"github.com/superchain/token-explorer/internal/logger"
	"github.com/superchain/token-explorer/internal/retry"
)

// Gateway manages one JSON-RPC connection for a chain. The connection
// is established lazily on first use and verified with a block number
// probe before being handed out. Calls go through a bounded retry with
// linear backoff; the connection is torn down and re-dialed between
// attempts so a stale socket cannot poison the whole cycle.
type Gateway struct {
	dialer adapter.EthClientDialer
	clock  adapter.Clock
	url    string
	policy retry.Policy

	mu     sync.Mutex
	client adapter.EthClient
}

// NewGateway creates a gateway for the given endpoint. No connection is
// made until the first call.
func NewGateway(dialer adapter.EthClientDialer, clock adapter.Clock, url string, policy retry.Policy) *Gateway {
	return &Gateway{
		dialer: dialer,
		clock:  clock,
		url:    url,
		policy: policy,
	}
}

// ensureClient returns the live client, dialing and probing the
// endpoint if there is none.
func (g *Gateway) ensureClient(ctx context.Context) (adapter.EthClient, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.client != nil {
		return g.client, nil
	}

	client, err := g.dialer.Dial(ctx, g.url)
	if err != nil {
		return nil, fmt.Errorf("%w: dial %s: %v", domain.ErrNotConnected, g.url, err)
	}

	// Liveness probe; a dial can succeed against a dead endpoint
	if _, err := client.BlockNumber(ctx); err != nil {
		client.Close()
		return nil, fmt.Errorf("%w: probe %s: %v", domain.ErrNotConnected, g.url, err)
	}

	g.client = client
	return client, nil
}

// reset drops the current connection so the next attempt re-dials.
func (g *Gateway) reset() {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.client != nil {
		g.client.Close()
		g.client = nil
	}
}

// CallWithRetry runs fn against a live client, re-dialing and retrying
// with linear backoff on failure. When every attempt fails the last
// error is returned wrapped in ErrCallExhausted.
func (g *Gateway) CallWithRetry(ctx context.Context, fn func(ctx context.Context, client adapter.EthClient) error) error {
	attempt := 0
	err := retry.Do(ctx, g.clock, g.policy,
		func(ctx context.Context) error {
			attempt++
			client, err := g.ensureClient(ctx)
			if err != nil {
				return err
			}
			if err := fn(ctx, client); err != nil {
				logger.WarnCtx(ctx, "rpc call failed",
					zap.String("url", g.url),
					zap.Int("attempt", attempt),
					zap.Error(err))
				return err
			}
			return nil
		},
		func(ctx context.Context) {
			g.reset()
		})
	if err != nil {
		if ctx.Err() != nil {
			return err
		}
		return fmt.Errorf("%w: %w", domain.ErrCallExhausted, err)
	}
	return nil
}

// BlockNumber reads the latest block number through the retry path.
func (g *Gateway) BlockNumber(ctx context.Context) (uint64, error) {
	var number uint64
	err := g.CallWithRetry(ctx, func(ctx context.Context, client adapter.EthClient) error {
		n, err := client.BlockNumber(ctx)
		if err != nil {
			return err
		}
		number = n
		return nil
	})
	if err != nil {
		return 0, err
	}
	return number, nil
}

// Balance reads the native currency balance of an address through the
// retry path.
func (g *Gateway) Balance(ctx context.Context, address string) (*big.Int, error) {
	var balance *big.Int
	err := g.CallWithRetry(ctx, func(ctx context.Context, client adapter.EthClient) error {
		b, err := client.BalanceAt(ctx, common.HexToAddress(address), nil)
		if err != nil {
			return err
		}
		balance = b
		return nil
	})
	if err != nil {
		return nil, err
	}
	return balance, nil
}

// Close releases the underlying connection if one exists.
func (g *Gateway) Close() {
	g.reset()
}
