package ingest

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/superchain/token-explorer/internal/adapter"
	"github.com/superchain/token-explorer/internal/domain"
	"github.com/superchain/token-explorer/internal/logger"
	"github.com/superchain/token-explorer/internal/providers/coingecko"
	"github.com/superchain/token-explorer/internal/providers/ethereum"
	"github.com/superchain/token-explorer/internal/retry"
	"github.com/superchain/token-explorer/internal/store"
	"github.com/superchain/token-explorer/internal/store/schema"
)

// MetadataFetcher reads on-chain token data for one chain connection.
//
//go:generate mockgen -source=orchestrator.go -destination=../mocks/fetcher.go -package=mocks -mock_names=MetadataFetcher=MockMetadataFetcher
type MetadataFetcher interface {
	FetchMetadata(ctx context.Context, address string) (*domain.TokenMetadata, error)
	FetchDeployment(ctx context.Context, address string) (*domain.DeploymentInfo, error)
}

// FetcherFactory opens a MetadataFetcher for an RPC endpoint. The
// returned closer releases the connection when the chain is done.
type FetcherFactory func(rpcURL string) (MetadataFetcher, func())

// ChainSummary reports the outcome of one chain within a cycle.
type ChainSummary struct {
	Slug      string
	Skipped   bool
	Processed int
	Succeeded int
	Failed    int
}

// CycleSummary reports the outcome of one full ingestion cycle.
type CycleSummary struct {
	Chains    []ChainSummary
	StartedAt time.Time
	Duration  time.Duration
}

// Succeeded totals successful tokens across all chains.
func (s CycleSummary) Succeeded() int {
	total := 0
	for _, c := range s.Chains {
		total += c.Succeeded
	}
	return total
}

// Orchestrator runs the ingestion pipeline: for each configured chain
// it resolves the chain row, gathers tracked tokens, and runs the
// per-token fetch/upsert sequence. Failures are contained at the token
// and chain level; a cycle always completes.
type Orchestrator struct {
	store      store.Store
	market     coingecko.Client
	clock      adapter.Clock
	newFetcher FetcherFactory
	sources    []TokenSource

	chains     []domain.ChainConfig
	tokenPause time.Duration
}

// NewOrchestrator wires an orchestrator. sources are queried in order
// for every chain.
func NewOrchestrator(
	s store.Store,
	market coingecko.Client,
	clock adapter.Clock,
	newFetcher FetcherFactory,
	sources []TokenSource,
	chains []domain.ChainConfig,
	tokenPause time.Duration,
) *Orchestrator {
	return &Orchestrator{
		store:      s,
		market:     market,
		clock:      clock,
		newFetcher: newFetcher,
		sources:    sources,
		chains:     chains,
		tokenPause: tokenPause,
	}
}

// EthereumFetcherFactory is the production FetcherFactory: each chain
// gets its own lazily connected RPC gateway with the given retry policy.
func EthereumFetcherFactory(dialer adapter.EthClientDialer, clock adapter.Clock, policy retry.Policy) FetcherFactory {
	return func(rpcURL string) (MetadataFetcher, func()) {
		gateway := ethereum.NewGateway(dialer, clock, rpcURL, policy)
		return ethereum.NewERC20Fetcher(gateway), gateway.Close
	}
}

// RunCycle processes every configured chain once and returns a summary.
// It never returns an error: per-chain and per-token failures are
// logged and counted instead.
func (o *Orchestrator) RunCycle(ctx context.Context) CycleSummary {
	summary := CycleSummary{StartedAt: o.clock.Now()}

	for _, chain := range o.chains {
		summary.Chains = append(summary.Chains, o.runChain(ctx, chain))
		if ctx.Err() != nil {
			break
		}
	}

	summary.Duration = o.clock.Since(summary.StartedAt)
	logger.InfoCtx(ctx, "ingestion cycle finished",
		zap.Int("chains", len(summary.Chains)),
		zap.Int("succeeded", summary.Succeeded()),
		zap.Duration("duration", summary.Duration))
	return summary
}

func (o *Orchestrator) runChain(ctx context.Context, chain domain.ChainConfig) (result ChainSummary) {
	result = ChainSummary{Slug: chain.Slug}

	defer func() {
		if r := recover(); r != nil {
			logger.ErrorCtx(ctx, fmt.Errorf("panic processing chain %s: %v", chain.Slug, r))
			result.Skipped = result.Processed == 0
		}
	}()

	// Resolve the chain row first so a chain awaiting an endpoint still
	// exists for the read API and tracked-token registration.
	chainRow, err := o.store.GetOrCreateChain(ctx, chain)
	if err != nil {
		logger.ErrorCtx(ctx, fmt.Errorf("failed to resolve chain %s: %w", chain.Slug, err))
		result.Skipped = true
		return result
	}

	if chain.RPCURL == "" {
		logger.WarnCtx(ctx, "chain has no rpc endpoint, skipping",
			zap.String("chain", chain.Slug))
		result.Skipped = true
		return result
	}

	tokens, err := o.gatherTokens(ctx, chain.Slug, chainRow.ID)
	if err != nil {
		logger.ErrorCtx(ctx, fmt.Errorf("failed to gather tokens for chain %s: %w", chain.Slug, err))
		result.Skipped = true
		return result
	}
	if len(tokens) == 0 {
		logger.InfoCtx(ctx, "no tracked tokens for chain",
			zap.String("chain", chain.Slug))
		result.Skipped = true
		return result
	}

	fetcher, closeFetcher := o.newFetcher(chain.RPCURL)
	defer closeFetcher()

	for i, token := range tokens {
		if ctx.Err() != nil {
			return result
		}

		result.Processed++
		if err := o.processToken(ctx, chain, chainRow, fetcher, token); err != nil {
			result.Failed++
			logger.ErrorCtx(ctx, fmt.Errorf("failed to ingest token %s on %s: %w", token.Address, chain.Slug, err))
		} else {
			result.Succeeded++
		}

		if i < len(tokens)-1 && o.tokenPause > 0 {
			o.clock.Sleep(o.tokenPause)
		}
	}

	logger.InfoCtx(ctx, "chain processed",
		zap.String("chain", chain.Slug),
		zap.Int("succeeded", result.Succeeded),
		zap.Int("failed", result.Failed))
	return result
}

// gatherTokens merges all sources and deduplicates by checksummed address.
func (o *Orchestrator) gatherTokens(ctx context.Context, slug string, chainID uint64) ([]domain.TrackedToken, error) {
	seen := make(map[string]struct{})
	var tokens []domain.TrackedToken
	for _, source := range o.sources {
		found, err := source.Tokens(ctx, slug, chainID)
		if err != nil {
			return nil, err
		}
		for _, token := range found {
			if !domain.IsHexAddress(token.Address) {
				logger.WarnCtx(ctx, "skipping invalid token address",
					zap.String("chain", slug),
					zap.String("address", token.Address))
				continue
			}
			normalized := domain.NormalizeAddress(token.Address)
			if _, ok := seen[normalized]; ok {
				continue
			}
			seen[normalized] = struct{}{}
			token.Address = normalized
			tokens = append(tokens, token)
		}
	}
	return tokens, nil
}

func (o *Orchestrator) processToken(ctx context.Context, chain domain.ChainConfig, chainRow *schema.Chain, fetcher MetadataFetcher, token domain.TrackedToken) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic: %v", r)
		}
	}()

	metadata, err := fetcher.FetchMetadata(ctx, token.Address)
	if err != nil {
		return err
	}

	quote := o.market.FetchQuote(ctx, chain.CoinGeckoPlatform, metadata.Address)

	snapshot := domain.TokenSnapshot{
		ChainID:        chainRow.ID,
		Address:        metadata.Address,
		Name:           metadata.Name,
		Symbol:         metadata.Symbol,
		Decimals:       metadata.Decimals,
		TotalSupply:    metadata.TotalSupply,
		PriceUSD:       quote.PriceUSD,
		MarketCap:      quote.MarketCap,
		Volume24h:      quote.Volume24h,
		PriceChange24h: quote.PriceChange24h,
	}
	if quote.Outcome != domain.MarketDataFound {
		// Keep whatever market fields a previous run stored
		snapshot.PriceUSD = nil
		snapshot.MarketCap = nil
		snapshot.Volume24h = nil
		snapshot.PriceChange24h = nil
	}

	existing, err := o.store.GetToken(ctx, chainRow.ID, metadata.Address)
	if err != nil {
		return err
	}
	if existing == nil || existing.Deployer == nil {
		// Provenance is fetched once per token and is best effort
		if deployment, depErr := fetcher.FetchDeployment(ctx, metadata.Address); depErr != nil {
			logger.WarnCtx(ctx, "deployment provenance unavailable",
				zap.String("chain", chain.Slug),
				zap.String("address", metadata.Address),
				zap.Error(depErr))
		} else if deployment != nil {
			snapshot.Deployer = &deployment.Deployer
			snapshot.BlockNumber = &deployment.BlockNumber
			snapshot.TxHash = &deployment.TxHash
		}
	}

	stored, err := o.store.UpsertToken(ctx, snapshot)
	if err != nil {
		return err
	}

	if quote.HasPrice() {
		point := schema.TokenPrice{
			TokenID:    stored.ID,
			PriceUSD:   *quote.PriceUSD,
			MarketCap:  quote.MarketCap,
			Volume24h:  quote.Volume24h,
			TVL:        quote.TVL,
			RecordedAt: o.clock.Now(),
		}
		if err := o.store.AppendPricePoint(ctx, point); err != nil {
			return err
		}
	}

	logger.DebugCtx(ctx, "token ingested",
		zap.String("chain", chain.Slug),
		zap.String("symbol", metadata.Symbol),
		zap.String("address", metadata.Address),
		zap.String("market", string(quote.Outcome)))
	return nil
}
