package store

import (
	"context"
	"time"

	"github.com/superchain/token-explorer/internal/domain"
	"github.com/superchain/token-explorer/internal/store/schema"
)

// Store is the persistence gateway. It owns all database access so the
// ingestion pipeline and the API never touch gorm directly.
//
//go:generate mockgen -source=store.go -destination=../mocks/store.go -package=mocks -mock_names=Store=MockStore
type Store interface {
	// GetChainBySlug returns the chain with the given slug, or nil if absent
	GetChainBySlug(ctx context.Context, slug string) (*schema.Chain, error)
	// GetOrCreateChain resolves the chain row for a configured chain,
	// creating it on first sight
	GetOrCreateChain(ctx context.Context, cfg domain.ChainConfig) (*schema.Chain, error)
	// ListChains returns all known chains ordered by name
	ListChains(ctx context.Context) ([]schema.Chain, error)

	// UpsertToken inserts or updates the token identified by
	// (snapshot.ChainID, snapshot.Address). Only fields present in the
	// snapshot are written; optional fields left nil keep their stored
	// values. The write is atomic.
	UpsertToken(ctx context.Context, snapshot domain.TokenSnapshot) (*schema.Token, error)
	// GetToken returns the token for a (chain, address) pair, or nil if absent
	GetToken(ctx context.Context, chainID uint64, address string) (*schema.Token, error)
	// GetTokenByID returns the token with the given row ID, or nil if absent
	GetTokenByID(ctx context.Context, id uint64) (*schema.Token, error)
	// ListTokens returns a page of tokens matching the query along with
	// the total match count
	ListTokens(ctx context.Context, query TokenQuery) ([]schema.Token, int64, error)
	// TrendingTokens returns tokens ordered by 24h price change descending
	TrendingTokens(ctx context.Context, limit int) ([]schema.Token, error)

	// AppendPricePoint records one price observation for a token
	AppendPricePoint(ctx context.Context, point schema.TokenPrice) error
	// QueryPricePointsSince returns a token's price points recorded at or
	// after the cutoff, ascending by time
	QueryPricePointsSince(ctx context.Context, tokenID uint64, since time.Time) ([]schema.TokenPrice, error)
	// GetLatestPrice returns a token's most recent price point, or nil
	GetLatestPrice(ctx context.Context, tokenID uint64) (*schema.TokenPrice, error)

	// ListTokenGroups returns manually curated cross-chain token groups
	// with their members
	ListTokenGroups(ctx context.Context) ([]schema.TokenGroup, error)

	// AddTrackedToken registers an address for ingestion on a chain.
	// Re-registering an existing pair is a no-op.
	AddTrackedToken(ctx context.Context, chainID uint64, address, note string) (*schema.TrackedToken, error)
	// ListTrackedTokens returns the addresses registered on a chain
	ListTrackedTokens(ctx context.Context, chainID uint64) ([]schema.TrackedToken, error)
}

// TokenQuery filters and pages the token listing.
type TokenQuery struct {
	// ChainID restricts results to one chain when non-nil
	ChainID *uint64
	// Search matches name or symbol, case-insensitive substring
	Search string
	// Sort is one of "volume", "market_cap", "price"; anything else
	// sorts by symbol ascending
	Sort   string
	Offset int
	Limit  int
}
