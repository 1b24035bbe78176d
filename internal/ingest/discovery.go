package ingest

import (
	"context"

	"github.com/superchain/token-explorer/internal/domain"
	"github.com/superchain/token-explorer/internal/store"
)

// TokenSource yields the token addresses to ingest for a chain. The
// orchestrator merges all sources and deduplicates by checksummed
// address, so overlapping sources are safe.
//
//go:generate mockgen -source=discovery.go -destination=../mocks/discovery.go -package=mocks -mock_names=TokenSource=MockTokenSource
type TokenSource interface {
	Tokens(ctx context.Context, chainSlug string, chainID uint64) ([]domain.TrackedToken, error)
}

// StaticSource serves operator-configured addresses keyed by chain slug.
type StaticSource struct {
	bySlug map[string][]string
}

// NewStaticSource builds a source from the config file's token lists.
func NewStaticSource(bySlug map[string][]string) *StaticSource {
	return &StaticSource{bySlug: bySlug}
}

func (s *StaticSource) Tokens(_ context.Context, chainSlug string, _ uint64) ([]domain.TrackedToken, error) {
	addresses := s.bySlug[chainSlug]
	tokens := make([]domain.TrackedToken, 0, len(addresses))
	for _, addr := range addresses {
		tokens = append(tokens, domain.TrackedToken{Address: addr, Note: "config"})
	}
	return tokens, nil
}

// StoreSource serves addresses registered through the tracking API.
type StoreSource struct {
	store store.Store
}

// NewStoreSource builds a source over the tracked_tokens table.
func NewStoreSource(s store.Store) *StoreSource {
	return &StoreSource{store: s}
}

func (s *StoreSource) Tokens(ctx context.Context, _ string, chainID uint64) ([]domain.TrackedToken, error) {
	rows, err := s.store.ListTrackedTokens(ctx, chainID)
	if err != nil {
		return nil, err
	}
	tokens := make([]domain.TrackedToken, 0, len(rows))
	for _, row := range rows {
		tokens = append(tokens, domain.TrackedToken{Address: row.Address, Note: row.Note})
	}
	return tokens, nil
}
