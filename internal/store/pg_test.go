package store_test

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/superchain/token-explorer/internal/domain"
	"github.com/superchain/token-explorer/internal/store"
	"github.com/superchain/token-explorer/internal/store/schema"
)

func setupTestStore(t *testing.T) *store.PGStore {
	t.Helper()
	ctx := context.Background()

	uri := os.Getenv("TEST_DB_URI")
	if uri == "" {
		container, err := tcpostgres.Run(ctx, "postgres:16-alpine",
			tcpostgres.WithDatabase("explorer_test"),
			tcpostgres.WithUsername("test"),
			tcpostgres.WithPassword("test"),
			testcontainers.WithWaitStrategy(
				wait.ForLog("database system is ready to accept connections").
					WithOccurrence(2).
					WithStartupTimeout(60*time.Second)))
		if err != nil {
			t.Skipf("postgres container unavailable: %v", err)
		}
		t.Cleanup(func() {
			_ = container.Terminate(ctx)
		})

		uri, err = container.ConnectionString(ctx, "sslmode=disable")
		require.NoError(t, err)
	}

	db, err := gorm.Open(postgres.Open(uri), &gorm.Config{})
	require.NoError(t, err)

	pg := store.NewPGStore(db)
	require.NoError(t, pg.AutoMigrate())
	return pg
}

func createTestChain(t *testing.T, pg *store.PGStore, slug string, chainID int64) *schema.Chain {
	t.Helper()
	chain, err := pg.GetOrCreateChain(context.Background(), domain.ChainConfig{
		Name:    slug,
		Slug:    slug,
		ChainID: chainID,
	})
	require.NoError(t, err)
	return chain
}

func TestGetOrCreateChainIsIdempotent(t *testing.T) {
	pg := setupTestStore(t)

	first := createTestChain(t, pg, "base", 8453)
	second := createTestChain(t, pg, "base", 8453)
	assert.Equal(t, first.ID, second.ID)

	missing, err := pg.GetChainBySlug(context.Background(), "no-such-chain")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestGetOrCreateChainPersistsEndpointAndActiveFlag(t *testing.T) {
	pg := setupTestStore(t)
	ctx := context.Background()

	chain, err := pg.GetOrCreateChain(ctx, domain.ChainConfig{
		Name:    "Base Endpoint",
		Slug:    "base-endpoint",
		ChainID: 84535,
		RPCURL:  "https://mainnet.base.org",
	})
	require.NoError(t, err)
	require.NotNil(t, chain.RPCURL)
	assert.Equal(t, "https://mainnet.base.org", *chain.RPCURL)
	assert.True(t, chain.IsActive)

	// A chain awaiting an endpoint is still created, with no URL stored
	pending, err := pg.GetOrCreateChain(ctx, domain.ChainConfig{
		Name:    "Pending",
		Slug:    "pending-endpoint",
		ChainID: 84536,
	})
	require.NoError(t, err)
	assert.Nil(t, pending.RPCURL)
	assert.True(t, pending.IsActive)
}

func TestUpsertTokenIsIdempotentPerChainAddress(t *testing.T) {
	pg := setupTestStore(t)
	ctx := context.Background()
	chain := createTestChain(t, pg, "base-upsert", 84530)

	price := 1.25
	snapshot := domain.TokenSnapshot{
		ChainID:     chain.ID,
		Address:     "0x833589fCD6eDb6E08f4c7C32D4f71b54bdA02913",
		Name:        "USD Coin",
		Symbol:      "USDC",
		Decimals:    6,
		TotalSupply: "1000000000",
		PriceUSD:    &price,
	}

	first, err := pg.UpsertToken(ctx, snapshot)
	require.NoError(t, err)
	second, err := pg.UpsertToken(ctx, snapshot)
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)

	tokens, total, err := pg.ListTokens(ctx, store.TokenQuery{ChainID: &chain.ID, Limit: 10})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	assert.Len(t, tokens, 1)
}

func TestUpsertTokenPreservesAbsentMarketFields(t *testing.T) {
	pg := setupTestStore(t)
	ctx := context.Background()
	chain := createTestChain(t, pg, "base-partial", 84531)

	price := 3.5
	withMarket := domain.TokenSnapshot{
		ChainID:     chain.ID,
		Address:     "0x1111111111111111111111111111111111111111",
		Name:        "Token",
		Symbol:      "TK",
		Decimals:    18,
		TotalSupply: "1000",
		PriceUSD:    &price,
	}
	stored, err := pg.UpsertToken(ctx, withMarket)
	require.NoError(t, err)

	// A later run without market data must not wipe the stored price
	withoutMarket := withMarket
	withoutMarket.PriceUSD = nil
	withoutMarket.TotalSupply = "2000"
	_, err = pg.UpsertToken(ctx, withoutMarket)
	require.NoError(t, err)

	token, err := pg.GetTokenByID(ctx, stored.ID)
	require.NoError(t, err)
	require.NotNil(t, token)
	assert.Equal(t, "2000", token.TotalSupply)
	require.NotNil(t, token.PriceUSD)
	assert.Equal(t, 3.5, *token.PriceUSD)
}

func TestUpsertTokenSafetyAndLiquidityReports(t *testing.T) {
	pg := setupTestStore(t)
	ctx := context.Background()
	chain := createTestChain(t, pg, "base-safety", 84537)

	base := domain.TokenSnapshot{
		ChainID:  chain.ID,
		Address:  "0x7777777777777777777777777777777777777777",
		Name:     "Sketchy",
		Symbol:   "SKT",
		Decimals: 18,
	}

	// A snapshot without reports gets the schema defaults on insert
	inserted, err := pg.UpsertToken(ctx, base)
	require.NoError(t, err)
	assert.False(t, inserted.HasLiquidity)
	assert.False(t, inserted.IsVerified)
	assert.False(t, inserted.IsHoneypot)
	assert.Nil(t, inserted.SafetyScore)
	assert.Nil(t, inserted.RiskLevel)

	liquidity := 125000.0
	score := 72
	risk := domain.RiskLevelMedium
	withReports := base
	withReports.Liquidity = &domain.LiquidityReport{
		HasLiquidity: true,
		LiquidityUSD: &liquidity,
		V2Pools:      []string{"0x8888888888888888888888888888888888888888"},
	}
	withReports.Safety = &domain.SafetyReport{
		SafetyScore: &score,
		RiskLevel:   &risk,
		IsVerified:  true,
		IsHoneypot:  true,
	}
	_, err = pg.UpsertToken(ctx, withReports)
	require.NoError(t, err)

	// A later run without reports must not wipe them
	_, err = pg.UpsertToken(ctx, base)
	require.NoError(t, err)

	token, err := pg.GetTokenByID(ctx, inserted.ID)
	require.NoError(t, err)
	require.NotNil(t, token)
	assert.True(t, token.HasLiquidity)
	require.NotNil(t, token.LiquidityUSD)
	assert.Equal(t, 125000.0, *token.LiquidityUSD)
	require.Len(t, token.V2Pools, 1)
	require.NotNil(t, token.SafetyScore)
	assert.Equal(t, 72, *token.SafetyScore)
	require.NotNil(t, token.RiskLevel)
	assert.Equal(t, domain.RiskLevelMedium, *token.RiskLevel)
	assert.True(t, token.IsVerified)
	assert.True(t, token.IsHoneypot)
}

func TestTrendingTokensRequireLiquidity(t *testing.T) {
	pg := setupTestStore(t)
	ctx := context.Background()
	chain := createTestChain(t, pg, "base-trending", 84538)

	lowVolume, highVolume, illiquidVolume := 100.0, 900.0, 5000.0
	liquid := domain.LiquidityReport{HasLiquidity: true}
	for _, tok := range []domain.TokenSnapshot{
		{ChainID: chain.ID, Address: "0x9999999999999999999999999999999999999999",
			Symbol: "LOW", Name: "Low", Decimals: 18, Volume24h: &lowVolume, Liquidity: &liquid},
		{ChainID: chain.ID, Address: "0xaAaAaAaaAaAaAaaAaAAAAAAAAaaaAaAaAaaAaaAa",
			Symbol: "HIGH", Name: "High", Decimals: 18, Volume24h: &highVolume, Liquidity: &liquid},
		{ChainID: chain.ID, Address: "0xBbbBBBBbbBBBbbbBbbBbbbbBBbBbbbbBbBbbBBbB",
			Symbol: "DRY", Name: "No Pools", Decimals: 18, Volume24h: &illiquidVolume},
	} {
		_, err := pg.UpsertToken(ctx, tok)
		require.NoError(t, err)
	}

	trending, err := pg.TrendingTokens(ctx, 10)
	require.NoError(t, err)
	symbols := make([]string, 0, len(trending))
	for _, tok := range trending {
		if tok.ChainID == chain.ID {
			symbols = append(symbols, tok.Symbol)
		}
	}
	assert.Equal(t, []string{"HIGH", "LOW"}, symbols)
}

func TestListTokensSearchAndSort(t *testing.T) {
	pg := setupTestStore(t)
	ctx := context.Background()
	chain := createTestChain(t, pg, "base-list", 84534)

	volumes := map[string]float64{"USDC": 500, "USDT": 900, "WETH": 100}
	addresses := map[string]string{
		"USDC": "0x4444444444444444444444444444444444444444",
		"USDT": "0x5555555555555555555555555555555555555555",
		"WETH": "0x6666666666666666666666666666666666666666",
	}
	for symbol, volume := range volumes {
		v := volume
		_, err := pg.UpsertToken(ctx, domain.TokenSnapshot{
			ChainID:   chain.ID,
			Address:   addresses[symbol],
			Name:      symbol + " Token",
			Symbol:    symbol,
			Decimals:  18,
			Volume24h: &v,
		})
		require.NoError(t, err)
	}

	tokens, total, err := pg.ListTokens(ctx, store.TokenQuery{
		ChainID: &chain.ID,
		Search:  "usd",
		Sort:    "volume",
		Limit:   10,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	require.Len(t, tokens, 2)
	assert.Equal(t, "USDT", tokens[0].Symbol)
	assert.Equal(t, "USDC", tokens[1].Symbol)
}

func TestPricePointsAreAppendOnlyAndOrdered(t *testing.T) {
	pg := setupTestStore(t)
	ctx := context.Background()
	chain := createTestChain(t, pg, "base-prices", 84532)

	token, err := pg.UpsertToken(ctx, domain.TokenSnapshot{
		ChainID:  chain.ID,
		Address:  "0x2222222222222222222222222222222222222222",
		Name:     "Priced",
		Symbol:   "PRC",
		Decimals: 18,
	})
	require.NoError(t, err)

	tvl := 2500000.0
	base := time.Now().UTC().Truncate(time.Second)
	for i, offset := range []time.Duration{-3 * time.Hour, -1 * time.Hour, -2 * time.Hour} {
		point := schema.TokenPrice{
			TokenID:    token.ID,
			PriceUSD:   float64(i + 1),
			RecordedAt: base.Add(offset),
		}
		if i == 1 {
			point.TVL = &tvl
		}
		require.NoError(t, pg.AppendPricePoint(ctx, point))
	}

	points, err := pg.QueryPricePointsSince(ctx, token.ID, base.Add(-24*time.Hour))
	require.NoError(t, err)
	require.Len(t, points, 3)
	for i := 1; i < len(points); i++ {
		assert.True(t, points[i].RecordedAt.After(points[i-1].RecordedAt))
	}

	// The cutoff excludes older points
	recent, err := pg.QueryPricePointsSince(ctx, token.ID, base.Add(-90*time.Minute))
	require.NoError(t, err)
	assert.Len(t, recent, 1)

	latest, err := pg.GetLatestPrice(ctx, token.ID)
	require.NoError(t, err)
	require.NotNil(t, latest)
	assert.Equal(t, 2.0, latest.PriceUSD)
	require.NotNil(t, latest.TVL)
	assert.Equal(t, tvl, *latest.TVL)
}

func TestAddTrackedTokenIgnoresDuplicates(t *testing.T) {
	pg := setupTestStore(t)
	ctx := context.Background()
	chain := createTestChain(t, pg, "base-tracked", 84533)

	address := "0x3333333333333333333333333333333333333333"
	first, err := pg.AddTrackedToken(ctx, chain.ID, address, "listing request")
	require.NoError(t, err)
	second, err := pg.AddTrackedToken(ctx, chain.ID, address, "duplicate")
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)

	tracked, err := pg.ListTrackedTokens(ctx, chain.ID)
	require.NoError(t, err)
	require.Len(t, tracked, 1)
	assert.Equal(t, "listing request", tracked[0].Note)
}
