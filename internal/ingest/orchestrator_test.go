package ingest_test

import (
	"context"
	"errors"
	"os"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/superchain/token-explorer/internal/domain"
	"github.com/superchain/token-explorer/internal/ingest"
	"github.com/superchain/token-explorer/internal/logger"
	"github.com/superchain/token-explorer/internal/mocks"
	"github.com/superchain/token-explorer/internal/store/schema"
)

func TestMain(m *testing.M) {
	if err := logger.Initialize(logger.Config{Debug: true}); err != nil {
		panic(err)
	}
	os.Exit(m.Run())
}

var baseChain = domain.ChainConfig{
	Name:              "Base",
	Slug:              "base",
	ChainID:           8453,
	RPCURL:            "http://localhost:8545",
	CoinGeckoPlatform: "base",
}

type orchestratorMocks struct {
	store   *mocks.MockStore
	market  *mocks.MockMarketClient
	clock   *mocks.MockClock
	fetcher *mocks.MockMetadataFetcher
	source  *mocks.MockTokenSource
}

func newOrchestratorMocks(ctrl *gomock.Controller) orchestratorMocks {
	m := orchestratorMocks{
		store:   mocks.NewMockStore(ctrl),
		market:  mocks.NewMockMarketClient(ctrl),
		clock:   mocks.NewMockClock(ctrl),
		fetcher: mocks.NewMockMetadataFetcher(ctrl),
		source:  mocks.NewMockTokenSource(ctrl),
	}
	m.clock.EXPECT().Now().Return(time.Now()).AnyTimes()
	m.clock.EXPECT().Since(gomock.Any()).Return(time.Second).AnyTimes()
	m.clock.EXPECT().Sleep(gomock.Any()).AnyTimes()
	return m
}

func (m orchestratorMocks) newOrchestrator(chains []domain.ChainConfig) *ingest.Orchestrator {
	factory := func(rpcURL string) (ingest.MetadataFetcher, func()) {
		return m.fetcher, func() {}
	}
	return ingest.NewOrchestrator(
		m.store, m.market, m.clock, factory,
		[]ingest.TokenSource{m.source},
		chains, 100*time.Millisecond,
	)
}

func metadataFor(address, symbol string) *domain.TokenMetadata {
	return &domain.TokenMetadata{
		Address:     address,
		Name:        symbol + " Token",
		Symbol:      symbol,
		Decimals:    18,
		TotalSupply: "1000000",
	}
}

func TestRunCycleTokenFailureDoesNotAbortOthers(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m := newOrchestratorMocks(ctrl)

	addresses := []string{
		"0x1111111111111111111111111111111111111111",
		"0x2222222222222222222222222222222222222222",
		"0x3333333333333333333333333333333333333333",
	}
	tracked := make([]domain.TrackedToken, 0, len(addresses))
	for _, a := range addresses {
		tracked = append(tracked, domain.TrackedToken{Address: a})
	}

	chainRow := &schema.Chain{ID: 1, Slug: "base", ChainID: 8453}
	m.store.EXPECT().GetOrCreateChain(gomock.Any(), baseChain).Return(chainRow, nil)
	m.source.EXPECT().Tokens(gomock.Any(), "base", uint64(1)).Return(tracked, nil)

	price := 2.5
	for i, addr := range addresses {
		normalized := domain.NormalizeAddress(addr)
		if i == 1 {
			m.fetcher.EXPECT().FetchMetadata(gomock.Any(), normalized).
				Return(nil, errors.New("rpc exhausted"))
			continue
		}
		m.fetcher.EXPECT().FetchMetadata(gomock.Any(), normalized).
			Return(metadataFor(normalized, "TK"), nil)
		m.market.EXPECT().FetchQuote(gomock.Any(), "base", normalized).
			Return(domain.MarketQuote{Outcome: domain.MarketDataFound, PriceUSD: &price})
		m.store.EXPECT().GetToken(gomock.Any(), uint64(1), normalized).
			Return(&schema.Token{ID: uint64(i + 10), Deployer: strPtr("0xdead")}, nil)
		m.store.EXPECT().UpsertToken(gomock.Any(), gomock.Any()).
			Return(&schema.Token{ID: uint64(i + 10)}, nil)
		m.store.EXPECT().AppendPricePoint(gomock.Any(), gomock.Any()).Return(nil)
	}

	orchestrator := m.newOrchestrator([]domain.ChainConfig{baseChain})
	summary := orchestrator.RunCycle(context.Background())

	require.Len(t, summary.Chains, 1)
	assert.Equal(t, 3, summary.Chains[0].Processed)
	assert.Equal(t, 2, summary.Chains[0].Succeeded)
	assert.Equal(t, 1, summary.Chains[0].Failed)
	assert.Equal(t, 2, summary.Succeeded())
}

func TestRunCycleSkipsChainWithoutRPC(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m := newOrchestratorMocks(ctrl)

	noRPC := baseChain
	noRPC.RPCURL = ""

	// The chain row is still created so the read API and tracked-token
	// registration can see the chain before an endpoint is configured.
	m.store.EXPECT().GetOrCreateChain(gomock.Any(), noRPC).
		Return(&schema.Chain{ID: 1, Slug: "base", ChainID: 8453}, nil)

	orchestrator := m.newOrchestrator([]domain.ChainConfig{noRPC})
	summary := orchestrator.RunCycle(context.Background())

	require.Len(t, summary.Chains, 1)
	assert.True(t, summary.Chains[0].Skipped)
	assert.Equal(t, 0, summary.Chains[0].Processed)
}

func TestRunCycleDeduplicatesAddressCaseVariants(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m := newOrchestratorMocks(ctrl)

	tracked := []domain.TrackedToken{
		{Address: "0x833589fcd6edb6e08f4c7c32d4f71b54bda02913"},
		{Address: "0x833589FCD6EDB6E08F4C7C32D4F71B54BDA02913"},
	}
	checksummed := "0x833589fCD6eDb6E08f4c7C32D4f71b54bdA02913"

	chainRow := &schema.Chain{ID: 1, Slug: "base", ChainID: 8453}
	m.store.EXPECT().GetOrCreateChain(gomock.Any(), baseChain).Return(chainRow, nil)
	m.source.EXPECT().Tokens(gomock.Any(), "base", uint64(1)).Return(tracked, nil)

	// The case variants collapse into a single pipeline run
	m.fetcher.EXPECT().FetchMetadata(gomock.Any(), checksummed).
		Return(metadataFor(checksummed, "USDC"), nil)
	m.market.EXPECT().FetchQuote(gomock.Any(), "base", checksummed).
		Return(domain.MarketQuote{Outcome: domain.MarketDataNotListed})
	m.store.EXPECT().GetToken(gomock.Any(), uint64(1), checksummed).
		Return(nil, nil)
	m.fetcher.EXPECT().FetchDeployment(gomock.Any(), checksummed).
		Return(nil, errors.New("archive node required"))
	m.store.EXPECT().UpsertToken(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, snapshot domain.TokenSnapshot) (*schema.Token, error) {
			assert.Equal(t, checksummed, snapshot.Address)
			assert.Nil(t, snapshot.PriceUSD)
			return &schema.Token{ID: 5}, nil
		})

	orchestrator := m.newOrchestrator([]domain.ChainConfig{baseChain})
	summary := orchestrator.RunCycle(context.Background())

	require.Len(t, summary.Chains, 1)
	assert.Equal(t, 1, summary.Chains[0].Processed)
	assert.Equal(t, 1, summary.Chains[0].Succeeded)
}

func TestRunCycleAttachesDeploymentWhenMissing(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m := newOrchestratorMocks(ctrl)

	address := "0x4200000000000000000000000000000000000006"
	tracked := []domain.TrackedToken{{Address: address}}

	chainRow := &schema.Chain{ID: 1, Slug: "base", ChainID: 8453}
	m.store.EXPECT().GetOrCreateChain(gomock.Any(), baseChain).Return(chainRow, nil)
	m.source.EXPECT().Tokens(gomock.Any(), "base", uint64(1)).Return(tracked, nil)

	m.fetcher.EXPECT().FetchMetadata(gomock.Any(), address).
		Return(metadataFor(address, "WETH"), nil)
	m.market.EXPECT().FetchQuote(gomock.Any(), "base", address).
		Return(domain.MarketQuote{Outcome: domain.MarketDataUnavailable})
	m.store.EXPECT().GetToken(gomock.Any(), uint64(1), address).Return(nil, nil)
	m.fetcher.EXPECT().FetchDeployment(gomock.Any(), address).
		Return(&domain.DeploymentInfo{
			Deployer:    "0xdEAD000000000000000042069420694206942069",
			BlockNumber: 1,
			TxHash:      "0xabc",
		}, nil)
	m.store.EXPECT().UpsertToken(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, snapshot domain.TokenSnapshot) (*schema.Token, error) {
			require.NotNil(t, snapshot.Deployer)
			assert.Equal(t, "0xdEAD000000000000000042069420694206942069", *snapshot.Deployer)
			require.NotNil(t, snapshot.BlockNumber)
			assert.Equal(t, uint64(1), *snapshot.BlockNumber)
			return &schema.Token{ID: 9}, nil
		})

	orchestrator := m.newOrchestrator([]domain.ChainConfig{baseChain})
	summary := orchestrator.RunCycle(context.Background())

	assert.Equal(t, 1, summary.Succeeded())
}

func TestRunCycleMarketNotListedSkipsPricePoint(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m := newOrchestratorMocks(ctrl)

	address := "0x1111111111111111111111111111111111111111"
	tracked := []domain.TrackedToken{{Address: address}}

	chainRow := &schema.Chain{ID: 2, Slug: "base", ChainID: 8453}
	m.store.EXPECT().GetOrCreateChain(gomock.Any(), baseChain).Return(chainRow, nil)
	m.source.EXPECT().Tokens(gomock.Any(), "base", uint64(2)).Return(tracked, nil)

	m.fetcher.EXPECT().FetchMetadata(gomock.Any(), address).
		Return(metadataFor(address, "OBSCURE"), nil)
	m.market.EXPECT().FetchQuote(gomock.Any(), "base", address).
		Return(domain.MarketQuote{Outcome: domain.MarketDataNotListed})
	m.store.EXPECT().GetToken(gomock.Any(), uint64(2), address).
		Return(&schema.Token{ID: 4, Deployer: strPtr("0xdead")}, nil)
	m.store.EXPECT().UpsertToken(gomock.Any(), gomock.Any()).
		Return(&schema.Token{ID: 4}, nil)
	// No AppendPricePoint expectation: a not-listed token records nothing

	orchestrator := m.newOrchestrator([]domain.ChainConfig{baseChain})
	summary := orchestrator.RunCycle(context.Background())

	assert.Equal(t, 1, summary.Succeeded())
}

func TestRunCycleSourceFailureSkipsChain(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m := newOrchestratorMocks(ctrl)

	chainRow := &schema.Chain{ID: 1, Slug: "base", ChainID: 8453}
	m.store.EXPECT().GetOrCreateChain(gomock.Any(), baseChain).Return(chainRow, nil)
	m.source.EXPECT().Tokens(gomock.Any(), "base", uint64(1)).
		Return(nil, errors.New("database unavailable"))

	orchestrator := m.newOrchestrator([]domain.ChainConfig{baseChain})
	summary := orchestrator.RunCycle(context.Background())

	require.Len(t, summary.Chains, 1)
	assert.True(t, summary.Chains[0].Skipped)
}

func TestRunCyclePricePointCarriesTVL(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m := newOrchestratorMocks(ctrl)

	address := "0x2222222222222222222222222222222222222222"
	tracked := []domain.TrackedToken{{Address: address}}

	chainRow := &schema.Chain{ID: 1, Slug: "base", ChainID: 8453}
	m.store.EXPECT().GetOrCreateChain(gomock.Any(), baseChain).Return(chainRow, nil)
	m.source.EXPECT().Tokens(gomock.Any(), "base", uint64(1)).Return(tracked, nil)

	price := 1.0
	tvl := 1200000.0
	m.fetcher.EXPECT().FetchMetadata(gomock.Any(), address).
		Return(metadataFor(address, "USDC"), nil)
	m.market.EXPECT().FetchQuote(gomock.Any(), "base", address).
		Return(domain.MarketQuote{
			Outcome:  domain.MarketDataFound,
			PriceUSD: &price,
			TVL:      &tvl,
		})
	m.store.EXPECT().GetToken(gomock.Any(), uint64(1), address).
		Return(&schema.Token{ID: 7, Deployer: strPtr("0xdead")}, nil)
	m.store.EXPECT().UpsertToken(gomock.Any(), gomock.Any()).
		Return(&schema.Token{ID: 7}, nil)
	m.store.EXPECT().AppendPricePoint(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, point schema.TokenPrice) error {
			require.NotNil(t, point.TVL)
			assert.Equal(t, tvl, *point.TVL)
			return nil
		})

	orchestrator := m.newOrchestrator([]domain.ChainConfig{baseChain})
	summary := orchestrator.RunCycle(context.Background())

	assert.Equal(t, 1, summary.Succeeded())
}

func strPtr(s string) *string {
	return &s
}
