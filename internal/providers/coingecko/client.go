package coingecko

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/superchain/token-explorer/internal/adapter"
	"github.com/superchain/token-explorer/internal/domain"
	"github.com/superchain/token-explorer/internal/logger"
)

const apiKeyHeader = "x-cg-demo-api-key"

// Client queries the CoinGecko contract endpoint for token market data.
// Requests are spaced at least minInterval apart per client instance to
// stay under the public tier rate limit.
//
//go:generate mockgen -source=client.go -destination=../../mocks/coingecko.go -package=mocks -mock_names=Client=MockMarketClient
type Client interface {
	// FetchQuote looks up market data for a token contract on a platform.
	// Absence from the API is an outcome, not an error; transport and
	// server failures degrade to MarketDataUnavailable.
	FetchQuote(ctx context.Context, platform, address string) domain.MarketQuote
}

type client struct {
	httpClient  adapter.HTTPClient
	clock       adapter.Clock
	baseURL     string
	apiKey      string
	minInterval time.Duration

	mu          sync.Mutex
	lastRequest time.Time
}

// NewClient creates a CoinGecko client. apiKey may be empty for the
// anonymous tier.
func NewClient(httpClient adapter.HTTPClient, clock adapter.Clock, baseURL, apiKey string, minInterval time.Duration) Client {
	return &client{
		httpClient:  httpClient,
		clock:       clock,
		baseURL:     strings.TrimRight(baseURL, "/"),
		apiKey:      apiKey,
		minInterval: minInterval,
	}
}

type contractResponse struct {
	MarketData struct {
		CurrentPrice struct {
			USD *float64 `json:"usd"`
		} `json:"current_price"`
		MarketCap struct {
			USD *float64 `json:"usd"`
		} `json:"market_cap"`
		TotalVolume struct {
			USD *float64 `json:"usd"`
		} `json:"total_volume"`
		TotalValueLocked struct {
			USD *float64 `json:"usd"`
		} `json:"total_value_locked"`
		PriceChangePercentage24h *float64 `json:"price_change_percentage_24h"`
	} `json:"market_data"`
}

func (c *client) FetchQuote(ctx context.Context, platform, address string) domain.MarketQuote {
	if platform == "" {
		return domain.MarketQuote{Outcome: domain.MarketDataNotListed}
	}

	c.throttle()

	endpoint := fmt.Sprintf("%s/coins/%s/contract/%s",
		c.baseURL,
		url.PathEscape(platform),
		url.PathEscape(strings.ToLower(address)))

	headers := map[string]string{}
	if c.apiKey != "" {
		headers[apiKeyHeader] = c.apiKey
	}

	var resp contractResponse
	status, err := c.httpClient.GetJSON(ctx, endpoint, headers, &resp)
	if err != nil {
		logger.WarnCtx(ctx, "market data request failed",
			zap.String("platform", platform),
			zap.String("address", address),
			zap.Error(err))
		return domain.MarketQuote{Outcome: domain.MarketDataUnavailable}
	}

	switch {
	case status == http.StatusOK:
		return domain.MarketQuote{
			Outcome:        domain.MarketDataFound,
			PriceUSD:       resp.MarketData.CurrentPrice.USD,
			MarketCap:      resp.MarketData.MarketCap.USD,
			Volume24h:      resp.MarketData.TotalVolume.USD,
			PriceChange24h: resp.MarketData.PriceChangePercentage24h,
			TVL:            resp.MarketData.TotalValueLocked.USD,
		}
	case status == http.StatusNotFound:
		return domain.MarketQuote{Outcome: domain.MarketDataNotListed}
	default:
		logger.WarnCtx(ctx, "unexpected market data response",
			zap.String("platform", platform),
			zap.String("address", address),
			zap.Int("status", status))
		return domain.MarketQuote{Outcome: domain.MarketDataUnavailable}
	}
}

// throttle blocks until at least minInterval has passed since the
// previous request from this client.
func (c *client) throttle() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.lastRequest.IsZero() {
		if elapsed := c.clock.Since(c.lastRequest); elapsed < c.minInterval {
			c.clock.Sleep(c.minInterval - elapsed)
		}
	}
	c.lastRequest = c.clock.Now()
}
