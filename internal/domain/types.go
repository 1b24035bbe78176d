package domain

import (
	"strings"

	"github.com/ethereum/go-ethereum/common"
)

// ChainConfig describes a network the ingestion worker knows how to process.
// Chains absent from the configuration table are skipped for the cycle.
type ChainConfig struct {
	Name string
	// Slug is the stable lowercase identifier (e.g. "base", "optimism")
	Slug string
	// ChainID is the EVM network ID
	ChainID int64
	// RPCURL is the JSON-RPC endpoint; empty means the chain cannot be ingested
	RPCURL string
	// CoinGeckoPlatform is the market API's venue key for this chain.
	// Empty means the chain has no market data coverage.
	CoinGeckoPlatform string
}

// TrackedToken is a token address designated for ingestion on a chain.
// Discovery sources normalize their entries into this record at the
// boundary, so the pipeline never deals with bare strings.
type TrackedToken struct {
	Address string
	// Note is an optional operator-supplied annotation (e.g. where the
	// address came from)
	Note string
}

// TokenMetadata is the result of reading the standard ERC-20 accessors.
// It is complete by construction: a fetch either yields all four fields
// or fails with ErrMetadataIncomplete.
type TokenMetadata struct {
	// Address is the checksummed contract address
	Address     string
	Name        string
	Symbol      string
	Decimals    uint8
	TotalSupply string
}

// DeploymentInfo is optional provenance for a token contract. It may be
// unavailable and never blocks metadata ingestion.
type DeploymentInfo struct {
	Deployer    string
	BlockNumber uint64
	TxHash      string
}

// MarketOutcome classifies a market data lookup. Absence is an expected
// outcome, not an error.
type MarketOutcome string

const (
	// MarketDataFound means the API returned a snapshot
	MarketDataFound MarketOutcome = "found"
	// MarketDataNotListed means the token is not covered by the market API
	// (404, or no platform key configured for the chain)
	MarketDataNotListed MarketOutcome = "not_listed"
	// MarketDataUnavailable means a transport or server error occurred;
	// logged and degraded, never escalated
	MarketDataUnavailable MarketOutcome = "unavailable"
)

// MarketQuote is one market data snapshot for a token. All value fields are
// optional; the API may return nulls even on a 200.
type MarketQuote struct {
	Outcome        MarketOutcome
	PriceUSD       *float64
	MarketCap      *float64
	Volume24h      *float64
	PriceChange24h *float64
	TVL            *float64
}

// HasPrice reports whether the quote carries a usable price for the
// time series.
func (q MarketQuote) HasPrice() bool {
	return q.Outcome == MarketDataFound && q.PriceUSD != nil
}

// Risk level buckets produced by safety analysis.
const (
	RiskLevelLow      = "LOW"
	RiskLevelMedium   = "MEDIUM"
	RiskLevelHigh     = "HIGH"
	RiskLevelVeryHigh = "VERY_HIGH"
)

// LiquidityReport describes a token's DEX liquidity. Pool addresses are
// optional detail; HasLiquidity is the gate trending queries filter on.
type LiquidityReport struct {
	HasLiquidity bool
	LiquidityUSD *float64
	V2Pools      []string
	V3Pools      []string
}

// SafetyReport carries contract safety analysis. Absent fields mean the
// analysis did not cover them, not that they are safe.
type SafetyReport struct {
	SafetyScore       *int
	RiskLevel         *string
	IsVerified        bool
	IsHoneypot        bool
	HasBlacklist      bool
	HasMintFunction   bool
	BuyTaxPercent     *float64
	SellTaxPercent    *float64
	MaxTxAmount       *string
	HolderCount       *int
	TopHoldersPercent *float64
}

// TokenSnapshot is the merged upsert payload for one token, keyed by
// (chain, address). On-chain fields are always present; market fields,
// liquidity/safety reports, and deployment provenance are optional. A
// nil report leaves stored values untouched; a fresh insert gets the
// schema defaults for the flags.
type TokenSnapshot struct {
	ChainID uint64
	// Address is the checksummed contract address
	Address     string
	Symbol      string
	Name        string
	Decimals    uint8
	TotalSupply string

	PriceUSD       *float64
	Volume24h      *float64
	MarketCap      *float64
	PriceChange24h *float64

	Liquidity *LiquidityReport
	Safety    *SafetyReport

	Deployer    *string
	BlockNumber *uint64
	TxHash      *string
}

// NormalizeAddress converts a hex contract address to its canonical
// checksummed form so differently-cased inputs resolve to one identity.
func NormalizeAddress(address string) string {
	return common.HexToAddress(address).Hex()
}

// IsHexAddress reports whether the string looks like an EVM address.
func IsHexAddress(address string) bool {
	return common.IsHexAddress(strings.TrimSpace(address))
}
