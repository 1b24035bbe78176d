package schema

import "time"

// Token is an ERC-20 token observed on a chain. A token is unique per
// (chain, address) pair; ingestion upserts against that key.
type Token struct {
	ID      uint64 `gorm:"primaryKey;autoIncrement" json:"id"`
	ChainID uint64 `gorm:"not null;uniqueIndex:idx_tokens_chain_address;index" json:"chainID"`
	Address string `gorm:"size:42;not null;uniqueIndex:idx_tokens_chain_address" json:"address"`

	Name        string `gorm:"size:256" json:"name"`
	Symbol      string `gorm:"size:64" json:"symbol"`
	Decimals    uint8  `json:"decimals"`
	TotalSupply string `gorm:"size:128" json:"totalSupply"`

	PriceUSD       *float64 `json:"priceUSD"`
	MarketCap      *float64 `json:"marketCap"`
	Volume24h      *float64 `json:"volume24h"`
	PriceChange24h *float64 `json:"priceChange24h"`

	HasLiquidity bool     `gorm:"not null;default:false;index" json:"hasLiquidity"`
	LiquidityUSD *float64 `json:"liquidityUSD,omitempty"`
	V2Pools      []string `gorm:"type:jsonb;serializer:json" json:"v2Pools,omitempty"`
	V3Pools      []string `gorm:"type:jsonb;serializer:json" json:"v3Pools,omitempty"`

	// Safety analysis. The boolean flags default to false on insert;
	// a snapshot without a safety report leaves stored values untouched.
	SafetyScore       *int     `gorm:"index" json:"safetyScore,omitempty"`
	RiskLevel         *string  `gorm:"size:16;index" json:"riskLevel,omitempty"`
	IsVerified        bool     `gorm:"not null;default:false;index" json:"isVerified"`
	IsHoneypot        bool     `gorm:"not null;default:false" json:"isHoneypot"`
	HasBlacklist      bool     `gorm:"not null;default:false" json:"hasBlacklist"`
	HasMintFunction   bool     `gorm:"not null;default:false" json:"hasMintFunction"`
	BuyTaxPercent     *float64 `json:"buyTaxPercent,omitempty"`
	SellTaxPercent    *float64 `json:"sellTaxPercent,omitempty"`
	MaxTxAmount       *string  `gorm:"size:128" json:"maxTxAmount,omitempty"`
	HolderCount       *int     `json:"holderCount,omitempty"`
	TopHoldersPercent *float64 `json:"topHoldersPercent,omitempty"`

	Deployer        *string `gorm:"size:42" json:"deployer,omitempty"`
	DeploymentBlock *uint64 `json:"deploymentBlock,omitempty"`
	DeploymentTx    *string `gorm:"size:66" json:"deploymentTx,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	Chain *Chain `gorm:"foreignKey:ChainID" json:"chain,omitempty"`
}

func (Token) TableName() string {
	return "tokens"
}
