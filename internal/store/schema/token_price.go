package schema

import "time"

// TokenPrice is a single append-only price observation for a token.
type TokenPrice struct {
	ID         uint64    `gorm:"primaryKey;autoIncrement" json:"id"`
	TokenID    uint64    `gorm:"not null;index:idx_token_prices_token_time" json:"tokenID"`
	PriceUSD   float64   `gorm:"not null" json:"priceUSD"`
	MarketCap  *float64  `json:"marketCap,omitempty"`
	Volume24h  *float64  `json:"volume24h,omitempty"`
	TVL        *float64  `json:"tvl,omitempty"`
	RecordedAt time.Time `gorm:"not null;index:idx_token_prices_token_time" json:"recordedAt"`

	Token *Token `gorm:"foreignKey:TokenID" json:"-"`
}

func (TokenPrice) TableName() string {
	return "token_prices"
}
