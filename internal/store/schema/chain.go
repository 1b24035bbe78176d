package schema

import "time"

// Chain is a blockchain network tokens are tracked on.
type Chain struct {
	ID        uint64    `gorm:"primaryKey;autoIncrement" json:"id"`
	Name      string    `gorm:"size:64;not null" json:"name"`
	Slug      string    `gorm:"size:64;not null;uniqueIndex" json:"slug"`
	ChainID   int64     `gorm:"not null;uniqueIndex" json:"chainID"`
	RPCURL    *string   `gorm:"size:512" json:"rpcURL,omitempty"`
	IsActive  bool      `gorm:"not null;default:true" json:"isActive"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (Chain) TableName() string {
	return "chains"
}
