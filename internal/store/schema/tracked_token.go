package schema

import "time"

// TrackedToken is an address registered for ingestion on a chain,
// independent of whether its metadata has been fetched yet.
type TrackedToken struct {
	ID        uint64    `gorm:"primaryKey;autoIncrement" json:"id"`
	ChainID   uint64    `gorm:"not null;uniqueIndex:idx_tracked_chain_address" json:"chainID"`
	Address   string    `gorm:"size:42;not null;uniqueIndex:idx_tracked_chain_address" json:"address"`
	Note      string    `gorm:"size:256" json:"note,omitempty"`
	CreatedAt time.Time `json:"createdAt"`

	Chain *Chain `gorm:"foreignKey:ChainID" json:"chain,omitempty"`
}

func (TrackedToken) TableName() string {
	return "tracked_tokens"
}
