package schema

import "time"

// TokenGroup links deployments of the same asset across chains. Groups
// are curated manually; ingestion never writes them.
type TokenGroup struct {
	ID     uint64 `gorm:"primaryKey;autoIncrement" json:"id"`
	Name   string `gorm:"size:256;not null" json:"name"`
	Symbol string `gorm:"size:64;not null;index" json:"symbol"`
	// CanonicalAddress is the asset's home-chain deployment, when known
	CanonicalAddress *string   `gorm:"size:42;index" json:"canonicalAddress,omitempty"`
	CreatedAt        time.Time `json:"createdAt"`

	Members []TokenGroupMember `gorm:"foreignKey:GroupID" json:"members,omitempty"`
}

func (TokenGroup) TableName() string {
	return "token_groups"
}

// TokenGroupMember binds one token to a group.
type TokenGroupMember struct {
	ID      uint64 `gorm:"primaryKey;autoIncrement" json:"id"`
	GroupID uint64 `gorm:"not null;uniqueIndex:idx_group_token" json:"groupID"`
	TokenID uint64 `gorm:"not null;uniqueIndex:idx_group_token" json:"tokenID"`

	Token *Token `gorm:"foreignKey:TokenID" json:"token,omitempty"`
}

func (TokenGroupMember) TableName() string {
	return "token_group_members"
}
