package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/superchain/token-explorer/internal/domain"
	"github.com/superchain/token-explorer/internal/store/schema"
)

// PGStore implements Store backed by Postgres through gorm.
type PGStore struct {
	db *gorm.DB
}

// NewPGStore creates a new Postgres-backed store.
func NewPGStore(db *gorm.DB) *PGStore {
	return &PGStore{db: db}
}

// AutoMigrate migrates all tables owned by the store.
func (s *PGStore) AutoMigrate() error {
	return s.db.AutoMigrate(
		&schema.Chain{},
		&schema.Token{},
		&schema.TokenPrice{},
		&schema.TrackedToken{},
		&schema.TokenGroup{},
		&schema.TokenGroupMember{},
	)
}

// ConfigureConnectionPool sets the underlying sql.DB pool limits.
func (s *PGStore) ConfigureConnectionPool(maxIdle, maxOpen int, maxLifetime time.Duration) error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return fmt.Errorf("failed to get sql.DB: %w", err)
	}
	sqlDB.SetMaxIdleConns(maxIdle)
	sqlDB.SetMaxOpenConns(maxOpen)
	sqlDB.SetConnMaxLifetime(maxLifetime)
	return nil
}

func (s *PGStore) GetChainBySlug(ctx context.Context, slug string) (*schema.Chain, error) {
	var chain schema.Chain
	if err := s.db.WithContext(ctx).Where("slug = ?", slug).First(&chain).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &chain, nil
}

func (s *PGStore) GetOrCreateChain(ctx context.Context, cfg domain.ChainConfig) (*schema.Chain, error) {
	chain := schema.Chain{
		Name:     cfg.Name,
		Slug:     cfg.Slug,
		ChainID:  cfg.ChainID,
		IsActive: true,
	}
	if cfg.RPCURL != "" {
		chain.RPCURL = &cfg.RPCURL
	}
	if err := s.db.WithContext(ctx).
		Where(schema.Chain{Slug: cfg.Slug}).
		FirstOrCreate(&chain).Error; err != nil {
		return nil, err
	}
	return &chain, nil
}

func (s *PGStore) ListChains(ctx context.Context) ([]schema.Chain, error) {
	var chains []schema.Chain
	if err := s.db.WithContext(ctx).Order("name ASC").Find(&chains).Error; err != nil {
		return nil, err
	}
	return chains, nil
}

// UpsertToken writes the snapshot in one statement keyed on
// (chain_id, address). The update column list is built from the fields
// the snapshot actually carries, so a run without market data or
// liquidity/safety reports leaves previously stored values untouched.
// A fresh insert without those reports gets the schema defaults.
func (s *PGStore) UpsertToken(ctx context.Context, snapshot domain.TokenSnapshot) (*schema.Token, error) {
	token := schema.Token{
		ChainID:         snapshot.ChainID,
		Address:         snapshot.Address,
		Name:            snapshot.Name,
		Symbol:          snapshot.Symbol,
		Decimals:        snapshot.Decimals,
		TotalSupply:     snapshot.TotalSupply,
		PriceUSD:        snapshot.PriceUSD,
		MarketCap:       snapshot.MarketCap,
		Volume24h:       snapshot.Volume24h,
		PriceChange24h:  snapshot.PriceChange24h,
		Deployer:        snapshot.Deployer,
		DeploymentBlock: snapshot.BlockNumber,
		DeploymentTx:    snapshot.TxHash,
	}

	updateColumns := []string{"name", "symbol", "decimals", "total_supply", "updated_at"}
	if snapshot.PriceUSD != nil {
		updateColumns = append(updateColumns, "price_usd")
	}
	if snapshot.MarketCap != nil {
		updateColumns = append(updateColumns, "market_cap")
	}
	if snapshot.Volume24h != nil {
		updateColumns = append(updateColumns, "volume24h")
	}
	if snapshot.PriceChange24h != nil {
		updateColumns = append(updateColumns, "price_change24h")
	}
	if snapshot.Deployer != nil {
		updateColumns = append(updateColumns, "deployer", "deployment_block", "deployment_tx")
	}
	if snapshot.Liquidity != nil {
		token.HasLiquidity = snapshot.Liquidity.HasLiquidity
		token.LiquidityUSD = snapshot.Liquidity.LiquidityUSD
		token.V2Pools = snapshot.Liquidity.V2Pools
		token.V3Pools = snapshot.Liquidity.V3Pools
		updateColumns = append(updateColumns,
			"has_liquidity", "liquidity_usd", "v2_pools", "v3_pools")
	}
	if snapshot.Safety != nil {
		token.SafetyScore = snapshot.Safety.SafetyScore
		token.RiskLevel = snapshot.Safety.RiskLevel
		token.IsVerified = snapshot.Safety.IsVerified
		token.IsHoneypot = snapshot.Safety.IsHoneypot
		token.HasBlacklist = snapshot.Safety.HasBlacklist
		token.HasMintFunction = snapshot.Safety.HasMintFunction
		token.BuyTaxPercent = snapshot.Safety.BuyTaxPercent
		token.SellTaxPercent = snapshot.Safety.SellTaxPercent
		token.MaxTxAmount = snapshot.Safety.MaxTxAmount
		token.HolderCount = snapshot.Safety.HolderCount
		token.TopHoldersPercent = snapshot.Safety.TopHoldersPercent
		updateColumns = append(updateColumns,
			"safety_score", "risk_level", "is_verified", "is_honeypot",
			"has_blacklist", "has_mint_function", "buy_tax_percent",
			"sell_tax_percent", "max_tx_amount", "holder_count",
			"top_holders_percent")
	}

	if err := s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "chain_id"}, {Name: "address"}},
			DoUpdates: clause.AssignmentColumns(updateColumns),
		}, clause.Returning{}).
		Create(&token).Error; err != nil {
		return nil, err
	}
	return &token, nil
}

func (s *PGStore) GetToken(ctx context.Context, chainID uint64, address string) (*schema.Token, error) {
	var token schema.Token
	if err := s.db.WithContext(ctx).
		Where("chain_id = ? AND address = ?", chainID, address).
		First(&token).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &token, nil
}

func (s *PGStore) GetTokenByID(ctx context.Context, id uint64) (*schema.Token, error) {
	var token schema.Token
	if err := s.db.WithContext(ctx).
		Preload("Chain").
		Where("id = ?", id).
		First(&token).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &token, nil
}

func (s *PGStore) ListTokens(ctx context.Context, query TokenQuery) ([]schema.Token, int64, error) {
	q := s.db.WithContext(ctx).Model(&schema.Token{})
	if query.ChainID != nil {
		q = q.Where("chain_id = ?", *query.ChainID)
	}
	if query.Search != "" {
		pattern := "%" + query.Search + "%"
		q = q.Where("name ILIKE ? OR symbol ILIKE ?", pattern, pattern)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var order string
	switch query.Sort {
	case "volume":
		order = "volume24h DESC NULLS LAST"
	case "market_cap":
		order = "market_cap DESC NULLS LAST"
	case "price":
		order = "price_usd DESC NULLS LAST"
	default:
		order = "symbol ASC"
	}

	var tokens []schema.Token
	if err := q.
		Preload("Chain").
		Order(order).
		Offset(query.Offset).
		Limit(query.Limit).
		Find(&tokens).Error; err != nil {
		return nil, 0, err
	}
	return tokens, total, nil
}

// TrendingTokens returns tokens with known DEX liquidity ordered by
// 24h trading volume.
func (s *PGStore) TrendingTokens(ctx context.Context, limit int) ([]schema.Token, error) {
	var tokens []schema.Token
	if err := s.db.WithContext(ctx).
		Preload("Chain").
		Where("has_liquidity AND volume24h IS NOT NULL").
		Order("volume24h DESC").
		Limit(limit).
		Find(&tokens).Error; err != nil {
		return nil, err
	}
	return tokens, nil
}

func (s *PGStore) ListTokenGroups(ctx context.Context) ([]schema.TokenGroup, error) {
	var groups []schema.TokenGroup
	if err := s.db.WithContext(ctx).
		Preload("Members").
		Preload("Members.Token").
		Order("name ASC").
		Find(&groups).Error; err != nil {
		return nil, err
	}
	return groups, nil
}

func (s *PGStore) AppendPricePoint(ctx context.Context, point schema.TokenPrice) error {
	return s.db.WithContext(ctx).Create(&point).Error
}

func (s *PGStore) QueryPricePointsSince(ctx context.Context, tokenID uint64, since time.Time) ([]schema.TokenPrice, error) {
	var points []schema.TokenPrice
	if err := s.db.WithContext(ctx).
		Where("token_id = ? AND recorded_at >= ?", tokenID, since).
		Order("recorded_at ASC").
		Find(&points).Error; err != nil {
		return nil, err
	}
	return points, nil
}

func (s *PGStore) GetLatestPrice(ctx context.Context, tokenID uint64) (*schema.TokenPrice, error) {
	var point schema.TokenPrice
	if err := s.db.WithContext(ctx).
		Where("token_id = ?", tokenID).
		Order("recorded_at DESC").
		First(&point).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &point, nil
}

func (s *PGStore) AddTrackedToken(ctx context.Context, chainID uint64, address, note string) (*schema.TrackedToken, error) {
	tracked := schema.TrackedToken{
		ChainID: chainID,
		Address: address,
		Note:    note,
	}
	if err := s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "chain_id"}, {Name: "address"}},
			DoNothing: true,
		}).
		Create(&tracked).Error; err != nil {
		return nil, err
	}
	// DoNothing leaves the struct without the existing row's ID
	if tracked.ID == 0 {
		if err := s.db.WithContext(ctx).
			Where("chain_id = ? AND address = ?", chainID, address).
			First(&tracked).Error; err != nil {
			return nil, err
		}
	}
	return &tracked, nil
}

func (s *PGStore) ListTrackedTokens(ctx context.Context, chainID uint64) ([]schema.TrackedToken, error) {
	var tracked []schema.TrackedToken
	if err := s.db.WithContext(ctx).
		Where("chain_id = ?", chainID).
		Order("created_at ASC").
		Find(&tracked).Error; err != nil {
		return nil, err
	}
	return tracked, nil
}
