package adapter

import (
	"context"
	"math/big"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/ethclient"
)

// EthClient wraps the go-ethereum client methods used by the ingestion
// pipeline so they can be mocked
//
//go:generate mockgen -source=ethclient.go -destination=../mocks/ethclient.go -package=mocks -mock_names=EthClient=MockEthClient,EthClientDialer=MockEthClientDialer
type EthClient interface {
	BlockNumber(ctx context.Context) (uint64, error)
	ChainID(ctx context.Context) (*big.Int, error)
	BalanceAt(ctx context.Context, account common.Address, blockNumber *big.Int) (*big.Int, error)
	CallContract(ctx context.Context, msg ethereum.CallMsg, blockNumber *big.Int) ([]byte, error)
	CodeAt(ctx context.Context, account common.Address, blockNumber *big.Int) ([]byte, error)
	BlockByNumber(ctx context.Context, number *big.Int) (*types.Block, error)
	TransactionReceipt(ctx context.Context, txHash common.Hash) (*types.Receipt, error)
	TransactionSender(ctx context.Context, tx *types.Transaction, block common.Hash, index uint) (common.Address, error)
	Close()
}

// EthClientDialer creates EthClient connections
type EthClientDialer interface {
	Dial(ctx context.Context, rawURL string) (EthClient, error)
}

// RealEthClientDialer dials real JSON-RPC endpoints
type RealEthClientDialer struct{}

// NewEthClientDialer creates a new real dialer
func NewEthClientDialer() EthClientDialer {
	return &RealEthClientDialer{}
}

// Dial connects to the given JSON-RPC endpoint
func (d *RealEthClientDialer) Dial(ctx context.Context, rawURL string) (EthClient, error) {
	client, err := ethclient.DialContext(ctx, rawURL)
	if err != nil {
		return nil, err
	}
	return client, nil
}
