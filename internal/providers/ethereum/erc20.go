package ethereum

import (
	"context"
	"fmt"
	"math/big"
	"sort"
	"strings"
	"sync"

	goEthereum "github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"

	"github.com/superchain/token-explorer/internal/adapter"
	"github.com/superchain/token-explorer/internal/domain"
)

const erc20ABIJSON = `[
	{"constant":true,"inputs":[],"name":"name","outputs":[{"name":"","type":"string"}],"type":"function"},
	{"constant":true,"inputs":[],"name":"symbol","outputs":[{"name":"","type":"string"}],"type":"function"},
	{"constant":true,"inputs":[],"name":"decimals","outputs":[{"name":"","type":"uint8"}],"type":"function"},
	{"constant":true,"inputs":[],"name":"totalSupply","outputs":[{"name":"","type":"uint256"}],"type":"function"}
]`

var (
	erc20ABI     abi.ABI
	erc20ABIOnce sync.Once
	erc20ABIErr  error
)

func loadERC20ABI() (abi.ABI, error) {
	erc20ABIOnce.Do(func() {
		erc20ABI, erc20ABIErr = abi.JSON(strings.NewReader(erc20ABIJSON))
	})
	return erc20ABI, erc20ABIErr
}

// ERC20Fetcher reads the standard ERC-20 accessors for a contract
// through a chain gateway.
type ERC20Fetcher struct {
	gateway *Gateway
}

// NewERC20Fetcher creates a fetcher bound to the given gateway.
func NewERC20Fetcher(gateway *Gateway) *ERC20Fetcher {
	return &ERC20Fetcher{gateway: gateway}
}

// FetchMetadata reads name, symbol, decimals and totalSupply for the
// contract. The result is all-or-nothing: any failed read fails the
// whole fetch with ErrMetadataIncomplete, so a token is never stored
// with partial identity.
func (f *ERC20Fetcher) FetchMetadata(ctx context.Context, address string) (*domain.TokenMetadata, error) {
	contractABI, err := loadERC20ABI()
	if err != nil {
		return nil, err
	}

	checksummed := domain.NormalizeAddress(address)
	contract := common.HexToAddress(checksummed)

	var name, symbol string
	var decimals uint8
	var totalSupply *big.Int

	if err := f.callString(ctx, contractABI, contract, "name", &name); err != nil {
		return nil, fmt.Errorf("%w: name: %w", domain.ErrMetadataIncomplete, err)
	}
	if err := f.callString(ctx, contractABI, contract, "symbol", &symbol); err != nil {
		return nil, fmt.Errorf("%w: symbol: %w", domain.ErrMetadataIncomplete, err)
	}
	if err := f.call(ctx, contractABI, contract, "decimals", &decimals); err != nil {
		return nil, fmt.Errorf("%w: decimals: %w", domain.ErrMetadataIncomplete, err)
	}
	if err := f.call(ctx, contractABI, contract, "totalSupply", &totalSupply); err != nil {
		return nil, fmt.Errorf("%w: totalSupply: %w", domain.ErrMetadataIncomplete, err)
	}

	return &domain.TokenMetadata{
		Address:     checksummed,
		Name:        name,
		Symbol:      symbol,
		Decimals:    decimals,
		TotalSupply: totalSupply.String(),
	}, nil
}

func (f *ERC20Fetcher) call(ctx context.Context, contractABI abi.ABI, contract common.Address, method string, out interface{}) error {
	data, err := contractABI.Pack(method)
	if err != nil {
		return fmt.Errorf("failed to pack %s call: %w", method, err)
	}

	var result []byte
	if err := f.gateway.CallWithRetry(ctx, func(ctx context.Context, client adapter.EthClient) error {
		var callErr error
		result, callErr = client.CallContract(ctx, goEthereum.CallMsg{
			To:   &contract,
			Data: data,
		}, nil)
		return callErr
	}); err != nil {
		return err
	}

	if err := contractABI.UnpackIntoInterface(out, method, result); err != nil {
		return fmt.Errorf("failed to unpack %s result: %w", method, err)
	}
	return nil
}

// callString unpacks a string accessor, falling back to a bytes32
// decode for pre-standard tokens that return fixed-width names.
func (f *ERC20Fetcher) callString(ctx context.Context, contractABI abi.ABI, contract common.Address, method string, out *string) error {
	data, err := contractABI.Pack(method)
	if err != nil {
		return fmt.Errorf("failed to pack %s call: %w", method, err)
	}

	var result []byte
	if err := f.gateway.CallWithRetry(ctx, func(ctx context.Context, client adapter.EthClient) error {
		var callErr error
		result, callErr = client.CallContract(ctx, goEthereum.CallMsg{
			To:   &contract,
			Data: data,
		}, nil)
		return callErr
	}); err != nil {
		return err
	}

	if err := contractABI.UnpackIntoInterface(out, method, result); err != nil {
		if len(result) == 32 {
			*out = string(common.TrimRightZeroes(result))
			return nil
		}
		return fmt.Errorf("failed to unpack %s result: %w", method, err)
	}
	return nil
}

// FetchDeployment locates the block a contract was deployed in by
// binary-searching CodeAt over the chain history, then scans that block
// for the creating transaction. Provenance is best effort; callers
// treat an error here as missing data, not a pipeline failure.
func (f *ERC20Fetcher) FetchDeployment(ctx context.Context, address string) (*domain.DeploymentInfo, error) {
	contract := common.HexToAddress(domain.NormalizeAddress(address))

	var latest uint64
	if err := f.gateway.CallWithRetry(ctx, func(ctx context.Context, client adapter.EthClient) error {
		var err error
		latest, err = client.BlockNumber(ctx)
		return err
	}); err != nil {
		return nil, err
	}

	var info *domain.DeploymentInfo
	err := f.gateway.CallWithRetry(ctx, func(ctx context.Context, client adapter.EthClient) error {
		var searchErr error
		// First block where the contract has code
		deployBlock := uint64(sort.Search(int(latest+1), func(i int) bool {
			if searchErr != nil {
				return true
			}
			code, err := client.CodeAt(ctx, contract, big.NewInt(int64(i)))
			if err != nil {
				searchErr = err
				return true
			}
			return len(code) > 0
		}))
		if searchErr != nil {
			return searchErr
		}
		if deployBlock > latest {
			return fmt.Errorf("no code found for %s up to block %d", contract.Hex(), latest)
		}

		block, err := client.BlockByNumber(ctx, new(big.Int).SetUint64(deployBlock))
		if err != nil {
			return err
		}

		for index, tx := range block.Transactions() {
			if tx.To() != nil {
				continue
			}
			receipt, err := client.TransactionReceipt(ctx, tx.Hash())
			if err != nil {
				return err
			}
			if receipt.ContractAddress != contract {
				continue
			}
			sender, err := client.TransactionSender(ctx, tx, block.Hash(), uint(index))
			if err != nil {
				return err
			}
			info = &domain.DeploymentInfo{
				Deployer:    sender.Hex(),
				BlockNumber: deployBlock,
				TxHash:      tx.Hash().Hex(),
			}
			return nil
		}
		return fmt.Errorf("deployment transaction for %s not found in block %d", contract.Hex(), deployBlock)
	})
	if err != nil {
		return nil, err
	}
	return info, nil
}
