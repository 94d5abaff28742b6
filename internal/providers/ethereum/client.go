package ethereum

import (
	"context"
	"fmt"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"go.uber.org/zap"

	"github.com/CheckerNetwork/spark-observer/internal/adapter"
	"github.com/CheckerNetwork/spark-observer/internal/domain"
	"github.com/CheckerNetwork/spark-observer/internal/logger"
)

var (
	// transferEventSignature is the topic of the rewards contract's
	// Transfer(address indexed to, uint256 amount) event
	transferEventSignature = crypto.Keccak256Hash([]byte("Transfer(address,uint256)"))
)

// ChainClient exposes the reward-contract operations the observer needs
//
//go:generate mockgen -source=client.go -destination=../../mocks/chain.go -package=mocks -mock_names=ChainClient=MockChainClient
type ChainClient interface {
	// CurrentHeight returns the chain head block number
	CurrentHeight(ctx context.Context) (uint64, error)

	// QueryTransferEvents returns the normalized Transfer events emitted by the
	// rewards contract from fromBlock to the chain head. Undecodable log
	// entries are skipped, not fatal.
	QueryTransferEvents(ctx context.Context, fromBlock uint64) ([]domain.TransferEvent, error)

	// RewardsScheduledFor returns the on-chain scheduled rewards for an address
	RewardsScheduledFor(ctx context.Context, address string) (*big.Int, error)
}

type chainClient struct {
	contract common.Address
	client   adapter.EthClient
}

// NewChainClient creates a chain client bound to the rewards contract address
func NewChainClient(contractAddress string, client adapter.EthClient) ChainClient {
	return &chainClient{
		contract: common.HexToAddress(contractAddress),
		client:   client,
	}
}

// CurrentHeight returns the chain head block number
func (c *chainClient) CurrentHeight(ctx context.Context) (uint64, error) {
	header, err := c.client.HeaderByNumber(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to get latest block: %w", err)
	}
	return header.Number.Uint64(), nil
}

// QueryTransferEvents returns the normalized Transfer events emitted by the
// rewards contract from fromBlock to the chain head
func (c *chainClient) QueryTransferEvents(ctx context.Context, fromBlock uint64) ([]domain.TransferEvent, error) {
	query := ethereum.FilterQuery{
		FromBlock: new(big.Int).SetUint64(fromBlock),
		Addresses: []common.Address{c.contract},
		Topics:    [][]common.Hash{{transferEventSignature}},
	}

	logs, err := c.client.FilterLogs(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query transfer events: %w", err)
	}

	events := make([]domain.TransferEvent, 0, len(logs))
	for _, vLog := range logs {
		event, ok := decodeTransferLog(vLog)
		if !ok {
			logger.Warn("Skipping undecodable log entry",
				zap.String("tx_hash", vLog.TxHash.Hex()),
				zap.Uint64("block", vLog.BlockNumber),
				zap.Int("topics", len(vLog.Topics)))
			continue
		}
		events = append(events, event)
	}

	return events, nil
}

// decodeTransferLog classifies a raw log as a Transfer event or rejects it.
// Transfer(address indexed to, uint256 amount): 2 topics, amount in data.
func decodeTransferLog(vLog types.Log) (domain.TransferEvent, bool) {
	if len(vLog.Topics) != 2 || vLog.Topics[0] != transferEventSignature {
		return domain.TransferEvent{}, false
	}
	if len(vLog.Data) < 32 {
		return domain.TransferEvent{}, false
	}

	return domain.TransferEvent{
		ToAddress:   common.BytesToAddress(vLog.Topics[1].Bytes()).Hex(),
		Amount:      new(big.Int).SetBytes(vLog.Data[0:32]),
		BlockNumber: vLog.BlockNumber,
	}, true
}

// RewardsScheduledFor returns the on-chain scheduled rewards for an address
func (c *chainClient) RewardsScheduledFor(ctx context.Context, address string) (*big.Int, error) {
	// rewardsScheduledFor(address) returns (uint256)
	rewardsABI, err := abi.JSON(strings.NewReader(`[{"constant":true,"inputs":[{"name":"participant","type":"address"}],"name":"rewardsScheduledFor","outputs":[{"name":"","type":"uint256"}],"payable":false,"stateMutability":"view","type":"function"}]`))
	if err != nil {
		return nil, fmt.Errorf("failed to parse ABI: %w", err)
	}

	data, err := rewardsABI.Pack("rewardsScheduledFor", common.HexToAddress(address))
	if err != nil {
		return nil, fmt.Errorf("failed to pack data: %w", err)
	}

	result, err := c.client.CallContract(ctx, ethereum.CallMsg{
		To:   &c.contract,
		Data: data,
	}, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to call contract: %w", err)
	}

	var rewards *big.Int
	if err := rewardsABI.UnpackIntoInterface(&rewards, "rewardsScheduledFor", result); err != nil {
		return nil, fmt.Errorf("failed to unpack result: %w", err)
	}

	return rewards, nil
}
