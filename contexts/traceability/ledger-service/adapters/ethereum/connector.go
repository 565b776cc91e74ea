// Package ethereum adapts an EVM JSON-RPC endpoint to the ledger connector
// port. The FoodSupplyChain contract exposes only current state per item;
// everything historical is reconstructed off-ledger by the synthesizer.
package ethereum

import (
	"context"
	"fmt"
	"math/big"
	"strings"

	goethereum "github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/ethclient"

	"foodtrace/contexts/traceability/ledger-service/domain/entities"
)

// Read-only subset of the FoodSupplyChain contract ABI. Mutating operations
// (harvest, process, package, sell, buy, confirmDelivery) belong to UI flows
// outside this service.
const ledgerABI = `[
	{"name":"skuCount","type":"function","stateMutability":"view","inputs":[],"outputs":[{"name":"","type":"uint256"}]},
	{"name":"fetchItem","type":"function","stateMutability":"view","inputs":[{"name":"_sku","type":"uint256"}],"outputs":[{"name":"","type":"uint256"},{"name":"","type":"string"},{"name":"","type":"uint8"},{"name":"","type":"address"},{"name":"","type":"address"},{"name":"","type":"address"},{"name":"","type":"address"},{"name":"","type":"uint256"}]}
]`

type Connector struct {
	client   *ethclient.Client
	contract common.Address
	abi      abi.ABI
}

// Dial connects to the JSON-RPC endpoint and binds the ledger contract
// address. The address format is validated here; whether code is actually
// deployed there is the refresh cycle's precondition check.
func Dial(ctx context.Context, rpcURL, contractAddress string) (*Connector, error) {
	if !common.IsHexAddress(contractAddress) {
		return nil, fmt.Errorf("invalid ledger address format: %s", contractAddress)
	}

	parsed, err := abi.JSON(strings.NewReader(ledgerABI))
	if err != nil {
		return nil, fmt.Errorf("parse ledger abi: %w", err)
	}

	client, err := ethclient.DialContext(ctx, rpcURL)
	if err != nil {
		return nil, fmt.Errorf("dial ledger rpc: %w", err)
	}

	return &Connector{
		client:   client,
		contract: common.HexToAddress(contractAddress),
		abi:      parsed,
	}, nil
}

func (c *Connector) Close() {
	if c != nil && c.client != nil {
		c.client.Close()
	}
}

func (c *Connector) NetworkID(ctx context.Context) (uint64, error) {
	id, err := c.client.NetworkID(ctx)
	if err != nil {
		return 0, fmt.Errorf("read network id: %w", err)
	}
	return id.Uint64(), nil
}

func (c *Connector) CodeExistsAt(ctx context.Context, address string) (bool, error) {
	if !common.IsHexAddress(address) {
		return false, fmt.Errorf("invalid ledger address format: %s", address)
	}
	code, err := c.client.CodeAt(ctx, common.HexToAddress(address), nil)
	if err != nil {
		return false, fmt.Errorf("read code at %s: %w", address, err)
	}
	return len(code) > 0, nil
}

func (c *Connector) ItemCount(ctx context.Context) (uint64, error) {
	values, err := c.call(ctx, "skuCount")
	if err != nil {
		return 0, err
	}
	count, ok := values[0].(*big.Int)
	if !ok {
		return 0, fmt.Errorf("skuCount returned unexpected type %T", values[0])
	}
	return count.Uint64(), nil
}

func (c *Connector) FetchItem(ctx context.Context, index uint64) (entities.RawItem, error) {
	values, err := c.call(ctx, "fetchItem", new(big.Int).SetUint64(index))
	if err != nil {
		return entities.RawItem{}, err
	}
	if len(values) != 8 {
		return entities.RawItem{}, fmt.Errorf("fetchItem returned %d values, expected 8", len(values))
	}

	sku, okSKU := values[0].(*big.Int)
	name, okName := values[1].(string)
	state, okState := values[2].(uint8)
	price, okPrice := values[7].(*big.Int)
	if !okSKU || !okName || !okState || !okPrice {
		return entities.RawItem{}, fmt.Errorf("fetchItem result could not be decoded for index %d", index)
	}

	slots := make([]string, 4)
	for i := 0; i < 4; i++ {
		address, ok := values[3+i].(common.Address)
		if !ok {
			return entities.RawItem{}, fmt.Errorf("fetchItem result could not be decoded for index %d", index)
		}
		slots[i] = strings.ToLower(address.Hex())
	}

	return entities.RawItem{
		SKU:          sku.Uint64(),
		Name:         name,
		State:        entities.ItemState(state),
		OriginFarmer: slots[0],
		Processor:    slots[1],
		Retailer:     slots[2],
		Consumer:     slots[3],
		Price:        price,
	}, nil
}

func (c *Connector) call(ctx context.Context, method string, args ...any) ([]any, error) {
	data, err := c.abi.Pack(method, args...)
	if err != nil {
		return nil, fmt.Errorf("pack %s: %w", method, err)
	}

	msg := goethereum.CallMsg{To: &c.contract, Data: data}
	out, err := c.client.CallContract(ctx, msg, nil)
	if err != nil {
		return nil, fmt.Errorf("call %s: %w", method, err)
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("call %s returned no data", method)
	}

	values, err := c.abi.Unpack(method, out)
	if err != nil {
		return nil, fmt.Errorf("unpack %s: %w", method, err)
	}
	if len(values) == 0 {
		return nil, fmt.Errorf("call %s returned no values", method)
	}
	return values, nil
}
