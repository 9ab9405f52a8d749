// Package chain talks to the on-chain vault contract over the Core Blockchain
// RPC. Reads go through a bound contract; user-submitted split transactions
// are verified by fetching the raw transaction and decoding its calldata.
package chain

import (
	"context"
	"errors"
	"fmt"
	"log"
	"math/big"
	"strings"

	"bucketvault/internal/domain/entities"
	"bucketvault/internal/usecase/interfaces"

	"github.com/core-coin/go-core/v2/accounts/abi"
	"github.com/core-coin/go-core/v2/accounts/abi/bind"
	"github.com/core-coin/go-core/v2/common"
	"github.com/core-coin/go-core/v2/core/types"
	"github.com/core-coin/go-core/v2/xcbclient"
)

// VaultABI covers the operations the core consumes; the full contract surface
// is out of scope here.
const VaultABI = `[{"inputs":[{"internalType":"uint256","name":"amount","type":"uint256"},{"internalType":"uint256[5]","name":"weights","type":"uint256[5]"}],"name":"depositAndSplit","outputs":[],"stateMutability":"nonpayable","type":"function"},{"inputs":[{"internalType":"address","name":"user","type":"address"},{"internalType":"uint256","name":"amount","type":"uint256"},{"internalType":"uint256[5]","name":"weights","type":"uint256[5]"}],"name":"depositAndSplitFor","outputs":[],"stateMutability":"nonpayable","type":"function"},{"inputs":[{"internalType":"address","name":"user","type":"address"}],"name":"bucketBalancesOf","outputs":[{"internalType":"uint256[5]","name":"","type":"uint256[5]"}],"stateMutability":"view","type":"function"},{"inputs":[],"name":"supportsDelegatedDeposits","outputs":[{"internalType":"bool","name":"","type":"bool"}],"stateMutability":"view","type":"function"},{"anonymous":false,"inputs":[{"indexed":true,"internalType":"address","name":"user","type":"address"},{"indexed":true,"internalType":"bytes32","name":"bucket","type":"bytes32"},{"indexed":false,"internalType":"uint256","name":"amount","type":"uint256"}],"name":"BucketCredited","type":"event"}]`

const (
	// depositAndSplit(uint256,uint256[5])
	depositAndSplitSelector = "8f6c2b4a"

	selectorHexLen = 8
	wordHexLen     = 64
	splitWordCount = 6 // amount + 5 weights
)

// VaultLedger implements the on-chain vault collaborator.

type VaultLedger struct {
	apiURL       string
	vaultAddress common.Address
	client       *xcbclient.Client
	contract     *bind.BoundContract
	signer       types.Signer
}

var _ interfaces.IVaultLedger = (*VaultLedger)(nil)

func NewVaultLedger(apiURL, vaultAddress string) (*VaultLedger, error) {
	client, err := xcbclient.Dial(apiURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to the core RPC server: %w", err)
	}

	addr, err := common.HexToAddress(vaultAddress)
	if err != nil {
		return nil, fmt.Errorf("failed to parse vault contract address: %w", err)
	}

	parsedABI, err := abi.JSON(strings.NewReader(VaultABI))
	if err != nil {
		return nil, fmt.Errorf("failed to parse vault ABI: %w", err)
	}

	log.Printf("[vault][chain] connected url=%s vault=%s", apiURL, vaultAddress)
	return &VaultLedger{
		apiURL:       apiURL,
		vaultAddress: addr,
		client:       client,
		contract:     bind.NewBoundContract(addr, parsedABI, client, client, client),
		signer:       types.NewNucleusSigner(big.NewInt(int64(common.DefaultNetworkID))),
	}, nil
}

func (v *VaultLedger) Address() string {
	return v.vaultAddress.Hex()
}

func (v *VaultLedger) SupportsDelegatedDeposits(ctx context.Context) (bool, error) {
	var out []interface{}
	if err := v.contract.Call(&bind.CallOpts{Context: ctx}, &out, "supportsDelegatedDeposits"); err != nil {
		return false, fmt.Errorf("capability call failed: %w", err)
	}
	if len(out) != 1 {
		return false, errors.New("unexpected capability call output")
	}
	supported, ok := out[0].(bool)
	if !ok {
		return false, errors.New("unexpected capability call output type")
	}
	return supported, nil
}

func (v *VaultLedger) GetBucketBalances(ctx context.Context, walletAddress string) (entities.BucketCredits, error) {
	addr, err := common.HexToAddress(walletAddress)
	if err != nil {
		return nil, fmt.Errorf("failed to parse wallet address: %w", err)
	}

	var out []interface{}
	if err := v.contract.Call(&bind.CallOpts{Context: ctx}, &out, "bucketBalancesOf", addr); err != nil {
		return nil, fmt.Errorf("balance call failed: %w", err)
	}
	if len(out) != 1 {
		return nil, errors.New("unexpected balance call output")
	}
	raw, ok := out[0].([5]*big.Int)
	if !ok {
		return nil, errors.New("unexpected balance call output type")
	}

	balances := make(entities.BucketCredits, len(entities.AllBuckets))
	for i, b := range entities.AllBuckets {
		if !raw[i].IsInt64() {
			return nil, fmt.Errorf("bucket %s balance overflows int64", b)
		}
		balances[b] = raw[i].Int64()
	}
	return balances, nil
}

// SplitCallByHash fetches the transaction and its receipt, then decodes the
// depositAndSplit calldata so the executor can compare the on-chain effect
// against the cached bucket credits. A mined-but-reverted transaction is
// ErrTxFailed; Confirmed stays false only while the transaction is pending.
func (v *VaultLedger) SplitCallByHash(ctx context.Context, txHash string) (entities.SplitCall, error) {
	hash := common.HexToHash(txHash)

	tx, pending, err := v.client.TransactionByHash(ctx, hash)
	if err != nil {
		return entities.SplitCall{}, interfaces.ErrTxNotFound
	}
	if tx.To() == nil || tx.To().Hex() != v.vaultAddress.Hex() {
		return entities.SplitCall{}, interfaces.ErrNotSplitCall
	}

	sender, err := v.signer.Sender(tx)
	if err != nil {
		return entities.SplitCall{}, fmt.Errorf("failed to recover sender: %w", err)
	}

	amount, weights, err := decodeSplitCalldata(common.Bytes2Hex(tx.Data()))
	if err != nil {
		return entities.SplitCall{}, err
	}

	confirmed := false
	if !pending {
		receipt, err := v.client.TransactionReceipt(ctx, hash)
		if err != nil {
			return entities.SplitCall{}, interfaces.ErrTxNotFound
		}
		if receipt.Status != types.ReceiptStatusSuccessful {
			return entities.SplitCall{}, interfaces.ErrTxFailed
		}
		confirmed = true
	}

	return entities.SplitCall{
		Sender:    sender.Hex(),
		Amount:    amount,
		Weights:   weights,
		Confirmed: confirmed,
	}, nil
}

// decodeSplitCalldata unpacks depositAndSplit(uint256 amount, uint256[5]
// weights) from hex calldata. Arguments are static, so each lives in a fixed
// 32-byte word after the selector.
func decodeSplitCalldata(input string) (int64, entities.BucketWeights, error) {
	if len(input) < selectorHexLen+splitWordCount*wordHexLen {
		return 0, nil, interfaces.ErrNotSplitCall
	}
	if input[:selectorHexLen] != depositAndSplitSelector {
		return 0, nil, interfaces.ErrNotSplitCall
	}

	words := make([]*big.Int, splitWordCount)
	for i := 0; i < splitWordCount; i++ {
		start := selectorHexLen + i*wordHexLen
		words[i] = new(big.Int).SetBytes(common.Hex2Bytes(input[start : start+wordHexLen]))
	}

	if !words[0].IsInt64() {
		return 0, nil, fmt.Errorf("split amount overflows int64")
	}
	amount := words[0].Int64()

	weights := make(entities.BucketWeights, len(entities.AllBuckets))
	for i, b := range entities.AllBuckets {
		w := words[i+1]
		if !w.IsInt64() || w.Int64() > 100 {
			return 0, nil, fmt.Errorf("weight for %s out of range", b)
		}
		weights[b] = int(w.Int64())
	}
	return amount, weights, nil
}
