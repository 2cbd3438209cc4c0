package sui

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"

	"github.com/cordialsys/go-sui-sdk/v2/client"
	"github.com/cordialsys/go-sui-sdk/v2/move_types"
	"github.com/cordialsys/go-sui-sdk/v2/types"
	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/pkg/errors"
	porta "github.com/portasui/porta"
	"github.com/portasui/porta/chain/sui/ptb"
	clienterrors "github.com/portasui/porta/client/errors"
	"github.com/sirupsen/logrus"
	"golang.org/x/time/rate"
)

// Client for Sui
type Client struct {
	Network   *porta.NetworkConfig
	SuiClient *client.Client
	Builder   *TxBuilder

	limiter        *rate.Limiter
	sharedVersions *lru.Cache[ptb.ObjectID, uint64]
}

type SuiMethod string

var (
	getCheckpoints   SuiMethod = "sui_getCheckpoints"
	getObject        SuiMethod = "sui_getObject"
	dryRun           SuiMethod = "sui_dryRunTransactionBlock"
	executeTxBlock   SuiMethod = "sui_executeTransactionBlock"
	MaxCoinObjects   int       = 50
	sharedCacheSize  int       = 256
	DefaultGasBudget uint64    = 500_000_000
)

func (m SuiMethod) String() string {
	return string(m)
}

// NewClient returns a new Sui Client
func NewClient(cfg *porta.NetworkConfig) (*Client, error) {
	suiClient, err := client.Dial(cfg.URL)
	if err != nil {
		return nil, errors.Wrapf(err, "could not dial %s", cfg.URL)
	}
	limit := rate.Inf
	if cfg.RateLimit > 0 {
		limit = rate.Limit(cfg.RateLimit)
	}
	sharedVersions, err := lru.New[ptb.ObjectID, uint64](sharedCacheSize)
	if err != nil {
		return nil, err
	}
	builder, _ := NewTxBuilder(cfg)
	return &Client{
		Network:        cfg,
		SuiClient:      suiClient,
		Builder:        builder,
		limiter:        rate.NewLimiter(limit, 1),
		sharedVersions: sharedVersions,
	}, nil
}

func (c *Client) wait(ctx context.Context) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return clienterrors.Errorf(clienterrors.NetworkError, "rate limit: %v", err)
	}
	return nil
}

func (c *Client) call(ctx context.Context, resp interface{}, method SuiMethod, args ...interface{}) error {
	if err := c.wait(ctx); err != nil {
		return err
	}
	logrus.WithField("method", method).Debug("sui rpc")
	if err := c.SuiClient.CallContext(ctx, resp, method, args...); err != nil {
		return clienterrors.Errorf(CheckError(err), "%s: %v", method, err)
	}
	return nil
}

type Checkpoint struct {
	Epoch          string `json:"epoch"`
	SequenceNumber string `json:"sequenceNumber"`
	Digest         string `json:"digest"`
	TimestampMs    string `json:"timestampMs"`
}

func (ch *Checkpoint) GetEpoch() uint64 {
	return porta.NewAmountBlockchainFromStr(ch.Epoch).Uint64()
}

type Checkpoints struct {
	Data []*Checkpoint `json:"data"`
}

func (c *Client) FetchLatestCheckpoint(ctx context.Context) (*Checkpoint, error) {
	resp := &Checkpoints{}
	// get last 1 checkpoint, descending order
	if err := c.call(ctx, resp, getCheckpoints, nil, 1, true); err != nil {
		return nil, err
	}
	if len(resp.Data) == 0 {
		return nil, errors.New("no checkpoints yet")
	}
	return resp.Data[0], nil
}

func (c *Client) EstimateGas(ctx context.Context) (porta.AmountBlockchain, error) {
	if err := c.wait(ctx); err != nil {
		return porta.AmountBlockchain{}, err
	}
	ref, err := c.SuiClient.GetReferenceGasPrice(ctx)
	if err != nil {
		return porta.NewAmountBlockchainFromUint64(0), clienterrors.Errorf(CheckError(err), "reference gas price: %v", err)
	}
	return porta.NewAmountBlockchainFromUint64(ref.Uint64()), nil
}

func (c *Client) GetAllCoinsFor(ctx context.Context, address porta.Address, coinType string) ([]*types.Coin, error) {
	allCoins := []*types.Coin{}

	owner, err := move_types.NewAccountAddressHex(string(address))
	if err != nil {
		return allCoins, err
	}
	var next *move_types.AccountAddress
	for {
		if err := c.wait(ctx); err != nil {
			return allCoins, err
		}
		coins, err := c.SuiClient.GetCoins(ctx, *owner, &coinType, next, 250)
		if err != nil {
			return allCoins, clienterrors.Errorf(CheckError(err), "get coins: %v", err)
		}
		for _, coin := range coins.Data {
			coin := coin
			allCoins = append(allCoins, &coin)
		}
		next = coins.NextCursor
		if next == nil || !coins.HasNextPage {
			break
		}
	}
	return allCoins, nil
}

func (c *Client) FetchBalance(ctx context.Context, address porta.Address, coinType string) (porta.AmountBlockchain, error) {
	total := porta.NewAmountBlockchainFromUint64(0)
	coins, err := c.GetAllCoinsFor(ctx, address, NormalizeCoinContract(coinType))
	if err != nil {
		return total, err
	}
	for _, coin := range coins {
		amt := porta.NewAmountBlockchainFromUint64(coin.Balance.Uint64())
		total = total.Add(&amt)
	}
	return total, nil
}

// FetchTxInput collects the gas coins, gas price and epoch for a migration sent by from.
func (c *Client) FetchTxInput(ctx context.Context, from porta.Address) (*TxInput, error) {
	gasCoins, err := c.GetAllCoinsFor(ctx, from, porta.NativeCoinType)
	if err != nil {
		return nil, err
	}
	latestCheckpoint, err := c.FetchLatestCheckpoint(ctx)
	if err != nil {
		return nil, err
	}

	input := NewTxInput()
	input.CurrentEpoch = latestCheckpoint.GetEpoch()
	input.GasCoins = gasCoins
	input.SortCoins()
	// take max 50 to bound the tx_input size.
	if len(input.GasCoins) > MaxCoinObjects {
		input.GasCoins = input.GasCoins[:MaxCoinObjects]
	}

	gasPrice, err := c.EstimateGas(ctx)
	if err != nil {
		if c.Network.GasPriceDefault == 0 {
			return input, err
		}
		logrus.WithError(err).WithField("default", c.Network.GasPriceDefault).Warn("using default gas price")
		gasPrice = porta.NewAmountBlockchainFromUint64(c.Network.GasPriceDefault)
	}
	input.GasPrice = gasPrice.Uint64()
	input.GasBudget = DefaultGasBudget
	if c.Network.GasBudget > 0 {
		input.GasBudget = c.Network.GasBudget
	}
	return input, nil
}

type objectOwner struct {
	Shared *struct {
		InitialSharedVersion uint64 `json:"initial_shared_version"`
	} `json:"Shared,omitempty"`
}

type objectResponse struct {
	Data *struct {
		ObjectId string          `json:"objectId"`
		Version  string          `json:"version"`
		Owner    json.RawMessage `json:"owner"`
	} `json:"data"`
	Error *struct {
		Code     string `json:"code"`
		ObjectId string `json:"object_id"`
	} `json:"error"`
}

// InitialSharedVersion looks up the version at which an object became shared.  Results are cached,
// the value can never change.
func (c *Client) InitialSharedVersion(ctx context.Context, id ptb.ObjectID) (uint64, error) {
	if version, ok := c.sharedVersions.Get(id); ok {
		return version, nil
	}
	resp := &objectResponse{}
	if err := c.call(ctx, resp, getObject, id.String(), map[string]bool{"showOwner": true}); err != nil {
		return 0, err
	}
	if resp.Error != nil {
		return 0, clienterrors.ObjectNotFoundf("object %s: %s", id, resp.Error.Code)
	}
	if resp.Data == nil {
		return 0, clienterrors.ObjectNotFoundf("object %s", id)
	}
	owner := objectOwner{}
	// owners like "Immutable" are plain strings
	if err := json.Unmarshal(resp.Data.Owner, &owner); err != nil || owner.Shared == nil {
		return 0, fmt.Errorf("object %s is not shared", id)
	}
	version := owner.Shared.InitialSharedVersion
	c.sharedVersions.Add(id, version)
	return version, nil
}

type gasCostSummary struct {
	ComputationCost string `json:"computationCost"`
	StorageCost     string `json:"storageCost"`
	StorageRebate   string `json:"storageRebate"`
}

type executionStatus struct {
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
}

type transactionEffects struct {
	Status  executionStatus `json:"status"`
	GasUsed gasCostSummary  `json:"gasUsed"`
}

type dryRunResponse struct {
	Effects transactionEffects `json:"effects"`
}

type executeResponse struct {
	Digest  string              `json:"digest"`
	Effects *transactionEffects `json:"effects,omitempty"`
}

func (effects *transactionEffects) gasUsed() porta.GasUsed {
	return porta.GasUsed{
		ComputationCost: porta.NewAmountBlockchainFromStr(effects.GasUsed.ComputationCost),
		StorageCost:     porta.NewAmountBlockchainFromStr(effects.GasUsed.StorageCost),
		StorageRebate:   porta.NewAmountBlockchainFromStr(effects.GasUsed.StorageRebate),
	}
}

func (effects *transactionEffects) failure() error {
	if effects.Status.Status != "success" {
		return clienterrors.Errorf(CheckError(errors.New(effects.Status.Error)), "execution failed: %s", effects.Status.Error)
	}
	return nil
}

// DryRun executes signable transaction data without committing it.
func (c *Client) DryRun(ctx context.Context, data ptb.TransactionData) (porta.GasUsed, error) {
	bz, err := data.Serialize()
	if err != nil {
		return porta.GasUsed{}, err
	}
	resp := &dryRunResponse{}
	if err := c.call(ctx, resp, dryRun, base64.StdEncoding.EncodeToString(bz)); err != nil {
		return porta.GasUsed{}, err
	}
	if err := resp.Effects.failure(); err != nil {
		return porta.GasUsed{}, err
	}
	return resp.Effects.gasUsed(), nil
}

// Simulate dry runs a built migration with the sender's own gas coins.
func (c *Client) Simulate(ctx context.Context, migration *ptb.Transaction, sender porta.Address) (porta.GasUsed, error) {
	input, err := c.FetchTxInput(ctx, sender)
	if err != nil {
		return porta.GasUsed{}, err
	}
	data, err := c.Builder.NewTransactionData(migration, sender, input)
	if err != nil {
		return porta.GasUsed{}, err
	}
	return c.DryRun(ctx, data)
}

// SubmitTx executes a signed Sui tx and waits for local execution.
func (c *Client) SubmitTx(ctx context.Context, tx porta.TxWithSignatures) (porta.TxHash, error) {
	txBz, err := tx.Serialize()
	if err != nil {
		return "", err
	}
	sigs := tx.GetSignatures()
	if len(sigs) == 0 {
		return "", errors.New("cannot submit sui transaction without signatures")
	}
	sigsB64 := make([]string, len(sigs))
	for i, sig := range sigs {
		sigsB64[i] = base64.StdEncoding.EncodeToString(sig)
	}

	resp := &executeResponse{}
	err = c.call(ctx, resp, executeTxBlock,
		base64.StdEncoding.EncodeToString(txBz),
		sigsB64,
		map[string]bool{"showEffects": true},
		"WaitForLocalExecution",
	)
	if err != nil {
		return "", err
	}
	if resp.Effects != nil {
		if err := resp.Effects.failure(); err != nil {
			return porta.TxHash(resp.Digest), err
		}
	}
	return porta.TxHash(resp.Digest), nil
}
