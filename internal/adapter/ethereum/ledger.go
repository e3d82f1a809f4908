package ethereum

import (
	"context"
	"fmt"
	"log/slog"
	"math/big"
	"time"

	goethereum "github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/ethclient"

	"chainledger/internal/core/domain"
	"chainledger/internal/core/port"
	"chainledger/internal/metrics"
)

const defaultCallTimeout = 10 * time.Second

// LedgerClient reads campaigns from the campaign contract over JSON-RPC and
// batches reads through Multicall3. It implements port.LedgerReader.
type LedgerClient struct {
	caller    goethereum.ContractCaller
	contract  common.Address
	multicall common.Address
	timeout   time.Duration
	logger    *slog.Logger
	metrics   *metrics.Registry
}

// Dial connects to rpcURL and returns a LedgerClient for contract. The
// returned close function releases the RPC connection.
func Dial(ctx context.Context, rpcURL string, contract, multicall common.Address, timeout time.Duration, logger *slog.Logger, m *metrics.Registry) (*LedgerClient, func(), error) {
	dialCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	client, err := ethclient.DialContext(dialCtx, rpcURL)
	if err != nil {
		return nil, nil, fmt.Errorf("dial ledger rpc: %w", err)
	}
	return NewLedgerClient(client, contract, multicall, timeout, logger, m), client.Close, nil
}

// NewLedgerClient builds a client over any contract caller, an
// *ethclient.Client in production.
func NewLedgerClient(caller goethereum.ContractCaller, contract, multicall common.Address, timeout time.Duration, logger *slog.Logger, m *metrics.Registry) *LedgerClient {
	if timeout <= 0 {
		timeout = defaultCallTimeout
	}
	if multicall == (common.Address{}) {
		multicall = DefaultMulticallAddress
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &LedgerClient{
		caller:    caller,
		contract:  contract,
		multicall: multicall,
		timeout:   timeout,
		logger:    logger.With(slog.String("component", "ledger")),
		metrics:   m,
	}
}

// Count returns campaignCount().
func (l *LedgerClient) Count(ctx context.Context) (uint64, error) {
	out, err := l.call(ctx, "campaignCount", l.contract, mustPack(ledgerABI, "campaignCount"))
	if err != nil {
		return 0, err
	}
	values, err := ledgerABI.Unpack("campaignCount", out)
	if err != nil {
		return 0, fmt.Errorf("decode campaignCount: %w", err)
	}
	n, ok := values[0].(*big.Int)
	if !ok || !n.IsUint64() {
		return 0, fmt.Errorf("decode campaignCount: unexpected value %v", values[0])
	}
	return n.Uint64(), nil
}

// ReadRecord returns campaigns(id). Slots the contract never wrote come
// back zeroed and are reported as port.ErrCampaignNotFound.
func (l *LedgerClient) ReadRecord(ctx context.Context, id uint64) (*domain.CampaignRecord, error) {
	data, err := ledgerABI.Pack("campaigns", new(big.Int).SetUint64(id))
	if err != nil {
		return nil, err
	}
	out, err := l.call(ctx, "campaigns", l.contract, data)
	if err != nil {
		return nil, err
	}
	rec, err := decodeCampaign(out)
	if err != nil {
		return nil, fmt.Errorf("decode campaign %d: %w", id, err)
	}
	if rec.Creator == (common.Address{}).Hex() {
		return nil, fmt.Errorf("%w: %d", port.ErrCampaignNotFound, id)
	}
	return rec, nil
}

// BatchRead reads all ids with a single aggregate3 call. Sub-calls may fail
// individually; their slots are nil.
func (l *LedgerClient) BatchRead(ctx context.Context, ids []uint64) ([]*domain.CampaignRecord, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	calls := make([]multicallCall, len(ids))
	for i, id := range ids {
		data, err := ledgerABI.Pack("campaigns", new(big.Int).SetUint64(id))
		if err != nil {
			return nil, err
		}
		calls[i] = multicallCall{Target: l.contract, AllowFailure: true, CallData: data}
	}
	data, err := multicallABI.Pack("aggregate3", calls)
	if err != nil {
		return nil, err
	}
	out, err := l.call(ctx, "aggregate3", l.multicall, data)
	if err != nil {
		return nil, err
	}
	values, err := multicallABI.Unpack("aggregate3", out)
	if err != nil {
		return nil, fmt.Errorf("decode aggregate3: %w", err)
	}
	results := *abi.ConvertType(values[0], new([]multicallResult)).(*[]multicallResult)
	if len(results) != len(ids) {
		return nil, fmt.Errorf("aggregate3 returned %d results for %d calls", len(results), len(ids))
	}

	records := make([]*domain.CampaignRecord, len(ids))
	for i, res := range results {
		if !res.Success {
			l.logger.Debug("campaign read reverted", slog.Uint64("id", ids[i]))
			continue
		}
		rec, err := decodeCampaign(res.ReturnData)
		if err != nil {
			l.logger.Debug("campaign decode failed", slog.Uint64("id", ids[i]), slog.Any("error", err))
			continue
		}
		records[i] = rec
	}
	return records, nil
}

func (l *LedgerClient) call(ctx context.Context, method string, to common.Address, data []byte) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, l.timeout)
	defer cancel()

	start := time.Now()
	out, err := l.caller.CallContract(ctx, goethereum.CallMsg{To: &to, Data: data}, nil)
	l.metrics.LedgerCall(method, time.Since(start).Seconds(), err)
	if err != nil {
		return nil, fmt.Errorf("call %s: %w", method, err)
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("call %s: empty response, is the contract deployed at %s?", method, to.Hex())
	}
	return out, nil
}

func mustPack(a abi.ABI, method string, args ...interface{}) []byte {
	data, err := a.Pack(method, args...)
	if err != nil {
		panic(err)
	}
	return data
}

// decodeCampaign unpacks the return data of campaigns(uint256).
func decodeCampaign(data []byte) (*domain.CampaignRecord, error) {
	v, err := ledgerABI.Unpack("campaigns", data)
	if err != nil {
		return nil, err
	}
	if len(v) != 13 {
		return nil, fmt.Errorf("expected 13 fields, got %d", len(v))
	}
	d := fieldDecoder{values: v}
	rec := &domain.CampaignRecord{
		ID:             d.u64(0),
		Creator:        d.addr(1),
		Title:          d.str(2),
		Organization:   d.str(3),
		Description:    d.str(4),
		GoalAmount:     d.num(5),
		TotalDonations: d.num(6),
		CreatedAt:      d.u64(7),
		Deadline:       d.u64(8),
		Category:       d.str(9),
		CID:            d.str(10),
		StateCode:      d.u8(11),
		SupportCount:   d.u64(12),
	}
	if d.err != nil {
		return nil, d.err
	}
	return rec, nil
}

// fieldDecoder type-asserts unpacked ABI values, keeping the first error.
type fieldDecoder struct {
	values []interface{}
	err    error
}

func (d *fieldDecoder) fail(i int, want string) {
	if d.err == nil {
		d.err = fmt.Errorf("field %d: want %s, got %T", i, want, d.values[i])
	}
}

func (d *fieldDecoder) num(i int) *big.Int {
	v, ok := d.values[i].(*big.Int)
	if !ok {
		d.fail(i, "uint256")
		return new(big.Int)
	}
	return v
}

func (d *fieldDecoder) u64(i int) uint64 {
	v := d.num(i)
	if !v.IsUint64() {
		if d.err == nil {
			d.err = fmt.Errorf("field %d: value overflows uint64", i)
		}
		return 0
	}
	return v.Uint64()
}

func (d *fieldDecoder) u8(i int) uint8 {
	v, ok := d.values[i].(uint8)
	if !ok {
		d.fail(i, "uint8")
	}
	return v
}

func (d *fieldDecoder) str(i int) string {
	v, ok := d.values[i].(string)
	if !ok {
		d.fail(i, "string")
	}
	return v
}

func (d *fieldDecoder) addr(i int) string {
	v, ok := d.values[i].(common.Address)
	if !ok {
		d.fail(i, "address")
	}
	return v.Hex()
}
