package configs

import (
	"errors"
	"time"

	"github.com/ethereum/go-ethereum/common"
)

// Ledger configures access to the campaign contract.
type Ledger struct {
	RPCURL string `env:"RPC_URL" envDefault:"https://base-sepolia-rpc.publicnode.com"`
	// ContractAddress is the deployed campaign contract. Required by every
	// command that reads campaigns.
	ContractAddress string `env:"CONTRACT_ADDRESS"`
	// MulticallAddress overrides the Multicall3 deployment used for batch
	// reads. Empty selects the canonical address.
	MulticallAddress string        `env:"MULTICALL_ADDRESS"`
	CallTimeout      time.Duration `env:"CALL_TIMEOUT" envDefault:"10s"`
}

// Contract returns ContractAddress as an address, failing when it is unset
// or malformed.
func (c Ledger) Contract() (common.Address, error) {
	if c.ContractAddress == "" {
		return common.Address{}, errors.New("LEDGER_CONTRACT_ADDRESS is not set")
	}
	if !common.IsHexAddress(c.ContractAddress) {
		return common.Address{}, errors.New("LEDGER_CONTRACT_ADDRESS is not a hex address")
	}
	return common.HexToAddress(c.ContractAddress), nil
}

// Multicall returns MulticallAddress, or the zero address when unset so the
// client falls back to its default.
func (c Ledger) Multicall() (common.Address, error) {
	if c.MulticallAddress == "" {
		return common.Address{}, nil
	}
	if !common.IsHexAddress(c.MulticallAddress) {
		return common.Address{}, errors.New("LEDGER_MULTICALL_ADDRESS is not a hex address")
	}
	return common.HexToAddress(c.MulticallAddress), nil
}
