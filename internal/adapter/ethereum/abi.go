package ethereum

import (
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
)

// DefaultMulticallAddress is the Multicall3 deployment shared by every
// major EVM chain, Base Sepolia included.
var DefaultMulticallAddress = common.HexToAddress("0xcA11bde05977b3631167028862bE2a173976CA11")

// ledgerABIJSON covers the read surface of the campaign contract.
const ledgerABIJSON = `[
  {"type":"function","name":"campaignCount","stateMutability":"view","inputs":[],
   "outputs":[{"name":"","type":"uint256"}]},
  {"type":"function","name":"campaigns","stateMutability":"view",
   "inputs":[{"name":"","type":"uint256"}],
   "outputs":[
     {"name":"id","type":"uint256"},
     {"name":"creator","type":"address"},
     {"name":"title","type":"string"},
     {"name":"organization","type":"string"},
     {"name":"description","type":"string"},
     {"name":"goalAmount","type":"uint256"},
     {"name":"totalDonations","type":"uint256"},
     {"name":"createdAt","type":"uint256"},
     {"name":"deadline","type":"uint256"},
     {"name":"category","type":"string"},
     {"name":"ipfsHash","type":"string"},
     {"name":"state","type":"uint8"},
     {"name":"supportCount","type":"uint256"}
   ]}
]`

const multicallABIJSON = `[
  {"type":"function","name":"aggregate3","stateMutability":"payable",
   "inputs":[{"name":"calls","type":"tuple[]","components":[
     {"name":"target","type":"address"},
     {"name":"allowFailure","type":"bool"},
     {"name":"callData","type":"bytes"}]}],
   "outputs":[{"name":"returnData","type":"tuple[]","components":[
     {"name":"success","type":"bool"},
     {"name":"returnData","type":"bytes"}]}]}
]`

var (
	ledgerABI    = mustParseABI(ledgerABIJSON)
	multicallABI = mustParseABI(multicallABIJSON)
)

// multicallCall mirrors Multicall3.Call3.
type multicallCall struct {
	Target       common.Address
	AllowFailure bool
	CallData     []byte
}

// multicallResult mirrors Multicall3.Result.
type multicallResult struct {
	Success    bool
	ReturnData []byte
}

func mustParseABI(raw string) abi.ABI {
	parsed, err := abi.JSON(strings.NewReader(raw))
	if err != nil {
		panic(err)
	}
	return parsed
}
