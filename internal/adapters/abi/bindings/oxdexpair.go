package bindings

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
)

// OxDexPairABI is the read-only subset of the IOxDexPair ABI.
// Plain ERC20 tokens implement the first three methods.
const OxDexPairABI = `[
	{"type":"function","name":"name","inputs":[],"outputs":[{"name":"","type":"string"}],"stateMutability":"view"},
	{"type":"function","name":"symbol","inputs":[],"outputs":[{"name":"","type":"string"}],"stateMutability":"view"},
	{"type":"function","name":"decimals","inputs":[],"outputs":[{"name":"","type":"uint8"}],"stateMutability":"view"},
	{"type":"function","name":"token0","inputs":[],"outputs":[{"name":"","type":"address"}],"stateMutability":"view"},
	{"type":"function","name":"token1","inputs":[],"outputs":[{"name":"","type":"address"}],"stateMutability":"view"}
]`

var oxDexPairABI = func() abi.ABI {
	parsed, err := abi.JSON(strings.NewReader(OxDexPairABI))
	if err != nil {
		panic(errors.New("invalid ABI: " + err.Error()))
	}
	return parsed
}()

// OxDexPair is a read-only binding around an ERC20 or liquidity-pair token.
type OxDexPair struct {
	address  common.Address
	contract *bind.BoundContract
}

// NewOxDexPair binds the token ABI to address.
func NewOxDexPair(address common.Address, caller bind.ContractCaller) *OxDexPair {
	return &OxDexPair{
		address:  address,
		contract: bind.NewBoundContract(address, oxDexPairABI, caller, nil, nil),
	}
}

// Address returns the bound contract address.
func (p *OxDexPair) Address() common.Address {
	return p.address
}

// Solidity: function name() view returns(string)
func (p *OxDexPair) Name(ctx context.Context) (string, error) {
	out, err := p.call(ctx, "name")
	if err != nil {
		return "", err
	}
	return *abi.ConvertType(out[0], new(string)).(*string), nil
}

// Solidity: function symbol() view returns(string)
func (p *OxDexPair) Symbol(ctx context.Context) (string, error) {
	out, err := p.call(ctx, "symbol")
	if err != nil {
		return "", err
	}
	return *abi.ConvertType(out[0], new(string)).(*string), nil
}

// Solidity: function decimals() view returns(uint8)
func (p *OxDexPair) Decimals(ctx context.Context) (uint8, error) {
	out, err := p.call(ctx, "decimals")
	if err != nil {
		return 0, err
	}
	return *abi.ConvertType(out[0], new(uint8)).(*uint8), nil
}

// Solidity: function token0() view returns(address)
func (p *OxDexPair) Token0(ctx context.Context) (common.Address, error) {
	out, err := p.call(ctx, "token0")
	if err != nil {
		return common.Address{}, err
	}
	return *abi.ConvertType(out[0], new(common.Address)).(*common.Address), nil
}

// Solidity: function token1() view returns(address)
func (p *OxDexPair) Token1(ctx context.Context) (common.Address, error) {
	out, err := p.call(ctx, "token1")
	if err != nil {
		return common.Address{}, err
	}
	return *abi.ConvertType(out[0], new(common.Address)).(*common.Address), nil
}

func (p *OxDexPair) call(ctx context.Context, method string) ([]interface{}, error) {
	var out []interface{}
	if err := p.contract.Call(&bind.CallOpts{Context: ctx}, &out, method); err != nil {
		return nil, err
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("%s returned no values", method)
	}
	return out, nil
}
