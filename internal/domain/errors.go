package domain

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
)

// Sentinel errors for the deployment workflow
var (
	// ErrConnectivity is returned when the network cannot be reached or the signer cannot be derived
	ErrConnectivity = errors.New("connectivity error")

	// ErrInsufficientFunds is returned when the deployer balance is below the threshold
	ErrInsufficientFunds = errors.New("insufficient funds for deploying")

	// ErrWrongTokenAddress is returned when the reward token metadata does not match
	ErrWrongTokenAddress = errors.New("wrong OX token address")

	// ErrInvalidStakingToken is returned when the staking token is neither the reward token nor a pair
	ErrInvalidStakingToken = errors.New("staking token must be the reward token or a liquidity-pair token")

	// ErrUserRejected is returned when the operator does not confirm the deployment
	ErrUserRejected = errors.New("rejected")

	// ErrDeployment is returned when the deployment transaction fails or is not confirmed
	ErrDeployment = errors.New("deployment failed")

	// ErrContractRead is returned when a read-only contract call fails
	ErrContractRead = errors.New("contract read failed")

	// ErrArtifact is returned when the contract artifact cannot be loaded
	ErrArtifact = errors.New("invalid contract artifact")
)

type InsufficientFundsErr struct {
	Account  common.Address
	Balance  *big.Int
	Required *big.Int
}

func (e InsufficientFundsErr) Error() string {
	return fmt.Sprintf("%s: %s has %s wei, need at least %s wei", ErrInsufficientFunds, e.Account.Hex(), e.Balance, e.Required)
}

func (e InsufficientFundsErr) Is(target error) bool { return target == ErrInsufficientFunds }

type WrongTokenErr struct {
	Token TokenDescriptor
}

func (e WrongTokenErr) Error() string {
	return fmt.Sprintf("%s: %s reports name=%q symbol=%q decimals=%d, expected name=%q symbol=%q decimals=%d",
		ErrWrongTokenAddress, e.Token.Address.Hex(), e.Token.Name, e.Token.Symbol, e.Token.Decimals,
		RewardTokenName, RewardTokenSymbol, RewardTokenDecimals)
}

func (e WrongTokenErr) Is(target error) bool { return target == ErrWrongTokenAddress }

type InvalidStakingTokenErr struct {
	Address common.Address
	Symbol  string
}

func (e InvalidStakingTokenErr) Error() string {
	return fmt.Sprintf("%s: %s reports symbol %q", ErrInvalidStakingToken, e.Address.Hex(), e.Symbol)
}

func (e InvalidStakingTokenErr) Is(target error) bool { return target == ErrInvalidStakingToken }

// ContractReadErr wraps a failed read-only call against a contract
type ContractReadErr struct {
	Address common.Address
	Method  string
	Err     error
}

func (e ContractReadErr) Error() string {
	return fmt.Sprintf("%s: %s.%s(): %v", ErrContractRead, e.Address.Hex(), e.Method, e.Err)
}

func (e ContractReadErr) Is(target error) bool { return target == ErrContractRead }
func (e ContractReadErr) Unwrap() error        { return e.Err }

type DeploymentErr struct {
	TxHash common.Hash
	Err    error
}

func (e DeploymentErr) Error() string {
	if e.TxHash == (common.Hash{}) {
		return fmt.Sprintf("%s: %v", ErrDeployment, e.Err)
	}
	return fmt.Sprintf("%s: tx %s: %v", ErrDeployment, e.TxHash.Hex(), e.Err)
}

func (e DeploymentErr) Is(target error) bool { return target == ErrDeployment }
func (e DeploymentErr) Unwrap() error        { return e.Err }
