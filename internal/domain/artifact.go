package domain

import (
	"github.com/ethereum/go-ethereum/accounts/abi"
)

// Artifact is a compiled contract ready to be deployed
type Artifact struct {
	ContractName string
	Path         string
	ABI          abi.ABI
	Bytecode     []byte
}
