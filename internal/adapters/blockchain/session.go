package blockchain

import (
	"context"
	"crypto/ecdsa"
	"errors"
	"fmt"
	"log/slog"
	"math/big"
	"sync"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/trebuchet-org/treb-stake/internal/adapters/abi/bindings"
	"github.com/trebuchet-org/treb-stake/internal/domain"
	"github.com/trebuchet-org/treb-stake/internal/usecase"
)

var (
	errNoSigner       = errors.New("session has no signer")
	errUnknownTx      = errors.New("transaction was not submitted by this session")
	errReverted       = errors.New("transaction reverted")
	errNoContractAddr = errors.New("receipt has no contract address")
)

// ChainClient is the subset of ethclient.Client a session needs
type ChainClient interface {
	bind.ContractBackend
	bind.DeployBackend
}

// Session is a live RPC connection with an optional signer bound to it
type Session struct {
	client  ChainClient
	closer  func()
	key     *ecdsa.PrivateKey
	network domain.NetworkContext
	log     *slog.Logger

	mu      sync.Mutex
	pending map[common.Hash]*types.Transaction
}

// NewSession wraps client. A nil key makes the session read-only.
func NewSession(client ChainClient, closer func(), key *ecdsa.PrivateKey, network domain.NetworkContext, log *slog.Logger) *Session {
	return &Session{
		client:  client,
		closer:  closer,
		key:     key,
		network: network,
		log:     log,
	}
}

// Network returns the chain id, signer and balance resolved at connection time
func (s *Session) Network() domain.NetworkContext {
	return s.network
}

// CodeAt returns the code deployed at address in the latest block
func (s *Session) CodeAt(ctx context.Context, address common.Address) ([]byte, error) {
	return s.client.CodeAt(ctx, address, nil)
}

// Token binds the token read interface to address
func (s *Session) Token(address common.Address) usecase.TokenContract {
	return bindings.NewOxDexPair(address, s.client)
}

// SubmitDeployment signs and broadcasts the contract creation transaction
func (s *Session) SubmitDeployment(ctx context.Context, artifact *domain.Artifact, args ...any) (common.Address, common.Hash, error) {
	if s.key == nil {
		return common.Address{}, common.Hash{}, errNoSigner
	}

	auth, err := bind.NewKeyedTransactorWithChainID(s.key, new(big.Int).SetUint64(s.network.ChainID))
	if err != nil {
		return common.Address{}, common.Hash{}, fmt.Errorf("failed to create transactor: %w", err)
	}
	auth.Context = ctx

	address, tx, _, err := bind.DeployContract(auth, artifact.ABI, artifact.Bytecode, s.client, args...)
	if err != nil {
		return common.Address{}, common.Hash{}, fmt.Errorf("failed to deploy %s: %w", artifact.ContractName, err)
	}

	s.mu.Lock()
	if s.pending == nil {
		s.pending = make(map[common.Hash]*types.Transaction)
	}
	s.pending[tx.Hash()] = tx
	s.mu.Unlock()

	s.log.Debug("deployment submitted", "tx", tx.Hash().Hex(), "address", address.Hex(), "nonce", tx.Nonce(), "gas", tx.Gas())
	return address, tx.Hash(), nil
}

// WaitDeployed waits for a submitted deployment to be mined and checks its receipt
func (s *Session) WaitDeployed(ctx context.Context, txHash common.Hash) (common.Address, error) {
	s.mu.Lock()
	tx, ok := s.pending[txHash]
	s.mu.Unlock()
	if !ok {
		return common.Address{}, errUnknownTx
	}

	receipt, err := bind.WaitMined(ctx, s.client, tx)
	if err != nil {
		return common.Address{}, fmt.Errorf("failed waiting for transaction: %w", err)
	}
	if receipt.Status != types.ReceiptStatusSuccessful {
		return common.Address{}, errReverted
	}
	if receipt.ContractAddress == (common.Address{}) {
		return common.Address{}, errNoContractAddr
	}

	s.log.Debug("deployment mined", "tx", txHash.Hex(), "block", receipt.BlockNumber, "gas_used", receipt.GasUsed)
	return receipt.ContractAddress, nil
}

// Close releases the underlying RPC connection
func (s *Session) Close() {
	if s.closer != nil {
		s.closer()
	}
}

// Ensure the session implements the interface
var _ usecase.NetworkSession = (*Session)(nil)
