package blockchain

import (
	"context"
	"crypto/ecdsa"
	"fmt"
	"log/slog"
	"time"

	"github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/trebuchet-org/treb-stake/internal/adapters/wallet"
	"github.com/trebuchet-org/treb-stake/internal/domain"
	"github.com/trebuchet-org/treb-stake/internal/usecase"
)

// dialTimeout bounds the initial handshake with the RPC endpoint
const dialTimeout = 30 * time.Second

// ConnectorAdapter implements the NetworkConnector interface using ethclient
type ConnectorAdapter struct {
	log *slog.Logger
}

// NewConnectorAdapter creates a new network connector
func NewConnectorAdapter(log *slog.Logger) *ConnectorAdapter {
	return &ConnectorAdapter{
		log: log.With("component", "ConnectorAdapter"),
	}
}

// Connect derives the signer from the mnemonic, dials the endpoint and reads
// the chain id and signer balance. Without a mnemonic the session is read-only.
func (c *ConnectorAdapter) Connect(ctx context.Context, cfg *domain.DeploymentConfig) (usecase.NetworkSession, error) {
	if cfg.Endpoint == "" {
		return nil, fmt.Errorf("%w: no endpoint configured", domain.ErrConnectivity)
	}

	var key *ecdsa.PrivateKey
	if cfg.Mnemonic != "" {
		path := cfg.DerivationPath
		if path == "" {
			path = domain.DefaultDerivationPath
		}
		derived, err := wallet.DeriveKey(cfg.Mnemonic, path)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", domain.ErrConnectivity, err)
		}
		key = derived
	}

	client, err := c.dial(ctx, cfg.Endpoint)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to connect to RPC: %w", domain.ErrConnectivity, err)
	}

	chainID, err := client.ChainID(ctx)
	if err != nil {
		client.Close()
		return nil, fmt.Errorf("%w: failed to get chain ID: %w", domain.ErrConnectivity, err)
	}

	network := domain.NetworkContext{ChainID: chainID.Uint64()}

	if key == nil {
		c.log.Debug("connected without signer", "chain_id", network.ChainID)
		return NewSession(client, client.Close, nil, network, c.log), nil
	}
	signer := crypto.PubkeyToAddress(key.PublicKey)

	balance, err := client.BalanceAt(ctx, signer, nil)
	if err != nil {
		client.Close()
		return nil, fmt.Errorf("%w: failed to get balance of %s: %w", domain.ErrConnectivity, signer.Hex(), err)
	}

	network.Signer = signer
	network.Balance = balance

	c.log.Debug("connected", "chain_id", network.ChainID, "signer", signer.Hex(), "balance", balance.String())
	return NewSession(client, client.Close, key, network, c.log), nil
}

// dial bounds only the handshake; later calls run on the caller's context.
func (c *ConnectorAdapter) dial(ctx context.Context, endpoint string) (*ethclient.Client, error) {
	dialCtx, cancel := context.WithTimeout(ctx, dialTimeout)
	defer cancel()
	return ethclient.DialContext(dialCtx, endpoint)
}

// Ensure the adapter implements the interface
var _ usecase.NetworkConnector = (*ConnectorAdapter)(nil)
