package usecase

import (
	"context"
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/trebuchet-org/treb-stake/internal/domain"
)

// InspectTokenParams contains parameters for inspecting a token contract
type InspectTokenParams struct {
	Config  *domain.DeploymentConfig
	Address common.Address
}

// InspectTokenResult contains the metadata read from the contract
type InspectTokenResult struct {
	ChainID uint64
	Token   *domain.TokenDescriptor
	// Populated only when the token reports the pair symbol
	Pair   *domain.PairDescriptor
	Token0 *domain.TokenDescriptor
	Token1 *domain.TokenDescriptor
}

// IsPair reports whether the inspected token is a liquidity-pair token
func (r *InspectTokenResult) IsPair() bool {
	return r.Pair != nil
}

// InspectToken is a read-only use case that runs the token introspector against an address
type InspectToken struct {
	connector NetworkConnector
	progress  ProgressSink
}

// NewInspectToken creates a new InspectToken use case
func NewInspectToken(connector NetworkConnector, progress ProgressSink) *InspectToken {
	return &InspectToken{
		connector: connector,
		progress:  progress,
	}
}

// Run executes the use case
func (uc *InspectToken) Run(ctx context.Context, params InspectTokenParams) (*InspectTokenResult, error) {
	if params.Config == nil {
		return nil, fmt.Errorf("deployment config is required")
	}

	uc.progress.OnProgress(ctx, ProgressEvent{Stage: StageConnecting, Message: "Connecting to " + params.Config.Endpoint, Spinner: true})
	defer uc.progress.OnProgress(ctx, ProgressEvent{Spinner: false})

	session, err := uc.connector.Connect(ctx, params.Config)
	if err != nil {
		return nil, err
	}
	defer session.Close()

	introspector := NewTokenIntrospector(session)

	uc.progress.OnProgress(ctx, ProgressEvent{Stage: StageInspecting, Message: "Reading " + params.Address.Hex(), Spinner: true})
	token, err := introspector.InspectToken(ctx, params.Address)
	if err != nil {
		return nil, err
	}

	result := &InspectTokenResult{
		ChainID: session.Network().ChainID,
		Token:   token,
	}
	if token.Symbol != domain.PairSymbol {
		return result, nil
	}

	pair, err := introspector.InspectPair(ctx, token)
	if err != nil {
		return nil, err
	}
	constituents, err := introspector.InspectTokens(ctx, pair.Token0, pair.Token1)
	if err != nil {
		return nil, err
	}

	result.Pair = pair
	result.Token0 = constituents[0]
	result.Token1 = constituents[1]
	return result, nil
}
