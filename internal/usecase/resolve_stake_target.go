package usecase

import (
	"context"
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/trebuchet-org/treb-stake/internal/domain"
)

// StakeTargetResolver decides what the staking contract will accept as stake
type StakeTargetResolver struct {
	tokens   *TokenIntrospector
	progress ProgressSink
}

// NewStakeTargetResolver creates a new StakeTargetResolver
func NewStakeTargetResolver(tokens *TokenIntrospector, progress ProgressSink) *StakeTargetResolver {
	if progress == nil {
		progress = NopProgress{}
	}
	return &StakeTargetResolver{
		tokens:   tokens,
		progress: progress,
	}
}

// Resolve returns a DirectTarget when stakingToken is the verified reward token,
// a PairTarget when it is a liquidity-pair token, and InvalidStakingTokenErr otherwise.
// Only symbols are read from the staking token and the pair constituents.
func (r *StakeTargetResolver) Resolve(ctx context.Context, rewardToken *domain.TokenDescriptor, stakingToken common.Address) (domain.StakeTarget, error) {
	if stakingToken == rewardToken.Address {
		return domain.DirectTarget{Token: rewardToken}, nil
	}

	r.progress.Info("checking pair info...")
	r.progress.OnProgress(ctx, ProgressEvent{
		Stage:   StagePairResolution,
		Message: fmt.Sprintf("Reading staking token %s", stakingToken.Hex()),
		Spinner: true,
	})

	staked, err := r.tokens.InspectSymbol(ctx, stakingToken)
	if err != nil {
		return nil, err
	}
	if staked.Symbol != domain.PairSymbol {
		return nil, domain.InvalidStakingTokenErr{Address: stakingToken, Symbol: staked.Symbol}
	}

	pair, err := r.tokens.InspectPair(ctx, staked)
	if err != nil {
		return nil, err
	}

	constituents, err := r.tokens.InspectSymbols(ctx, pair.Token0, pair.Token1)
	if err != nil {
		return nil, err
	}

	return domain.PairTarget{
		Pair:   pair,
		Token0: constituents[0],
		Token1: constituents[1],
	}, nil
}
