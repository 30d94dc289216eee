package usecase_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"math/big"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/trebuchet-org/treb-stake/internal/domain"
	"github.com/trebuchet-org/treb-stake/internal/usecase"
)

type deployFixture struct {
	chain     *fakeChain
	connector *fakeConnector
	artifacts *fakeArtifacts
	prompter  *MockPrompter
	progress  *MockProgressSink
}

func newDeployFixture(balance *big.Int, answer string) *deployFixture {
	chain := newFakeChain(balance)
	chain.addRewardToken()
	chain.addToken(testWETH, "Wrapped Ether", "WETH", 18)
	chain.addPair(domain.DefaultRewardToken, testWETH)

	return &deployFixture{
		chain:     chain,
		connector: &fakeConnector{session: chain},
		artifacts: &fakeArtifacts{},
		prompter:  answering(answer, nil),
		progress:  &MockProgressSink{},
	}
}

func (f *deployFixture) run(staking bool, dryRun bool) (*usecase.DeployStakingResult, error) {
	stakingToken := domain.DefaultRewardToken
	if staking {
		stakingToken = testPair
	}
	uc := usecase.NewDeployStaking(f.connector, f.artifacts, f.prompter, f.progress, slog.New(slog.DiscardHandler))
	return uc.Run(context.Background(), usecase.DeployStakingParams{
		Config: &domain.DeploymentConfig{
			Endpoint:     "http://localhost:8545",
			Mnemonic:     "test test test test test test test test test test test junk",
			StakingToken: stakingToken,
			RewardToken:  domain.DefaultRewardToken,
			Timeout:      time.Second,
		},
		DryRun: dryRun,
	})
}

func TestDeployStaking_Direct(t *testing.T) {
	f := newDeployFixture(oneEther, "Y")

	result, err := f.run(false, false)
	require.NoError(t, err)

	assert.Equal(t, "OX-Based", result.Target.Description())
	require.NotNil(t, result.Deployment)
	assert.Equal(t, testDeployed, result.Deployment.ContractAddress)
	assert.Equal(t, uint64(1), result.Deployment.ChainID)
	assert.Equal(t, "OX-Based", result.Deployment.Target)
	assert.Equal(t, []any{testSigner, testSigner, domain.DefaultRewardToken, domain.DefaultRewardToken}, f.chain.submitted)

	f.prompter.AssertCalled(t, "Ask", mock.Anything, "Please confirm: staking by OX-Based on network 1 (Y/n)")
	f.prompter.AssertCalled(t, "Close")
	assert.Equal(t, []string{
		"checking deployer balance...",
		"checking OX token info...",
		"deploying...",
	}, f.progress.infos)
	assert.True(t, f.chain.closed)
}

func TestDeployStaking_Pair(t *testing.T) {
	f := newDeployFixture(oneEther, "Y")

	result, err := f.run(true, false)
	require.NoError(t, err)

	pair, ok := result.Target.(domain.PairTarget)
	require.True(t, ok)
	assert.Equal(t, "WETH", pair.Token1.Symbol)
	assert.Equal(t, []any{testSigner, testSigner, domain.DefaultRewardToken, testPair}, f.chain.submitted)

	f.prompter.AssertCalled(t, "Ask", mock.Anything, "Please confirm: staking by Pair OX/WETH on network 1 (Y/n)")
	assert.Equal(t, []string{
		"checking deployer balance...",
		"checking OX token info...",
		"checking pair info...",
		"deploying...",
	}, f.progress.infos)
	assert.Equal(t, []usecase.ExecutionStage{
		usecase.StageConnecting,
		usecase.StageBalanceCheck,
		usecase.StageRewardVerify,
		usecase.StagePairResolution,
		usecase.StageConfirm,
		usecase.StageDeploying,
		usecase.StageCompleted,
	}, f.progress.stages())
}

func TestDeployStaking_PairConstituentWithoutName(t *testing.T) {
	f := newDeployFixture(oneEther, "Y")
	f.chain.tokens[testWETH].errs["name"] = errors.New("execution reverted")
	f.chain.tokens[testWETH].errs["decimals"] = errors.New("execution reverted")

	result, err := f.run(true, false)
	require.NoError(t, err)

	assert.Equal(t, "Pair OX/WETH", result.Target.Description())
	require.NotNil(t, result.Deployment)
	assert.Equal(t, 1, f.chain.submitCalls)
	f.prompter.AssertCalled(t, "Ask", mock.Anything, "Please confirm: staking by Pair OX/WETH on network 1 (Y/n)")
}

func TestDeployStaking_Failures(t *testing.T) {
	t.Run("balance below threshold stops before any read", func(t *testing.T) {
		below := new(big.Int).Sub(domain.MinDeployerBalance, big.NewInt(1))
		f := newDeployFixture(below, "Y")

		_, err := f.run(true, false)
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrInsufficientFunds)

		var fundsErr domain.InsufficientFundsErr
		require.True(t, errors.As(err, &fundsErr))
		assert.Equal(t, testSigner, fundsErr.Account)
		assert.Zero(t, f.chain.readCount())
		f.prompter.AssertNotCalled(t, "Ask", mock.Anything, mock.Anything)
		assert.Zero(t, f.chain.submitCalls)
	})

	t.Run("balance at threshold passes", func(t *testing.T) {
		f := newDeployFixture(new(big.Int).Set(domain.MinDeployerBalance), "Y")

		_, err := f.run(false, false)
		require.NoError(t, err)
	})

	wrongRewardTokens := []struct {
		name     string
		token    string
		symbol   string
		decimals uint8
	}{
		{name: "wrong name", token: "OX Token", symbol: "OX", decimals: 18},
		{name: "wrong symbol", token: "OX", symbol: "OXT", decimals: 18},
		{name: "wrong decimals", token: "OX", symbol: "OX", decimals: 9},
	}
	for _, tt := range wrongRewardTokens {
		t.Run("reward token with "+tt.name+" stops before staking token reads", func(t *testing.T) {
			f := newDeployFixture(oneEther, "Y")
			reward := f.chain.tokens[domain.DefaultRewardToken]
			reward.name = tt.token
			reward.symbol = tt.symbol
			reward.decimals = tt.decimals

			_, err := f.run(true, false)
			require.Error(t, err)
			assert.ErrorIs(t, err, domain.ErrWrongTokenAddress)

			var wrongErr domain.WrongTokenErr
			require.True(t, errors.As(err, &wrongErr))
			assert.Equal(t, tt.token, wrongErr.Token.Name)
			assert.Equal(t, tt.symbol, wrongErr.Token.Symbol)
			assert.Equal(t, tt.decimals, wrongErr.Token.Decimals)
			assert.Zero(t, f.chain.readsOf(testPair))
			f.prompter.AssertNotCalled(t, "Ask", mock.Anything, mock.Anything)
			assert.Zero(t, f.chain.submitCalls)
		})
	}

	t.Run("invalid staking token", func(t *testing.T) {
		f := newDeployFixture(oneEther, "Y")
		f.chain.tokens[testPair].symbol = "UNI-V2"

		_, err := f.run(true, false)
		assert.ErrorIs(t, err, domain.ErrInvalidStakingToken)
		f.prompter.AssertNotCalled(t, "Ask", mock.Anything, mock.Anything)
	})

	t.Run("operator rejects", func(t *testing.T) {
		f := newDeployFixture(oneEther, "y")

		_, err := f.run(true, false)
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrUserRejected)
		assert.Zero(t, f.chain.submitCalls)
		f.prompter.AssertCalled(t, "Close")
	})

	t.Run("closed input rejects", func(t *testing.T) {
		f := newDeployFixture(oneEther, "")
		f.prompter = answering("", io.EOF)

		_, err := f.run(false, false)
		assert.ErrorIs(t, err, domain.ErrUserRejected)
		assert.Zero(t, f.chain.submitCalls)
	})

	t.Run("deployment failure", func(t *testing.T) {
		f := newDeployFixture(oneEther, "Y")
		f.chain.waitErr = errors.New("reverted")

		_, err := f.run(false, false)
		assert.ErrorIs(t, err, domain.ErrDeployment)
		assert.True(t, f.chain.closed)
	})

	t.Run("artifact failure never connects", func(t *testing.T) {
		f := newDeployFixture(oneEther, "Y")
		f.artifacts.err = domain.ErrArtifact

		_, err := f.run(false, false)
		assert.ErrorIs(t, err, domain.ErrArtifact)
		assert.Zero(t, f.connector.calls)
	})

	t.Run("connection failure", func(t *testing.T) {
		f := newDeployFixture(oneEther, "Y")
		f.connector.err = errors.Join(domain.ErrConnectivity, errRPC)

		_, err := f.run(false, false)
		assert.ErrorIs(t, err, domain.ErrConnectivity)
	})

	t.Run("missing config", func(t *testing.T) {
		f := newDeployFixture(oneEther, "Y")
		uc := usecase.NewDeployStaking(f.connector, f.artifacts, f.prompter, f.progress, slog.New(slog.DiscardHandler))

		_, err := uc.Run(context.Background(), usecase.DeployStakingParams{})
		assert.Error(t, err)
	})
}

func TestDeployStaking_DryRun(t *testing.T) {
	f := newDeployFixture(oneEther, "Y")

	result, err := f.run(true, true)
	require.NoError(t, err)

	assert.True(t, result.DryRun)
	assert.Nil(t, result.Deployment)
	assert.Equal(t, "Pair OX/WETH", result.Target.Description())
	assert.Zero(t, f.chain.submitCalls)
	f.prompter.AssertNotCalled(t, "Ask", mock.Anything, mock.Anything)
}
