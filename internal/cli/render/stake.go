package render

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/ethereum/go-ethereum/common"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/samber/lo"
	"github.com/trebuchet-org/treb-stake/internal/domain"
	"github.com/trebuchet-org/treb-stake/internal/usecase"
)

// StakeRenderer renders the outcome of a deploy run
type StakeRenderer struct {
	out  io.Writer
	json bool
}

// NewStakeRenderer creates a new stake renderer
func NewStakeRenderer(out io.Writer, asJSON bool) *StakeRenderer {
	return &StakeRenderer{
		out:  out,
		json: asJSON,
	}
}

// stakeJSON is the machine readable form of a deploy run
type stakeJSON struct {
	ChainID      uint64                   `json:"chainId"`
	Signer       common.Address           `json:"signer"`
	Balance      string                   `json:"balance"`
	RewardToken  *domain.TokenDescriptor  `json:"rewardToken"`
	Target       string                   `json:"target"`
	StakingToken common.Address           `json:"stakingToken"`
	Pair         *pairJSON                `json:"pair,omitempty"`
	Artifact     string                   `json:"artifact,omitempty"`
	DryRun       bool                     `json:"dryRun"`
	Deployment   *domain.DeploymentResult `json:"deployment,omitempty"`
}

type pairJSON struct {
	*domain.PairDescriptor
	Tokens []*domain.TokenDescriptor `json:"tokens"`
}

// Render prints the stake summary followed by the deployed address, or the
// whole result as JSON
func (r *StakeRenderer) Render(result *usecase.DeployStakingResult) error {
	if r.json {
		return r.renderJSON(result)
	}

	fmt.Fprintln(r.out, headerStyle.Sprint("Stake summary"))
	fmt.Fprint(r.out, renderKeyValues(summaryRows(result)))
	fmt.Fprintln(r.out)

	if result.Deployment == nil {
		fmt.Fprintln(r.out, FormatWarning("dry run: nothing was deployed"))
		return nil
	}

	fmt.Fprintln(r.out, FormatSuccess(fmt.Sprintf("deployed at %s", result.Deployment.ContractAddress.Hex())))
	fmt.Fprintln(r.out, labelStyle.Sprintf("tx %s", result.Deployment.TxHash.Hex()))
	return nil
}

func summaryRows(result *usecase.DeployStakingResult) []table.Row {
	network := result.Network
	rows := []table.Row{
		row("Chain ID", fmt.Sprintf("%d", network.ChainID)),
		row("Deployer", addressStyle.Sprint(network.Signer.Hex())),
		row("Balance", FormatEther(network.Balance)),
	}

	if result.RewardToken != nil {
		rows = append(rows, row("Reward token", fmt.Sprintf("%s %s",
			tokenLabel(result.RewardToken.Symbol, result.RewardToken.Name),
			addressStyle.Sprint(result.RewardToken.Address.Hex()),
		)))
	}

	if result.Target != nil {
		rows = append(rows, row("Staking", targetStyle.Sprint(result.Target.Description())))
	}
	if pair, ok := result.Target.(domain.PairTarget); ok {
		rows = append(rows, row("Pair", addressStyle.Sprint(pair.Pair.Address.Hex())))
		rows = append(rows, lo.Map([]*domain.TokenDescriptor{pair.Token0, pair.Token1}, func(t *domain.TokenDescriptor, i int) table.Row {
			return row(fmt.Sprintf("  token%d", i), fmt.Sprintf("%s %s", tokenLabel(t.Symbol, t.Name), addressStyle.Sprint(t.Address.Hex())))
		})...)
	}

	if result.Artifact != nil && result.Artifact.Path != "" {
		rows = append(rows, row("Artifact", result.Artifact.Path))
	}
	return rows
}

func (r *StakeRenderer) renderJSON(result *usecase.DeployStakingResult) error {
	out := stakeJSON{
		ChainID:     result.Network.ChainID,
		Signer:      result.Network.Signer,
		Balance:     lo.TernaryF(result.Network.Balance != nil, func() string { return result.Network.Balance.String() }, func() string { return "0" }),
		RewardToken: result.RewardToken,
		DryRun:      result.DryRun,
		Deployment:  result.Deployment,
	}
	if result.Artifact != nil {
		out.Artifact = result.Artifact.Path
	}

	switch target := result.Target.(type) {
	case domain.DirectTarget:
		out.Target = target.Description()
		out.StakingToken = target.Token.Address
	case domain.PairTarget:
		out.Target = target.Description()
		out.StakingToken = target.Pair.Address
		out.Pair = &pairJSON{
			PairDescriptor: target.Pair,
			Tokens:         []*domain.TokenDescriptor{target.Token0, target.Token1},
		}
	}

	enc := json.NewEncoder(r.out)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

// Ensure the renderer implements the generic interface
var _ Renderer[*usecase.DeployStakingResult] = (*StakeRenderer)(nil)
