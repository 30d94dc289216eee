package render

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/samber/lo"
	"github.com/trebuchet-org/treb-stake/internal/domain"
	"github.com/trebuchet-org/treb-stake/internal/usecase"
)

// InspectRenderer renders token metadata read by the inspect command
type InspectRenderer struct {
	out  io.Writer
	json bool
}

// NewInspectRenderer creates a new inspect renderer
func NewInspectRenderer(out io.Writer, asJSON bool) *InspectRenderer {
	return &InspectRenderer{
		out:  out,
		json: asJSON,
	}
}

type inspectJSON struct {
	ChainID uint64                    `json:"chainId"`
	Token   *domain.TokenDescriptor   `json:"token"`
	IsPair  bool                      `json:"isPair"`
	Tokens  []*domain.TokenDescriptor `json:"tokens,omitempty"`
}

// Render prints the token descriptor, and its constituents for pair tokens
func (r *InspectRenderer) Render(result *usecase.InspectTokenResult) error {
	if r.json {
		out := inspectJSON{
			ChainID: result.ChainID,
			Token:   result.Token,
			IsPair:  result.IsPair(),
		}
		if result.IsPair() {
			out.Tokens = []*domain.TokenDescriptor{result.Token0, result.Token1}
		}
		enc := json.NewEncoder(r.out)
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	}

	token := result.Token
	rows := []table.Row{
		row("Chain ID", fmt.Sprintf("%d", result.ChainID)),
		row("Address", addressStyle.Sprint(token.Address.Hex())),
		row("Name", token.Name),
		row("Symbol", valueStyle.Sprint(token.Symbol)),
		row("Decimals", fmt.Sprintf("%d", token.Decimals)),
	}

	kind := "ERC20"
	switch {
	case result.IsPair():
		kind = fmt.Sprintf("liquidity pair %s/%s", result.Token0.Symbol, result.Token1.Symbol)
	case token.IsRewardToken():
		kind = "reward token"
	}
	rows = append(rows, row("Kind", targetStyle.Sprint(kind)))

	if result.IsPair() {
		rows = append(rows, lo.Map([]*domain.TokenDescriptor{result.Token0, result.Token1}, func(t *domain.TokenDescriptor, i int) table.Row {
			return row(fmt.Sprintf("token%d", i), fmt.Sprintf("%s %s", tokenLabel(t.Symbol, t.Name), addressStyle.Sprint(t.Address.Hex())))
		})...)
	}

	fmt.Fprint(r.out, renderKeyValues(rows))
	fmt.Fprintln(r.out)
	return nil
}

// Ensure the renderer implements the generic interface
var _ Renderer[*usecase.InspectTokenResult] = (*InspectRenderer)(nil)
