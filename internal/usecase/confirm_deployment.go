package usecase

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/trebuchet-org/treb-stake/internal/domain"
)

// ConfirmationGate asks the operator to approve the resolved stake target
type ConfirmationGate struct {
	prompter Prompter
}

// NewConfirmationGate creates a new ConfirmationGate
func NewConfirmationGate(prompter Prompter) *ConfirmationGate {
	return &ConfirmationGate{prompter: prompter}
}

// ConfirmationMessage renders the question shown to the operator.
func ConfirmationMessage(chainID uint64, target domain.StakeTarget) string {
	return fmt.Sprintf("Please confirm: staking by %s on network %d (Y/n)", target.Description(), chainID)
}

// Confirm blocks until one line of input is read. Only the exact answer "Y"
// confirms; anything else, including empty input or a failed read, rejects.
// The prompter is closed on every path.
func (g *ConfirmationGate) Confirm(ctx context.Context, chainID uint64, target domain.StakeTarget) domain.Confirmation {
	defer func() { _ = g.prompter.Close() }()

	answer, err := g.prompter.Ask(ctx, ConfirmationMessage(chainID, target))
	switch {
	case errors.Is(err, io.EOF):
		return domain.Confirmation{Status: domain.Rejected, Reason: "no input"}
	case err != nil:
		return domain.Confirmation{Status: domain.Rejected, Reason: err.Error()}
	case answer == domain.ConfirmAnswer:
		return domain.Confirmation{Status: domain.Confirmed, Answer: answer}
	default:
		return domain.Confirmation{
			Status: domain.Rejected,
			Answer: answer,
			Reason: fmt.Sprintf("answer %q is not %q", answer, domain.ConfirmAnswer),
		}
	}
}
