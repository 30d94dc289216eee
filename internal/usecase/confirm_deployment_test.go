package usecase_test

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/trebuchet-org/treb-stake/internal/domain"
	"github.com/trebuchet-org/treb-stake/internal/usecase"
)

func pairTarget() domain.PairTarget {
	return domain.PairTarget{
		Pair:   &domain.PairDescriptor{Address: testPair, Symbol: domain.PairSymbol},
		Token0: rewardDescriptor(),
		Token1: &domain.TokenDescriptor{Address: testWETH, Symbol: "WETH"},
	}
}

func TestConfirmationMessage(t *testing.T) {
	assert.Equal(t,
		"Please confirm: staking by OX-Based on network 1 (Y/n)",
		usecase.ConfirmationMessage(1, domain.DirectTarget{Token: rewardDescriptor()}))
	assert.Equal(t,
		"Please confirm: staking by Pair OX/WETH on network 56 (Y/n)",
		usecase.ConfirmationMessage(56, pairTarget()))
}

func TestConfirmationGate_Confirm(t *testing.T) {
	tests := []struct {
		name      string
		answer    string
		err       error
		confirmed bool
	}{
		{name: "exact Y", answer: "Y", confirmed: true},
		{name: "lowercase y", answer: "y"},
		{name: "yes", answer: "yes"},
		{name: "empty line", answer: ""},
		{name: "n", answer: "n"},
		{name: "leading space", answer: " Y"},
		{name: "trailing space", answer: "Y "},
		{name: "end of input", err: io.EOF},
		{name: "read failure", err: errors.New("prompt cancelled")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			prompter := answering(tt.answer, tt.err)

			confirmation := usecase.NewConfirmationGate(prompter).Confirm(context.Background(), 1, pairTarget())

			assert.Equal(t, tt.confirmed, confirmation.Confirmed())
			if !tt.confirmed {
				assert.Equal(t, domain.Rejected, confirmation.Status)
				assert.NotEmpty(t, confirmation.Reason)
			}
			prompter.AssertCalled(t, "Ask", mock.Anything, "Please confirm: staking by Pair OX/WETH on network 1 (Y/n)")
			prompter.AssertCalled(t, "Close")
		})
	}
}

func TestConfirmationGate_CloseErrorIgnored(t *testing.T) {
	prompter := &MockPrompter{}
	prompter.On("Ask", mock.Anything, mock.Anything).Return("Y", nil)
	prompter.On("Close").Return(errors.New("already closed"))

	confirmation := usecase.NewConfirmationGate(prompter).Confirm(context.Background(), 1, domain.DirectTarget{Token: rewardDescriptor()})

	assert.True(t, confirmation.Confirmed())
	assert.Equal(t, "Y", confirmation.Answer)
	prompter.AssertExpectations(t)
}
