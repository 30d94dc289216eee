package adapters

import (
	"os"

	"github.com/google/wire"
	"github.com/trebuchet-org/treb-stake/internal/adapters/artifacts"
	"github.com/trebuchet-org/treb-stake/internal/adapters/blockchain"
	"github.com/trebuchet-org/treb-stake/internal/adapters/interactive"
	"github.com/trebuchet-org/treb-stake/internal/adapters/progress"
	"github.com/trebuchet-org/treb-stake/internal/config"
	"github.com/trebuchet-org/treb-stake/internal/usecase"
	"golang.org/x/term"
)

// ProvideProjectPath provides the project path from RuntimeConfig
func ProvideProjectPath(cfg *config.RuntimeConfig) string {
	return cfg.ProjectRoot
}

// ProvidePrompter uses promptui on a terminal and plain line reads otherwise
func ProvidePrompter(cfg *config.RuntimeConfig) usecase.Prompter {
	if cfg.NonInteractive || !isTerminal(os.Stdin) {
		return interactive.NewLinePrompter(os.Stdin, os.Stderr)
	}
	return interactive.NewPromptuiPrompter(nil, nil)
}

// ProvideProgressSink uses a spinner on a terminal and plain lines otherwise
func ProvideProgressSink(cfg *config.RuntimeConfig) usecase.ProgressSink {
	if cfg.NonInteractive || cfg.JSON || !isTerminal(os.Stderr) {
		return progress.NewLineSink()
	}
	return progress.NewSpinnerProgressReporter()
}

func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// ArtifactSet provides the contract artifact loader
var ArtifactSet = wire.NewSet(
	artifacts.NewLoaderAdapter,
	wire.Bind(new(usecase.ArtifactLoader), new(*artifacts.LoaderAdapter)),
)

// InteractiveSet provides the operator facing adapters
var InteractiveSet = wire.NewSet(
	ProvidePrompter,
	ProvideProgressSink,
)

// BlockchainSet provides blockchain-based implementations
var BlockchainSet = wire.NewSet(
	blockchain.NewConnectorAdapter,
	wire.Bind(new(usecase.NetworkConnector), new(*blockchain.ConnectorAdapter)),
)

// AllAdapters includes all adapter sets
var AllAdapters = wire.NewSet(
	// Provider functions
	ProvideProjectPath,

	// Adapter sets
	ArtifactSet,
	InteractiveSet,
	BlockchainSet,
)
