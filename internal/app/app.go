package app

import (
	"log/slog"
	"os"

	"github.com/trebuchet-org/treb-stake/internal/cli/render"
	"github.com/trebuchet-org/treb-stake/internal/config"
	"github.com/trebuchet-org/treb-stake/internal/usecase"
)

// App is the main application container that holds all use cases
type App struct {
	// Configuration
	Config *config.RuntimeConfig
	Log    *slog.Logger

	// Use cases
	DeployStaking *usecase.DeployStaking
	InspectToken  *usecase.InspectToken

	// Renderers
	StakeRenderer   render.Renderer[*usecase.DeployStakingResult]
	InspectRenderer render.Renderer[*usecase.InspectTokenResult]
}

// NewApp creates a new application instance with all use cases
func NewApp(
	cfg *config.RuntimeConfig,
	log *slog.Logger,
	deployStaking *usecase.DeployStaking,
	inspectToken *usecase.InspectToken,
	stakeRenderer render.Renderer[*usecase.DeployStakingResult],
	inspectRenderer render.Renderer[*usecase.InspectTokenResult],
) (*App, error) {
	return &App{
		Config:          cfg,
		Log:             log,
		DeployStaking:   deployStaking,
		InspectToken:    inspectToken,
		StakeRenderer:   stakeRenderer,
		InspectRenderer: inspectRenderer,
	}, nil
}

// ProvideStakeRenderer renders deploy results on stdout
func ProvideStakeRenderer(cfg *config.RuntimeConfig) render.Renderer[*usecase.DeployStakingResult] {
	return render.NewStakeRenderer(os.Stdout, cfg.JSON)
}

// ProvideInspectRenderer renders inspect results on stdout
func ProvideInspectRenderer(cfg *config.RuntimeConfig) render.Renderer[*usecase.InspectTokenResult] {
	return render.NewInspectRenderer(os.Stdout, cfg.JSON)
}
