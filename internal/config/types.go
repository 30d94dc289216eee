package config

import (
	"time"
)

// RuntimeConfig represents the complete runtime configuration
// This is injected into use cases and contains all resolved settings
type RuntimeConfig struct {
	// Core settings
	ProjectRoot string
	ConfigFile  string // deploy config file that was read, empty if none

	// Execution settings
	Debug          bool
	NonInteractive bool
	JSON           bool // Output in JSON format
	Timeout        time.Duration

	// Command-specific settings (only populated for relevant commands)
	DryRun bool

	// Raw deployment settings, validated by DeploymentConfig
	Deploy DeploySettings
}

// DeploySettings holds the deployment inputs as read from flags, env and the
// deploy config file
type DeploySettings struct {
	Endpoint       string
	Mnemonic       string
	DerivationPath string
	StakingToken   string
	RewardToken    string
	Artifact       string
}
