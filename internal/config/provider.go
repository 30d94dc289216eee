package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/trebuchet-org/treb-stake/internal/domain"
)

// DefaultConfigFile is the deploy config read from the project root when --config is not given
const DefaultConfigFile = "deploy.json"

// EnvPrefix prefixes every environment variable read by the CLI
const EnvPrefix = "TREB_STAKE"

// Keys accepted for each deploy setting, in order of precedence. Config file
// keys are matched case-insensitively, so stakingToken is read as stakingtoken.
var (
	endpointKeys       = []string{"endpoint", "enpoint"}
	mnemonicKeys       = []string{"mnemonic"}
	stakingTokenKeys   = []string{"staking_token", "stakingtoken"}
	rewardTokenKeys    = []string{"reward_token", "rewardtoken"}
	derivationPathKeys = []string{"derivation_path", "derivationpath"}
	artifactKeys       = []string{"artifact"}
)

// Provider creates RuntimeConfig for Wire dependency injection
func Provider(v *viper.Viper) (*RuntimeConfig, error) {
	projectRoot := v.GetString("project_root")
	if projectRoot == "" {
		var err error
		projectRoot, err = os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get working directory: %w", err)
		}
	}

	loadEnvFiles(projectRoot)

	configFile, err := readDeployFile(v, projectRoot)
	if err != nil {
		return nil, err
	}

	timeout, err := parseTimeout(v.Get("timeout"))
	if err != nil {
		return nil, err
	}

	cfg := &RuntimeConfig{
		ProjectRoot:    projectRoot,
		ConfigFile:     configFile,
		Debug:          v.GetBool("debug"),
		NonInteractive: v.GetBool("non_interactive"),
		JSON:           v.GetBool("json"),
		DryRun:         v.GetBool("dry_run"),
		Timeout:        timeout,
		Deploy: DeploySettings{
			Endpoint:       lookup(v, endpointKeys...),
			Mnemonic:       lookup(v, mnemonicKeys...),
			StakingToken:   lookup(v, stakingTokenKeys...),
			RewardToken:    lookup(v, rewardTokenKeys...),
			DerivationPath: lookup(v, derivationPathKeys...),
			Artifact:       lookup(v, artifactKeys...),
		},
	}

	return cfg, nil
}

// SetupViper creates and configures a viper instance
func SetupViper(projectRoot string, cmd *cobra.Command) *viper.Viper {
	v := viper.New()

	// Set up environment variables
	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))

	// Set defaults
	v.SetDefault("timeout", domain.DefaultDeployTimeout.String())
	v.SetDefault("debug", false)
	v.SetDefault("non_interactive", false)
	v.SetDefault("project_root", projectRoot)

	// Flags are bound under their snake_case name so env and file keys line up
	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		key := strings.ReplaceAll(f.Name, "-", "_")
		if err := v.BindPFlag(key, f); err != nil {
			panic(err)
		}
	})

	return v
}

// loadEnvFiles loads .env files so their values are visible to viper's env lookup.
// Variables already set in the environment win.
func loadEnvFiles(projectRoot string) {
	envFiles := []string{
		filepath.Join(projectRoot, ".env"),
		filepath.Join(projectRoot, ".env.local"),
	}

	for _, envFile := range envFiles {
		if _, err := os.Stat(envFile); err == nil {
			if err := godotenv.Load(envFile); err != nil {
				slog.Warn("failed to load env file", "file", envFile, "error", err)
			}
		}
	}
}

// readDeployFile merges the deploy config file into v and returns its path.
// A missing default file is not an error, a missing explicit one is.
func readDeployFile(v *viper.Viper, projectRoot string) (string, error) {
	path := v.GetString("config")
	explicit := path != ""
	if !explicit {
		path = DefaultConfigFile
	}
	if !filepath.IsAbs(path) {
		path = filepath.Join(projectRoot, path)
	}

	if _, err := os.Stat(path); err != nil {
		if !explicit && errors.Is(err, os.ErrNotExist) {
			return "", nil
		}
		return "", fmt.Errorf("failed to read config file: %w", err)
	}

	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return "", fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	return path, nil
}

// lookup returns the first non-empty value among keys
func lookup(v *viper.Viper, keys ...string) string {
	for _, key := range keys {
		if val := strings.TrimSpace(v.GetString(key)); val != "" {
			return val
		}
	}
	return ""
}

// parseTimeout accepts a duration string ("90s", "5m") or a number of seconds
func parseTimeout(raw any) (time.Duration, error) {
	var timeout time.Duration
	switch val := raw.(type) {
	case nil:
		return domain.DefaultDeployTimeout, nil
	case time.Duration:
		timeout = val
	case int:
		timeout = time.Duration(val) * time.Second
	case int64:
		timeout = time.Duration(val) * time.Second
	case float64:
		timeout = time.Duration(val * float64(time.Second))
	case string:
		if val == "" {
			return domain.DefaultDeployTimeout, nil
		}
		d, err := time.ParseDuration(val)
		if err != nil {
			return 0, fmt.Errorf("%w: timeout %q: %w", ErrInvalidConfig, val, err)
		}
		timeout = d
	default:
		return 0, fmt.Errorf("%w: timeout has unsupported type %T", ErrInvalidConfig, raw)
	}

	if timeout <= 0 {
		return 0, fmt.Errorf("%w: timeout must be positive", ErrInvalidConfig)
	}
	return timeout, nil
}
