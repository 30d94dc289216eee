package config

import (
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/trebuchet-org/treb-stake/internal/domain"
)

// ErrInvalidConfig is returned when the deployment settings fail validation
var ErrInvalidConfig = errors.New("invalid configuration")

var endpointSchemes = map[string]bool{
	"http":  true,
	"https": true,
	"ws":    true,
	"wss":   true,
}

// DeploymentConfig validates the deploy settings and builds the immutable
// input of a deployment run
func (c *RuntimeConfig) DeploymentConfig() (*domain.DeploymentConfig, error) {
	s := c.Deploy

	if err := validateEndpoint(s.Endpoint); err != nil {
		return nil, err
	}
	if s.Mnemonic == "" {
		return nil, fmt.Errorf("%w: mnemonic is required", ErrInvalidConfig)
	}
	if s.StakingToken == "" {
		return nil, fmt.Errorf("%w: stakingToken is required", ErrInvalidConfig)
	}
	stakingToken, err := parseAddress("stakingToken", s.StakingToken)
	if err != nil {
		return nil, err
	}

	rewardToken := domain.DefaultRewardToken
	if s.RewardToken != "" {
		rewardToken, err = parseAddress("rewardToken", s.RewardToken)
		if err != nil {
			return nil, err
		}
	}

	derivationPath := s.DerivationPath
	if derivationPath == "" {
		derivationPath = domain.DefaultDerivationPath
	}

	timeout := c.Timeout
	if timeout <= 0 {
		timeout = domain.DefaultDeployTimeout
	}

	return &domain.DeploymentConfig{
		Endpoint:       s.Endpoint,
		Mnemonic:       s.Mnemonic,
		DerivationPath: derivationPath,
		StakingToken:   stakingToken,
		RewardToken:    rewardToken,
		ArtifactPath:   s.Artifact,
		Timeout:        timeout,
	}, nil
}

// ConnectionConfig builds a read-only config that only needs an endpoint.
// The mnemonic is dropped so no signer is derived.
func (c *RuntimeConfig) ConnectionConfig() (*domain.DeploymentConfig, error) {
	if err := validateEndpoint(c.Deploy.Endpoint); err != nil {
		return nil, err
	}
	return &domain.DeploymentConfig{
		Endpoint: c.Deploy.Endpoint,
		Timeout:  c.Timeout,
	}, nil
}

// validateEndpoint accepts http(s) and ws(s) URLs and IPC socket paths
func validateEndpoint(endpoint string) error {
	if endpoint == "" {
		return fmt.Errorf("%w: endpoint is required", ErrInvalidConfig)
	}
	if !strings.Contains(endpoint, "://") {
		if strings.HasSuffix(endpoint, ".ipc") {
			return nil
		}
		return fmt.Errorf("%w: endpoint %q is not a URL", ErrInvalidConfig, endpoint)
	}

	u, err := url.Parse(endpoint)
	if err != nil {
		return fmt.Errorf("%w: endpoint %q: %w", ErrInvalidConfig, endpoint, err)
	}
	if !endpointSchemes[strings.ToLower(u.Scheme)] || u.Host == "" {
		return fmt.Errorf("%w: endpoint %q must be an http(s) or ws(s) URL", ErrInvalidConfig, endpoint)
	}
	return nil
}

func parseAddress(field, value string) (common.Address, error) {
	if !common.IsHexAddress(value) {
		return common.Address{}, fmt.Errorf("%w: %s %q is not an address", ErrInvalidConfig, field, value)
	}
	return common.HexToAddress(value), nil
}
