package artifacts

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/trebuchet-org/treb-stake/internal/domain"
	"github.com/trebuchet-org/treb-stake/internal/usecase"
)

const defaultFoundryOut = "out"

// foundryTOML is the part of foundry.toml needed to locate build output
type foundryTOML struct {
	Profile map[string]struct {
		Out string `toml:"out"`
	} `toml:"profile"`
}

// rawArtifact covers both the Foundry and the waffle/hardhat artifact layouts.
// The bytecode field is a plain hex string in waffle and hardhat output and an
// object with an "object" field in Foundry output.
type rawArtifact struct {
	ContractName string          `json:"contractName"`
	ABI          json.RawMessage `json:"abi"`
	Bytecode     json.RawMessage `json:"bytecode"`
	EVM          struct {
		Bytecode struct {
			Object string `json:"object"`
		} `json:"bytecode"`
	} `json:"evm"`
}

// LoaderAdapter reads compiled contract artifacts from the project directory
type LoaderAdapter struct {
	projectRoot string
	log         *slog.Logger
}

// NewLoaderAdapter creates a loader rooted at projectRoot
func NewLoaderAdapter(projectRoot string, log *slog.Logger) *LoaderAdapter {
	return &LoaderAdapter{
		projectRoot: projectRoot,
		log:         log.With("component", "ArtifactLoader"),
	}
}

// LoadArtifact loads contractName from path, or from the first existing
// default location when path is empty.
func (l *LoaderAdapter) LoadArtifact(ctx context.Context, contractName string, path string) (*domain.Artifact, error) {
	if path == "" {
		resolved, err := l.resolvePath(contractName)
		if err != nil {
			return nil, err
		}
		path = resolved
	} else if !filepath.IsAbs(path) {
		path = filepath.Join(l.projectRoot, path)
	}

	l.log.Debug("loading artifact", "contract", contractName, "path", path)

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrArtifact, err)
	}

	artifact, err := parseArtifact(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", domain.ErrArtifact, path, err)
	}
	artifact.ContractName = contractName
	artifact.Path = path

	return artifact, nil
}

// Candidates lists the locations searched for contractName, in order
func (l *LoaderAdapter) Candidates(contractName string) []string {
	var candidates []string
	if out, ok := l.foundryOut(); ok {
		candidates = append(candidates, filepath.Join(out, contractName+".sol", contractName+".json"))
	}
	candidates = append(candidates, filepath.Join(l.projectRoot, "build", contractName+".json"))
	return candidates
}

func (l *LoaderAdapter) resolvePath(contractName string) (string, error) {
	candidates := l.Candidates(contractName)
	for _, candidate := range candidates {
		if _, err := os.Stat(candidate); err == nil {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("%w: %s not found (searched %s)", domain.ErrArtifact, contractName, strings.Join(candidates, ", "))
}

// foundryOut returns the build output directory of the default profile when
// the project has a foundry.toml
func (l *LoaderAdapter) foundryOut() (string, bool) {
	foundryPath := filepath.Join(l.projectRoot, "foundry.toml")
	if _, err := os.Stat(foundryPath); err != nil {
		return "", false
	}

	var raw foundryTOML
	if _, err := toml.DecodeFile(foundryPath, &raw); err != nil {
		l.log.Warn("failed to parse foundry.toml", "error", err)
		return filepath.Join(l.projectRoot, defaultFoundryOut), true
	}

	out := defaultFoundryOut
	if profile, ok := raw.Profile["default"]; ok && profile.Out != "" {
		out = profile.Out
	}
	if !filepath.IsAbs(out) {
		out = filepath.Join(l.projectRoot, out)
	}
	return out, true
}

func parseArtifact(data []byte) (*domain.Artifact, error) {
	var raw rawArtifact
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("invalid artifact json: %w", err)
	}

	parsedABI, err := parseABI(raw.ABI)
	if err != nil {
		return nil, err
	}

	code, err := bytecodeHex(raw)
	if err != nil {
		return nil, err
	}
	if code == "" || code == "0x" {
		return nil, errors.New("artifact has no creation bytecode")
	}
	if strings.Contains(code, "__") {
		return nil, errors.New("artifact bytecode has unlinked libraries")
	}
	if !strings.HasPrefix(code, "0x") {
		code = "0x" + code
	}

	bytecode, err := hexutil.Decode(code)
	if err != nil {
		return nil, fmt.Errorf("invalid bytecode: %w", err)
	}

	return &domain.Artifact{
		ABI:      parsedABI,
		Bytecode: bytecode,
	}, nil
}

// parseABI accepts the ABI as a JSON array or as a string holding one
func parseABI(raw json.RawMessage) (abi.ABI, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || string(raw) == "null" {
		return abi.ABI{}, errors.New("artifact has no abi")
	}

	if raw[0] == '"' {
		var encoded string
		if err := json.Unmarshal(raw, &encoded); err != nil {
			return abi.ABI{}, fmt.Errorf("invalid abi: %w", err)
		}
		raw = json.RawMessage(encoded)
	}

	parsed, err := abi.JSON(bytes.NewReader(raw))
	if err != nil {
		return abi.ABI{}, fmt.Errorf("invalid abi: %w", err)
	}
	return parsed, nil
}

func bytecodeHex(raw rawArtifact) (string, error) {
	if obj := raw.EVM.Bytecode.Object; obj != "" {
		return obj, nil
	}

	field := bytes.TrimSpace(raw.Bytecode)
	if len(field) == 0 || string(field) == "null" {
		return "", nil
	}

	if field[0] == '"' {
		var code string
		if err := json.Unmarshal(field, &code); err != nil {
			return "", fmt.Errorf("invalid bytecode: %w", err)
		}
		return code, nil
	}

	var object struct {
		Object string `json:"object"`
	}
	if err := json.Unmarshal(field, &object); err != nil {
		return "", fmt.Errorf("invalid bytecode: %w", err)
	}
	return object.Object, nil
}

// Ensure the adapter implements the interface
var _ usecase.ArtifactLoader = (*LoaderAdapter)(nil)
