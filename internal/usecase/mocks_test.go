package usecase_test

import (
	"context"
	"errors"
	"math/big"
	"sync"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/mock"
	"github.com/trebuchet-org/treb-stake/internal/domain"
	"github.com/trebuchet-org/treb-stake/internal/usecase"
)

var (
	testSigner   = common.HexToAddress("0xf39Fd6e51aad88F6F4ce6aB8827279cffFb92266")
	testPair     = common.HexToAddress("0x1111111111111111111111111111111111111111")
	testWETH     = common.HexToAddress("0x2222222222222222222222222222222222222222")
	testOther    = common.HexToAddress("0x3333333333333333333333333333333333333333")
	testDeployed = common.HexToAddress("0x5FbDB2315678afecb367f032d93F642f64180aa3")
	testTxHash   = common.HexToHash("0x9a1e5c0a3b1f0c5a4d9b8e7f6a5b4c3d2e1f0a9b8c7d6e5f4a3b2c1d0e9f8a7b")
	oneEther     = big.NewInt(1_000_000_000_000_000_000)
)

// fakeToken is an in-memory token contract
type fakeToken struct {
	address  common.Address
	name     string
	symbol   string
	decimals uint8
	token0   common.Address
	token1   common.Address
	errs     map[string]error
	chain    *fakeChain
}

func (t *fakeToken) read(method string) error {
	t.chain.recordRead(t.address, method)
	return t.errs[method]
}

func (t *fakeToken) Address() common.Address { return t.address }

func (t *fakeToken) Name(ctx context.Context) (string, error) {
	return t.name, t.read("name")
}

func (t *fakeToken) Symbol(ctx context.Context) (string, error) {
	return t.symbol, t.read("symbol")
}

func (t *fakeToken) Decimals(ctx context.Context) (uint8, error) {
	return t.decimals, t.read("decimals")
}

func (t *fakeToken) Token0(ctx context.Context) (common.Address, error) {
	return t.token0, t.read("token0")
}

func (t *fakeToken) Token1(ctx context.Context) (common.Address, error) {
	return t.token1, t.read("token1")
}

// fakeChain is an in-memory NetworkSession holding tokens and a deployer
type fakeChain struct {
	network domain.NetworkContext
	tokens  map[common.Address]*fakeToken

	mu    sync.Mutex
	reads []string

	submitErr   error
	waitErr     error
	waitBlocks  bool
	submitted   []any
	submitCalls int
	closed      bool
}

func newFakeChain(balance *big.Int) *fakeChain {
	return &fakeChain{
		network: domain.NetworkContext{ChainID: 1, Signer: testSigner, Balance: balance},
		tokens:  make(map[common.Address]*fakeToken),
	}
}

func (c *fakeChain) addToken(address common.Address, name, symbol string, decimals uint8) *fakeToken {
	token := &fakeToken{address: address, name: name, symbol: symbol, decimals: decimals, errs: map[string]error{}, chain: c}
	c.tokens[address] = token
	return token
}

func (c *fakeChain) addRewardToken() *fakeToken {
	return c.addToken(domain.DefaultRewardToken, "OX", "OX", 18)
}

func (c *fakeChain) addPair(token0, token1 common.Address) *fakeToken {
	pair := c.addToken(testPair, "OX LP", domain.PairSymbol, 18)
	pair.token0 = token0
	pair.token1 = token1
	return pair
}

func (c *fakeChain) recordRead(address common.Address, method string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.reads = append(c.reads, address.Hex()+"."+method)
}

func (c *fakeChain) readCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.reads)
}

func (c *fakeChain) readsOf(address common.Address) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	n := 0
	prefix := address.Hex() + "."
	for _, r := range c.reads {
		if len(r) > len(prefix) && r[:len(prefix)] == prefix {
			n++
		}
	}
	return n
}

func (c *fakeChain) Network() domain.NetworkContext { return c.network }

func (c *fakeChain) CodeAt(ctx context.Context, address common.Address) ([]byte, error) {
	c.recordRead(address, "code")
	if _, ok := c.tokens[address]; !ok {
		return nil, nil
	}
	return []byte{0x60, 0x80}, nil
}

func (c *fakeChain) Token(address common.Address) usecase.TokenContract {
	if token, ok := c.tokens[address]; ok {
		return token
	}
	return &fakeToken{address: address, errs: map[string]error{}, chain: c}
}

func (c *fakeChain) SubmitDeployment(ctx context.Context, artifact *domain.Artifact, args ...any) (common.Address, common.Hash, error) {
	c.submitCalls++
	c.submitted = args
	if c.submitErr != nil {
		return common.Address{}, common.Hash{}, c.submitErr
	}
	return testDeployed, testTxHash, nil
}

func (c *fakeChain) WaitDeployed(ctx context.Context, txHash common.Hash) (common.Address, error) {
	if c.waitBlocks {
		<-ctx.Done()
		return common.Address{}, ctx.Err()
	}
	if c.waitErr != nil {
		return common.Address{}, c.waitErr
	}
	return testDeployed, nil
}

func (c *fakeChain) Close() { c.closed = true }

// fakeConnector hands out a fixed session
type fakeConnector struct {
	session *fakeChain
	err     error
	calls   int
}

func (f *fakeConnector) Connect(ctx context.Context, cfg *domain.DeploymentConfig) (usecase.NetworkSession, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.session, nil
}

// fakeArtifacts returns a fixed artifact
type fakeArtifacts struct {
	err error
}

func (f *fakeArtifacts) LoadArtifact(ctx context.Context, contractName string, path string) (*domain.Artifact, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &domain.Artifact{ContractName: contractName, Path: "build/StakingRewards.json", Bytecode: []byte{0x60}}, nil
}

// MockPrompter is a mock implementation of Prompter
type MockPrompter struct {
	mock.Mock
}

func (m *MockPrompter) Ask(ctx context.Context, question string) (string, error) {
	args := m.Called(ctx, question)
	return args.String(0), args.Error(1)
}

func (m *MockPrompter) Close() error {
	args := m.Called()
	return args.Error(0)
}

func answering(answer string, err error) *MockPrompter {
	p := &MockPrompter{}
	p.On("Ask", mock.Anything, mock.Anything).Return(answer, err).Once()
	p.On("Close").Return(nil).Once()
	return p
}

// MockProgressSink records what the workflow reports
type MockProgressSink struct {
	mu     sync.Mutex
	events []usecase.ProgressEvent
	infos  []string
}

func (m *MockProgressSink) OnProgress(ctx context.Context, event usecase.ProgressEvent) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.events = append(m.events, event)
}

func (m *MockProgressSink) Info(message string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.infos = append(m.infos, message)
}

func (m *MockProgressSink) Error(message string) {}

func (m *MockProgressSink) stages() []usecase.ExecutionStage {
	m.mu.Lock()
	defer m.mu.Unlock()
	var stages []usecase.ExecutionStage
	for _, e := range m.events {
		if e.Stage != "" {
			stages = append(stages, e.Stage)
		}
	}
	return stages
}

var errRPC = errors.New("rpc unavailable")
