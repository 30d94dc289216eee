package usecase

import (
	"context"
	"errors"

	"github.com/ethereum/go-ethereum/common"
	"github.com/trebuchet-org/treb-stake/internal/domain"
	"golang.org/x/sync/errgroup"
)

var errNoCode = errors.New("no contract code at address")

// TokenIntrospector reads token metadata. Independent calls are issued
// concurrently and always joined before a descriptor is returned.
type TokenIntrospector struct {
	reader TokenReader
}

// NewTokenIntrospector creates a new TokenIntrospector
func NewTokenIntrospector(reader TokenReader) *TokenIntrospector {
	return &TokenIntrospector{reader: reader}
}

// InspectToken reads name, symbol and decimals of the token at address.
func (ti *TokenIntrospector) InspectToken(ctx context.Context, address common.Address) (*domain.TokenDescriptor, error) {
	if err := ti.requireCode(ctx, address); err != nil {
		return nil, err
	}

	token := ti.reader.Token(address)

	var (
		name     string
		symbol   string
		decimals uint8
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		name, err = token.Name(gctx)
		return readErr(address, "name", err)
	})
	g.Go(func() (err error) {
		symbol, err = token.Symbol(gctx)
		return readErr(address, "symbol", err)
	})
	g.Go(func() (err error) {
		decimals, err = token.Decimals(gctx)
		return readErr(address, "decimals", err)
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &domain.TokenDescriptor{
		Address:  address,
		Name:     name,
		Symbol:   symbol,
		Decimals: decimals,
	}, nil
}

// InspectTokens inspects several tokens concurrently. Results keep the order of addresses.
func (ti *TokenIntrospector) InspectTokens(ctx context.Context, addresses ...common.Address) ([]*domain.TokenDescriptor, error) {
	descriptors := make([]*domain.TokenDescriptor, len(addresses))

	g, gctx := errgroup.WithContext(ctx)
	for i, address := range addresses {
		g.Go(func() error {
			desc, err := ti.InspectToken(gctx, address)
			if err != nil {
				return err
			}
			descriptors[i] = desc
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return descriptors, nil
}

// InspectSymbol reads only the symbol of the token at address. Name and decimals
// are optional in ERC20 and are left empty.
func (ti *TokenIntrospector) InspectSymbol(ctx context.Context, address common.Address) (*domain.TokenDescriptor, error) {
	if err := ti.requireCode(ctx, address); err != nil {
		return nil, err
	}

	symbol, err := ti.reader.Token(address).Symbol(ctx)
	if err != nil {
		return nil, readErr(address, "symbol", err)
	}

	return &domain.TokenDescriptor{Address: address, Symbol: symbol}, nil
}

// InspectSymbols reads the symbols of several tokens concurrently, keeping the order of addresses.
func (ti *TokenIntrospector) InspectSymbols(ctx context.Context, addresses ...common.Address) ([]*domain.TokenDescriptor, error) {
	descriptors := make([]*domain.TokenDescriptor, len(addresses))

	g, gctx := errgroup.WithContext(ctx)
	for i, address := range addresses {
		g.Go(func() error {
			desc, err := ti.InspectSymbol(gctx, address)
			if err != nil {
				return err
			}
			descriptors[i] = desc
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return descriptors, nil
}

// InspectPair reads the constituent token addresses of a liquidity-pair token.
func (ti *TokenIntrospector) InspectPair(ctx context.Context, pairToken *domain.TokenDescriptor) (*domain.PairDescriptor, error) {
	pair := ti.reader.Token(pairToken.Address)

	var token0, token1 common.Address

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		token0, err = pair.Token0(gctx)
		return readErr(pairToken.Address, "token0", err)
	})
	g.Go(func() (err error) {
		token1, err = pair.Token1(gctx)
		return readErr(pairToken.Address, "token1", err)
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &domain.PairDescriptor{
		Address: pairToken.Address,
		Symbol:  pairToken.Symbol,
		Token0:  token0,
		Token1:  token1,
	}, nil
}

func (ti *TokenIntrospector) requireCode(ctx context.Context, address common.Address) error {
	code, err := ti.reader.CodeAt(ctx, address)
	if err != nil {
		return domain.ContractReadErr{Address: address, Method: "code", Err: err}
	}
	if len(code) == 0 {
		return domain.ContractReadErr{Address: address, Method: "code", Err: errNoCode}
	}
	return nil
}

func readErr(address common.Address, method string, err error) error {
	if err == nil {
		return nil
	}
	return domain.ContractReadErr{Address: address, Method: method, Err: err}
}
