package client

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/84hero/cronos-devkit/pkg/transport"
	"github.com/shopspring/decimal"
)

// TokenService groups native-coin and ERC20 token operations. The mutating
// operations (Transfer, Wrap, Swap) attach the configured provider endpoint
// so the remote signer can execute them.
type TokenService struct {
	service
}

// NativeBalance returns the native-coin balance of an address.
func (s *TokenService) NativeBalance(ctx context.Context, address string) (*transport.Response[Balance], error) {
	path, q, err := s.route("token", "native-token-balance")
	if err != nil {
		return nil, err
	}
	q.Set("address", address)
	return transport.Do[Balance](ctx, s.http, transport.Request{
		Op:     "token.native-balance",
		Method: http.MethodGet,
		Path:   path,
		Query:  q,
	})
}

// ERC20Balance returns the ERC20 balance of an address at a block height.
// An empty blockHeight defaults to "latest".
func (s *TokenService) ERC20Balance(ctx context.Context, address, contractAddress, blockHeight string) (*transport.Response[TokenBalance], error) {
	path, q, err := s.route("token", "erc20-token-balance")
	if err != nil {
		return nil, err
	}
	if blockHeight == "" {
		blockHeight = "latest"
	}
	q.Set("address", address)
	q.Set("contractAddress", contractAddress)
	q.Set("blockHeight", blockHeight)
	return transport.Do[TokenBalance](ctx, s.http, transport.Request{
		Op:     "token.erc20-balance",
		Method: http.MethodGet,
		Path:   path,
		Query:  q,
	})
}

type transferRequest struct {
	To              string          `json:"to"`
	Amount          decimal.Decimal `json:"amount"`
	ContractAddress string          `json:"contractAddress,omitempty"`
	Provider        string          `json:"provider,omitempty"`
}

type exchangeRequest struct {
	FromContractAddress string          `json:"fromContractAddress"`
	ToContractAddress   string          `json:"toContractAddress"`
	Amount              decimal.Decimal `json:"amount"`
	Provider            string          `json:"provider,omitempty"`
}

// Transfer submits a transfer of the native coin, or of an ERC20 token when
// contractAddress is non-empty. The data shape of the response depends on the
// signer, so it is passed through raw.
func (s *TokenService) Transfer(ctx context.Context, to string, amount decimal.Decimal, contractAddress string) (*transport.Response[json.RawMessage], error) {
	path, q, err := s.route("token", "transfer")
	if err != nil {
		return nil, err
	}
	return transport.Do[json.RawMessage](ctx, s.http, transport.Request{
		Op:     "token.transfer",
		Method: http.MethodPost,
		Path:   path,
		Query:  q,
		Body: transferRequest{
			To:              to,
			Amount:          amount,
			ContractAddress: contractAddress,
			Provider:        s.cfg.Provider(),
		},
	})
}

// Wrap exchanges a token for its wrapped counterpart.
func (s *TokenService) Wrap(ctx context.Context, fromContractAddress, toContractAddress string, amount decimal.Decimal) (*transport.Response[json.RawMessage], error) {
	return s.exchange(ctx, "wrap", "token.wrap", fromContractAddress, toContractAddress, amount)
}

// Swap trades one token for another via the platform's router.
func (s *TokenService) Swap(ctx context.Context, fromContractAddress, toContractAddress string, amount decimal.Decimal) (*transport.Response[json.RawMessage], error) {
	return s.exchange(ctx, "swap", "token.swap", fromContractAddress, toContractAddress, amount)
}

// exchange covers wrap and swap, which share their request shape.
func (s *TokenService) exchange(ctx context.Context, action, op, from, to string, amount decimal.Decimal) (*transport.Response[json.RawMessage], error) {
	path, q, err := s.route("token", action)
	if err != nil {
		return nil, err
	}
	return transport.Do[json.RawMessage](ctx, s.http, transport.Request{
		Op:     op,
		Method: http.MethodPost,
		Path:   path,
		Query:  q,
		Body: exchangeRequest{
			FromContractAddress: from,
			ToContractAddress:   to,
			Amount:              amount,
			Provider:            s.cfg.Provider(),
		},
	})
}
