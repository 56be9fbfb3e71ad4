package client

import (
	"context"
	"net/http"

	"github.com/84hero/cronos-devkit/pkg/transport"
)

// WalletService groups wallet operations.
type WalletService struct {
	service
}

// Create provisions a new wallet on the configured network. The credentials
// in the response are generated remotely and never stored by the SDK.
func (s *WalletService) Create(ctx context.Context) (*transport.Response[WalletCredentials], error) {
	path, q, err := s.route("wallet", "create")
	if err != nil {
		return nil, err
	}
	return transport.Do[WalletCredentials](ctx, s.http, transport.Request{
		Op:     "wallet.create",
		Method: http.MethodPost,
		Path:   path,
		Query:  q,
	})
}

// Balance returns the native-coin balance of an address.
func (s *WalletService) Balance(ctx context.Context, address string) (*transport.Response[Balance], error) {
	path, q, err := s.route("wallet", "balance")
	if err != nil {
		return nil, err
	}
	q.Set("address", address)
	return transport.Do[Balance](ctx, s.http, transport.Request{
		Op:     "wallet.balance",
		Method: http.MethodGet,
		Path:   path,
		Query:  q,
	})
}
