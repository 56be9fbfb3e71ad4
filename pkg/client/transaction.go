package client

import (
	"context"
	"net/http"

	"github.com/84hero/cronos-devkit/pkg/transport"
)

// TransactionService groups transaction query operations.
type TransactionService struct {
	service
}

// ByAddress returns a page of transactions for an address. session is the
// pagination cursor from a previous call (empty for the first page); an empty
// limit defaults to "20".
func (s *TransactionService) ByAddress(ctx context.Context, address, session, limit string) (*transport.Response[TransactionList], error) {
	path, q, err := s.route("transaction", "address")
	if err != nil {
		return nil, err
	}
	if limit == "" {
		limit = "20"
	}
	q.Set("address", address)
	q.Set("session", session)
	q.Set("limit", limit)
	return transport.Do[TransactionList](ctx, s.http, transport.Request{
		Op:     "transaction.by-address",
		Method: http.MethodGet,
		Path:   path,
		Query:  q,
	})
}

// ByHash returns one transaction by its hash.
func (s *TransactionService) ByHash(ctx context.Context, txHash string) (*transport.Response[TransactionRecord], error) {
	path, q, err := s.route("transaction", "tx-hash")
	if err != nil {
		return nil, err
	}
	q.Set("txHash", txHash)
	return transport.Do[TransactionRecord](ctx, s.http, transport.Request{
		Op:     "transaction.by-hash",
		Method: http.MethodGet,
		Path:   path,
		Query:  q,
	})
}

// Status returns the confirmation state of a transaction.
func (s *TransactionService) Status(ctx context.Context, txHash string) (*transport.Response[TransactionStatus], error) {
	path, q, err := s.route("transaction", "status")
	if err != nil {
		return nil, err
	}
	q.Set("txHash", txHash)
	return transport.Do[TransactionStatus](ctx, s.http, transport.Request{
		Op:     "transaction.status",
		Method: http.MethodGet,
		Path:   path,
		Query:  q,
	})
}
