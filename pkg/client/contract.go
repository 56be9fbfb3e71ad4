package client

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/84hero/cronos-devkit/pkg/transport"
	"github.com/ethereum/go-ethereum/accounts/abi"
)

// ContractService groups smart-contract metadata operations.
type ContractService struct {
	service
}

// ABI returns the verified ABI of a contract as a JSON string.
func (s *ContractService) ABI(ctx context.Context, contractAddress string) (*transport.Response[ContractCode], error) {
	path, q, err := s.route("contract", "contract-abi")
	if err != nil {
		return nil, err
	}
	q.Set("contractAddress", contractAddress)
	return transport.Do[ContractCode](ctx, s.http, transport.Request{
		Op:     "contract.abi",
		Method: http.MethodGet,
		Path:   path,
		Query:  q,
	})
}

// ParsedABI fetches the verified ABI and parses it with go-ethereum's ABI
// parser, giving callers direct access to method and event definitions.
func (s *ContractService) ParsedABI(ctx context.Context, contractAddress string) (*abi.ABI, error) {
	resp, err := s.ABI(ctx, contractAddress)
	if err != nil {
		return nil, err
	}
	parsed, err := abi.JSON(strings.NewReader(resp.Data.ABI))
	if err != nil {
		return nil, fmt.Errorf("contract.abi: %w", err)
	}
	return &parsed, nil
}
