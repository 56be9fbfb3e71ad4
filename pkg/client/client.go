package client

import (
	"fmt"
	"net/http"
	"net/url"

	"github.com/84hero/cronos-devkit/pkg/config"
	"github.com/84hero/cronos-devkit/pkg/transport"
)

// Client bundles the per-resource services of the Cronos developer platform
// API. All services share one configuration and one underlying HTTP client.
type Client struct {
	Wallet      *WalletService
	Token       *TokenService
	Transaction *TransactionService
	Contract    *ContractService
	Block       *BlockService
}

// Option customizes a Client.
type Option func(*options)

type options struct {
	baseURL    string
	httpClient *http.Client
}

// WithBaseURL overrides the production API endpoint.
func WithBaseURL(u string) Option {
	return func(o *options) { o.baseURL = u }
}

// WithHTTPClient overrides the underlying http.Client.
func WithHTTPClient(h *http.Client) Option {
	return func(o *options) { o.httpClient = h }
}

// New creates a Client bound to the given configuration. The configuration is
// not validated here; operations that need a missing field fail with
// config.ErrNotConfigured before any request is issued.
func New(cfg *config.Config, opts ...Option) *Client {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	s := service{
		cfg:  cfg,
		http: transport.NewClient(o.baseURL, o.httpClient),
	}

	return &Client{
		Wallet:      &WalletService{s},
		Token:       &TokenService{s},
		Transaction: &TransactionService{s},
		Contract:    &ContractService{s},
		Block:       &BlockService{s},
	}
}

// service carries the shared state every facade operation reads.
type service struct {
	cfg  *config.Config
	http *transport.Client
}

// route resolves the chain identifier and API key from configuration and
// builds the resource path plus the base query for one operation. Fails fast
// with config.ErrNotConfigured before any network I/O when unconfigured.
func (s service) route(resource, action string) (string, url.Values, error) {
	chainID, err := s.cfg.ChainID()
	if err != nil {
		return "", nil, err
	}
	key, err := s.cfg.APIKey()
	if err != nil {
		return "", nil, err
	}

	q := url.Values{}
	q.Set("apiKey", key)
	return fmt.Sprintf("/%s/%s/%s", resource, chainID, action), q, nil
}
