package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/84hero/cronos-devkit/pkg/chain"
	"github.com/spf13/viper"
)

// ErrNotConfigured is returned when an accessor is used before New was called
// with the field it needs.
var ErrNotConfigured = errors.New("sdk not configured")

// Options carries the caller-supplied settings for New.
type Options struct {
	Network  chain.Network `mapstructure:"network"`
	APIKey   string        `mapstructure:"api_key"`
	Provider string        `mapstructure:"provider"` // optional signer endpoint
}

// Config holds the process-wide SDK settings. It is written once at startup
// and read by every operation; concurrent re-initialization racing with
// in-flight reads is not protected against.
type Config struct {
	network  chain.Network
	apiKey   string
	provider string
	set      bool
}

// New builds a Config from the given options, overwriting all fields
// unconditionally. Required fields are checked by the accessors that read
// them, not here.
func New(opts Options) *Config {
	return &Config{
		network:  opts.Network,
		apiKey:   opts.APIKey,
		provider: opts.Provider,
		set:      true,
	}
}

// Load reads options from a config file with environment overrides
// (CRONOS_ prefix) and builds a Config from them.
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetEnvPrefix("CRONOS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		return nil, err
	}

	var opts Options
	if err := v.Unmarshal(&opts); err != nil {
		return nil, err
	}

	return New(opts), nil
}

// APIKey returns the configured key, or ErrNotConfigured if the SDK was never
// initialized or the key is empty.
func (c *Config) APIKey() (string, error) {
	if c == nil || !c.set || c.apiKey == "" {
		return "", fmt.Errorf("%w: api key missing", ErrNotConfigured)
	}
	return c.apiKey, nil
}

// Network returns the configured network selector.
func (c *Config) Network() chain.Network {
	if c == nil {
		return ""
	}
	return c.network
}

// ChainID resolves the configured network to its numeric chain identifier.
func (c *Config) ChainID() (string, error) {
	if c == nil || !c.set {
		return "", fmt.Errorf("%w: network missing", ErrNotConfigured)
	}
	p, ok := chain.Get(c.network)
	if !ok {
		return "", fmt.Errorf("%w: unknown network %q", ErrNotConfigured, c.network)
	}
	return p.ChainID, nil
}

// Provider returns the optional signer endpoint. Empty when not set.
func (c *Config) Provider() string {
	if c == nil {
		return ""
	}
	return c.provider
}
