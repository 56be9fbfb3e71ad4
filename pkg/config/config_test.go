package config

import (
	"errors"
	"os"
	"testing"

	"github.com/84hero/cronos-devkit/pkg/chain"
	"github.com/stretchr/testify/assert"
)

func TestNew(t *testing.T) {
	cfg := New(Options{
		Network:  chain.CronosEVMTestnet,
		APIKey:   "test-key",
		Provider: "https://signer.example.com",
	})

	key, err := cfg.APIKey()
	assert.NoError(t, err)
	assert.Equal(t, "test-key", key)

	id, err := cfg.ChainID()
	assert.NoError(t, err)
	assert.Equal(t, "338", id)

	assert.Equal(t, "https://signer.example.com", cfg.Provider())
}

func TestNotConfigured(t *testing.T) {
	// 1. Zero value: never initialized
	var cfg Config

	_, err := cfg.APIKey()
	assert.True(t, errors.Is(err, ErrNotConfigured))

	_, err = cfg.ChainID()
	assert.True(t, errors.Is(err, ErrNotConfigured))

	// Provider never fails
	assert.Equal(t, "", cfg.Provider())

	// 2. Nil receiver behaves the same
	var nilCfg *Config
	_, err = nilCfg.APIKey()
	assert.True(t, errors.Is(err, ErrNotConfigured))
	assert.Equal(t, "", nilCfg.Provider())

	// 3. Initialized but empty key
	empty := New(Options{Network: chain.CronosEVM})
	_, err = empty.APIKey()
	assert.True(t, errors.Is(err, ErrNotConfigured))
}

func TestChainID_UnknownNetwork(t *testing.T) {
	cfg := New(Options{Network: "no-such-network", APIKey: "k"})
	_, err := cfg.ChainID()
	assert.True(t, errors.Is(err, ErrNotConfigured))
	assert.Contains(t, err.Error(), "no-such-network")
}

func TestLoad(t *testing.T) {
	content := `
network: "cronos-evm-testnet"
api_key: "file-key"
provider: "https://signer.example.com"
`
	tmpFile, err := os.CreateTemp("", "config_*.yaml")
	assert.NoError(t, err)
	defer os.Remove(tmpFile.Name())

	_, err = tmpFile.WriteString(content)
	assert.NoError(t, err)
	tmpFile.Close()

	cfg, err := Load(tmpFile.Name())
	assert.NoError(t, err)

	key, err := cfg.APIKey()
	assert.NoError(t, err)
	assert.Equal(t, "file-key", key)

	id, err := cfg.ChainID()
	assert.NoError(t, err)
	assert.Equal(t, "338", id)

	// File not found
	_, err = Load("non_existent_file.yaml")
	assert.Error(t, err)
}

func TestLoad_EnvVars(t *testing.T) {
	content := `
network: "cronos-evm-mainnet"
api_key: "file-key"
`
	tmpFile, err := os.CreateTemp("", "config_env_*.yaml")
	assert.NoError(t, err)
	defer os.Remove(tmpFile.Name())
	_, err = tmpFile.WriteString(content)
	assert.NoError(t, err)
	tmpFile.Close()

	os.Setenv("CRONOS_API_KEY", "env-key")
	defer os.Unsetenv("CRONOS_API_KEY")

	cfg, err := Load(tmpFile.Name())
	assert.NoError(t, err)

	key, err := cfg.APIKey()
	assert.NoError(t, err)
	assert.Equal(t, "env-key", key)
}
