package chain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRegistry(t *testing.T) {
	// 1. Test Built-in
	p, ok := Get(CronosEVM)
	assert.True(t, ok)
	assert.Equal(t, "25", p.ChainID)

	// 2. Test Custom Register
	Register("my-test-chain", Preset{
		ChainID:   "123",
		BlockTime: 5 * time.Second,
	})

	p2, ok := Get("my-test-chain")
	assert.True(t, ok)
	assert.Equal(t, "123", p2.ChainID)
	assert.Equal(t, 5*time.Second, p2.BlockTime)

	// 3. Test Unknown
	_, ok = Get("unknown-chain")
	assert.False(t, ok)
}

func TestBuiltinChainIDs(t *testing.T) {
	expected := map[Network]string{
		CronosEVM:          "25",
		CronosEVMTestnet:   "338",
		CronosZKEVM:        "388",
		CronosZKEVMTestnet: "240",
	}

	for network, chainID := range expected {
		p, ok := Get(network)
		assert.True(t, ok, "missing preset for %s", network)
		assert.Equal(t, chainID, p.ChainID)
		assert.NotEmpty(t, p.Label)
	}
}
