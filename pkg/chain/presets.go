package chain

import (
	"sync"
	"time"
)

// Network selects one of the supported chain/environment pairs.
type Network string

const (
	CronosEVM          Network = "cronos-evm-mainnet"
	CronosEVMTestnet   Network = "cronos-evm-testnet"
	CronosZKEVM        Network = "cronos-zkevm-mainnet"
	CronosZKEVMTestnet Network = "cronos-zkevm-testnet"
)

// Preset defines the fixed parameters of a supported network
type Preset struct {
	ChainID   string        // Numeric chain identifier used in API paths
	Label     string        // Human-readable network name
	BlockTime time.Duration // Average block time (informational)
}

var (
	registry = make(map[Network]Preset)
	mu       sync.RWMutex
)

// Register adds a network preset to the global registry.
func Register(n Network, p Preset) {
	mu.Lock()
	defer mu.Unlock()
	registry[n] = p
}

// Get retrieves a preset from the registry by network selector.
func Get(n Network) (Preset, bool) {
	mu.RLock()
	defer mu.RUnlock()
	p, ok := registry[n]
	return p, ok
}

// Built-in presets
func init() {
	Register(CronosEVM, Preset{
		ChainID:   "25",
		Label:     "Cronos EVM Mainnet",
		BlockTime: 6 * time.Second,
	})

	Register(CronosEVMTestnet, Preset{
		ChainID:   "338",
		Label:     "Cronos EVM Testnet",
		BlockTime: 6 * time.Second,
	})

	Register(CronosZKEVM, Preset{
		ChainID:   "388",
		Label:     "Cronos ZK-EVM Mainnet",
		BlockTime: 2 * time.Second,
	})

	Register(CronosZKEVMTestnet, Preset{
		ChainID:   "240",
		Label:     "Cronos ZK-EVM Testnet",
		BlockTime: 2 * time.Second,
	})
}
