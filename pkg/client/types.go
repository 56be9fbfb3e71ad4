package client

// WalletCredentials is returned by wallet creation.
type WalletCredentials struct {
	Address    string `json:"address"`
	PrivateKey string `json:"privateKey"`
	Mnemonic   string `json:"mnemonic,omitempty"`
}

// Balance is the native-coin balance of an address, in wei as a decimal
// string.
type Balance struct {
	Balance string `json:"balance"`
}

// TokenBalance is the ERC20 balance of an address at a block height, in the
// token's smallest unit as a decimal string.
type TokenBalance struct {
	TokenBalance string `json:"tokenBalance"`
}

// TransactionRecord is one transaction as reported by the explorer.
type TransactionRecord struct {
	Hash        string `json:"hash"`
	From        string `json:"from"`
	To          string `json:"to"`
	Value       string `json:"value"`
	BlockNumber int64  `json:"blockNumber"`
	Timestamp   uint64 `json:"timestamp"`
	Status      string `json:"status,omitempty"`
	GasUsed     string `json:"gasUsed,omitempty"`
}

// TransactionList is a page of transactions for an address. Session is the
// pagination cursor to pass into the next call; empty when exhausted.
type TransactionList struct {
	Transactions []TransactionRecord `json:"transactions"`
	Session      string              `json:"session,omitempty"`
}

// TransactionStatus reports the confirmation state of a transaction.
type TransactionStatus struct {
	Status string `json:"status"`
}

// ContractCode holds the verified ABI of a contract as a JSON string.
type ContractCode struct {
	ABI string `json:"abi"`
}
