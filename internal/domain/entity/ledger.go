package entity

import "time"

// LedgerNetwork describes the Fabric network the gateway is connected to.
type LedgerNetwork struct {
	Organization string `json:"organization"`
	Channel      string `json:"channel"`
	Chaincode    string `json:"chaincode"`
	Status       string `json:"status"`
}

// BlockchainStatus is the gateway's view of the ledger connection.
type BlockchainStatus struct {
	Initialized bool          `json:"initialized"`
	Connected   bool          `json:"connected"`
	Timestamp   time.Time     `json:"timestamp"`
	Network     LedgerNetwork `json:"network"`
}

// Healthy reports whether the ledger is usable for reads.
func (s *BlockchainStatus) Healthy() bool {
	return s != nil && s.Initialized && s.Connected
}

// LedgerEvent is one entry of a waste batch's on-chain history.
type LedgerEvent struct {
	TxID      string    `json:"txId"`
	Action    string    `json:"action"`
	Actor     string    `json:"actor,omitempty"`
	Timestamp time.Time `json:"timestamp"`
	Payload   string    `json:"payload,omitempty"`
}
