package domain

import "time"

// ChainInfo is what a live RPC endpoint reports about itself
type ChainInfo struct {
	ChainID     uint64        `json:"chainId" yaml:"chainId"`
	BlockNumber uint64        `json:"blockNumber" yaml:"blockNumber"`
	Latency     time.Duration `json:"latency" yaml:"latency"`
}
