package blockchain

import (
	"context"
	"fmt"
	"time"

	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/trebuchet-org/toolcfg/internal/domain"
	"github.com/trebuchet-org/toolcfg/internal/domain/config"
	"github.com/trebuchet-org/toolcfg/internal/usecase"
)

// defaultProbeTimeout applies when the runtime config leaves it unset
const defaultProbeTimeout = 10 * time.Second

// ProberAdapter implements the ChainProber interface using ethclient
type ProberAdapter struct {
	timeout time.Duration
}

// NewProberAdapter creates a new chain prober adapter
func NewProberAdapter(cfg *config.RuntimeConfig) *ProberAdapter {
	timeout := cfg.ProbeTimeout
	if timeout <= 0 {
		timeout = defaultProbeTimeout
	}
	return &ProberAdapter{timeout: timeout}
}

// Probe dials rpcURL and reads its chain ID and head block
func (p *ProberAdapter) Probe(ctx context.Context, rpcURL string) (*domain.ChainInfo, error) {
	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	start := time.Now()

	client, err := ethclient.DialContext(ctx, rpcURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to RPC: %w", err)
	}
	defer client.Close()

	chainID, err := client.ChainID(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get chain ID: %w", err)
	}

	blockNumber, err := client.BlockNumber(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get block number: %w", err)
	}

	return &domain.ChainInfo{
		ChainID:     chainID.Uint64(),
		BlockNumber: blockNumber,
		Latency:     time.Since(start),
	}, nil
}

// Ensure the adapter implements the interface
var _ usecase.ChainProber = (*ProberAdapter)(nil)
