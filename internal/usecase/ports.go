package usecase

import (
	"context"

	"github.com/ethereum/go-ethereum/common"
	"github.com/trebuchet-org/toolcfg/internal/domain"
	"github.com/trebuchet-org/toolcfg/internal/domain/config"
)

// KeyInspector derives public information from signing keys
type KeyInspector interface {
	Address(privateKey string) (common.Address, error)
}

// ChainProber queries a live RPC endpoint
type ChainProber interface {
	Probe(ctx context.Context, rpcURL string) (*domain.ChainInfo, error)
}

// NetworkSelector lets the user pick a network interactively
type NetworkSelector interface {
	SelectNetwork(ctx context.Context, names []string, prompt string) (string, error)
}

// FileWriter handles file system operations for exports
type FileWriter interface {
	WriteFile(ctx context.Context, path string, content []byte) error
	EnsureDirectory(ctx context.Context, path string) error
}

// LocalConfigStore persists per-checkout defaults
type LocalConfigStore interface {
	Exists() bool
	Load(ctx context.Context) (*config.LocalConfig, error)
	Save(ctx context.Context, cfg *config.LocalConfig) error
	GetPath() string
}

// Progress tracking interfaces

// ProgressEvent represents a progress update
type ProgressEvent struct {
	Stage   string
	Current int
	Total   int
	Message string
	Spinner bool
}

// ProgressSink receives progress events
type ProgressSink interface {
	OnProgress(ctx context.Context, event ProgressEvent)
	Info(message string)
	Error(message string)
}

// NopProgress is a no-op implementation of ProgressSink
type NopProgress struct{}

func (NopProgress) OnProgress(context.Context, ProgressEvent) {}
func (NopProgress) Info(string)                               {}
func (NopProgress) Error(string)                              {}

// Progress stages
const (
	StageProbing   = "probing"
	StageCompleted = "completed"
)
