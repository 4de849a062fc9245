package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/ethereum/go-ethereum/common"
	"github.com/trebuchet-org/toolcfg/internal/config"
	"github.com/trebuchet-org/toolcfg/internal/domain"
	domainconfig "github.com/trebuchet-org/toolcfg/internal/domain/config"
	"golang.org/x/sync/errgroup"
)

// maxConcurrentProbes bounds parallel RPC probes
const maxConcurrentProbes = 4

// ListNetworksParams contains parameters for listing networks
type ListNetworksParams struct {
	// Probe dials every network to fetch its chain ID and head block
	Probe bool
}

// ListNetworksResult contains the result of listing networks
type ListNetworksResult struct {
	Networks []NetworkStatus `json:"networks"`
	Probed   bool            `json:"probed"`
}

// NetworkStatus represents the status of a network
type NetworkStatus struct {
	Name                       string            `json:"name"`
	URL                        string            `json:"url"`
	AccountsEnv                string            `json:"accountsEnv,omitempty"`
	AccountCount               int               `json:"accountCount"`
	Signers                    []common.Address  `json:"signers"`
	SignerError                string            `json:"signerError,omitempty"`
	AllowUnlimitedContractSize bool              `json:"allowUnlimitedContractSize"`
	Chain                      *domain.ChainInfo `json:"chain,omitempty"`
	Explorer                   string            `json:"explorer,omitempty"`
	Error                      error             `json:"-"`
	ErrorMessage               string            `json:"error,omitempty"`
}

// ReadOnly reports whether the network has no usable signer
func (s NetworkStatus) ReadOnly() bool {
	return len(s.Signers) == 0
}

// ListNetworks is a use case for listing configured networks
type ListNetworks struct {
	cfg    *domainconfig.RuntimeConfig
	keys   KeyInspector
	prober ChainProber
	sink   ProgressSink
	log    *slog.Logger
}

// NewListNetworks creates a new ListNetworks use case
func NewListNetworks(
	cfg *domainconfig.RuntimeConfig,
	keys KeyInspector,
	prober ChainProber,
	sink ProgressSink,
	log *slog.Logger,
) *ListNetworks {
	return &ListNetworks{
		cfg:    cfg,
		keys:   keys,
		prober: prober,
		sink:   sink,
		log:    log,
	}
}

// Run executes the use case
func (uc *ListNetworks) Run(ctx context.Context, params ListNetworksParams) (*ListNetworksResult, error) {
	networks := uc.cfg.Project.Networks()

	statuses := make([]NetworkStatus, len(networks))
	for i, network := range networks {
		statuses[i] = uc.describe(network)
	}

	if !params.Probe {
		return &ListNetworksResult{Networks: statuses}, nil
	}

	uc.sink.OnProgress(ctx, ProgressEvent{
		Stage:   StageProbing,
		Total:   len(networks),
		Message: fmt.Sprintf("Probing %d networks", len(networks)),
		Spinner: true,
	})

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrentProbes)
	for i := range statuses {
		g.Go(func() error {
			uc.probe(gctx, &statuses[i])
			return nil
		})
	}
	// probe failures are recorded per network, never returned
	_ = g.Wait()

	uc.sink.OnProgress(ctx, ProgressEvent{
		Stage:   StageCompleted,
		Current: len(networks),
		Total:   len(networks),
	})

	return &ListNetworksResult{Networks: statuses, Probed: true}, nil
}

// describe builds the static part of a network status
func (uc *ListNetworks) describe(network domainconfig.Network) NetworkStatus {
	status := NetworkStatus{
		Name:                       network.Name,
		URL:                        network.URL,
		AccountsEnv:                network.AccountsEnv,
		AccountCount:               len(network.Accounts),
		Signers:                    []common.Address{},
		AllowUnlimitedContractSize: network.AllowUnlimitedContractSize,
	}

	for _, key := range network.Accounts {
		addr, err := uc.keys.Address(key)
		if err != nil {
			// the key itself is never logged
			uc.log.Debug("unusable signing key", "network", network.Name, "env", network.AccountsEnv)
			status.SignerError = err.Error()
			continue
		}
		status.Signers = append(status.Signers, addr)
	}

	return status
}

func (uc *ListNetworks) probe(ctx context.Context, status *NetworkStatus) {
	info, err := uc.prober.Probe(ctx, status.URL)
	if err != nil {
		uc.log.Debug("probe failed", "network", status.Name, "error", err)
		status.Error = err
		status.ErrorMessage = err.Error()
		return
	}

	status.Chain = info
	status.Explorer = config.ExplorerURL(info.ChainID)
	uc.log.Debug("probed network", "network", status.Name, "chainId", info.ChainID, "latency", info.Latency)
}
