package usecase

import (
	"context"
	"fmt"

	"github.com/sahilm/fuzzy"
	"github.com/samber/lo"
	"github.com/trebuchet-org/toolcfg/internal/domain"
	"github.com/trebuchet-org/toolcfg/internal/domain/config"
)

// maxSuggestions caps "did you mean" candidates
const maxSuggestions = 3

// ShowNetworkParams contains parameters for showing a single network
type ShowNetworkParams struct {
	// Name may be empty, in which case the configured default or an
	// interactive choice is used
	Name  string
	Probe bool
}

// ShowNetwork is a use case for inspecting one network
type ShowNetwork struct {
	cfg      *config.RuntimeConfig
	networks *ListNetworks
	selector NetworkSelector
}

// NewShowNetwork creates a new ShowNetwork use case
func NewShowNetwork(cfg *config.RuntimeConfig, networks *ListNetworks, selector NetworkSelector) *ShowNetwork {
	return &ShowNetwork{
		cfg:      cfg,
		networks: networks,
		selector: selector,
	}
}

// Run executes the use case
func (uc *ShowNetwork) Run(ctx context.Context, params ShowNetworkParams) (*NetworkStatus, error) {
	name, err := uc.resolveName(ctx, params.Name)
	if err != nil {
		return nil, err
	}

	network, ok := uc.cfg.Project.Network(name)
	if !ok {
		return nil, &domain.UnknownNetworkError{
			Name:        name,
			Suggestions: SuggestNetworks(name, uc.cfg.Project.NetworkNames()),
		}
	}

	status := uc.networks.describe(network)
	if params.Probe {
		uc.networks.probe(ctx, &status)
	}

	return &status, nil
}

func (uc *ShowNetwork) resolveName(ctx context.Context, name string) (string, error) {
	if name != "" {
		return name, nil
	}
	if uc.cfg.Network != "" {
		return uc.cfg.Network, nil
	}
	if uc.cfg.NonInteractive {
		return "", fmt.Errorf("no network specified, pass a name or use --network")
	}
	return uc.selector.SelectNetwork(ctx, uc.cfg.Project.NetworkNames(), "Select network")
}

// SuggestNetworks returns the configured names closest to input
func SuggestNetworks(input string, names []string) []string {
	matches := fuzzy.Find(input, names)
	suggestions := lo.Map(matches, func(m fuzzy.Match, _ int) string { return m.Str })

	// fuzzy only matches in-order subsequences, so also offer names
	// sharing a prefix segment (bsc_main -> bsc_mainnet, bsc_testnet)
	if len(suggestions) == 0 {
		for _, name := range names {
			if sharedPrefix(input, name) >= 3 {
				suggestions = append(suggestions, name)
			}
		}
	}

	if len(suggestions) > maxSuggestions {
		suggestions = suggestions[:maxSuggestions]
	}
	return suggestions
}

func sharedPrefix(a, b string) int {
	n := 0
	for n < len(a) && n < len(b) && a[n] == b[n] {
		n++
	}
	return n
}
