package usecase

import (
	"context"
	"slices"

	"github.com/trebuchet-org/toolcfg/internal/domain/config"
)

// EnvVarStatus describes one environment variable the configuration reads
type EnvVarStatus struct {
	Name   string   `json:"name"`
	Set    bool     `json:"set"`
	Empty  bool     `json:"empty"`
	Masked string   `json:"masked,omitempty"`
	UsedBy []string `json:"usedBy"`
}

// CheckEnvResult contains the result of checking the environment
type CheckEnvResult struct {
	Variables []EnvVarStatus `json:"variables"`
	EnvFiles  []string       `json:"envFiles"`
}

// Missing returns the variables that are unset or empty
func (r *CheckEnvResult) Missing() []EnvVarStatus {
	var missing []EnvVarStatus
	for _, v := range r.Variables {
		if !v.Set || v.Empty {
			missing = append(missing, v)
		}
	}
	return missing
}

// CheckEnv reports which configuration variables are present
type CheckEnv struct {
	cfg *config.RuntimeConfig
}

// NewCheckEnv creates a new CheckEnv use case
func NewCheckEnv(cfg *config.RuntimeConfig) *CheckEnv {
	return &CheckEnv{cfg: cfg}
}

// Run executes the use case. Values are only ever returned masked.
func (uc *CheckEnv) Run(ctx context.Context) (*CheckEnvResult, error) {
	var order []string
	usedBy := map[string][]string{}

	add := func(name, user string) {
		if name == "" {
			return
		}
		if _, ok := usedBy[name]; !ok {
			order = append(order, name)
		}
		if !slices.Contains(usedBy[name], user) {
			usedBy[name] = append(usedBy[name], user)
		}
	}

	for _, network := range uc.cfg.Project.Networks() {
		add(network.AccountsEnv, "networks."+network.Name+".accounts")
	}
	add(uc.cfg.Project.Etherscan().APIKeyEnv, "etherscan.apiKey")

	result := &CheckEnvResult{
		Variables: make([]EnvVarStatus, 0, len(order)),
		EnvFiles:  uc.cfg.Sources.EnvFiles,
	}
	for _, name := range order {
		status := EnvVarStatus{Name: name, UsedBy: usedBy[name]}
		if uc.cfg.Env != nil {
			value, ok := uc.cfg.Env.LookupEnv(name)
			status.Set = ok
			status.Empty = ok && value == ""
			status.Masked = MaskSecret(value)
		}
		result.Variables = append(result.Variables, status)
	}

	return result, nil
}
