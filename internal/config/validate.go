package config

import (
	"errors"
	"fmt"
	"net/url"

	"github.com/trebuchet-org/toolcfg/internal/domain"
	"github.com/trebuchet-org/toolcfg/internal/domain/config"
)

var allowedSchemes = map[string]bool{
	"http":  true,
	"https": true,
	"ws":    true,
	"wss":   true,
}

// Validate checks settings for values the toolchain cannot use. All
// failures are reported together.
func Validate(settings config.ProjectSettings) error {
	var errs []error

	seen := make(map[string]bool, len(settings.Networks))
	for _, n := range settings.Networks {
		field := "networks." + n.Name
		if n.Name == "" {
			errs = append(errs, &domain.ConfigFieldError{Field: "networks", Reason: "network name is empty"})
			continue
		}
		if seen[n.Name] {
			errs = append(errs, &domain.ConfigFieldError{Field: field, Reason: "declared twice"})
		}
		seen[n.Name] = true

		if err := validateURL(n.URL); err != nil {
			errs = append(errs, &domain.ConfigFieldError{Field: field + ".url", Reason: err.Error()})
		}
	}

	if settings.Solidity.Version == "" {
		errs = append(errs, &domain.ConfigFieldError{Field: "solidity.version", Reason: "must not be empty"})
	}
	if o := settings.Solidity.Settings.Optimizer; o.Enabled && o.Runs <= 0 {
		errs = append(errs, &domain.ConfigFieldError{
			Field:  "solidity.settings.optimizer.runs",
			Reason: fmt.Sprintf("must be positive when the optimizer is enabled, got %d", o.Runs),
		})
	}
	if settings.Mocha.Timeout <= 0 {
		errs = append(errs, &domain.ConfigFieldError{
			Field:  "mocha.timeout",
			Reason: fmt.Sprintf("must be positive, got %d", settings.Mocha.Timeout),
		})
	}

	return errors.Join(errs...)
}

func validateURL(raw string) error {
	if raw == "" {
		return fmt.Errorf("must not be empty")
	}
	u, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("not a valid URL: %w", err)
	}
	if !allowedSchemes[u.Scheme] {
		return fmt.Errorf("unsupported scheme %q", u.Scheme)
	}
	if u.Host == "" {
		return fmt.Errorf("missing host")
	}
	return nil
}
