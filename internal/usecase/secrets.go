package usecase

import (
	"slices"
	"strings"

	"github.com/samber/lo"
	"github.com/trebuchet-org/toolcfg/internal/domain/config"
)

// MaskSecret hides all but the edges of a secret. Short values are hidden
// entirely.
func MaskSecret(secret string) string {
	if secret == "" {
		return ""
	}

	prefix := ""
	body := secret
	if strings.HasPrefix(body, "0x") || strings.HasPrefix(body, "0X") {
		prefix, body = body[:2], body[2:]
	}

	runes := []rune(body)
	if len(runes) <= 8 {
		return prefix + strings.Repeat("*", len(runes))
	}
	return prefix + string(runes[:4]) + "…" + string(runes[len(runes)-4:])
}

// MaskSettings returns a copy of settings with every secret masked
func MaskSettings(settings config.ProjectSettings) config.ProjectSettings {
	settings.Networks = slices.Clone(settings.Networks)
	for i := range settings.Networks {
		settings.Networks[i].Accounts = lo.Map(settings.Networks[i].Accounts, func(a string, _ int) string {
			return MaskSecret(a)
		})
	}
	settings.Etherscan.APIKey = MaskSecret(settings.Etherscan.APIKey)
	return settings
}

// hasSecrets reports whether settings carry any credential value
func hasSecrets(settings config.ProjectSettings) bool {
	return settings.Etherscan.APIKey != "" || lo.SomeBy(settings.Networks, func(n config.Network) bool {
		return len(n.Accounts) > 0
	})
}
