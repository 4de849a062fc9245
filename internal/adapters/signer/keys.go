package signer

import (
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/trebuchet-org/toolcfg/internal/domain"
	"github.com/trebuchet-org/toolcfg/internal/usecase"
)

// KeyInspectorAdapter derives addresses from hex-encoded secp256k1 keys
type KeyInspectorAdapter struct{}

// NewKeyInspectorAdapter creates a new key inspector
func NewKeyInspectorAdapter() *KeyInspectorAdapter {
	return &KeyInspectorAdapter{}
}

// Address returns the account address controlled by privateKey. The key may
// carry a 0x prefix. Parse errors never echo the key.
func (a *KeyInspectorAdapter) Address(privateKey string) (common.Address, error) {
	hexKey := strings.TrimSpace(privateKey)
	hexKey = strings.TrimPrefix(strings.TrimPrefix(hexKey, "0x"), "0X")

	if len(hexKey) != 64 {
		return common.Address{}, fmt.Errorf("%w: expected 32 bytes, got %d hex characters", domain.ErrInvalidPrivateKey, len(hexKey))
	}

	key, err := crypto.HexToECDSA(hexKey)
	if err != nil {
		return common.Address{}, fmt.Errorf("%w: not a valid secp256k1 key", domain.ErrInvalidPrivateKey)
	}

	return crypto.PubkeyToAddress(key.PublicKey), nil
}

// Ensure the adapter implements the interface
var _ usecase.KeyInspector = (*KeyInspectorAdapter)(nil)
