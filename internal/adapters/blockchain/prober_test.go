package blockchain

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/trebuchet-org/toolcfg/internal/domain/config"
)

// newRPCServer answers eth_chainId and eth_blockNumber with fixed values
func newRPCServer(t *testing.T, chainID, block string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			ID     json.RawMessage `json:"id"`
			Method string          `json:"method"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		resp := map[string]any{"jsonrpc": "2.0", "id": req.ID}
		switch req.Method {
		case "eth_chainId":
			resp["result"] = chainID
		case "eth_blockNumber":
			resp["result"] = block
		default:
			resp["error"] = map[string]any{"code": -32601, "message": "method not found"}
		}

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(resp)
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestProberAdapter(t *testing.T) {
	t.Run("reads chain id and head block", func(t *testing.T) {
		srv := newRPCServer(t, "0x38", "0x2a")
		prober := NewProberAdapter(&config.RuntimeConfig{ProbeTimeout: 5 * time.Second})

		info, err := prober.Probe(context.Background(), srv.URL)
		require.NoError(t, err)
		assert.Equal(t, uint64(56), info.ChainID)
		assert.Equal(t, uint64(42), info.BlockNumber)
	})

	t.Run("unreachable endpoint", func(t *testing.T) {
		srv := newRPCServer(t, "0x1", "0x1")
		url := srv.URL
		srv.Close()

		prober := NewProberAdapter(&config.RuntimeConfig{ProbeTimeout: time.Second})
		_, err := prober.Probe(context.Background(), url)
		require.Error(t, err)
	})

	t.Run("default timeout", func(t *testing.T) {
		assert.Equal(t, defaultProbeTimeout, NewProberAdapter(&config.RuntimeConfig{}).timeout)
	})
}
