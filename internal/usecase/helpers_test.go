package usecase

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"
	"sync"

	"github.com/ethereum/go-ethereum/common"
	"github.com/trebuchet-org/toolcfg/internal/config"
	"github.com/trebuchet-org/toolcfg/internal/domain"
	domainconfig "github.com/trebuchet-org/toolcfg/internal/domain/config"
)

const (
	testKey     = "0x59c6995e998f97a5a0044966f0945389dc9e86dae88c7a8412f4603b6b78690d"
	testAddress = "0x70997970C51812dc3A010C7d01b50e0d17dc79C8"
)

type fakeKeys struct{}

func (fakeKeys) Address(privateKey string) (common.Address, error) {
	if privateKey == testKey {
		return common.HexToAddress(testAddress), nil
	}
	return common.Address{}, domain.ErrInvalidPrivateKey
}

type fakeProber struct {
	mu     sync.Mutex
	chains map[string]uint64
	calls  []string
}

func (p *fakeProber) Probe(ctx context.Context, rpcURL string) (*domain.ChainInfo, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.calls = append(p.calls, rpcURL)

	chainID, ok := p.chains[rpcURL]
	if !ok {
		return nil, errors.New("connection refused")
	}
	return &domain.ChainInfo{ChainID: chainID, BlockNumber: 42}, nil
}

type fakeSelector struct {
	choice  string
	offered []string
}

func (s *fakeSelector) SelectNetwork(ctx context.Context, names []string, prompt string) (string, error) {
	s.offered = names
	return s.choice, nil
}

type recordingSink struct {
	NopProgress
	mu     sync.Mutex
	stages []string
}

func (s *recordingSink) OnProgress(ctx context.Context, event ProgressEvent) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stages = append(s.stages, event.Stage)
}

type memWriter struct {
	files map[string][]byte
	dirs  []string
}

func (w *memWriter) WriteFile(ctx context.Context, path string, content []byte) error {
	if w.files == nil {
		w.files = map[string][]byte{}
	}
	w.files[path] = content
	return nil
}

func (w *memWriter) EnsureDirectory(ctx context.Context, path string) error {
	w.dirs = append(w.dirs, path)
	return nil
}

type memStore struct {
	cfg   *domainconfig.LocalConfig
	saved int
}

func (s *memStore) Exists() bool { return s.cfg != nil }

func (s *memStore) Load(ctx context.Context) (*domainconfig.LocalConfig, error) {
	if s.cfg == nil {
		return domainconfig.DefaultLocalConfig(), nil
	}
	c := *s.cfg
	return &c, nil
}

func (s *memStore) Save(ctx context.Context, cfg *domainconfig.LocalConfig) error {
	c := *cfg
	s.cfg = &c
	s.saved++
	return nil
}

func (s *memStore) GetPath() string { return "/project/.toolcfg/config.local.json" }

func newRuntimeConfig(env config.MapEnvironment) *domainconfig.RuntimeConfig {
	return &domainconfig.RuntimeConfig{
		ProjectRoot: "/project",
		Project:     config.Defaults(env),
		Env:         env,
		Sources:     domainconfig.ConfigSources{EnvFiles: []string{}},
	}
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func containsAll(s string, parts ...string) bool {
	for _, p := range parts {
		if !strings.Contains(s, p) {
			return false
		}
	}
	return true
}
