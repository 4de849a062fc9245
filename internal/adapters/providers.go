package adapters

import (
	"github.com/google/wire"
	"github.com/trebuchet-org/toolcfg/internal/adapters/blockchain"
	"github.com/trebuchet-org/toolcfg/internal/adapters/fs"
	"github.com/trebuchet-org/toolcfg/internal/adapters/interactive"
	"github.com/trebuchet-org/toolcfg/internal/adapters/progress"
	"github.com/trebuchet-org/toolcfg/internal/adapters/signer"
	"github.com/trebuchet-org/toolcfg/internal/usecase"
)

// FSSet provides filesystem-based implementations
var FSSet = wire.NewSet(
	fs.NewFileWriterAdapter,
	wire.Bind(new(usecase.FileWriter), new(*fs.FileWriterAdapter)),

	fs.NewLocalConfigStoreAdapter,
	wire.Bind(new(usecase.LocalConfigStore), new(*fs.LocalConfigStoreAdapter)),
)

// InteractiveSet provides interactive implementations
var InteractiveSet = wire.NewSet(
	interactive.NewSelectorAdapter,
	wire.Bind(new(usecase.NetworkSelector), new(*interactive.SelectorAdapter)),
)

// BlockchainSet provides blockchain-based implementations
var BlockchainSet = wire.NewSet(
	blockchain.NewProberAdapter,
	wire.Bind(new(usecase.ChainProber), new(*blockchain.ProberAdapter)),

	signer.NewKeyInspectorAdapter,
	wire.Bind(new(usecase.KeyInspector), new(*signer.KeyInspectorAdapter)),
)

// ProgressSet provides progress reporting
var ProgressSet = wire.NewSet(
	progress.ProvideProgressSink,
)

// AllAdapters includes all adapter sets
var AllAdapters = wire.NewSet(
	FSSet,
	InteractiveSet,
	BlockchainSet,
	ProgressSet,
)
