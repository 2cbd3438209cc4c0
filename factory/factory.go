package factory

import (
	"context"
	"fmt"
	"sync"

	"github.com/portasui/porta"
	"github.com/portasui/porta/builder"
	"github.com/portasui/porta/chain/sui"
	"github.com/portasui/porta/chain/sui/ptb"
	"github.com/portasui/porta/config"
	factoryconfig "github.com/portasui/porta/factory/config"
	"github.com/portasui/porta/factory/defaults"
	"github.com/portasui/porta/factory/drivers"
	"github.com/portasui/porta/factory/signer"
	"github.com/portasui/porta/observability"
	"github.com/portasui/porta/protocol"
	"github.com/sirupsen/logrus"
)

// ConfigSection is the section of config.yaml holding porta's configuration.
const ConfigSection = "porta"

type FactoryOptions struct {
	// overrides the network in the config file
	Network porta.Network
	// overrides the rpc url
	URL string
	// read this file instead of searching for config.yaml
	ConfigFile string
	Metrics    *observability.Metrics
}

// Factory wires the configuration of a network into the migration builder, estimator and
// Sui client.
type Factory struct {
	Config    *factoryconfig.Config
	Coins     *porta.CoinRegistry
	Protocols *protocol.Registry
	Builder   *builder.MigrationBuilder
	Metrics   *observability.Metrics

	clientOnce sync.Once
	client     *sui.Client
	clientErr  error

	resolveMu sync.Mutex
	resolved  bool
}

func requireConfig(options *FactoryOptions, cfg *factoryconfig.Config, network porta.Network) error {
	if options.ConfigFile != "" {
		return config.RequireConfigFile(options.ConfigFile, ConfigSection, cfg, defaults.For(network))
	}
	return config.RequireConfig(ConfigSection, cfg, defaults.For(network))
}

// LoadConfig reads the configuration, layered on the embedded defaults of the selected network.
func LoadConfig(options *FactoryOptions) (*factoryconfig.Config, error) {
	if options == nil {
		options = &FactoryOptions{}
	}
	network := options.Network
	cfg := factoryconfig.Config{}
	if network == "" {
		if err := requireConfig(options, &cfg, porta.Mainnet); err != nil {
			return nil, err
		}
		// default to mainnet to avoid using testnet by accident
		network = cfg.Network
		if network == "" {
			network = porta.Mainnet
		}
	}
	if !network.Valid() {
		return nil, fmt.Errorf("unknown network %q", network)
	}
	if network != porta.Mainnet || options.Network != "" {
		cfg = factoryconfig.Config{}
		if err := requireConfig(options, &cfg, network); err != nil {
			return nil, err
		}
	}
	cfg.Network = network
	if options.URL != "" {
		cfg.URL = options.URL
	}
	return &cfg, nil
}

func NewFactory(options *FactoryOptions) (*Factory, error) {
	cfg, err := LoadConfig(options)
	if err != nil {
		return nil, err
	}
	var metrics *observability.Metrics
	if options != nil {
		metrics = options.Metrics
	}
	return NewFactoryWithConfig(cfg, metrics)
}

// NewFactoryWithConfig creates the protocol clients of every deployed protocol.  Protocols
// without a package are skipped, routes through them report as unsupported.
func NewFactoryWithConfig(cfg *factoryconfig.Config, metrics *observability.Metrics) (*Factory, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	deployed := []*protocol.Config{}
	for _, p := range cfg.GetProtocols() {
		if !factoryconfig.Deployed(p) {
			logrus.WithFields(logrus.Fields{
				"protocol": p.ID,
				"network":  cfg.Network,
			}).Warn("protocol has no deployment configured, skipping")
			continue
		}
		deployed = append(deployed, p)
	}
	registry, err := drivers.NewRegistry(deployed...)
	if err != nil {
		return nil, err
	}
	coins := cfg.CoinRegistry()
	migrationBuilder := builder.NewMigrationBuilder(coins, registry, metrics)
	if cfg.SwapProtocol != "" {
		migrationBuilder.SwapProtocol = cfg.SwapProtocol
	}
	return &Factory{
		Config:    cfg,
		Coins:     coins,
		Protocols: registry,
		Builder:   migrationBuilder,
		Metrics:   metrics,
	}, nil
}

// NewClient returns the Sui client of the network, created once.
func (f *Factory) NewClient() (*sui.Client, error) {
	f.clientOnce.Do(func() {
		f.client, f.clientErr = sui.NewClient(&f.Config.NetworkConfig)
	})
	return f.client, f.clientErr
}

// ResolveSharedVersions looks up every shared object version that is not configured.
func (f *Factory) ResolveSharedVersions(ctx context.Context) error {
	f.resolveMu.Lock()
	defer f.resolveMu.Unlock()
	if f.resolved {
		return nil
	}
	client, err := f.NewClient()
	if err != nil {
		return err
	}
	for _, p := range f.Config.GetProtocols() {
		if _, ok := f.Protocols.Get(p.ID); !ok {
			continue
		}
		if err := p.ResolveSharedVersions(ctx, client); err != nil {
			return err
		}
	}
	f.resolved = true
	return nil
}

// BuildMigration builds a migration against the live network.
func (f *Factory) BuildMigration(ctx context.Context, params builder.MigrationParams) (*builder.Migration, error) {
	if err := f.ResolveSharedVersions(ctx); err != nil {
		return nil, err
	}
	return f.Builder.BuildMigration(ctx, params)
}

func (f *Factory) NewEstimator() (*builder.Estimator, error) {
	client, err := f.NewClient()
	if err != nil {
		return nil, err
	}
	return builder.NewEstimator(client, f.Coins, f.Metrics), nil
}

func (f *Factory) NewSigner(secret config.Secret) (*signer.Signer, error) {
	key, err := secret.Load()
	if err != nil {
		return nil, err
	}
	return signer.New(key)
}

// Migrate signs and executes a built migration.  The signer must own the sender address.
func (f *Factory) Migrate(ctx context.Context, migration *builder.Migration, s *signer.Signer) (porta.TxHash, error) {
	client, err := f.NewClient()
	if err != nil {
		return "", err
	}
	from := migration.Params.GetSender()
	address, err := s.Address()
	if err != nil {
		return "", err
	}
	if !sameAddress(address, from) {
		return "", fmt.Errorf("signer address %s does not match sender %s", address, from)
	}
	publicKey, err := s.PublicKey()
	if err != nil {
		return "", err
	}

	input, err := client.FetchTxInput(ctx, from)
	if err != nil {
		return "", err
	}
	logrus.WithFields(logrus.Fields{
		"sender":      from,
		"gas_coins":   len(input.GasCoins),
		"gas_balance": input.TotalBalance().String(),
		"gas_price":   input.GasPrice,
	}).Debug("fetched gas input")
	if priority, ok := migration.Params.GetPriority(); ok {
		if err := input.SetGasFeePriority(priority); err != nil {
			return "", err
		}
	}
	tx, err := client.Builder.NewMigrationTx(migration.Transaction, from, publicKey, input)
	if err != nil {
		return "", err
	}
	sighashes, err := tx.Sighashes()
	if err != nil {
		return "", err
	}
	signatures, err := s.SignAll(sighashes)
	if err != nil {
		return "", err
	}
	if err := tx.AddSignatures(signatures...); err != nil {
		return "", err
	}
	logrus.WithFields(logrus.Fields{
		"route":  migration.Params.GetRoute(),
		"sender": from,
		"hash":   tx.Hash(),
	}).Info("submitting migration")
	return client.SubmitTx(ctx, tx)
}

func sameAddress(a, b porta.Address) bool {
	x, errX := ptb.ParseAddress(string(a))
	y, errY := ptb.ParseAddress(string(b))
	return errX == nil && errY == nil && x == y
}
