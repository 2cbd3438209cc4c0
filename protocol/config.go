package protocol

import (
	"context"
	"fmt"
	"slices"

	"github.com/portasui/porta"
	"github.com/portasui/porta/chain/sui/ptb"
	"github.com/sirupsen/logrus"
)

// Metadata is the descriptive part of a protocol deployment.
type Metadata struct {
	Name           string             `yaml:"name" json:"name"`
	Kind           porta.ProtocolKind `yaml:"kind" json:"kind"`
	Website        string             `yaml:"website,omitempty" json:"website,omitempty"`
	Description    string             `yaml:"description,omitempty" json:"description,omitempty"`
	SupportedCoins []porta.Coin       `yaml:"supported_coins" json:"supported_coins"`
}

func (m *Metadata) SupportsCoin(coin porta.Coin) bool {
	return slices.Contains(m.SupportedCoins, coin.Normalize())
}

// SharedObjectConfig references a shared object.  A zero InitialSharedVersion must be resolved
// from the network before the object can be used.
type SharedObjectConfig struct {
	ID                   string `yaml:"id" json:"id"`
	InitialSharedVersion uint64 `yaml:"initial_shared_version,omitempty" json:"initial_shared_version,omitempty"`
}

func (o *SharedObjectConfig) ObjectID() (ptb.ObjectID, error) {
	return ptb.ParseAddress(o.ID)
}

func (o *SharedObjectConfig) Operand(mutable bool) (ptb.ObjectOperand, error) {
	id, err := o.ObjectID()
	if err != nil {
		return ptb.ObjectOperand{}, fmt.Errorf("invalid shared object %q: %v", o.ID, err)
	}
	return ptb.Shared(id, o.InitialSharedVersion, mutable), nil
}

// PoolConfig is a two-coin pool in the order of the pool's type parameters.  Liquidity pools
// are created in canonical order, CoinA sorting before CoinB by normalized coin type.
type PoolConfig struct {
	SharedObjectConfig `yaml:",inline"`
	CoinA              porta.Coin                `yaml:"coin_a" json:"coin_a"`
	CoinB              porta.Coin                `yaml:"coin_b" json:"coin_b"`
	FeeRate            porta.AmountHumanReadable `yaml:"fee_rate,omitempty" json:"fee_rate,omitempty"`
}

func (p *PoolConfig) Has(coin porta.Coin) bool {
	coin = coin.Normalize()
	return p.CoinA.Normalize() == coin || p.CoinB.Normalize() == coin
}

// Other returns the coin the pool pairs with the given one.
func (p *PoolConfig) Other(coin porta.Coin) (porta.Coin, bool) {
	switch coin.Normalize() {
	case p.CoinA.Normalize():
		return p.CoinB.Normalize(), true
	case p.CoinB.Normalize():
		return p.CoinA.Normalize(), true
	}
	return "", false
}

func (p *PoolConfig) String() string {
	return fmt.Sprintf("%s/%s (%s)", p.CoinA, p.CoinB, p.ID)
}

// Config is the deployment of one protocol on one network.
type Config struct {
	ID       porta.ProtocolID `yaml:"id" json:"id"`
	Metadata `yaml:",inline"`
	Package  string `yaml:"package" json:"package"`
	// Shared objects by role, e.g. "market" or "global_config"
	Objects map[string]*SharedObjectConfig `yaml:"objects,omitempty" json:"objects,omitempty"`
	// Per coin reserve objects, used by lending pools keyed by coin
	Reserves map[porta.Coin]*SharedObjectConfig `yaml:"reserves,omitempty" json:"reserves,omitempty"`
	Pools    []*PoolConfig                      `yaml:"pools,omitempty" json:"pools,omitempty"`
}

func (c *Config) PackageID() (ptb.ObjectID, error) {
	id, err := ptb.ParseAddress(c.Package)
	if err != nil {
		return ptb.ObjectID{}, fmt.Errorf("invalid %s package %q: %v", c.ID, c.Package, err)
	}
	return id, nil
}

// Target formats "package::module::function" with the package in long form.
func (c *Config) Target(module string, function string) (string, error) {
	pkg, err := c.PackageID()
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s::%s::%s", pkg, module, function), nil
}

func (c *Config) Object(role string) (*SharedObjectConfig, error) {
	obj, ok := c.Objects[role]
	if !ok || obj == nil {
		return nil, fmt.Errorf("%s deployment has no %s object", c.ID, role)
	}
	return obj, nil
}

// Reserve keys are matched case-insensitively, viper lower-cases map keys.
func (c *Config) Reserve(coin porta.Coin) (*SharedObjectConfig, bool) {
	for symbol, obj := range c.Reserves {
		if symbol.Normalize() == coin.Normalize() && obj != nil {
			return obj, true
		}
	}
	return nil, false
}

// SharedObjects lists every shared object of the deployment.
func (c *Config) SharedObjects() []*SharedObjectConfig {
	objects := []*SharedObjectConfig{}
	roles := make([]string, 0, len(c.Objects))
	for role := range c.Objects {
		roles = append(roles, role)
	}
	slices.Sort(roles)
	for _, role := range roles {
		objects = append(objects, c.Objects[role])
	}
	coins := make([]porta.Coin, 0, len(c.Reserves))
	for coin := range c.Reserves {
		coins = append(coins, coin)
	}
	slices.Sort(coins)
	for _, coin := range coins {
		objects = append(objects, c.Reserves[coin])
	}
	for _, pool := range c.Pools {
		objects = append(objects, &pool.SharedObjectConfig)
	}
	return objects
}

func (c *Config) Validate(coins *porta.CoinRegistry) error {
	if _, err := c.PackageID(); err != nil {
		return err
	}
	for _, obj := range c.SharedObjects() {
		if _, err := obj.ObjectID(); err != nil {
			return fmt.Errorf("%s: invalid object id %q: %v", c.ID, obj.ID, err)
		}
	}
	for _, coin := range c.SupportedCoins {
		if !coins.Contains(coin) {
			return fmt.Errorf("%s: supported coin %s is not configured", c.ID, coin)
		}
	}
	for _, pool := range c.Pools {
		a, okA := coins.Get(pool.CoinA)
		b, okB := coins.Get(pool.CoinB)
		if !okA || !okB {
			return fmt.Errorf("%s: pool %s references an unknown coin", c.ID, pool)
		}
		if c.Kind != porta.Liquidity {
			continue
		}
		less, err := TypeLess(a.CoinType, b.CoinType)
		if err != nil {
			return err
		}
		if !less {
			return fmt.Errorf("%s: pool %s coins are not in canonical order", c.ID, pool)
		}
	}
	return nil
}

// TypeLess orders two coin types by their normalized type identifier.
func TypeLess(a string, b string) (bool, error) {
	normA, err := ptb.NormalizeType(a)
	if err != nil {
		return false, err
	}
	normB, err := ptb.NormalizeType(b)
	if err != nil {
		return false, err
	}
	return normA < normB, nil
}

type VersionResolver interface {
	InitialSharedVersion(ctx context.Context, id ptb.ObjectID) (uint64, error)
}

// ResolveSharedVersions fills in every missing initial shared version.
func (c *Config) ResolveSharedVersions(ctx context.Context, resolver VersionResolver) error {
	for _, obj := range c.SharedObjects() {
		if obj.InitialSharedVersion != 0 {
			continue
		}
		id, err := obj.ObjectID()
		if err != nil {
			return err
		}
		version, err := resolver.InitialSharedVersion(ctx, id)
		if err != nil {
			return fmt.Errorf("could not resolve %s object %s: %w", c.ID, obj.ID, err)
		}
		logrus.WithFields(logrus.Fields{
			"protocol": c.ID,
			"object":   obj.ID,
			"version":  version,
		}).Debug("resolved initial shared version")
		obj.InitialSharedVersion = version
	}
	return nil
}
