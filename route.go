package porta

import (
	"fmt"
	"strings"

	"github.com/portasui/porta/builder/errors"
)

// MigrationRoute is a closed set of supported migration directions.  Each variant carries what its
// constructor needs, so callers dispatch with a type switch over DirectRoute and LiquidityRoute.
type MigrationRoute interface {
	fmt.Stringer
	Source() ProtocolID
	Destination() ProtocolID
	migrationRoute()
}

// DirectRoute moves a position from one lending protocol to another.
type DirectRoute struct {
	From ProtocolID
	To   ProtocolID
}

// LiquidityRoute moves a lending position into a two-sided liquidity pool.
type LiquidityRoute struct {
	From ProtocolID
	To   ProtocolID
}

var _ MigrationRoute = DirectRoute{}
var _ MigrationRoute = LiquidityRoute{}

func (r DirectRoute) String() string          { return routeName(r.From, r.To) }
func (r DirectRoute) Source() ProtocolID      { return r.From }
func (r DirectRoute) Destination() ProtocolID { return r.To }
func (DirectRoute) migrationRoute()           {}

func (r LiquidityRoute) String() string          { return routeName(r.From, r.To) }
func (r LiquidityRoute) Source() ProtocolID      { return r.From }
func (r LiquidityRoute) Destination() ProtocolID { return r.To }
func (LiquidityRoute) migrationRoute()           {}

func routeName(from, to ProtocolID) string {
	return fmt.Sprintf("%s-to-%s", from, to)
}

var (
	NaviToScallop  = DirectRoute{From: Navi, To: Scallop}
	ScallopToNavi  = DirectRoute{From: Scallop, To: Navi}
	NaviToMagma    = LiquidityRoute{From: Navi, To: Magma}
	ScallopToMagma = LiquidityRoute{From: Scallop, To: Magma}
)

var SupportedRoutes = []MigrationRoute{
	NaviToScallop,
	ScallopToNavi,
	NaviToMagma,
	ScallopToMagma,
}

// ParseMigrationRoute resolves a name like "navi-to-scallop" into one of the SupportedRoutes.
func ParseMigrationRoute(name string) (MigrationRoute, error) {
	normalized := strings.ToLower(strings.TrimSpace(name))
	for _, route := range SupportedRoutes {
		if route.String() == normalized {
			return route, nil
		}
	}
	return nil, &errors.UnsupportedRouteError{Route: name}
}

func IsSupportedRoute(route MigrationRoute) bool {
	if route == nil {
		return false
	}
	for _, supported := range SupportedRoutes {
		if supported == route {
			return true
		}
	}
	return false
}
