package porta_test

import (
	"errors"

	. "github.com/portasui/porta"
	builderrors "github.com/portasui/porta/builder/errors"
)

func (s *PortaTestSuite) TestParseMigrationRoute() {
	require := s.Require()
	for _, v := range []struct {
		name  string
		route MigrationRoute
	}{
		{"navi-to-scallop", NaviToScallop},
		{"scallop-to-navi", ScallopToNavi},
		{"navi-to-magma", NaviToMagma},
		{"Scallop-To-Magma ", ScallopToMagma},
	} {
		route, err := ParseMigrationRoute(v.name)
		require.NoError(err, v.name)
		require.Equal(v.route, route)
		require.True(IsSupportedRoute(route))
	}

	var route MigrationRoute = NaviToScallop
	_, ok := route.(DirectRoute)
	require.True(ok)
	route = NaviToMagma
	_, ok = route.(LiquidityRoute)
	require.True(ok)
	require.Equal(Navi, NaviToMagma.Source())
	require.Equal(Magma, NaviToMagma.Destination())
}

func (s *PortaTestSuite) TestParseMigrationRouteUnsupported() {
	require := s.Require()
	for _, name := range []string{"navi-to-scalop", "magma-to-navi", "", "navi_to_scallop"} {
		_, err := ParseMigrationRoute(name)
		var routeErr *builderrors.UnsupportedRouteError
		require.True(errors.As(err, &routeErr), name)
		require.Equal(name, routeErr.Route)
	}

	require.False(IsSupportedRoute(nil))
	require.False(IsSupportedRoute(DirectRoute{From: Navi, To: Magma}))
	require.False(IsSupportedRoute(LiquidityRoute{From: Navi, To: Scallop}))
}

func (s *PortaTestSuite) TestMigrationEstimateJSON() {
	require := s.Require()
	estimate := MigrationEstimate{
		GasEstimate:    NewAmountBlockchainFromUint64(10_000_000),
		GasCostUsd:     0.035,
		ExpectedOutput: NewAmountBlockchainFromUint64(100_000_000),
	}
	bz, err := estimate.MarshalJSON()
	require.NoError(err)
	require.JSONEq(`{"gasEstimate":10000000,"gasCostUsd":0.035,"expectedOutput":100000000,"priceImpact":0}`, string(bz))

	var decoded MigrationEstimate
	require.NoError(decoded.UnmarshalJSON(bz))
	require.EqualValues(10_000_000, decoded.GasEstimate.Uint64())
	require.EqualValues(100_000_000, decoded.ExpectedOutput.Uint64())
	require.Equal(0.035, decoded.GasCostUsd)
}
