package commands

import (
	"fmt"

	"github.com/portasui/porta"
	"github.com/portasui/porta/cmd/porta/setup"
	"github.com/spf13/cobra"
)

type routeOutput struct {
	Route       string `json:"route"`
	Kind        string `json:"kind"`
	Source      string `json:"source"`
	Destination string `json:"destination"`
	Available   bool   `json:"available"`
}

func CmdRoutes() *cobra.Command {
	return &cobra.Command{
		Use:   "routes",
		Short: "List the supported migration routes and whether they are deployed on the network.",
		Args:  cobra.ExactArgs(0),
		RunE: func(cmd *cobra.Command, args []string) error {
			portaFactory := setup.UnwrapFactory(cmd.Context())
			routes := []routeOutput{}
			for _, route := range porta.SupportedRoutes {
				kind := "direct"
				if _, ok := route.(porta.LiquidityRoute); ok {
					kind = "liquidity"
				}
				_, okSource := portaFactory.Protocols.Get(route.Source())
				_, okDestination := portaFactory.Protocols.Get(route.Destination())
				routes = append(routes, routeOutput{
					Route:       route.String(),
					Kind:        kind,
					Source:      string(route.Source()),
					Destination: string(route.Destination()),
					Available:   okSource && okDestination,
				})
			}
			fmt.Println(asJson(routes))
			return nil
		},
	}
}
