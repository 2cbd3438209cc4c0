package setup

import (
	"fmt"
	"os"

	"github.com/portasui/porta"
	"github.com/spf13/cobra"
)

type RpcArgs struct {
	Rpc            string
	Network        porta.Network
	ConfigPath     string
	VerbosityCount int
}

const EnvNetwork = "PORTA_NETWORK"

func AddRpcArgs(cmd *cobra.Command) {
	cmd.PersistentFlags().String("rpc", "", "RPC url to use. Optional.")
	cmd.PersistentFlags().String("network", os.Getenv(EnvNetwork), fmt.Sprintf("Network to use: mainnet, testnet, devnet or localnet (may set %s env var).", EnvNetwork))
	cmd.PersistentFlags().String("config", "", "Path to a .yaml or .toml configuration file. Optional.")
	cmd.PersistentFlags().CountP("verbose", "v", "Set verbosity.")
}

func RpcArgsFromCmd(cmd *cobra.Command) (*RpcArgs, error) {
	rpc, _ := cmd.Flags().GetString("rpc")
	network, _ := cmd.Flags().GetString("network")
	configPath, _ := cmd.Flags().GetString("config")
	count, _ := cmd.Flags().GetCount("verbose")
	if network != "" && !porta.Network(network).Valid() {
		return nil, fmt.Errorf("invalid network: %s", network)
	}
	return &RpcArgs{
		Rpc:            rpc,
		Network:        porta.Network(network),
		ConfigPath:     configPath,
		VerbosityCount: count,
	}, nil
}
