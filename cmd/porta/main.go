package main

import (
	"os"

	"github.com/portasui/porta/cmd/porta/commands"
	"github.com/portasui/porta/cmd/porta/setup"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func CmdPorta() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "porta",
		Short:        "Migrate positions between Sui lending and liquidity protocols",
		Args:         cobra.ExactArgs(0),
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			args, err := setup.RpcArgsFromCmd(cmd)
			if err != nil {
				return err
			}
			setup.ConfigureLogger(args)

			portaFactory, err := setup.LoadFactory(args)
			if err != nil {
				return err
			}
			logrus.WithFields(logrus.Fields{
				"rpc":     portaFactory.Config.URL,
				"network": portaFactory.Config.Network,
			}).Info("network")
			cmd.SetContext(setup.CreateContext(portaFactory))
			return nil
		},
	}
	setup.AddRpcArgs(cmd)

	cmd.AddCommand(commands.CmdRoutes())
	cmd.AddCommand(commands.CmdCoins())
	cmd.AddCommand(commands.CmdValidate())
	cmd.AddCommand(commands.CmdBuild())
	cmd.AddCommand(commands.CmdEstimate())
	cmd.AddCommand(commands.CmdMigrate())
	cmd.AddCommand(commands.CmdAddress())
	cmd.AddCommand(commands.CmdBalance())

	return cmd
}

func main() {
	if err := CmdPorta().Execute(); err != nil {
		os.Exit(1)
	}
}
