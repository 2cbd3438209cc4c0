package commands

import (
	"fmt"

	"github.com/portasui/porta/cmd/porta/setup"
	"github.com/portasui/porta/config"
	"github.com/portasui/porta/factory/signer"
	"github.com/spf13/cobra"
)

func CmdAddress() *cobra.Command {
	var privateKeyRef string
	cmd := &cobra.Command{
		Use:   "address",
		Short: fmt.Sprintf("Derive a Sui address from the %s environment variable.", signer.EnvPrivateKey),
		Args:  cobra.ExactArgs(0),
		RunE: func(cmd *cobra.Command, args []string) error {
			portaFactory := setup.UnwrapFactory(cmd.Context())
			privateKeyInput, err := config.GetSecret(privateKeyRef)
			if err != nil {
				return fmt.Errorf("could not get secret: %v", err)
			}
			if privateKeyInput == "" {
				return fmt.Errorf("secret reference %s loaded empty value", privateKeyRef)
			}
			s, err := portaFactory.NewSigner(config.NewRawSecret(privateKeyInput))
			if err != nil {
				return fmt.Errorf("could not import private key: %v", err)
			}
			address, err := s.Address()
			if err != nil {
				return fmt.Errorf("could not derive address: %v", err)
			}
			fmt.Println(address)
			return nil
		},
	}
	cmd.Flags().StringVar(&privateKeyRef, "key", "env:"+signer.EnvPrivateKey, "Private key reference")
	return cmd
}
