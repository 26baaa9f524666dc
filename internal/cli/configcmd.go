package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/deviationview/pkg/config"
)

// configCommand prints the effective configuration as TOML.
func (c *CLI) configCommand() *cobra.Command {
	var gf gaugeFlags

	cmd := &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration as TOML",
		Long: `Print the configuration after applying the config file and flags.

The output is a complete config file:

  deviationview config --orientation horizontal --position 20 > gauge.toml
  deviationview render -c gauge.toml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := gf.load(cmd)
			if err != nil {
				return err
			}
			return config.Encode(cmd.OutOrStdout(), cfg)
		},
	}

	gf.register(cmd)
	return cmd
}
