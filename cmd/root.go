package cmd

import "github.com/spf13/cobra"

func Execute() error {
	return newRootCmd(wireApp).Execute()
}

func newRootCmd(wire wireFunc) *cobra.Command {
	var configFile string
	app := &app{}

	rootCmd := &cobra.Command{
		Use:           "swapbot",
		Short:         "swapbot: a self-serve trading bot",
		Long:          "swapbot accepts friends, runs chat-driven trade sessions over a protocol sidecar, records every trade with a record-keeping service and exports the trade history.",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if cmd.Name() == "version" {
				return nil
			}
			wired, err := wire(configFile, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			*app = *wired
			return nil
		},
		PersistentPostRunE: func(cmd *cobra.Command, _ []string) error {
			if app.closeStore == nil {
				return nil
			}
			return app.closeStore()
		},
	}

	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "Config file (default $HOME/.config/swapbot/swapbot.toml or ./swapbot.toml)")

	rootCmd.AddCommand(
		newVersionCmd(),
		newRunCmd(app),
		newExportCmd(app),
		newOffersCmd(app),
		newStatusCmd(app),
		newRecordsCmd(app),
	)

	return rootCmd
}
