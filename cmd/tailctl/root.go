package main

import (
	"time"

	"github.com/spf13/cobra"
)

func newRootCommand() *cobra.Command {
	var (
		socketFlag       string
		portFlag         int
		passwordFileFlag string
		configFlag       string
		timeoutFlag      time.Duration
		jsonFlag         bool
	)

	ctx := newCommandContext(&socketFlag, &portFlag, &passwordFileFlag, &configFlag, &timeoutFlag, &jsonFlag)

	rootCmd := &cobra.Command{
		Use:           "tailctl",
		Short:         "Query the local tailscaled daemon",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if shouldSkipConfig(cmd) {
				return nil
			}
			_, err := ctx.ensureConfig()
			return err
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	rootCmd.PersistentFlags().StringVar(&socketFlag, "socket", "", "Path to the daemon unix socket")
	rootCmd.PersistentFlags().IntVar(&portFlag, "port", 0, "Loopback TCP port of the daemon")
	rootCmd.PersistentFlags().StringVar(&passwordFileFlag, "password-file", "", "File holding the daemon's same-user password")
	rootCmd.PersistentFlags().StringVarP(&configFlag, "config", "c", "", "Configuration file path")
	rootCmd.PersistentFlags().DurationVar(&timeoutFlag, "timeout", 0, "Per-request timeout (0 uses the configured default)")
	rootCmd.PersistentFlags().BoolVar(&jsonFlag, "json", false, "Emit JSON instead of tables")

	rootCmd.AddCommand(newStatusCommand(ctx))
	rootCmd.AddCommand(newCertCommand(ctx))
	rootCmd.AddCommand(newWhoisCommand(ctx))
	rootCmd.AddCommand(newConfigCommand(ctx))

	return rootCmd
}
