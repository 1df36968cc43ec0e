// Package commands wires the cobra CLI. Grounded on FocusStreamer's
// cmd/focusstreamer/commands/root.go: persistent flags bound into viper at
// package init, with MYWM_ environment lookup switched on in
// cobra.OnInitialize, so every subcommand and daemonconfig.Load see the same
// resolved values regardless of flag/env/default precedence.
package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "mywm",
	Short: "A dynamic tiling window manager for X11",
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("socket", "", "control socket path (default $XDG_RUNTIME_DIR/mywm.sock)")
	rootCmd.PersistentFlags().String("config-exec", "", "configuration executable path")
	rootCmd.PersistentFlags().String("log-level", "info", "log level: debug, info, warn, error")
	rootCmd.PersistentFlags().Bool("log-pretty", false, "use human-readable console logging")

	viper.BindPFlag("socket", rootCmd.PersistentFlags().Lookup("socket"))
	viper.BindPFlag("config_exec", rootCmd.PersistentFlags().Lookup("config-exec"))
	viper.BindPFlag("log_level", rootCmd.PersistentFlags().Lookup("log-level"))
	viper.BindPFlag("log_pretty", rootCmd.PersistentFlags().Lookup("log-pretty"))

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(versionCmd)
}

func initConfig() {
	viper.SetEnvPrefix("mywm")
	viper.AutomaticEnv()
}
