package main

import (
	"log/slog"
	"os"

	"github.com/cottand/regexalg/cmd"
	"github.com/cottand/regexalg/internal/log"
	"github.com/spf13/cobra"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

var logLevel *int

var rootCmd = &cobra.Command{
	Use:          "regexalg [subcommand]",
	Short:        "regexalg\n a regex decision engine built on partial derivatives",
	Args:         cobra.MinimumNArgs(1),
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		log.SetLevel(slog.Level(*logLevel))
		return nil
	},
}

func init() {
	logLevel = rootCmd.PersistentFlags().IntP("log-level", "l", int(slog.LevelWarn), "log level")
	rootCmd.AddCommand(cmd.ParseCmd)
	rootCmd.AddCommand(cmd.CompareCmd)
	rootCmd.AddCommand(cmd.AlgebraCmd)
}
