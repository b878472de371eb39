package commands

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	configFile string
	verbose    bool

	log = logrus.New()
)

// RootCmd is the base command when jsondiffpatch is called without a
// subcommand.
var RootCmd = &cobra.Command{
	Use:   "jsondiffpatch",
	Short: "Compute and apply structural JSON deltas",
	Long: `jsondiffpatch computes jsondiffpatch-compatible structural deltas between
two JSON documents and applies them forward or in reverse.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if verbose {
			log.SetLevel(logrus.DebugLevel)
		}
	},
}

// Execute runs the root command, exiting the process on failure.
func Execute() {
	if err := RootCmd.Execute(); err != nil {
		os.Exit(exitCodeFor(err))
	}
}

func init() {
	RootCmd.PersistentFlags().StringVar(&configFile, "config", "", "path to a config file of default options")
	RootCmd.PersistentFlags().BoolVar(&verbose, "verbose", false, "enable diagnostic logging")
}
