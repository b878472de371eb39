package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/agentflare-ai/jsondiffpatch"
)

var unpatchCmd = &cobra.Command{
	Use:   "unpatch <right.json> <delta.json>",
	Short: "Reverse a delta against right and print the recovered left-side value",
	Args:  cobra.ExactArgs(2),
	RunE:  runUnpatch,
}

func init() {
	RootCmd.AddCommand(unpatchCmd)
}

func runUnpatch(cmd *cobra.Command, args []string) error {
	right, err := readArg(args[0])
	if err != nil {
		return err
	}
	delta, err := readArg(args[1])
	if err != nil {
		return err
	}

	log.WithField("right_bytes", len(right)).Debug("reversing patch")

	result, err := jsondiffpatch.UnpatchString(right, delta)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), result)
	return nil
}
