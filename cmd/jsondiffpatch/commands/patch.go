package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/agentflare-ai/jsondiffpatch"
)

var patchCmd = &cobra.Command{
	Use:   "patch <left.json> <delta.json>",
	Short: "Apply a delta to left and print the resulting right-side value",
	Args:  cobra.ExactArgs(2),
	RunE:  runPatch,
}

func init() {
	RootCmd.AddCommand(patchCmd)
}

func runPatch(cmd *cobra.Command, args []string) error {
	left, err := readArg(args[0])
	if err != nil {
		return err
	}
	delta, err := readArg(args[1])
	if err != nil {
		return err
	}

	log.WithField("left_bytes", len(left)).Debug("applying patch")

	result, err := jsondiffpatch.PatchString(left, delta)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), result)
	return nil
}
