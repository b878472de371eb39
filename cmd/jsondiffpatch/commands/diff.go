package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/agentflare-ai/jsondiffpatch"
	"github.com/agentflare-ai/jsondiffpatch/internal/cliconfig"
)

var (
	excludePaths  []string
	ignoreMissing bool
	ignoreNew     bool
	arrayModeFlag string
)

var diffCmd = &cobra.Command{
	Use:   "diff <left.json> <right.json>",
	Short: "Compute the delta that transforms left into right",
	Args:  cobra.ExactArgs(2),
	RunE:  runDiff,
}

func init() {
	RootCmd.AddCommand(diffCmd)

	diffCmd.Flags().StringSliceVar(&excludePaths, "exclude", nil, "dotted path to exclude from the diff (repeatable)")
	diffCmd.Flags().BoolVar(&ignoreMissing, "ignore-missing", false, "suppress deletions for keys present only on the left")
	diffCmd.Flags().BoolVar(&ignoreNew, "ignore-new", false, "suppress additions for keys present only on the right")
	diffCmd.Flags().StringVar(&arrayModeFlag, "array-mode", "", "array comparison strategy: efficient|simple (default efficient)")
}

func runDiff(cmd *cobra.Command, args []string) error {
	defaults, err := cliconfig.Load(configFile)
	if err != nil {
		return err
	}

	left, err := readArg(args[0])
	if err != nil {
		return err
	}
	right, err := readArg(args[1])
	if err != nil {
		return err
	}

	opts, err := buildOptions(defaults)
	if err != nil {
		return err
	}

	log.WithFields(map[string]any{
		"left_bytes":  len(left),
		"right_bytes": len(right),
		"exclude":     excludePaths,
	}).Debug("computing diff")

	delta, err := jsondiffpatch.DiffString(left, right, opts...)
	if err != nil {
		return err
	}
	if delta == "" {
		delta = "null"
	}
	fmt.Fprintln(cmd.OutOrStdout(), delta)
	return nil
}

func buildOptions(defaults cliconfig.Defaults) ([]jsondiffpatch.Option, error) {
	paths := append(append([]string{}, defaults.ExcludePaths...), excludePaths...)
	var opts []jsondiffpatch.Option
	if len(paths) > 0 {
		opts = append(opts, jsondiffpatch.WithExcludePaths(paths...))
	}

	var behaviors jsondiffpatch.DiffBehaviors
	if ignoreMissing || defaults.IgnoreMissingProperties {
		behaviors |= jsondiffpatch.IgnoreMissingProperties
	}
	if ignoreNew || defaults.IgnoreNewProperties {
		behaviors |= jsondiffpatch.IgnoreNewProperties
	}
	if behaviors != 0 {
		opts = append(opts, jsondiffpatch.WithBehaviors(behaviors))
	}

	mode := arrayModeFlag
	if mode == "" {
		mode = defaults.ArrayMode
	}
	switch mode {
	case "", "efficient":
	case "simple":
		opts = append(opts, jsondiffpatch.WithArrayDiffMode(jsondiffpatch.Simple))
	default:
		return nil, fmt.Errorf("unknown array-mode %q: want efficient or simple", mode)
	}

	return opts, nil
}
