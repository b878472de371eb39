package commands

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/agentflare-ai/jsondiffpatch"
)

// readArg reads path's contents, or stdin when path is "-".
func readArg(path string) (string, error) {
	if path == "-" {
		b, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("reading stdin: %w", err)
		}
		return string(b), nil
	}

	b, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", path, err)
	}
	return string(b), nil
}

// exitCodeFor maps a command error to a process exit code, per
// SPEC_FULL.md §7: malformed deltas exit 2, everything else exits 1.
func exitCodeFor(err error) int {
	if err == nil {
		return 0
	}
	log.WithError(err).Error("command failed")
	if errors.Is(err, jsondiffpatch.ErrInvalidDelta) {
		return 2
	}
	return 1
}
