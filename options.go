package jsondiffpatch

import (
	"strings"

	"github.com/agentflare-ai/jsonpointer"
)

// ArrayDiffMode selects the array comparison strategy.
type ArrayDiffMode int

const (
	// Efficient runs the LCS-based array differ (the default).
	Efficient ArrayDiffMode = iota
	// Simple treats any two unequal arrays as a whole-value replace.
	Simple
)

// DiffBehaviors is a bit-set of flags that relax the default differ
// behavior.
type DiffBehaviors uint8

const (
	// IgnoreMissingProperties suppresses deletion entries for keys present
	// only on the left side.
	IgnoreMissingProperties DiffBehaviors = 1 << iota
	// IgnoreNewProperties suppresses addition entries for keys present
	// only on the right side.
	IgnoreNewProperties
)

func (b DiffBehaviors) has(flag DiffBehaviors) bool { return b&flag != 0 }

// Options configures a single Diff call. The zero value compares every
// property and uses the default Efficient array mode.
type Options struct {
	excludePaths       []string
	behaviors          DiffBehaviors
	arrayMode          ArrayDiffMode
	strictNullHandling bool
}

// Option mutates an Options value. Grounded in the teacher's functional
// Option type, generalized from a *Differ receiver to a plain value
// struct since this engine has no long-lived differ object to configure.
type Option func(*Options)

// WithExcludePaths skips diffing (and preserves the left-side value when
// patching) any property whose dotted path (e.g. "nested.id") matches one
// of paths, case-insensitively.
func WithExcludePaths(paths ...string) Option {
	return func(o *Options) { o.excludePaths = append(o.excludePaths, paths...) }
}

// WithBehaviors ORs the given flags into the option set.
func WithBehaviors(flags DiffBehaviors) Option {
	return func(o *Options) { o.behaviors |= flags }
}

// WithArrayDiffMode overrides the default Efficient array comparison mode.
func WithArrayDiffMode(mode ArrayDiffMode) Option {
	return func(o *Options) { o.arrayMode = mode }
}

// WithStrictNullHandling disables the wire-compatibility coercion that
// treats a nil left or right value as the empty-string scalar. This is an
// extension beyond the base jsondiffpatch wire format (see SPEC_FULL.md
// OQ-3) and changes what Diff(nil, x) produces.
func WithStrictNullHandling() Option {
	return func(o *Options) { o.strictNullHandling = true }
}

// resolvedOptions is the per-call, ready-to-use form of Options: the
// exclude path list is compiled into a lookup set once and reused for the
// whole recursive walk, rather than being rebuilt per property. Nothing in
// it is retained across calls, matching the "no global state" design note.
type resolvedOptions struct {
	excludeSet         map[string]struct{}
	behaviors          DiffBehaviors
	arrayMode          ArrayDiffMode
	strictNullHandling bool
}

func resolve(opts []Option) resolvedOptions {
	var o Options
	for _, apply := range opts {
		apply(&o)
	}

	set := make(map[string]struct{}, len(o.excludePaths))
	for _, p := range o.excludePaths {
		set[canonicalPath(splitDottedPath(p))] = struct{}{}
	}

	return resolvedOptions{
		excludeSet:         set,
		behaviors:          o.behaviors,
		arrayMode:          o.arrayMode,
		strictNullHandling: o.strictNullHandling,
	}
}

func (r resolvedOptions) excluded(path []string) bool {
	if len(r.excludeSet) == 0 {
		return false
	}
	_, ok := r.excludeSet[canonicalPath(jsonpointer.Pointer(path))]
	return ok
}

// splitDottedPath turns "nested.id" into a jsonpointer.Pointer{"nested","id"}
// so that both configured exclude paths and the differ's own traversal
// path share one canonical representation (built with the teacher's own
// Pointer type, generalized here from RFC 6901 slash-paths to this
// library's dotted paths).
func splitDottedPath(path string) jsonpointer.Pointer {
	if path == "" {
		return nil
	}
	return jsonpointer.Pointer(strings.Split(path, "."))
}

// canonicalPath lowercases every segment before rendering, so exclusion
// matching is case-insensitive as spec.md §6 requires.
func canonicalPath(p jsonpointer.Pointer) string {
	lowered := make(jsonpointer.Pointer, len(p))
	for i, seg := range p {
		lowered[i] = strings.ToLower(seg)
	}
	return lowered.String()
}
