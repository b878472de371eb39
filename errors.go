package jsondiffpatch

import "errors"

// ErrInvalidDelta is returned when a delta value does not conform to any
// recognized shape: a scalar-form array longer than 3 elements, a 3-tuple
// whose third element is not a recognized operation code, or an
// underscore-prefixed array-delta entry that is neither a delete nor a
// move.
var ErrInvalidDelta = errors.New("jsondiffpatch: invalid delta")

// ErrUnsupportedOperation is returned when a delta encodes DiffOperation
// code 2 (text diff). Text diffs are a reserved wire format this library
// never produces and refuses to apply.
var ErrUnsupportedOperation = errors.New("jsondiffpatch: unsupported operation")
