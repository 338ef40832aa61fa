package progress

import "errors"

// ErrNotLeaf is returned when a value is set directly on a node that has
// children; its value is derived from them.
var ErrNotLeaf = errors.New("progress: value of an internal node is derived from its children")
