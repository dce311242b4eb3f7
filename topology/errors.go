package topology

import "errors"

// ErrTooFewVertices indicates a size parameter (n, rows, cols) is smaller
// than the minimum a constructor needs to produce a meaningful shape.
var ErrTooFewVertices = errors.New("topology: parameter too small")
