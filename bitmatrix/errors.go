package bitmatrix

import "errors"

// ErrDimensionMismatch indicates two bitmatrix operands have incompatible
// row or column counts for the requested operation.
var ErrDimensionMismatch = errors.New("bitmatrix: dimension mismatch")
