package goalset

import "errors"

// ErrWidthTooLarge indicates a requested Width exceeds MaxWidth.
var ErrWidthTooLarge = errors.New("goalset: width exceeds 64-bit subset capacity")

// ErrWidthMismatch indicates two operands of a binary operation were built
// against different widths.
var ErrWidthMismatch = errors.New("goalset: operand width mismatch")
