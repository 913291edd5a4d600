package calculator

import "errors"

var (
	// ErrInvalidDimension is returned when a tile width or length is not strictly positive.
	ErrInvalidDimension = errors.New("tile width and length must be positive numbers")
	// ErrInvalidWasteFactor is returned when the waste allowance is negative.
	ErrInvalidWasteFactor = errors.New("waste factor must be a non-negative number")
	// ErrInvalidArea is returned when the area to cover is negative or not a number.
	ErrInvalidArea = errors.New("area must be a non-negative number")
	// ErrInvalidPacking is returned when tiles per carton or carton coverage is negative.
	ErrInvalidPacking = errors.New("tiles per carton and carton coverage must be non-negative")
	// ErrQuantityOutOfRange is returned when the resulting tile count cannot be represented.
	ErrQuantityOutOfRange = errors.New("calculated quantity exceeds the supported range")
)
