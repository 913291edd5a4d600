package catalog

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

var sizeReplacer = strings.NewReplacer("×", "x", "X", "x", "cm", "", " ", "")

// ParseSize parses a "WxH" size in centimetres, e.g. "60x120" or "60 × 120 cm".
func ParseSize(size string) (float64, float64, error) {
	parts := strings.Split(sizeReplacer.Replace(strings.TrimSpace(size)), "x")
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("%w: %q", ErrInvalidSize, size)
	}

	width, err := parseDimension(parts[0])
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %q", ErrInvalidSize, size)
	}
	length, err := parseDimension(parts[1])
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %q", ErrInvalidSize, size)
	}
	return width, length, nil
}

func parseDimension(raw string) (float64, error) {
	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, err
	}
	if value <= 0 || math.IsInf(value, 0) || math.IsNaN(value) {
		return 0, fmt.Errorf("dimension must be positive, got %v", value)
	}
	return value, nil
}
