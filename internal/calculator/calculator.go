package calculator

import (
	"math"
)

const (
	// ceilSlackULPs is how far above a whole number, in units of least
	// precision, a quantity may sit and still count as that whole number.
	ceilSlackULPs = 16
	maxTiles      = math.MaxInt32
)

type coverageCalculator struct {
	cartonCoverage float64
}

// Option configures the calculator returned by New.
type Option func(*coverageCalculator)

// WithCartonCoverage sets the standard carton coverage in m² used when an
// input carries no packing information. Non-positive values are ignored.
func WithCartonCoverage(squareMeters float64) Option {
	return func(c *coverageCalculator) {
		if squareMeters > 0 && !math.IsInf(squareMeters, 0) {
			c.cartonCoverage = squareMeters
		}
	}
}

// New creates a Calculator that derives carton packing from coverage figures.
func New(opts ...Option) Calculator {
	c := &coverageCalculator{cartonCoverage: DefaultCartonCoverage}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Compute runs a calculation with the standard carton coverage.
func Compute(areaSquareMeters, tileWidthCm, tileLengthCm, wasteFactor float64) (Result, error) {
	in := NewInput(areaSquareMeters, tileWidthCm, tileLengthCm)
	in.WasteFactor = wasteFactor
	return New().Compute(in)
}

func (c *coverageCalculator) Compute(in Input) (Result, error) {
	if err := validate(in); err != nil {
		return Result{}, err
	}
	if in.AreaSquareMeters == 0 {
		return Result{}, nil
	}

	tileArea := in.TileAreaSquareMeters()
	if tileArea <= 0 || !isFinite(tileArea) {
		return Result{}, ErrInvalidDimension
	}

	adjusted := in.AreaSquareMeters / tileArea * (1 + in.WasteFactor)
	if !isFinite(adjusted) || adjusted > maxTiles {
		return Result{}, ErrQuantityOutOfRange
	}
	tiles := ceilCount(adjusted)

	perCarton, err := c.tilesPerCarton(in, tileArea)
	if err != nil {
		return Result{}, err
	}

	return Result{
		TilesNeeded:    tiles,
		Cartons:        cartonsFor(tiles, perCarton),
		TilesPerCarton: perCarton,
	}, nil
}

func (c *coverageCalculator) tilesPerCarton(in Input, tileArea float64) (int, error) {
	if in.TilesPerCarton > 0 {
		return in.TilesPerCarton, nil
	}

	coverage := in.CoveragePerCarton
	if coverage == 0 {
		coverage = c.cartonCoverage
	}

	perCarton := math.Round(coverage / tileArea)
	if !isFinite(perCarton) || perCarton > maxTiles {
		return 0, ErrQuantityOutOfRange
	}
	if perCarton < 1 {
		return 1, nil
	}
	return int(perCarton), nil
}

func validate(in Input) error {
	if !isFinite(in.TileWidthCm) || !isFinite(in.TileLengthCm) || in.TileWidthCm <= 0 || in.TileLengthCm <= 0 {
		return ErrInvalidDimension
	}
	if !isFinite(in.WasteFactor) || in.WasteFactor < 0 {
		return ErrInvalidWasteFactor
	}
	if !isFinite(in.AreaSquareMeters) || in.AreaSquareMeters < 0 {
		return ErrInvalidArea
	}
	if in.TilesPerCarton < 0 || !isFinite(in.CoveragePerCarton) || in.CoveragePerCarton < 0 {
		return ErrInvalidPacking
	}
	return nil
}

// cartonsFor divides without the tiles+perCarton overflow of the usual
// ceiling idiom.
func cartonsFor(tiles, perCarton int) int {
	cartons := tiles / perCarton
	if tiles%perCarton != 0 {
		cartons++
	}
	return cartons
}

// ceilCount rounds a positive quantity up to a whole unit, never returning
// zero for a positive input. Only rounding error of a few ULPs is absorbed.
func ceilCount(x float64) int {
	slack := ceilSlackULPs * (math.Nextafter(x, math.Inf(1)) - x)
	n := int(math.Ceil(x - slack))
	if n < 1 && x > 0 {
		return 1
	}
	return n
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
