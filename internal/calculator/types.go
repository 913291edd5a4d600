package calculator

const (
	// DefaultWasteFactor is the standard cutting and breakage allowance (10%).
	DefaultWasteFactor = 0.10
	// DefaultCartonCoverage is the standard area in m² one carton covers when a
	// product does not state its own packing.
	DefaultCartonCoverage = 1.44
)

// Input describes one tile quantity calculation.
// TilesPerCarton and CoveragePerCarton are optional; when both are zero the
// calculator derives the packing from its standard carton coverage.
type Input struct {
	AreaSquareMeters  float64
	TileWidthCm       float64
	TileLengthCm      float64
	WasteFactor       float64
	TilesPerCarton    int
	CoveragePerCarton float64
}

// NewInput returns an Input with the default waste factor applied.
func NewInput(areaSquareMeters, tileWidthCm, tileLengthCm float64) Input {
	return Input{
		AreaSquareMeters: areaSquareMeters,
		TileWidthCm:      tileWidthCm,
		TileLengthCm:     tileLengthCm,
		WasteFactor:      DefaultWasteFactor,
	}
}

// TileAreaSquareMeters returns the surface of a single tile in m².
func (in Input) TileAreaSquareMeters() float64 {
	return (in.TileWidthCm / 100) * (in.TileLengthCm / 100)
}

// Result holds the whole-unit quantities required to cover an area.
type Result struct {
	TilesNeeded    int
	Cartons        int
	TilesPerCarton int
}

// Calculator describes the behaviour required from a tile quantity calculator.
type Calculator interface {
	Compute(in Input) (Result, error)
}
