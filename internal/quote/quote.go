package quote

import (
	"errors"
	"fmt"
	"math"

	"github.com/eugenenazirov/tile-shop/internal/calculator"
	"github.com/eugenenazirov/tile-shop/internal/storage"
)

// ErrInvalidPrice is returned when a carton price is negative or not a number.
var ErrInvalidPrice = errors.New("price per carton must be a non-negative number")

// Estimate is a priced tile calculation ready for display.
type Estimate struct {
	ProductHandle           string  `json:"productHandle,omitempty"`
	ProductName             string  `json:"productName,omitempty"`
	VariantID               string  `json:"variantId,omitempty"`
	AreaSquareMeters        float64 `json:"areaSquareMeters"`
	TileWidthCm             float64 `json:"tileWidthCm"`
	TileLengthCm            float64 `json:"tileLengthCm"`
	WasteFactor             float64 `json:"wasteFactor"`
	TilesNeeded             int     `json:"tilesNeeded"`
	Cartons                 int     `json:"cartons"`
	TilesPerCarton          int     `json:"tilesPerCarton"`
	CoveredAreaSquareMeters float64 `json:"coveredAreaSquareMeters"`
	UnitPriceCents          int64   `json:"unitPriceCents"`
	TotalCents              int64   `json:"totalCents"`
}

// UnitPrice returns the carton price in dollars.
func (e Estimate) UnitPrice() float64 { return FromCents(e.UnitPriceCents) }

// Total returns cartons multiplied by the carton price in dollars.
func (e Estimate) Total() float64 { return FromCents(e.TotalCents) }

// ProductRequest asks for an estimate against a catalog product. A nil
// WasteFactor selects the service default.
type ProductRequest struct {
	AreaSquareMeters float64
	WasteFactor      *float64
	VariantID        string
}

// CustomRequest describes a free-form calculation. When AreaSquareMeters is
// zero the area is taken from the room length and width.
type CustomRequest struct {
	AreaSquareMeters  float64
	RoomLengthM       float64
	RoomWidthM        float64
	TileWidthCm       float64
	TileLengthCm      float64
	WasteFactor       *float64
	TilesPerCarton    int
	CoveragePerCarton float64
	PricePerCarton    float64
}

// Service prices tile calculations against the catalog.
type Service struct {
	calculator   calculator.Calculator
	storage      storage.Storage
	defaultWaste float64
}

// ServiceOption configures Service behaviour.
type ServiceOption func(*Service)

// WithDefaultWasteFactor overrides the waste factor used when a request omits one.
func WithDefaultWasteFactor(factor float64) ServiceOption {
	return func(s *Service) {
		if factor >= 0 && !math.IsNaN(factor) && !math.IsInf(factor, 0) {
			s.defaultWaste = factor
		}
	}
}

// NewService constructs a Service with the provided dependencies.
func NewService(calc calculator.Calculator, store storage.Storage, opts ...ServiceOption) *Service {
	s := &Service{
		calculator:   calc,
		storage:      store,
		defaultWaste: calculator.DefaultWasteFactor,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// DefaultWasteFactor reports the waste factor applied when a request omits one.
func (s *Service) DefaultWasteFactor() float64 {
	return s.defaultWaste
}

// EstimateProduct computes tiles, cartons and price for covering an area with a catalog product.
func (s *Service) EstimateProduct(handle string, req ProductRequest) (Estimate, error) {
	product, err := s.storage.GetProduct(handle)
	if err != nil {
		return Estimate{}, err
	}

	width, length, err := product.Dimensions()
	if err != nil {
		return Estimate{}, fmt.Errorf("product %s: %w", product.Handle, err)
	}
	unitPrice, err := product.UnitPrice(req.VariantID)
	if err != nil {
		return Estimate{}, err
	}

	in := calculator.Input{
		AreaSquareMeters:  req.AreaSquareMeters,
		TileWidthCm:       width,
		TileLengthCm:      length,
		WasteFactor:       s.wasteOrDefault(req.WasteFactor),
		TilesPerCarton:    product.PiecesPerCarton,
		CoveragePerCarton: product.CoveragePerCarton,
	}
	est, err := s.estimate(in, unitPrice)
	if err != nil {
		return Estimate{}, err
	}

	est.ProductHandle = product.Handle
	est.ProductName = product.Name
	est.VariantID = req.VariantID
	return est, nil
}

// EstimateCustom computes an estimate for arbitrary tile dimensions and carton price.
func (s *Service) EstimateCustom(req CustomRequest) (Estimate, error) {
	area := req.AreaSquareMeters
	if area == 0 && (req.RoomLengthM != 0 || req.RoomWidthM != 0) {
		if req.RoomLengthM < 0 || req.RoomWidthM < 0 {
			return Estimate{}, calculator.ErrInvalidArea
		}
		area = req.RoomLengthM * req.RoomWidthM
	}

	in := calculator.Input{
		AreaSquareMeters:  area,
		TileWidthCm:       req.TileWidthCm,
		TileLengthCm:      req.TileLengthCm,
		WasteFactor:       s.wasteOrDefault(req.WasteFactor),
		TilesPerCarton:    req.TilesPerCarton,
		CoveragePerCarton: req.CoveragePerCarton,
	}
	return s.estimate(in, req.PricePerCarton)
}

func (s *Service) estimate(in calculator.Input, unitPrice float64) (Estimate, error) {
	if unitPrice < 0 || math.IsNaN(unitPrice) || math.IsInf(unitPrice, 0) {
		return Estimate{}, ErrInvalidPrice
	}

	result, err := s.calculator.Compute(in)
	if err != nil {
		return Estimate{}, err
	}

	unitCents, err := ToCents(unitPrice)
	if err != nil {
		return Estimate{}, err
	}
	totalCents, err := MulCents(unitCents, result.Cartons)
	if err != nil {
		return Estimate{}, err
	}

	return Estimate{
		AreaSquareMeters:        in.AreaSquareMeters,
		TileWidthCm:             in.TileWidthCm,
		TileLengthCm:            in.TileLengthCm,
		WasteFactor:             in.WasteFactor,
		TilesNeeded:             result.TilesNeeded,
		Cartons:                 result.Cartons,
		TilesPerCarton:          result.TilesPerCarton,
		CoveredAreaSquareMeters: roundTo(float64(result.Cartons)*float64(result.TilesPerCarton)*in.TileAreaSquareMeters(), 4),
		UnitPriceCents:          unitCents,
		TotalCents:              totalCents,
	}, nil
}

func (s *Service) wasteOrDefault(waste *float64) float64 {
	if waste == nil {
		return s.defaultWaste
	}
	return *waste
}

func roundTo(v float64, places int) float64 {
	scale := math.Pow(10, float64(places))
	return math.Round(v*scale) / scale
}
