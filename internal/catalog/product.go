package catalog

import (
	"fmt"
	"math"
	"strings"
)

// Variant is a purchasable option of a product, such as a finish or grade.
type Variant struct {
	ID    string  `json:"id" yaml:"id"`
	Name  string  `json:"name" yaml:"name"`
	Price float64 `json:"price" yaml:"price"`
}

// Product is a catalog record. Size is expressed as "WxH" in centimetres and
// Price is charged per carton.
type Product struct {
	ID                string    `json:"id" yaml:"id"`
	Handle            string    `json:"handle" yaml:"handle"`
	Name              string    `json:"name" yaml:"name"`
	Description       string    `json:"description,omitempty" yaml:"description"`
	Material          string    `json:"material" yaml:"material"`
	Finish            string    `json:"finish" yaml:"finish"`
	Applications      []string  `json:"applications" yaml:"applications"`
	Size              string    `json:"size" yaml:"size"`
	Thickness         string    `json:"thickness,omitempty" yaml:"thickness"`
	PiecesPerCarton   int       `json:"piecesPerCarton" yaml:"pieces_per_carton"`
	CoveragePerCarton float64   `json:"coveragePerCarton" yaml:"coverage_per_carton"`
	Price             float64   `json:"price" yaml:"price"`
	CompareAtPrice    float64   `json:"compareAtPrice,omitempty" yaml:"compare_at_price"`
	Variants          []Variant `json:"variants,omitempty" yaml:"variants"`
	InStock           bool      `json:"inStock" yaml:"in_stock"`
	IsNew             bool      `json:"isNew" yaml:"is_new"`
	IsBestSeller      bool      `json:"isBestSeller" yaml:"is_best_seller"`
	SampleAvailable   bool      `json:"sampleAvailable" yaml:"sample_available"`
	PEI               string    `json:"pei,omitempty" yaml:"pei"`
	SlipRating        string    `json:"slipRating,omitempty" yaml:"slip_rating"`
	WaterAbsorption   string    `json:"waterAbsorption,omitempty" yaml:"water_absorption"`
	Edge              string    `json:"edge,omitempty" yaml:"edge"`
	UnderfloorHeating bool      `json:"underfloorHeating" yaml:"underfloor_heating"`
}

// Dimensions parses the product size into width and length in centimetres.
func (p Product) Dimensions() (float64, float64, error) {
	return ParseSize(p.Size)
}

// VariantByID returns the variant with the given identifier.
func (p Product) VariantByID(id string) (Variant, bool) {
	for _, v := range p.Variants {
		if v.ID == id {
			return v, true
		}
	}
	return Variant{}, false
}

// UnitPrice returns the carton price for the selected variant, falling back to
// the product price when variantID is empty.
func (p Product) UnitPrice(variantID string) (float64, error) {
	if variantID == "" {
		return p.Price, nil
	}
	v, ok := p.VariantByID(variantID)
	if !ok {
		return 0, fmt.Errorf("%w: %q on product %q", ErrUnknownVariant, variantID, p.Handle)
	}
	return v.Price, nil
}

// Clone returns a deep copy so callers cannot mutate shared slices.
func (p Product) Clone() Product {
	out := p
	if p.Applications != nil {
		out.Applications = append([]string(nil), p.Applications...)
	}
	if p.Variants != nil {
		out.Variants = append([]Variant(nil), p.Variants...)
	}
	return out
}

// Validate checks that a product carries everything the calculator needs.
func Validate(p Product) error {
	if strings.TrimSpace(p.Handle) == "" {
		return fmt.Errorf("%w: handle is required", ErrInvalidProduct)
	}
	if strings.TrimSpace(p.Name) == "" {
		return fmt.Errorf("%w: %s: name is required", ErrInvalidProduct, p.Handle)
	}
	if _, _, err := ParseSize(p.Size); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrInvalidProduct, p.Handle, err)
	}
	if p.PiecesPerCarton < 0 {
		return fmt.Errorf("%w: %s: pieces per carton must be non-negative", ErrInvalidProduct, p.Handle)
	}
	if invalidAmount(p.CoveragePerCarton) {
		return fmt.Errorf("%w: %s: coverage per carton must be non-negative", ErrInvalidProduct, p.Handle)
	}
	if invalidAmount(p.Price) || invalidAmount(p.CompareAtPrice) {
		return fmt.Errorf("%w: %s: prices must be non-negative", ErrInvalidProduct, p.Handle)
	}
	seen := make(map[string]struct{}, len(p.Variants))
	for _, v := range p.Variants {
		if v.ID == "" {
			return fmt.Errorf("%w: %s: variant id is required", ErrInvalidProduct, p.Handle)
		}
		if _, dup := seen[v.ID]; dup {
			return fmt.Errorf("%w: %s: duplicate variant %q", ErrInvalidProduct, p.Handle, v.ID)
		}
		seen[v.ID] = struct{}{}
		if invalidAmount(v.Price) {
			return fmt.Errorf("%w: %s: variant %q price must be non-negative", ErrInvalidProduct, p.Handle, v.ID)
		}
	}
	return nil
}

func invalidAmount(v float64) bool {
	return v < 0 || math.IsNaN(v) || math.IsInf(v, 0)
}
