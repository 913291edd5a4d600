package catalog

var defaultProducts = []Product{
	{
		ID:                "1",
		Handle:            "carrara-marble-look-porcelain",
		Name:              "Carrara Marble Look Porcelain",
		Description:       "Polished porcelain with soft grey veining, rectified edges.",
		Material:          "Porcelain",
		Finish:            "Polished",
		Applications:      []string{"Indoor", "Bathroom", "Kitchen"},
		Size:              "60x60",
		Thickness:         "9mm",
		PiecesPerCarton:   4,
		CoveragePerCarton: 1.44,
		Price:             45,
		CompareAtPrice:    52,
		Variants: []Variant{
			{ID: "1-std", Name: "Standard", Price: 45},
			{ID: "1-premium", Name: "Premium Select", Price: 58},
		},
		InStock:           true,
		IsBestSeller:      true,
		SampleAvailable:   true,
		PEI:               "PEI 4",
		SlipRating:        "R9",
		WaterAbsorption:   "<0.5%",
		Edge:              "Rectified",
		UnderfloorHeating: true,
	},
	{
		ID:                "2",
		Handle:            "oak-plank-ceramic",
		Name:              "Oak Plank Ceramic",
		Description:       "Wood-effect ceramic plank for warm living spaces.",
		Material:          "Ceramic",
		Finish:            "Matte",
		Applications:      []string{"Indoor", "Kitchen"},
		Size:              "20x120",
		Thickness:         "10mm",
		PiecesPerCarton:   6,
		CoveragePerCarton: 1.44,
		Price:             38.5,
		Variants:          []Variant{{ID: "2-std", Name: "Natural Oak", Price: 38.5}},
		InStock:           true,
		IsNew:             true,
		SampleAvailable:   true,
		PEI:               "PEI 3",
		SlipRating:        "R10",
		WaterAbsorption:   "3-6%",
		Edge:              "Pressed",
		UnderfloorHeating: true,
	},
	{
		ID:                "3",
		Handle:            "slate-outdoor-paver",
		Name:              "Slate Outdoor Paver",
		Description:       "Textured natural stone for patios and terraces.",
		Material:          "Natural Stone",
		Finish:            "Textured",
		Applications:      []string{"Outdoor", "Commercial"},
		Size:              "60x90",
		Thickness:         "20mm",
		PiecesPerCarton:   2,
		CoveragePerCarton: 1.08,
		Price:             72,
		Variants:          []Variant{{ID: "3-std", Name: "Charcoal", Price: 72}},
		InStock:           false,
		SampleAvailable:   false,
		SlipRating:        "R11",
		WaterAbsorption:   "<1%",
		Edge:              "Calibrated",
	},
	{
		ID:                "4",
		Handle:            "emerald-glass-mosaic",
		Name:              "Emerald Glass Mosaic",
		Description:       "Glossy glass mosaic sheets for feature walls.",
		Material:          "Mosaic",
		Finish:            "Glossy",
		Applications:      []string{"Indoor", "Bathroom"},
		Size:              "30x30",
		Thickness:         "4mm",
		PiecesPerCarton:   11,
		CoveragePerCarton: 0.99,
		Price:             64,
		Variants:          []Variant{{ID: "4-std", Name: "Emerald", Price: 64}},
		InStock:           true,
		IsNew:             true,
		SampleAvailable:   true,
		WaterAbsorption:   "0%",
		Edge:              "Mesh-backed",
	},
	{
		ID:                "5",
		Handle:            "concrete-large-format",
		Name:              "Concrete Large Format",
		Description:       "Large format matte porcelain for commercial floors.",
		Material:          "Porcelain",
		Finish:            "Matte",
		Applications:      []string{"Indoor", "Outdoor", "Commercial"},
		Size:              "120x120",
		Thickness:         "10mm",
		PiecesPerCarton:   1,
		CoveragePerCarton: 1.44,
		Price:             89,
		Variants:          []Variant{{ID: "5-std", Name: "Ash", Price: 89}},
		InStock:           true,
		IsBestSeller:      true,
		SampleAvailable:   true,
		PEI:               "PEI 5",
		SlipRating:        "R10",
		WaterAbsorption:   "<0.5%",
		Edge:              "Rectified",
		UnderfloorHeating: true,
	},
}

// DefaultProducts returns a copy of the built-in seed catalog.
func DefaultProducts() []Product {
	out := make([]Product, len(defaultProducts))
	for i, p := range defaultProducts {
		out[i] = p.Clone()
	}
	return out
}
