package catalog

import (
	"bytes"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSize(t *testing.T) {
	t.Parallel()

	valid := map[string][2]float64{
		"60x60":      {60, 60},
		"60X120":     {60, 120},
		" 20 x 120 ": {20, 120},
		"30×30":      {30, 30},
		"15.5x90 cm": {15.5, 90},
		"80 x 160cm": {80, 160},
	}
	for raw, want := range valid {
		w, l, err := ParseSize(raw)
		require.NoError(t, err, raw)
		assert.Equal(t, want[0], w, raw)
		assert.Equal(t, want[1], l, raw)
	}

	for _, raw := range []string{"", "60", "60x", "x60", "0x60", "60x-1", "axb", "60x60x10", "NaNx60"} {
		_, _, err := ParseSize(raw)
		assert.ErrorIs(t, err, ErrInvalidSize, raw)
	}
}

func TestValidate(t *testing.T) {
	t.Parallel()

	base := DefaultProducts()[0]
	require.NoError(t, Validate(base))

	cases := map[string]func(p *Product){
		"missing handle":     func(p *Product) { p.Handle = " " },
		"missing name":       func(p *Product) { p.Name = "" },
		"bad size":           func(p *Product) { p.Size = "sixty" },
		"negative pieces":    func(p *Product) { p.PiecesPerCarton = -1 },
		"negative coverage":  func(p *Product) { p.CoveragePerCarton = -0.5 },
		"negative price":     func(p *Product) { p.Price = -1 },
		"variant without id": func(p *Product) { p.Variants = []Variant{{Name: "x", Price: 1}} },
		"duplicate variant": func(p *Product) {
			p.Variants = []Variant{{ID: "a", Price: 1}, {ID: "a", Price: 2}}
		},
	}
	for name, mutate := range cases {
		p := base.Clone()
		mutate(&p)
		assert.ErrorIs(t, Validate(p), ErrInvalidProduct, name)
	}
}

func TestUnitPrice(t *testing.T) {
	t.Parallel()

	p := DefaultProducts()[0]

	price, err := p.UnitPrice("")
	require.NoError(t, err)
	assert.Equal(t, p.Price, price)

	price, err = p.UnitPrice("1-premium")
	require.NoError(t, err)
	assert.Equal(t, 58.0, price)

	_, err = p.UnitPrice("missing")
	assert.ErrorIs(t, err, ErrUnknownVariant)
}

func TestCloneIsDeep(t *testing.T) {
	t.Parallel()

	original := DefaultProducts()[0]
	clone := original.Clone()
	clone.Applications[0] = "Changed"
	clone.Variants[0].Price = 1

	assert.NotEqual(t, original.Applications[0], clone.Applications[0])
	assert.NotEqual(t, original.Variants[0].Price, clone.Variants[0].Price)
}

func TestDefaultProductsAreValid(t *testing.T) {
	t.Parallel()

	products := DefaultProducts()
	require.NotEmpty(t, products)
	seen := make(map[string]struct{}, len(products))
	for _, p := range products {
		require.NoError(t, Validate(p))
		_, dup := seen[p.Handle]
		require.False(t, dup, "duplicate handle %s", p.Handle)
		seen[p.Handle] = struct{}{}
	}
}

func TestQueryFilters(t *testing.T) {
	t.Parallel()

	products := DefaultProducts()

	tests := []struct {
		name   string
		filter Filter
		want   []string
	}{
		{
			name: "EmptyFilterKeepsAll",
			want: handles(products),
		},
		{
			name:   "Material",
			filter: Filter{Materials: []string{"porcelain"}},
			want:   []string{"carrara-marble-look-porcelain", "concrete-large-format"},
		},
		{
			name:   "MaterialAndFinish",
			filter: Filter{Materials: []string{"Porcelain"}, Finishes: []string{"Matte"}},
			want:   []string{"concrete-large-format"},
		},
		{
			name:   "AnyApplication",
			filter: Filter{Applications: []string{"Outdoor", "Bathroom"}},
			want: []string{
				"carrara-marble-look-porcelain", "slate-outdoor-paver",
				"emerald-glass-mosaic", "concrete-large-format",
			},
		},
		{
			name:   "InStockOnly",
			filter: Filter{InStockOnly: true, Applications: []string{"Outdoor"}},
			want:   []string{"concrete-large-format"},
		},
		{
			name:   "NoMatches",
			filter: Filter{Materials: []string{"Vinyl"}},
			want:   []string{},
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			got := handles(Query(products, tc.filter, ""))
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Fatalf("unexpected products (-want +got):\n%s", diff)
			}
		})
	}
}

func TestQuerySortOrders(t *testing.T) {
	t.Parallel()

	products := DefaultProducts()

	tests := map[SortOrder][]string{
		SortBestSeller: {
			"carrara-marble-look-porcelain", "concrete-large-format",
			"oak-plank-ceramic", "slate-outdoor-paver", "emerald-glass-mosaic",
		},
		SortNewest: {
			"oak-plank-ceramic", "emerald-glass-mosaic",
			"carrara-marble-look-porcelain", "slate-outdoor-paver", "concrete-large-format",
		},
		SortPriceAsc: {
			"oak-plank-ceramic", "carrara-marble-look-porcelain", "emerald-glass-mosaic",
			"slate-outdoor-paver", "concrete-large-format",
		},
		SortPriceDesc: {
			"concrete-large-format", "slate-outdoor-paver", "emerald-glass-mosaic",
			"carrara-marble-look-porcelain", "oak-plank-ceramic",
		},
		SortName: {
			"carrara-marble-look-porcelain", "concrete-large-format", "emerald-glass-mosaic",
			"oak-plank-ceramic", "slate-outdoor-paver",
		},
	}

	for order, want := range tests {
		got := handles(Query(products, Filter{}, order))
		if diff := cmp.Diff(want, got); diff != "" {
			t.Fatalf("order %s (-want +got):\n%s", order, diff)
		}
	}

	before := handles(products)
	_ = Query(products, Filter{}, SortPriceDesc)
	assert.Equal(t, before, handles(products), "input slice must not be reordered")
}

func TestParseSortOrder(t *testing.T) {
	t.Parallel()

	order, err := ParseSortOrder("")
	require.NoError(t, err)
	assert.Equal(t, DefaultSortOrder, order)

	order, err = ParseSortOrder(" Price-Asc ")
	require.NoError(t, err)
	assert.Equal(t, SortPriceAsc, order)

	_, err = ParseSortOrder("random")
	assert.ErrorIs(t, err, ErrInvalidSort)
}

func TestFilterActiveCount(t *testing.T) {
	t.Parallel()

	f := Filter{Materials: []string{"Porcelain"}, Applications: []string{"Indoor", "Kitchen"}, InStockOnly: true}
	assert.Equal(t, 4, f.ActiveCount())
	assert.False(t, f.Empty())
	assert.True(t, Filter{}.Empty())
}

func TestLoadYAML(t *testing.T) {
	t.Parallel()

	doc := `
products:
  - id: "10"
    handle: terracotta-hex
    name: Terracotta Hex
    material: Ceramic
    finish: Matte
    applications: [Indoor, Kitchen]
    size: 20x23
    pieces_per_carton: 25
    coverage_per_carton: 1.0
    price: 30
    in_stock: true
    variants:
      - id: "10-red"
        name: Red
        price: 30
`
	products, err := LoadYAML(strings.NewReader(doc))
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, "terracotta-hex", products[0].Handle)
	assert.Equal(t, 25, products[0].PiecesPerCarton)
	assert.Equal(t, []string{"Indoor", "Kitchen"}, products[0].Applications)
	assert.True(t, products[0].InStock)

	_, err = LoadYAML(strings.NewReader("products:\n  - handle: x\n    name: X\n    size: bad\n"))
	assert.ErrorIs(t, err, ErrInvalidProduct)

	_, err = LoadYAML(strings.NewReader("products:\n  - handle: x\n    colour: red\n"))
	assert.Error(t, err)

	_, err = LoadYAML(strings.NewReader(""))
	assert.ErrorIs(t, err, ErrInvalidProduct)
}

func TestXLSXRoundTrip(t *testing.T) {
	t.Parallel()

	products := DefaultProducts()

	var buf bytes.Buffer
	require.NoError(t, WriteXLSX(&buf, products))

	loaded, err := LoadXLSX(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)
	require.Len(t, loaded, len(products))

	withoutVariants := make([]Product, len(products))
	for i, p := range products {
		p.Variants = nil
		withoutVariants[i] = p
	}
	if diff := cmp.Diff(withoutVariants, loaded); diff != "" {
		t.Fatalf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadXLSXRejectsInvalidInput(t *testing.T) {
	t.Parallel()

	_, err := LoadXLSX(strings.NewReader("not a workbook"))
	assert.ErrorIs(t, err, ErrInvalidSheet)

	var buf bytes.Buffer
	require.NoError(t, WriteXLSX(&buf, nil))
	_, err = LoadXLSX(bytes.NewReader(buf.Bytes()))
	assert.ErrorIs(t, err, ErrInvalidSheet)

	broken := DefaultProducts()[:1]
	broken[0].Size = "big"
	buf.Reset()
	require.NoError(t, WriteXLSX(&buf, broken))
	_, err = LoadXLSX(bytes.NewReader(buf.Bytes()))
	assert.ErrorIs(t, err, ErrInvalidProduct)
	assert.Contains(t, err.Error(), "row 2")
}

func handles(products []Product) []string {
	out := make([]string, 0, len(products))
	for _, p := range products {
		out = append(out, p.Handle)
	}
	return out
}
