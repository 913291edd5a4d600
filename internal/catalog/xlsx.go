package catalog

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"
)

// xlsxColumns is the column order used for export; import maps columns by header name.
var xlsxColumns = []string{
	"id", "handle", "name", "description", "material", "finish", "applications",
	"size", "thickness", "pieces_per_carton", "coverage_per_carton", "price",
	"compare_at_price", "in_stock", "is_new", "is_best_seller", "sample_available",
	"pei", "slip_rating", "water_absorption", "edge", "underfloor_heating",
}

var requiredColumns = []string{"handle", "name", "size"}

// LoadXLSX reads products from the first sheet of a workbook. The first row is
// a header naming the columns; variants are not represented in spreadsheets.
func LoadXLSX(r io.Reader) ([]Product, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSheet, err)
	}
	defer func() {
		_ = f.Close()
	}()

	rows, err := f.GetRows(f.GetSheetName(0))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSheet, err)
	}
	if len(rows) < 2 {
		return nil, fmt.Errorf("%w: expected a header row and at least one product", ErrInvalidSheet)
	}

	index := make(map[string]int, len(rows[0]))
	for i, header := range rows[0] {
		key := strings.ToLower(strings.TrimSpace(header))
		key = strings.ReplaceAll(key, " ", "_")
		index[key] = i
	}
	for _, col := range requiredColumns {
		if _, ok := index[col]; !ok {
			return nil, fmt.Errorf("%w: missing column %q", ErrInvalidSheet, col)
		}
	}

	products := make([]Product, 0, len(rows)-1)
	for i := 1; i < len(rows); i++ {
		row := rowReader{cells: rows[i], index: index}
		if row.blank() {
			continue
		}
		p, err := row.product()
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+1, err)
		}
		if err := Validate(p); err != nil {
			return nil, fmt.Errorf("row %d: %w", i+1, err)
		}
		products = append(products, p)
	}
	if len(products) == 0 {
		return nil, fmt.Errorf("%w: no products found", ErrInvalidSheet)
	}
	return products, nil
}

// WriteXLSX writes products to a single-sheet workbook readable by LoadXLSX.
func WriteXLSX(w io.Writer, products []Product) error {
	f := excelize.NewFile()
	defer func() {
		_ = f.Close()
	}()

	const sheet = "Products"
	if err := f.SetSheetName(f.GetSheetName(0), sheet); err != nil {
		return fmt.Errorf("rename sheet: %w", err)
	}

	header := make([]any, len(xlsxColumns))
	for i, col := range xlsxColumns {
		header[i] = col
	}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	for i, p := range products {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		row := []any{
			p.ID, p.Handle, p.Name, p.Description, p.Material, p.Finish,
			strings.Join(p.Applications, ", "), p.Size, p.Thickness,
			p.PiecesPerCarton, p.CoveragePerCarton, p.Price, p.CompareAtPrice,
			p.InStock, p.IsNew, p.IsBestSeller, p.SampleAvailable,
			p.PEI, p.SlipRating, p.WaterAbsorption, p.Edge, p.UnderfloorHeating,
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return fmt.Errorf("write product %s: %w", p.Handle, err)
		}
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}

type rowReader struct {
	cells []string
	index map[string]int
}

func (r rowReader) get(col string) string {
	i, ok := r.index[col]
	if !ok || i >= len(r.cells) {
		return ""
	}
	return strings.TrimSpace(r.cells[i])
}

func (r rowReader) blank() bool {
	for _, c := range r.cells {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}

func (r rowReader) product() (Product, error) {
	p := Product{
		ID:              r.get("id"),
		Handle:          r.get("handle"),
		Name:            r.get("name"),
		Description:     r.get("description"),
		Material:        r.get("material"),
		Finish:          r.get("finish"),
		Applications:    splitList(r.get("applications")),
		Size:            r.get("size"),
		Thickness:       r.get("thickness"),
		PEI:             r.get("pei"),
		SlipRating:      r.get("slip_rating"),
		WaterAbsorption: r.get("water_absorption"),
		Edge:            r.get("edge"),
	}

	var err error
	if p.PiecesPerCarton, err = r.intValue("pieces_per_carton"); err != nil {
		return Product{}, err
	}
	if p.CoveragePerCarton, err = r.floatValue("coverage_per_carton"); err != nil {
		return Product{}, err
	}
	if p.Price, err = r.floatValue("price"); err != nil {
		return Product{}, err
	}
	if p.CompareAtPrice, err = r.floatValue("compare_at_price"); err != nil {
		return Product{}, err
	}

	flags := []struct {
		col string
		dst *bool
	}{
		{"in_stock", &p.InStock},
		{"is_new", &p.IsNew},
		{"is_best_seller", &p.IsBestSeller},
		{"sample_available", &p.SampleAvailable},
		{"underfloor_heating", &p.UnderfloorHeating},
	}
	for _, flag := range flags {
		if *flag.dst, err = r.boolValue(flag.col); err != nil {
			return Product{}, err
		}
	}
	return p, nil
}

func (r rowReader) intValue(col string) (int, error) {
	raw := r.get(col)
	if raw == "" {
		return 0, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: column %s: invalid integer %q", ErrInvalidSheet, col, raw)
	}
	return v, nil
}

func (r rowReader) floatValue(col string) (float64, error) {
	raw := strings.TrimPrefix(r.get(col), "$")
	if raw == "" {
		return 0, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: column %s: invalid number %q", ErrInvalidSheet, col, raw)
	}
	return v, nil
}

func (r rowReader) boolValue(col string) (bool, error) {
	switch strings.ToLower(r.get(col)) {
	case "":
		return false, nil
	case "yes", "y":
		return true, nil
	case "no", "n":
		return false, nil
	}
	v, err := strconv.ParseBool(r.get(col))
	if err != nil {
		return false, fmt.Errorf("%w: column %s: invalid boolean %q", ErrInvalidSheet, col, r.get(col))
	}
	return v, nil
}

func splitList(raw string) []string {
	if raw == "" {
		return nil
	}
	fields := strings.FieldsFunc(raw, func(r rune) bool { return r == ',' || r == ';' })
	out := make([]string, 0, len(fields))
	for _, f := range fields {
		if f = strings.TrimSpace(f); f != "" {
			out = append(out, f)
		}
	}
	return out
}
