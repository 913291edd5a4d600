package quote

import (
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/phpdave11/gofpdf"
)

// WritePDF renders a single-page printable quote for the estimate.
func WritePDF(w io.Writer, est Estimate, generatedAt time.Time) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.SetTitle("Tile Quote", true)
	pdf.AddPage()

	title := "Tile Quote"
	if est.ProductName != "" {
		title = "Tile Quote: " + est.ProductName
	}
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, tr(title))
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 10)
	pdf.Cell(0, 6, fmt.Sprintf("Date: %s", generatedAt.Format("2006-01-02")))
	pdf.Ln(10)

	rows := [][2]string{
		{"Area to cover", formatFloat(est.AreaSquareMeters) + " m²"},
		{"Tile size", formatFloat(est.TileWidthCm) + " x " + formatFloat(est.TileLengthCm) + " cm"},
		{"Wastage allowance", formatFloat(est.WasteFactor*100) + "%"},
		{"Tiles needed", strconv.Itoa(est.TilesNeeded)},
		{"Tiles per carton", strconv.Itoa(est.TilesPerCarton)},
		{"Cartons required", strconv.Itoa(est.Cartons)},
		{"Coverage supplied", formatFloat(est.CoveredAreaSquareMeters) + " m²"},
		{"Price per carton", FormatCents(est.UnitPriceCents)},
	}
	if est.VariantID != "" {
		rows = append([][2]string{{"Option", est.VariantID}}, rows...)
	}

	pdf.SetFont("Helvetica", "", 11)
	for _, row := range rows {
		pdf.CellFormat(70, 8, tr(row[0]), "1", 0, "L", false, 0, "")
		pdf.CellFormat(0, 8, tr(row[1]), "1", 1, "R", false, 0, "")
	}

	pdf.SetFont("Helvetica", "B", 12)
	pdf.CellFormat(70, 10, "Estimated total", "1", 0, "L", false, 0, "")
	pdf.CellFormat(0, 10, FormatCents(est.TotalCents), "1", 1, "R", false, 0, "")
	pdf.Ln(6)

	pdf.SetFont("Helvetica", "I", 9)
	pdf.MultiCell(0, 5, "Excluding delivery. Order a few extra cartons for replacements; batches can vary slightly in colour and texture.", "", "L", false)

	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("render quote PDF: %w", err)
	}
	return nil
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
