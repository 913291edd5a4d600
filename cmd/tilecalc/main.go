// Command tilecalc computes tile and carton quantities from the command line.
//
//	tilecalc --area 33 --tile 60x60
//	tilecalc --length 5.5 --width 6 --tile 30x60 --tiles-per-carton 8 --price 42 --json
//	tilecalc --area 12 --product carrara-marble-look-porcelain --variant 1-premium
//	tilecalc --area 12 --product terracotta-hexagon --catalog data/catalog.yaml
package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/alecthomas/kingpin/v2"

	"github.com/eugenenazirov/tile-shop/internal/application"
	"github.com/eugenenazirov/tile-shop/internal/calculator"
	"github.com/eugenenazirov/tile-shop/internal/catalog"
	"github.com/eugenenazirov/tile-shop/internal/quote"
	"github.com/eugenenazirov/tile-shop/internal/storage"
)

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "tilecalc: %v\n", err)
		os.Exit(1)
	}
}

type options struct {
	area           float64
	length         float64
	width          float64
	tile           string
	waste          float64
	tilesPerCarton int
	coverage       float64
	price          float64
	product        string
	variant        string
	catalogFile    string
	asJSON         bool
}

func parseArgs(args []string) (options, error) {
	var opts options
	app := kingpin.New("tilecalc", "Estimate tiles, cartons and cost for a floor or wall area")
	app.Flag("area", "Area to cover in square metres").Float64Var(&opts.area)
	app.Flag("length", "Room length in metres (used with --width instead of --area)").Float64Var(&opts.length)
	app.Flag("width", "Room width in metres (used with --length instead of --area)").Float64Var(&opts.width)
	app.Flag("tile", "Tile size in centimetres, e.g. 60x60").Default("60x60").StringVar(&opts.tile)
	app.Flag("waste", "Waste allowance as a fraction, e.g. 0.1 for 10%").Default("0.1").Float64Var(&opts.waste)
	app.Flag("tiles-per-carton", "Tiles in one carton; derived from --coverage when omitted").IntVar(&opts.tilesPerCarton)
	app.Flag("coverage", "Square metres covered by one carton").Default("1.44").Float64Var(&opts.coverage)
	app.Flag("price", "Price per carton").Float64Var(&opts.price)
	app.Flag("product", "Catalog product handle; its size, packing and price replace --tile, --tiles-per-carton and --price").StringVar(&opts.product)
	app.Flag("variant", "Product variant id used for pricing").StringVar(&opts.variant)
	app.Flag("catalog", "Catalog file (.yaml, .yml or .xlsx) used with --product").StringVar(&opts.catalogFile)
	app.Flag("json", "Print the estimate as JSON").BoolVar(&opts.asJSON)

	if _, err := app.Parse(args); err != nil {
		return options{}, err
	}
	if opts.area == 0 && opts.length == 0 && opts.width == 0 {
		return options{}, errors.New("--area or --length and --width is required")
	}
	return opts, nil
}

func run(args []string, out io.Writer) error {
	opts, err := parseArgs(args)
	if err != nil {
		return err
	}

	store := storage.NewMemoryStorage()
	if opts.catalogFile != "" {
		products, err := application.LoadCatalog(opts.catalogFile)
		if err != nil {
			return err
		}
		if err := store.SetProducts(products); err != nil {
			return err
		}
	}
	svc := quote.NewService(calculator.New(calculator.WithCartonCoverage(opts.coverage)), store)

	est, err := estimate(svc, opts)
	if err != nil {
		return err
	}

	if opts.asJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(est)
	}
	return printEstimate(out, est)
}

func estimate(svc *quote.Service, opts options) (quote.Estimate, error) {
	area := opts.area
	if area == 0 {
		if opts.length < 0 || opts.width < 0 {
			return quote.Estimate{}, calculator.ErrInvalidArea
		}
		area = opts.length * opts.width
	}

	if opts.product != "" {
		return svc.EstimateProduct(opts.product, quote.ProductRequest{
			AreaSquareMeters: area,
			WasteFactor:      &opts.waste,
			VariantID:        opts.variant,
		})
	}

	width, length, err := catalog.ParseSize(opts.tile)
	if err != nil {
		return quote.Estimate{}, err
	}
	return svc.EstimateCustom(quote.CustomRequest{
		AreaSquareMeters: area,
		TileWidthCm:      width,
		TileLengthCm:     length,
		WasteFactor:      &opts.waste,
		TilesPerCarton:   opts.tilesPerCarton,
		PricePerCarton:   opts.price,
	})
}

func printEstimate(out io.Writer, est quote.Estimate) error {
	tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	if est.ProductName != "" {
		fmt.Fprintf(tw, "Product\t%s\n", est.ProductName)
	}
	fmt.Fprintf(tw, "Area\t%.2f m²\n", est.AreaSquareMeters)
	fmt.Fprintf(tw, "Tile\t%gx%g cm\n", est.TileWidthCm, est.TileLengthCm)
	fmt.Fprintf(tw, "Waste\t%g%%\n", est.WasteFactor*100)
	fmt.Fprintf(tw, "Tiles needed\t%d\n", est.TilesNeeded)
	fmt.Fprintf(tw, "Cartons\t%d (%d per carton, %.2f m²)\n", est.Cartons, est.TilesPerCarton, est.CoveredAreaSquareMeters)
	if est.UnitPriceCents > 0 {
		fmt.Fprintf(tw, "Price per carton\t%s\n", quote.FormatCents(est.UnitPriceCents))
		fmt.Fprintf(tw, "Total\t%s\n", quote.FormatCents(est.TotalCents))
	}
	return tw.Flush()
}
