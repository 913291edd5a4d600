package calculator

import (
	"errors"
	"math"
	"math/rand/v2"
	"testing"
)

func TestCompute(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   Input
		want    Result
		wantErr error
	}{
		{
			name:  "StandardRoomTenPercentWaste",
			input: Input{AreaSquareMeters: 33, TileWidthCm: 60, TileLengthCm: 60, WasteFactor: 0.10},
			want:  Result{TilesNeeded: 101, Cartons: 26, TilesPerCarton: 4},
		},
		{
			name:  "ExplicitTilesPerCarton",
			input: Input{AreaSquareMeters: 33, TileWidthCm: 60, TileLengthCm: 60, WasteFactor: 0.10, TilesPerCarton: 11},
			want:  Result{TilesNeeded: 101, Cartons: 10, TilesPerCarton: 11},
		},
		{
			name:  "CoveragePerCartonDerivesPacking",
			input: Input{AreaSquareMeters: 10, TileWidthCm: 60, TileLengthCm: 120, WasteFactor: 0.10, CoveragePerCarton: 1.44},
			want:  Result{TilesNeeded: 16, Cartons: 8, TilesPerCarton: 2},
		},
		{
			name:  "ExactMultipleIsNotOverCounted",
			input: Input{AreaSquareMeters: 3.6, TileWidthCm: 60, TileLengthCm: 60},
			want:  Result{TilesNeeded: 10, Cartons: 3, TilesPerCarton: 4},
		},
		{
			name:  "FractionJustAboveWholeTileRoundsUp",
			input: Input{AreaSquareMeters: 10.0000000005, TileWidthCm: 100, TileLengthCm: 100},
			want:  Result{TilesNeeded: 11, Cartons: 11, TilesPerCarton: 1},
		},
		{
			name:  "HugeTilesPerCartonStillOrdersOneCarton",
			input: Input{AreaSquareMeters: 33, TileWidthCm: 60, TileLengthCm: 60, WasteFactor: 0.10, TilesPerCarton: math.MaxInt},
			want:  Result{TilesNeeded: 101, Cartons: 1, TilesPerCarton: math.MaxInt},
		},
		{
			name:  "TileLargerThanCartonCoverage",
			input: Input{AreaSquareMeters: 8, TileWidthCm: 200, TileLengthCm: 200},
			want:  Result{TilesNeeded: 2, Cartons: 2, TilesPerCarton: 1},
		},
		{
			name:  "TinyAreaStillNeedsOneTile",
			input: Input{AreaSquareMeters: 0.0001, TileWidthCm: 30, TileLengthCm: 30},
			want:  Result{TilesNeeded: 1, Cartons: 1, TilesPerCarton: 16},
		},
		{
			name:  "ZeroArea",
			input: Input{AreaSquareMeters: 0, TileWidthCm: 60, TileLengthCm: 60, WasteFactor: 0.10},
			want:  Result{},
		},
		{
			name:    "ZeroWidth",
			input:   Input{AreaSquareMeters: 33, TileWidthCm: 0, TileLengthCm: 60, WasteFactor: 0.10},
			wantErr: ErrInvalidDimension,
		},
		{
			name:    "NegativeLength",
			input:   Input{AreaSquareMeters: 33, TileWidthCm: 60, TileLengthCm: -60},
			wantErr: ErrInvalidDimension,
		},
		{
			name:    "NaNWidth",
			input:   Input{AreaSquareMeters: 33, TileWidthCm: math.NaN(), TileLengthCm: 60},
			wantErr: ErrInvalidDimension,
		},
		{
			name:    "NegativeWasteFactor",
			input:   Input{AreaSquareMeters: 33, TileWidthCm: 60, TileLengthCm: 60, WasteFactor: -0.05},
			wantErr: ErrInvalidWasteFactor,
		},
		{
			name:    "NegativeArea",
			input:   Input{AreaSquareMeters: -1, TileWidthCm: 60, TileLengthCm: 60},
			wantErr: ErrInvalidArea,
		},
		{
			name:    "InfiniteArea",
			input:   Input{AreaSquareMeters: math.Inf(1), TileWidthCm: 60, TileLengthCm: 60},
			wantErr: ErrInvalidArea,
		},
		{
			name:    "NegativeTilesPerCarton",
			input:   Input{AreaSquareMeters: 10, TileWidthCm: 60, TileLengthCm: 60, TilesPerCarton: -4},
			wantErr: ErrInvalidPacking,
		},
		{
			name:    "NegativeCoverage",
			input:   Input{AreaSquareMeters: 10, TileWidthCm: 60, TileLengthCm: 60, CoveragePerCarton: -1},
			wantErr: ErrInvalidPacking,
		},
		{
			name:    "QuantityOutOfRange",
			input:   Input{AreaSquareMeters: 1e12, TileWidthCm: 1, TileLengthCm: 1},
			wantErr: ErrQuantityOutOfRange,
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			got, err := New().Compute(tc.input)

			if !errors.Is(err, tc.wantErr) {
				t.Fatalf("expected error %v, got %v", tc.wantErr, err)
			}
			if tc.wantErr != nil {
				return
			}
			if got != tc.want {
				t.Fatalf("unexpected result: got %+v want %+v", got, tc.want)
			}
		})
	}
}

func TestComputeFunction(t *testing.T) {
	t.Parallel()

	got, err := Compute(33, 60, 60, 0.10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.TilesNeeded != 101 {
		t.Fatalf("expected 101 tiles, got %d", got.TilesNeeded)
	}

	if _, err := Compute(33, 0, 60, 0.10); !errors.Is(err, ErrInvalidDimension) {
		t.Fatalf("expected ErrInvalidDimension, got %v", err)
	}
	if _, err := Compute(33, 60, 60, -0.05); !errors.Is(err, ErrInvalidWasteFactor) {
		t.Fatalf("expected ErrInvalidWasteFactor, got %v", err)
	}
}

func TestNewInputAppliesDefaultWaste(t *testing.T) {
	t.Parallel()

	in := NewInput(12, 30, 60)
	if in.WasteFactor != DefaultWasteFactor {
		t.Fatalf("expected waste factor %v, got %v", DefaultWasteFactor, in.WasteFactor)
	}
	if got := in.TileAreaSquareMeters(); math.Abs(got-0.18) > 1e-12 {
		t.Fatalf("expected tile area 0.18, got %v", got)
	}
}

func TestWithCartonCoverage(t *testing.T) {
	t.Parallel()

	got, err := New(WithCartonCoverage(2.88)).Compute(NewInput(33, 60, 60))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.TilesPerCarton != 8 {
		t.Fatalf("expected 8 tiles per carton, got %d", got.TilesPerCarton)
	}
	if got.Cartons != 13 {
		t.Fatalf("expected 13 cartons, got %d", got.Cartons)
	}

	ignored, err := New(WithCartonCoverage(-1)).Compute(NewInput(33, 60, 60))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ignored.TilesPerCarton != 4 {
		t.Fatalf("expected default packing of 4 tiles, got %d", ignored.TilesPerCarton)
	}
}

func TestComputeNeverUnderCounts(t *testing.T) {
	t.Parallel()

	calc := New()
	rng := rand.New(rand.NewPCG(7, 42))
	for i := 0; i < 2000; i++ {
		in := Input{
			AreaSquareMeters: rng.Float64() * 500,
			TileWidthCm:      1 + rng.Float64()*119,
			TileLengthCm:     1 + rng.Float64()*119,
			WasteFactor:      rng.Float64() * 0.3,
		}
		got, err := calc.Compute(in)
		if err != nil {
			t.Fatalf("unexpected error for %+v: %v", in, err)
		}

		raw := in.AreaSquareMeters / in.TileAreaSquareMeters()
		if float64(got.TilesNeeded) < raw {
			t.Fatalf("under-counted tiles for %+v: got %d, raw %f", in, got.TilesNeeded, raw)
		}
		if got.TilesNeeded < 0 || got.Cartons < 0 {
			t.Fatalf("negative quantities for %+v: %+v", in, got)
		}
		if got.Cartons*got.TilesPerCarton < got.TilesNeeded {
			t.Fatalf("cartons do not cover tiles for %+v: %+v", in, got)
		}

		again, err := calc.Compute(in)
		if err != nil || again != got {
			t.Fatalf("expected identical result on repeat, got %+v and %+v (%v)", got, again, err)
		}
	}
}

func TestCartonsCoverTilesForLargePacking(t *testing.T) {
	t.Parallel()

	calc := New()
	for _, perCarton := range []int{1, 7, math.MaxInt32, math.MaxInt - 1, math.MaxInt} {
		got, err := calc.Compute(Input{AreaSquareMeters: 250, TileWidthCm: 30, TileLengthCm: 30, WasteFactor: 0.15, TilesPerCarton: perCarton})
		if err != nil {
			t.Fatalf("tilesPerCarton=%d: unexpected error: %v", perCarton, err)
		}
		if got.Cartons < 1 {
			t.Fatalf("tilesPerCarton=%d: expected at least one carton, got %+v", perCarton, got)
		}
		// Cartons-1 full cartons must fall short, otherwise one carton too many was ordered.
		if uint64(got.Cartons)*uint64(perCarton) < uint64(got.TilesNeeded) ||
			uint64(got.Cartons-1)*uint64(perCarton) >= uint64(got.TilesNeeded) {
			t.Fatalf("tilesPerCarton=%d: cartons do not match tiles: %+v", perCarton, got)
		}
	}
}

func TestCeilCountAbsorbsOnlyRoundingNoise(t *testing.T) {
	t.Parallel()

	area, side := 3.6, 0.6
	if got := ceilCount(area / (side * side)); got != 10 {
		t.Fatalf("expected float noise above 10 to count as 10, got %d", got)
	}
	if got := ceilCount(math.Nextafter(10, 11)); got != 10 {
		t.Fatalf("expected one ULP above 10 to count as 10, got %d", got)
	}
	if got := ceilCount(10.0000000005); got != 11 {
		t.Fatalf("expected a real fraction above 10 to round up to 11, got %d", got)
	}
	if got := ceilCount(2e9 + 0.25); got != 2e9+1 {
		t.Fatalf("expected large fractional quantity to round up, got %d", got)
	}
}

func TestComputeIsMonotonicInArea(t *testing.T) {
	t.Parallel()

	calc := New()
	prev := Result{}
	for area := 0.0; area <= 100; area += 0.37 {
		got, err := calc.Compute(Input{AreaSquareMeters: area, TileWidthCm: 45, TileLengthCm: 90, WasteFactor: 0.15})
		if err != nil {
			t.Fatalf("unexpected error at area %f: %v", area, err)
		}
		if got.TilesNeeded < prev.TilesNeeded || got.Cartons < prev.Cartons {
			t.Fatalf("quantities decreased at area %f: %+v after %+v", area, got, prev)
		}
		prev = got
	}
}

func BenchmarkCompute(b *testing.B) {
	calc := New()
	in := NewInput(33, 60, 60)
	for i := 0; i < b.N; i++ {
		if _, err := calc.Compute(in); err != nil {
			b.Fatalf("unexpected error: %v", err)
		}
	}
}
