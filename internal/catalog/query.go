package catalog

import (
	"fmt"
	"slices"
	"sort"
	"strings"
)

// SortOrder names one of the supported catalog orderings.
type SortOrder string

const (
	SortBestSeller SortOrder = "bestseller"
	SortNewest     SortOrder = "newest"
	SortPriceAsc   SortOrder = "price-asc"
	SortPriceDesc  SortOrder = "price-desc"
	SortName       SortOrder = "name"
)

// DefaultSortOrder is applied when no order is requested.
const DefaultSortOrder = SortBestSeller

// ParseSortOrder validates a sort order; an empty string yields DefaultSortOrder.
func ParseSortOrder(raw string) (SortOrder, error) {
	order := SortOrder(strings.ToLower(strings.TrimSpace(raw)))
	switch order {
	case "":
		return DefaultSortOrder, nil
	case SortBestSeller, SortNewest, SortPriceAsc, SortPriceDesc, SortName:
		return order, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidSort, raw)
	}
}

// Filter selects products. Each non-empty list must match (case-insensitive);
// Applications match when the product has any of the requested ones.
type Filter struct {
	Materials    []string
	Finishes     []string
	Applications []string
	InStockOnly  bool
}

// Empty reports whether the filter matches every product.
func (f Filter) Empty() bool {
	return len(f.Materials) == 0 && len(f.Finishes) == 0 && len(f.Applications) == 0 && !f.InStockOnly
}

// ActiveCount is the number of selected filter values.
func (f Filter) ActiveCount() int {
	n := len(f.Materials) + len(f.Finishes) + len(f.Applications)
	if f.InStockOnly {
		n++
	}
	return n
}

// Matches reports whether the product passes the filter.
func (f Filter) Matches(p Product) bool {
	if f.InStockOnly && !p.InStock {
		return false
	}
	if len(f.Materials) > 0 && !containsFold(f.Materials, p.Material) {
		return false
	}
	if len(f.Finishes) > 0 && !containsFold(f.Finishes, p.Finish) {
		return false
	}
	if len(f.Applications) > 0 && !slices.ContainsFunc(p.Applications, func(app string) bool {
		return containsFold(f.Applications, app)
	}) {
		return false
	}
	return true
}

// Query filters and sorts products without modifying the input slice.
func Query(products []Product, filter Filter, order SortOrder) []Product {
	out := make([]Product, 0, len(products))
	for _, p := range products {
		if filter.Matches(p) {
			out = append(out, p)
		}
	}

	switch order {
	case SortBestSeller:
		sort.SliceStable(out, func(i, j int) bool { return out[i].IsBestSeller && !out[j].IsBestSeller })
	case SortNewest:
		sort.SliceStable(out, func(i, j int) bool { return out[i].IsNew && !out[j].IsNew })
	case SortPriceAsc:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Price < out[j].Price })
	case SortPriceDesc:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Price > out[j].Price })
	case SortName:
		sort.SliceStable(out, func(i, j int) bool { return strings.ToLower(out[i].Name) < strings.ToLower(out[j].Name) })
	}
	return out
}

func containsFold(values []string, target string) bool {
	for _, v := range values {
		if strings.EqualFold(strings.TrimSpace(v), target) {
			return true
		}
	}
	return false
}
