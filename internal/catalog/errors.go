package catalog

import "errors"

var (
	// ErrInvalidSize is returned when a size string is not of the form "WxH" with positive numbers.
	ErrInvalidSize = errors.New("size must be formatted as WIDTHxLENGTH with positive centimetre values")
	// ErrInvalidProduct is returned when a product record is incomplete or inconsistent.
	ErrInvalidProduct = errors.New("invalid product")
	// ErrUnknownVariant is returned when a variant id does not belong to the product.
	ErrUnknownVariant = errors.New("unknown variant")
	// ErrInvalidSort is returned for an unsupported sort order.
	ErrInvalidSort = errors.New("unsupported sort order")
	// ErrInvalidSheet is returned when a spreadsheet cannot be mapped to products.
	ErrInvalidSheet = errors.New("invalid catalog spreadsheet")
)
