package storage

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/eugenenazirov/tile-shop/internal/catalog"
)

var (
	// ErrInvalidCatalog indicates the provided products violate validation rules.
	ErrInvalidCatalog = errors.New("catalog must contain at least one valid product with a unique handle")
	// ErrProductNotFound is returned when no product has the requested handle.
	ErrProductNotFound = errors.New("product not found")
)

// Storage provides access to the product catalog used for estimates.
type Storage interface {
	ListProducts() ([]catalog.Product, error)
	GetProduct(handle string) (catalog.Product, error)
	SetProducts(products []catalog.Product) error
}

// MemoryStorage keeps the catalog in-memory and guards access with a RWMutex.
type MemoryStorage struct {
	mu       sync.RWMutex
	products []catalog.Product
	byHandle map[string]int
}

// NewMemoryStorage initialises storage with a copy of the default catalog.
func NewMemoryStorage() *MemoryStorage {
	s := &MemoryStorage{}
	s.replace(catalog.DefaultProducts())
	return s
}

// ListProducts returns a defensive copy of the catalog in insertion order.
func (s *MemoryStorage) ListProducts() ([]catalog.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return cloneProducts(s.products), nil
}

// GetProduct looks a product up by handle, ignoring case.
func (s *MemoryStorage) GetProduct(handle string) (catalog.Product, error) {
	key := normalizeHandle(handle)

	s.mu.RLock()
	defer s.mu.RUnlock()

	idx, ok := s.byHandle[key]
	if !ok {
		return catalog.Product{}, fmt.Errorf("%w: %q", ErrProductNotFound, handle)
	}
	return s.products[idx].Clone(), nil
}

// SetProducts validates and replaces the whole catalog.
func (s *MemoryStorage) SetProducts(products []catalog.Product) error {
	if len(products) == 0 {
		return ErrInvalidCatalog
	}

	seen := make(map[string]struct{}, len(products))
	for _, p := range products {
		if err := catalog.Validate(p); err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidCatalog, err)
		}
		key := normalizeHandle(p.Handle)
		if _, dup := seen[key]; dup {
			return fmt.Errorf("%w: duplicate handle %q", ErrInvalidCatalog, p.Handle)
		}
		seen[key] = struct{}{}
	}

	cloned := cloneProducts(products)

	s.mu.Lock()
	s.replace(cloned)
	s.mu.Unlock()

	return nil
}

// replace must be called with the write lock held or before the storage is shared.
func (s *MemoryStorage) replace(products []catalog.Product) {
	index := make(map[string]int, len(products))
	for i, p := range products {
		index[normalizeHandle(p.Handle)] = i
	}
	s.products = products
	s.byHandle = index
}

func cloneProducts(src []catalog.Product) []catalog.Product {
	out := make([]catalog.Product, len(src))
	for i, p := range src {
		out[i] = p.Clone()
	}
	return out
}

func normalizeHandle(handle string) string {
	return strings.ToLower(strings.TrimSpace(handle))
}
