package catalog

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

type yamlCatalog struct {
	Products []Product `yaml:"products"`
}

// LoadYAML reads a catalog document with a top-level "products" list and
// validates every record.
func LoadYAML(r io.Reader) ([]Product, error) {
	var doc yamlCatalog
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		if err == io.EOF {
			return nil, fmt.Errorf("%w: empty document", ErrInvalidProduct)
		}
		return nil, fmt.Errorf("parse YAML catalog: %w", err)
	}

	for i, p := range doc.Products {
		if err := Validate(p); err != nil {
			return nil, fmt.Errorf("product %d: %w", i+1, err)
		}
	}
	return doc.Products, nil
}
