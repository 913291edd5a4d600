// Package catalog defines tile product records and the operations the
// storefront performs on them: size parsing, validation, filtering and
// sorting, and loading from YAML documents or XLSX spreadsheets.
package catalog
