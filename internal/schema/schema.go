// Package schema holds the per-category table definitions used to turn raw
// scraped cells into typed records. The registry is built once at package
// init and never mutated afterward, so it is safe for concurrent readers.
package schema

import (
	"fmt"
	"strings"
)

// FieldType is the semantic type of a single table column.
type FieldType int

const (
	Text FieldType = iota
	Int
	Float
	Bool
	Date
)

// String returns a human-readable name for the field type.
func (t FieldType) String() string {
	switch t {
	case Text:
		return "text"
	case Int:
		return "int"
	case Float:
		return "float"
	case Bool:
		return "bool"
	case Date:
		return "date"
	default:
		return fmt.Sprintf("FieldType(%d)", int(t))
	}
}

// Field is one column definition. Order within a Category is significant:
// it lines up positionally with the raw cells of a table row.
type Field struct {
	Name string
	Type FieldType
}

// Category describes one stat table: its canonical field list, the HTML
// element ID used to locate the table on the page, and the oldest season
// for which the source site has data.
type Category struct {
	Name       string
	TableID    string
	OldestYear int
	Fields     []Field
}

// IdentityField is the column carrying each player's unique page URL. It is
// inserted programmatically at IdentityPos rather than scraped as a regular
// cell, and combined with the season year it forms the row identity key.
const (
	IdentityField = "player_url"
	IdentityPos   = 1
)

// NameField is the column holding the player display name. Its table cell
// also carries the identity URL link.
const NameField = "player"

// UnknownCategoryError reports a lookup for a category the registry does not
// know about.
type UnknownCategoryError struct {
	Category string
	Valid    []string
}

func (e *UnknownCategoryError) Error() string {
	return fmt.Sprintf("unknown stat category %q, valid categories are: %s",
		e.Category, strings.Join(e.Valid, ", "))
}

// Lookup returns the category definition for name. The match is
// case-insensitive, mirroring how callers pass user-supplied category names.
func Lookup(name string) (Category, error) {
	cat, ok := registry[strings.ToLower(name)]
	if !ok {
		return Category{}, &UnknownCategoryError{Category: name, Valid: Categories()}
	}
	return cat, nil
}

// Categories returns the supported category names in canonical order.
func Categories() []string {
	out := make([]string, len(order))
	copy(out, order)
	return out
}

// OldestYear returns the oldest season with data for the category.
func OldestYear(name string) (int, error) {
	cat, err := Lookup(name)
	if err != nil {
		return 0, err
	}
	return cat.OldestYear, nil
}
