package record

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/fortuna/gridiron/internal/schema"
)

// dateLayout is the wire format stat tables use for dates.
const dateLayout = "2006-01-02"

// locationField marks the home/away column in game-level tables. The source
// site encodes away games as a lone "@" and home games as an empty cell.
const locationField = "location"

// RawRow is one table row as the extractor hands it over: cleaned cell texts
// in schema order, plus the identity URL and the unmodified name cell. The
// raw name still carries accolade markers ('*' pro bowl, '+' all-pro) that
// Build strips from the stored value.
type RawRow struct {
	Cells     []string
	PlayerURL string
	RawName   string
}

// TypeCoercionError reports a non-empty cell that could not be coerced to its
// schema type.
type TypeCoercionError struct {
	Field string
	Raw   string
	Type  schema.FieldType
}

func (e *TypeCoercionError) Error() string {
	return fmt.Sprintf("cannot coerce field %q value %q to %s", e.Field, e.Raw, e.Type)
}

// Build converts raw cells into one typed Value per schema field. Cells and
// fields line up positionally, so a count mismatch is an error rather than a
// best-effort fill.
func Build(fields []schema.Field, raw RawRow) ([]Value, error) {
	if len(raw.Cells) != len(fields) {
		return nil, fmt.Errorf("row has %d cells, schema has %d fields", len(raw.Cells), len(fields))
	}

	values := make([]Value, len(fields))
	for i, field := range fields {
		v, err := buildValue(field, raw.Cells[i])
		if err != nil {
			return nil, err
		}
		values[i] = v
	}
	return values, nil
}

func buildValue(field schema.Field, cell string) (Value, error) {
	if field.Name == locationField {
		if strings.TrimSpace(cell) == "@" {
			return TextValue("away"), nil
		}
		return TextValue("home"), nil
	}

	cleaned := Clean(cell)
	if cleaned == "" {
		return MissingValue(), nil
	}

	switch field.Type {
	case schema.Text:
		return TextValue(cleaned), nil
	case schema.Int:
		n, err := strconv.ParseInt(cleaned, 10, 64)
		if err != nil {
			return Value{}, &TypeCoercionError{Field: field.Name, Raw: cell, Type: field.Type}
		}
		return IntValue(n), nil
	case schema.Float:
		f, err := strconv.ParseFloat(cleaned, 64)
		if err != nil {
			return Value{}, &TypeCoercionError{Field: field.Name, Raw: cell, Type: field.Type}
		}
		return FloatValue(f), nil
	case schema.Bool:
		b, err := strconv.ParseBool(cleaned)
		if err != nil {
			return Value{}, &TypeCoercionError{Field: field.Name, Raw: cell, Type: field.Type}
		}
		return BoolValue(b), nil
	case schema.Date:
		t, err := time.Parse(dateLayout, cleaned)
		if err != nil {
			return Value{}, &TypeCoercionError{Field: field.Name, Raw: cell, Type: field.Type}
		}
		return DateValue(t), nil
	default:
		return Value{}, fmt.Errorf("unhandled field type %s for %q", field.Type, field.Name)
	}
}

// Clean normalizes one raw cell: trims whitespace, strips accolade and
// percent markers from the tail, and removes thousands separators. A cell
// that cleans down to nothing means the stat is missing for that row.
func Clean(cell string) string {
	s := strings.TrimSpace(cell)
	if strings.HasSuffix(s, "*+") {
		s = strings.TrimSuffix(s, "*+")
	} else if strings.HasSuffix(s, "%") || strings.HasSuffix(s, "*") || strings.HasSuffix(s, "+") {
		s = s[:len(s)-1]
	}
	return strings.ReplaceAll(strings.TrimSpace(s), ",", "")
}
