// Package dataset is a small column-ordered table keyed by a string index.
// It carries scraped season stats through concatenation, joins, and fantasy
// scoring without pulling in a dataframe dependency.
package dataset

import (
	"fmt"
	"strconv"

	"github.com/fortuna/gridiron/internal/record"
)

// DuplicateKeyError reports two rows claiming the same identity key. The
// scrape pipeline treats this as a contract violation rather than something
// to silently dedupe.
type DuplicateKeyError struct {
	Index string
	Key   string
}

func (e *DuplicateKeyError) Error() string {
	return fmt.Sprintf("duplicate %s key %q", e.Index, e.Key)
}

// Dataset holds rows of typed values. Column order and row insertion order
// are both preserved so CSV output is deterministic.
type Dataset struct {
	index   string
	keys    []string
	rows    map[string]map[string]record.Value
	columns []string
	colSet  map[string]bool
}

// New returns an empty dataset indexed by indexName with the given initial
// column order.
func New(indexName string, columns []string) *Dataset {
	d := &Dataset{
		index:  indexName,
		rows:   make(map[string]map[string]record.Value),
		colSet: make(map[string]bool),
	}
	for _, c := range columns {
		d.addColumn(c)
	}
	return d
}

func (d *Dataset) addColumn(name string) {
	if !d.colSet[name] {
		d.columns = append(d.columns, name)
		d.colSet[name] = true
	}
}

// Index returns the name of the index column.
func (d *Dataset) Index() string { return d.index }

// Len returns the number of rows.
func (d *Dataset) Len() int { return len(d.keys) }

// Keys returns the row keys in insertion order.
func (d *Dataset) Keys() []string {
	out := make([]string, len(d.keys))
	copy(out, d.keys)
	return out
}

// Columns returns the column names in order, excluding the index.
func (d *Dataset) Columns() []string {
	out := make([]string, len(d.columns))
	copy(out, d.columns)
	return out
}

// HasColumn reports whether the named column exists.
func (d *Dataset) HasColumn(name string) bool { return d.colSet[name] }

// AppendRow adds one row under key. Columns the dataset has not seen yet are
// appended to the column order; a repeated key is an error.
func (d *Dataset) AppendRow(key string, row map[string]record.Value) error {
	if _, ok := d.rows[key]; ok {
		return &DuplicateKeyError{Index: d.index, Key: key}
	}
	stored := make(map[string]record.Value, len(row))
	for col, v := range row {
		d.addColumn(col)
		stored[col] = v
	}
	d.keys = append(d.keys, key)
	d.rows[key] = stored
	return nil
}

// Value returns the cell at (key, col). Absent rows or columns read as
// Missing.
func (d *Dataset) Value(key, col string) record.Value {
	row, ok := d.rows[key]
	if !ok {
		return record.MissingValue()
	}
	return row[col]
}

// Set writes one cell, creating the column if needed. The row must exist.
func (d *Dataset) Set(key, col string, v record.Value) error {
	row, ok := d.rows[key]
	if !ok {
		return fmt.Errorf("no row with %s key %q", d.index, key)
	}
	d.addColumn(col)
	row[col] = v
	return nil
}

// Concat appends every row of other, unioning column orders. Rows that would
// collide on key fail the whole operation.
func (d *Dataset) Concat(other *Dataset) error {
	for _, key := range other.keys {
		if _, ok := d.rows[key]; ok {
			return &DuplicateKeyError{Index: d.index, Key: key}
		}
	}
	for _, c := range other.columns {
		d.addColumn(c)
	}
	for _, key := range other.keys {
		row := other.rows[key]
		stored := make(map[string]record.Value, len(row))
		for col, v := range row {
			stored[col] = v
		}
		d.keys = append(d.keys, key)
		d.rows[key] = stored
	}
	return nil
}

// OuterJoin merges other into a new dataset on the shared index. Keys present
// in either side survive; columns of other whose names collide with existing
// columns are renamed with suffix.
func (d *Dataset) OuterJoin(other *Dataset, suffix string) *Dataset {
	renamed := make(map[string]string, len(other.columns))
	for _, c := range other.columns {
		if d.colSet[c] {
			renamed[c] = c + suffix
		} else {
			renamed[c] = c
		}
	}

	out := New(d.index, d.columns)
	for _, c := range other.columns {
		out.addColumn(renamed[c])
	}

	for _, key := range d.keys {
		row := make(map[string]record.Value, len(d.rows[key]))
		for col, v := range d.rows[key] {
			row[col] = v
		}
		if orow, ok := other.rows[key]; ok {
			for col, v := range orow {
				row[renamed[col]] = v
			}
		}
		out.keys = append(out.keys, key)
		out.rows[key] = row
	}
	for _, key := range other.keys {
		if _, ok := d.rows[key]; ok {
			continue
		}
		row := make(map[string]record.Value, len(other.rows[key]))
		for col, v := range other.rows[key] {
			row[renamed[col]] = v
		}
		out.keys = append(out.keys, key)
		out.rows[key] = row
	}
	return out
}

// Coalesce fills base from the first non-missing variant per row, then drops
// the variant columns. Variants that never existed are ignored.
func (d *Dataset) Coalesce(base string, variants []string) {
	live := variants[:0:0]
	for _, v := range variants {
		if d.colSet[v] {
			live = append(live, v)
		}
	}
	if len(live) == 0 {
		return
	}
	d.addColumn(base)
	for _, key := range d.keys {
		row := d.rows[key]
		if !row[base].IsMissing() {
			continue
		}
		for _, v := range live {
			if val := row[v]; !val.IsMissing() {
				row[base] = val
				break
			}
		}
	}
	d.DropColumns(live...)
}

// DropColumns removes the named columns and their values.
func (d *Dataset) DropColumns(names ...string) {
	drop := make(map[string]bool, len(names))
	for _, n := range names {
		if d.colSet[n] {
			drop[n] = true
			delete(d.colSet, n)
		}
	}
	if len(drop) == 0 {
		return
	}
	kept := d.columns[:0]
	for _, c := range d.columns {
		if !drop[c] {
			kept = append(kept, c)
		}
	}
	d.columns = kept
	for _, row := range d.rows {
		for n := range drop {
			delete(row, n)
		}
	}
}

// RenameColumn renames a column in place, keeping column order.
func (d *Dataset) RenameColumn(from, to string) {
	if !d.colSet[from] || from == to {
		return
	}
	for i, c := range d.columns {
		if c == from {
			d.columns[i] = to
			break
		}
	}
	delete(d.colSet, from)
	d.colSet[to] = true
	for _, row := range d.rows {
		if v, ok := row[from]; ok {
			row[to] = v
			delete(row, from)
		}
	}
}

// FillMissing replaces missing cells in col with v, creating the column when
// it does not exist yet.
func (d *Dataset) FillMissing(col string, v record.Value) {
	d.addColumn(col)
	for _, key := range d.keys {
		row := d.rows[key]
		if row[col].IsMissing() {
			row[col] = v
		}
	}
}

// SumColumns writes a+b into dst for every row, treating missing operands as
// zero. A row where both operands are missing stays missing.
func (d *Dataset) SumColumns(dst, a, b string) {
	d.addColumn(dst)
	for _, key := range d.keys {
		row := d.rows[key]
		av, aok := row[a].Num()
		bv, bok := row[b].Num()
		if !aok && !bok {
			row[dst] = record.MissingValue()
			continue
		}
		row[dst] = record.FloatValue(av + bv)
	}
}

// CoerceNumeric rewrites text columns whose every non-missing value parses as
// a number: all-integer columns become Int, otherwise Float. Columns with any
// unparseable or non-text value are left alone.
func (d *Dataset) CoerceNumeric() {
	for _, col := range d.columns {
		allInt, allFloat, any := true, true, false
		for _, key := range d.keys {
			v := d.rows[key][col]
			if v.IsMissing() {
				continue
			}
			if v.Kind() != record.KindText {
				allInt, allFloat = false, false
				break
			}
			any = true
			s := v.Text()
			if _, err := strconv.ParseInt(s, 10, 64); err != nil {
				allInt = false
			}
			if _, err := strconv.ParseFloat(s, 64); err != nil {
				allFloat = false
			}
			if !allFloat {
				break
			}
		}
		if !any || !allFloat {
			continue
		}
		for _, key := range d.keys {
			row := d.rows[key]
			v := row[col]
			if v.IsMissing() {
				continue
			}
			if allInt {
				n, _ := strconv.ParseInt(v.Text(), 10, 64)
				row[col] = record.IntValue(n)
			} else {
				f, _ := strconv.ParseFloat(v.Text(), 64)
				row[col] = record.FloatValue(f)
			}
		}
	}
}
