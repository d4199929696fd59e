// Package assemble turns single-season scrapes into multi-season,
// multi-category datasets keyed by player URL + year.
package assemble

import (
	"context"
	"fmt"
	"strings"

	"github.com/fortuna/gridiron/internal/dataset"
	"github.com/fortuna/gridiron/internal/ingest/pfr"
	"github.com/fortuna/gridiron/internal/record"
	"github.com/fortuna/gridiron/internal/schema"
)

// IndexName is the dataset index column: the player URL concatenated with the
// season year.
const IndexName = "key"

// Source provides one category's table for one season. Implemented by the
// pfr client; tests substitute stubs.
type Source interface {
	Season(ctx context.Context, year int, category string) ([]string, []record.RawRow, error)
}

// Assembler drives sequential per-season fetches and stitches the results.
type Assembler struct {
	src Source
}

// New creates an assembler reading from src.
func New(src Source) *Assembler {
	return &Assembler{src: src}
}

// kickingRenames makes field goal distance explicit in the column names.
var kickingRenames = map[string]string{
	"fga1": "fga_0-19",
	"fgm1": "fgm_0-19",
	"fga2": "fga_20-29",
	"fgm2": "fgm_20-29",
	"fga3": "fga_30-39",
	"fgm3": "fgm_30-39",
	"fga4": "fga_40-49",
	"fgm4": "fgm_40-49",
	"fga5": "fga_50_plus",
	"fgm5": "fgm_50_plus",
}

// SeasonPlayerStats assembles the dataset selected by opts, reporting
// progress to rep. Options are validated before the first fetch.
func (a *Assembler) SeasonPlayerStats(ctx context.Context, opts Options, rep Reporter) (*dataset.Dataset, error) {
	prog := report{r: rep}

	if err := opts.Validate(); err != nil {
		prog.jobError(err)
		return nil, err
	}

	cats := opts.categories()
	years := opts.years()
	total := len(cats) * len(years)

	perCategory := make([]*dataset.Dataset, 0, len(cats))
	step := 0
	for _, cat := range cats {
		ds, err := a.assembleCategory(ctx, cat, years, prog, &step, total)
		if err != nil {
			prog.jobError(err)
			return nil, err
		}
		perCategory = append(perCategory, ds)
	}

	out := mergeCategories(perCategory, cats)
	prog.jobComplete(out.Len())
	return out, nil
}

// assembleCategory fetches every requested season of one category and
// concatenates them into a single dataset.
func (a *Assembler) assembleCategory(ctx context.Context, category string, years []int, prog report, step *int, total int) (*dataset.Dataset, error) {
	cat, err := schema.Lookup(category)
	if err != nil {
		return nil, err
	}

	out := dataset.New(IndexName, nil)
	for _, year := range years {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		prog.seasonStart(cat.Name, year, *step, total)
		season, err := a.buildSeason(ctx, cat, year)
		if err != nil {
			return nil, err
		}
		if err := out.Concat(season); err != nil {
			return nil, fmt.Errorf("concat %s %d: %w", cat.Name, year, err)
		}
		*step++
		prog.seasonDone(cat.Name, year, season.Len())
	}

	if cat.Name == "kicking" {
		for from, to := range kickingRenames {
			out.RenameColumn(from, to)
		}
	}
	out.CoerceNumeric()
	return out, nil
}

// buildSeason scrapes one category for one year and types every row. Header
// columns are zipped positionally with the schema fields, so any drift
// between the two is an error rather than a silently shifted table.
func (a *Assembler) buildSeason(ctx context.Context, cat schema.Category, year int) (*dataset.Dataset, error) {
	cols, rows, err := a.src.Season(ctx, year, cat.Name)
	if err != nil {
		return nil, err
	}
	if len(cols) != len(cat.Fields) {
		return nil, fmt.Errorf("%s table for %d has %d columns, schema has %d fields",
			cat.Name, year, len(cols), len(cat.Fields))
	}

	ds := dataset.New(IndexName, seasonColumns(cols))
	for _, raw := range rows {
		values, err := record.Build(cat.Fields, raw)
		if err != nil {
			return nil, fmt.Errorf("%s %d row %q: %w", cat.Name, year, raw.RawName, err)
		}

		row := make(map[string]record.Value, len(cols)+3)
		for i, col := range cols {
			if col == schema.IdentityField {
				continue
			}
			row[col] = values[i]
		}
		row["year"] = record.IntValue(int64(year))
		row["pro_bowl"] = record.BoolValue(strings.Contains(accoladeMarkers(raw.RawName), "*"))
		row["all_pro"] = record.BoolValue(strings.Contains(accoladeMarkers(raw.RawName), "+"))

		key := pfr.IdentityKey(raw.PlayerURL, year)
		if err := ds.AppendRow(key, row); err != nil {
			return nil, fmt.Errorf("%s %d: %w", cat.Name, year, err)
		}
	}
	return ds, nil
}

// seasonColumns is the output column order: header columns minus the identity
// column (which becomes part of the row key), plus year and the accolade
// flags.
func seasonColumns(cols []string) []string {
	out := make([]string, 0, len(cols)+3)
	for _, col := range cols {
		if col != schema.IdentityField {
			out = append(out, col)
		}
	}
	return append(out, "year", "pro_bowl", "all_pro")
}

// accoladeMarkers returns the trailing accolade characters of a raw name
// cell: '*' marks a pro bowl selection, '+' a first-team all-pro.
func accoladeMarkers(rawName string) string {
	s := strings.TrimSpace(rawName)
	if strings.HasSuffix(s, "*+") {
		return "*+"
	}
	if strings.HasSuffix(s, "*") {
		return "*"
	}
	if strings.HasSuffix(s, "+") {
		return "+"
	}
	return ""
}
