package fantasy

import (
	"context"
	"fmt"
	"log"

	"github.com/fortuna/gridiron/internal/dataset"
	"github.com/fortuna/gridiron/internal/ingest/fbdb"
	"github.com/fortuna/gridiron/internal/record"
)

// PointsColumn is the column Score adds to the dataset.
const PointsColumn = "fantasy_points"

// Supplier fetches one supplemental stat table for one season, indexed by
// player name. Implemented by the fbdb client.
type Supplier interface {
	Supplement(ctx context.Context, year int, table string) (*dataset.Dataset, error)
}

// supplementalColumns lists, per supplemental table, the columns worth
// pulling into the main dataset.
var supplementalColumns = map[string][]string{
	fbdb.TableFumbles:     {"fumbles_lost"},
	fbdb.TableKickReturns: {"kick_return_yards", "kick_return_td"},
	fbdb.TablePuntReturns: {"punt_return_yards", "punt_return_td"},
	fbdb.TableScoring:     {"two_pt_conversions"},
}

// zeroFilled are the supplemental columns where absence means zero: a player
// missing from the fumbles table lost none.
var zeroFilled = []string{
	"fumbles_lost", "two_pt_conversions",
	"kick_return_yards", "kick_return_td",
	"punt_return_yards", "punt_return_td",
}

// Engine scores assembled datasets.
type Engine struct {
	src      Supplier
	settings Settings
}

// NewEngine creates a scoring engine. A nil settings map selects the default
// profile; anything else must satisfy the replacement contract.
func NewEngine(src Supplier, settings Settings) (*Engine, error) {
	if settings == nil {
		settings = DefaultSettings()
	} else if err := settings.Validate(); err != nil {
		return nil, err
	}
	return &Engine{src: src, settings: settings}, nil
}

// Score annotates ds in place with a fantasy_points column. Supplemental
// stats are fetched once per distinct season in the dataset and joined by
// player name; name is the only identifier the two sites share, so a shared
// name across two players is a known blind spot.
func (e *Engine) Score(ctx context.Context, ds *dataset.Dataset) error {
	if !ds.HasColumn("player") {
		return fmt.Errorf("dataset has no player column")
	}
	if !ds.HasColumn("year") {
		return fmt.Errorf("dataset has no year column")
	}

	for _, year := range distinctYears(ds) {
		if err := e.supplementYear(ctx, ds, year); err != nil {
			return err
		}
	}

	for _, col := range zeroFilled {
		ds.FillMissing(col, record.IntValue(0))
	}

	ds.SumColumns("return_yards", "kick_return_yards", "punt_return_yards")
	ds.SumColumns("return_td", "kick_return_td", "punt_return_td")
	ds.DropColumns("kick_return_yards", "punt_return_yards", "kick_return_td", "punt_return_td")

	e.applyWeights(ds)
	return nil
}

// supplementYear joins one season's supplemental tables onto the matching
// rows. Cells the primary source already filled are left alone.
func (e *Engine) supplementYear(ctx context.Context, ds *dataset.Dataset, year int64) error {
	for _, table := range fbdb.Tables() {
		sup, err := e.src.Supplement(ctx, int(year), table)
		if err != nil {
			return fmt.Errorf("supplement %s for %d: %w", table, year, err)
		}
		log.Printf("[fantasy] %d %s: %d supplemental rows", year, table, sup.Len())

		cols := supplementalColumns[table]
		for _, key := range ds.Keys() {
			if ds.Value(key, "year").Int() != year {
				continue
			}
			name := ds.Value(key, "player").Text()
			for _, col := range cols {
				if !ds.Value(key, col).IsMissing() {
					continue
				}
				if v := sup.Value(name, col); !v.IsMissing() {
					if err := ds.Set(key, col, v); err != nil {
						return err
					}
				}
			}
		}
	}
	return nil
}

// applyWeights writes the weighted sum of every scoring column present in
// the dataset. Missing cells contribute nothing.
func (e *Engine) applyWeights(ds *dataset.Dataset) {
	for _, key := range ds.Keys() {
		total := 0.0
		for col, weight := range e.settings {
			if !ds.HasColumn(col) {
				continue
			}
			if v, ok := ds.Value(key, col).Num(); ok {
				total += v * weight
			}
		}
		ds.Set(key, PointsColumn, record.FloatValue(total))
	}
}

func distinctYears(ds *dataset.Dataset) []int64 {
	seen := make(map[int64]bool)
	var years []int64
	for _, key := range ds.Keys() {
		v := ds.Value(key, "year")
		if v.Kind() != record.KindInt {
			continue
		}
		if !seen[v.Int()] {
			seen[v.Int()] = true
			years = append(years, v.Int())
		}
	}
	return years
}
