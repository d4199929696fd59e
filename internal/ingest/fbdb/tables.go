// Package fbdb scrapes supplemental stat tables from footballdb.com. These
// cover the categories the primary source folds into other tables: fumbles
// lost, kick and punt return production, and two-point conversions.
package fbdb

import (
	"fmt"

	"github.com/fortuna/gridiron/internal/schema"
)

// Table describes one footballdb stat table: the URL mode and sort-column
// parameters that select it, and its ordered column schema. The first two
// fields are always the player name and the site-local player URL.
type Table struct {
	Name   string
	Mode   string
	Sort   string
	Fields []schema.Field
}

// Supplemental table names used by the fantasy scoring engine.
const (
	TableFumbles     = "fumbles"
	TableKickReturns = "kick_returns"
	TablePuntReturns = "punt_returns"
	TableScoring     = "scoring"
)

var tables = map[string]Table{
	TableFumbles: {
		Name: TableFumbles,
		Mode: "M",
		Sort: "fumlost",
		Fields: []schema.Field{
			{Name: "name", Type: schema.Text},
			{Name: "player_url", Type: schema.Text},
			{Name: "team", Type: schema.Text},
			{Name: "fumbles", Type: schema.Int},
			{Name: "fumbles_lost", Type: schema.Int},
			{Name: "forced_fumbles", Type: schema.Int},
			{Name: "own_fumble_recoveries", Type: schema.Int},
			{Name: "opp_fumble_recoveries", Type: schema.Int},
			{Name: "total_recoveries", Type: schema.Int},
			{Name: "fumble_return_yards", Type: schema.Int},
			{Name: "fumble_return_td", Type: schema.Int},
		},
	},
	TableKickReturns: {
		Name: TableKickReturns,
		Mode: "KR",
		Sort: "kryds",
		Fields: []schema.Field{
			{Name: "name", Type: schema.Text},
			{Name: "player_url", Type: schema.Text},
			{Name: "team", Type: schema.Text},
			{Name: "kick_returns", Type: schema.Int},
			{Name: "kick_return_yards", Type: schema.Int},
			{Name: "yards_per_kick_return", Type: schema.Float},
			{Name: "kick_return_fair_catches", Type: schema.Int},
			// Longest returns read like "57t" when they scored, so text.
			{Name: "longest_kick_return", Type: schema.Text},
			{Name: "kick_return_td", Type: schema.Int},
		},
	},
	TablePuntReturns: {
		Name: TablePuntReturns,
		Mode: "PR",
		Sort: "pryds",
		Fields: []schema.Field{
			{Name: "name", Type: schema.Text},
			{Name: "player_url", Type: schema.Text},
			{Name: "team", Type: schema.Text},
			{Name: "punt_returns", Type: schema.Int},
			{Name: "punt_return_yards", Type: schema.Int},
			{Name: "yards_per_punt_return", Type: schema.Float},
			{Name: "punt_return_fair_catches", Type: schema.Int},
			{Name: "longest_punt_return", Type: schema.Text},
			{Name: "punt_return_td", Type: schema.Int},
		},
	},
	TableScoring: {
		Name: TableScoring,
		Mode: "S",
		Sort: "totconv",
		Fields: []schema.Field{
			{Name: "name", Type: schema.Text},
			{Name: "player_url", Type: schema.Text},
			{Name: "team", Type: schema.Text},
			{Name: "points", Type: schema.Int},
			{Name: "total_td", Type: schema.Int},
			{Name: "rush_td", Type: schema.Int},
			{Name: "rec_td", Type: schema.Int},
			{Name: "kick_return_td", Type: schema.Int},
			{Name: "punt_return_td", Type: schema.Int},
			{Name: "int_return_td", Type: schema.Int},
			{Name: "fumble_return_td", Type: schema.Int},
			{Name: "blocked_fg_td", Type: schema.Int},
			{Name: "blocked_punt_td", Type: schema.Int},
			{Name: "missed_fg_td", Type: schema.Int},
			{Name: "point_after_td", Type: schema.Text},
			{Name: "field_goals", Type: schema.Text},
			{Name: "two_pt_conversions", Type: schema.Int},
			{Name: "safeties", Type: schema.Int},
		},
	},
}

var tableOrder = []string{TableFumbles, TableKickReturns, TablePuntReturns, TableScoring}

// Tables returns the supported supplemental table names in canonical order.
func Tables() []string {
	out := make([]string, len(tableOrder))
	copy(out, tableOrder)
	return out
}

// LookupTable returns the definition of one supplemental table.
func LookupTable(name string) (Table, error) {
	t, ok := tables[name]
	if !ok {
		return Table{}, fmt.Errorf("unknown footballdb table %q, valid tables are: %v", name, tableOrder)
	}
	return t, nil
}
