package schema

// Every category starts with the same identity block: display name, player
// URL (inserted at IdentityPos by the extractor, not present in the page's
// cells), team, age, position, games played, and games started.
func identityFields() []Field {
	return []Field{
		{NameField, Text},
		{IdentityField, Text},
		{"team", Text},
		{"age", Int},
		{"pos", Text},
		{"g", Int},
		{"gs", Int},
	}
}

func category(name, tableID string, oldest int, fields ...Field) Category {
	return Category{
		Name:       name,
		TableID:    tableID,
		OldestYear: oldest,
		Fields:     append(identityFields(), fields...),
	}
}

var order = []string{
	"rushing", "passing", "receiving", "kicking",
	"returns", "scoring", "fantasy", "defense",
}

var registry = map[string]Category{
	"rushing": category("rushing", "rushing", 1932,
		Field{"rush_attempts", Int},
		Field{"rush_yards", Int},
		Field{"rush_td", Int},
		Field{"rush_first_downs", Int},
		Field{"longest_run", Int},
		Field{"yards_per_rush", Float},
		Field{"rush_yards_per_game", Float},
		Field{"rush_attempts_per_game", Float},
		Field{"fumbles", Int},
	),
	"passing": category("passing", "passing", 1932,
		Field{"qb_record", Text},
		Field{"pass_completions", Int},
		Field{"pass_attempts", Int},
		Field{"completion_pct", Float},
		Field{"pass_yards", Int},
		Field{"pass_td", Int},
		Field{"pass_td_pct", Float},
		Field{"interceptions", Int},
		Field{"int_pct", Float},
		Field{"longest_pass", Int},
		Field{"pass_yards_per_attempt", Float},
		Field{"adj_yards_per_attempt", Float},
		Field{"pass_yards_per_completion", Float},
		Field{"pass_yards_per_game", Float},
		Field{"qb_rating", Float},
		Field{"sacked", Int},
		Field{"sack_yards", Int},
		Field{"net_yards_per_attempt", Float},
		Field{"adj_net_yards_per_attempt", Float},
		Field{"sack_pct", Float},
		Field{"fourth_quarter_comebacks", Int},
		Field{"game_winning_drives", Int},
	),
	"receiving": category("receiving", "receiving", 1932,
		Field{"targets", Int},
		Field{"receptions", Int},
		Field{"catch_pct", Float},
		Field{"rec_yards", Int},
		Field{"yards_per_rec", Float},
		Field{"rec_td", Int},
		Field{"longest_rec", Int},
		Field{"rec_per_game", Float},
		Field{"rec_yards_per_game", Float},
		Field{"fumbles", Int},
	),
	"kicking": category("kicking", "kicking", 1938,
		Field{"fga1", Int},
		Field{"fgm1", Int},
		Field{"fga2", Int},
		Field{"fgm2", Int},
		Field{"fga3", Int},
		Field{"fgm3", Int},
		Field{"fga4", Int},
		Field{"fgm4", Int},
		Field{"fga5", Int},
		Field{"fgm5", Int},
		Field{"fga", Int},
		Field{"fgm", Int},
		Field{"longest_fg", Int},
		Field{"fg_pct", Float},
		Field{"xpa", Int},
		Field{"xpm", Int},
		Field{"xp_pct", Float},
		Field{"punts", Int},
		Field{"punt_yards", Int},
		Field{"longest_punt", Int},
		Field{"yards_per_punt", Float},
	),
	"returns": category("returns", "returns", 1941,
		Field{"punt_returns", Int},
		Field{"punt_return_yards", Int},
		Field{"punt_return_td", Int},
		Field{"longest_punt_return", Int},
		Field{"yards_per_punt_return", Float},
		Field{"kick_returns", Int},
		Field{"kick_return_yards", Int},
		Field{"kick_return_td", Int},
		Field{"longest_kick_return", Int},
		Field{"yards_per_kick_return", Float},
		Field{"all_purpose_yards", Int},
	),
	"scoring": category("scoring", "scoring", 1922,
		Field{"rush_td", Int},
		Field{"rec_td", Int},
		Field{"punt_return_td", Int},
		Field{"kick_return_td", Int},
		Field{"fumble_return_td", Int},
		Field{"int_return_td", Int},
		Field{"other_td", Int},
		Field{"total_td", Int},
		Field{"two_pt_conversions", Int},
		Field{"two_pt_attempts", Int},
		Field{"xpm", Int},
		Field{"xpa", Int},
		Field{"fgm", Int},
		Field{"fga", Int},
		Field{"safeties", Int},
		Field{"points", Int},
		Field{"points_per_game", Float},
	),
	"fantasy": category("fantasy", "fantasy", 1970,
		Field{"fantasy_pos", Text},
		Field{"pass_completions", Int},
		Field{"pass_attempts", Int},
		Field{"pass_yards", Int},
		Field{"pass_td", Int},
		Field{"interceptions", Int},
		Field{"rush_attempts", Int},
		Field{"rush_yards", Int},
		Field{"yards_per_rush", Float},
		Field{"rush_td", Int},
		Field{"targets", Int},
		Field{"receptions", Int},
		Field{"rec_yards", Int},
		Field{"yards_per_rec", Float},
		Field{"rec_td", Int},
		Field{"fumbles", Int},
		Field{"fumbles_lost", Int},
		Field{"total_td", Int},
		Field{"two_pt_conversions", Int},
		Field{"two_pt_pass", Int},
		Field{"fantasy_points", Float},
		Field{"fantasy_points_ppr", Float},
		Field{"draftkings_points", Float},
		Field{"fanduel_points", Float},
		Field{"vbd", Int},
		Field{"position_rank", Int},
		Field{"overall_rank", Int},
	),
	"defense": category("defense", "defense", 1940,
		Field{"interceptions", Int},
		Field{"int_yards", Int},
		Field{"int_td", Int},
		Field{"longest_int", Int},
		Field{"passes_defended", Int},
		Field{"forced_fumbles", Int},
		Field{"fumbles", Int},
		Field{"fumbles_recovered", Int},
		Field{"fumble_yards", Int},
		Field{"fumble_return_td", Int},
		Field{"sacks", Float},
		Field{"tackles_combined", Int},
		Field{"tackles_solo", Int},
		Field{"tackles_assists", Int},
		Field{"tackles_loss", Int},
		Field{"qb_hits", Int},
		Field{"safeties", Int},
	),
}
