// Package fantasy computes fantasy point totals for assembled season
// datasets, pulling the stats the primary source lacks from supplemental
// tables.
package fantasy

import (
	"fmt"
	"sort"
	"strings"
)

// Settings maps stat column names to point weights. Yardage weights are
// points per yard, so "1 point per 25 passing yards" is 1/25.
type Settings map[string]float64

// DefaultSettings is a standard zero-PPR profile.
func DefaultSettings() Settings {
	return Settings{
		"pass_yards":                 1.0 / 25,
		"pass_td":                    4,
		"interceptions":              -1,
		"rush_yards":                 1.0 / 10,
		"rush_td":                    6,
		"rec_yards":                  1.0 / 10,
		"receptions":                 0,
		"rec_td":                     6,
		"two_pt_conversions":         2,
		"fumbles_lost":               -2,
		"offensive_fumble_return_td": 6,
		"return_yards":               1.0 / 25,
		"return_td":                  6,
	}
}

// Validate enforces the replacement contract: a custom profile must carry
// exactly the default key set, no more and no less. Weights themselves are
// unconstrained.
func (s Settings) Validate() error {
	defaults := DefaultSettings()
	if len(s) != len(defaults) {
		return fmt.Errorf("fantasy settings must have exactly %d keys, got %d", len(defaults), len(s))
	}

	var missing, extra []string
	for key := range defaults {
		if _, ok := s[key]; !ok {
			missing = append(missing, key)
		}
	}
	for key := range s {
		if _, ok := defaults[key]; !ok {
			extra = append(extra, key)
		}
	}
	sort.Strings(missing)
	sort.Strings(extra)

	if len(missing) > 0 || len(extra) > 0 {
		parts := make([]string, 0, 2)
		if len(missing) > 0 {
			parts = append(parts, "missing keys: "+strings.Join(missing, ", "))
		}
		if len(extra) > 0 {
			parts = append(parts, "unknown keys: "+strings.Join(extra, ", "))
		}
		return fmt.Errorf("invalid fantasy settings: %s", strings.Join(parts, "; "))
	}
	return nil
}
