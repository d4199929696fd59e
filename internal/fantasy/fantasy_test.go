package fantasy

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fortuna/gridiron/internal/dataset"
	"github.com/fortuna/gridiron/internal/record"
)

// stubSupplier serves canned supplemental tables and counts fetches.
type stubSupplier struct {
	tables map[int]map[string]*dataset.Dataset
	calls  int
}

func (s *stubSupplier) Supplement(_ context.Context, year int, table string) (*dataset.Dataset, error) {
	s.calls++
	if byTable, ok := s.tables[year]; ok {
		if ds, ok := byTable[table]; ok {
			return ds, nil
		}
	}
	return dataset.New("name", nil), nil
}

func supplemental(t *testing.T, name string, stats map[string]int64) *dataset.Dataset {
	t.Helper()
	ds := dataset.New("name", nil)
	row := make(map[string]record.Value, len(stats))
	for col, v := range stats {
		row[col] = record.IntValue(v)
	}
	require.NoError(t, ds.AppendRow(name, row))
	return ds
}

func mainDataset(t *testing.T, year int64, players map[string]map[string]record.Value) *dataset.Dataset {
	t.Helper()
	ds := dataset.New("key", []string{"player", "year"})
	for name, stats := range players {
		row := map[string]record.Value{
			"player": record.TextValue(name),
			"year":   record.IntValue(year),
		}
		for col, v := range stats {
			row[col] = v
		}
		require.NoError(t, ds.AppendRow("/p/"+name+"2018", row))
	}
	return ds
}

func TestDefaultSettingsValidate(t *testing.T) {
	require.NoError(t, DefaultSettings().Validate())
	assert.InDelta(t, 1.0/25, DefaultSettings()["pass_yards"], 1e-12)
	assert.InDelta(t, -2, DefaultSettings()["fumbles_lost"], 1e-12)
}

func TestSettingsValidateRejectsDrift(t *testing.T) {
	missing := DefaultSettings()
	delete(missing, "rush_td")
	err := missing.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "13")

	renamed := DefaultSettings()
	delete(renamed, "rush_td")
	renamed["rushing_td"] = 6
	err = renamed.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "rush_td")
	assert.Contains(t, err.Error(), "rushing_td")
}

func TestLoadSettings(t *testing.T) {
	content := `pass_yards: 0.04
pass_td: 6
interceptions: -2
rush_yards: 0.1
rush_td: 6
rec_yards: 0.1
receptions: 1
rec_td: 6
two_pt_conversions: 2
fumbles_lost: -2
offensive_fumble_return_td: 6
return_yards: 0.04
return_td: 6
`
	path := filepath.Join(t.TempDir(), "ppr.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	s, err := LoadSettings(path)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, s["receptions"], 1e-9)
	assert.InDelta(t, 6.0, s["pass_td"], 1e-9)
}

func TestLoadSettingsRejectsNonNumeric(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("pass_yards: lots\n"), 0o644))

	_, err := LoadSettings(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "pass_yards")
}

func TestLoadSettingsRejectsPartialProfile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "partial.yaml")
	require.NoError(t, os.WriteFile(path, []byte("pass_td: 4\n"), 0o644))

	_, err := LoadSettings(path)
	require.Error(t, err)
}

func TestNewEngineValidatesSettings(t *testing.T) {
	_, err := NewEngine(&stubSupplier{}, Settings{"pass_td": 4})
	require.Error(t, err)

	e, err := NewEngine(&stubSupplier{}, nil)
	require.NoError(t, err)
	require.NotNil(t, e)
}

func TestScoreWeightedSum(t *testing.T) {
	ds := mainDataset(t, 2018, map[string]map[string]record.Value{
		"A": {
			"rush_yards": record.IntValue(100),
			"rush_td":    record.IntValue(1),
		},
	})

	e, err := NewEngine(&stubSupplier{}, nil)
	require.NoError(t, err)
	require.NoError(t, e.Score(context.Background(), ds))

	pts, ok := ds.Value("/p/A2018", PointsColumn).Num()
	require.True(t, ok)
	assert.InDelta(t, 16.0, pts, 1e-9)
}

func TestScorePullsSupplementalStats(t *testing.T) {
	ds := mainDataset(t, 2018, map[string]map[string]record.Value{
		"A": {"rush_yards": record.IntValue(100)},
	})

	sup := &stubSupplier{tables: map[int]map[string]*dataset.Dataset{
		2018: {
			"fumbles":      supplemental(t, "A", map[string]int64{"fumbles_lost": 2}),
			"kick_returns": supplemental(t, "A", map[string]int64{"kick_return_yards": 50, "kick_return_td": 1}),
			"scoring":      supplemental(t, "A", map[string]int64{"two_pt_conversions": 1}),
		},
	}}

	e, err := NewEngine(sup, nil)
	require.NoError(t, err)
	require.NoError(t, e.Score(context.Background(), ds))

	// 100 rush yards (10) - 2 fumbles lost (-4) + 50 return yards (2)
	// + 1 return td (6) + 1 two-pointer (2) = 16
	pts, ok := ds.Value("/p/A2018", PointsColumn).Num()
	require.True(t, ok)
	assert.InDelta(t, 16.0, pts, 1e-9)

	// The four return source columns are consolidated and dropped.
	assert.False(t, ds.HasColumn("kick_return_yards"))
	assert.False(t, ds.HasColumn("punt_return_td"))
	assert.True(t, ds.HasColumn("return_yards"))
	assert.True(t, ds.HasColumn("return_td"))
}

func TestScoreDoesNotOverwritePrimaryStats(t *testing.T) {
	ds := mainDataset(t, 2018, map[string]map[string]record.Value{
		"A": {"fumbles_lost": record.IntValue(0)},
	})

	sup := &stubSupplier{tables: map[int]map[string]*dataset.Dataset{
		2018: {"fumbles": supplemental(t, "A", map[string]int64{"fumbles_lost": 3})},
	}}

	e, err := NewEngine(sup, nil)
	require.NoError(t, err)
	require.NoError(t, e.Score(context.Background(), ds))

	assert.Equal(t, int64(0), ds.Value("/p/A2018", "fumbles_lost").Int())
}

func TestScoreZeroFillsAbsentPlayers(t *testing.T) {
	ds := mainDataset(t, 2018, map[string]map[string]record.Value{
		"A": {},
	})

	e, err := NewEngine(&stubSupplier{}, nil)
	require.NoError(t, err)
	require.NoError(t, e.Score(context.Background(), ds))

	assert.Equal(t, int64(0), ds.Value("/p/A2018", "fumbles_lost").Int())
	pts, ok := ds.Value("/p/A2018", PointsColumn).Num()
	require.True(t, ok)
	assert.InDelta(t, 0.0, pts, 1e-9)
}

func TestScoreFetchesOncePerSeasonAndTable(t *testing.T) {
	ds := dataset.New("key", []string{"player", "year"})
	require.NoError(t, ds.AppendRow("a2017", map[string]record.Value{
		"player": record.TextValue("A"), "year": record.IntValue(2017),
	}))
	require.NoError(t, ds.AppendRow("a2018", map[string]record.Value{
		"player": record.TextValue("A"), "year": record.IntValue(2018),
	}))
	require.NoError(t, ds.AppendRow("b2018", map[string]record.Value{
		"player": record.TextValue("B"), "year": record.IntValue(2018),
	}))

	sup := &stubSupplier{}
	e, err := NewEngine(sup, nil)
	require.NoError(t, err)
	require.NoError(t, e.Score(context.Background(), ds))

	// Two distinct seasons, four tables each.
	assert.Equal(t, 8, sup.calls)
}

func TestScoreRequiresPlayerAndYearColumns(t *testing.T) {
	e, err := NewEngine(&stubSupplier{}, nil)
	require.NoError(t, err)

	noPlayer := dataset.New("key", []string{"year"})
	require.Error(t, e.Score(context.Background(), noPlayer))

	noYear := dataset.New("key", []string{"player"})
	require.Error(t, e.Score(context.Background(), noYear))
}
