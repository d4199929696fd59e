package pfr

import (
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fortuna/gridiron/internal/schema"
)

const rushingPage = `<!DOCTYPE html>
<html><body>
<table id="rushing">
  <thead>
    <tr><th data-stat="over_header" colspan="5"></th></tr>
    <tr>
      <th data-stat="ranker">Rk</th>
      <th data-stat="player">Player</th>
      <th data-stat="team">Tm</th>
      <th data-stat="age">Age</th>
      <th data-stat="pos">Pos</th>
      <th data-stat="g">G</th>
      <th data-stat="gs">GS</th>
      <th data-stat="rush_attempts">Att</th>
      <th data-stat="rush_yards">Yds</th>
      <th data-stat="rush_td">TD</th>
    </tr>
  </thead>
  <tbody>
    <tr>
      <th data-stat="ranker">1</th>
      <td data-stat="player"><a href="/players/B/BarkSa00.htm">Saquon Barkley*+</a></td>
      <td data-stat="team">NYG</td>
      <td data-stat="age">21</td>
      <td data-stat="pos">RB</td>
      <td data-stat="g">16</td>
      <td data-stat="gs">16</td>
      <td data-stat="rush_attempts">261</td>
      <td data-stat="rush_yards">1,307</td>
      <td data-stat="rush_td">11</td>
    </tr>
    <tr class="thead">
      <th data-stat="ranker">Rk</th>
    </tr>
    <tr>
      <th data-stat="ranker">2</th>
      <td data-stat="player"><a href="/players/G/GurlTo01.htm">Todd Gurley*</a></td>
      <td data-stat="team">LAR</td>
      <td data-stat="age">24</td>
      <td data-stat="pos">RB</td>
      <td data-stat="g">14</td>
      <td data-stat="gs">14</td>
      <td data-stat="rush_attempts">256</td>
      <td data-stat="rush_yards">1,251</td>
      <td data-stat="rush_td">17</td>
    </tr>
  </tbody>
</table>
</body></html>`

func docFrom(t *testing.T, html string) *goquery.Document {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	require.NoError(t, err)
	return doc
}

func TestParseSeasonTable(t *testing.T) {
	cat, err := schema.Lookup("rushing")
	require.NoError(t, err)

	cols, rows, err := ParseSeasonTable(docFrom(t, rushingPage), cat, 2018)
	require.NoError(t, err)

	assert.Equal(t, []string{
		"player", "player_url", "team", "age", "pos", "g", "gs",
		"rush_attempts", "rush_yards", "rush_td",
	}, cols)

	// The mid-table header row has no <td> cells and is skipped.
	require.Len(t, rows, 2)

	first := rows[0]
	assert.Equal(t, "Saquon Barkley*+", first.RawName)
	assert.Equal(t, "/players/B/BarkSa00.htm", first.PlayerURL)
	require.Len(t, first.Cells, len(cols))
	assert.Equal(t, "Saquon Barkley*+", first.Cells[0])
	assert.Equal(t, "/players/B/BarkSa00.htm", first.Cells[1])
	assert.Equal(t, "1,307", first.Cells[8])

	assert.Equal(t, "Todd Gurley*", rows[1].RawName)
	assert.Equal(t, "/players/G/GurlTo01.htm", rows[1].PlayerURL)
}

func TestParseSeasonTableNotFound(t *testing.T) {
	cat, err := schema.Lookup("passing")
	require.NoError(t, err)

	_, _, err = ParseSeasonTable(docFrom(t, rushingPage), cat, 2018)

	var nfErr *TableNotFoundError
	require.ErrorAs(t, err, &nfErr)
	assert.Equal(t, "passing", nfErr.Category)
	assert.Equal(t, 2018, nfErr.Year)
}

func TestParseSeasonTableEmpty(t *testing.T) {
	const page = `<table id="rushing">
	  <thead><tr><th data-stat="ranker">Rk</th><th data-stat="player">Player</th></tr></thead>
	  <tbody></tbody>
	</table>`

	cat, err := schema.Lookup("rushing")
	require.NoError(t, err)

	_, _, err = ParseSeasonTable(docFrom(t, page), cat, 1920)

	var emptyErr *EmptyTableError
	require.ErrorAs(t, err, &emptyErr)
	assert.Equal(t, "rushing", emptyErr.Category)
	assert.Equal(t, 1920, emptyErr.Year)
	assert.Equal(t, 1932, emptyErr.OldestYear)
	assert.Contains(t, err.Error(), "1932")
}

func TestIdentityKey(t *testing.T) {
	assert.Equal(t, "/players/G/GurlTo01.htm2018", IdentityKey("/players/G/GurlTo01.htm", 2018))
}
