package fbdb

import (
	"errors"
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/fortuna/gridiron/internal/dataset"
	"github.com/fortuna/gridiron/internal/record"
)

// ParseTable extracts one supplemental stat table into a dataset indexed by
// player name. Tables sort descending on their headline stat, so when two
// players share a name the first (larger) row wins and later ones are
// dropped.
func ParseTable(doc *goquery.Document, t Table, year int) (*dataset.Dataset, error) {
	table := doc.Find("table.statistics.scrollable").First()
	if table.Length() == 0 {
		return nil, fmt.Errorf("no %s table found for %d season", t.Name, year)
	}

	cols := make([]string, 0, len(t.Fields)-1)
	for _, f := range t.Fields[1:] {
		cols = append(cols, f.Name)
	}
	ds := dataset.New("name", cols)

	var rowErr error
	table.Find("tbody tr").EachWithBreak(func(_ int, tr *goquery.Selection) bool {
		tds := tr.Find("td")
		if tds.Length() == 0 {
			return true
		}

		first := tds.First()
		nameSpan := first.Find("span.hidden-xs")
		if nameSpan.Length() == 0 {
			// Column-description rows repeat inside the body; skip them.
			return true
		}
		name := strings.TrimSpace(nameSpan.Text())
		href, _ := first.Find("a").First().Attr("href")

		cells := []string{name, href}
		tds.Each(func(i int, td *goquery.Selection) {
			if i == 0 {
				return
			}
			cells = append(cells, strings.TrimSpace(td.Text()))
		})

		values, err := record.Build(t.Fields, record.RawRow{Cells: cells, PlayerURL: href, RawName: name})
		if err != nil {
			rowErr = fmt.Errorf("%s table for %d, player %q: %w", t.Name, year, name, err)
			return false
		}

		row := make(map[string]record.Value, len(cols))
		for i, f := range t.Fields[1:] {
			row[f.Name] = values[i+1]
		}
		if err := ds.AppendRow(name, row); err != nil {
			var dup *dataset.DuplicateKeyError
			if errors.As(err, &dup) {
				return true
			}
			rowErr = err
			return false
		}
		return true
	})
	if rowErr != nil {
		return nil, rowErr
	}
	return ds, nil
}
