package pfr

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/fortuna/gridiron/internal/record"
	"github.com/fortuna/gridiron/internal/schema"
)

// ParseSeasonTable extracts one category's stat table from a season page.
// Column names come from the header's data-stat attributes instead of fixed
// positions, so mid-decade column reshuffles on the source site don't break
// the scrape.
func ParseSeasonTable(doc *goquery.Document, cat schema.Category, year int) ([]string, []record.RawRow, error) {
	table := doc.Find("table#" + cat.TableID)
	if table.Length() == 0 {
		return nil, nil, &TableNotFoundError{Category: cat.Name, Year: year}
	}

	cols, err := headerColumns(table, cat, year)
	if err != nil {
		return nil, nil, err
	}

	rows := bodyRows(table)
	if len(rows) == 0 {
		return nil, nil, &EmptyTableError{Category: cat.Name, Year: year, OldestYear: cat.OldestYear}
	}
	return cols, rows, nil
}

// headerColumns derives column names from the last header row, skipping the
// leading rank column and inserting the identity column right after the
// player name, mirroring how body cells are collected.
func headerColumns(table *goquery.Selection, cat schema.Category, year int) ([]string, error) {
	header := table.Find("thead tr").Last()
	if header.Length() == 0 {
		return nil, &TableNotFoundError{Category: cat.Name, Year: year}
	}

	var cols []string
	header.Find("th").Each(func(i int, th *goquery.Selection) {
		if i == 0 {
			return
		}
		stat, ok := th.Attr("data-stat")
		if !ok || stat == "" {
			stat = strings.TrimSpace(th.Text())
		}
		cols = append(cols, stat)
	})
	if len(cols) == 0 {
		return nil, fmt.Errorf("%s table for %d has an empty header", cat.Name, year)
	}

	out := make([]string, 0, len(cols)+1)
	out = append(out, cols[:schema.IdentityPos]...)
	out = append(out, schema.IdentityField)
	out = append(out, cols[schema.IdentityPos:]...)
	return out, nil
}

// bodyRows collects the data cells of every player row. Rows with no <td>
// cells are the repeated mid-table header rows and are skipped. The player
// cell contributes two values: its display text and the href of its link.
func bodyRows(table *goquery.Selection) []record.RawRow {
	var rows []record.RawRow
	table.Find("tbody tr").Each(func(_ int, tr *goquery.Selection) {
		tds := tr.Find("td")
		if tds.Length() == 0 {
			return
		}

		var row record.RawRow
		tds.Each(func(_ int, td *goquery.Selection) {
			text := strings.TrimSpace(td.Text())
			row.Cells = append(row.Cells, text)
			if stat, _ := td.Attr("data-stat"); stat == schema.NameField {
				row.RawName = text
				href, _ := td.Find("a").First().Attr("href")
				row.PlayerURL = href
				row.Cells = append(row.Cells, href)
			}
		})
		rows = append(rows, row)
	})
	return rows
}
