package pfr

import "fmt"

// TableNotFoundError means the season page loaded but did not contain the
// category's stat table at all.
type TableNotFoundError struct {
	Category string
	Year     int
}

func (e *TableNotFoundError) Error() string {
	return fmt.Sprintf("no %s table found for %d season", e.Category, e.Year)
}

// EmptyTableError means the stat table existed but held zero player rows,
// which in practice means the season predates the site's coverage.
type EmptyTableError struct {
	Category   string
	Year       int
	OldestYear int
}

func (e *EmptyTableError) Error() string {
	return fmt.Sprintf("%s table for %d has no player rows (data starts in %d)",
		e.Category, e.Year, e.OldestYear)
}
