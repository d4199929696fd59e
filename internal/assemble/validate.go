package assemble

import (
	"fmt"
	"time"

	"github.com/fortuna/gridiron/internal/schema"
)

// Options selects what to assemble: exactly one of Year or StartYear/EndYear,
// and exactly one of Category or Categories. Ranges are inclusive and may run
// in either direction.
type Options struct {
	Year      int
	StartYear int
	EndYear   int

	Category   string
	Categories []string
}

// ArgumentError reports an invalid Options combination. It is always returned
// before any page is fetched.
type ArgumentError struct {
	Reason string
}

func (e *ArgumentError) Error() string {
	return "invalid arguments: " + e.Reason
}

func argErrorf(format string, args ...interface{}) *ArgumentError {
	return &ArgumentError{Reason: fmt.Sprintf(format, args...)}
}

// nowYear is swapped out by tests.
var nowYear = func() int { return time.Now().Year() }

// Validate checks the options against the schema registry. Every failure mode
// here is a caller mistake, so the assembler refuses to fetch anything until
// options pass.
func (o Options) Validate() error {
	single := o.Year != 0
	ranged := o.StartYear != 0 || o.EndYear != 0
	switch {
	case single && ranged:
		return argErrorf("specify either a single year or a year range, not both")
	case !single && !ranged:
		return argErrorf("a year or a year range is required")
	case ranged && (o.StartYear == 0 || o.EndYear == 0):
		return argErrorf("a year range needs both a start and an end year")
	}

	if o.Category != "" && len(o.Categories) > 0 {
		return argErrorf("specify either a single category or a category list, not both")
	}
	cats := o.categories()
	if len(cats) == 0 {
		return argErrorf("a category or a category list is required")
	}

	years := o.years()
	for _, name := range cats {
		if name == "" {
			return argErrorf("category names must not be empty")
		}
		cat, err := schema.Lookup(name)
		if err != nil {
			return err
		}
		for _, year := range years {
			if year < cat.OldestYear {
				return argErrorf("%s data starts in %d, cannot fetch %d", cat.Name, cat.OldestYear, year)
			}
			if year > nowYear() {
				return argErrorf("cannot fetch future season %d", year)
			}
		}
	}
	return nil
}

// categories returns the requested category names, whichever field carried
// them.
func (o Options) categories() []string {
	if o.Category != "" {
		return []string{o.Category}
	}
	return o.Categories
}

// years enumerates the requested seasons in request order, inclusive on both
// ends, descending when the range runs backwards.
func (o Options) years() []int {
	if o.Year != 0 {
		return []int{o.Year}
	}
	var years []int
	if o.StartYear <= o.EndYear {
		for y := o.StartYear; y <= o.EndYear; y++ {
			years = append(years, y)
		}
	} else {
		for y := o.StartYear; y >= o.EndYear; y-- {
			years = append(years, y)
		}
	}
	return years
}
