package assemble

// Reporter receives progress callbacks during a multi-season assembly. All
// methods are invoked from the assembling goroutine; implementations decide
// whether to fan out. A nil Reporter is valid and reports nothing.
type Reporter interface {
	OnSeasonStart(category string, year, index, total int)
	OnSeasonDone(category string, year, rows int)
	OnJobError(err error)
	OnJobComplete(rows int)
}

// report wraps a possibly-nil Reporter so call sites stay flat.
type report struct {
	r Reporter
}

func (p report) seasonStart(category string, year, index, total int) {
	if p.r != nil {
		p.r.OnSeasonStart(category, year, index, total)
	}
}

func (p report) seasonDone(category string, year, rows int) {
	if p.r != nil {
		p.r.OnSeasonDone(category, year, rows)
	}
}

func (p report) jobError(err error) {
	if p.r != nil {
		p.r.OnJobError(err)
	}
}

func (p report) jobComplete(rows int) {
	if p.r != nil {
		p.r.OnJobComplete(rows)
	}
}
