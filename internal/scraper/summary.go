package scraper

import (
	"fmt"
	"sort"
	"strings"
)

type SkipReason string

const (
	SkipEmptyRow      SkipReason = "empty row"
	SkipUnreadableRow SkipReason = "unreadable row"
	SkipNoNewTab      SkipReason = "no new tab"
	SkipExtractFailed SkipReason = "extraction failed"
	//the run's deadline or cancellation ended work on the row
	SkipStopped SkipReason = "run stopped"
)

// RowOutcome is the result of processing one result row: either a posting or a skip reason.
type RowOutcome struct {
	Posting *JobPosting
	Skip    SkipReason
	Err     error
}

func Extracted(p JobPosting) RowOutcome {
	return RowOutcome{Posting: &p}
}

func Skipped(reason SkipReason, err error) RowOutcome {
	return RowOutcome{Skip: reason, Err: err}
}

func (o RowOutcome) OK() bool {
	return o.Posting != nil
}

type PageSkip struct {
	Page int
	Err  error
}

// Summary aggregates row and page outcomes over one run.
type Summary struct {
	PagesTotal    int
	PagesVisited  int
	SkippedPages  []PageSkip
	RowsExtracted int
	RowSkips      map[SkipReason]int
	//Kept is the number of postings left after relevance filtering
	Kept int
}

func NewSummary(pages int) Summary {
	return Summary{PagesTotal: pages, RowSkips: map[SkipReason]int{}}
}

func (s *Summary) AddRow(o RowOutcome) {
	if o.OK() {
		s.RowsExtracted++
		return
	}
	if s.RowSkips == nil {
		s.RowSkips = map[SkipReason]int{}
	}
	s.RowSkips[o.Skip]++
}

func (s *Summary) SkipPage(page int, err error) {
	s.SkippedPages = append(s.SkippedPages, PageSkip{Page: page, Err: err})
}

func (s Summary) RowsSkipped() int {
	n := 0
	for _, c := range s.RowSkips {
		n += c
	}
	return n
}

func (s Summary) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "pages %d/%d visited, %d skipped", s.PagesVisited, s.PagesTotal, len(s.SkippedPages))
	fmt.Fprintf(&b, "; rows %d extracted, %d skipped", s.RowsExtracted, s.RowsSkipped())

	if len(s.RowSkips) > 0 {
		reasons := make([]string, 0, len(s.RowSkips))
		for r, c := range s.RowSkips {
			reasons = append(reasons, fmt.Sprintf("%s=%d", r, c))
		}
		sort.Strings(reasons)
		fmt.Fprintf(&b, " (%s)", strings.Join(reasons, ", "))
	}
	fmt.Fprintf(&b, "; %d kept", s.Kept)
	return b.String()
}
