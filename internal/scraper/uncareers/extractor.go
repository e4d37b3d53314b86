package uncareers

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"go-uncareers-harvester/internal/browser"
	"go-uncareers-harvester/internal/scraper"

	"golang.org/x/time/rate"
)

// Extractor opens each result row in its own tab and reads the posting fields.
type Extractor struct {
	sess    *browser.Session
	limiter *rate.Limiter
}

func NewExtractor(sess *browser.Session, rowsPerSecond float64) *Extractor {
	limit := rate.Inf
	if rowsPerSecond > 0 {
		limit = rate.Limit(rowsPerSecond)
	}
	return &Extractor{
		sess:    sess,
		limiter: rate.NewLimiter(limit, 1),
	}
}

// Extract processes rows in order. A failing row is skipped and never stops
// the rows after it. The returned error is only ever a context stop: the
// context ended, or the row pacing wait could not finish before its deadline.
func (e *Extractor) Extract(ctx context.Context, rows []browser.Element) ([]scraper.JobPosting, []scraper.RowOutcome, error) {
	var postings []scraper.JobPosting
	outcomes := make([]scraper.RowOutcome, 0, len(rows))

	for _, row := range rows {
		if err := ctx.Err(); err != nil {
			return postings, outcomes, err
		}

		outcome := e.extractRow(ctx, row)
		outcomes = append(outcomes, outcome)
		if outcome.Skip == scraper.SkipStopped {
			return postings, outcomes, outcome.Err
		}
		if outcome.OK() {
			postings = append(postings, *outcome.Posting)
			log.Printf("      ✅ %s - %s", outcome.Posting.Title, outcome.Posting.DutyStation)
			continue
		}
		if err := ctx.Err(); err != nil {
			return postings, outcomes, err
		}
		if outcome.Err != nil {
			log.Printf("      ⏭️ Skipped row (%s): %v", outcome.Skip, outcome.Err)
		}
	}
	return postings, outcomes, nil
}

func (e *Extractor) extractRow(ctx context.Context, row browser.Element) scraper.RowOutcome {
	text, err := row.Text()
	if err != nil {
		return scraper.Skipped(scraper.SkipUnreadableRow, err)
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return scraper.Skipped(scraper.SkipEmptyRow, nil)
	}

	if err := e.limiter.Wait(ctx); err != nil {
		return scraper.Skipped(scraper.SkipStopped, stopCause(ctx, err))
	}

	var posting scraper.JobPosting
	err = e.sess.WithChild(row, func(tab browser.Page) error {
		p, err := readPosting(tab, text)
		if err != nil {
			return err
		}
		posting = p
		return nil
	})
	switch {
	case errors.Is(err, browser.ErrNoNewTab):
		return scraper.Skipped(scraper.SkipNoNewTab, nil)
	case err != nil:
		return scraper.Skipped(scraper.SkipExtractFailed, err)
	}
	return scraper.Extracted(posting)
}

// stopCause wraps a pacing failure so callers can match it like a context error.
// Wait fails early when the next token lands after the deadline.
func stopCause(ctx context.Context, waitErr error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return fmt.Errorf("%w: row pacing: %v", context.DeadlineExceeded, waitErr)
}

// readPosting reads one posting tab. Title falls back to the row text and grade
// to NotSpecified; duty station and period are required.
func readPosting(tab browser.Page, rowText string) (scraper.JobPosting, error) {
	grade := scraper.NotSpecified
	if v, err := textOf(tab, postingTitle); err == nil {
		grade = parseGrade(v)
	}

	title := rowText
	if v, err := textOf(tab, jobCodeTitle); err == nil {
		title = v
	}

	station, err := textOf(tab, jobDutyStation)
	if err != nil {
		return scraper.JobPosting{}, fmt.Errorf("duty station: %w", err)
	}
	period, err := textOf(tab, jobPeriod)
	if err != nil {
		return scraper.JobPosting{}, fmt.Errorf("posting period: %w", err)
	}

	return scraper.JobPosting{
		Title:         title,
		Grade:         grade,
		DutyStation:   station,
		PostingPeriod: period,
		URL:           tab.URL(),
	}, nil
}

func textOf(tab browser.Page, selector string) (string, error) {
	el, err := tab.Find(selector)
	if err != nil {
		return "", err
	}
	text, err := el.Text()
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(text), nil
}

// parseGrade returns the text after the last comma of the posting title.
func parseGrade(postingTitle string) string {
	if i := strings.LastIndex(postingTitle, ","); i >= 0 {
		return strings.TrimSpace(postingTitle[i+1:])
	}
	return strings.TrimSpace(postingTitle)
}
