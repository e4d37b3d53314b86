// Shared model and outcome types for site scrapers

package scraper

import (
	"context"
)

const NotSpecified = "Not specified"

// JobPosting is one scraped job advertisement. Its URL is its only identity.
type JobPosting struct {
	Title         string
	Grade         string
	DutyStation   string
	PostingPeriod string
	URL           string
}

// Result is everything one harvest run collected.
type Result struct {
	Postings []JobPosting
	Summary  Summary
}

//Scraper defines the interface that all site scrapers must implement
type Scraper interface {
	//Scrape walks the whole site and returns every posting it could read
	Scrape(ctx context.Context) (*Result, error)

	//Name is the site name
	Name() string
}
