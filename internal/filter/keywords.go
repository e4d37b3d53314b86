package filter

import (
	"strings"

	"go-uncareers-harvester/internal/scraper"

	"golang.org/x/text/cases"
)

var relevanceKeywords = []string{"data", "statistics", "statistician", "research", "monitoring", "census"}

// Keywords returns a copy of the relevance keyword set.
func Keywords() []string {
	return append([]string(nil), relevanceKeywords...)
}

// IsRelevant reports whether title contains any relevance keyword, ignoring case.
// Accented letters stay distinct: "Dâta" does not match "data".
func IsRelevant(title string) bool {
	text := foldCase(title)
	for _, k := range relevanceKeywords {
		if strings.Contains(text, k) {
			return true
		}
	}
	return false
}

// Relevant returns the postings whose title is relevant, in their original order.
func Relevant(postings []scraper.JobPosting) []scraper.JobPosting {
	kept := make([]scraper.JobPosting, 0, len(postings))
	for _, p := range postings {
		if IsRelevant(p.Title) {
			kept = append(kept, p)
		}
	}
	return kept
}

// foldCase applies Unicode simple case folding. A Caser keeps state, so each call gets its own.
func foldCase(str string) string {
	return cases.Fold().String(str)
}
