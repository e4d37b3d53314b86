package export

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"

	"go-uncareers-harvester/internal/scraper"
)

var header = []string{"Title", "Grade", "DutyStation", "PostingPeriod", "url"}

// WriteCSV writes postings to path with a header row, replacing any existing file.
// Missing parent directories are created.
func WriteCSV(path string, postings []scraper.JobPosting) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("could not create output directory: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("could not create %s: %w", path, err)
	}

	w := csv.NewWriter(f)
	if err := w.Write(header); err != nil {
		f.Close()
		return fmt.Errorf("write header: %w", err)
	}
	for _, p := range postings {
		if err := w.Write([]string{p.Title, p.Grade, p.DutyStation, p.PostingPeriod, p.URL}); err != nil {
			f.Close()
			return fmt.Errorf("write row %s: %w", p.URL, err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		f.Close()
		return fmt.Errorf("flush csv: %w", err)
	}
	return f.Close()
}
