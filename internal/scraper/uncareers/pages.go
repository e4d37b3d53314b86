package uncareers

import (
	"fmt"
	"log"
	"strconv"
	"strings"
	"time"

	"go-uncareers-harvester/internal/browser"
)

// CountPages opens its own session, jumps to the last result page and reads
// the page count from the pager row. Any failure yields fallback.
func CountPages(opener browser.Opener, baseURL string, wait time.Duration, fallback int) int {
	pages := fallback
	err := browser.WithSession(opener, func(sess *browser.Session) error {
		if err := startSearch(sess, baseURL); err != nil {
			return err
		}
		sess.SetImplicitWait(wait)

		main := sess.Main()
		last, err := main.Find(lastPageLink)
		if err != nil {
			return fmt.Errorf("last page control: %w", err)
		}
		if err := last.Click(); err != nil {
			return fmt.Errorf("click last page control: %w", err)
		}

		rows, err := main.FindAll(tableRows)
		if err != nil {
			return err
		}
		texts := make([]string, 0, len(rows))
		for _, r := range rows {
			text, err := r.Text()
			if err != nil {
				continue
			}
			texts = append(texts, text)
		}

		n, err := parseLastPage(texts)
		if err != nil {
			return err
		}
		pages = n
		return nil
	})
	if err != nil {
		log.Printf("⚠️ Could not read page count, guessing %d: %v", fallback, err)
		return fallback
	}
	return pages
}

// parseLastPage takes the first pager row (the one offering "<<") and reads its
// last token as the page count.
func parseLastPage(rowTexts []string) (int, error) {
	for _, text := range rowTexts {
		if !strings.Contains(text, firstPageMarker) {
			continue
		}
		fields := strings.Fields(text)
		n, err := strconv.Atoi(fields[len(fields)-1])
		if err != nil {
			return 0, fmt.Errorf("parse page count %q: %w", fields[len(fields)-1], err)
		}
		if n < 1 {
			return 0, fmt.Errorf("page count %d is not positive", n)
		}
		return n, nil
	}
	return 0, fmt.Errorf("no pager row containing %q", firstPageMarker)
}
