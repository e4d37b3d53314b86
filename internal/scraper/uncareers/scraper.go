package uncareers

import (
	"context"
	"fmt"
	"log"

	"go-uncareers-harvester/internal/browser"
	"go-uncareers-harvester/internal/config"
	"go-uncareers-harvester/internal/scraper"
	"go-uncareers-harvester/utils"
)

type UNCareersScraper struct {
	cfg    *config.Config
	opener browser.Opener
	nav    Navigator
	shots  *utils.ScreenShotDebugger
}

func NewUNCareersScraper(cfg *config.Config, opener browser.Opener) *UNCareersScraper {
	window := cfg.PaginationWindow
	if window < 1 {
		window = 10
	}
	return &UNCareersScraper{
		cfg:    cfg,
		opener: opener,
		nav:    Navigator{Window: window},
		shots:  utils.NewScreenShotDebugger(cfg.ScreenshotsDir),
	}
}

func (s *UNCareersScraper) Name() string {
	return "UNCareers"
}

// Scrape counts the result pages, then walks them in one session. A page whose
// pager control or rows cannot be reached is skipped and recorded in the summary.
func (s *UNCareersScraper) Scrape(ctx context.Context) (*scraper.Result, error) {
	log.Println("📋 Searching careers.un.org...")

	pages := CountPages(s.opener, s.cfg.BaseURL, s.cfg.ImplicitWait, s.cfg.FallbackPages)
	log.Printf("Found %d pages", pages)

	result := &scraper.Result{Summary: scraper.NewSummary(pages)}

	err := browser.WithSession(s.opener, func(sess *browser.Session) error {
		if err := startSearch(sess, s.cfg.BaseURL); err != nil {
			return err
		}
		extractor := NewExtractor(sess, s.cfg.RowsPerSecond)

		for page := 1; page <= pages; page++ {
			if err := ctx.Err(); err != nil {
				return err
			}

			sess.SetImplicitWait(s.cfg.ImplicitWait)
			log.Printf("  📄 Page %d/%d", page, pages)

			rows, err := s.nav.Open(sess.Main(), page)
			if err != nil {
				s.skipPage(sess, &result.Summary, page, err)
				continue
			}
			result.Summary.PagesVisited++
			log.Printf("    📦 Found %d result rows", len(rows))

			postings, outcomes, err := extractor.Extract(ctx, rows)
			for _, o := range outcomes {
				result.Summary.AddRow(o)
			}
			result.Postings = append(result.Postings, postings...)
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return result, fmt.Errorf("%s scrape: %w", s.Name(), err)
	}
	return result, nil
}

func (s *UNCareersScraper) skipPage(sess *browser.Session, summary *scraper.Summary, page int, err error) {
	log.Printf("    ⚠️ Skipping page %d: %v", page, err)
	summary.SkipPage(page, err)
	s.shots.CaptureAndLog(sess.Main(), fmt.Sprintf("uncareers-page-%d", page), fmt.Sprintf("🚨 UNCareers: page %d skipped", page))
}
