package browsertest

import (
	"net/url"
	"sync"
	"testing"
	"time"

	"go-uncareers-harvester/internal/browser"

	"github.com/playwright-community/playwright-go"
)

// Site serves canned HTML to a real browser context. Keys are a path plus
// an optional "?query", e.g. "/home.aspx?page=2".
type Site struct {
	Pages map[string]string
	//Delay holds a response back before it is fulfilled
	Delay map[string]time.Duration

	mu   sync.Mutex
	hits map[string]int
}

func NewSite(pages map[string]string) *Site {
	return &Site{Pages: pages, Delay: map[string]time.Duration{}, hits: map[string]int{}}
}

// Install routes every request of bctx to s. It fits browser.Options.PrepareContext.
func (s *Site) Install(bctx playwright.BrowserContext) error {
	return bctx.Route("**/*", s.serve)
}

func (s *Site) serve(route playwright.Route) {
	key := s.key(route.Request().URL())

	s.mu.Lock()
	s.hits[key]++
	body, ok := s.Pages[key]
	delay := s.Delay[key]
	s.mu.Unlock()

	status := 200
	if !ok {
		status, body = 404, "<html><body>not found</body></html>"
	}
	fulfill := func() {
		route.Fulfill(playwright.RouteFulfillOptions{
			Status:      playwright.Int(status),
			ContentType: playwright.String("text/html; charset=utf-8"),
			Body:        body,
		})
	}
	if delay > 0 {
		go func() {
			time.Sleep(delay)
			fulfill()
		}()
		return
	}
	fulfill()
}

func (s *Site) key(raw string) string {
	u, err := url.Parse(raw)
	if err != nil {
		return raw
	}
	if u.RawQuery == "" {
		return u.Path
	}
	return u.Path + "?" + u.RawQuery
}

// Hits counts the requests served for key.
func (s *Site) Hits(key string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.hits[key]
}

// StartPlaywright launches a real browser whose contexts are all served by site.
// The test is skipped when playwright or its browsers are not installed.
func StartPlaywright(t testing.TB, site *Site, opts browser.Options) *browser.PlaywrightManager {
	t.Helper()
	if opts.Browser == "" {
		opts.Browser = "chromium"
	}
	opts.Headless = true
	opts.PrepareContext = site.Install

	pm, err := browser.NewPlaywright(opts)
	if err != nil {
		t.Skipf("playwright unavailable: %v", err)
	}
	t.Cleanup(func() { pm.Close() })
	return pm
}
