package browser

import (
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/playwright-community/playwright-go"
)

type Options struct {
	Browser       string
	Headless      bool
	ImplicitWait  time.Duration
	NewTabTimeout time.Duration
	//NavigationTimeout bounds Goto and the page loads that follow a click
	NavigationTimeout time.Duration
	//PrepareContext runs on every new browser context before its main page opens
	PrepareContext func(playwright.BrowserContext) error
}

const (
	defaultNewTabTimeout     = 3 * time.Second
	defaultNavigationTimeout = 30 * time.Second
)

// PlaywrightManager owns the playwright runtime and one launched browser.
// Every Open call gets its own isolated browser context.
type PlaywrightManager struct {
	pw      *playwright.Playwright
	browser playwright.Browser
	opts    Options
}

func NewPlaywright(opts Options) (*PlaywrightManager, error) {
	pw, err := playwright.Run()
	if err != nil {
		return nil, fmt.Errorf("could not start playwright: %w", err)
	}

	var bt playwright.BrowserType
	switch opts.Browser {
	case "chromium":
		bt = pw.Chromium
	case "webkit":
		bt = pw.WebKit
	default:
		bt = pw.Firefox
	}

	b, err := bt.Launch(playwright.BrowserTypeLaunchOptions{
		Headless: playwright.Bool(opts.Headless),
	})
	if err != nil {
		pw.Stop()
		return nil, fmt.Errorf("could not launch %s: %w", opts.Browser, err)
	}

	return &PlaywrightManager{pw: pw, browser: b, opts: opts}, nil
}

// Open creates a fresh browser context with one main page.
func (pm *PlaywrightManager) Open() (Driver, error) {
	bctx, err := pm.browser.NewContext()
	if err != nil {
		return nil, fmt.Errorf("could not create browser context: %w", err)
	}
	if pm.opts.PrepareContext != nil {
		if err := pm.opts.PrepareContext(bctx); err != nil {
			bctx.Close()
			return nil, fmt.Errorf("could not prepare browser context: %w", err)
		}
	}
	page, err := bctx.NewPage()
	if err != nil {
		bctx.Close()
		return nil, fmt.Errorf("could not create page: %w", err)
	}

	//a zero playwright timeout waits forever
	newTab := pm.opts.NewTabTimeout
	if newTab <= 0 {
		newTab = defaultNewTabTimeout
	}
	nav := pm.opts.NavigationTimeout
	if nav <= 0 {
		nav = defaultNavigationTimeout
	}
	//the navigation default wins over SetDefaultTimeout for Goto and load waits
	bctx.SetDefaultNavigationTimeout(float64(nav.Milliseconds()))

	d := &playwrightDriver{
		ctx:           bctx,
		main:          &playwrightPage{page: page, navTimeout: nav},
		newTabTimeout: newTab,
		navTimeout:    nav,
	}
	if pm.opts.ImplicitWait > 0 {
		d.SetImplicitWait(pm.opts.ImplicitWait)
	}
	return d, nil
}

func (pm *PlaywrightManager) Close() error {
	var errs []error
	if pm.browser != nil {
		if err := pm.browser.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	if pm.pw != nil {
		if err := pm.pw.Stop(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

type playwrightDriver struct {
	ctx           playwright.BrowserContext
	main          *playwrightPage
	newTabTimeout time.Duration
	navTimeout    time.Duration
}

func (d *playwrightDriver) Main() Page {
	return d.main
}

func (d *playwrightDriver) OpenTab(el Element) (Page, error) {
	pe, ok := el.(*playwrightElement)
	if !ok {
		return nil, fmt.Errorf("element %T does not belong to playwright", el)
	}

	d.closeStrays()

	var clickErr error
	page, err := d.ctx.ExpectPage(func() error {
		clickErr = pe.loc.Click()
		return clickErr
	}, playwright.BrowserContextExpectPageOptions{
		Timeout: playwright.Float(float64(d.newTabTimeout.Milliseconds())),
	})
	if clickErr != nil {
		return nil, fmt.Errorf("click row: %w", clickErr)
	}
	if err != nil {
		d.closeStrays()
		return nil, ErrNoNewTab
	}

	if err := page.WaitForLoadState(playwright.PageWaitForLoadStateOptions{
		State: playwright.LoadStateDomcontentloaded,
	}); err != nil {
		log.Printf("    ⚠️ New tab did not finish loading: %v", err)
	}
	return &playwrightPage{page: page, navTimeout: d.navTimeout}, nil
}

// closeStrays closes every tab besides main. A tab that shows up after
// newTabTimeout is never handed to a caller, so nothing else would close it.
func (d *playwrightDriver) closeStrays() {
	for _, p := range d.ctx.Pages() {
		if p == d.main.page {
			continue
		}
		if err := p.Close(); err != nil {
			log.Printf("    ⚠️ Failed to close stray tab %s: %v", p.URL(), err)
		}
	}
}

func (d *playwrightDriver) Focus(p Page) error {
	pp, ok := p.(*playwrightPage)
	if !ok {
		return fmt.Errorf("page %T does not belong to playwright", p)
	}
	return pp.page.BringToFront()
}

func (d *playwrightDriver) SetImplicitWait(wait time.Duration) {
	d.ctx.SetDefaultTimeout(float64(wait.Milliseconds()))
}

func (d *playwrightDriver) Close() error {
	return d.ctx.Close()
}

type playwrightPage struct {
	page       playwright.Page
	navTimeout time.Duration
}

func (p *playwrightPage) Goto(url string) error {
	_, err := p.page.Goto(url, playwright.PageGotoOptions{
		WaitUntil: playwright.WaitUntilStateDomcontentloaded,
		Timeout:   playwright.Float(float64(p.navTimeout.Milliseconds())),
	})
	return err
}

func (p *playwrightPage) URL() string {
	return p.page.URL()
}

func (p *playwrightPage) Find(selector string) (Element, error) {
	loc := p.page.Locator(selector).First()
	if err := loc.WaitFor(playwright.LocatorWaitForOptions{
		State: playwright.WaitForSelectorStateAttached,
	}); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrNotFound, selector, err)
	}
	return &playwrightElement{loc: loc, page: p.page}, nil
}

func (p *playwrightPage) FindAll(selector string) ([]Element, error) {
	loc := p.page.Locator(selector)
	//an empty result after the wait is not an error
	_ = loc.First().WaitFor(playwright.LocatorWaitForOptions{
		State: playwright.WaitForSelectorStateAttached,
	})
	all, err := loc.All()
	if err != nil {
		return nil, fmt.Errorf("locate %s: %w", selector, err)
	}
	els := make([]Element, len(all))
	for i, l := range all {
		els[i] = &playwrightElement{loc: l, page: p.page}
	}
	return els, nil
}

func (p *playwrightPage) Screenshot(path string) error {
	_, err := p.page.Screenshot(playwright.PageScreenshotOptions{
		Path:     playwright.String(path),
		FullPage: playwright.Bool(true),
	})
	return err
}

func (p *playwrightPage) Close() error {
	return p.page.Close()
}

type playwrightElement struct {
	loc  playwright.Locator
	page playwright.Page
}

func (e *playwrightElement) Text() (string, error) {
	return e.loc.InnerText()
}

func (e *playwrightElement) Attribute(name string) (string, error) {
	return e.loc.GetAttribute(name)
}

// Click waits for any postback the click started, so the next lookup sees the new document.
func (e *playwrightElement) Click() error {
	if err := e.loc.Click(); err != nil {
		return err
	}
	return e.page.WaitForLoadState(playwright.PageWaitForLoadStateOptions{
		State: playwright.LoadStateDomcontentloaded,
	})
}

func (e *playwrightElement) Press(key string) error {
	return e.loc.Press(key)
}
