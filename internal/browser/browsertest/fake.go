// Package browsertest provides an in-memory browser.Driver for tests.
package browsertest

import (
	"fmt"
	"time"

	"go-uncareers-harvester/internal/browser"
)

// Element is a fake node. A click opens Opens when it is set.
type Element struct {
	TextValue string
	TextErr   error
	Attrs     map[string]string
	Opens     *Page
	//OnClick runs on every click, a non-nil error fails the click
	OnClick func() error

	Clicks  int
	Presses []string
}

func NewElement(text string) *Element {
	return &Element{TextValue: text, Attrs: map[string]string{}}
}

func (e *Element) Text() (string, error) {
	if e.TextErr != nil {
		return "", e.TextErr
	}
	return e.TextValue, nil
}

func (e *Element) Attribute(name string) (string, error) {
	return e.Attrs[name], nil
}

func (e *Element) Click() error {
	e.Clicks++
	if e.OnClick != nil {
		return e.OnClick()
	}
	return nil
}

func (e *Element) Press(key string) error {
	e.Presses = append(e.Presses, key)
	return nil
}

// Page keys elements by the exact selector string.
type Page struct {
	PageURL     string
	Elements    map[string][]*Element
	Gotos       []string
	Screenshots []string
	CloseErr    error

	driver *Driver
	closed bool
}

func NewPage(url string) *Page {
	return &Page{PageURL: url, Elements: map[string][]*Element{}}
}

// Add registers els under selector and returns p for chaining.
func (p *Page) Add(selector string, els ...*Element) *Page {
	p.Elements[selector] = append(p.Elements[selector], els...)
	return p
}

// Set replaces the elements under selector.
func (p *Page) Set(selector string, els ...*Element) {
	p.Elements[selector] = els
}

func (p *Page) Goto(url string) error {
	p.Gotos = append(p.Gotos, url)
	p.PageURL = url
	return nil
}

func (p *Page) URL() string {
	return p.PageURL
}

func (p *Page) Find(selector string) (browser.Element, error) {
	els := p.Elements[selector]
	if len(els) == 0 {
		return nil, fmt.Errorf("%w: %s", browser.ErrNotFound, selector)
	}
	return els[0], nil
}

func (p *Page) FindAll(selector string) ([]browser.Element, error) {
	els := p.Elements[selector]
	out := make([]browser.Element, len(els))
	for i, e := range els {
		out[i] = e
	}
	return out, nil
}

func (p *Page) Screenshot(path string) error {
	p.Screenshots = append(p.Screenshots, path)
	return nil
}

func (p *Page) Close() error {
	if p.CloseErr != nil {
		return p.CloseErr
	}
	p.closed = true
	if p.driver != nil {
		p.driver.forget(p)
	}
	return nil
}

func (p *Page) Closed() bool {
	return p.closed
}

// Driver is a fake browser.Driver. Tabs opened by element clicks stay open
// until their Page.Close is called.
type Driver struct {
	MainPage     *Page
	ImplicitWait time.Duration
	Focused      browser.Page

	tabs    []*Page
	maxOpen int
	closed  bool
}

func NewDriver(main *Page) *Driver {
	return &Driver{MainPage: main, Focused: main, maxOpen: 1}
}

func (d *Driver) Main() browser.Page {
	return d.MainPage
}

func (d *Driver) OpenTab(el browser.Element) (browser.Page, error) {
	e, ok := el.(*Element)
	if !ok {
		return nil, fmt.Errorf("unexpected element %T", el)
	}
	if err := e.Click(); err != nil {
		return nil, err
	}
	if e.Opens == nil {
		return nil, browser.ErrNoNewTab
	}
	tab := e.Opens
	tab.driver = d
	tab.closed = false
	d.tabs = append(d.tabs, tab)
	d.Focused = tab
	if n := d.OpenTabs(); n > d.maxOpen {
		d.maxOpen = n
	}
	return tab, nil
}

func (d *Driver) Focus(p browser.Page) error {
	d.Focused = p
	return nil
}

func (d *Driver) SetImplicitWait(wait time.Duration) {
	d.ImplicitWait = wait
}

func (d *Driver) Close() error {
	d.closed = true
	d.tabs = nil
	return nil
}

// OpenTabs counts the main tab plus every child tab not yet closed.
func (d *Driver) OpenTabs() int {
	if d.closed {
		return 0
	}
	return 1 + len(d.tabs)
}

// MaxOpenTabs is the highest OpenTabs value seen during the driver's life.
func (d *Driver) MaxOpenTabs() int {
	return d.maxOpen
}

func (d *Driver) Closed() bool {
	return d.closed
}

func (d *Driver) forget(p *Page) {
	for i, t := range d.tabs {
		if t == p {
			d.tabs = append(d.tabs[:i], d.tabs[i+1:]...)
			return
		}
	}
}

// Opener hands out the given drivers in order.
type Opener struct {
	Drivers []*Driver
	Err     error
	opened  int
}

func (o *Opener) Open() (browser.Driver, error) {
	if o.Err != nil {
		return nil, o.Err
	}
	if o.opened >= len(o.Drivers) {
		return nil, fmt.Errorf("no fake driver left (opened %d)", o.opened)
	}
	d := o.Drivers[o.opened]
	o.opened++
	return d, nil
}

func (o *Opener) Opened() int {
	return o.opened
}
