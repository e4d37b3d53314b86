package browser

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

var (
	ErrNotFound  = errors.New("element not found")
	ErrNoNewTab  = errors.New("click did not open a new tab")
	ErrChildOpen = errors.New("a child tab is already open")
	ErrClosed    = errors.New("session is closed")
)

// Element is a located node on a page.
type Element interface {
	Text() (string, error)
	Attribute(name string) (string, error)
	Click() error
	Press(key string) error
}

// Page is one browser tab.
type Page interface {
	Goto(url string) error
	URL() string
	//Find returns the first match, waiting up to the implicit wait. ErrNotFound if none appears.
	Find(selector string) (Element, error)
	//FindAll waits up to the implicit wait for at least one match and returns whatever is present.
	FindAll(selector string) ([]Element, error)
	Screenshot(path string) error
	Close() error
}

// Driver is the capability surface a browser backend provides.
type Driver interface {
	Main() Page
	//OpenTab clicks el and returns the tab the click opened, or ErrNoNewTab.
	OpenTab(el Element) (Page, error)
	Focus(p Page) error
	SetImplicitWait(d time.Duration)
	Close() error
}

// Opener starts a fresh driver.
type Opener interface {
	Open() (Driver, error)
}

type OpenerFunc func() (Driver, error)

func (f OpenerFunc) Open() (Driver, error) { return f() }

// Selector helpers. The strings are playwright selectors.

func ByID(id string) string {
	return "#" + id
}

func ByIDContains(part string) string {
	return fmt.Sprintf(`[id*="%s"]`, part)
}

func ByLinkText(text string) string {
	return fmt.Sprintf(`a:text-is("%s")`, strings.ReplaceAll(text, `"`, `\"`))
}

func ByTag(tag string) string {
	return tag
}
