package uncareers

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"go-uncareers-harvester/internal/browser"
)

var ErrNavigation = errors.New("pager control not found")

type route int

const (
	routeCurrent  route = iota //already showing, no click
	routeNumber                //numbered link with the page's label
	routeEllipsis              //"..." control that opens the next pager block
)

const defaultWindow = 10

// Navigator moves the main tab between result pages. The pager shows Window
// numbered links per block; the first page of every later block is only
// reachable through a "..." control. A Window below 1 means defaultWindow.
type Navigator struct {
	Window int
}

func (n Navigator) routeFor(page int) route {
	window := n.Window
	if window < 1 {
		window = defaultWindow
	}
	switch {
	case page <= 1:
		return routeCurrent
	case page > window && (page-1)%window == 0:
		return routeEllipsis
	default:
		return routeNumber
	}
}

// Open shows result page `page` (1-based) on the main tab and returns its rows.
func (n Navigator) Open(main browser.Page, page int) ([]browser.Element, error) {
	var link browser.Element
	var err error

	switch n.routeFor(page) {
	case routeCurrent:
	case routeEllipsis:
		link, err = findEllipsis(main, page)
	case routeNumber:
		link, err = main.Find(pageLink(page))
		if err != nil {
			err = fmt.Errorf("%w: page %d: %v", ErrNavigation, page, err)
		}
	}
	if err != nil {
		return nil, err
	}

	if link != nil {
		if err := link.Click(); err != nil {
			return nil, fmt.Errorf("click pager for page %d: %w", page, err)
		}
	}

	rows, err := main.FindAll(resultRows)
	if err != nil {
		return nil, fmt.Errorf("result rows on page %d: %w", page, err)
	}
	return rows, nil
}

// findEllipsis picks the "..." control whose postback target names page, or
// the last one on the pager (the forward control) when none does.
func findEllipsis(main browser.Page, page int) (browser.Element, error) {
	links, err := main.FindAll(ellipsisLink)
	if err != nil {
		return nil, fmt.Errorf("%w: page %d: %v", ErrNavigation, page, err)
	}
	if len(links) == 0 {
		return nil, fmt.Errorf("%w: page %d: no %q control", ErrNavigation, page, "...")
	}

	label := strconv.Itoa(page)
	for _, l := range links {
		href, err := l.Attribute("href")
		if err != nil {
			continue
		}
		if strings.Contains(href, label) {
			return l, nil
		}
	}
	return links[len(links)-1], nil
}
