package uncareers

import (
	"fmt"

	"go-uncareers-harvester/internal/browser/browsertest"
)

// postingTab builds a posting detail tab; empty fields are left off the page.
func postingTab(url, postingTitleText, code, station, period string) *browsertest.Page {
	tab := browsertest.NewPage(url)
	if postingTitleText != "" {
		tab.Add(postingTitle, browsertest.NewElement(postingTitleText))
	}
	if code != "" {
		tab.Add(jobCodeTitle, browsertest.NewElement(code))
	}
	if station != "" {
		tab.Add(jobDutyStation, browsertest.NewElement(station))
	}
	if period != "" {
		tab.Add(jobPeriod, browsertest.NewElement(period))
	}
	return tab
}

// postingRow is a result row whose click opens a complete posting tab.
func postingRow(id int, title, grade string) *browsertest.Element {
	row := browsertest.NewElement(title)
	row.Opens = postingTab(
		fmt.Sprintf("https://careers.un.org/lbw/jobdetail.aspx?id=%d", id),
		fmt.Sprintf("%s, %s", title, grade),
		title,
		"NEW YORK",
		"01 Jan 2026 - 01 Feb 2026",
	)
	return row
}

// counterDriver serves the page-count session with the given pager row text.
func counterDriver(pagerText string) *browsertest.Driver {
	main := browsertest.NewPage("about:blank")
	main.Add(searchButton, browsertest.NewElement("Search"))
	main.Add(lastPageLink, browsertest.NewElement(">>"))
	main.Add(tableRows,
		browsertest.NewElement("Title Level Duty Station"),
		browsertest.NewElement(pagerText),
	)
	return browsertest.NewDriver(main)
}

// listingDriver serves result pages; pages absent from rowsByPage have no pager link.
func listingDriver(rowsByPage map[int][]*browsertest.Element) *browsertest.Driver {
	main := browsertest.NewPage("about:blank")
	main.Add(searchButton, browsertest.NewElement("Search"))
	main.Set(resultRows, rowsByPage[1]...)

	for page, rows := range rowsByPage {
		if page == 1 {
			continue
		}
		link := browsertest.NewElement(fmt.Sprint(page))
		link.OnClick = func() error {
			main.Set(resultRows, rows...)
			return nil
		}
		main.Add(pageLink(page), link)
	}
	return browsertest.NewDriver(main)
}
