package uncareers

import (
	"fmt"

	"go-uncareers-harvester/internal/browser"
)

// Markup contract of careers.un.org. Any change on the site breaks these.
const searchButtonID = "ctl00_ContentPlaceHolder1_UNCareersLoader1_ctl00_SearchControl1_btnSearch"

var (
	searchButton   = browser.ByID(searchButtonID)
	resultRows     = browser.ByIDContains("gvSearchGrid")
	lastPageLink   = browser.ByLinkText(">>")
	ellipsisLink   = browser.ByLinkText("...")
	tableRows      = browser.ByTag("tr")
	postingTitle   = browser.ByIDContains("jobPostingTitle")
	jobCodeTitle   = browser.ByIDContains("jobCodeTitle")
	jobDutyStation = browser.ByIDContains("jobDutystation")
	jobPeriod      = browser.ByIDContains("jobPeriod")
)

const firstPageMarker = "<<"

func pageLink(page int) string {
	return browser.ByLinkText(fmt.Sprint(page))
}

// startSearch loads baseURL and submits the empty search form, which lists every opening.
func startSearch(sess *browser.Session, baseURL string) error {
	main := sess.Main()
	if err := main.Goto(baseURL); err != nil {
		return fmt.Errorf("navigate to %s: %w", baseURL, err)
	}
	btn, err := main.Find(searchButton)
	if err != nil {
		return fmt.Errorf("search button: %w", err)
	}
	if err := btn.Press("Enter"); err != nil {
		return fmt.Errorf("submit search: %w", err)
	}
	return nil
}
