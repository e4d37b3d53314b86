package uncareers

import (
	"testing"

	"go-uncareers-harvester/internal/browser/browsertest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNavigator_RouteFor(t *testing.T) {
	nav := Navigator{Window: 10}
	tests := []struct {
		page int
		want route
	}{
		{1, routeCurrent},
		{2, routeNumber},
		{10, routeNumber},
		{11, routeEllipsis},
		{12, routeNumber},
		{20, routeNumber},
		{21, routeEllipsis},
		{31, routeEllipsis},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, nav.routeFor(tt.page), "page %d", tt.page)
	}

	small := Navigator{Window: 5}
	assert.Equal(t, routeEllipsis, small.routeFor(6))
	assert.Equal(t, routeNumber, small.routeFor(10))
	assert.Equal(t, routeEllipsis, small.routeFor(11))
}

func TestNavigator_ZeroWindowUsesDefault(t *testing.T) {
	var nav Navigator
	assert.Equal(t, routeNumber, nav.routeFor(2))
	assert.Equal(t, routeEllipsis, nav.routeFor(11))
	assert.Equal(t, routeEllipsis, Navigator{Window: -3}.routeFor(21))

	main := pagerPage("javascript:__doPostBack('pager','11')")
	assert.NotPanics(t, func() {
		rows, err := nav.Open(main, 2)
		require.NoError(t, err)
		assert.Len(t, rows, 1)
	})
	assert.Equal(t, 1, main.Elements[pageLink(2)][0].Clicks)
}

// pagerPage has a numbered link for every page plus hrefs on the "..." controls.
func pagerPage(ellipsisHrefs ...string) *browsertest.Page {
	main := browsertest.NewPage("https://careers.un.org/lbw/home.aspx")
	main.Set(resultRows, browsertest.NewElement("row"))
	for p := 1; p <= 25; p++ {
		main.Add(pageLink(p), browsertest.NewElement("n"))
	}
	for _, href := range ellipsisHrefs {
		el := browsertest.NewElement("...")
		el.Attrs["href"] = href
		main.Add(ellipsisLink, el)
	}
	return main
}

func totalClicks(p *browsertest.Page) int {
	n := 0
	for _, els := range p.Elements {
		for _, e := range els {
			n += e.Clicks
		}
	}
	return n
}

func TestNavigator_FirstPageNeverClicks(t *testing.T) {
	main := pagerPage("javascript:__doPostBack('gvSearchGrid','Page$11')")

	rows, err := Navigator{Window: 10}.Open(main, 1)

	require.NoError(t, err)
	assert.Len(t, rows, 1)
	assert.Equal(t, 0, totalClicks(main))
}

func TestNavigator_NumberedPage(t *testing.T) {
	main := pagerPage()

	_, err := Navigator{Window: 10}.Open(main, 7)

	require.NoError(t, err)
	assert.Equal(t, 1, main.Elements[pageLink(7)][0].Clicks)
	assert.Equal(t, 1, totalClicks(main))
}

func TestNavigator_Page11UsesEllipsis(t *testing.T) {
	main := pagerPage("javascript:__doPostBack('gvSearchGrid','Page$11')")

	_, err := Navigator{Window: 10}.Open(main, 11)

	require.NoError(t, err)
	assert.Equal(t, 1, main.Elements[ellipsisLink][0].Clicks)
	assert.Equal(t, 0, main.Elements[pageLink(11)][0].Clicks, "numbered link path must not be used")
}

func TestNavigator_Page21PicksEllipsisByHref(t *testing.T) {
	main := pagerPage(
		"javascript:__doPostBack('gvSearchGrid','Page$21')",
		"javascript:__doPostBack('gvSearchGrid','Page$10')",
	)

	_, err := Navigator{Window: 10}.Open(main, 21)

	require.NoError(t, err)
	ellipses := main.Elements[ellipsisLink]
	assert.Equal(t, 1, ellipses[0].Clicks)
	assert.Equal(t, 0, ellipses[1].Clicks)
	assert.Equal(t, 0, main.Elements[pageLink(21)][0].Clicks)
}

func TestNavigator_EllipsisFallsBackToLast(t *testing.T) {
	main := pagerPage("#back", "#forward")

	_, err := Navigator{Window: 10}.Open(main, 21)

	require.NoError(t, err)
	assert.Equal(t, 0, main.Elements[ellipsisLink][0].Clicks)
	assert.Equal(t, 1, main.Elements[ellipsisLink][1].Clicks)
}

func TestNavigator_MissingControl(t *testing.T) {
	main := browsertest.NewPage("https://careers.un.org/lbw/home.aspx")

	_, err := Navigator{Window: 10}.Open(main, 4)
	assert.ErrorIs(t, err, ErrNavigation)

	_, err = Navigator{Window: 10}.Open(main, 11)
	assert.ErrorIs(t, err, ErrNavigation)
}
