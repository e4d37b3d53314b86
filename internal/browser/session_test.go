package browser_test

import (
	"errors"
	"testing"

	"go-uncareers-harvester/internal/browser"
	"go-uncareers-harvester/internal/browser/browsertest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWithChild_ClosesTabOnSuccessAndFailure(t *testing.T) {
	main := browsertest.NewPage("https://example.test/list")
	drv := browsertest.NewDriver(main)
	sess := browser.NewSession(drv)

	row := browsertest.NewElement("Statistician")
	row.Opens = browsertest.NewPage("https://example.test/job/1")

	err := sess.WithChild(row, func(tab browser.Page) error {
		assert.Equal(t, 2, drv.OpenTabs())
		assert.Equal(t, "https://example.test/job/1", tab.URL())
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, 1, drv.OpenTabs())
	assert.False(t, sess.HasChild())
	assert.Same(t, main, drv.Focused)

	boom := errors.New("boom")
	err = sess.WithChild(row, func(browser.Page) error { return boom })
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, 1, drv.OpenTabs())
	assert.Same(t, main, drv.Focused)
}

func TestWithChild_NoNewTab(t *testing.T) {
	drv := browsertest.NewDriver(browsertest.NewPage("https://example.test/list"))
	sess := browser.NewSession(drv)

	called := false
	err := sess.WithChild(browsertest.NewElement("spacer"), func(browser.Page) error {
		called = true
		return nil
	})
	assert.ErrorIs(t, err, browser.ErrNoNewTab)
	assert.False(t, called)
	assert.Equal(t, 1, drv.OpenTabs())
}

func TestWithChild_RejectsNestedChild(t *testing.T) {
	drv := browsertest.NewDriver(browsertest.NewPage("https://example.test/list"))
	sess := browser.NewSession(drv)

	outer := browsertest.NewElement("outer")
	outer.Opens = browsertest.NewPage("https://example.test/job/1")
	inner := browsertest.NewElement("inner")
	inner.Opens = browsertest.NewPage("https://example.test/job/2")

	err := sess.WithChild(outer, func(browser.Page) error {
		return sess.WithChild(inner, func(browser.Page) error { return nil })
	})
	assert.ErrorIs(t, err, browser.ErrChildOpen)
	assert.Equal(t, 0, inner.Clicks)
	assert.Equal(t, 2, drv.MaxOpenTabs())
	assert.Equal(t, 1, drv.OpenTabs())
}

func TestWithChild_ReportsCloseFailure(t *testing.T) {
	drv := browsertest.NewDriver(browsertest.NewPage("https://example.test/list"))
	sess := browser.NewSession(drv)

	row := browsertest.NewElement("row")
	row.Opens = browsertest.NewPage("https://example.test/job/1")
	row.Opens.CloseErr = errors.New("tab crashed")

	err := sess.WithChild(row, func(browser.Page) error { return nil })
	assert.ErrorContains(t, err, "tab crashed")
	assert.False(t, sess.HasChild())
}

func TestWithSession_ClosesDriver(t *testing.T) {
	drv := browsertest.NewDriver(browsertest.NewPage("about:blank"))
	opener := &browsertest.Opener{Drivers: []*browsertest.Driver{drv}}

	boom := errors.New("boom")
	err := browser.WithSession(opener, func(s *browser.Session) error { return boom })
	assert.ErrorIs(t, err, boom)
	assert.True(t, drv.Closed())

	err = browser.WithSession(&browsertest.Opener{Err: boom}, func(*browser.Session) error {
		t.Fatal("fn must not run when the driver fails to open")
		return nil
	})
	assert.ErrorIs(t, err, boom)
}

func TestSessionClose_Idempotent(t *testing.T) {
	drv := browsertest.NewDriver(browsertest.NewPage("about:blank"))
	sess := browser.NewSession(drv)

	require.NoError(t, sess.Close())
	require.NoError(t, sess.Close())
	assert.ErrorIs(t, sess.WithChild(browsertest.NewElement("x"), func(browser.Page) error { return nil }), browser.ErrClosed)
}

func TestSelectors(t *testing.T) {
	assert.Equal(t, "#btnSearch", browser.ByID("btnSearch"))
	assert.Equal(t, `[id*="gvSearchGrid"]`, browser.ByIDContains("gvSearchGrid"))
	assert.Equal(t, `a:text-is(">>")`, browser.ByLinkText(">>"))
	assert.Equal(t, "tr", browser.ByTag("tr"))
}
