package browser

// OpenPageCount counts every tab of a playwright-backed driver, including
// tabs no caller was handed.
func OpenPageCount(d Driver) int {
	return len(d.(*playwrightDriver).ctx.Pages())
}
