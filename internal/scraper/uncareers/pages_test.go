package uncareers

import (
	"testing"
	"time"

	"go-uncareers-harvester/internal/browser/browsertest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLastPage(t *testing.T) {
	tests := []struct {
		name    string
		rows    []string
		want    int
		wantErr bool
	}{
		{name: "pager row", rows: []string{"Title Level", "<< ... 31 32 33 34"}, want: 34},
		{name: "first matching row wins", rows: []string{"<< 1 2 3", "<< ... 9"}, want: 3},
		{name: "trailing spaces", rows: []string{"<< ... 12  \n"}, want: 12},
		{name: "no pager row", rows: []string{"Title Level"}, wantErr: true},
		{name: "not a number", rows: []string{"<< ... next"}, wantErr: true},
		{name: "zero", rows: []string{"<< 0"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseLastPage(tt.rows)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCountPages_ReadsPager(t *testing.T) {
	drv := counterDriver("<< ... 31 32 33 34")
	opener := &browsertest.Opener{Drivers: []*browsertest.Driver{drv}}

	pages := CountPages(opener, "https://careers.un.org/lbw/home.aspx?lang=en-US", 10*time.Second, 40)

	assert.Equal(t, 34, pages)
	assert.True(t, drv.Closed(), "count session must be closed")
	assert.Equal(t, []string{"https://careers.un.org/lbw/home.aspx?lang=en-US"}, drv.MainPage.Gotos)
	assert.Equal(t, []string{"Enter"}, drv.MainPage.Elements[searchButton][0].Presses)
	assert.Equal(t, 1, drv.MainPage.Elements[lastPageLink][0].Clicks)
	assert.Equal(t, 10*time.Second, drv.ImplicitWait)
}

func TestCountPages_Fallback(t *testing.T) {
	tests := []struct {
		name string
		drv  *browsertest.Driver
	}{
		{name: "unparsable pager", drv: counterDriver("<< ... next")},
		{name: "no pager row", drv: counterDriver("Nothing here")},
		{
			name: "no last page control",
			drv: func() *browsertest.Driver {
				d := counterDriver("<< 5")
				d.MainPage.Set(lastPageLink)
				return d
			}(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opener := &browsertest.Opener{Drivers: []*browsertest.Driver{tt.drv}}
			assert.Equal(t, 40, CountPages(opener, "https://careers.un.org", time.Second, 40))
			assert.True(t, tt.drv.Closed())
		})
	}
}

func TestCountPages_FallbackWhenBrowserFails(t *testing.T) {
	opener := &browsertest.Opener{}
	assert.Equal(t, 7, CountPages(opener, "https://careers.un.org", time.Second, 7))
}
