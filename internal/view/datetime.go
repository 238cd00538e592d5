// Package view renders the server-side HTML pages.  It owns the Echo
// renderer over the embedded templates and the display formatting of
// DB timestamps.
package view

import (
	"time"

	"gig-directory/internal/model"
)

// Display layouts for the two supported style tokens.
const (
	fullLayout   = "Monday January, 2, 2006 at 3:04PM"
	mediumLayout = "Mon 01, 02, 2006 3:04PM"
)

// FormatDateTime renders a DB timestamp ("2006-01-02 15:04:05") for
// display.  Style "full" spells out the weekday and month; any other
// token falls back to the medium style.  Unparseable input is returned
// unchanged so a bad row never breaks a page.
func FormatDateTime(value, style string) string {
	t, err := time.Parse(model.TimeLayout, value)
	if err != nil {
		return value
	}
	if style == "full" {
		return t.Format(fullLayout)
	}
	return t.Format(mediumLayout)
}
