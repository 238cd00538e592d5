package form

import (
	"strconv"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"gig-directory/internal/model"
)

// startTimeLayouts are the accepted submission formats for a show
// start time: the browser datetime-local widget with and without
// seconds, and the DB layout itself.
var startTimeLayouts = []string{
	"2006-01-02T15:04",
	"2006-01-02T15:04:05",
	model.TimeLayout,
}

// ShowForm carries one show booking submission.
type ShowForm struct {
	ArtistID  string
	VenueID   string
	StartTime string
}

func ParseShowForm(c echo.Context) ShowForm {
	return ShowForm{
		ArtistID:  strings.TrimSpace(c.FormValue("artist_id")),
		VenueID:   strings.TrimSpace(c.FormValue("venue_id")),
		StartTime: strings.TrimSpace(c.FormValue("start_time")),
	}
}

// Validate checks the submission and, when it is well formed, returns
// the show to insert. An empty start time defaults to the submission
// time, per the booking form contract.
func (f ShowForm) Validate(now time.Time) (model.Show, Errors) {
	var errs Errors
	var s model.Show

	if f.ArtistID == "" {
		errs.add("artist_id", "is required")
	} else if id, err := strconv.ParseUint(f.ArtistID, 10, 64); err != nil {
		errs.add("artist_id", "must be a numeric id")
	} else {
		s.ArtistID = id
	}

	if f.VenueID == "" {
		errs.add("venue_id", "is required")
	} else if id, err := strconv.ParseUint(f.VenueID, 10, 64); err != nil {
		errs.add("venue_id", "must be a numeric id")
	} else {
		s.VenueID = id
	}

	if f.StartTime == "" {
		s.StartTime = now.UTC().Format(model.TimeLayout)
	} else if t, ok := parseStartTime(f.StartTime); ok {
		s.StartTime = t.Format(model.TimeLayout)
	} else {
		errs.add("start_time", "is not a valid timestamp")
	}

	if len(errs) > 0 {
		return model.Show{}, errs
	}
	return s, nil
}

func parseStartTime(value string) (time.Time, bool) {
	for _, layout := range startTimeLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
