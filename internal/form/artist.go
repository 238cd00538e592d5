package form

import (
	"strings"

	"github.com/labstack/echo/v4"

	"gig-directory/internal/model"
)

// ArtistForm carries one artist create/edit submission. SeekingVenue
// follows the same tri-state convention as VenueForm.SeekingTalent.
type ArtistForm struct {
	Name               string
	City               string
	State              string
	Phone              string
	Genres             []string
	ImageLink          string
	FacebookLink       string
	Website            string
	SeekingVenue       *bool
	SeekingDescription string
}

func ParseArtistForm(c echo.Context) (ArtistForm, error) {
	params, err := c.FormParams()
	if err != nil {
		return ArtistForm{}, err
	}
	f := ArtistForm{
		Name:               strings.TrimSpace(params.Get("name")),
		City:               strings.TrimSpace(params.Get("city")),
		State:              strings.TrimSpace(params.Get("state")),
		Phone:              strings.TrimSpace(params.Get("phone")),
		Genres:             params["genres"],
		ImageLink:          strings.TrimSpace(params.Get("image_link")),
		FacebookLink:       strings.TrimSpace(params.Get("facebook_link")),
		Website:            strings.TrimSpace(params.Get("website")),
		SeekingDescription: strings.TrimSpace(params.Get("seeking_description")),
	}
	if vals, ok := params["seeking_venue"]; ok && len(vals) > 0 {
		b := vals[0] == "y"
		f.SeekingVenue = &b
	}
	return f, nil
}

// Validate reports every failing field. Phone is optional for
// artists, unlike venues.
func (f ArtistForm) Validate() Errors {
	var errs Errors
	if f.Name == "" {
		errs.add("name", "is required")
	}
	if f.City == "" {
		errs.add("city", "is required")
	}
	if f.State == "" {
		errs.add("state", "is required")
	} else if !validState(f.State) {
		errs.add("state", "is not a valid choice")
	}
	if !validGenres(f.Genres) {
		errs.add("genres", "must list at least one valid genre")
	}
	if !validLink(f.ImageLink) {
		errs.add("image_link", "must be an http(s) URL")
	}
	if !validLink(f.FacebookLink) {
		errs.add("facebook_link", "must be an http(s) URL")
	}
	if !validLink(f.Website) {
		errs.add("website", "must be an http(s) URL")
	}
	return errs
}

// Model builds a new artist from the submission (create semantics).
func (f ArtistForm) Model() model.Artist {
	return model.Artist{
		Name:               f.Name,
		City:               f.City,
		State:              f.State,
		Phone:              f.Phone,
		Genres:             f.Genres,
		ImageLink:          f.ImageLink,
		FacebookLink:       f.FacebookLink,
		Website:            f.Website,
		SeekingVenue:       f.SeekingVenue != nil && *f.SeekingVenue,
		SeekingDescription: f.SeekingDescription,
	}
}

// Apply overwrites the mutable attributes of an existing artist (edit
// semantics: absent checkbox keeps the stored value).
func (f ArtistForm) Apply(a *model.Artist) {
	a.Name = f.Name
	a.City = f.City
	a.State = f.State
	a.Phone = f.Phone
	a.Genres = f.Genres
	a.ImageLink = f.ImageLink
	a.FacebookLink = f.FacebookLink
	a.Website = f.Website
	if f.SeekingVenue != nil {
		a.SeekingVenue = *f.SeekingVenue
	}
	a.SeekingDescription = f.SeekingDescription
}
