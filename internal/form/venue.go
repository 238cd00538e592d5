package form

import (
	"strings"

	"github.com/labstack/echo/v4"

	"gig-directory/internal/model"
)

// VenueForm carries one venue create/edit submission.
//
// SeekingTalent is tri-state: nil means the checkbox field was absent
// from the submission entirely. On create an absent field means false;
// on edit it means "leave the stored value unchanged". A present field
// is true exactly when its value is "y".
type VenueForm struct {
	Name               string
	City               string
	State              string
	Address            string
	Phone              string
	Genres             []string
	ImageLink          string
	FacebookLink       string
	Website            string
	SeekingTalent      *bool
	SeekingDescription string
}

// ParseVenueForm reads a venue submission from the request. Values are
// trimmed; multi-valued genres keep their submitted order.
func ParseVenueForm(c echo.Context) (VenueForm, error) {
	params, err := c.FormParams()
	if err != nil {
		return VenueForm{}, err
	}
	f := VenueForm{
		Name:               strings.TrimSpace(params.Get("name")),
		City:               strings.TrimSpace(params.Get("city")),
		State:              strings.TrimSpace(params.Get("state")),
		Address:            strings.TrimSpace(params.Get("address")),
		Phone:              strings.TrimSpace(params.Get("phone")),
		Genres:             params["genres"],
		ImageLink:          strings.TrimSpace(params.Get("image_link")),
		FacebookLink:       strings.TrimSpace(params.Get("facebook_link")),
		Website:            strings.TrimSpace(params.Get("website")),
		SeekingDescription: strings.TrimSpace(params.Get("seeking_description")),
	}
	if vals, ok := params["seeking_talent"]; ok && len(vals) > 0 {
		b := vals[0] == "y"
		f.SeekingTalent = &b
	}
	return f, nil
}

// Validate reports every failing field of the submission.
func (f VenueForm) Validate() Errors {
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
	if f.Address == "" {
		errs.add("address", "is required")
	}
	if f.Phone == "" {
		errs.add("phone", "is required")
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

// Model builds a new venue from the submission using create
// semantics: an absent seeking checkbox means false.
func (f VenueForm) Model() model.Venue {
	return model.Venue{
		Name:               f.Name,
		City:               f.City,
		State:              f.State,
		Address:            f.Address,
		Phone:              f.Phone,
		Genres:             f.Genres,
		ImageLink:          f.ImageLink,
		FacebookLink:       f.FacebookLink,
		Website:            f.Website,
		SeekingTalent:      f.SeekingTalent != nil && *f.SeekingTalent,
		SeekingDescription: f.SeekingDescription,
	}
}

// Apply overwrites the mutable attributes of an existing venue using
// edit semantics: an absent seeking checkbox keeps the stored value.
func (f VenueForm) Apply(v *model.Venue) {
	v.Name = f.Name
	v.City = f.City
	v.State = f.State
	v.Address = f.Address
	v.Phone = f.Phone
	v.Genres = f.Genres
	v.ImageLink = f.ImageLink
	v.FacebookLink = f.FacebookLink
	v.Website = f.Website
	if f.SeekingTalent != nil {
		v.SeekingTalent = *f.SeekingTalent
	}
	v.SeekingDescription = f.SeekingDescription
}
