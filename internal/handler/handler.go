// Package handler implements the HTTP request handlers of the
// directory.  Every handler follows the same shape: parse input,
// validate, query or mutate through the repositories, build a
// view-model and render a template or redirect.  Repositories are
// injected through the constructors; there is no ambient shared state.
package handler

import (
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"gig-directory/internal/model"
	"gig-directory/internal/repository"
)

// VenueHandler serves everything under /venues.
type VenueHandler struct {
	Venues *repository.VenueRepo
	Shows  *repository.ShowRepo
}

// NewVenueHandler constructs a VenueHandler and panics if a dependency is nil.
func NewVenueHandler(venues *repository.VenueRepo, shows *repository.ShowRepo) *VenueHandler {
	if venues == nil || shows == nil {
		panic("nil repository passed to NewVenueHandler")
	}
	return &VenueHandler{Venues: venues, Shows: shows}
}

// ArtistHandler serves everything under /artists.
type ArtistHandler struct {
	Artists *repository.ArtistRepo
	Shows   *repository.ShowRepo
}

func NewArtistHandler(artists *repository.ArtistRepo, shows *repository.ShowRepo) *ArtistHandler {
	if artists == nil || shows == nil {
		panic("nil repository passed to NewArtistHandler")
	}
	return &ArtistHandler{Artists: artists, Shows: shows}
}

// ShowHandler serves the shows listing and the booking form.
type ShowHandler struct {
	Shows *repository.ShowRepo
}

func NewShowHandler(shows *repository.ShowRepo) *ShowHandler {
	if shows == nil {
		panic("nil repository passed to NewShowHandler")
	}
	return &ShowHandler{Shows: shows}
}

// nowStamp is the wall-clock reference used to split past from
// upcoming shows, in the DB timestamp layout.
func nowStamp() string {
	return time.Now().UTC().Format(model.TimeLayout)
}

// parseID extracts the numeric :id path parameter.
func parseID(c echo.Context) (uint64, error) {
	return strconv.ParseUint(c.Param("id"), 10, 64)
}

// searchTerm reads the search input from the form body (POST) or the
// query string (GET); both route methods are registered.
func searchTerm(c echo.Context) string {
	if term := c.FormValue("search_term"); term != "" {
		return term
	}
	return c.QueryParam("search_term")
}
