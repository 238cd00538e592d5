package handler

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"gig-directory/internal/flash"
	"gig-directory/internal/form"
	"gig-directory/internal/repository"
	"gig-directory/internal/view"
)

// venueArea is one city/state group on the listing page.
type venueArea struct {
	City   string
	State  string
	Venues []repository.VenueSummary
}

// List handles GET /venues: distinct areas ordered by state then city,
// each venue annotated with its live upcoming-show count.  A query
// failure degrades to an empty page rather than an error.
func (h *VenueHandler) List(c echo.Context) error {
	ctx := c.Request().Context()
	now := nowStamp()

	var areas []venueArea
	dbAreas, err := h.Venues.Areas(ctx)
	if err != nil {
		c.Logger().Errorf("venue listing: %v", err)
		dbAreas = nil
	}
	for _, a := range dbAreas {
		venues, err := h.Venues.ListByArea(ctx, a.City, a.State, now)
		if err != nil {
			c.Logger().Errorf("venue listing %s/%s: %v", a.City, a.State, err)
			areas = nil
			break
		}
		areas = append(areas, venueArea{City: a.City, State: a.State, Venues: venues})
	}
	return c.Render(http.StatusOK, "venues.html", echo.Map{
		"Title":   "Venues",
		"Areas":   areas,
		"Flashes": flash.Pop(c),
	})
}

// Search handles GET and POST /venues/search.  Zero matches render an
// empty result page; only a failed query flashes and redirects.
func (h *VenueHandler) Search(c echo.Context) error {
	term := searchTerm(c)
	results, err := h.Venues.SearchByName(c.Request().Context(), term, nowStamp())
	if err != nil {
		c.Logger().Errorf("venue search %q: %v", term, err)
		flash.Error(c, fmt.Sprintf("Search for %q failed. Please try again.", term))
		return c.Redirect(http.StatusSeeOther, "/venues")
	}
	return c.Render(http.StatusOK, "search_venues.html", echo.Map{
		"Title":      "Venue search",
		"SearchTerm": term,
		"Count":      len(results),
		"Results":    results,
		"Flashes":    flash.Pop(c),
	})
}

// Show handles GET /venues/:id: the venue detail page with its shows
// partitioned into past and upcoming.
func (h *VenueHandler) Show(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound)
	}
	ctx := c.Request().Context()
	venue, err := h.Venues.GetByID(ctx, id)
	if err != nil {
		if !errors.Is(err, repository.ErrVenueNotFound) {
			c.Logger().Errorf("venue %d: %v", id, err)
		}
		return echo.NewHTTPError(http.StatusNotFound)
	}

	now := nowStamp()
	past, err := h.Shows.PastByVenue(ctx, id, now)
	if err != nil {
		c.Logger().Errorf("venue %d past shows: %v", id, err)
		return echo.NewHTTPError(http.StatusNotFound)
	}
	upcoming, err := h.Shows.UpcomingByVenue(ctx, id, now)
	if err != nil {
		c.Logger().Errorf("venue %d upcoming shows: %v", id, err)
		return echo.NewHTTPError(http.StatusNotFound)
	}
	formatVenueShows(past)
	formatVenueShows(upcoming)

	return c.Render(http.StatusOK, "show_venue.html", echo.Map{
		"Title":         venue.Name,
		"Venue":         venue,
		"PastShows":     past,
		"PastCount":     len(past),
		"UpcomingShows": upcoming,
		"UpcomingCount": len(upcoming),
		"Flashes":       flash.Pop(c),
	})
}

// CreateForm handles GET /venues/create.
func (h *VenueHandler) CreateForm(c echo.Context) error {
	return c.Render(http.StatusOK, "new_venue.html", echo.Map{
		"Title":   "New venue",
		"Form":    form.VenueForm{},
		"States":  form.StateChoices,
		"Genres":  form.GenreChoices,
		"Flashes": flash.Pop(c),
	})
}

// Create handles POST /venues/create.  Success and failure both land
// on the home page; the outcome is carried by the flash message.
func (h *VenueHandler) Create(c echo.Context) error {
	f, err := form.ParseVenueForm(c)
	if err != nil {
		flash.Error(c, "The venue form could not be read.")
		return c.Redirect(http.StatusSeeOther, "/venues/create")
	}
	if errs := f.Validate(); len(errs) > 0 {
		flash.Error(c, "Please fix the venue form: "+strings.Join(errs.Messages(), ", "))
		return c.Redirect(http.StatusSeeOther, "/venues/create")
	}

	venue := f.Model()
	switch err := h.Venues.Create(c.Request().Context(), &venue); {
	case errors.Is(err, repository.ErrDuplicateName):
		flash.Error(c, fmt.Sprintf("Venue '%s' is already listed.", venue.Name))
	case err != nil:
		c.Logger().Errorf("create venue: %v", err)
		flash.Error(c, fmt.Sprintf("An error occurred. Venue '%s' could not be listed.", venue.Name))
	default:
		flash.Success(c, fmt.Sprintf("Venue '%s' was successfully listed!", venue.Name))
	}
	return c.Render(http.StatusOK, "home.html", echo.Map{
		"Title":   "Home",
		"Flashes": flash.Pop(c),
	})
}

// EditForm handles GET /venues/:id/edit, pre-populated from the stored
// row.  A missing venue flashes an error and redirects to the listing.
func (h *VenueHandler) EditForm(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound)
	}
	venue, err := h.Venues.GetByID(c.Request().Context(), id)
	if err != nil {
		if !errors.Is(err, repository.ErrVenueNotFound) {
			c.Logger().Errorf("edit venue %d: %v", id, err)
		}
		flash.Error(c, "Venue not found.")
		return c.Redirect(http.StatusSeeOther, "/venues")
	}
	return c.Render(http.StatusOK, "edit_venue.html", echo.Map{
		"Title":   "Edit " + venue.Name,
		"Venue":   venue,
		"States":  form.StateChoices,
		"Genres":  form.GenreChoices,
		"Flashes": flash.Pop(c),
	})
}

// Edit handles POST /venues/:id/edit.  Every mutable attribute is
// overwritten from the form; the seeking checkbox keeps the stored
// value when the field is absent from the submission.
func (h *VenueHandler) Edit(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound)
	}
	editURL := fmt.Sprintf("/venues/%d/edit", id)

	f, err := form.ParseVenueForm(c)
	if err != nil {
		flash.Error(c, "The venue form could not be read.")
		return c.Redirect(http.StatusSeeOther, editURL)
	}
	if errs := f.Validate(); len(errs) > 0 {
		flash.Error(c, "Please fix the venue form: "+strings.Join(errs.Messages(), ", "))
		return c.Redirect(http.StatusSeeOther, editURL)
	}

	ctx := c.Request().Context()
	venue, err := h.Venues.GetByID(ctx, id)
	if err != nil {
		if !errors.Is(err, repository.ErrVenueNotFound) {
			c.Logger().Errorf("edit venue %d: %v", id, err)
		}
		flash.Error(c, "Venue not found.")
		return c.Redirect(http.StatusSeeOther, "/venues")
	}

	f.Apply(venue)
	switch err := h.Venues.Update(ctx, venue); {
	case errors.Is(err, repository.ErrDuplicateName):
		flash.Error(c, fmt.Sprintf("Another venue is already listed as '%s'.", venue.Name))
	case errors.Is(err, repository.ErrVenueNotFound):
		flash.Error(c, "Venue not found.")
		return c.Redirect(http.StatusSeeOther, "/venues")
	case err != nil:
		c.Logger().Errorf("update venue %d: %v", id, err)
		flash.Error(c, fmt.Sprintf("An error occurred. Venue '%s' could not be updated.", venue.Name))
	default:
		flash.Success(c, fmt.Sprintf("Venue '%s' was successfully updated!", venue.Name))
	}
	return c.Redirect(http.StatusSeeOther, fmt.Sprintf("/venues/%d", id))
}

// Delete handles DELETE /venues/:id.  Venues with booked shows are
// protected by the foreign key; that surfaces as a client error, not
// a cascade.
func (h *VenueHandler) Delete(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound)
	}
	switch err := h.Venues.DeleteByID(c.Request().Context(), id); {
	case errors.Is(err, repository.ErrVenueNotFound):
		return echo.NewHTTPError(http.StatusNotFound)
	case errors.Is(err, repository.ErrConflict):
		flash.Error(c, "The venue still has shows booked and could not be deleted.")
		return c.NoContent(http.StatusBadRequest)
	case err != nil:
		c.Logger().Errorf("delete venue %d: %v", id, err)
		flash.Error(c, "An error occurred. The venue could not be deleted.")
		return c.NoContent(http.StatusBadRequest)
	}
	flash.Success(c, "The venue was successfully deleted.")
	return c.NoContent(http.StatusOK)
}

// formatVenueShows rewrites the raw DB timestamps into display form.
func formatVenueShows(shows []repository.VenueShow) {
	for i := range shows {
		shows[i].StartTime = view.FormatDateTime(shows[i].StartTime, "medium")
	}
}
