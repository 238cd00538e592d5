package handler

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"gig-directory/internal/flash"
	"gig-directory/internal/form"
	"gig-directory/internal/repository"
	"gig-directory/internal/view"
)

// List handles GET /shows: every booked show, denormalized with its
// venue and artist, no date filter.
func (h *ShowHandler) List(c echo.Context) error {
	shows, err := h.Shows.ListAll(c.Request().Context())
	if err != nil {
		c.Logger().Errorf("show listing: %v", err)
		shows = nil
	}
	for i := range shows {
		shows[i].StartTime = view.FormatDateTime(shows[i].StartTime, "medium")
	}
	return c.Render(http.StatusOK, "shows.html", echo.Map{
		"Title":   "Shows",
		"Shows":   shows,
		"Flashes": flash.Pop(c),
	})
}

// CreateForm handles GET /shows/create.
func (h *ShowHandler) CreateForm(c echo.Context) error {
	return c.Render(http.StatusOK, "new_show.html", echo.Map{
		"Title":   "Book a show",
		"Form":    form.ShowForm{},
		"Flashes": flash.Pop(c),
	})
}

// Create handles POST /shows/create.  An omitted start time defaults
// to the submission time.  Both outcomes land on the home page.
func (h *ShowHandler) Create(c echo.Context) error {
	f := form.ParseShowForm(c)
	show, errs := f.Validate(time.Now())
	if len(errs) > 0 {
		flash.Error(c, "Please fix the show form: "+strings.Join(errs.Messages(), ", "))
		return c.Redirect(http.StatusSeeOther, "/shows/create")
	}

	switch err := h.Shows.Create(c.Request().Context(), &show); {
	case errors.Is(err, repository.ErrConflict):
		flash.Error(c, "An error occurred. Show could not be listed: unknown artist or venue.")
	case err != nil:
		c.Logger().Errorf("create show: %v", err)
		flash.Error(c, "An error occurred. Show could not be listed.")
	default:
		flash.Success(c, "Show was successfully listed!")
	}
	return c.Render(http.StatusOK, "home.html", echo.Map{
		"Title":   "Home",
		"Flashes": flash.Pop(c),
	})
}
