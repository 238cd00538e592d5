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

// List handles GET /artists: a flat name listing, no grouping.
func (h *ArtistHandler) List(c echo.Context) error {
	artists, err := h.Artists.List(c.Request().Context())
	if err != nil {
		c.Logger().Errorf("artist listing: %v", err)
		artists = nil
	}
	return c.Render(http.StatusOK, "artists.html", echo.Map{
		"Title":   "Artists",
		"Artists": artists,
		"Flashes": flash.Pop(c),
	})
}

// Search handles GET and POST /artists/search.  Zero matches render an
// empty result page; only a failed query flashes and redirects.
func (h *ArtistHandler) Search(c echo.Context) error {
	term := searchTerm(c)
	results, err := h.Artists.SearchByName(c.Request().Context(), term, nowStamp())
	if err != nil {
		c.Logger().Errorf("artist search %q: %v", term, err)
		flash.Error(c, fmt.Sprintf("Search for %q failed. Please try again.", term))
		return c.Redirect(http.StatusSeeOther, "/artists")
	}
	return c.Render(http.StatusOK, "search_artists.html", echo.Map{
		"Title":      "Artist search",
		"SearchTerm": term,
		"Count":      len(results),
		"Results":    results,
		"Flashes":    flash.Pop(c),
	})
}

// Show handles GET /artists/:id: the artist detail page with shows
// partitioned into past and upcoming.
func (h *ArtistHandler) Show(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound)
	}
	ctx := c.Request().Context()
	artist, err := h.Artists.GetByID(ctx, id)
	if err != nil {
		if !errors.Is(err, repository.ErrArtistNotFound) {
			c.Logger().Errorf("artist %d: %v", id, err)
		}
		return echo.NewHTTPError(http.StatusNotFound)
	}

	now := nowStamp()
	past, err := h.Shows.PastByArtist(ctx, id, now)
	if err != nil {
		c.Logger().Errorf("artist %d past shows: %v", id, err)
		return echo.NewHTTPError(http.StatusNotFound)
	}
	upcoming, err := h.Shows.UpcomingByArtist(ctx, id, now)
	if err != nil {
		c.Logger().Errorf("artist %d upcoming shows: %v", id, err)
		return echo.NewHTTPError(http.StatusNotFound)
	}
	formatArtistShows(past)
	formatArtistShows(upcoming)

	return c.Render(http.StatusOK, "show_artist.html", echo.Map{
		"Title":         artist.Name,
		"Artist":        artist,
		"PastShows":     past,
		"PastCount":     len(past),
		"UpcomingShows": upcoming,
		"UpcomingCount": len(upcoming),
		"Flashes":       flash.Pop(c),
	})
}

// CreateForm handles GET /artists/create.
func (h *ArtistHandler) CreateForm(c echo.Context) error {
	return c.Render(http.StatusOK, "new_artist.html", echo.Map{
		"Title":   "New artist",
		"Form":    form.ArtistForm{},
		"States":  form.StateChoices,
		"Genres":  form.GenreChoices,
		"Flashes": flash.Pop(c),
	})
}

// Create handles POST /artists/create.  Both outcomes land on the home
// page; the flash message carries the result.
func (h *ArtistHandler) Create(c echo.Context) error {
	f, err := form.ParseArtistForm(c)
	if err != nil {
		flash.Error(c, "The artist form could not be read.")
		return c.Redirect(http.StatusSeeOther, "/artists/create")
	}
	if errs := f.Validate(); len(errs) > 0 {
		flash.Error(c, "Please fix the artist form: "+strings.Join(errs.Messages(), ", "))
		return c.Redirect(http.StatusSeeOther, "/artists/create")
	}

	artist := f.Model()
	switch err := h.Artists.Create(c.Request().Context(), &artist); {
	case errors.Is(err, repository.ErrDuplicateName):
		flash.Error(c, fmt.Sprintf("Artist '%s' is already listed.", artist.Name))
	case err != nil:
		c.Logger().Errorf("create artist: %v", err)
		flash.Error(c, fmt.Sprintf("An error occurred. Artist '%s' could not be listed.", artist.Name))
	default:
		flash.Success(c, fmt.Sprintf("Artist '%s' was successfully listed!", artist.Name))
	}
	return c.Render(http.StatusOK, "home.html", echo.Map{
		"Title":   "Home",
		"Flashes": flash.Pop(c),
	})
}

// EditForm handles GET /artists/:id/edit.
func (h *ArtistHandler) EditForm(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound)
	}
	artist, err := h.Artists.GetByID(c.Request().Context(), id)
	if err != nil {
		if !errors.Is(err, repository.ErrArtistNotFound) {
			c.Logger().Errorf("edit artist %d: %v", id, err)
		}
		flash.Error(c, "Artist not found.")
		return c.Redirect(http.StatusSeeOther, "/artists")
	}
	return c.Render(http.StatusOK, "edit_artist.html", echo.Map{
		"Title":   "Edit " + artist.Name,
		"Artist":  artist,
		"States":  form.StateChoices,
		"Genres":  form.GenreChoices,
		"Flashes": flash.Pop(c),
	})
}

// Edit handles POST /artists/:id/edit.
func (h *ArtistHandler) Edit(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound)
	}
	editURL := fmt.Sprintf("/artists/%d/edit", id)

	f, err := form.ParseArtistForm(c)
	if err != nil {
		flash.Error(c, "The artist form could not be read.")
		return c.Redirect(http.StatusSeeOther, editURL)
	}
	if errs := f.Validate(); len(errs) > 0 {
		flash.Error(c, "Please fix the artist form: "+strings.Join(errs.Messages(), ", "))
		return c.Redirect(http.StatusSeeOther, editURL)
	}

	ctx := c.Request().Context()
	artist, err := h.Artists.GetByID(ctx, id)
	if err != nil {
		if !errors.Is(err, repository.ErrArtistNotFound) {
			c.Logger().Errorf("edit artist %d: %v", id, err)
		}
		flash.Error(c, "Artist not found.")
		return c.Redirect(http.StatusSeeOther, "/artists")
	}

	f.Apply(artist)
	switch err := h.Artists.Update(ctx, artist); {
	case errors.Is(err, repository.ErrDuplicateName):
		flash.Error(c, fmt.Sprintf("Another artist is already listed as '%s'.", artist.Name))
	case errors.Is(err, repository.ErrArtistNotFound):
		flash.Error(c, "Artist not found.")
		return c.Redirect(http.StatusSeeOther, "/artists")
	case err != nil:
		c.Logger().Errorf("update artist %d: %v", id, err)
		flash.Error(c, fmt.Sprintf("An error occurred. Artist '%s' could not be updated.", artist.Name))
	default:
		flash.Success(c, fmt.Sprintf("Artist '%s' was successfully updated!", artist.Name))
	}
	return c.Redirect(http.StatusSeeOther, fmt.Sprintf("/artists/%d", id))
}

func formatArtistShows(shows []repository.ArtistShow) {
	for i := range shows {
		shows[i].StartTime = view.FormatDateTime(shows[i].StartTime, "medium")
	}
}
