package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"gig-directory/internal/flash"
)

// Home handles GET / and renders the landing page with any pending
// flash messages.
func Home(c echo.Context) error {
	return c.Render(http.StatusOK, "home.html", echo.Map{
		"Title":   "Home",
		"Flashes": flash.Pop(c),
	})
}
