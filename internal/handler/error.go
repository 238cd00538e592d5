package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
)

// HTTPErrorHandler renders missing entities as the HTML 404 page and
// every other unhandled failure as the HTML 500 page.  It is installed
// as the Echo error handler in main.
func HTTPErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}
	code := http.StatusInternalServerError
	var he *echo.HTTPError
	if errors.As(err, &he) {
		code = he.Code
	}
	if code >= http.StatusInternalServerError {
		c.Logger().Error(err)
	}
	name := "500.html"
	title := "Server error"
	if code == http.StatusNotFound {
		name = "404.html"
		title = "Not found"
	}
	if rerr := c.Render(code, name, echo.Map{"Title": title}); rerr != nil {
		c.Logger().Error(rerr)
		_ = c.NoContent(code)
	}
}
