package router // package router defines how HTTP routes are registered for the app

import (
	"github.com/labstack/echo/v4" // import the Echo web framework to handle routing

	"gig-directory/internal/handler" // import the handlers that implement the pages
)

// RegisterRoutes wires every page of the directory onto the provided
// Echo instance.  All routes are public; static segments such as
// /venues/create take precedence over the :id parameter in Echo's
// router, so the create form never shadows a detail page.
func RegisterRoutes(e *echo.Echo, v *handler.VenueHandler, a *handler.ArtistHandler, s *handler.ShowHandler) {
	e.GET("/", handler.Home)

	// Venues: listing, search, detail, create, edit, delete.
	e.GET("/venues", v.List)
	e.GET("/venues/search", v.Search)
	e.POST("/venues/search", v.Search)
	e.GET("/venues/create", v.CreateForm)
	e.POST("/venues/create", v.Create)
	e.GET("/venues/:id", v.Show)
	e.DELETE("/venues/:id", v.Delete)
	e.GET("/venues/:id/edit", v.EditForm)
	e.POST("/venues/:id/edit", v.Edit)

	// Artists: same shape as venues, minus delete.
	e.GET("/artists", a.List)
	e.GET("/artists/search", a.Search)
	e.POST("/artists/search", a.Search)
	e.GET("/artists/create", a.CreateForm)
	e.POST("/artists/create", a.Create)
	e.GET("/artists/:id", a.Show)
	e.GET("/artists/:id/edit", a.EditForm)
	e.POST("/artists/:id/edit", a.Edit)

	// Shows: listing and booking only; shows are never edited or deleted.
	e.GET("/shows", s.List)
	e.GET("/shows/create", s.CreateForm)
	e.POST("/shows/create", s.Create)
}
