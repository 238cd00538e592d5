package main // Entry point package

import (
	"log" // Logging library

	"github.com/gorilla/sessions"               // Cookie session store backing the flash messages
	"github.com/joho/godotenv"                  // Loads .env into the environment in development
	"github.com/labstack/echo-contrib/session"  // Echo session middleware over gorilla/sessions
	"github.com/labstack/echo/v4"               // Echo web framework
	echomw "github.com/labstack/echo/v4/middleware"

	"gig-directory/internal/config"
	"gig-directory/internal/database"
	"gig-directory/internal/handler"
	"gig-directory/internal/middleware"
	"gig-directory/internal/repository"
	"gig-directory/internal/router"
	"gig-directory/internal/view"
)

func main() {
	_ = godotenv.Load() // .env is optional; real deployments set the environment directly

	cfg := config.Load()

	db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
	if err != nil {
		log.Fatalf("database: %v", err)
	}
	defer db.Close()

	renderer, err := view.NewRenderer()
	if err != nil {
		log.Fatalf("templates: %v", err)
	}

	e := echo.New()
	e.HideBanner = true
	e.Renderer = renderer
	e.HTTPErrorHandler = handler.HTTPErrorHandler
	e.Use(echomw.Logger())
	e.Use(echomw.Recover())
	e.Use(session.Middleware(sessions.NewCookieStore([]byte(cfg.SessionSecret))))
	e.Use(middleware.RateLimit(config.LoadRateLimitConfig(), config.NewRedisClient()))

	venues := repository.NewVenueRepo(db)
	artists := repository.NewArtistRepo(db)
	shows := repository.NewShowRepo(db)
	router.RegisterRoutes(e,
		handler.NewVenueHandler(venues, shows),
		handler.NewArtistHandler(artists, shows),
		handler.NewShowHandler(shows),
	)

	addr := ":" + cfg.Port
	log.Printf("listening on %s (env=%s)", addr, cfg.Env)
	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
