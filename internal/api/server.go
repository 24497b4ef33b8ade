package api

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	corslib "github.com/rs/cors"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	"github.com/courtside/nba-api/internal/api/handler"
	"github.com/courtside/nba-api/internal/config"
)

// NewRouter creates and configures the Chi router with all middleware and routes.
func NewRouter(cfg *config.Config) *chi.Mux {
	r := chi.NewRouter()

	// --- Middleware stack ---
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(TimingMiddleware)
	r.Use(middleware.Compress(5)) // gzip

	// CORS
	c := corslib.New(corslib.Options{
		AllowedOrigins:   cfg.CORSAllowOrigins,
		AllowedMethods:   []string{"GET", "HEAD", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Accept-Encoding", "Content-Type"},
		ExposedHeaders:   []string{"X-Process-Time"},
		AllowCredentials: false,
	})
	r.Use(c.Handler)

	// --- Handler dependencies ---
	h := handler.New(cfg)

	// --- Routes ---

	r.Get("/", h.Root)
	r.Get("/health", h.HealthCheck)

	// Swagger UI
	r.Get("/docs/*", httpSwagger.Handler(
		httpSwagger.URL("/docs/doc.json"),
	))

	// Teams
	r.Route("/teams", func(r chi.Router) {
		r.Get("/", h.ListTeams)
		r.Get("/name/{teamName}", h.GetTeamByName)
		r.Get("/{teamID}", h.GetTeamByID)
		r.Get("/{teamID}/roster", h.GetTeamRoster)
		r.Get("/{teamID}/standing", h.GetTeamStanding)
	})

	// Standings
	r.Route("/standings", func(r chi.Router) {
		r.Get("/eastern", h.GetEasternStandings)
		r.Get("/western", h.GetWesternStandings)
	})

	// Search
	r.Get("/search/players", h.SearchPlayers)

	// Games
	r.Get("/games", h.ListGames)
	r.Get("/games/search", h.SearchGames)

	// Chat
	r.Post("/chat", h.Chat)

	return r
}
