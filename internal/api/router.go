package api

import (
	"github.com/JasirAhamed786/unifield-be/internal/api/handlers"
	"github.com/JasirAhamed786/unifield-be/internal/auth"
	"github.com/JasirAhamed786/unifield-be/internal/services"
	"github.com/JasirAhamed786/unifield-be/internal/ticker"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

// Deps bundles everything the router needs.
type Deps struct {
	Tokens         *auth.TokenManager
	Hub            *ticker.Hub
	Users          services.UserServiceProvider
	Stats          services.StatsServiceProvider
	CropGuides     services.CropGuideServiceProvider
	Market         services.MarketServiceProvider
	Schemes        services.SchemeServiceProvider
	Research       services.ResearchServiceProvider
	Policies       services.PolicyServiceProvider
	Forum          services.ForumServiceProvider
	AllowedOrigins []string
}

// NewRouter creates and configures the Chi router. List and detail reads of
// content stay public; every mutation and all user routes sit behind the
// token guard.
func NewRouter(d Deps) *chi.Mux {
	r := chi.NewRouter()

	// Basic middleware stack
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   d.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	authHandler := handlers.NewAuthHandler(d.Users, d.Tokens)
	userHandler := handlers.NewUserHandler(d.Users)
	statsHandler := handlers.NewStatsHandler(d.Stats)
	guideHandler := handlers.NewCropGuideHandler(d.CropGuides)
	marketHandler := handlers.NewMarketHandler(d.Market, d.Hub)
	schemeHandler := handlers.NewSchemeHandler(d.Schemes)
	researchHandler := handlers.NewResearchHandler(d.Research)
	policyHandler := handlers.NewPolicyHandler(d.Policies)
	forumHandler := handlers.NewForumHandler(d.Forum)
	advisoryHandler := handlers.NewAdvisoryHandler()

	requireAuth := auth.Middleware(d.Tokens)

	r.Route("/api", func(r chi.Router) {
		r.Post("/auth/register", authHandler.Register)
		r.Post("/auth/login", authHandler.Login)

		// Advisory stubs
		r.Get("/weather", advisoryHandler.Weather)
		r.Post("/diagnose", advisoryHandler.Diagnose)

		// Realtime market ticker
		if d.Hub != nil {
			tickerHandler := handlers.NewTickerHandler(d.Hub)
			r.Get("/ws/market", tickerHandler.Serve)
		}

		// Public reads
		r.Get("/cropguides", guideHandler.GetAll)
		r.Get("/cropguides/{id}", guideHandler.Get)
		r.Get("/marketdata", marketHandler.GetAll)
		r.Get("/schemes", schemeHandler.GetAll)
		r.Get("/schemes/{id}", schemeHandler.Get)
		r.Get("/research", researchHandler.GetAll)
		r.Get("/research/{id}", researchHandler.Get)
		r.Get("/policies", policyHandler.GetAll)
		r.Get("/policies/{id}", policyHandler.Get)
		r.Get("/forumposts", forumHandler.GetAll)
		r.Get("/forumposts/{id}", forumHandler.Get)

		// Protected routes
		r.Group(func(r chi.Router) {
			r.Use(requireAuth)

			r.Route("/users", func(r chi.Router) {
				r.With(auth.RequireAdmin).Get("/", userHandler.GetAll)
				r.Get("/{id}", userHandler.Get)
				r.Put("/{id}", userHandler.Update)
				r.With(auth.RequireAdmin).Put("/{id}/role", userHandler.UpdateRole)
				r.Put("/{id}/password", userHandler.ChangePassword)
				r.With(auth.RequireAdmin).Delete("/{id}", userHandler.Delete)
			})

			r.With(auth.RequireAdmin).Get("/admin/stats", statsHandler.Get)

			r.Post("/cropguides", guideHandler.Create)
			r.Put("/cropguides/{id}", guideHandler.Update)
			r.Delete("/cropguides/{id}", guideHandler.Delete)

			r.Post("/marketdata", marketHandler.Create)

			r.Post("/schemes", schemeHandler.Create)
			r.Put("/schemes/{id}", schemeHandler.Update)
			r.Delete("/schemes/{id}", schemeHandler.Delete)

			r.Post("/research", researchHandler.Create)
			r.Put("/research/{id}", researchHandler.Update)
			r.Delete("/research/{id}", researchHandler.Delete)

			r.Post("/policies", policyHandler.Create)
			r.Put("/policies/{id}", policyHandler.Update)
			r.Delete("/policies/{id}", policyHandler.Delete)

			r.Post("/forumposts", forumHandler.Create)
			r.Put("/forumposts/{id}", forumHandler.Update)
			r.Delete("/forumposts/{id}", forumHandler.Delete)
		})
	})

	return r
}
