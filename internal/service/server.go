package service

import (
	"rewards_service/internal/app"
	"rewards_service/internal/pkg/auth"
	"rewards_service/internal/pkg/logger"

	"github.com/go-chi/chi/v5"
)

// Service encapsulates the HTTP server configuration, including the application's business logic,
// HTTP handlers, the server's run address, and a logger for event and error logging.
type Service struct {
	handlers   *handlers
	app        *app.App
	runAddress string
	log        *logger.Logger
}

// NewService creates and initializes a new Service instance.
// It sets up the handlers using the provided application and logger,
// and configures the server's run address.
func NewService(app *app.App, runAddress string, l *logger.Logger) *Service {
	handlers := newHandlers(app, l)
	return &Service{handlers: handlers, app: app, runAddress: runAddress, log: l}
}

// NewRouter sets up and returns a new chi.Router instance with the necessary middleware and routes.
// It applies logging middleware globally, and JWT authentication middleware for protected routes.
// The monthly rewards job endpoint is left outside the JWT group; it is invoked by an external
// scheduler, not by an end user.
func (service *Service) NewRouter() chi.Router {
	router := chi.NewRouter()
	router.Use(service.log.WithLogging())
	router.Post("/api/auth", service.handlers.authHandler)
	router.Post("/api/jobs/monthly-rewards", service.handlers.monthlyRewardsHandler)
	router.Route("/", func(r chi.Router) {
		r.Use(auth.CheckJWTMiddleware())
		r.Get("/api/info", service.handlers.infoHandler)
		r.Get("/api/cards/today", service.handlers.todayCardHandler)
		r.Post("/api/cards/scratch", service.handlers.scratchHandler)
		r.Post("/api/cards/bonus", service.handlers.bonusCardHandler)
		r.Post("/api/games/time-trial", service.handlers.gameResultHandler)
	})
	return router
}
