package wire

import (
	"net/http"

	"screenix/internal/adaptor"
	"screenix/internal/data/repository"
	"screenix/internal/usecase"
	"screenix/pkg/middleware"
	"screenix/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type App struct {
	Router *chi.Mux
}

// Wiring builds the service graph and mounts every route on one router.
func Wiring(repo *repository.Repository, clients *usecase.Clients, config *utils.Config, logger *zap.Logger) *App {
	service := usecase.NewService(repo, clients, config, logger)
	handler := adaptor.NewHandler(service, logger)

	router := setupRouter(handler, logger)

	return &App{
		Router: router,
	}
}

func setupRouter(handler *adaptor.Handler, logger *zap.Logger) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recover(logger))
	r.Use(middleware.CORS())

	r.Route("/api/v1", func(r chi.Router) {
		wireMovie(r, handler.Movie)
		wireRoom(r, handler.Room)
		wireTicket(r, handler.Ticket)
		wireScreening(r, handler.Screening, handler.Reservation)
	})

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	return r
}
