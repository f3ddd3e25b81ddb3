package router

import (
	"github.com/Totarae/Guestbook/internal/handlers"
	"github.com/Totarae/Guestbook/internal/middleware"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// NewRouter создаёт и настраивает маршрутизатор
func NewRouter(handler *handlers.Handler, logger *zap.Logger) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.LoggingMiddleware(logger))
	r.Use(middleware.GzipMiddleware)

	r.MethodNotAllowed(handler.MethodNotAllowed)
	r.NotFound(handler.NotFound)

	r.Get("/api/guestbook", handler.ListEntries)
	r.Post("/api/guestbook", handler.CreateEntry)
	r.Post("/api/admin", handler.Admin)
	r.Get("/ping", handler.Ping)
	return r
}
