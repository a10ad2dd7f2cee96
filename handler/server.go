package handler

import (
	"net/http"

	"lending/core"
	"lending/handler/hc"
	"lending/handler/rest"

	"github.com/fox-one/pkg/logger"
	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/rs/cors"
)

// Server api server
type Server struct {
	version string
	engine  core.LendingService
}

// New new api server
func New(version string, engine core.LendingService) Server {
	return Server{
		version: version,
		engine:  engine,
	}
}

// Handle build the root handler
func (s Server) Handle() http.Handler {
	mux := chi.NewMux()
	mux.Use(middleware.Recoverer)
	mux.Use(middleware.StripSlashes)
	mux.Use(middleware.Compress(5))
	mux.Use(cors.AllowAll().Handler)
	mux.Use(logger.WithRequestID)
	mux.Use(middleware.Logger)

	mux.Mount("/hc", hc.Handle(s.version))
	mux.Mount("/api", rest.Handle(s.engine))

	return mux
}
