package http

import (
	"database/sql"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"graphbook/internal/handlers"
	"graphbook/internal/service"
)

// Deps holds dependencies for the HTTP router.
type Deps struct {
	GraphService service.GraphService
	DB           *sql.DB

	// GraphWidth and GraphHeight size the server-rendered SVG viewport.
	GraphWidth  float64
	GraphHeight float64
}

// NewRouter creates a new HTTP router with the provided dependencies.
func NewRouter(deps *Deps) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(LoggerMiddleware)
	r.Use(CORS)

	nodeHandler := handlers.NewNodeHandler(deps.GraphService)
	edgeHandler := handlers.NewEdgeHandler(deps.GraphService)
	fileHandler := handlers.NewFileHandler(deps.GraphService)
	graphHandler := handlers.NewGraphHandler(deps.GraphService, deps.GraphWidth, deps.GraphHeight)
	nodePageHandler := handlers.NewNodePageHandler(deps.GraphService)
	healthHandler := handlers.NewHealthHandler(deps.DB)

	r.Route("/api", func(r chi.Router) {
		r.Method(http.MethodGet, "/health", healthHandler)

		r.Route("/nodes", func(r chi.Router) {
			r.Get("/", nodeHandler.List)
			r.Post("/", nodeHandler.Create)
			r.Get("/{id}", nodeHandler.Get)
			r.Patch("/{id}", nodeHandler.Update)
			r.Patch("/{id}/position", nodeHandler.UpdatePosition)
			r.Delete("/{id}", nodeHandler.Delete)
		})

		r.Route("/edges", func(r chi.Router) {
			r.Get("/", edgeHandler.List)
			r.Post("/", edgeHandler.Create)
			r.Delete("/", edgeHandler.DeleteByNode)
			r.Delete("/{id}", edgeHandler.Delete)
		})

		r.Route("/files", func(r chi.Router) {
			r.Get("/", fileHandler.List)
			r.Post("/", fileHandler.Create)
			r.Get("/{id}", fileHandler.Get)
			r.Patch("/{id}", fileHandler.Update)
			r.Delete("/{id}", fileHandler.Delete)
			r.Get("/{id}/graph", graphHandler.Get)
			r.Post("/{id}/nodes", fileHandler.AddNode)
			r.Delete("/{id}/nodes/{nodeId}", fileHandler.RemoveNode)
		})
	})

	// HTML and SVG surfaces outside the JSON API.
	r.Method(http.MethodGet, "/nodes/{id}/page", nodePageHandler)
	r.Get("/files/{id}/graph.svg", graphHandler.SVG)

	return r
}
