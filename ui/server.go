// Package ui serves the dashboard page and the JSON endpoints backing
// its widgets. It owns widget wiring only; all chart computation lives
// in the app package.
package ui

import (
	"embed"
	"html/template"
	"log"

	"transitdash/app"
	"transitdash/internal/store"

	"github.com/gin-gonic/gin"
	"github.com/gomarkdown/markdown"
)

//go:embed templates/* about.md
var embeddedFiles embed.FS

// Server represents the dashboard web server
type Server struct {
	router    *gin.Engine
	views     *app.Views
	store     *store.Store
	templates *template.Template
	aboutHTML template.HTML
}

// NewServer creates the dashboard server for a loaded dataset store.
func NewServer(s *store.Store) (*Server, error) {
	templates, err := template.ParseFS(embeddedFiles, "templates/*.html")
	if err != nil {
		return nil, err
	}

	server := &Server{
		router:    gin.Default(),
		views:     app.NewViews(s),
		store:     s,
		templates: templates,
	}

	if about, err := embeddedFiles.ReadFile("about.md"); err == nil {
		server.aboutHTML = template.HTML(markdown.ToHTML(about, nil, nil))
	} else {
		log.Printf("[Server] about.md not embedded: %v", err)
	}

	server.setupRoutes()
	return server, nil
}

func (s *Server) setupRoutes() {
	s.router.SetHTMLTemplate(s.templates)

	s.router.GET("/", s.handleDashboard)

	api := s.router.Group("/api")
	{
		api.GET("/datasets", s.handleDatasets)
		api.GET("/options/columns", s.handleColumnOptions)
		api.GET("/options/vehicle-types", s.handleVehicleTypeOptions)

		charts := api.Group("/charts")
		{
			charts.GET("/heatmap", s.handleHeatmap)
			charts.GET("/transport", s.handleTransport)
			charts.GET("/vehicles", s.handleVehicles)
			charts.GET("/bike-map", s.handleBikeMap)
			charts.GET("/commute", s.handleCommute)
		}
	}
}

// Run starts the server on the given port.
func (s *Server) Run(port string) error {
	log.Printf("[Server] Urban Transportation Insights Dashboard listening on :%s", port)
	return s.router.Run(":" + port)
}

// Router exposes the gin engine for tests.
func (s *Server) Router() *gin.Engine {
	return s.router
}
