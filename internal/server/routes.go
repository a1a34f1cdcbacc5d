package server

import (
	"github.com/gofiber/fiber/v3/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"navmenu/internal/handlers"
)

// MenuService serves the menu tree and reports its own readiness.
type MenuService interface {
	handlers.MenuSource
	handlers.ReadinessChecker
}

// RegisterRoutes registers all application routes.
func (s *Server) RegisterRoutes(menus MenuService) {
	menuHandler := handlers.NewMenuHandler(menus, s.Cfg)
	probeHandler := handlers.NewProbeHandler(menus)

	s.App.Get("/", menuHandler.Greeting)
	s.App.Get("/data", menuHandler.Data)

	s.App.Get("/healthz", probeHandler.Liveness)
	s.App.Get("/readyz", probeHandler.Readiness)
	s.App.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))
}
