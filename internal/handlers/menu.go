package handlers

import (
	"context"
	"log/slog"

	"github.com/gofiber/fiber/v3"

	"navmenu/internal/config"
	"navmenu/internal/models"
)

// MenuSource provides the current menu tree.
type MenuSource interface {
	Get(ctx context.Context) ([]models.MenuNode, error)
}

// MenuHandler serves the sidebar menu tree.
type MenuHandler struct {
	menus MenuSource
	cfg   *config.Config
}

// NewMenuHandler creates a new menu handler.
func NewMenuHandler(menus MenuSource, cfg *config.Config) *MenuHandler {
	return &MenuHandler{menus: menus, cfg: cfg}
}

// Data returns the full menu tree as JSON.
// A pipeline failure is a 500 with the failure message as plain text.
func (h *MenuHandler) Data(c fiber.Ctx) error {
	tree, err := h.menus.Get(c.Context())
	if err != nil {
		slog.Error("failed to serve menu", "error", err)
		message := "failed to build menu"
		if h.cfg.ExposeErrors {
			message = err.Error()
		}
		return c.Status(fiber.StatusInternalServerError).SendString(message)
	}
	if tree == nil {
		tree = []models.MenuNode{}
	}
	return c.JSON(tree)
}

// Greeting handles "/" with a plaintext liveness string.
func (h *MenuHandler) Greeting(c fiber.Ctx) error {
	return c.SendString("Hello " + h.cfg.GreetName + "!")
}
