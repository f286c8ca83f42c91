package routes

import (
	"net/http"

	"github.com/loreforge/loreforge/backend/internal/server/middleware"
	"github.com/loreforge/loreforge/backend/pkg/graph"

	"github.com/labstack/echo/v4"
)

// CreateWorldHandler creates a new world owned by the caller.
func CreateWorldHandler(c echo.Context) error {
	type createWorldBody struct {
		Name        string `json:"name" validate:"required"`
		Description string `json:"description"`
		System      string `json:"system"`
	}
	type createWorldResponse struct {
		Message string       `json:"message"`
		World   *graph.World `json:"world,omitempty"`
	}

	data := new(createWorldBody)
	if err := c.Bind(data); err != nil {
		return c.JSON(http.StatusBadRequest, createWorldResponse{Message: "Invalid request body"})
	}
	if err := c.Validate(data); err != nil {
		return c.JSON(http.StatusBadRequest, createWorldResponse{Message: "Invalid request body"})
	}

	cc := c.(*middleware.AppContext)
	world, err := cc.App.Store.CreateWorld(c.Request().Context(), cc.ActorID(), graph.CreateWorldInput{
		Name:        data.Name,
		Description: data.Description,
		System:      data.System,
	})
	if err != nil {
		return errorJSON(c, err)
	}

	return c.JSON(http.StatusOK, createWorldResponse{
		Message: "World created",
		World:   &world,
	})
}
