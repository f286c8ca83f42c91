package routes

import (
	"net/http"

	"github.com/loreforge/loreforge/backend/internal/server/middleware"
	"github.com/loreforge/loreforge/backend/pkg/graph"

	"github.com/labstack/echo/v4"
)

// GetWorldsHandler lists worlds, optionally filtered to one creator.
func GetWorldsHandler(c echo.Context) error {
	type getWorldsResponse struct {
		Message string        `json:"message"`
		Worlds  []graph.World `json:"worlds"`
		Total   int64         `json:"total"`
	}

	cc := c.(*middleware.AppContext)
	filter := graph.WorldFilter{
		CreatedBy: c.QueryParam("created_by"),
	}
	page, err := cc.App.Store.ListWorlds(c.Request().Context(), cc.ActorID(), filter, listOptions(c))
	if err != nil {
		return errorJSON(c, err)
	}

	return c.JSON(http.StatusOK, getWorldsResponse{
		Message: "OK",
		Worlds:  page.Items,
		Total:   page.Total,
	})
}

// GetWorldHandler returns one world.
func GetWorldHandler(c echo.Context) error {
	type getWorldParams struct {
		ID string `param:"id" validate:"required"`
	}
	type getWorldResponse struct {
		Message string       `json:"message"`
		World   *graph.World `json:"world,omitempty"`
	}

	params := new(getWorldParams)
	if err := c.Bind(params); err != nil {
		return c.JSON(http.StatusBadRequest, getWorldResponse{Message: "Invalid request params"})
	}
	if err := c.Validate(params); err != nil {
		return c.JSON(http.StatusBadRequest, getWorldResponse{Message: "Invalid request params"})
	}

	cc := c.(*middleware.AppContext)
	world, err := cc.App.Store.GetWorld(c.Request().Context(), cc.ActorID(), params.ID)
	if err != nil {
		return errorJSON(c, err)
	}

	return c.JSON(http.StatusOK, getWorldResponse{
		Message: "OK",
		World:   &world,
	})
}
