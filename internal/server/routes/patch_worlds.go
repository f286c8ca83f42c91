package routes

import (
	"net/http"

	"github.com/loreforge/loreforge/backend/internal/server/middleware"
	"github.com/loreforge/loreforge/backend/pkg/graph"

	"github.com/labstack/echo/v4"
)

// EditWorldHandler updates a world. Only the creator may edit.
func EditWorldHandler(c echo.Context) error {
	type editWorldBody struct {
		ID          string  `param:"id" validate:"required"`
		Name        *string `json:"name"`
		Description *string `json:"description"`
		System      *string `json:"system"`
	}
	type editWorldResponse struct {
		Message string       `json:"message"`
		World   *graph.World `json:"world,omitempty"`
	}

	data := new(editWorldBody)
	if err := c.Bind(data); err != nil {
		return c.JSON(http.StatusBadRequest, editWorldResponse{Message: "Invalid request body"})
	}
	if err := c.Validate(data); err != nil {
		return c.JSON(http.StatusBadRequest, editWorldResponse{Message: "Invalid request body"})
	}

	cc := c.(*middleware.AppContext)
	world, err := cc.App.Store.UpdateWorld(c.Request().Context(), cc.ActorID(), data.ID, graph.UpdateWorldInput{
		Name:        data.Name,
		Description: data.Description,
		System:      data.System,
	})
	if err != nil {
		return errorJSON(c, err)
	}

	return c.JSON(http.StatusOK, editWorldResponse{
		Message: "World updated",
		World:   &world,
	})
}
