package routes

import (
	"net/http"

	"github.com/loreforge/loreforge/backend/internal/server/middleware"
	"github.com/loreforge/loreforge/backend/pkg/graph"

	"github.com/labstack/echo/v4"
)

// DeleteWorldHandler removes a world. Blocked while campaigns still point at
// it.
func DeleteWorldHandler(c echo.Context) error {
	type deleteWorldParams struct {
		ID string `param:"id" validate:"required"`
	}
	type deleteWorldResponse struct {
		Message string `json:"message"`
	}

	params := new(deleteWorldParams)
	if err := c.Bind(params); err != nil {
		return c.JSON(http.StatusBadRequest, deleteWorldResponse{Message: "Invalid request params"})
	}
	if err := c.Validate(params); err != nil {
		return c.JSON(http.StatusBadRequest, deleteWorldResponse{Message: "Invalid request params"})
	}

	cc := c.(*middleware.AppContext)
	if err := cc.App.Store.DeleteWorld(c.Request().Context(), cc.ActorID(), params.ID); err != nil {
		return errorJSON(c, err)
	}

	publishPurge(c, params.ID, graph.KindWorld)

	return c.JSON(http.StatusOK, deleteWorldResponse{
		Message: "World deleted",
	})
}
