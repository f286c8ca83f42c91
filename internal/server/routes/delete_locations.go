package routes

import (
	"net/http"

	"github.com/loreforge/loreforge/backend/internal/server/middleware"
	"github.com/loreforge/loreforge/backend/pkg/graph"

	"github.com/labstack/echo/v4"
)

// DeleteLocationHandler removes a location. Blocked while child locations or
// relationships still reference it.
func DeleteLocationHandler(c echo.Context) error {
	type deleteLocationParams struct {
		ID string `param:"id" validate:"required"`
	}
	type deleteLocationResponse struct {
		Message string `json:"message"`
	}

	params := new(deleteLocationParams)
	if err := c.Bind(params); err != nil {
		return c.JSON(http.StatusBadRequest, deleteLocationResponse{Message: "Invalid request params"})
	}
	if err := c.Validate(params); err != nil {
		return c.JSON(http.StatusBadRequest, deleteLocationResponse{Message: "Invalid request params"})
	}

	cc := c.(*middleware.AppContext)
	if err := cc.App.Store.DeleteLocation(c.Request().Context(), cc.ActorID(), params.ID); err != nil {
		return errorJSON(c, err)
	}

	publishPurge(c, params.ID, graph.KindLocation)

	return c.JSON(http.StatusOK, deleteLocationResponse{
		Message: "Location deleted",
	})
}
