package routes

import (
	"net/http"

	"github.com/loreforge/loreforge/backend/internal/server/middleware"
	"github.com/loreforge/loreforge/backend/pkg/graph"

	"github.com/labstack/echo/v4"
)

// DeleteSessionHandler removes a session. Blocked while relationships still
// reference it.
func DeleteSessionHandler(c echo.Context) error {
	type deleteSessionParams struct {
		ID string `param:"id" validate:"required"`
	}
	type deleteSessionResponse struct {
		Message string `json:"message"`
	}

	params := new(deleteSessionParams)
	if err := c.Bind(params); err != nil {
		return c.JSON(http.StatusBadRequest, deleteSessionResponse{Message: "Invalid request params"})
	}
	if err := c.Validate(params); err != nil {
		return c.JSON(http.StatusBadRequest, deleteSessionResponse{Message: "Invalid request params"})
	}

	cc := c.(*middleware.AppContext)
	if err := cc.App.Store.DeleteSession(c.Request().Context(), cc.ActorID(), params.ID); err != nil {
		return errorJSON(c, err)
	}

	publishPurge(c, params.ID, graph.KindSession)

	return c.JSON(http.StatusOK, deleteSessionResponse{
		Message: "Session deleted",
	})
}
