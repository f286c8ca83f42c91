package routes

import (
	"net/http"

	"github.com/loreforge/loreforge/backend/internal/server/middleware"
	"github.com/loreforge/loreforge/backend/pkg/graph"

	"github.com/labstack/echo/v4"
)

// DeleteEventHandler removes an event. Blocked while relationships still
// reference it.
func DeleteEventHandler(c echo.Context) error {
	type deleteEventParams struct {
		ID string `param:"id" validate:"required"`
	}
	type deleteEventResponse struct {
		Message string `json:"message"`
	}

	params := new(deleteEventParams)
	if err := c.Bind(params); err != nil {
		return c.JSON(http.StatusBadRequest, deleteEventResponse{Message: "Invalid request params"})
	}
	if err := c.Validate(params); err != nil {
		return c.JSON(http.StatusBadRequest, deleteEventResponse{Message: "Invalid request params"})
	}

	cc := c.(*middleware.AppContext)
	if err := cc.App.Store.DeleteEvent(c.Request().Context(), cc.ActorID(), params.ID); err != nil {
		return errorJSON(c, err)
	}

	publishPurge(c, params.ID, graph.KindEvent)

	return c.JSON(http.StatusOK, deleteEventResponse{
		Message: "Event deleted",
	})
}
