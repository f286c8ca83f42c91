package routes

import (
	"net/http"

	"github.com/loreforge/loreforge/backend/internal/server/middleware"
	"github.com/loreforge/loreforge/backend/pkg/graph"

	"github.com/labstack/echo/v4"
)

// EditEventHandler updates an event.
func EditEventHandler(c echo.Context) error {
	type editEventBody struct {
		ID          string  `param:"id" validate:"required"`
		Title       *string `json:"title"`
		Description *string `json:"description"`
		EventDate   *string `json:"event_date"`
	}
	type editEventResponse struct {
		Message string       `json:"message"`
		Event   *graph.Event `json:"event,omitempty"`
	}

	data := new(editEventBody)
	if err := c.Bind(data); err != nil {
		return c.JSON(http.StatusBadRequest, editEventResponse{Message: "Invalid request body"})
	}
	if err := c.Validate(data); err != nil {
		return c.JSON(http.StatusBadRequest, editEventResponse{Message: "Invalid request body"})
	}

	cc := c.(*middleware.AppContext)
	event, err := cc.App.Store.UpdateEvent(c.Request().Context(), cc.ActorID(), data.ID, graph.UpdateEventInput{
		Title:       data.Title,
		Description: data.Description,
		EventDate:   data.EventDate,
	})
	if err != nil {
		return errorJSON(c, err)
	}

	return c.JSON(http.StatusOK, editEventResponse{
		Message: "Event updated",
		Event:   &event,
	})
}
