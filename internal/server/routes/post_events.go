package routes

import (
	"net/http"

	"github.com/loreforge/loreforge/backend/internal/server/middleware"
	"github.com/loreforge/loreforge/backend/pkg/graph"

	"github.com/labstack/echo/v4"
)

// CreateEventHandler records an event on a campaign's timeline.
func CreateEventHandler(c echo.Context) error {
	type createEventBody struct {
		CampaignID  string `param:"id" validate:"required"`
		Title       string `json:"title" validate:"required"`
		Description string `json:"description"`
		EventDate   string `json:"event_date"`
	}
	type createEventResponse struct {
		Message string       `json:"message"`
		Event   *graph.Event `json:"event,omitempty"`
	}

	data := new(createEventBody)
	if err := c.Bind(data); err != nil {
		return c.JSON(http.StatusBadRequest, createEventResponse{Message: "Invalid request body"})
	}
	if err := c.Validate(data); err != nil {
		return c.JSON(http.StatusBadRequest, createEventResponse{Message: "Invalid request body"})
	}

	cc := c.(*middleware.AppContext)
	event, err := cc.App.Store.CreateEvent(c.Request().Context(), cc.ActorID(), graph.CreateEventInput{
		CampaignID:  data.CampaignID,
		Title:       data.Title,
		Description: data.Description,
		EventDate:   data.EventDate,
	})
	if err != nil {
		return errorJSON(c, err)
	}

	return c.JSON(http.StatusOK, createEventResponse{
		Message: "Event created",
		Event:   &event,
	})
}
