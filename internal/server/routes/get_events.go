package routes

import (
	"net/http"

	"github.com/loreforge/loreforge/backend/internal/server/middleware"
	"github.com/loreforge/loreforge/backend/pkg/graph"

	"github.com/labstack/echo/v4"
)

// GetEventsHandler lists a campaign's events.
func GetEventsHandler(c echo.Context) error {
	type getEventsParams struct {
		CampaignID string `param:"id" validate:"required"`
	}
	type getEventsResponse struct {
		Message string        `json:"message"`
		Events  []graph.Event `json:"events"`
		Total   int64         `json:"total"`
	}

	params := new(getEventsParams)
	if err := c.Bind(params); err != nil {
		return c.JSON(http.StatusBadRequest, getEventsResponse{Message: "Invalid request params"})
	}
	if err := c.Validate(params); err != nil {
		return c.JSON(http.StatusBadRequest, getEventsResponse{Message: "Invalid request params"})
	}

	cc := c.(*middleware.AppContext)
	page, err := cc.App.Store.ListEvents(c.Request().Context(), cc.ActorID(), params.CampaignID, listOptions(c))
	if err != nil {
		return errorJSON(c, err)
	}

	return c.JSON(http.StatusOK, getEventsResponse{
		Message: "OK",
		Events:  page.Items,
		Total:   page.Total,
	})
}

// GetEventHandler returns one event.
func GetEventHandler(c echo.Context) error {
	type getEventParams struct {
		ID string `param:"id" validate:"required"`
	}
	type getEventResponse struct {
		Message string       `json:"message"`
		Event   *graph.Event `json:"event,omitempty"`
	}

	params := new(getEventParams)
	if err := c.Bind(params); err != nil {
		return c.JSON(http.StatusBadRequest, getEventResponse{Message: "Invalid request params"})
	}
	if err := c.Validate(params); err != nil {
		return c.JSON(http.StatusBadRequest, getEventResponse{Message: "Invalid request params"})
	}

	cc := c.(*middleware.AppContext)
	event, err := cc.App.Store.GetEvent(c.Request().Context(), cc.ActorID(), params.ID)
	if err != nil {
		return errorJSON(c, err)
	}

	return c.JSON(http.StatusOK, getEventResponse{
		Message: "OK",
		Event:   &event,
	})
}
