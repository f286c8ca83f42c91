package routes

import (
	"net/http"

	"github.com/loreforge/loreforge/backend/internal/server/middleware"
	"github.com/loreforge/loreforge/backend/pkg/graph"

	"github.com/labstack/echo/v4"
)

// CreateSessionHandler records a new play session in a campaign.
func CreateSessionHandler(c echo.Context) error {
	type createSessionBody struct {
		CampaignID    string `param:"id" validate:"required"`
		Title         string `json:"title" validate:"required"`
		Summary       string `json:"summary"`
		SessionNumber int    `json:"session_number"`
		SessionDate   string `json:"session_date"`
	}
	type createSessionResponse struct {
		Message string         `json:"message"`
		Session *graph.Session `json:"session,omitempty"`
	}

	data := new(createSessionBody)
	if err := c.Bind(data); err != nil {
		return c.JSON(http.StatusBadRequest, createSessionResponse{Message: "Invalid request body"})
	}
	if err := c.Validate(data); err != nil {
		return c.JSON(http.StatusBadRequest, createSessionResponse{Message: "Invalid request body"})
	}

	cc := c.(*middleware.AppContext)
	session, err := cc.App.Store.CreateSession(c.Request().Context(), cc.ActorID(), graph.CreateSessionInput{
		CampaignID:    data.CampaignID,
		Title:         data.Title,
		Summary:       data.Summary,
		SessionNumber: data.SessionNumber,
		SessionDate:   data.SessionDate,
	})
	if err != nil {
		return errorJSON(c, err)
	}

	return c.JSON(http.StatusOK, createSessionResponse{
		Message: "Session created",
		Session: &session,
	})
}
