package routes

import (
	"net/http"

	"github.com/loreforge/loreforge/backend/internal/server/middleware"
	"github.com/loreforge/loreforge/backend/pkg/graph"

	"github.com/labstack/echo/v4"
)

// EditSessionHandler updates a session.
func EditSessionHandler(c echo.Context) error {
	type editSessionBody struct {
		ID            string  `param:"id" validate:"required"`
		Title         *string `json:"title"`
		Summary       *string `json:"summary"`
		SessionNumber *int    `json:"session_number"`
		SessionDate   *string `json:"session_date"`
	}
	type editSessionResponse struct {
		Message string         `json:"message"`
		Session *graph.Session `json:"session,omitempty"`
	}

	data := new(editSessionBody)
	if err := c.Bind(data); err != nil {
		return c.JSON(http.StatusBadRequest, editSessionResponse{Message: "Invalid request body"})
	}
	if err := c.Validate(data); err != nil {
		return c.JSON(http.StatusBadRequest, editSessionResponse{Message: "Invalid request body"})
	}

	cc := c.(*middleware.AppContext)
	session, err := cc.App.Store.UpdateSession(c.Request().Context(), cc.ActorID(), data.ID, graph.UpdateSessionInput{
		Title:         data.Title,
		Summary:       data.Summary,
		SessionNumber: data.SessionNumber,
		SessionDate:   data.SessionDate,
	})
	if err != nil {
		return errorJSON(c, err)
	}

	return c.JSON(http.StatusOK, editSessionResponse{
		Message: "Session updated",
		Session: &session,
	})
}
