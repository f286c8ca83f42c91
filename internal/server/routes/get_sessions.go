package routes

import (
	"net/http"

	"github.com/loreforge/loreforge/backend/internal/server/middleware"
	"github.com/loreforge/loreforge/backend/pkg/graph"

	"github.com/labstack/echo/v4"
)

// GetSessionsHandler lists a campaign's sessions.
func GetSessionsHandler(c echo.Context) error {
	type getSessionsParams struct {
		CampaignID string `param:"id" validate:"required"`
	}
	type getSessionsResponse struct {
		Message  string          `json:"message"`
		Sessions []graph.Session `json:"sessions"`
		Total    int64           `json:"total"`
	}

	params := new(getSessionsParams)
	if err := c.Bind(params); err != nil {
		return c.JSON(http.StatusBadRequest, getSessionsResponse{Message: "Invalid request params"})
	}
	if err := c.Validate(params); err != nil {
		return c.JSON(http.StatusBadRequest, getSessionsResponse{Message: "Invalid request params"})
	}

	cc := c.(*middleware.AppContext)
	page, err := cc.App.Store.ListSessions(c.Request().Context(), cc.ActorID(), params.CampaignID, listOptions(c))
	if err != nil {
		return errorJSON(c, err)
	}

	return c.JSON(http.StatusOK, getSessionsResponse{
		Message:  "OK",
		Sessions: page.Items,
		Total:    page.Total,
	})
}

// GetSessionHandler returns one session.
func GetSessionHandler(c echo.Context) error {
	type getSessionParams struct {
		ID string `param:"id" validate:"required"`
	}
	type getSessionResponse struct {
		Message string         `json:"message"`
		Session *graph.Session `json:"session,omitempty"`
	}

	params := new(getSessionParams)
	if err := c.Bind(params); err != nil {
		return c.JSON(http.StatusBadRequest, getSessionResponse{Message: "Invalid request params"})
	}
	if err := c.Validate(params); err != nil {
		return c.JSON(http.StatusBadRequest, getSessionResponse{Message: "Invalid request params"})
	}

	cc := c.(*middleware.AppContext)
	session, err := cc.App.Store.GetSession(c.Request().Context(), cc.ActorID(), params.ID)
	if err != nil {
		return errorJSON(c, err)
	}

	return c.JSON(http.StatusOK, getSessionResponse{
		Message: "OK",
		Session: &session,
	})
}
