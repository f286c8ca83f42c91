package routes

import (
	"net/http"

	"github.com/loreforge/loreforge/backend/internal/server/middleware"
	"github.com/loreforge/loreforge/backend/pkg/graph"

	"github.com/labstack/echo/v4"
)

// EditCampaignHandler updates a campaign. Setting world_id moves the campaign
// between worlds; the name must stay unique within the target world.
func EditCampaignHandler(c echo.Context) error {
	type editCampaignBody struct {
		ID          string  `param:"id" validate:"required"`
		Name        *string `json:"name"`
		Description *string `json:"description"`
		WorldID     *string `json:"world_id"`
	}
	type editCampaignResponse struct {
		Message  string          `json:"message"`
		Campaign *graph.Campaign `json:"campaign,omitempty"`
	}

	data := new(editCampaignBody)
	if err := c.Bind(data); err != nil {
		return c.JSON(http.StatusBadRequest, editCampaignResponse{Message: "Invalid request body"})
	}
	if err := c.Validate(data); err != nil {
		return c.JSON(http.StatusBadRequest, editCampaignResponse{Message: "Invalid request body"})
	}

	cc := c.(*middleware.AppContext)
	campaign, err := cc.App.Store.UpdateCampaign(c.Request().Context(), cc.ActorID(), data.ID, graph.UpdateCampaignInput{
		Name:        data.Name,
		Description: data.Description,
		WorldID:     data.WorldID,
	})
	if err != nil {
		return errorJSON(c, err)
	}

	return c.JSON(http.StatusOK, editCampaignResponse{
		Message:  "Campaign updated",
		Campaign: &campaign,
	})
}
