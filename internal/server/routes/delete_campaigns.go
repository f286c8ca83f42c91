package routes

import (
	"net/http"

	"github.com/loreforge/loreforge/backend/internal/server/middleware"
	"github.com/loreforge/loreforge/backend/pkg/graph"

	"github.com/labstack/echo/v4"
)

// DeleteCampaignHandler removes a campaign. Owner only; blocked while the
// campaign still contains entities.
func DeleteCampaignHandler(c echo.Context) error {
	type deleteCampaignParams struct {
		ID string `param:"id" validate:"required"`
	}
	type deleteCampaignResponse struct {
		Message string `json:"message"`
	}

	params := new(deleteCampaignParams)
	if err := c.Bind(params); err != nil {
		return c.JSON(http.StatusBadRequest, deleteCampaignResponse{Message: "Invalid request params"})
	}
	if err := c.Validate(params); err != nil {
		return c.JSON(http.StatusBadRequest, deleteCampaignResponse{Message: "Invalid request params"})
	}

	cc := c.(*middleware.AppContext)
	if err := cc.App.Store.DeleteCampaign(c.Request().Context(), cc.ActorID(), params.ID); err != nil {
		return errorJSON(c, err)
	}

	publishPurge(c, params.ID, graph.KindCampaign)

	return c.JSON(http.StatusOK, deleteCampaignResponse{
		Message: "Campaign deleted",
	})
}

// RemoveUserFromCampaignHandler removes a member. Owner only; removing the
// campaign's only owner is rejected.
func RemoveUserFromCampaignHandler(c echo.Context) error {
	type removeUserParams struct {
		CampaignID string `param:"id" validate:"required"`
		UserID     string `param:"user_id" validate:"required"`
	}
	type removeUserResponse struct {
		Message string `json:"message"`
	}

	params := new(removeUserParams)
	if err := c.Bind(params); err != nil {
		return c.JSON(http.StatusBadRequest, removeUserResponse{Message: "Invalid request params"})
	}
	if err := c.Validate(params); err != nil {
		return c.JSON(http.StatusBadRequest, removeUserResponse{Message: "Invalid request params"})
	}

	cc := c.(*middleware.AppContext)
	if err := cc.App.Store.RemoveUser(c.Request().Context(), cc.ActorID(), params.CampaignID, params.UserID); err != nil {
		return errorJSON(c, err)
	}

	return c.JSON(http.StatusOK, removeUserResponse{
		Message: "User removed from campaign",
	})
}
