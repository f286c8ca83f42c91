package routes

import (
	"net/http"

	"github.com/loreforge/loreforge/backend/internal/server/middleware"
	"github.com/loreforge/loreforge/backend/pkg/graph"

	"github.com/labstack/echo/v4"
)

// CreateCampaignHandler creates a campaign with the caller as its owner. The
// world link is optional.
func CreateCampaignHandler(c echo.Context) error {
	type createCampaignBody struct {
		Name        string `json:"name" validate:"required"`
		Description string `json:"description"`
		WorldID     string `json:"world_id"`
	}
	type createCampaignResponse struct {
		Message  string          `json:"message"`
		Campaign *graph.Campaign `json:"campaign,omitempty"`
	}

	data := new(createCampaignBody)
	if err := c.Bind(data); err != nil {
		return c.JSON(http.StatusBadRequest, createCampaignResponse{Message: "Invalid request body"})
	}
	if err := c.Validate(data); err != nil {
		return c.JSON(http.StatusBadRequest, createCampaignResponse{Message: "Invalid request body"})
	}

	cc := c.(*middleware.AppContext)
	campaign, err := cc.App.Store.CreateCampaign(c.Request().Context(), cc.ActorID(), graph.CreateCampaignInput{
		Name:        data.Name,
		Description: data.Description,
		WorldID:     data.WorldID,
	})
	if err != nil {
		return errorJSON(c, err)
	}

	return c.JSON(http.StatusOK, createCampaignResponse{
		Message: "Campaign created",
		Campaign: &campaign,
	})
}

// AddUserToCampaignHandler adds or re-roles a member. Owner only; adding an
// existing member overwrites their role.
func AddUserToCampaignHandler(c echo.Context) error {
	type addUserBody struct {
		CampaignID string `param:"id" validate:"required"`
		UserID     string `json:"user_id" validate:"required"`
		Role       string `json:"role" validate:"required"`
	}
	type addUserResponse struct {
		Message    string            `json:"message"`
		Membership *graph.Membership `json:"membership,omitempty"`
	}

	data := new(addUserBody)
	if err := c.Bind(data); err != nil {
		return c.JSON(http.StatusBadRequest, addUserResponse{Message: "Invalid request body"})
	}
	if err := c.Validate(data); err != nil {
		return c.JSON(http.StatusBadRequest, addUserResponse{Message: "Invalid request body"})
	}

	cc := c.(*middleware.AppContext)
	membership, err := cc.App.Store.AddUser(c.Request().Context(), cc.ActorID(), data.CampaignID, data.UserID, graph.Role(data.Role))
	if err != nil {
		return errorJSON(c, err)
	}

	return c.JSON(http.StatusOK, addUserResponse{
		Message:    "User added to campaign",
		Membership: &membership,
	})
}
