package routes

import (
	"net/http"

	"github.com/loreforge/loreforge/backend/internal/server/middleware"
	"github.com/loreforge/loreforge/backend/pkg/graph"

	"github.com/labstack/echo/v4"
)

// GetCampaignsHandler lists the campaigns the caller belongs to, optionally
// restricted to one world.
func GetCampaignsHandler(c echo.Context) error {
	type getCampaignsResponse struct {
		Message   string           `json:"message"`
		Campaigns []graph.Campaign `json:"campaigns"`
		Total     int64            `json:"total"`
	}

	cc := c.(*middleware.AppContext)
	filter := graph.CampaignFilter{
		WorldID:  c.QueryParam("world_id"),
		MemberID: cc.ActorID(),
	}
	page, err := cc.App.Store.ListCampaigns(c.Request().Context(), cc.ActorID(), filter, listOptions(c))
	if err != nil {
		return errorJSON(c, err)
	}

	return c.JSON(http.StatusOK, getCampaignsResponse{
		Message:   "OK",
		Campaigns: page.Items,
		Total:     page.Total,
	})
}

// GetCampaignHandler returns one campaign. Participants only.
func GetCampaignHandler(c echo.Context) error {
	type getCampaignParams struct {
		ID string `param:"id" validate:"required"`
	}
	type getCampaignResponse struct {
		Message  string          `json:"message"`
		Campaign *graph.Campaign `json:"campaign,omitempty"`
	}

	params := new(getCampaignParams)
	if err := c.Bind(params); err != nil {
		return c.JSON(http.StatusBadRequest, getCampaignResponse{Message: "Invalid request params"})
	}
	if err := c.Validate(params); err != nil {
		return c.JSON(http.StatusBadRequest, getCampaignResponse{Message: "Invalid request params"})
	}

	cc := c.(*middleware.AppContext)
	campaign, err := cc.App.Store.GetCampaign(c.Request().Context(), cc.ActorID(), params.ID)
	if err != nil {
		return errorJSON(c, err)
	}

	return c.JSON(http.StatusOK, getCampaignResponse{
		Message:  "OK",
		Campaign: &campaign,
	})
}

// GetCampaignUsersHandler lists a campaign's members with their roles.
func GetCampaignUsersHandler(c echo.Context) error {
	type getUsersParams struct {
		ID string `param:"id" validate:"required"`
	}
	type getUsersResponse struct {
		Message string             `json:"message"`
		Users   []graph.Membership `json:"users"`
	}

	params := new(getUsersParams)
	if err := c.Bind(params); err != nil {
		return c.JSON(http.StatusBadRequest, getUsersResponse{Message: "Invalid request params"})
	}
	if err := c.Validate(params); err != nil {
		return c.JSON(http.StatusBadRequest, getUsersResponse{Message: "Invalid request params"})
	}

	cc := c.(*middleware.AppContext)
	users, err := cc.App.Store.GetUsers(c.Request().Context(), cc.ActorID(), params.ID)
	if err != nil {
		return errorJSON(c, err)
	}

	return c.JSON(http.StatusOK, getUsersResponse{
		Message: "OK",
		Users:   users,
	})
}

// GetCampaignStatisticsHandler returns a count snapshot over everything the
// campaign contains.
func GetCampaignStatisticsHandler(c echo.Context) error {
	type getStatisticsParams struct {
		ID string `param:"id" validate:"required"`
	}
	type getStatisticsResponse struct {
		Message    string            `json:"message"`
		Statistics *graph.Statistics `json:"statistics,omitempty"`
	}

	params := new(getStatisticsParams)
	if err := c.Bind(params); err != nil {
		return c.JSON(http.StatusBadRequest, getStatisticsResponse{Message: "Invalid request params"})
	}
	if err := c.Validate(params); err != nil {
		return c.JSON(http.StatusBadRequest, getStatisticsResponse{Message: "Invalid request params"})
	}

	cc := c.(*middleware.AppContext)
	stats, err := cc.App.Store.GetStatistics(c.Request().Context(), cc.ActorID(), params.ID)
	if err != nil {
		return errorJSON(c, err)
	}

	return c.JSON(http.StatusOK, getStatisticsResponse{
		Message:    "OK",
		Statistics: &stats,
	})
}
