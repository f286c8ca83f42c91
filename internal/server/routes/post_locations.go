package routes

import (
	"net/http"

	"github.com/loreforge/loreforge/backend/internal/server/middleware"
	"github.com/loreforge/loreforge/backend/pkg/graph"

	"github.com/labstack/echo/v4"
)

// CreateLocationHandler adds a location to a campaign, optionally under a
// parent location in the same campaign.
func CreateLocationHandler(c echo.Context) error {
	type createLocationBody struct {
		CampaignID       string `param:"id" validate:"required"`
		Name             string `json:"name" validate:"required"`
		Description      string `json:"description"`
		LocationType     string `json:"location_type"`
		ParentLocationID string `json:"parent_location_id"`
	}
	type createLocationResponse struct {
		Message  string          `json:"message"`
		Location *graph.Location `json:"location,omitempty"`
	}

	data := new(createLocationBody)
	if err := c.Bind(data); err != nil {
		return c.JSON(http.StatusBadRequest, createLocationResponse{Message: "Invalid request body"})
	}
	if err := c.Validate(data); err != nil {
		return c.JSON(http.StatusBadRequest, createLocationResponse{Message: "Invalid request body"})
	}

	cc := c.(*middleware.AppContext)
	location, err := cc.App.Store.CreateLocation(c.Request().Context(), cc.ActorID(), graph.CreateLocationInput{
		CampaignID:       data.CampaignID,
		Name:             data.Name,
		Description:      data.Description,
		LocationType:     data.LocationType,
		ParentLocationID: data.ParentLocationID,
	})
	if err != nil {
		return errorJSON(c, err)
	}

	return c.JSON(http.StatusOK, createLocationResponse{
		Message:  "Location created",
		Location: &location,
	})
}
