package routes

import (
	"net/http"

	"github.com/loreforge/loreforge/backend/internal/server/middleware"
	"github.com/loreforge/loreforge/backend/pkg/graph"

	"github.com/labstack/echo/v4"
)

// GetLocationsHandler lists a campaign's locations, optionally filtered by
// type or parent.
func GetLocationsHandler(c echo.Context) error {
	type getLocationsParams struct {
		CampaignID string `param:"id" validate:"required"`
	}
	type getLocationsResponse struct {
		Message   string           `json:"message"`
		Locations []graph.Location `json:"locations"`
		Total     int64            `json:"total"`
	}

	params := new(getLocationsParams)
	if err := c.Bind(params); err != nil {
		return c.JSON(http.StatusBadRequest, getLocationsResponse{Message: "Invalid request params"})
	}
	if err := c.Validate(params); err != nil {
		return c.JSON(http.StatusBadRequest, getLocationsResponse{Message: "Invalid request params"})
	}

	cc := c.(*middleware.AppContext)
	filter := graph.LocationFilter{
		LocationType:     c.QueryParam("location_type"),
		ParentLocationID: c.QueryParam("parent_location_id"),
	}
	page, err := cc.App.Store.ListLocations(c.Request().Context(), cc.ActorID(), params.CampaignID, filter, listOptions(c))
	if err != nil {
		return errorJSON(c, err)
	}

	return c.JSON(http.StatusOK, getLocationsResponse{
		Message:   "OK",
		Locations: page.Items,
		Total:     page.Total,
	})
}

// GetLocationHandler returns one location.
func GetLocationHandler(c echo.Context) error {
	type getLocationParams struct {
		ID string `param:"id" validate:"required"`
	}
	type getLocationResponse struct {
		Message  string          `json:"message"`
		Location *graph.Location `json:"location,omitempty"`
	}

	params := new(getLocationParams)
	if err := c.Bind(params); err != nil {
		return c.JSON(http.StatusBadRequest, getLocationResponse{Message: "Invalid request params"})
	}
	if err := c.Validate(params); err != nil {
		return c.JSON(http.StatusBadRequest, getLocationResponse{Message: "Invalid request params"})
	}

	cc := c.(*middleware.AppContext)
	location, err := cc.App.Store.GetLocation(c.Request().Context(), cc.ActorID(), params.ID)
	if err != nil {
		return errorJSON(c, err)
	}

	return c.JSON(http.StatusOK, getLocationResponse{
		Message:  "OK",
		Location: &location,
	})
}
