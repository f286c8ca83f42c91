package routes

import (
	"net/http"

	"github.com/loreforge/loreforge/backend/internal/server/middleware"
	"github.com/loreforge/loreforge/backend/pkg/graph"

	"github.com/labstack/echo/v4"
)

// EditLocationHandler updates a location. Setting parent_location_id to an
// empty string detaches the location from its parent.
func EditLocationHandler(c echo.Context) error {
	type editLocationBody struct {
		ID               string  `param:"id" validate:"required"`
		Name             *string `json:"name"`
		Description      *string `json:"description"`
		LocationType     *string `json:"location_type"`
		ParentLocationID *string `json:"parent_location_id"`
	}
	type editLocationResponse struct {
		Message  string          `json:"message"`
		Location *graph.Location `json:"location,omitempty"`
	}

	data := new(editLocationBody)
	if err := c.Bind(data); err != nil {
		return c.JSON(http.StatusBadRequest, editLocationResponse{Message: "Invalid request body"})
	}
	if err := c.Validate(data); err != nil {
		return c.JSON(http.StatusBadRequest, editLocationResponse{Message: "Invalid request body"})
	}

	cc := c.(*middleware.AppContext)
	location, err := cc.App.Store.UpdateLocation(c.Request().Context(), cc.ActorID(), data.ID, graph.UpdateLocationInput{
		Name:             data.Name,
		Description:      data.Description,
		LocationType:     data.LocationType,
		ParentLocationID: data.ParentLocationID,
	})
	if err != nil {
		return errorJSON(c, err)
	}

	return c.JSON(http.StatusOK, editLocationResponse{
		Message:  "Location updated",
		Location: &location,
	})
}
