package routes

import (
	"net/http"

	"github.com/loreforge/loreforge/backend/internal/server/middleware"
	"github.com/loreforge/loreforge/backend/pkg/graph"

	"github.com/labstack/echo/v4"
)

// GetItemsHandler lists a campaign's items, optionally filtered by type.
func GetItemsHandler(c echo.Context) error {
	type getItemsParams struct {
		CampaignID string `param:"id" validate:"required"`
	}
	type getItemsResponse struct {
		Message string       `json:"message"`
		Items   []graph.Item `json:"items"`
		Total   int64        `json:"total"`
	}

	params := new(getItemsParams)
	if err := c.Bind(params); err != nil {
		return c.JSON(http.StatusBadRequest, getItemsResponse{Message: "Invalid request params"})
	}
	if err := c.Validate(params); err != nil {
		return c.JSON(http.StatusBadRequest, getItemsResponse{Message: "Invalid request params"})
	}

	cc := c.(*middleware.AppContext)
	filter := graph.ItemFilter{
		ItemType: c.QueryParam("item_type"),
	}
	page, err := cc.App.Store.ListItems(c.Request().Context(), cc.ActorID(), params.CampaignID, filter, listOptions(c))
	if err != nil {
		return errorJSON(c, err)
	}

	return c.JSON(http.StatusOK, getItemsResponse{
		Message: "OK",
		Items:   page.Items,
		Total:   page.Total,
	})
}

// GetItemHandler returns one item.
func GetItemHandler(c echo.Context) error {
	type getItemParams struct {
		ID string `param:"id" validate:"required"`
	}
	type getItemResponse struct {
		Message string      `json:"message"`
		Item    *graph.Item `json:"item,omitempty"`
	}

	params := new(getItemParams)
	if err := c.Bind(params); err != nil {
		return c.JSON(http.StatusBadRequest, getItemResponse{Message: "Invalid request params"})
	}
	if err := c.Validate(params); err != nil {
		return c.JSON(http.StatusBadRequest, getItemResponse{Message: "Invalid request params"})
	}

	cc := c.(*middleware.AppContext)
	item, err := cc.App.Store.GetItem(c.Request().Context(), cc.ActorID(), params.ID)
	if err != nil {
		return errorJSON(c, err)
	}

	return c.JSON(http.StatusOK, getItemResponse{
		Message: "OK",
		Item:    &item,
	})
}
