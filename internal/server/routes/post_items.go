package routes

import (
	"net/http"

	"github.com/loreforge/loreforge/backend/internal/server/middleware"
	"github.com/loreforge/loreforge/backend/pkg/graph"

	"github.com/labstack/echo/v4"
)

// CreateItemHandler adds an item to a campaign.
func CreateItemHandler(c echo.Context) error {
	type createItemBody struct {
		CampaignID  string `param:"id" validate:"required"`
		Name        string `json:"name" validate:"required"`
		Description string `json:"description"`
		ItemType    string `json:"item_type"`
	}
	type createItemResponse struct {
		Message string      `json:"message"`
		Item    *graph.Item `json:"item,omitempty"`
	}

	data := new(createItemBody)
	if err := c.Bind(data); err != nil {
		return c.JSON(http.StatusBadRequest, createItemResponse{Message: "Invalid request body"})
	}
	if err := c.Validate(data); err != nil {
		return c.JSON(http.StatusBadRequest, createItemResponse{Message: "Invalid request body"})
	}

	cc := c.(*middleware.AppContext)
	item, err := cc.App.Store.CreateItem(c.Request().Context(), cc.ActorID(), graph.CreateItemInput{
		CampaignID:  data.CampaignID,
		Name:        data.Name,
		Description: data.Description,
		ItemType:    data.ItemType,
	})
	if err != nil {
		return errorJSON(c, err)
	}

	return c.JSON(http.StatusOK, createItemResponse{
		Message: "Item created",
		Item:    &item,
	})
}
