package routes

import (
	"net/http"

	"github.com/loreforge/loreforge/backend/internal/server/middleware"
	"github.com/loreforge/loreforge/backend/pkg/graph"

	"github.com/labstack/echo/v4"
)

// EditItemHandler updates an item.
func EditItemHandler(c echo.Context) error {
	type editItemBody struct {
		ID          string  `param:"id" validate:"required"`
		Name        *string `json:"name"`
		Description *string `json:"description"`
		ItemType    *string `json:"item_type"`
	}
	type editItemResponse struct {
		Message string      `json:"message"`
		Item    *graph.Item `json:"item,omitempty"`
	}

	data := new(editItemBody)
	if err := c.Bind(data); err != nil {
		return c.JSON(http.StatusBadRequest, editItemResponse{Message: "Invalid request body"})
	}
	if err := c.Validate(data); err != nil {
		return c.JSON(http.StatusBadRequest, editItemResponse{Message: "Invalid request body"})
	}

	cc := c.(*middleware.AppContext)
	item, err := cc.App.Store.UpdateItem(c.Request().Context(), cc.ActorID(), data.ID, graph.UpdateItemInput{
		Name:        data.Name,
		Description: data.Description,
		ItemType:    data.ItemType,
	})
	if err != nil {
		return errorJSON(c, err)
	}

	return c.JSON(http.StatusOK, editItemResponse{
		Message: "Item updated",
		Item:    &item,
	})
}
