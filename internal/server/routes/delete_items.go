package routes

import (
	"net/http"

	"github.com/loreforge/loreforge/backend/internal/server/middleware"
	"github.com/loreforge/loreforge/backend/pkg/graph"

	"github.com/labstack/echo/v4"
)

// DeleteItemHandler removes an item. Blocked while relationships still
// reference it.
func DeleteItemHandler(c echo.Context) error {
	type deleteItemParams struct {
		ID string `param:"id" validate:"required"`
	}
	type deleteItemResponse struct {
		Message string `json:"message"`
	}

	params := new(deleteItemParams)
	if err := c.Bind(params); err != nil {
		return c.JSON(http.StatusBadRequest, deleteItemResponse{Message: "Invalid request params"})
	}
	if err := c.Validate(params); err != nil {
		return c.JSON(http.StatusBadRequest, deleteItemResponse{Message: "Invalid request params"})
	}

	cc := c.(*middleware.AppContext)
	if err := cc.App.Store.DeleteItem(c.Request().Context(), cc.ActorID(), params.ID); err != nil {
		return errorJSON(c, err)
	}

	publishPurge(c, params.ID, graph.KindItem)

	return c.JSON(http.StatusOK, deleteItemResponse{
		Message: "Item deleted",
	})
}
