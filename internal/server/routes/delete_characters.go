package routes

import (
	"net/http"

	"github.com/loreforge/loreforge/backend/internal/server/middleware"
	"github.com/loreforge/loreforge/backend/pkg/graph"

	"github.com/labstack/echo/v4"
)

// DeleteCharacterHandler removes a character. Blocked while relationships
// still reference it.
func DeleteCharacterHandler(c echo.Context) error {
	type deleteCharacterParams struct {
		ID string `param:"id" validate:"required"`
	}
	type deleteCharacterResponse struct {
		Message string `json:"message"`
	}

	params := new(deleteCharacterParams)
	if err := c.Bind(params); err != nil {
		return c.JSON(http.StatusBadRequest, deleteCharacterResponse{Message: "Invalid request params"})
	}
	if err := c.Validate(params); err != nil {
		return c.JSON(http.StatusBadRequest, deleteCharacterResponse{Message: "Invalid request params"})
	}

	cc := c.(*middleware.AppContext)
	if err := cc.App.Store.DeleteCharacter(c.Request().Context(), cc.ActorID(), params.ID); err != nil {
		return errorJSON(c, err)
	}

	publishPurge(c, params.ID, graph.KindCharacter)

	return c.JSON(http.StatusOK, deleteCharacterResponse{
		Message: "Character deleted",
	})
}
