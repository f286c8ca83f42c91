package routes

import (
	"net/http"

	"github.com/loreforge/loreforge/backend/internal/server/middleware"
	"github.com/loreforge/loreforge/backend/pkg/graph"

	"github.com/labstack/echo/v4"
)

// DeleteRelationshipHandler removes a relationship. Nothing depends on a
// relationship node, so this always succeeds for a participant.
func DeleteRelationshipHandler(c echo.Context) error {
	type deleteRelationshipParams struct {
		ID string `param:"id" validate:"required"`
	}
	type deleteRelationshipResponse struct {
		Message string `json:"message"`
	}

	params := new(deleteRelationshipParams)
	if err := c.Bind(params); err != nil {
		return c.JSON(http.StatusBadRequest, deleteRelationshipResponse{Message: "Invalid request params"})
	}
	if err := c.Validate(params); err != nil {
		return c.JSON(http.StatusBadRequest, deleteRelationshipResponse{Message: "Invalid request params"})
	}

	cc := c.(*middleware.AppContext)
	if err := cc.App.Store.DeleteRelationship(c.Request().Context(), cc.ActorID(), params.ID); err != nil {
		return errorJSON(c, err)
	}

	publishPurge(c, params.ID, graph.KindRelationship)

	return c.JSON(http.StatusOK, deleteRelationshipResponse{
		Message: "Relationship deleted",
	})
}
