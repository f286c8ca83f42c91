package routes

import (
	"net/http"

	"github.com/loreforge/loreforge/backend/internal/server/middleware"
	"github.com/loreforge/loreforge/backend/pkg/graph"

	"github.com/labstack/echo/v4"
)

// EditRelationshipHandler updates a relationship's type or description. The
// endpoints themselves are immutable; delete and recreate to rewire.
func EditRelationshipHandler(c echo.Context) error {
	type editRelationshipBody struct {
		ID               string  `param:"id" validate:"required"`
		RelationshipType *string `json:"relationship_type"`
		Description      *string `json:"description"`
	}
	type editRelationshipResponse struct {
		Message      string              `json:"message"`
		Relationship *graph.Relationship `json:"relationship,omitempty"`
	}

	data := new(editRelationshipBody)
	if err := c.Bind(data); err != nil {
		return c.JSON(http.StatusBadRequest, editRelationshipResponse{Message: "Invalid request body"})
	}
	if err := c.Validate(data); err != nil {
		return c.JSON(http.StatusBadRequest, editRelationshipResponse{Message: "Invalid request body"})
	}

	cc := c.(*middleware.AppContext)
	rel, err := cc.App.Store.UpdateRelationship(c.Request().Context(), cc.ActorID(), data.ID, graph.UpdateRelationshipInput{
		RelationshipType: data.RelationshipType,
		Description:      data.Description,
	})
	if err != nil {
		return errorJSON(c, err)
	}

	return c.JSON(http.StatusOK, editRelationshipResponse{
		Message:      "Relationship updated",
		Relationship: &rel,
	})
}
