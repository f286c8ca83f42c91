package routes

import (
	"net/http"

	"github.com/loreforge/loreforge/backend/internal/server/middleware"
	"github.com/loreforge/loreforge/backend/pkg/graph"

	"github.com/labstack/echo/v4"
)

// CreateRelationshipHandler links two campaign entities with a typed,
// directed association. Both endpoints must resolve within the campaign.
func CreateRelationshipHandler(c echo.Context) error {
	type createRelationshipBody struct {
		CampaignID       string `param:"id" validate:"required"`
		SourceEntityID   string `json:"source_entity_id" validate:"required"`
		SourceEntityType string `json:"source_entity_type" validate:"required"`
		TargetEntityID   string `json:"target_entity_id" validate:"required"`
		TargetEntityType string `json:"target_entity_type" validate:"required"`
		RelationshipType string `json:"relationship_type" validate:"required"`
		Description      string `json:"description"`
	}
	type createRelationshipResponse struct {
		Message      string              `json:"message"`
		Relationship *graph.Relationship `json:"relationship,omitempty"`
	}

	data := new(createRelationshipBody)
	if err := c.Bind(data); err != nil {
		return c.JSON(http.StatusBadRequest, createRelationshipResponse{Message: "Invalid request body"})
	}
	if err := c.Validate(data); err != nil {
		return c.JSON(http.StatusBadRequest, createRelationshipResponse{Message: "Invalid request body"})
	}

	cc := c.(*middleware.AppContext)
	rel, err := cc.App.Store.CreateRelationship(c.Request().Context(), cc.ActorID(), graph.CreateRelationshipInput{
		CampaignID:       data.CampaignID,
		SourceEntityID:   data.SourceEntityID,
		SourceEntityType: graph.EntityType(data.SourceEntityType),
		TargetEntityID:   data.TargetEntityID,
		TargetEntityType: graph.EntityType(data.TargetEntityType),
		RelationshipType: data.RelationshipType,
		Description:      data.Description,
	})
	if err != nil {
		return errorJSON(c, err)
	}

	return c.JSON(http.StatusOK, createRelationshipResponse{
		Message:      "Relationship created",
		Relationship: &rel,
	})
}
