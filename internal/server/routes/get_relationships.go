package routes

import (
	"net/http"

	"github.com/loreforge/loreforge/backend/internal/server/middleware"
	"github.com/loreforge/loreforge/backend/pkg/graph"

	"github.com/labstack/echo/v4"
)

// GetRelationshipsHandler lists a campaign's relationships. entity_id and
// entity_type match either endpoint; the source_/target_ variants match one
// specific side.
func GetRelationshipsHandler(c echo.Context) error {
	type getRelationshipsParams struct {
		CampaignID string `param:"id" validate:"required"`
	}
	type getRelationshipsResponse struct {
		Message       string               `json:"message"`
		Relationships []graph.Relationship `json:"relationships"`
		Total         int64                `json:"total"`
	}

	params := new(getRelationshipsParams)
	if err := c.Bind(params); err != nil {
		return c.JSON(http.StatusBadRequest, getRelationshipsResponse{Message: "Invalid request params"})
	}
	if err := c.Validate(params); err != nil {
		return c.JSON(http.StatusBadRequest, getRelationshipsResponse{Message: "Invalid request params"})
	}

	cc := c.(*middleware.AppContext)
	filter := graph.RelationshipFilter{
		SourceEntityID:   c.QueryParam("source_entity_id"),
		SourceEntityType: graph.EntityType(c.QueryParam("source_entity_type")),
		TargetEntityID:   c.QueryParam("target_entity_id"),
		TargetEntityType: graph.EntityType(c.QueryParam("target_entity_type")),
		RelationshipType: c.QueryParam("relationship_type"),
		EntityID:         c.QueryParam("entity_id"),
		EntityType:       graph.EntityType(c.QueryParam("entity_type")),
	}
	page, err := cc.App.Store.ListRelationships(c.Request().Context(), cc.ActorID(), params.CampaignID, filter, listOptions(c))
	if err != nil {
		return errorJSON(c, err)
	}

	return c.JSON(http.StatusOK, getRelationshipsResponse{
		Message:       "OK",
		Relationships: page.Items,
		Total:         page.Total,
	})
}

// GetRelationshipHandler returns one relationship.
func GetRelationshipHandler(c echo.Context) error {
	type getRelationshipParams struct {
		ID string `param:"id" validate:"required"`
	}
	type getRelationshipResponse struct {
		Message      string              `json:"message"`
		Relationship *graph.Relationship `json:"relationship,omitempty"`
	}

	params := new(getRelationshipParams)
	if err := c.Bind(params); err != nil {
		return c.JSON(http.StatusBadRequest, getRelationshipResponse{Message: "Invalid request params"})
	}
	if err := c.Validate(params); err != nil {
		return c.JSON(http.StatusBadRequest, getRelationshipResponse{Message: "Invalid request params"})
	}

	cc := c.(*middleware.AppContext)
	rel, err := cc.App.Store.GetRelationship(c.Request().Context(), cc.ActorID(), params.ID)
	if err != nil {
		return errorJSON(c, err)
	}

	return c.JSON(http.StatusOK, getRelationshipResponse{
		Message:      "OK",
		Relationship: &rel,
	})
}
