package pgx

import (
	"context"

	"github.com/loreforge/loreforge/backend/pkg/graph"

	pgxv5 "github.com/jackc/pgx/v5"
)

// endpointResolver locates a relationship endpoint inside a campaign and
// returns its node row.
type endpointResolver func(ctx context.Context, tx pgxv5.Tx, campaign nodeRow, publicID string) (nodeRow, error)

// endpointResolvers is a closed dispatch table over the declared endpoint
// types. CHARACTER and LOCATION resolve through their repositories; EVENT and
// ITEM are declared endpoint types without a backing resolver in the current
// feature set, so they deliberately answer not-found. The gap is visible
// here rather than buried in a runtime string branch.
var endpointResolvers = map[graph.EntityType]endpointResolver{
	graph.EntityCharacter: scopedEndpoint(graph.KindCharacter, graph.EdgeAppearsIn),
	graph.EntityLocation:  scopedEndpoint(graph.KindLocation, graph.EdgeLocatedIn),
	graph.EntityEvent:     unresolvableEndpoint,
	graph.EntityItem:      unresolvableEndpoint,
}

// scopedEndpoint resolves a node of the given kind and verifies it belongs
// to the same campaign as the relationship being created.
func scopedEndpoint(kind graph.NodeKind, containment graph.EdgeKind) endpointResolver {
	return func(ctx context.Context, tx pgxv5.Tx, campaign nodeRow, publicID string) (nodeRow, error) {
		n, err := getNode(ctx, tx, publicID, kind)
		if err != nil {
			return nodeRow{}, err
		}
		owner, err := containingNode(ctx, tx, n.ID, containment, graph.KindCampaign)
		if err != nil {
			return nodeRow{}, err
		}
		if owner.ID != campaign.ID {
			return nodeRow{}, graph.ErrNotFound
		}
		return n, nil
	}
}

func unresolvableEndpoint(context.Context, pgxv5.Tx, nodeRow, string) (nodeRow, error) {
	return nodeRow{}, graph.ErrNotFound
}

func relationshipFromNode(n nodeRow, campaignID string) graph.Relationship {
	return graph.Relationship{
		ID:               n.PublicID,
		CampaignID:       campaignID,
		SourceEntityID:   propString(n.Props, "source_entity_id"),
		SourceEntityType: graph.EntityType(propString(n.Props, "source_entity_type")),
		TargetEntityID:   propString(n.Props, "target_entity_id"),
		TargetEntityType: graph.EntityType(propString(n.Props, "target_entity_type")),
		RelationshipType: propString(n.Props, "relationship_type"),
		Description:      propString(n.Props, "description"),
		CreatedBy:        n.CreatedBy,
		CreatedAt:        n.CreatedAt,
		UpdatedAt:        n.UpdatedAt,
	}
}

// CreateRelationship creates a relationship node after resolving both
// endpoints through the dispatch table. Both endpoints must already exist in
// the relationship's campaign; the node and its three edges (campaign scope
// plus the two endpoint markers) are written in one transaction.
func (s *GraphStore) CreateRelationship(ctx context.Context, actorID string, in graph.CreateRelationshipInput) (graph.Relationship, error) {
	if err := requireActor(actorID); err != nil {
		return graph.Relationship{}, err
	}
	if !graph.ValidEntityType(in.SourceEntityType) || !graph.ValidEntityType(in.TargetEntityType) {
		return graph.Relationship{}, graph.ErrInvalidInput
	}
	var rel graph.Relationship
	err := s.WriteTx(ctx, func(tx pgxv5.Tx) error {
		campaign, err := scopedCampaign(ctx, tx, in.CampaignID, actorID)
		if err != nil {
			return err
		}

		source, err := endpointResolvers[in.SourceEntityType](ctx, tx, campaign, in.SourceEntityID)
		if err != nil {
			return err
		}
		target, err := endpointResolvers[in.TargetEntityType](ctx, tx, campaign, in.TargetEntityID)
		if err != nil {
			return err
		}

		n, err := insertNode(ctx, tx, graph.KindRelationship, in.RelationshipType, map[string]any{
			"source_entity_id":   source.PublicID,
			"source_entity_type": string(in.SourceEntityType),
			"target_entity_id":   target.PublicID,
			"target_entity_type": string(in.TargetEntityType),
			"relationship_type":  in.RelationshipType,
			"description":        in.Description,
		}, actorID)
		if err != nil {
			return err
		}

		if err := insertEdge(ctx, tx, n.ID, campaign.ID, graph.EdgePartOf, nil); err != nil {
			return err
		}
		if err := insertEdge(ctx, tx, n.ID, source.ID, graph.EdgeRelationSource, nil); err != nil {
			return err
		}
		if err := insertEdge(ctx, tx, n.ID, target.ID, graph.EdgeRelationTarget, nil); err != nil {
			return err
		}

		rel = relationshipFromNode(n, campaign.PublicID)
		return nil
	})
	return rel, err
}

func (s *GraphStore) GetRelationship(ctx context.Context, actorID, id string) (graph.Relationship, error) {
	var rel graph.Relationship
	err := s.ReadTx(ctx, func(tx pgxv5.Tx) error {
		n, campaign, err := scopedNode(ctx, tx, id, graph.KindRelationship, graph.EdgePartOf, actorID)
		if err != nil {
			return err
		}
		rel = relationshipFromNode(n, campaign.PublicID)
		return nil
	})
	return rel, err
}

// ListRelationships filters by any combination of endpoint fields and
// relationship type. EntityID/EntityType match either side.
func (s *GraphStore) ListRelationships(ctx context.Context, actorID, campaignID string, f graph.RelationshipFilter, opts graph.ListOptions) (graph.Page[graph.Relationship], error) {
	refine := func(q *listQuery) {
		if f.SourceEntityID != "" {
			q.where("n.props->>'source_entity_id' = %s", f.SourceEntityID)
		}
		if f.SourceEntityType != "" {
			q.where("n.props->>'source_entity_type' = %s", string(f.SourceEntityType))
		}
		if f.TargetEntityID != "" {
			q.where("n.props->>'target_entity_id' = %s", f.TargetEntityID)
		}
		if f.TargetEntityType != "" {
			q.where("n.props->>'target_entity_type' = %s", string(f.TargetEntityType))
		}
		if f.RelationshipType != "" {
			q.where("n.props->>'relationship_type' = %s", f.RelationshipType)
		}
		if f.EntityID != "" {
			q.where("(n.props->>'source_entity_id' = %[1]s OR n.props->>'target_entity_id' = %[1]s)", f.EntityID)
		}
		if f.EntityType != "" {
			q.where("(n.props->>'source_entity_type' = %[1]s OR n.props->>'target_entity_type' = %[1]s)", string(f.EntityType))
		}
	}
	nodes, total, err := s.listScoped(ctx, actorID, campaignID, graph.KindRelationship, graph.EdgePartOf, opts, refine, nil)
	if err != nil {
		return graph.Page[graph.Relationship]{}, err
	}
	page := graph.Page[graph.Relationship]{Items: make([]graph.Relationship, 0, len(nodes)), Total: total}
	for _, n := range nodes {
		page.Items = append(page.Items, relationshipFromNode(n, campaignID))
	}
	return page, nil
}

func (s *GraphStore) UpdateRelationship(ctx context.Context, actorID, id string, in graph.UpdateRelationshipInput) (graph.Relationship, error) {
	var rel graph.Relationship
	err := s.WriteTx(ctx, func(tx pgxv5.Tx) error {
		n, campaign, err := scopedNode(ctx, tx, id, graph.KindRelationship, graph.EdgePartOf, actorID)
		if err != nil {
			return err
		}
		props := map[string]any{}
		if in.RelationshipType != nil {
			props["relationship_type"] = *in.RelationshipType
		}
		if in.Description != nil {
			props["description"] = *in.Description
		}
		updated, err := updateNode(ctx, tx, n.ID, in.RelationshipType, props)
		if err != nil {
			return err
		}
		rel = relationshipFromNode(updated, campaign.PublicID)
		return nil
	})
	return rel, err
}

func (s *GraphStore) DeleteRelationship(ctx context.Context, actorID, id string) error {
	return s.WriteTx(ctx, func(tx pgxv5.Tx) error {
		n, _, err := scopedNode(ctx, tx, id, graph.KindRelationship, graph.EdgePartOf, actorID)
		if err != nil {
			return err
		}
		return softDeleteNode(ctx, tx, n.ID)
	})
}
