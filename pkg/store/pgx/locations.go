package pgx

import (
	"context"
	"errors"

	"github.com/loreforge/loreforge/backend/pkg/graph"

	pgxv5 "github.com/jackc/pgx/v5"
)

func locationFromNode(n nodeRow, campaignID, parentID string) graph.Location {
	return graph.Location{
		ID:               n.PublicID,
		CampaignID:       campaignID,
		Name:             n.Name,
		Description:      propString(n.Props, "description"),
		LocationType:     propString(n.Props, "location_type"),
		ParentLocationID: parentID,
		CreatedBy:        n.CreatedBy,
		CreatedAt:        n.CreatedAt,
		UpdatedAt:        n.UpdatedAt,
	}
}

// parentOf follows the location's CHILD_OF edge, if any.
func parentOf(ctx context.Context, tx pgxv5.Tx, locationID int64) (string, error) {
	parent, err := containingNode(ctx, tx, locationID, graph.EdgeChildOf, graph.KindLocation)
	if err != nil {
		if errors.Is(err, graph.ErrNotFound) {
			return "", nil
		}
		return "", err
	}
	return parent.PublicID, nil
}

// setParent replaces the location's CHILD_OF edge. The parent must be a live
// location in the same campaign and must not be the location itself. Deeper
// cycles (A under B under A) are a known gap and are not walked for.
func setParent(ctx context.Context, tx pgxv5.Tx, location nodeRow, campaign nodeRow, parentID string) error {
	if parentID == location.PublicID {
		return graph.ErrInvalidInput
	}
	if err := deleteEdgesFrom(ctx, tx, location.ID, graph.EdgeChildOf); err != nil {
		return err
	}
	if parentID == "" {
		return nil
	}
	parent, err := getNode(ctx, tx, parentID, graph.KindLocation)
	if err != nil {
		return err
	}
	parentCampaign, err := containingNode(ctx, tx, parent.ID, graph.EdgeLocatedIn, graph.KindCampaign)
	if err != nil {
		return err
	}
	if parentCampaign.ID != campaign.ID {
		return graph.ErrNotFound
	}
	return insertEdge(ctx, tx, location.ID, parent.ID, graph.EdgeChildOf, nil)
}

func (s *GraphStore) CreateLocation(ctx context.Context, actorID string, in graph.CreateLocationInput) (graph.Location, error) {
	if err := requireActor(actorID); err != nil {
		return graph.Location{}, err
	}
	var location graph.Location
	err := s.WriteTx(ctx, func(tx pgxv5.Tx) error {
		campaign, err := scopedCampaign(ctx, tx, in.CampaignID, actorID)
		if err != nil {
			return err
		}
		n, err := insertNode(ctx, tx, graph.KindLocation, in.Name, map[string]any{
			"description":   in.Description,
			"location_type": in.LocationType,
		}, actorID)
		if err != nil {
			return err
		}
		if err := insertEdge(ctx, tx, n.ID, campaign.ID, graph.EdgeLocatedIn, nil); err != nil {
			return err
		}
		if in.ParentLocationID != "" {
			if err := setParent(ctx, tx, n, campaign, in.ParentLocationID); err != nil {
				return err
			}
		}
		location = locationFromNode(n, campaign.PublicID, in.ParentLocationID)
		return nil
	})
	return location, err
}

func (s *GraphStore) GetLocation(ctx context.Context, actorID, id string) (graph.Location, error) {
	var location graph.Location
	err := s.ReadTx(ctx, func(tx pgxv5.Tx) error {
		n, campaign, err := scopedNode(ctx, tx, id, graph.KindLocation, graph.EdgeLocatedIn, actorID)
		if err != nil {
			return err
		}
		parentID, err := parentOf(ctx, tx, n.ID)
		if err != nil {
			return err
		}
		location = locationFromNode(n, campaign.PublicID, parentID)
		return nil
	})
	return location, err
}

func (s *GraphStore) ListLocations(ctx context.Context, actorID, campaignID string, f graph.LocationFilter, opts graph.ListOptions) (graph.Page[graph.Location], error) {
	refine := func(q *listQuery) {
		if f.LocationType != "" {
			q.where("n.props->>'location_type' = %s", f.LocationType)
		}
		if f.ParentLocationID != "" {
			q.where(`EXISTS (
				SELECT 1 FROM edges pe
				JOIN nodes p ON p.id = pe.target_id
				WHERE pe.source_id = n.id AND pe.kind = 'CHILD_OF'
				  AND p.public_id = %s AND p.deleted_at IS NULL)`, f.ParentLocationID)
		}
	}
	items := []graph.Location{}
	post := func(tx pgxv5.Tx, nodes []nodeRow) error {
		for _, n := range nodes {
			parentID, err := parentOf(ctx, tx, n.ID)
			if err != nil {
				return err
			}
			items = append(items, locationFromNode(n, campaignID, parentID))
		}
		return nil
	}
	_, total, err := s.listScoped(ctx, actorID, campaignID, graph.KindLocation, graph.EdgeLocatedIn, opts, refine, post)
	if err != nil {
		return graph.Page[graph.Location]{}, err
	}
	return graph.Page[graph.Location]{Items: items, Total: total}, nil
}

func (s *GraphStore) UpdateLocation(ctx context.Context, actorID, id string, in graph.UpdateLocationInput) (graph.Location, error) {
	var location graph.Location
	err := s.WriteTx(ctx, func(tx pgxv5.Tx) error {
		n, campaign, err := scopedNode(ctx, tx, id, graph.KindLocation, graph.EdgeLocatedIn, actorID)
		if err != nil {
			return err
		}
		props := map[string]any{}
		if in.Description != nil {
			props["description"] = *in.Description
		}
		if in.LocationType != nil {
			props["location_type"] = *in.LocationType
		}
		updated, err := updateNode(ctx, tx, n.ID, in.Name, props)
		if err != nil {
			return err
		}
		if in.ParentLocationID != nil {
			if err := setParent(ctx, tx, updated, campaign, *in.ParentLocationID); err != nil {
				return err
			}
		}
		parentID, err := parentOf(ctx, tx, updated.ID)
		if err != nil {
			return err
		}
		location = locationFromNode(updated, campaign.PublicID, parentID)
		return nil
	})
	return location, err
}

// DeleteLocation refuses while the location still has child locations or is
// referenced by relationship nodes.
func (s *GraphStore) DeleteLocation(ctx context.Context, actorID, id string) error {
	return s.WriteTx(ctx, func(tx pgxv5.Tx) error {
		n, _, err := scopedNode(ctx, tx, id, graph.KindLocation, graph.EdgeLocatedIn, actorID)
		if err != nil {
			return err
		}
		kinds := append([]graph.EdgeKind{graph.EdgeChildOf}, relationEdgeKinds...)
		count, err := dependentCount(ctx, tx, n.ID, kinds)
		if err != nil {
			return err
		}
		if count > 0 {
			return graph.ErrHasDependents
		}
		return softDeleteNode(ctx, tx, n.ID)
	})
}
