package pgx

import (
	"context"

	"github.com/loreforge/loreforge/backend/pkg/graph"

	pgxv5 "github.com/jackc/pgx/v5"
)

func itemFromNode(n nodeRow, campaignID string) graph.Item {
	return graph.Item{
		ID:          n.PublicID,
		CampaignID:  campaignID,
		Name:        n.Name,
		Description: propString(n.Props, "description"),
		ItemType:    propString(n.Props, "item_type"),
		CreatedBy:   n.CreatedBy,
		CreatedAt:   n.CreatedAt,
		UpdatedAt:   n.UpdatedAt,
	}
}

func (s *GraphStore) CreateItem(ctx context.Context, actorID string, in graph.CreateItemInput) (graph.Item, error) {
	if err := requireActor(actorID); err != nil {
		return graph.Item{}, err
	}
	var item graph.Item
	err := s.WriteTx(ctx, func(tx pgxv5.Tx) error {
		campaign, err := scopedCampaign(ctx, tx, in.CampaignID, actorID)
		if err != nil {
			return err
		}
		n, err := insertNode(ctx, tx, graph.KindItem, in.Name, map[string]any{
			"description": in.Description,
			"item_type":   in.ItemType,
		}, actorID)
		if err != nil {
			return err
		}
		if err := insertEdge(ctx, tx, n.ID, campaign.ID, graph.EdgeBelongsTo, nil); err != nil {
			return err
		}
		item = itemFromNode(n, campaign.PublicID)
		return nil
	})
	return item, err
}

func (s *GraphStore) GetItem(ctx context.Context, actorID, id string) (graph.Item, error) {
	var item graph.Item
	err := s.ReadTx(ctx, func(tx pgxv5.Tx) error {
		n, campaign, err := scopedNode(ctx, tx, id, graph.KindItem, graph.EdgeBelongsTo, actorID)
		if err != nil {
			return err
		}
		item = itemFromNode(n, campaign.PublicID)
		return nil
	})
	return item, err
}

func (s *GraphStore) ListItems(ctx context.Context, actorID, campaignID string, f graph.ItemFilter, opts graph.ListOptions) (graph.Page[graph.Item], error) {
	refine := func(q *listQuery) {
		if f.ItemType != "" {
			q.where("n.props->>'item_type' = %s", f.ItemType)
		}
	}
	nodes, total, err := s.listScoped(ctx, actorID, campaignID, graph.KindItem, graph.EdgeBelongsTo, opts, refine, nil)
	if err != nil {
		return graph.Page[graph.Item]{}, err
	}
	page := graph.Page[graph.Item]{Items: make([]graph.Item, 0, len(nodes)), Total: total}
	for _, n := range nodes {
		page.Items = append(page.Items, itemFromNode(n, campaignID))
	}
	return page, nil
}

func (s *GraphStore) UpdateItem(ctx context.Context, actorID, id string, in graph.UpdateItemInput) (graph.Item, error) {
	var item graph.Item
	err := s.WriteTx(ctx, func(tx pgxv5.Tx) error {
		n, campaign, err := scopedNode(ctx, tx, id, graph.KindItem, graph.EdgeBelongsTo, actorID)
		if err != nil {
			return err
		}
		props := map[string]any{}
		if in.Description != nil {
			props["description"] = *in.Description
		}
		if in.ItemType != nil {
			props["item_type"] = *in.ItemType
		}
		updated, err := updateNode(ctx, tx, n.ID, in.Name, props)
		if err != nil {
			return err
		}
		item = itemFromNode(updated, campaign.PublicID)
		return nil
	})
	return item, err
}

func (s *GraphStore) DeleteItem(ctx context.Context, actorID, id string) error {
	return s.WriteTx(ctx, func(tx pgxv5.Tx) error {
		n, _, err := scopedNode(ctx, tx, id, graph.KindItem, graph.EdgeBelongsTo, actorID)
		if err != nil {
			return err
		}
		count, err := dependentCount(ctx, tx, n.ID, relationEdgeKinds)
		if err != nil {
			return err
		}
		if count > 0 {
			return graph.ErrHasDependents
		}
		return softDeleteNode(ctx, tx, n.ID)
	})
}
