package pgx

import (
	"context"

	"github.com/loreforge/loreforge/backend/pkg/graph"

	pgxv5 "github.com/jackc/pgx/v5"
)

func eventFromNode(n nodeRow, campaignID string) graph.Event {
	return graph.Event{
		ID:          n.PublicID,
		CampaignID:  campaignID,
		Title:       n.Name,
		Description: propString(n.Props, "description"),
		EventDate:   propString(n.Props, "event_date"),
		CreatedBy:   n.CreatedBy,
		CreatedAt:   n.CreatedAt,
		UpdatedAt:   n.UpdatedAt,
	}
}

func (s *GraphStore) CreateEvent(ctx context.Context, actorID string, in graph.CreateEventInput) (graph.Event, error) {
	if err := requireActor(actorID); err != nil {
		return graph.Event{}, err
	}
	var event graph.Event
	err := s.WriteTx(ctx, func(tx pgxv5.Tx) error {
		campaign, err := scopedCampaign(ctx, tx, in.CampaignID, actorID)
		if err != nil {
			return err
		}
		n, err := insertNode(ctx, tx, graph.KindEvent, in.Title, map[string]any{
			"description": in.Description,
			"event_date":  in.EventDate,
		}, actorID)
		if err != nil {
			return err
		}
		if err := insertEdge(ctx, tx, n.ID, campaign.ID, graph.EdgeOccursIn, nil); err != nil {
			return err
		}
		event = eventFromNode(n, campaign.PublicID)
		return nil
	})
	return event, err
}

func (s *GraphStore) GetEvent(ctx context.Context, actorID, id string) (graph.Event, error) {
	var event graph.Event
	err := s.ReadTx(ctx, func(tx pgxv5.Tx) error {
		n, campaign, err := scopedNode(ctx, tx, id, graph.KindEvent, graph.EdgeOccursIn, actorID)
		if err != nil {
			return err
		}
		event = eventFromNode(n, campaign.PublicID)
		return nil
	})
	return event, err
}

func (s *GraphStore) ListEvents(ctx context.Context, actorID, campaignID string, opts graph.ListOptions) (graph.Page[graph.Event], error) {
	nodes, total, err := s.listScoped(ctx, actorID, campaignID, graph.KindEvent, graph.EdgeOccursIn, opts, nil, nil)
	if err != nil {
		return graph.Page[graph.Event]{}, err
	}
	page := graph.Page[graph.Event]{Items: make([]graph.Event, 0, len(nodes)), Total: total}
	for _, n := range nodes {
		page.Items = append(page.Items, eventFromNode(n, campaignID))
	}
	return page, nil
}

func (s *GraphStore) UpdateEvent(ctx context.Context, actorID, id string, in graph.UpdateEventInput) (graph.Event, error) {
	var event graph.Event
	err := s.WriteTx(ctx, func(tx pgxv5.Tx) error {
		n, campaign, err := scopedNode(ctx, tx, id, graph.KindEvent, graph.EdgeOccursIn, actorID)
		if err != nil {
			return err
		}
		props := map[string]any{}
		if in.Description != nil {
			props["description"] = *in.Description
		}
		if in.EventDate != nil {
			props["event_date"] = *in.EventDate
		}
		updated, err := updateNode(ctx, tx, n.ID, in.Title, props)
		if err != nil {
			return err
		}
		event = eventFromNode(updated, campaign.PublicID)
		return nil
	})
	return event, err
}

func (s *GraphStore) DeleteEvent(ctx context.Context, actorID, id string) error {
	return s.WriteTx(ctx, func(tx pgxv5.Tx) error {
		n, _, err := scopedNode(ctx, tx, id, graph.KindEvent, graph.EdgeOccursIn, actorID)
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
