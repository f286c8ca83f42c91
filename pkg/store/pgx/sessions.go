package pgx

import (
	"context"

	"github.com/loreforge/loreforge/backend/pkg/graph"

	pgxv5 "github.com/jackc/pgx/v5"
)

func sessionFromNode(n nodeRow, campaignID string) graph.Session {
	return graph.Session{
		ID:            n.PublicID,
		CampaignID:    campaignID,
		Title:         n.Name,
		Summary:       propString(n.Props, "summary"),
		SessionNumber: propInt(n.Props, "session_number"),
		SessionDate:   propString(n.Props, "session_date"),
		CreatedBy:     n.CreatedBy,
		CreatedAt:     n.CreatedAt,
		UpdatedAt:     n.UpdatedAt,
	}
}

func (s *GraphStore) CreateSession(ctx context.Context, actorID string, in graph.CreateSessionInput) (graph.Session, error) {
	if err := requireActor(actorID); err != nil {
		return graph.Session{}, err
	}
	var session graph.Session
	err := s.WriteTx(ctx, func(tx pgxv5.Tx) error {
		campaign, err := scopedCampaign(ctx, tx, in.CampaignID, actorID)
		if err != nil {
			return err
		}
		n, err := insertNode(ctx, tx, graph.KindSession, in.Title, map[string]any{
			"summary":        in.Summary,
			"session_number": in.SessionNumber,
			"session_date":   in.SessionDate,
		}, actorID)
		if err != nil {
			return err
		}
		if err := insertEdge(ctx, tx, n.ID, campaign.ID, graph.EdgePartOf, nil); err != nil {
			return err
		}
		session = sessionFromNode(n, campaign.PublicID)
		return nil
	})
	return session, err
}

func (s *GraphStore) GetSession(ctx context.Context, actorID, id string) (graph.Session, error) {
	var session graph.Session
	err := s.ReadTx(ctx, func(tx pgxv5.Tx) error {
		n, campaign, err := scopedNode(ctx, tx, id, graph.KindSession, graph.EdgePartOf, actorID)
		if err != nil {
			return err
		}
		session = sessionFromNode(n, campaign.PublicID)
		return nil
	})
	return session, err
}

func (s *GraphStore) ListSessions(ctx context.Context, actorID, campaignID string, opts graph.ListOptions) (graph.Page[graph.Session], error) {
	nodes, total, err := s.listScoped(ctx, actorID, campaignID, graph.KindSession, graph.EdgePartOf, opts, nil, nil)
	if err != nil {
		return graph.Page[graph.Session]{}, err
	}
	page := graph.Page[graph.Session]{Items: make([]graph.Session, 0, len(nodes)), Total: total}
	for _, n := range nodes {
		page.Items = append(page.Items, sessionFromNode(n, campaignID))
	}
	return page, nil
}

func (s *GraphStore) UpdateSession(ctx context.Context, actorID, id string, in graph.UpdateSessionInput) (graph.Session, error) {
	var session graph.Session
	err := s.WriteTx(ctx, func(tx pgxv5.Tx) error {
		n, campaign, err := scopedNode(ctx, tx, id, graph.KindSession, graph.EdgePartOf, actorID)
		if err != nil {
			return err
		}
		props := map[string]any{}
		if in.Summary != nil {
			props["summary"] = *in.Summary
		}
		if in.SessionNumber != nil {
			props["session_number"] = *in.SessionNumber
		}
		if in.SessionDate != nil {
			props["session_date"] = *in.SessionDate
		}
		updated, err := updateNode(ctx, tx, n.ID, in.Title, props)
		if err != nil {
			return err
		}
		session = sessionFromNode(updated, campaign.PublicID)
		return nil
	})
	return session, err
}

func (s *GraphStore) DeleteSession(ctx context.Context, actorID, id string) error {
	return s.WriteTx(ctx, func(tx pgxv5.Tx) error {
		n, _, err := scopedNode(ctx, tx, id, graph.KindSession, graph.EdgePartOf, actorID)
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
