package pgx

import (
	"context"
	"errors"

	"github.com/loreforge/loreforge/backend/pkg/graph"

	pgxv5 "github.com/jackc/pgx/v5"
)

// scopedNode resolves a campaign-scoped entity together with its owning
// campaign and runs the participant gate, all inside the caller's
// transaction. An entity whose campaign is gone counts as not found.
func scopedNode(ctx context.Context, tx pgxv5.Tx, publicID string, kind graph.NodeKind, containment graph.EdgeKind, actorID string) (nodeRow, nodeRow, error) {
	n, err := getNode(ctx, tx, publicID, kind)
	if err != nil {
		return nodeRow{}, nodeRow{}, err
	}
	campaign, err := containingNode(ctx, tx, n.ID, containment, graph.KindCampaign)
	if err != nil {
		if errors.Is(err, graph.ErrNotFound) {
			return nodeRow{}, nodeRow{}, graph.ErrNotFound
		}
		return nodeRow{}, nodeRow{}, err
	}
	if err := requireParticipant(ctx, tx, campaign.ID, actorID); err != nil {
		return nodeRow{}, nodeRow{}, err
	}
	return n, campaign, nil
}

// scopedCampaign resolves a campaign by public id and runs the participant
// gate for list/create operations addressed by campaign id.
func scopedCampaign(ctx context.Context, tx pgxv5.Tx, campaignID, actorID string) (nodeRow, error) {
	campaign, err := getNode(ctx, tx, campaignID, graph.KindCampaign)
	if err != nil {
		return nodeRow{}, err
	}
	if err := requireParticipant(ctx, tx, campaign.ID, actorID); err != nil {
		return nodeRow{}, err
	}
	return campaign, nil
}

// listScoped runs the shared count-then-fetch listing for one entity kind
// inside a single read transaction.
func (s *GraphStore) listScoped(
	ctx context.Context,
	actorID, campaignID string,
	kind graph.NodeKind,
	containment graph.EdgeKind,
	opts graph.ListOptions,
	refine func(q *listQuery),
	post func(tx pgxv5.Tx, nodes []nodeRow) error,
) ([]nodeRow, int64, error) {
	if err := requireActor(actorID); err != nil {
		return nil, 0, err
	}
	opts = opts.Normalize()

	var nodes []nodeRow
	var total int64
	err := s.ReadTx(ctx, func(tx pgxv5.Tx) error {
		campaign, err := scopedCampaign(ctx, tx, campaignID, actorID)
		if err != nil {
			return err
		}

		q := newScopedListQuery(kind, containment, campaign.PublicID)
		if refine != nil {
			refine(q)
		}

		countSQL, countArgs := q.countSQL()
		if err := tx.QueryRow(ctx, countSQL, countArgs...).Scan(&total); err != nil {
			return err
		}

		pageSQL, pageArgs := q.pageSQL(kind, opts)
		rows, err := tx.Query(ctx, pageSQL, pageArgs...)
		if err != nil {
			return err
		}
		nodes, err = collectNodes(rows)
		if err != nil {
			return err
		}
		if post != nil {
			return post(tx, nodes)
		}
		return nil
	})
	if err != nil {
		return nil, 0, err
	}
	return nodes, total, nil
}

// relationEdgeKinds are the incoming edge kinds that make an entity count as
// referenced by a relationship node.
var relationEdgeKinds = []graph.EdgeKind{
	graph.EdgeRelationSource,
	graph.EdgeRelationTarget,
}
