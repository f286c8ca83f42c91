package pgx

import (
	"context"

	"github.com/loreforge/loreforge/backend/pkg/graph"

	pgxv5 "github.com/jackc/pgx/v5"
)

// GetStatistics aggregates per-type entity counts and the distinct member
// count for a campaign. All counts come from one read transaction so the
// numbers describe a single snapshot.
func (s *GraphStore) GetStatistics(ctx context.Context, actorID, campaignID string) (graph.Statistics, error) {
	if err := requireActor(actorID); err != nil {
		return graph.Statistics{}, err
	}
	var stats graph.Statistics
	err := s.ReadTx(ctx, func(tx pgxv5.Tx) error {
		campaign, err := getNode(ctx, tx, campaignID, graph.KindCampaign)
		if err != nil {
			return err
		}
		if err := requireParticipant(ctx, tx, campaign.ID, actorID); err != nil {
			return err
		}
		stats.CampaignID = campaign.PublicID
		stats.CampaignName = campaign.Name

		counts := []struct {
			kind        graph.NodeKind
			containment graph.EdgeKind
			out         *int64
		}{
			{graph.KindSession, graph.EdgePartOf, &stats.Sessions},
			{graph.KindCharacter, graph.EdgeAppearsIn, &stats.Characters},
			{graph.KindLocation, graph.EdgeLocatedIn, &stats.Locations},
			{graph.KindItem, graph.EdgeBelongsTo, &stats.Items},
			{graph.KindEvent, graph.EdgeOccursIn, &stats.Events},
		}
		for _, c := range counts {
			err := tx.QueryRow(ctx, `
				SELECT COUNT(*) FROM nodes n
				JOIN edges e ON e.source_id = n.id AND e.target_id = $1
				WHERE e.kind = $2 AND n.kind = $3 AND n.deleted_at IS NULL`,
				campaign.ID, string(c.containment), string(c.kind),
			).Scan(c.out)
			if err != nil {
				return err
			}
		}

		// Owners hold a CREATED edge rather than a membership edge, so
		// members are counted across both kinds.
		return tx.QueryRow(ctx, `
			SELECT COUNT(DISTINCT n.id) FROM nodes n
			JOIN edges e ON e.source_id = n.id AND e.target_id = $1
			WHERE e.kind = ANY($2) AND n.kind = 'User' AND n.deleted_at IS NULL`,
			campaign.ID, []string{string(graph.EdgeCreated), string(graph.EdgeParticipatesIn)},
		).Scan(&stats.Users)
	})
	return stats, err
}
