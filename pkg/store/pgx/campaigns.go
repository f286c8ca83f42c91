package pgx

import (
	"context"
	"errors"

	"github.com/loreforge/loreforge/backend/pkg/graph"

	pgxv5 "github.com/jackc/pgx/v5"
)

// campaignRecord assembles the public record, following the campaign's
// PART_OF edge to fill in the owning world id.
func campaignRecord(ctx context.Context, tx pgxv5.Tx, n nodeRow) (graph.Campaign, error) {
	c := graph.Campaign{
		ID:          n.PublicID,
		Name:        n.Name,
		Description: propString(n.Props, "description"),
		CreatedBy:   n.CreatedBy,
		CreatedAt:   n.CreatedAt,
		UpdatedAt:   n.UpdatedAt,
	}
	world, err := containingNode(ctx, tx, n.ID, graph.EdgePartOf, graph.KindWorld)
	if err != nil {
		if errors.Is(err, graph.ErrNotFound) {
			return c, nil
		}
		return graph.Campaign{}, err
	}
	c.WorldID = world.PublicID
	return c, nil
}

// campaignNameTaken checks the name-unique-within-world rule, ignoring the
// campaign itself during updates.
func campaignNameTaken(ctx context.Context, tx pgxv5.Tx, worldID int64, name string, selfID int64) (bool, error) {
	var taken bool
	err := tx.QueryRow(ctx, `
		SELECT EXISTS (
			SELECT 1
			FROM nodes n
			JOIN edges e ON e.source_id = n.id AND e.kind = $1
			WHERE e.target_id = $2 AND n.kind = $3 AND n.deleted_at IS NULL
			  AND LOWER(n.name) = LOWER($4) AND n.id <> $5)`,
		graph.EdgePartOf, worldID, graph.KindCampaign, name, selfID).Scan(&taken)
	return taken, err
}

// CreateCampaign creates the campaign node and, in the same transaction, its
// CREATED owner edge, the owner's PARTICIPATES_IN edge and the optional
// PART_OF world link. The creator is the owner from the first moment the
// campaign is visible.
func (s *GraphStore) CreateCampaign(ctx context.Context, actorID string, in graph.CreateCampaignInput) (graph.Campaign, error) {
	if err := requireActor(actorID); err != nil {
		return graph.Campaign{}, err
	}
	var campaign graph.Campaign
	err := s.WriteTx(ctx, func(tx pgxv5.Tx) error {
		owner, err := getNode(ctx, tx, actorID, graph.KindUser)
		if err != nil {
			return err
		}

		var world *nodeRow
		if in.WorldID != "" {
			w, err := getNode(ctx, tx, in.WorldID, graph.KindWorld)
			if err != nil {
				return err
			}
			taken, err := campaignNameTaken(ctx, tx, w.ID, in.Name, 0)
			if err != nil {
				return err
			}
			if taken {
				return graph.ErrDuplicate
			}
			world = &w
		}

		n, err := insertNode(ctx, tx, graph.KindCampaign, in.Name, map[string]any{
			"description": in.Description,
		}, actorID)
		if err != nil {
			return err
		}

		if err := insertEdge(ctx, tx, owner.ID, n.ID, graph.EdgeCreated, nil); err != nil {
			return err
		}
		err = insertEdge(ctx, tx, owner.ID, n.ID, graph.EdgeParticipatesIn, map[string]any{
			"relationship_type": string(graph.RoleOwner),
		})
		if err != nil {
			return err
		}
		if world != nil {
			if err := insertEdge(ctx, tx, n.ID, world.ID, graph.EdgePartOf, nil); err != nil {
				return err
			}
		}

		campaign, err = campaignRecord(ctx, tx, n)
		return err
	})
	return campaign, err
}

func (s *GraphStore) GetCampaign(ctx context.Context, actorID, id string) (graph.Campaign, error) {
	var campaign graph.Campaign
	err := s.ReadTx(ctx, func(tx pgxv5.Tx) error {
		n, err := getNode(ctx, tx, id, graph.KindCampaign)
		if err != nil {
			return err
		}
		if err := requireParticipant(ctx, tx, n.ID, actorID); err != nil {
			return err
		}
		campaign, err = campaignRecord(ctx, tx, n)
		return err
	})
	return campaign, err
}

// ListCampaigns pages through the campaigns the actor can see, i.e. the ones
// they own or participate in, optionally narrowed to one world.
func (s *GraphStore) ListCampaigns(ctx context.Context, actorID string, f graph.CampaignFilter, opts graph.ListOptions) (graph.Page[graph.Campaign], error) {
	if err := requireActor(actorID); err != nil {
		return graph.Page[graph.Campaign]{}, err
	}
	if f.MemberID == "" {
		f.MemberID = actorID
	}
	if f.MemberID != actorID {
		return graph.Page[graph.Campaign]{}, graph.ErrForbidden
	}
	opts = opts.Normalize()

	page := graph.Page[graph.Campaign]{Items: []graph.Campaign{}}
	err := s.ReadTx(ctx, func(tx pgxv5.Tx) error {
		q := newNodeListQuery(graph.KindCampaign)
		q.where(`EXISTS (
			SELECT 1 FROM edges me
			JOIN nodes mu ON mu.id = me.source_id
			WHERE me.target_id = n.id
			  AND me.kind IN ('CREATED', 'PARTICIPATES_IN')
			  AND mu.public_id = %s AND mu.deleted_at IS NULL)`, f.MemberID)
		if f.WorldID != "" {
			q.where(`EXISTS (
				SELECT 1 FROM edges we
				JOIN nodes w ON w.id = we.target_id
				WHERE we.source_id = n.id AND we.kind = 'PART_OF'
				  AND w.public_id = %s AND w.deleted_at IS NULL)`, f.WorldID)
		}

		countSQL, countArgs := q.countSQL()
		if err := tx.QueryRow(ctx, countSQL, countArgs...).Scan(&page.Total); err != nil {
			return err
		}

		pageSQL, pageArgs := q.pageSQL(graph.KindCampaign, opts)
		rows, err := tx.Query(ctx, pageSQL, pageArgs...)
		if err != nil {
			return err
		}
		nodes, err := collectNodes(rows)
		if err != nil {
			return err
		}
		for _, n := range nodes {
			c, err := campaignRecord(ctx, tx, n)
			if err != nil {
				return err
			}
			page.Items = append(page.Items, c)
		}
		return nil
	})
	if err != nil {
		return graph.Page[graph.Campaign]{}, err
	}
	return page, nil
}

// UpdateCampaign merges property changes and, when WorldID is supplied,
// reassigns the PART_OF edge in the same transaction so the stored world link
// and the property view never diverge. An empty WorldID detaches the
// campaign from its world.
func (s *GraphStore) UpdateCampaign(ctx context.Context, actorID, id string, in graph.UpdateCampaignInput) (graph.Campaign, error) {
	var campaign graph.Campaign
	err := s.WriteTx(ctx, func(tx pgxv5.Tx) error {
		n, err := getNode(ctx, tx, id, graph.KindCampaign)
		if err != nil {
			return err
		}
		if err := requireParticipant(ctx, tx, n.ID, actorID); err != nil {
			return err
		}

		finalName := n.Name
		if in.Name != nil {
			finalName = *in.Name
		}

		// Resolve the world the campaign will end up in, so the
		// name-uniqueness check runs against the right scope.
		var newWorld *nodeRow
		reassign := in.WorldID != nil
		if reassign && *in.WorldID != "" {
			w, err := getNode(ctx, tx, *in.WorldID, graph.KindWorld)
			if err != nil {
				return err
			}
			newWorld = &w
		} else if !reassign {
			if w, err := containingNode(ctx, tx, n.ID, graph.EdgePartOf, graph.KindWorld); err == nil {
				newWorld = &w
			} else if !errors.Is(err, graph.ErrNotFound) {
				return err
			}
		}

		if newWorld != nil && (in.Name != nil || reassign) {
			taken, err := campaignNameTaken(ctx, tx, newWorld.ID, finalName, n.ID)
			if err != nil {
				return err
			}
			if taken {
				return graph.ErrDuplicate
			}
		}

		props := map[string]any{}
		if in.Description != nil {
			props["description"] = *in.Description
		}
		updated, err := updateNode(ctx, tx, n.ID, in.Name, props)
		if err != nil {
			return err
		}

		if reassign {
			if err := deleteEdgesFrom(ctx, tx, n.ID, graph.EdgePartOf); err != nil {
				return err
			}
			if newWorld != nil {
				if err := insertEdge(ctx, tx, n.ID, newWorld.ID, graph.EdgePartOf, nil); err != nil {
					return err
				}
			}
		}

		campaign, err = campaignRecord(ctx, tx, updated)
		return err
	})
	return campaign, err
}

// DeleteCampaign soft-deletes a campaign. Only the owner may delete, and only
// when nothing is contained in it anymore; membership edges alone do not
// block deletion.
func (s *GraphStore) DeleteCampaign(ctx context.Context, actorID, id string) error {
	return s.WriteTx(ctx, func(tx pgxv5.Tx) error {
		n, err := getNode(ctx, tx, id, graph.KindCampaign)
		if err != nil {
			return err
		}
		if err := requireOwner(ctx, tx, n.ID, actorID); err != nil {
			return err
		}

		count, err := dependentCount(ctx, tx, n.ID, []graph.EdgeKind{
			graph.EdgePartOf,
			graph.EdgeAppearsIn,
			graph.EdgeLocatedIn,
			graph.EdgeBelongsTo,
			graph.EdgeOccursIn,
		})
		if err != nil {
			return err
		}
		if count > 0 {
			return graph.ErrHasDependents
		}

		return softDeleteNode(ctx, tx, n.ID)
	})
}
