package pgx

import (
	"context"
	"encoding/json"
	"time"

	"github.com/loreforge/loreforge/backend/pkg/graph"

	pgxv5 "github.com/jackc/pgx/v5"
)

// IsOwner reports whether a CREATED edge exists from the user to the
// campaign. A missing campaign is an error, not a false.
func (s *GraphStore) IsOwner(ctx context.Context, campaignID, userID string) (bool, error) {
	var owner bool
	err := s.ReadTx(ctx, func(tx pgxv5.Tx) error {
		campaign, err := getNode(ctx, tx, campaignID, graph.KindCampaign)
		if err != nil {
			return err
		}
		owner, err = isOwnerTx(ctx, tx, campaign.ID, userID)
		return err
	})
	return owner, err
}

// IsParticipant reports whether the user owns or participates in the
// campaign.
func (s *GraphStore) IsParticipant(ctx context.Context, campaignID, userID string) (bool, error) {
	var participant bool
	err := s.ReadTx(ctx, func(tx pgxv5.Tx) error {
		campaign, err := getNode(ctx, tx, campaignID, graph.KindCampaign)
		if err != nil {
			return err
		}
		participant, err = isParticipantTx(ctx, tx, campaign.ID, userID)
		return err
	})
	return participant, err
}

// AddUser upserts a PARTICIPATES_IN edge carrying the role, overwriting the
// role when the membership already exists. Only the campaign owner may manage
// memberships.
func (s *GraphStore) AddUser(ctx context.Context, actorID, campaignID, userID string, role graph.Role) (graph.Membership, error) {
	if !graph.ValidRole(role) {
		return graph.Membership{}, graph.ErrInvalidInput
	}
	var m graph.Membership
	err := s.WriteTx(ctx, func(tx pgxv5.Tx) error {
		campaign, err := getNode(ctx, tx, campaignID, graph.KindCampaign)
		if err != nil {
			return err
		}
		if err := requireOwner(ctx, tx, campaign.ID, actorID); err != nil {
			return err
		}
		user, err := getNode(ctx, tx, userID, graph.KindUser)
		if err != nil {
			return err
		}
		// The upsert keeps the original created_at, so re-adding a member
		// never moves their join date.
		var joinedAt time.Time
		err = tx.QueryRow(ctx, `
			INSERT INTO edges (source_id, target_id, kind, props)
			VALUES ($1, $2, $3, $4)
			ON CONFLICT (source_id, target_id, kind)
			DO UPDATE SET props = EXCLUDED.props
			RETURNING created_at`,
			user.ID, campaign.ID, graph.EdgeParticipatesIn, map[string]any{
				"relationship_type": string(role),
			}).Scan(&joinedAt)
		if err != nil {
			return err
		}
		m = graph.Membership{
			CampaignID: campaign.PublicID,
			UserID:     user.PublicID,
			Username:   user.Name,
			Role:       role,
			CreatedAt:  joinedAt,
		}
		return nil
	})
	return m, err
}

// RemoveUser deletes the user's membership edge. The sole-owner check and the
// delete run as two statements inside one write transaction, so concurrent
// removals cannot race the invariant away.
func (s *GraphStore) RemoveUser(ctx context.Context, actorID, campaignID, userID string) error {
	return s.WriteTx(ctx, func(tx pgxv5.Tx) error {
		campaign, err := getNode(ctx, tx, campaignID, graph.KindCampaign)
		if err != nil {
			return err
		}
		if err := requireOwner(ctx, tx, campaign.ID, actorID); err != nil {
			return err
		}
		user, err := getNode(ctx, tx, userID, graph.KindUser)
		if err != nil {
			return err
		}

		var createdCount int64
		err = tx.QueryRow(ctx, `
			SELECT COUNT(*) FROM edges
			WHERE source_id = $1 AND target_id = $2 AND kind = $3`,
			user.ID, campaign.ID, graph.EdgeCreated).Scan(&createdCount)
		if err != nil {
			return err
		}
		if createdCount == 1 {
			return graph.ErrOnlyOwner
		}

		tag, err := tx.Exec(ctx, `
			DELETE FROM edges
			WHERE source_id = $1 AND target_id = $2 AND kind = ANY($3)`,
			user.ID, campaign.ID,
			[]string{string(graph.EdgeParticipatesIn), string(graph.EdgeCreated)})
		if err != nil {
			return err
		}
		if tag.RowsAffected() == 0 {
			return graph.ErrNotFound
		}
		return nil
	})
}

// GetUsers lists the campaign's members with their computed roles. A user
// holding both a CREATED and a PARTICIPATES_IN edge appears once, as OWNER.
func (s *GraphStore) GetUsers(ctx context.Context, actorID, campaignID string) ([]graph.Membership, error) {
	var members []graph.Membership
	err := s.ReadTx(ctx, func(tx pgxv5.Tx) error {
		campaign, err := getNode(ctx, tx, campaignID, graph.KindCampaign)
		if err != nil {
			return err
		}
		if err := requireParticipant(ctx, tx, campaign.ID, actorID); err != nil {
			return err
		}

		rows, err := tx.Query(ctx, `
			SELECT u.public_id, u.name, e.kind, e.props, e.created_at
			FROM edges e
			JOIN nodes u ON u.id = e.source_id
			WHERE e.target_id = $1 AND e.kind = ANY($2)
			  AND u.kind = $3 AND u.deleted_at IS NULL
			ORDER BY e.created_at, e.id`,
			campaign.ID,
			[]string{string(graph.EdgeCreated), string(graph.EdgeParticipatesIn)},
			graph.KindUser)
		if err != nil {
			return err
		}
		defer rows.Close()

		byUser := make(map[string]int)
		for rows.Next() {
			var userID, username string
			var edgeKind graph.EdgeKind
			var rawProps []byte
			var createdAt time.Time
			if err := rows.Scan(&userID, &username, &edgeKind, &rawProps, &createdAt); err != nil {
				return err
			}

			role := graph.RoleOwner
			if edgeKind != graph.EdgeCreated {
				var props map[string]any
				if len(rawProps) > 0 {
					if err := json.Unmarshal(rawProps, &props); err != nil {
						return err
					}
				}
				role = graph.Role(propString(props, "relationship_type"))
			}

			if idx, seen := byUser[userID]; seen {
				if role == graph.RoleOwner {
					members[idx].Role = graph.RoleOwner
				}
				continue
			}
			byUser[userID] = len(members)
			members = append(members, graph.Membership{
				CampaignID: campaign.PublicID,
				UserID:     userID,
				Username:   username,
				Role:       role,
				CreatedAt:  createdAt,
			})
		}
		return rows.Err()
	})
	if err != nil {
		return nil, err
	}
	return members, nil
}
