package pgx

import (
	"context"
	"errors"

	"github.com/loreforge/loreforge/backend/pkg/graph"

	pgxv5 "github.com/jackc/pgx/v5"
)

func characterFromNode(n nodeRow, campaignID, playerID string) graph.Character {
	return graph.Character{
		ID:            n.PublicID,
		CampaignID:    campaignID,
		Name:          n.Name,
		Description:   propString(n.Props, "description"),
		CharacterType: propString(n.Props, "character_type"),
		PlayerID:      playerID,
		CreatedBy:     n.CreatedBy,
		CreatedAt:     n.CreatedAt,
		UpdatedAt:     n.UpdatedAt,
	}
}

// playerOf resolves the user holding a PLAYS edge to the character, if any.
func playerOf(ctx context.Context, tx pgxv5.Tx, characterID int64) (string, error) {
	var playerID string
	err := tx.QueryRow(ctx, `
		SELECT u.public_id
		FROM edges e
		JOIN nodes u ON u.id = e.source_id
		WHERE e.target_id = $1 AND e.kind = $2 AND u.deleted_at IS NULL`,
		characterID, graph.EdgePlays).Scan(&playerID)
	if err != nil {
		if errors.Is(err, pgxv5.ErrNoRows) {
			return "", nil
		}
		return "", err
	}
	return playerID, nil
}

// setPlayer replaces the character's PLAYS edge. An empty playerID just
// clears it.
func setPlayer(ctx context.Context, tx pgxv5.Tx, characterID int64, playerID string) error {
	if err := deleteEdgesTo(ctx, tx, characterID, graph.EdgePlays); err != nil {
		return err
	}
	if playerID == "" {
		return nil
	}
	player, err := getNode(ctx, tx, playerID, graph.KindUser)
	if err != nil {
		return err
	}
	return insertEdge(ctx, tx, player.ID, characterID, graph.EdgePlays, nil)
}

func (s *GraphStore) CreateCharacter(ctx context.Context, actorID string, in graph.CreateCharacterInput) (graph.Character, error) {
	if err := requireActor(actorID); err != nil {
		return graph.Character{}, err
	}
	var character graph.Character
	err := s.WriteTx(ctx, func(tx pgxv5.Tx) error {
		campaign, err := scopedCampaign(ctx, tx, in.CampaignID, actorID)
		if err != nil {
			return err
		}
		n, err := insertNode(ctx, tx, graph.KindCharacter, in.Name, map[string]any{
			"description":    in.Description,
			"character_type": in.CharacterType,
		}, actorID)
		if err != nil {
			return err
		}
		if err := insertEdge(ctx, tx, n.ID, campaign.ID, graph.EdgeAppearsIn, nil); err != nil {
			return err
		}
		if in.PlayerID != "" {
			if err := setPlayer(ctx, tx, n.ID, in.PlayerID); err != nil {
				return err
			}
		}
		character = characterFromNode(n, campaign.PublicID, in.PlayerID)
		return nil
	})
	return character, err
}

func (s *GraphStore) GetCharacter(ctx context.Context, actorID, id string) (graph.Character, error) {
	var character graph.Character
	err := s.ReadTx(ctx, func(tx pgxv5.Tx) error {
		n, campaign, err := scopedNode(ctx, tx, id, graph.KindCharacter, graph.EdgeAppearsIn, actorID)
		if err != nil {
			return err
		}
		playerID, err := playerOf(ctx, tx, n.ID)
		if err != nil {
			return err
		}
		character = characterFromNode(n, campaign.PublicID, playerID)
		return nil
	})
	return character, err
}

func (s *GraphStore) ListCharacters(ctx context.Context, actorID, campaignID string, f graph.CharacterFilter, opts graph.ListOptions) (graph.Page[graph.Character], error) {
	refine := func(q *listQuery) {
		if f.CharacterType != "" {
			q.where("n.props->>'character_type' = %s", f.CharacterType)
		}
		if f.PlayerID != "" {
			q.where(`EXISTS (
				SELECT 1 FROM edges pe
				JOIN nodes pu ON pu.id = pe.source_id
				WHERE pe.target_id = n.id AND pe.kind = 'PLAYS'
				  AND pu.public_id = %s AND pu.deleted_at IS NULL)`, f.PlayerID)
		}
	}
	// Player links are resolved inside the same read transaction as the
	// page fetch so the page is one consistent snapshot.
	items := []graph.Character{}
	post := func(tx pgxv5.Tx, nodes []nodeRow) error {
		for _, n := range nodes {
			playerID, err := playerOf(ctx, tx, n.ID)
			if err != nil {
				return err
			}
			items = append(items, characterFromNode(n, campaignID, playerID))
		}
		return nil
	}
	_, total, err := s.listScoped(ctx, actorID, campaignID, graph.KindCharacter, graph.EdgeAppearsIn, opts, refine, post)
	if err != nil {
		return graph.Page[graph.Character]{}, err
	}
	return graph.Page[graph.Character]{Items: items, Total: total}, nil
}

func (s *GraphStore) UpdateCharacter(ctx context.Context, actorID, id string, in graph.UpdateCharacterInput) (graph.Character, error) {
	var character graph.Character
	err := s.WriteTx(ctx, func(tx pgxv5.Tx) error {
		n, campaign, err := scopedNode(ctx, tx, id, graph.KindCharacter, graph.EdgeAppearsIn, actorID)
		if err != nil {
			return err
		}
		props := map[string]any{}
		if in.Description != nil {
			props["description"] = *in.Description
		}
		if in.CharacterType != nil {
			props["character_type"] = *in.CharacterType
		}
		updated, err := updateNode(ctx, tx, n.ID, in.Name, props)
		if err != nil {
			return err
		}
		if in.PlayerID != nil {
			if err := setPlayer(ctx, tx, n.ID, *in.PlayerID); err != nil {
				return err
			}
		}
		playerID, err := playerOf(ctx, tx, n.ID)
		if err != nil {
			return err
		}
		character = characterFromNode(updated, campaign.PublicID, playerID)
		return nil
	})
	return character, err
}

// DeleteCharacter refuses while relationship nodes still reference the
// character as an endpoint.
func (s *GraphStore) DeleteCharacter(ctx context.Context, actorID, id string) error {
	return s.WriteTx(ctx, func(tx pgxv5.Tx) error {
		n, _, err := scopedNode(ctx, tx, id, graph.KindCharacter, graph.EdgeAppearsIn, actorID)
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
