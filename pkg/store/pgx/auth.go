package pgx

import (
	"context"

	"github.com/loreforge/loreforge/backend/pkg/graph"

	pgxv5 "github.com/jackc/pgx/v5"
)

// The authorization gate. Every gated operation resolves the owning campaign
// first and then runs one of these predicates inside the same transaction as
// the operation itself, so the check and the mutation can never race.

// requireActor distinguishes "no identity at all" from "identity without
// access"; the former must never surface as a forbidden result.
func requireActor(actorID string) error {
	if actorID == "" {
		return graph.ErrUnauthenticated
	}
	return nil
}

// isOwnerTx reports whether the user holds the campaign's CREATED edge.
func isOwnerTx(ctx context.Context, tx pgxv5.Tx, campaignID int64, userPublicID string) (bool, error) {
	var owner bool
	err := tx.QueryRow(ctx, `
		SELECT EXISTS (
			SELECT 1
			FROM edges e
			JOIN nodes u ON u.id = e.source_id
			WHERE e.target_id = $1 AND e.kind = $2
			  AND u.public_id = $3 AND u.kind = $4 AND u.deleted_at IS NULL)`,
		campaignID, graph.EdgeCreated, userPublicID, graph.KindUser).Scan(&owner)
	return owner, err
}

// isParticipantTx reports whether the user is the owner or holds any
// PARTICIPATES_IN edge to the campaign. This is the single predicate gating
// almost every operation in the layer.
func isParticipantTx(ctx context.Context, tx pgxv5.Tx, campaignID int64, userPublicID string) (bool, error) {
	var participant bool
	err := tx.QueryRow(ctx, `
		SELECT EXISTS (
			SELECT 1
			FROM edges e
			JOIN nodes u ON u.id = e.source_id
			WHERE e.target_id = $1 AND e.kind = ANY($2)
			  AND u.public_id = $3 AND u.kind = $4 AND u.deleted_at IS NULL)`,
		campaignID, []string{string(graph.EdgeCreated), string(graph.EdgeParticipatesIn)},
		userPublicID, graph.KindUser).Scan(&participant)
	return participant, err
}

func requireParticipant(ctx context.Context, tx pgxv5.Tx, campaignID int64, actorID string) error {
	if err := requireActor(actorID); err != nil {
		return err
	}
	ok, err := isParticipantTx(ctx, tx, campaignID, actorID)
	if err != nil {
		return err
	}
	if !ok {
		return graph.ErrForbidden
	}
	return nil
}

func requireOwner(ctx context.Context, tx pgxv5.Tx, campaignID int64, actorID string) error {
	if err := requireActor(actorID); err != nil {
		return err
	}
	ok, err := isOwnerTx(ctx, tx, campaignID, actorID)
	if err != nil {
		return err
	}
	if !ok {
		return graph.ErrForbidden
	}
	return nil
}
