package pgx

import (
	"context"

	"github.com/loreforge/loreforge/backend/pkg/graph"

	pgxv5 "github.com/jackc/pgx/v5"
)

func userFromNode(n nodeRow) graph.User {
	return graph.User{
		ID:        n.PublicID,
		Username:  n.Name,
		Email:     propString(n.Props, "email"),
		Bio:       propString(n.Props, "bio"),
		CreatedAt: n.CreatedAt,
		UpdatedAt: n.UpdatedAt,
	}
}

// CreateUser provisions an account node. Usernames are unique among live
// users. Identity issuance itself happens outside this layer; this is called
// when a fresh identity is first seen.
func (s *GraphStore) CreateUser(ctx context.Context, in graph.CreateUserInput) (graph.User, error) {
	var user graph.User
	err := s.WriteTx(ctx, func(tx pgxv5.Tx) error {
		var taken bool
		err := tx.QueryRow(ctx, `
			SELECT EXISTS (
				SELECT 1 FROM nodes
				WHERE kind = $1 AND LOWER(name) = LOWER($2) AND deleted_at IS NULL)`,
			graph.KindUser, in.Username).Scan(&taken)
		if err != nil {
			return err
		}
		if taken {
			return graph.ErrDuplicate
		}

		n, err := insertNode(ctx, tx, graph.KindUser, in.Username, map[string]any{
			"email": in.Email,
			"bio":   in.Bio,
		}, "")
		if err != nil {
			return err
		}
		user = userFromNode(n)
		return nil
	})
	return user, err
}

func (s *GraphStore) GetUser(ctx context.Context, actorID, id string) (graph.User, error) {
	if err := requireActor(actorID); err != nil {
		return graph.User{}, err
	}
	var user graph.User
	err := s.ReadTx(ctx, func(tx pgxv5.Tx) error {
		n, err := getNode(ctx, tx, id, graph.KindUser)
		if err != nil {
			return err
		}
		user = userFromNode(n)
		return nil
	})
	return user, err
}

// UpdateUser merges the supplied fields into the user's own record. Users may
// only modify themselves.
func (s *GraphStore) UpdateUser(ctx context.Context, actorID, id string, in graph.UpdateUserInput) (graph.User, error) {
	if err := requireActor(actorID); err != nil {
		return graph.User{}, err
	}
	if actorID != id {
		return graph.User{}, graph.ErrForbidden
	}
	var user graph.User
	err := s.WriteTx(ctx, func(tx pgxv5.Tx) error {
		n, err := getNode(ctx, tx, id, graph.KindUser)
		if err != nil {
			return err
		}
		props := map[string]any{}
		if in.Email != nil {
			props["email"] = *in.Email
		}
		if in.Bio != nil {
			props["bio"] = *in.Bio
		}
		updated, err := updateNode(ctx, tx, n.ID, in.Username, props)
		if err != nil {
			return err
		}
		user = userFromNode(updated)
		return nil
	})
	return user, err
}

// DeleteUser soft-deletes the account. A user still owning campaigns cannot
// be removed; ownership would be orphaned.
func (s *GraphStore) DeleteUser(ctx context.Context, actorID, id string) error {
	if err := requireActor(actorID); err != nil {
		return err
	}
	if actorID != id {
		return graph.ErrForbidden
	}
	return s.WriteTx(ctx, func(tx pgxv5.Tx) error {
		n, err := getNode(ctx, tx, id, graph.KindUser)
		if err != nil {
			return err
		}

		var owned int64
		err = tx.QueryRow(ctx, `
			SELECT COUNT(*)
			FROM edges e
			JOIN nodes c ON c.id = e.target_id
			WHERE e.source_id = $1 AND e.kind = $2 AND c.deleted_at IS NULL`,
			n.ID, graph.EdgeCreated).Scan(&owned)
		if err != nil {
			return err
		}
		if owned > 0 {
			return graph.ErrHasDependents
		}

		return softDeleteNode(ctx, tx, n.ID)
	})
}
