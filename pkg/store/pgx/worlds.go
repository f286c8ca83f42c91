package pgx

import (
	"context"

	"github.com/loreforge/loreforge/backend/pkg/graph"

	pgxv5 "github.com/jackc/pgx/v5"
)

func worldFromNode(n nodeRow) graph.World {
	return graph.World{
		ID:          n.PublicID,
		Name:        n.Name,
		Description: propString(n.Props, "description"),
		System:      propString(n.Props, "system"),
		CreatedBy:   n.CreatedBy,
		CreatedAt:   n.CreatedAt,
		UpdatedAt:   n.UpdatedAt,
	}
}

func (s *GraphStore) CreateWorld(ctx context.Context, actorID string, in graph.CreateWorldInput) (graph.World, error) {
	if err := requireActor(actorID); err != nil {
		return graph.World{}, err
	}
	var world graph.World
	err := s.WriteTx(ctx, func(tx pgxv5.Tx) error {
		n, err := insertNode(ctx, tx, graph.KindWorld, in.Name, map[string]any{
			"description": in.Description,
			"system":      in.System,
		}, actorID)
		if err != nil {
			return err
		}
		world = worldFromNode(n)
		return nil
	})
	return world, err
}

func (s *GraphStore) GetWorld(ctx context.Context, actorID, id string) (graph.World, error) {
	if err := requireActor(actorID); err != nil {
		return graph.World{}, err
	}
	var world graph.World
	err := s.ReadTx(ctx, func(tx pgxv5.Tx) error {
		n, err := getNode(ctx, tx, id, graph.KindWorld)
		if err != nil {
			return err
		}
		world = worldFromNode(n)
		return nil
	})
	return world, err
}

func (s *GraphStore) ListWorlds(ctx context.Context, actorID string, f graph.WorldFilter, opts graph.ListOptions) (graph.Page[graph.World], error) {
	if err := requireActor(actorID); err != nil {
		return graph.Page[graph.World]{}, err
	}
	opts = opts.Normalize()

	page := graph.Page[graph.World]{Items: []graph.World{}}
	err := s.ReadTx(ctx, func(tx pgxv5.Tx) error {
		q := newNodeListQuery(graph.KindWorld)
		if f.CreatedBy != "" {
			q.where("n.created_by = %s", f.CreatedBy)
		}

		countSQL, countArgs := q.countSQL()
		if err := tx.QueryRow(ctx, countSQL, countArgs...).Scan(&page.Total); err != nil {
			return err
		}

		pageSQL, pageArgs := q.pageSQL(graph.KindWorld, opts)
		rows, err := tx.Query(ctx, pageSQL, pageArgs...)
		if err != nil {
			return err
		}
		defer rows.Close()
		for rows.Next() {
			n, err := scanNode(rows)
			if err != nil {
				return err
			}
			page.Items = append(page.Items, worldFromNode(n))
		}
		return rows.Err()
	})
	if err != nil {
		return graph.Page[graph.World]{}, err
	}
	return page, nil
}

// UpdateWorld merges the supplied fields. Only the world's creator may modify
// it; worlds sit above campaign-level membership.
func (s *GraphStore) UpdateWorld(ctx context.Context, actorID, id string, in graph.UpdateWorldInput) (graph.World, error) {
	if err := requireActor(actorID); err != nil {
		return graph.World{}, err
	}
	var world graph.World
	err := s.WriteTx(ctx, func(tx pgxv5.Tx) error {
		n, err := getNode(ctx, tx, id, graph.KindWorld)
		if err != nil {
			return err
		}
		if n.CreatedBy != actorID {
			return graph.ErrForbidden
		}
		props := map[string]any{}
		if in.Description != nil {
			props["description"] = *in.Description
		}
		if in.System != nil {
			props["system"] = *in.System
		}
		updated, err := updateNode(ctx, tx, n.ID, in.Name, props)
		if err != nil {
			return err
		}
		world = worldFromNode(updated)
		return nil
	})
	return world, err
}

// DeleteWorld soft-deletes the world unless campaigns still point at it.
func (s *GraphStore) DeleteWorld(ctx context.Context, actorID, id string) error {
	if err := requireActor(actorID); err != nil {
		return err
	}
	return s.WriteTx(ctx, func(tx pgxv5.Tx) error {
		n, err := getNode(ctx, tx, id, graph.KindWorld)
		if err != nil {
			return err
		}
		if n.CreatedBy != actorID {
			return graph.ErrForbidden
		}

		count, err := dependentCount(ctx, tx, n.ID, []graph.EdgeKind{graph.EdgePartOf})
		if err != nil {
			return err
		}
		if count > 0 {
			return graph.ErrHasDependents
		}

		return softDeleteNode(ctx, tx, n.ID)
	})
}
