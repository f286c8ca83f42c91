package pgx

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/loreforge/loreforge/backend/pkg/graph"

	pgxv5 "github.com/jackc/pgx/v5"
	gonanoid "github.com/matoous/go-nanoid/v2"
)

// nodeRow is the raw shape of one nodes table row. The internal id is only
// ever used inside a transaction; callers see public ids.
type nodeRow struct {
	ID        int64
	PublicID  string
	Kind      graph.NodeKind
	Name      string
	Props     map[string]any
	CreatedBy string
	CreatedAt time.Time
	UpdatedAt time.Time
}

const nodeColumns = "id, public_id, kind, name, props, created_by, created_at, updated_at"

func scanNode(row pgxv5.Row) (nodeRow, error) {
	var n nodeRow
	var rawProps []byte
	err := row.Scan(&n.ID, &n.PublicID, &n.Kind, &n.Name, &rawProps, &n.CreatedBy, &n.CreatedAt, &n.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgxv5.ErrNoRows) {
			return nodeRow{}, graph.ErrNotFound
		}
		return nodeRow{}, err
	}
	if len(rawProps) > 0 {
		if err := json.Unmarshal(rawProps, &n.Props); err != nil {
			return nodeRow{}, err
		}
	}
	if n.Props == nil {
		n.Props = map[string]any{}
	}
	return n, nil
}

// collectNodes drains a node query's rows. The caller's query must select
// nodeColumns (optionally prefixed).
func collectNodes(rows pgxv5.Rows) ([]nodeRow, error) {
	defer rows.Close()
	var nodes []nodeRow
	for rows.Next() {
		n, err := scanNode(rows)
		if err != nil {
			return nil, err
		}
		nodes = append(nodes, n)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return nodes, nil
}

// getNode resolves a live node by public id and kind. Soft-deleted nodes and
// kind mismatches both come back as graph.ErrNotFound.
func getNode(ctx context.Context, tx pgxv5.Tx, publicID string, kind graph.NodeKind) (nodeRow, error) {
	row := tx.QueryRow(ctx, `
		SELECT `+nodeColumns+`
		FROM nodes
		WHERE public_id = $1 AND kind = $2 AND deleted_at IS NULL`,
		publicID, kind)
	return scanNode(row)
}

func insertNode(ctx context.Context, tx pgxv5.Tx, kind graph.NodeKind, name string, props map[string]any, createdBy string) (nodeRow, error) {
	publicID, err := gonanoid.New()
	if err != nil {
		return nodeRow{}, err
	}
	if props == nil {
		props = map[string]any{}
	}
	row := tx.QueryRow(ctx, `
		INSERT INTO nodes (public_id, kind, name, props, created_by)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING `+nodeColumns,
		publicID, kind, name, props, createdBy)
	return scanNode(row)
}

// updateNode merges props into the node's existing property bag and replaces
// the name when one is supplied. Omitted fields stay untouched.
func updateNode(ctx context.Context, tx pgxv5.Tx, id int64, name *string, props map[string]any) (nodeRow, error) {
	if props == nil {
		props = map[string]any{}
	}
	row := tx.QueryRow(ctx, `
		UPDATE nodes
		SET name = COALESCE($2, name),
		    props = props || $3,
		    updated_at = now()
		WHERE id = $1 AND deleted_at IS NULL
		RETURNING `+nodeColumns,
		id, name, props)
	return scanNode(row)
}

func softDeleteNode(ctx context.Context, tx pgxv5.Tx, id int64) error {
	tag, err := tx.Exec(ctx, `
		UPDATE nodes SET deleted_at = now()
		WHERE id = $1 AND deleted_at IS NULL`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return graph.ErrNotFound
	}
	return nil
}

func insertEdge(ctx context.Context, tx pgxv5.Tx, sourceID, targetID int64, kind graph.EdgeKind, props map[string]any) error {
	if props == nil {
		props = map[string]any{}
	}
	_, err := tx.Exec(ctx, `
		INSERT INTO edges (source_id, target_id, kind, props)
		VALUES ($1, $2, $3, $4)`,
		sourceID, targetID, kind, props)
	return err
}

// deleteEdgesFrom removes every outgoing edge of the given kind. Used when a
// single-target containment edge is reassigned.
func deleteEdgesFrom(ctx context.Context, tx pgxv5.Tx, sourceID int64, kind graph.EdgeKind) error {
	_, err := tx.Exec(ctx, `
		DELETE FROM edges WHERE source_id = $1 AND kind = $2`, sourceID, kind)
	return err
}

// deleteEdgesTo removes every incoming edge of the given kind, e.g. the
// PLAYS edge pointing at a character that changes hands.
func deleteEdgesTo(ctx context.Context, tx pgxv5.Tx, targetID int64, kind graph.EdgeKind) error {
	_, err := tx.Exec(ctx, `
		DELETE FROM edges WHERE target_id = $1 AND kind = $2`, targetID, kind)
	return err
}

func deleteEdge(ctx context.Context, tx pgxv5.Tx, sourceID, targetID int64, kind graph.EdgeKind) (bool, error) {
	tag, err := tx.Exec(ctx, `
		DELETE FROM edges WHERE source_id = $1 AND target_id = $2 AND kind = $3`,
		sourceID, targetID, kind)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

func edgeExists(ctx context.Context, tx pgxv5.Tx, sourceID, targetID int64, kind graph.EdgeKind) (bool, error) {
	var exists bool
	err := tx.QueryRow(ctx, `
		SELECT EXISTS (
			SELECT 1 FROM edges
			WHERE source_id = $1 AND target_id = $2 AND kind = $3)`,
		sourceID, targetID, kind).Scan(&exists)
	return exists, err
}

// containingNode follows the node's single outgoing containment edge of the
// given kind to its live parent. graph.ErrNotFound when no such edge exists.
func containingNode(ctx context.Context, tx pgxv5.Tx, childID int64, kind graph.EdgeKind, parentKind graph.NodeKind) (nodeRow, error) {
	row := tx.QueryRow(ctx, `
		SELECT `+prefixedNodeColumns("p")+`
		FROM edges e
		JOIN nodes p ON p.id = e.target_id
		WHERE e.source_id = $1 AND e.kind = $2 AND p.kind = $3 AND p.deleted_at IS NULL`,
		childID, kind, parentKind)
	return scanNode(row)
}

// dependentCount counts live nodes holding an incoming edge of any of the
// given kinds against the node. A non-zero count blocks deletion.
func dependentCount(ctx context.Context, tx pgxv5.Tx, nodeID int64, kinds []graph.EdgeKind) (int64, error) {
	ks := make([]string, len(kinds))
	for i, k := range kinds {
		ks[i] = string(k)
	}
	var count int64
	err := tx.QueryRow(ctx, `
		SELECT COUNT(*)
		FROM edges e
		JOIN nodes s ON s.id = e.source_id
		WHERE e.target_id = $1 AND e.kind = ANY($2) AND s.deleted_at IS NULL`,
		nodeID, ks).Scan(&count)
	return count, err
}

func prefixedNodeColumns(alias string) string {
	return alias + ".id, " + alias + ".public_id, " + alias + ".kind, " + alias + ".name, " +
		alias + ".props, " + alias + ".created_by, " + alias + ".created_at, " + alias + ".updated_at"
}

// propString reads a string property, tolerating absence.
func propString(props map[string]any, key string) string {
	if v, ok := props[key].(string); ok {
		return v
	}
	return ""
}

// propInt reads a numeric property. JSON round-trips numbers as float64.
func propInt(props map[string]any, key string) int {
	switch v := props[key].(type) {
	case float64:
		return int(v)
	case int:
		return v
	}
	return 0
}
