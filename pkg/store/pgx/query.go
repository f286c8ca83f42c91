package pgx

import (
	"fmt"
	"strings"

	"github.com/loreforge/loreforge/backend/pkg/graph"
)

// Caller-supplied sort fields are looked up in a per-kind allow-list and
// resolved to fixed SQL expressions. Nothing from the caller is ever spliced
// into a query; unknown fields fall back to creation order.

var commonSortFields = map[string]string{
	"name":       "n.name",
	"created_at": "n.created_at",
	"updated_at": "n.updated_at",
}

var kindSortFields = map[graph.NodeKind]map[string]string{
	graph.KindSession: {
		"title":          "n.name",
		"session_number": "(n.props->>'session_number')::int",
		"session_date":   "n.props->>'session_date'",
	},
	graph.KindEvent: {
		"title":      "n.name",
		"event_date": "n.props->>'event_date'",
	},
	graph.KindCharacter: {
		"character_type": "n.props->>'character_type'",
	},
	graph.KindLocation: {
		"location_type": "n.props->>'location_type'",
	},
	graph.KindItem: {
		"item_type": "n.props->>'item_type'",
	},
	graph.KindRelationship: {
		"relationship_type": "n.props->>'relationship_type'",
	},
}

// orderByClause builds the ORDER BY for a validated sort. The internal id is
// always appended as a tiebreak so pages are stable under equal sort keys.
func orderByClause(kind graph.NodeKind, opts graph.ListOptions) string {
	expr := "n.created_at"
	if e, ok := commonSortFields[opts.SortBy]; ok {
		expr = e
	} else if fields, ok := kindSortFields[kind]; ok {
		if e, ok := fields[opts.SortBy]; ok {
			expr = e
		}
	}
	dir := "ASC"
	if opts.SortOrder == graph.SortDesc {
		dir = "DESC"
	}
	return fmt.Sprintf("ORDER BY %s %s, n.id ASC", expr, dir)
}

// listQuery accumulates WHERE conditions with positional parameters for a
// campaign-scoped node listing. The count and page statements share the same
// FROM/WHERE so a total computed in the same transaction always matches the
// page it was returned with.
type listQuery struct {
	from  string
	conds []string
	args  []any
}

// newScopedListQuery targets live nodes of one kind attached to the campaign
// through its containment edge kind.
func newScopedListQuery(kind graph.NodeKind, containment graph.EdgeKind, campaignPublicID string) *listQuery {
	q := &listQuery{
		from: `FROM nodes n
		JOIN edges e ON e.source_id = n.id
		JOIN nodes c ON c.id = e.target_id`,
	}
	q.where("e.kind = %s", string(containment))
	q.where("c.public_id = %s", campaignPublicID)
	q.conds = append(q.conds, "c.kind = 'Campaign'", "c.deleted_at IS NULL", "n.deleted_at IS NULL")
	q.where("n.kind = %s", string(kind))
	return q
}

// newNodeListQuery targets live nodes of one kind with no campaign scoping
// (worlds, users).
func newNodeListQuery(kind graph.NodeKind) *listQuery {
	q := &listQuery{from: "FROM nodes n"}
	q.conds = append(q.conds, "n.deleted_at IS NULL")
	q.where("n.kind = %s", string(kind))
	return q
}

// where appends a condition whose %s verb is replaced with the next
// positional placeholder bound to arg.
func (q *listQuery) where(cond string, arg any) {
	q.args = append(q.args, arg)
	q.conds = append(q.conds, fmt.Sprintf(cond, fmt.Sprintf("$%d", len(q.args))))
}

func (q *listQuery) whereClause() string {
	return "WHERE " + strings.Join(q.conds, " AND ")
}

func (q *listQuery) countSQL() (string, []any) {
	return "SELECT COUNT(*) " + q.from + " " + q.whereClause(), q.args
}

func (q *listQuery) pageSQL(kind graph.NodeKind, opts graph.ListOptions) (string, []any) {
	args := append(append([]any{}, q.args...), opts.Limit, opts.Offset())
	sql := fmt.Sprintf(
		"SELECT %s %s %s %s LIMIT $%d OFFSET $%d",
		prefixedNodeColumns("n"), q.from, q.whereClause(),
		orderByClause(kind, opts), len(args)-1, len(args),
	)
	return sql, args
}
