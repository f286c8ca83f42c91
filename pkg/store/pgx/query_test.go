package pgx

import (
	"strings"
	"testing"

	"github.com/loreforge/loreforge/backend/pkg/graph"
)

func TestOrderByClause(t *testing.T) {
	tests := []struct {
		name string
		kind graph.NodeKind
		opts graph.ListOptions
		want string
	}{
		{
			name: "common field",
			kind: graph.KindCampaign,
			opts: graph.ListOptions{SortBy: "name"},
			want: "ORDER BY n.name ASC, n.id ASC",
		},
		{
			name: "kind-specific field",
			kind: graph.KindSession,
			opts: graph.ListOptions{SortBy: "session_number", SortOrder: graph.SortDesc},
			want: "ORDER BY (n.props->>'session_number')::int DESC, n.id ASC",
		},
		{
			name: "unknown field falls back to creation order",
			kind: graph.KindCampaign,
			opts: graph.ListOptions{SortBy: "password; DROP TABLE nodes"},
			want: "ORDER BY n.created_at ASC, n.id ASC",
		},
		{
			name: "field from another kind is rejected",
			kind: graph.KindCharacter,
			opts: graph.ListOptions{SortBy: "event_date"},
			want: "ORDER BY n.created_at ASC, n.id ASC",
		},
		{
			name: "empty sort defaults",
			kind: graph.KindItem,
			opts: graph.ListOptions{},
			want: "ORDER BY n.created_at ASC, n.id ASC",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := orderByClause(tt.kind, tt.opts)
			if got != tt.want {
				t.Errorf("orderByClause() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestListQueryPlaceholders(t *testing.T) {
	q := newScopedListQuery(graph.KindCharacter, graph.EdgeAppearsIn, "camp_1")
	q.where("n.props->>'character_type' = %s", "NPC")

	sql, args := q.countSQL()
	if len(args) != 4 {
		t.Fatalf("expected 4 args, got %d", len(args))
	}
	for _, ph := range []string{"$1", "$2", "$3", "$4"} {
		if !strings.Contains(sql, ph) {
			t.Errorf("count SQL missing placeholder %s: %s", ph, sql)
		}
	}
	if strings.Contains(sql, "NPC") || strings.Contains(sql, "camp_1") {
		t.Errorf("count SQL contains a raw argument value: %s", sql)
	}
}

func TestListQueryRepeatedPlaceholder(t *testing.T) {
	q := newNodeListQuery(graph.KindRelationship)
	q.where("(n.props->>'source_entity_id' = %[1]s OR n.props->>'target_entity_id' = %[1]s)", "char_7")

	sql, args := q.countSQL()
	if len(args) != 2 {
		t.Fatalf("expected 2 args, got %d", len(args))
	}
	if strings.Count(sql, "$2") != 2 {
		t.Errorf("expected $2 to bind both sides of the OR: %s", sql)
	}
}

func TestListQueryPageSQLBindsLimitOffset(t *testing.T) {
	q := newNodeListQuery(graph.KindWorld)
	opts := graph.ListOptions{Page: 3, Limit: 10}.Normalize()

	sql, args := q.pageSQL(graph.KindWorld, opts)
	if len(args) != 3 {
		t.Fatalf("expected 3 args, got %d", len(args))
	}
	if args[1] != 10 {
		t.Errorf("limit arg = %v, want 10", args[1])
	}
	if args[2] != 20 {
		t.Errorf("offset arg = %v, want 20", args[2])
	}
	if !strings.Contains(sql, "LIMIT $2 OFFSET $3") {
		t.Errorf("page SQL missing bound limit/offset: %s", sql)
	}
}

func TestEndpointResolversCoverDeclaredTypes(t *testing.T) {
	declared := []graph.EntityType{
		graph.EntityCharacter,
		graph.EntityLocation,
		graph.EntityEvent,
		graph.EntityItem,
	}
	for _, et := range declared {
		if !graph.ValidEntityType(et) {
			t.Errorf("entity type %q not accepted by ValidEntityType", et)
		}
		if endpointResolvers[et] == nil {
			t.Errorf("no endpoint resolver registered for %q", et)
		}
	}
	if len(endpointResolvers) != len(declared) {
		t.Errorf("resolver table has %d entries, want %d", len(endpointResolvers), len(declared))
	}
}
