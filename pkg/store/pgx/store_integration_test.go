package pgx

import (
	"context"
	"errors"
	"fmt"
	"os"
	"testing"

	"github.com/loreforge/loreforge/backend/pkg/graph"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/jackc/pgx/v5/pgxpool"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
)

// testPool stays nil when no docker daemon is available; the integration
// tests skip themselves in that case.
var testPool *pgxpool.Pool

func TestMain(m *testing.M) {
	os.Exit(runTests(m))
}

func runTests(m *testing.M) int {
	ctx := context.Background()

	ctr, err := tcpostgres.Run(ctx, "postgres:16-alpine",
		tcpostgres.WithDatabase("campaigns"),
		tcpostgres.WithUsername("test"),
		tcpostgres.WithPassword("test"),
		tcpostgres.BasicWaitStrategies(),
	)
	if err != nil {
		fmt.Fprintf(os.Stderr, "postgres container unavailable, integration tests will be skipped: %v\n", err)
		return m.Run()
	}
	defer func() { _ = ctr.Terminate(ctx) }()

	url, err := ctr.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		fmt.Fprintf(os.Stderr, "connection string: %v\n", err)
		return 1
	}

	mig, err := migrate.New("file://../../../migrations", url)
	if err != nil {
		fmt.Fprintf(os.Stderr, "migrate: %v\n", err)
		return 1
	}
	if err := mig.Up(); err != nil {
		fmt.Fprintf(os.Stderr, "migrate up: %v\n", err)
		return 1
	}

	pool, err := pgxpool.New(ctx, url)
	if err != nil {
		fmt.Fprintf(os.Stderr, "pgxpool: %v\n", err)
		return 1
	}
	defer pool.Close()

	testPool = pool
	return m.Run()
}

func testStore(t *testing.T) *GraphStore {
	t.Helper()
	if testPool == nil {
		t.Skip("requires a local docker daemon")
	}
	return NewGraphStore(testPool)
}

func createTestUser(t *testing.T, s *GraphStore, username string) graph.User {
	t.Helper()
	u, err := s.CreateUser(context.Background(), graph.CreateUserInput{
		Username: username,
		Email:    username + "@example.com",
	})
	if err != nil {
		t.Fatalf("CreateUser(%s): %v", username, err)
	}
	return u
}

func createTestCampaign(t *testing.T, s *GraphStore, ownerID, worldID, name string) graph.Campaign {
	t.Helper()
	c, err := s.CreateCampaign(context.Background(), ownerID, graph.CreateCampaignInput{
		Name:    name,
		WorldID: worldID,
	})
	if err != nil {
		t.Fatalf("CreateCampaign(%s): %v", name, err)
	}
	return c
}

func TestGetStatisticsGate(t *testing.T) {
	s := testStore(t)
	ctx := context.Background()

	owner := createTestUser(t, s, "stats-owner")
	outsider := createTestUser(t, s, "stats-outsider")
	campaign := createTestCampaign(t, s, owner.ID, "", "The Sunken Keep")

	if _, err := s.CreateSession(ctx, owner.ID, graph.CreateSessionInput{
		CampaignID:    campaign.ID,
		Title:         "Session Zero",
		SessionNumber: 0,
	}); err != nil {
		t.Fatalf("CreateSession: %v", err)
	}
	for _, name := range []string{"Mira", "Thole"} {
		if _, err := s.CreateCharacter(ctx, owner.ID, graph.CreateCharacterInput{
			CampaignID:    campaign.ID,
			Name:          name,
			CharacterType: "NPC",
		}); err != nil {
			t.Fatalf("CreateCharacter(%s): %v", name, err)
		}
	}

	stats, err := s.GetStatistics(ctx, owner.ID, campaign.ID)
	if err != nil {
		t.Fatalf("GetStatistics as owner: %v", err)
	}
	if stats.Sessions != 1 || stats.Characters != 2 {
		t.Errorf("counts = %d sessions / %d characters, want 1 / 2", stats.Sessions, stats.Characters)
	}
	if stats.Users != 1 {
		t.Errorf("Users = %d, want 1", stats.Users)
	}
	if stats.CampaignID != campaign.ID {
		t.Errorf("CampaignID = %q, want %q", stats.CampaignID, campaign.ID)
	}

	if _, err := s.GetStatistics(ctx, outsider.ID, campaign.ID); !errors.Is(err, graph.ErrForbidden) {
		t.Errorf("GetStatistics as outsider = %v, want ErrForbidden", err)
	}
	if _, err := s.GetStatistics(ctx, "", campaign.ID); !errors.Is(err, graph.ErrUnauthenticated) {
		t.Errorf("GetStatistics without identity = %v, want ErrUnauthenticated", err)
	}
}

func TestMembershipLifecycle(t *testing.T) {
	s := testStore(t)
	ctx := context.Background()

	owner := createTestUser(t, s, "member-owner")
	player := createTestUser(t, s, "member-player")
	campaign := createTestCampaign(t, s, owner.ID, "", "Ash and Ember")

	first, err := s.AddUser(ctx, owner.ID, campaign.ID, player.ID, graph.RolePlayer)
	if err != nil {
		t.Fatalf("AddUser: %v", err)
	}
	if first.Role != graph.RolePlayer {
		t.Errorf("Role = %q, want %q", first.Role, graph.RolePlayer)
	}
	if first.CreatedAt.IsZero() {
		t.Error("CreatedAt is zero, want the stored edge timestamp")
	}

	members, err := s.GetUsers(ctx, owner.ID, campaign.ID)
	if err != nil {
		t.Fatalf("GetUsers: %v", err)
	}
	if len(members) != 2 {
		t.Fatalf("got %d members, want 2", len(members))
	}
	roles := map[string]graph.Role{}
	for _, m := range members {
		roles[m.UserID] = m.Role
	}
	if roles[owner.ID] != graph.RoleOwner {
		t.Errorf("owner role = %q, want %q", roles[owner.ID], graph.RoleOwner)
	}
	if roles[player.ID] != graph.RolePlayer {
		t.Errorf("player role = %q, want %q", roles[player.ID], graph.RolePlayer)
	}

	// Upserting the same membership changes the role but keeps the
	// original join date.
	second, err := s.AddUser(ctx, owner.ID, campaign.ID, player.ID, graph.RoleGameMaster)
	if err != nil {
		t.Fatalf("AddUser upsert: %v", err)
	}
	if second.Role != graph.RoleGameMaster {
		t.Errorf("upserted role = %q, want %q", second.Role, graph.RoleGameMaster)
	}
	if !second.CreatedAt.Equal(first.CreatedAt) {
		t.Errorf("upsert moved CreatedAt from %v to %v", first.CreatedAt, second.CreatedAt)
	}

	if err := s.RemoveUser(ctx, owner.ID, campaign.ID, owner.ID); !errors.Is(err, graph.ErrOnlyOwner) {
		t.Errorf("RemoveUser(owner) = %v, want ErrOnlyOwner", err)
	}
	if err := s.RemoveUser(ctx, owner.ID, campaign.ID, player.ID); err != nil {
		t.Fatalf("RemoveUser(player): %v", err)
	}
	members, err = s.GetUsers(ctx, owner.ID, campaign.ID)
	if err != nil {
		t.Fatalf("GetUsers after removal: %v", err)
	}
	if len(members) != 1 || members[0].UserID != owner.ID {
		t.Errorf("members after removal = %+v, want only the owner", members)
	}
}

func TestDeleteCampaignDependentProtection(t *testing.T) {
	s := testStore(t)
	ctx := context.Background()

	owner := createTestUser(t, s, "dependents-owner")
	campaign := createTestCampaign(t, s, owner.ID, "", "The Long Road")

	session, err := s.CreateSession(ctx, owner.ID, graph.CreateSessionInput{
		CampaignID: campaign.ID,
		Title:      "Departure",
	})
	if err != nil {
		t.Fatalf("CreateSession: %v", err)
	}

	if err := s.DeleteCampaign(ctx, owner.ID, campaign.ID); !errors.Is(err, graph.ErrHasDependents) {
		t.Fatalf("DeleteCampaign with a session = %v, want ErrHasDependents", err)
	}
	// The blocked delete must leave the campaign untouched.
	if _, err := s.GetCampaign(ctx, owner.ID, campaign.ID); err != nil {
		t.Fatalf("GetCampaign after blocked delete: %v", err)
	}

	if err := s.DeleteSession(ctx, owner.ID, session.ID); err != nil {
		t.Fatalf("DeleteSession: %v", err)
	}
	if err := s.DeleteCampaign(ctx, owner.ID, campaign.ID); err != nil {
		t.Fatalf("DeleteCampaign after clearing: %v", err)
	}
	if _, err := s.GetCampaign(ctx, owner.ID, campaign.ID); !errors.Is(err, graph.ErrNotFound) {
		t.Errorf("GetCampaign after delete = %v, want ErrNotFound", err)
	}
}

func TestUpdateCampaignWorldReassignment(t *testing.T) {
	s := testStore(t)
	ctx := context.Background()

	owner := createTestUser(t, s, "reassign-owner")
	w1, err := s.CreateWorld(ctx, owner.ID, graph.CreateWorldInput{Name: "Aldren"})
	if err != nil {
		t.Fatalf("CreateWorld: %v", err)
	}
	w2, err := s.CreateWorld(ctx, owner.ID, graph.CreateWorldInput{Name: "Verros"})
	if err != nil {
		t.Fatalf("CreateWorld: %v", err)
	}
	campaign := createTestCampaign(t, s, owner.ID, w1.ID, "Crown of Salt")

	newWorld := w2.ID
	updated, err := s.UpdateCampaign(ctx, owner.ID, campaign.ID, graph.UpdateCampaignInput{
		WorldID: &newWorld,
	})
	if err != nil {
		t.Fatalf("UpdateCampaign: %v", err)
	}
	if updated.WorldID != w2.ID {
		t.Errorf("WorldID = %q, want %q", updated.WorldID, w2.ID)
	}

	// Reassignment must be atomic: exactly one PART_OF edge afterwards.
	var edgeCount int64
	err = testPool.QueryRow(ctx, `
		SELECT COUNT(*) FROM edges e
		JOIN nodes c ON c.id = e.source_id
		WHERE c.public_id = $1 AND e.kind = $2`,
		campaign.ID, graph.EdgePartOf).Scan(&edgeCount)
	if err != nil {
		t.Fatalf("counting PART_OF edges: %v", err)
	}
	if edgeCount != 1 {
		t.Errorf("PART_OF edge count = %d, want 1", edgeCount)
	}
}

func TestListSessionsPaginationTotal(t *testing.T) {
	s := testStore(t)
	ctx := context.Background()

	owner := createTestUser(t, s, "paging-owner")
	campaign := createTestCampaign(t, s, owner.ID, "", "Five Nights")

	for i := 1; i <= 5; i++ {
		_, err := s.CreateSession(ctx, owner.ID, graph.CreateSessionInput{
			CampaignID:    campaign.ID,
			Title:         fmt.Sprintf("Night %d", i),
			SessionNumber: i,
		})
		if err != nil {
			t.Fatalf("CreateSession %d: %v", i, err)
		}
	}

	page, err := s.ListSessions(ctx, owner.ID, campaign.ID, graph.ListOptions{
		Page:   2,
		Limit:  2,
		SortBy: "session_number",
	})
	if err != nil {
		t.Fatalf("ListSessions: %v", err)
	}
	if page.Total != 5 {
		t.Errorf("Total = %d, want 5", page.Total)
	}
	if len(page.Items) != 2 {
		t.Fatalf("got %d items, want 2", len(page.Items))
	}
	if page.Items[0].SessionNumber != 3 || page.Items[1].SessionNumber != 4 {
		t.Errorf("page 2 = sessions %d,%d, want 3,4",
			page.Items[0].SessionNumber, page.Items[1].SessionNumber)
	}

	last, err := s.ListSessions(ctx, owner.ID, campaign.ID, graph.ListOptions{
		Page:   3,
		Limit:  2,
		SortBy: "session_number",
	})
	if err != nil {
		t.Fatalf("ListSessions last page: %v", err)
	}
	if last.Total != 5 || len(last.Items) != 1 {
		t.Errorf("last page = %d items of %d, want 1 of 5", len(last.Items), last.Total)
	}
}
