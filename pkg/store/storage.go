package store

import (
	"context"

	"github.com/loreforge/loreforge/backend/pkg/graph"
)

// Storage is the contract between the campaign graph layer and its callers.
// Callers supply a resolved, already-authenticated user id as actorID (empty
// string for an absent identity); payloads arrive as typed inputs, never as
// wire formats. Every method runs as a single transaction against the
// underlying store and returns either a record, graph.ErrNotFound, or one of
// the other typed failures from pkg/graph.
type Storage interface {
	UserStorage
	WorldStorage
	CampaignStorage
	MembershipStorage
	SessionStorage
	CharacterStorage
	LocationStorage
	ItemStorage
	EventStorage
	RelationshipStorage
}

// UserStorage manages account identity nodes. Users are not campaign scoped;
// a user may only modify their own record.
type UserStorage interface {
	CreateUser(ctx context.Context, in graph.CreateUserInput) (graph.User, error)
	GetUser(ctx context.Context, actorID, id string) (graph.User, error)
	UpdateUser(ctx context.Context, actorID, id string, in graph.UpdateUserInput) (graph.User, error)
	DeleteUser(ctx context.Context, actorID, id string) error
}

type WorldStorage interface {
	CreateWorld(ctx context.Context, actorID string, in graph.CreateWorldInput) (graph.World, error)
	GetWorld(ctx context.Context, actorID, id string) (graph.World, error)
	ListWorlds(ctx context.Context, actorID string, f graph.WorldFilter, opts graph.ListOptions) (graph.Page[graph.World], error)
	UpdateWorld(ctx context.Context, actorID, id string, in graph.UpdateWorldInput) (graph.World, error)
	DeleteWorld(ctx context.Context, actorID, id string) error
}

// CampaignStorage manages campaign nodes. Creation records the actor as the
// campaign owner; deletion requires ownership and is rejected while the
// campaign still has dependent entities.
type CampaignStorage interface {
	CreateCampaign(ctx context.Context, actorID string, in graph.CreateCampaignInput) (graph.Campaign, error)
	GetCampaign(ctx context.Context, actorID, id string) (graph.Campaign, error)
	ListCampaigns(ctx context.Context, actorID string, f graph.CampaignFilter, opts graph.ListOptions) (graph.Page[graph.Campaign], error)
	UpdateCampaign(ctx context.Context, actorID, id string, in graph.UpdateCampaignInput) (graph.Campaign, error)
	DeleteCampaign(ctx context.Context, actorID, id string) error
	GetStatistics(ctx context.Context, actorID, campaignID string) (graph.Statistics, error)
}

// MembershipStorage manages the Campaign<->User edge set.
type MembershipStorage interface {
	IsOwner(ctx context.Context, campaignID, userID string) (bool, error)
	IsParticipant(ctx context.Context, campaignID, userID string) (bool, error)
	AddUser(ctx context.Context, actorID, campaignID, userID string, role graph.Role) (graph.Membership, error)
	RemoveUser(ctx context.Context, actorID, campaignID, userID string) error
	GetUsers(ctx context.Context, actorID, campaignID string) ([]graph.Membership, error)
}

type SessionStorage interface {
	CreateSession(ctx context.Context, actorID string, in graph.CreateSessionInput) (graph.Session, error)
	GetSession(ctx context.Context, actorID, id string) (graph.Session, error)
	ListSessions(ctx context.Context, actorID, campaignID string, opts graph.ListOptions) (graph.Page[graph.Session], error)
	UpdateSession(ctx context.Context, actorID, id string, in graph.UpdateSessionInput) (graph.Session, error)
	DeleteSession(ctx context.Context, actorID, id string) error
}

type CharacterStorage interface {
	CreateCharacter(ctx context.Context, actorID string, in graph.CreateCharacterInput) (graph.Character, error)
	GetCharacter(ctx context.Context, actorID, id string) (graph.Character, error)
	ListCharacters(ctx context.Context, actorID, campaignID string, f graph.CharacterFilter, opts graph.ListOptions) (graph.Page[graph.Character], error)
	UpdateCharacter(ctx context.Context, actorID, id string, in graph.UpdateCharacterInput) (graph.Character, error)
	DeleteCharacter(ctx context.Context, actorID, id string) error
}

type LocationStorage interface {
	CreateLocation(ctx context.Context, actorID string, in graph.CreateLocationInput) (graph.Location, error)
	GetLocation(ctx context.Context, actorID, id string) (graph.Location, error)
	ListLocations(ctx context.Context, actorID, campaignID string, f graph.LocationFilter, opts graph.ListOptions) (graph.Page[graph.Location], error)
	UpdateLocation(ctx context.Context, actorID, id string, in graph.UpdateLocationInput) (graph.Location, error)
	DeleteLocation(ctx context.Context, actorID, id string) error
}

type ItemStorage interface {
	CreateItem(ctx context.Context, actorID string, in graph.CreateItemInput) (graph.Item, error)
	GetItem(ctx context.Context, actorID, id string) (graph.Item, error)
	ListItems(ctx context.Context, actorID, campaignID string, f graph.ItemFilter, opts graph.ListOptions) (graph.Page[graph.Item], error)
	UpdateItem(ctx context.Context, actorID, id string, in graph.UpdateItemInput) (graph.Item, error)
	DeleteItem(ctx context.Context, actorID, id string) error
}

type EventStorage interface {
	CreateEvent(ctx context.Context, actorID string, in graph.CreateEventInput) (graph.Event, error)
	GetEvent(ctx context.Context, actorID, id string) (graph.Event, error)
	ListEvents(ctx context.Context, actorID, campaignID string, opts graph.ListOptions) (graph.Page[graph.Event], error)
	UpdateEvent(ctx context.Context, actorID, id string, in graph.UpdateEventInput) (graph.Event, error)
	DeleteEvent(ctx context.Context, actorID, id string) error
}

// RelationshipStorage manages typed associations between arbitrary campaign
// entities, independent of membership edges.
type RelationshipStorage interface {
	CreateRelationship(ctx context.Context, actorID string, in graph.CreateRelationshipInput) (graph.Relationship, error)
	GetRelationship(ctx context.Context, actorID, id string) (graph.Relationship, error)
	ListRelationships(ctx context.Context, actorID, campaignID string, f graph.RelationshipFilter, opts graph.ListOptions) (graph.Page[graph.Relationship], error)
	UpdateRelationship(ctx context.Context, actorID, id string, in graph.UpdateRelationshipInput) (graph.Relationship, error)
	DeleteRelationship(ctx context.Context, actorID, id string) error
}
