package graph

import "time"

// NodeKind identifies the type of a node in the campaign graph.
type NodeKind string

const (
	KindUser         NodeKind = "User"
	KindWorld        NodeKind = "RPGWorld"
	KindCampaign     NodeKind = "Campaign"
	KindSession      NodeKind = "Session"
	KindCharacter    NodeKind = "Character"
	KindLocation     NodeKind = "Location"
	KindItem         NodeKind = "Item"
	KindEvent        NodeKind = "Event"
	KindRelationship NodeKind = "Relationship"
)

// EdgeKind identifies the type of a directional edge between two nodes.
type EdgeKind string

const (
	// EdgeCreated marks the campaign owner. Every campaign has exactly one
	// CREATED edge at all times.
	EdgeCreated EdgeKind = "CREATED"

	// EdgeParticipatesIn carries a relationship_type property with the
	// member's role. The authoritative owner marker remains CREATED.
	EdgeParticipatesIn EdgeKind = "PARTICIPATES_IN"

	// Containment edges. Each subordinate node has at most one outgoing
	// edge of its kind.
	EdgePartOf    EdgeKind = "PART_OF"    // Campaign -> RPGWorld, Session -> Campaign, Relationship -> Campaign
	EdgeAppearsIn EdgeKind = "APPEARS_IN" // Character -> Campaign
	EdgeLocatedIn EdgeKind = "LOCATED_IN" // Location -> Campaign
	EdgeBelongsTo EdgeKind = "BELONGS_TO" // Item -> Campaign
	EdgeOccursIn  EdgeKind = "OCCURS_IN"  // Event -> Campaign
	EdgeChildOf   EdgeKind = "CHILD_OF"   // Location -> parent Location

	// EdgePlays marks which user plays a player character.
	EdgePlays EdgeKind = "PLAYS" // User -> Character

	// Relationship nodes point at their two endpoints. Incoming edges of
	// these kinds are what make an entity count as "referenced by a
	// relationship" during delete protection.
	EdgeRelationSource EdgeKind = "RELATION_SOURCE"
	EdgeRelationTarget EdgeKind = "RELATION_TARGET"
)

// Role is the membership role stored on a PARTICIPATES_IN edge.
type Role string

const (
	RoleOwner      Role = "OWNER"
	RoleGameMaster Role = "GAME_MASTER"
	RolePlayer     Role = "PLAYER"
	RoleViewer     Role = "VIEWER"
)

// ValidRole reports whether r is one of the known membership roles.
func ValidRole(r Role) bool {
	switch r {
	case RoleOwner, RoleGameMaster, RolePlayer, RoleViewer:
		return true
	}
	return false
}

// EntityType tags a polymorphic relationship endpoint.
type EntityType string

const (
	EntityCharacter EntityType = "CHARACTER"
	EntityLocation  EntityType = "LOCATION"
	EntityEvent     EntityType = "EVENT"
	EntityItem      EntityType = "ITEM"
)

// ValidEntityType reports whether t is a declared endpoint type. Note that a
// declared type is not necessarily resolvable; EVENT and ITEM currently have
// no backing repository.
func ValidEntityType(t EntityType) bool {
	switch t {
	case EntityCharacter, EntityLocation, EntityEvent, EntityItem:
		return true
	}
	return false
}

// User is an account identity. Users are not owned by any campaign.
type User struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	Bio       string    `json:"bio,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// World is a top-level setting owning zero or more campaigns.
type World struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	System      string    `json:"system,omitempty"`
	CreatedBy   string    `json:"created_by"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Campaign belongs to at most one world via a PART_OF edge. The world link is
// optional at creation and mutable afterwards; the campaign name is unique
// within its world.
type Campaign struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	WorldID     string    `json:"world_id,omitempty"`
	CreatedBy   string    `json:"created_by"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Session is a play session recorded against a campaign.
type Session struct {
	ID            string    `json:"id"`
	CampaignID    string    `json:"campaign_id"`
	Title         string    `json:"title"`
	Summary       string    `json:"summary,omitempty"`
	SessionNumber int       `json:"session_number,omitempty"`
	SessionDate   string    `json:"session_date,omitempty"`
	CreatedBy     string    `json:"created_by"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// Character is a player or non-player character appearing in a campaign.
// PlayerID links the user playing the character via a PLAYS edge.
type Character struct {
	ID            string    `json:"id"`
	CampaignID    string    `json:"campaign_id"`
	Name          string    `json:"name"`
	Description   string    `json:"description,omitempty"`
	CharacterType string    `json:"character_type,omitempty"`
	PlayerID      string    `json:"player_id,omitempty"`
	CreatedBy     string    `json:"created_by"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// Location is a place in a campaign. Locations form a tree through CHILD_OF
// edges; a location has at most one parent and may never be its own parent.
type Location struct {
	ID               string    `json:"id"`
	CampaignID       string    `json:"campaign_id"`
	Name             string    `json:"name"`
	Description      string    `json:"description,omitempty"`
	LocationType     string    `json:"location_type,omitempty"`
	ParentLocationID string    `json:"parent_location_id,omitempty"`
	CreatedBy        string    `json:"created_by"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// Item is an object of note belonging to a campaign.
type Item struct {
	ID          string    `json:"id"`
	CampaignID  string    `json:"campaign_id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	ItemType    string    `json:"item_type,omitempty"`
	CreatedBy   string    `json:"created_by"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Event is something that happened in a campaign's timeline.
type Event struct {
	ID          string    `json:"id"`
	CampaignID  string    `json:"campaign_id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	EventDate   string    `json:"event_date,omitempty"`
	CreatedBy   string    `json:"created_by"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Relationship is a first-class node representing a directed, typed
// association between two polymorphic campaign entities, distinct from the
// structural containment edges. RelationshipType is free form (e.g. SIBLING).
type Relationship struct {
	ID               string     `json:"id"`
	CampaignID       string     `json:"campaign_id"`
	SourceEntityID   string     `json:"source_entity_id"`
	SourceEntityType EntityType `json:"source_entity_type"`
	TargetEntityID   string     `json:"target_entity_id"`
	TargetEntityType EntityType `json:"target_entity_type"`
	RelationshipType string     `json:"relationship_type"`
	Description      string     `json:"description,omitempty"`
	CreatedBy        string     `json:"created_by"`
	CreatedAt        time.Time  `json:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at"`
}

// Membership is one user's standing in a campaign. Role is computed as OWNER
// when the backing edge is CREATED, otherwise it is the stored
// relationship_type of the PARTICIPATES_IN edge.
type Membership struct {
	CampaignID string    `json:"campaign_id"`
	UserID     string    `json:"user_id"`
	Username   string    `json:"username,omitempty"`
	Role       Role      `json:"role"`
	CreatedAt  time.Time `json:"created_at"`
}

// Statistics is a per-campaign count snapshot taken in a single read
// transaction. A missing relation yields a zero count, not an error.
type Statistics struct {
	CampaignID   string `json:"campaign_id"`
	CampaignName string `json:"campaign_name"`
	Sessions     int64  `json:"session_count"`
	Characters   int64  `json:"character_count"`
	Locations    int64  `json:"location_count"`
	Items        int64  `json:"item_count"`
	Events       int64  `json:"event_count"`
	Users        int64  `json:"user_count"`
}
