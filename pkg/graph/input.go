package graph

// Create inputs are full field bags; update inputs use pointer fields so that
// omitted fields are left untouched rather than nulled.

type CreateUserInput struct {
	Username string
	Email    string
	Bio      string
}

type UpdateUserInput struct {
	Username *string
	Email    *string
	Bio      *string
}

type CreateWorldInput struct {
	Name        string
	Description string
	System      string
}

type UpdateWorldInput struct {
	Name        *string
	Description *string
	System      *string
}

type CreateCampaignInput struct {
	Name        string
	Description string
	// WorldID is optional; when set the campaign is linked to the world in
	// the same write transaction that creates it.
	WorldID string
}

type UpdateCampaignInput struct {
	Name        *string
	Description *string
	// WorldID reassigns the owning world. The old PART_OF edge is removed
	// and the new one created atomically with the property update.
	WorldID *string
}

type CreateSessionInput struct {
	CampaignID    string
	Title         string
	Summary       string
	SessionNumber int
	SessionDate   string
}

type UpdateSessionInput struct {
	Title         *string
	Summary       *string
	SessionNumber *int
	SessionDate   *string
}

type CreateCharacterInput struct {
	CampaignID    string
	Name          string
	Description   string
	CharacterType string
	// PlayerID optionally links the user playing this character.
	PlayerID string
}

type UpdateCharacterInput struct {
	Name          *string
	Description   *string
	CharacterType *string
	// PlayerID set to an empty string clears the PLAYS edge.
	PlayerID *string
}

type CreateLocationInput struct {
	CampaignID       string
	Name             string
	Description      string
	LocationType     string
	ParentLocationID string
}

type UpdateLocationInput struct {
	Name         *string
	Description  *string
	LocationType *string
	// ParentLocationID set to an empty string detaches the location from
	// its parent.
	ParentLocationID *string
}

type CreateItemInput struct {
	CampaignID  string
	Name        string
	Description string
	ItemType    string
}

type UpdateItemInput struct {
	Name        *string
	Description *string
	ItemType    *string
}

type CreateEventInput struct {
	CampaignID  string
	Title       string
	Description string
	EventDate   string
}

type UpdateEventInput struct {
	Title       *string
	Description *string
	EventDate   *string
}

type CreateRelationshipInput struct {
	CampaignID       string
	SourceEntityID   string
	SourceEntityType EntityType
	TargetEntityID   string
	TargetEntityType EntityType
	RelationshipType string
	Description      string
}

type UpdateRelationshipInput struct {
	RelationshipType *string
	Description      *string
}
