package graph

// SortOrder is the direction of a caller-supplied sort.
type SortOrder string

const (
	SortAsc  SortOrder = "ASC"
	SortDesc SortOrder = "DESC"
)

const (
	defaultLimit = 20
	maxLimit     = 100
)

// ListOptions carries caller-supplied pagination and sorting. SortBy is only
// ever used after validation against a per-kind allow-list; it is never
// interpolated raw into a query.
type ListOptions struct {
	Page      int       `json:"page"`
	Limit     int       `json:"limit"`
	SortBy    string    `json:"sort_by"`
	SortOrder SortOrder `json:"sort_order"`
}

// Normalize clamps the page and limit to usable values and defaults the sort
// direction to ascending.
func (o ListOptions) Normalize() ListOptions {
	if o.Page < 1 {
		o.Page = 1
	}
	if o.Limit < 1 {
		o.Limit = defaultLimit
	}
	if o.Limit > maxLimit {
		o.Limit = maxLimit
	}
	if o.SortOrder != SortDesc {
		o.SortOrder = SortAsc
	}
	return o
}

// Offset converts page/limit into a row offset. Call Normalize first.
func (o ListOptions) Offset() int {
	return (o.Page - 1) * o.Limit
}

// Page is one page of results together with the total match count. Total is
// computed in the same read transaction as the fetch, so it is consistent
// with the returned items.
type Page[T any] struct {
	Items []T   `json:"items"`
	Total int64 `json:"total"`
}

// CampaignFilter restricts a campaign listing.
type CampaignFilter struct {
	WorldID string
	// MemberID limits results to campaigns the given user owns or
	// participates in.
	MemberID string
}

// WorldFilter restricts a world listing.
type WorldFilter struct {
	CreatedBy string
}

// CharacterFilter restricts a character listing within a campaign.
type CharacterFilter struct {
	CharacterType string
	PlayerID      string
}

// LocationFilter restricts a location listing within a campaign.
type LocationFilter struct {
	LocationType     string
	ParentLocationID string
}

// ItemFilter restricts an item listing within a campaign.
type ItemFilter struct {
	ItemType string
}

// RelationshipFilter restricts a relationship listing within a campaign.
// EntityID/EntityType match either endpoint; the remaining fields match one
// specific side. All fields combine with AND.
type RelationshipFilter struct {
	SourceEntityID   string
	SourceEntityType EntityType
	TargetEntityID   string
	TargetEntityType EntityType
	RelationshipType string
	EntityID         string
	EntityType       EntityType
}
