package models

import (
	"time"

	"github.com/google/uuid"
)

// Event represents a scheduled booking of a building (optionally one of its
// sub-sections) by a team. Start and End are expected to fall on the same
// calendar day; multi-day events are not supported by the views.
//
// End <= Start is accepted as-is: the source of record never rejected such
// events, so the store preserves them rather than silently fixing times.
type Event struct {
	ID             uuid.UUID  `json:"id"`
	OrganizationID uuid.UUID  `json:"organization_id"`
	BuildingID     uuid.UUID  `json:"building_id"`
	SubSectionID   *uuid.UUID `json:"sub_section_id,omitempty"`
	TeamID         uuid.UUID  `json:"team_id"`
	Title          string     `json:"title"`
	Description    string     `json:"description"`
	Start          time.Time  `json:"start"`
	End            time.Time  `json:"end"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}
