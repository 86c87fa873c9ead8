package models

import (
	"time"

	"github.com/google/uuid"
)

// Building icons are enumerated tags resolved by the presentation layer;
// the domain never stores renderable content.
const (
	IconGymnasium = "gymnasium"
	IconField     = "field"
	IconPool      = "pool"
	IconTrack     = "track"
	IconCourt     = "court"
	IconGeneric   = "generic"
)

var buildingIcons = map[string]struct{}{
	IconGymnasium: {},
	IconField:     {},
	IconPool:      {},
	IconTrack:     {},
	IconCourt:     {},
	IconGeneric:   {},
}

// ValidIcon reports whether the tag is a known building icon.
func ValidIcon(tag string) bool {
	_, ok := buildingIcons[tag]
	return ok
}

// SubSection is a named bounded area within a building (e.g. "Court 1")
// that events may target more specifically than the whole building.
type SubSection struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

// Building represents a schedulable facility owned by an organization.
type Building struct {
	ID             uuid.UUID    `json:"id"`
	OrganizationID uuid.UUID    `json:"organization_id"`
	Name           string       `json:"name"`
	Icon           string       `json:"icon"`
	SubSections    []SubSection `json:"sub_sections,omitempty"`
	CreatedAt      time.Time    `json:"created_at"`
	UpdatedAt      time.Time    `json:"updated_at"`
}

// FindSubSection returns the sub-section with the given id, or nil.
func (b *Building) FindSubSection(id uuid.UUID) *SubSection {
	for i := range b.SubSections {
		if b.SubSections[i].ID == id {
			return &b.SubSections[i]
		}
	}
	return nil
}
