package models

import (
	"time"

	"github.com/google/uuid"
)

// Team represents a team owned by an organization. Color is a semantic
// category tag: grid views associate events with teams by color alone.
type Team struct {
	ID             uuid.UUID `json:"id"`
	OrganizationID uuid.UUID `json:"organization_id"`
	Name           string    `json:"name"`
	Color          string    `json:"color"`
	CoachEmail     string    `json:"coach_email,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// TeamColors are the palette event/team tagging draws from. The fallback
// is used when an event references a team that no longer exists.
var TeamColors = []string{
	"sky", "emerald", "amber", "rose", "violet", "lime", "cyan", "fuchsia",
}

// FallbackColor is the neutral tag for events with stale team references.
const FallbackColor = "gray"
