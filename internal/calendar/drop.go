package calendar

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// DefaultDraftDuration is the prefilled length of an event drafted by a drop.
const DefaultDraftDuration = time.Hour

// DropKind discriminates what was dragged. A drag carries exactly one kind;
// a single gesture can never apply both a team and a facility.
type DropKind string

const (
	DropTeam     DropKind = "team"
	DropFacility DropKind = "facility"
)

// ErrMalformedDrop is returned when a drop payload doesn't decode to exactly
// one known token kind with an id.
var ErrMalformedDrop = errors.New("malformed drop payload")

// DropPayload is the tagged token carried by a drag gesture.
type DropPayload struct {
	Kind DropKind  `json:"kind"`
	ID   uuid.UUID `json:"id"`
}

// Validate rejects unknown kinds and missing ids.
func (p DropPayload) Validate() error {
	if p.ID == uuid.Nil {
		return ErrMalformedDrop
	}
	switch p.Kind {
	case DropTeam, DropFacility:
		return nil
	}
	return ErrMalformedDrop
}

// EventDraft is the prefilled event-creation intent a drop produces. Nothing
// is persisted: the draft opens the creation form for user confirmation, a
// deliberate two-step commit so a stray drop never schedules anything.
type EventDraft struct {
	Start      time.Time  `json:"start"`
	End        time.Time  `json:"end"`
	TeamID     *uuid.UUID `json:"team_id,omitempty"`
	BuildingID *uuid.UUID `json:"building_id,omitempty"`
}

// Drop translates a dropped token plus target slot into an event draft. The
// target carries the cell's time: midnight for month-view day cells, the
// exact hour for week/day-view hour cells.
func Drop(p DropPayload, target time.Time) (EventDraft, error) {
	if err := p.Validate(); err != nil {
		return EventDraft{}, err
	}
	draft := EventDraft{Start: target, End: target.Add(DefaultDraftDuration)}
	id := p.ID
	switch p.Kind {
	case DropTeam:
		draft.TeamID = &id
	case DropFacility:
		draft.BuildingID = &id
	}
	return draft, nil
}
