package calendar

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestDropPayloadValidate(t *testing.T) {
	assert.NoError(t, DropPayload{Kind: DropTeam, ID: uuid.New()}.Validate())
	assert.NoError(t, DropPayload{Kind: DropFacility, ID: uuid.New()}.Validate())

	assert.ErrorIs(t, DropPayload{Kind: DropTeam}.Validate(), ErrMalformedDrop)
	assert.ErrorIs(t, DropPayload{Kind: "coach", ID: uuid.New()}.Validate(), ErrMalformedDrop)
	assert.ErrorIs(t, DropPayload{}.Validate(), ErrMalformedDrop)
}

func TestDropTeamOntoHourSlot(t *testing.T) {
	teamID := uuid.New()
	// Dropping onto the Wednesday 14:00 cell prefills that exact slot.
	target := time.Date(2026, time.March, 4, 14, 0, 0, 0, time.Local)

	draft, err := Drop(DropPayload{Kind: DropTeam, ID: teamID}, target)
	assert.NoError(t, err)
	assert.Equal(t, target, draft.Start)
	assert.Equal(t, target.Add(time.Hour), draft.End)
	if assert.NotNil(t, draft.TeamID) {
		assert.Equal(t, teamID, *draft.TeamID)
	}
	assert.Nil(t, draft.BuildingID)
}

func TestDropFacilityOntoDayCell(t *testing.T) {
	buildingID := uuid.New()
	// Month cells carry midnight as the target.
	target := time.Date(2026, time.March, 4, 0, 0, 0, 0, time.Local)

	draft, err := Drop(DropPayload{Kind: DropFacility, ID: buildingID}, target)
	assert.NoError(t, err)
	assert.Equal(t, target, draft.Start)
	assert.Equal(t, DefaultDraftDuration, draft.End.Sub(draft.Start))
	if assert.NotNil(t, draft.BuildingID) {
		assert.Equal(t, buildingID, *draft.BuildingID)
	}
	assert.Nil(t, draft.TeamID)
}

func TestDropMalformedProducesNothing(t *testing.T) {
	draft, err := Drop(DropPayload{Kind: "unknown", ID: uuid.New()}, time.Now())
	assert.ErrorIs(t, err, ErrMalformedDrop)
	assert.Zero(t, draft)
}
