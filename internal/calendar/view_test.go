package calendar

import (
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ScriFi/Athletitrack/internal/models"
)

func viewFixture() (org uuid.UUID, teams []models.Team, buildings []models.Building) {
	org = uuid.New()
	subID := uuid.New()
	teams = []models.Team{
		{ID: uuid.New(), OrganizationID: org, Name: "Varsity Basketball", Color: "sky", CoachEmail: "coach@northwood.edu"},
	}
	buildings = []models.Building{
		{ID: uuid.New(), OrganizationID: org, Name: "Main Gymnasium", Icon: models.IconGymnasium,
			SubSections: []models.SubSection{{ID: subID, Name: "Court 1"}}},
	}
	return org, teams, buildings
}

func TestBuildMonthViewTruncation(t *testing.T) {
	org, teams, buildings := viewFixture()
	day := time.Date(2026, time.March, 10, 0, 0, 0, 0, time.Local)

	var events []models.Event
	for i := 0; i < 5; i++ {
		events = append(events, models.Event{
			ID: uuid.New(), OrganizationID: org,
			TeamID: teams[0].ID, BuildingID: buildings[0].ID,
			Title: fmt.Sprintf("Practice %d", i+1),
			Start: day.Add(time.Duration(8+i) * time.Hour),
			End:   day.Add(time.Duration(9+i) * time.Hour),
		})
	}

	view := BuildMonthView(day, day, events, teams, buildings)
	require.Len(t, view.Cells, view.Grid.DaysInMonth)

	cell := view.Cells[9] // March 10
	assert.Equal(t, 10, cell.Day)
	assert.True(t, cell.Today)
	assert.Len(t, cell.Events, MonthCellLimit)
	assert.Equal(t, 2, cell.MoreCount)
	// Cells list events in start order.
	assert.Equal(t, "Practice 1", cell.Events[0].Title)

	// Other days carry no truncation count.
	assert.Zero(t, view.Cells[0].MoreCount)
	assert.Empty(t, view.Cells[0].Events)
}

func TestBuildMonthViewExactlyLimitEvents(t *testing.T) {
	org, teams, buildings := viewFixture()
	day := time.Date(2026, time.March, 10, 0, 0, 0, 0, time.Local)

	var events []models.Event
	for i := 0; i < MonthCellLimit; i++ {
		events = append(events, models.Event{
			ID: uuid.New(), OrganizationID: org,
			TeamID: teams[0].ID, BuildingID: buildings[0].ID,
			Start: day.Add(time.Duration(8+i) * time.Hour),
			End:   day.Add(time.Duration(9+i) * time.Hour),
		})
	}
	view := BuildMonthView(day, day, events, teams, buildings)
	cell := view.Cells[9]
	assert.Len(t, cell.Events, MonthCellLimit)
	assert.Zero(t, cell.MoreCount)
}

func TestBuildWeekViewGeometryAndSuppression(t *testing.T) {
	org, teams, buildings := viewFixture()
	wed := time.Date(2026, time.March, 4, 0, 0, 0, 0, time.Local)

	events := []models.Event{
		{ID: uuid.New(), OrganizationID: org, TeamID: teams[0].ID, BuildingID: buildings[0].ID,
			Title: "Morning Practice", Start: wed.Add(9 * time.Hour), End: wed.Add(10*time.Hour + 30*time.Minute)},
		{ID: uuid.New(), OrganizationID: org, TeamID: teams[0].ID, BuildingID: buildings[0].ID,
			Title: "Dawn Swim", Start: wed.Add(5 * time.Hour), End: wed.Add(6 * time.Hour)},
	}

	view := BuildWeekView(wed, wed, events, teams, buildings)
	require.Len(t, view.Days, 7)
	assert.Equal(t, HourAxis(), view.Hours)
	assert.Equal(t, SlotHeight, view.SlotHeight)

	col := view.Days[3] // Wednesday column
	assert.True(t, col.Today)
	assert.Equal(t, "Wed", col.Weekday)
	// The pre-axis event is suppressed entirely.
	require.Len(t, col.Events, 1)
	ev := col.Events[0]
	assert.Equal(t, "Morning Practice", ev.Title)
	require.NotNil(t, ev.Geometry)
	assert.InDelta(t, 3*SlotHeight, ev.Geometry.Top, 1e-9)
	assert.InDelta(t, 1.5*SlotHeight, ev.Geometry.Height, 1e-9)
	assert.Equal(t, "Varsity Basketball", ev.TeamName)
	assert.Equal(t, "sky", ev.Color)
	assert.Equal(t, "Main Gymnasium", ev.BuildingName)
}

func TestBuildDayViewSingleColumn(t *testing.T) {
	org, teams, buildings := viewFixture()
	day := time.Date(2026, time.March, 4, 0, 0, 0, 0, time.Local)
	events := []models.Event{
		{ID: uuid.New(), OrganizationID: org, TeamID: teams[0].ID, BuildingID: buildings[0].ID,
			Start: day.Add(7 * time.Hour), End: day.Add(8 * time.Hour)},
	}
	view := BuildDayView(day, day.AddDate(0, 0, 1), events, teams, buildings)
	require.Len(t, view.Days, 1)
	assert.False(t, view.Days[0].Today)
	assert.Len(t, view.Days[0].Events, 1)
}

func TestStaleReferencesFallBack(t *testing.T) {
	org, _, _ := viewFixture()
	day := time.Date(2026, time.March, 4, 0, 0, 0, 0, time.Local)
	events := []models.Event{
		{ID: uuid.New(), OrganizationID: org, TeamID: uuid.New(), BuildingID: uuid.New(),
			Title: "Orphaned", Start: day.Add(9 * time.Hour), End: day.Add(10 * time.Hour)},
	}
	view := BuildDayView(day, day, events, nil, nil)
	require.Len(t, view.Days[0].Events, 1)
	ev := view.Days[0].Events[0]
	assert.Equal(t, "Unknown Team", ev.TeamName)
	assert.Equal(t, models.FallbackColor, ev.Color)
	assert.Equal(t, "Unknown Facility", ev.BuildingName)
	assert.Equal(t, models.IconGeneric, ev.BuildingIcon)
}

func TestSubSectionResolution(t *testing.T) {
	org, teams, buildings := viewFixture()
	subID := buildings[0].SubSections[0].ID
	day := time.Date(2026, time.March, 4, 0, 0, 0, 0, time.Local)
	events := []models.Event{
		{ID: uuid.New(), OrganizationID: org, TeamID: teams[0].ID, BuildingID: buildings[0].ID,
			SubSectionID: &subID, Start: day.Add(9 * time.Hour), End: day.Add(10 * time.Hour)},
	}
	view := BuildDayView(day, day, events, teams, buildings)
	require.Len(t, view.Days[0].Events, 1)
	assert.Equal(t, "Court 1", view.Days[0].Events[0].SubSection)
}

func TestBuildListView(t *testing.T) {
	org, teams, buildings := viewFixture()
	current := time.Date(2026, time.March, 15, 0, 0, 0, 0, time.Local)

	events := []models.Event{
		{ID: uuid.New(), OrganizationID: org, TeamID: teams[0].ID, BuildingID: buildings[0].ID,
			Title: "Later", Start: time.Date(2026, time.March, 20, 10, 0, 0, 0, time.Local)},
		{ID: uuid.New(), OrganizationID: org, TeamID: teams[0].ID, BuildingID: buildings[0].ID,
			Title: "Earlier", Start: time.Date(2026, time.March, 2, 9, 0, 0, 0, time.Local)},
		// Outside March: excluded from the agenda.
		{ID: uuid.New(), OrganizationID: org, TeamID: teams[0].ID, BuildingID: buildings[0].ID,
			Title: "April", Start: time.Date(2026, time.April, 1, 9, 0, 0, 0, time.Local)},
	}

	view := BuildListView(current, events, teams, buildings)
	assert.False(t, view.Empty)
	require.Len(t, view.Groups, 2)
	assert.Equal(t, "Monday, March 2", view.Groups[0].Label)
	assert.Equal(t, "Earlier", view.Groups[0].Events[0].Title)
	assert.Equal(t, "Friday, March 20", view.Groups[1].Label)
}

func TestBuildListViewEmpty(t *testing.T) {
	current := time.Date(2026, time.March, 15, 0, 0, 0, 0, time.Local)
	view := BuildListView(current, nil, nil, nil)
	assert.True(t, view.Empty)
	assert.Empty(t, view.Groups)
	assert.Contains(t, view.EmptyMessage, "No events scheduled this month")
}
