package calendar

import (
	"time"

	"github.com/google/uuid"

	"github.com/ScriFi/Athletitrack/internal/models"
)

// MonthCellLimit is how many events a month cell lists before truncating to
// a "+N more" count.
const MonthCellLimit = 3

// EventView is one renderable event. Team and building fields are resolved
// with fallbacks so stale references (deleted team or building) degrade to a
// neutral presentation instead of failing.
type EventView struct {
	ID           uuid.UUID      `json:"id"`
	Title        string         `json:"title"`
	Description  string         `json:"description,omitempty"`
	TeamID       uuid.UUID      `json:"team_id"`
	TeamName     string         `json:"team_name"`
	Color        string         `json:"color"`
	CoachEmail   string         `json:"coach_email,omitempty"`
	BuildingID   uuid.UUID      `json:"building_id"`
	BuildingName string         `json:"building_name"`
	BuildingIcon string         `json:"building_icon"`
	SubSection   string         `json:"sub_section,omitempty"`
	Start        time.Time      `json:"start"`
	End          time.Time      `json:"end"`
	Geometry     *BlockGeometry `json:"geometry,omitempty"`
}

// MonthCell is one day cell of the month grid.
type MonthCell struct {
	Day       int         `json:"day"`
	Date      time.Time   `json:"date"`
	Today     bool        `json:"today"`
	Events    []EventView `json:"events"`
	MoreCount int         `json:"more_count"`
}

// MonthViewModel is the month layout: the grid dimensions plus one cell per
// day of the month.
type MonthViewModel struct {
	Grid     MonthGrid   `json:"grid"`
	Weekdays []string    `json:"weekdays"`
	Cells    []MonthCell `json:"cells"`
}

// DayColumn is one day of a week or day view: its hour slots are implied by
// the axis; events carry absolute block geometry.
type DayColumn struct {
	Date    time.Time   `json:"date"`
	Weekday string      `json:"weekday"`
	Today   bool        `json:"today"`
	Events  []EventView `json:"events"`
}

// TimeGridViewModel is the week or day layout: an hour axis plus one column
// per rendered day.
type TimeGridViewModel struct {
	Hours      []int       `json:"hours"`
	SlotHeight float64     `json:"slot_height"`
	Days       []DayColumn `json:"days"`
}

// ListGroup is one day section of the agenda.
type ListGroup struct {
	Date   time.Time   `json:"date"`
	Label  string      `json:"label"`
	Events []EventView `json:"events"`
}

// ListViewModel is the agenda layout for the current month.
type ListViewModel struct {
	Groups       []ListGroup `json:"groups"`
	Empty        bool        `json:"empty"`
	EmptyMessage string      `json:"empty_message,omitempty"`
}

// resolver caches team and building lookups for one build pass.
type resolver struct {
	teams     map[uuid.UUID]models.Team
	buildings map[uuid.UUID]models.Building
}

func newResolver(teams []models.Team, buildings []models.Building) *resolver {
	r := &resolver{
		teams:     make(map[uuid.UUID]models.Team, len(teams)),
		buildings: make(map[uuid.UUID]models.Building, len(buildings)),
	}
	for _, t := range teams {
		r.teams[t.ID] = t
	}
	for _, b := range buildings {
		r.buildings[b.ID] = b
	}
	return r
}

func (r *resolver) view(e models.Event, geometry bool) EventView {
	v := EventView{
		ID:           e.ID,
		Title:        e.Title,
		Description:  e.Description,
		TeamID:       e.TeamID,
		TeamName:     "Unknown Team",
		Color:        models.FallbackColor,
		BuildingID:   e.BuildingID,
		BuildingName: "Unknown Facility",
		BuildingIcon: models.IconGeneric,
		Start:        e.Start,
		End:          e.End,
	}
	if t, ok := r.teams[e.TeamID]; ok {
		v.TeamName = t.Name
		v.Color = t.Color
		v.CoachEmail = t.CoachEmail
	}
	if b, ok := r.buildings[e.BuildingID]; ok {
		v.BuildingName = b.Name
		v.BuildingIcon = b.Icon
		if e.SubSectionID != nil {
			if sub := b.FindSubSection(*e.SubSectionID); sub != nil {
				v.SubSection = sub.Name
			}
		}
	}
	if geometry {
		g := EventGeometry(e)
		v.Geometry = &g
	}
	return v
}

// BuildMonthView lays out the month grid for current. Each cell lists at
// most MonthCellLimit events ordered by start time; MoreCount is the number
// truncated beyond that.
func BuildMonthView(current, now time.Time, events []models.Event, teams []models.Team, buildings []models.Building) MonthViewModel {
	grid := MonthGridFor(current)
	res := newResolver(teams, buildings)
	cells := make([]MonthCell, 0, grid.DaysInMonth)
	for day := 1; day <= grid.DaysInMonth; day++ {
		date := grid.DateOf(day)
		dayEvents := EventsOn(events, date)
		cell := MonthCell{Day: day, Date: date, Today: SameDay(date, now)}
		for i, e := range dayEvents {
			if i == MonthCellLimit {
				cell.MoreCount = len(dayEvents) - MonthCellLimit
				break
			}
			cell.Events = append(cell.Events, res.view(e, false))
		}
		cells = append(cells, cell)
	}
	return MonthViewModel{Grid: grid, Weekdays: Weekdays, Cells: cells}
}

// BuildWeekView lays out seven day columns for current's week. Events whose
// geometry falls above the axis window are dropped from their column.
func BuildWeekView(current, now time.Time, events []models.Event, teams []models.Team, buildings []models.Building) TimeGridViewModel {
	return buildTimeGrid(WeekDays(current), now, events, teams, buildings)
}

// BuildDayView lays out the single day column for current.
func BuildDayView(current, now time.Time, events []models.Event, teams []models.Team, buildings []models.Building) TimeGridViewModel {
	return buildTimeGrid([]time.Time{DateOnly(current)}, now, events, teams, buildings)
}

func buildTimeGrid(days []time.Time, now time.Time, events []models.Event, teams []models.Team, buildings []models.Building) TimeGridViewModel {
	res := newResolver(teams, buildings)
	columns := make([]DayColumn, 0, len(days))
	for _, day := range days {
		col := DayColumn{
			Date:    day,
			Weekday: Weekdays[day.Weekday()],
			Today:   SameDay(day, now),
		}
		for _, e := range EventsOn(events, day) {
			v := res.view(e, true)
			if !v.Geometry.Visible {
				continue
			}
			col.Events = append(col.Events, v)
		}
		columns = append(columns, col)
	}
	return TimeGridViewModel{Hours: HourAxis(), SlotHeight: SlotHeight, Days: columns}
}

// BuildListView groups current's month into day sections. When nothing
// resolves for the period the model carries the empty-state message instead.
func BuildListView(current time.Time, events []models.Event, teams []models.Team, buildings []models.Building) ListViewModel {
	var monthEvents []models.Event
	for _, e := range events {
		if e.Start.Year() == current.Year() && e.Start.Month() == current.Month() {
			monthEvents = append(monthEvents, e)
		}
	}
	if len(monthEvents) == 0 {
		return ListViewModel{
			Empty:        true,
			EmptyMessage: "No events scheduled this month. Try adding a new event or changing the selected facility.",
		}
	}
	res := newResolver(teams, buildings)
	var groups []ListGroup
	for _, g := range GroupByDay(monthEvents) {
		lg := ListGroup{Date: g.Date, Label: g.Date.Format("Monday, January 2")}
		for _, e := range g.Events {
			lg.Events = append(lg.Events, res.view(e, false))
		}
		groups = append(groups, lg)
	}
	return ListViewModel{Groups: groups}
}
