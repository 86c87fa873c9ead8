package calendar

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/ScriFi/Athletitrack/internal/middleware"
	"github.com/ScriFi/Athletitrack/internal/models"
	"github.com/ScriFi/Athletitrack/internal/store"
	"github.com/ScriFi/Athletitrack/pkg/response"
)

// Handler serves the calendar view payloads and drop drafting.
type Handler struct {
	store *store.Store
	// now is injectable for tests; defaults to time.Now.
	now func() time.Time
}

// NewHandler creates a calendar handler.
func NewHandler(st *store.Store) *Handler {
	return &Handler{store: st, now: time.Now}
}

// Payload is the response of GET /organizations/:id/calendar: the rendered
// view model for the requested layout plus the navigation targets.
type Payload struct {
	View  View      `json:"view"`
	Date  time.Time `json:"date"`
	Prev  time.Time `json:"prev"`
	Next  time.Time `json:"next"`
	Today time.Time `json:"today"`

	Month *MonthViewModel    `json:"month,omitempty"`
	Week  *TimeGridViewModel `json:"week,omitempty"`
	Day   *TimeGridViewModel `json:"day,omitempty"`
	List  *ListViewModel     `json:"list,omitempty"`
}

func parseDate(raw string, fallback time.Time) (time.Time, bool) {
	if raw == "" {
		return DateOnly(fallback), true
	}
	if t, err := time.ParseInLocation("2006-01-02", raw, time.Local); err == nil {
		return t, true
	}
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t, true
	}
	return time.Time{}, false
}

// Get handles GET /organizations/:id/calendar?view=&date=&building_id=.
// The event set is narrowed org → building → coach role before rendering.
func (h *Handler) Get(c *gin.Context) {
	orgID := c.MustGet(middleware.ContextOrgID).(uuid.UUID)

	view, err := ParseView(c.Query("view"))
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	now := h.now()
	current, ok := parseDate(c.Query("date"), now)
	if !ok {
		response.BadRequest(c, "invalid date")
		return
	}

	f := Filter{OrganizationID: orgID}
	if raw := c.Query("building_id"); raw != "" {
		buildingID, err := uuid.Parse(raw)
		if err != nil {
			response.BadRequest(c, "invalid building id")
			return
		}
		f.BuildingID = &buildingID
	}
	if c.MustGet(middleware.ContextUserRole).(string) == string(models.RoleCoach) {
		f.CoachEmail = c.MustGet(middleware.ContextUserEmail).(string)
	}

	teams := h.store.Teams(orgID)
	buildings := h.store.Buildings(orgID)
	visible := VisibleEvents(h.store.Events(orgID), teams, f)

	payload := Payload{
		View:  view,
		Date:  DateOnly(current),
		Prev:  Prev(view, current),
		Next:  Next(view, current),
		Today: Today(now),
	}
	switch view {
	case ViewMonth:
		m := BuildMonthView(current, now, visible, teams, buildings)
		payload.Month = &m
	case ViewWeek:
		w := BuildWeekView(current, now, visible, teams, buildings)
		payload.Week = &w
	case ViewDay:
		d := BuildDayView(current, now, visible, teams, buildings)
		payload.Day = &d
	case ViewList:
		l := BuildListView(current, visible, teams, buildings)
		payload.List = &l
	}
	response.OK(c, payload)
}

// DropRequest is the body for POST /organizations/:id/calendar/drop: the
// dragged token plus the slot it landed on.
type DropRequest struct {
	Kind   string `json:"kind" binding:"required"`
	ID     string `json:"id" binding:"required,uuid"`
	Target string `json:"target" binding:"required"`
}

// Drop handles POST /organizations/:id/calendar/drop. It never persists an
// event; the returned draft prefills the creation form for confirmation.
func (h *Handler) Drop(c *gin.Context) {
	orgID := c.MustGet(middleware.ContextOrgID).(uuid.UUID)
	var req DropRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "kind, id, and target required")
		return
	}
	target, err := time.Parse(time.RFC3339, req.Target)
	if err != nil {
		response.BadRequest(c, "invalid target time")
		return
	}
	id, _ := uuid.Parse(req.ID)
	payload := DropPayload{Kind: DropKind(req.Kind), ID: id}
	if err := payload.Validate(); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	// A token for an entity deleted mid-drag resolves to nothing to schedule.
	switch payload.Kind {
	case DropTeam:
		if _, err := h.store.TeamByID(orgID, payload.ID); err != nil {
			response.NotFound(c, "team not found")
			return
		}
	case DropFacility:
		if _, err := h.store.BuildingByID(orgID, payload.ID); err != nil {
			response.NotFound(c, "facility not found")
			return
		}
	}

	draft, err := Drop(payload, target)
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	response.OK(c, draft)
}
