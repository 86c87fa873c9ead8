// Package events exposes event CRUD and CSV schedule import over the
// in-memory store.
package events

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/ScriFi/Athletitrack/internal/calendar"
	"github.com/ScriFi/Athletitrack/internal/middleware"
	"github.com/ScriFi/Athletitrack/internal/models"
	"github.com/ScriFi/Athletitrack/internal/store"
	"github.com/ScriFi/Athletitrack/pkg/response"
)

// Handler handles event HTTP endpoints.
type Handler struct {
	store  *store.Store
	logger *zap.Logger
}

// NewHandler creates an events handler.
func NewHandler(st *store.Store, logger *zap.Logger) *Handler {
	return &Handler{store: st, logger: logger}
}

// SaveRequest is the body for POST and PUT event endpoints.
type SaveRequest struct {
	BuildingID   string  `json:"building_id" binding:"required,uuid"`
	SubSectionID *string `json:"sub_section_id"`
	TeamID       string  `json:"team_id" binding:"required,uuid"`
	Title        string  `json:"title" binding:"required"`
	Description  string  `json:"description"`
	Start        string  `json:"start" binding:"required"`
	End          string  `json:"end" binding:"required"`
}

func (h *Handler) eventFromRequest(c *gin.Context, orgID uuid.UUID, req SaveRequest) (models.Event, bool) {
	start, err := time.Parse(time.RFC3339, req.Start)
	if err != nil {
		response.BadRequest(c, "invalid start time")
		return models.Event{}, false
	}
	end, err := time.Parse(time.RFC3339, req.End)
	if err != nil {
		response.BadRequest(c, "invalid end time")
		return models.Event{}, false
	}
	// end <= start has always been accepted here; flag it, don't fix it.
	if !end.After(start) {
		h.logger.Warn("event saved with end not after start",
			zap.Time("start", start), zap.Time("end", end))
	}
	buildingID, _ := uuid.Parse(req.BuildingID)
	teamID, _ := uuid.Parse(req.TeamID)
	e := models.Event{
		OrganizationID: orgID,
		BuildingID:     buildingID,
		TeamID:         teamID,
		Title:          req.Title,
		Description:    req.Description,
		Start:          start,
		End:            end,
	}
	if req.SubSectionID != nil && *req.SubSectionID != "" {
		subID, err := uuid.Parse(*req.SubSectionID)
		if err != nil {
			response.BadRequest(c, "invalid sub-section id")
			return models.Event{}, false
		}
		e.SubSectionID = &subID
	}
	return e, true
}

// List handles GET /organizations/:id/events. Optional building_id narrows
// to one facility; coaches only see their own teams' events.
func (h *Handler) List(c *gin.Context) {
	orgID := c.MustGet(middleware.ContextOrgID).(uuid.UUID)
	f := calendar.Filter{OrganizationID: orgID}
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
	visible := calendar.VisibleEvents(h.store.Events(orgID), h.store.Teams(orgID), f)
	response.OK(c, visible)
}

// Create handles POST /organizations/:id/events. Assigns a fresh id.
func (h *Handler) Create(c *gin.Context) {
	orgID := c.MustGet(middleware.ContextOrgID).(uuid.UUID)
	var req SaveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request: "+err.Error())
		return
	}
	e, ok := h.eventFromRequest(c, orgID, req)
	if !ok {
		return
	}
	response.Created(c, h.store.CreateEvent(e))
}

// Save handles PUT /organizations/:id/events/:eventId. Replaces the event
// in place when the id exists; otherwise behaves exactly like a create with
// that id.
func (h *Handler) Save(c *gin.Context) {
	orgID := c.MustGet(middleware.ContextOrgID).(uuid.UUID)
	eventID, err := uuid.Parse(c.Param("eventId"))
	if err != nil {
		response.BadRequest(c, "invalid event id")
		return
	}
	var req SaveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request: "+err.Error())
		return
	}
	e, ok := h.eventFromRequest(c, orgID, req)
	if !ok {
		return
	}
	e.ID = eventID
	saved, created := h.store.SaveEvent(e)
	if created {
		response.Created(c, saved)
		return
	}
	response.OK(c, saved)
}

// Delete handles DELETE /organizations/:id/events/:eventId. Idempotent:
// deleting an absent event still succeeds.
func (h *Handler) Delete(c *gin.Context) {
	orgID := c.MustGet(middleware.ContextOrgID).(uuid.UUID)
	eventID, err := uuid.Parse(c.Param("eventId"))
	if err != nil {
		response.BadRequest(c, "invalid event id")
		return
	}
	h.store.DeleteEvent(orgID, eventID)
	response.NoContent(c)
}
