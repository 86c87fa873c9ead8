// Package buildings exposes facility administration: create and rename
// facilities, append sub-sections, and delete with event cascade.
package buildings

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/ScriFi/Athletitrack/internal/middleware"
	"github.com/ScriFi/Athletitrack/internal/models"
	"github.com/ScriFi/Athletitrack/internal/store"
	"github.com/ScriFi/Athletitrack/pkg/response"
)

// Handler handles building HTTP endpoints.
type Handler struct {
	store  *store.Store
	logger *zap.Logger
}

// NewHandler creates a buildings handler.
func NewHandler(st *store.Store, logger *zap.Logger) *Handler {
	return &Handler{store: st, logger: logger}
}

// SaveRequest is the body for POST and PUT building endpoints.
type SaveRequest struct {
	Name string `json:"name" binding:"required"`
	Icon string `json:"icon"`
}

// SubSectionRequest is the body for POST .../sub-sections.
type SubSectionRequest struct {
	Name string `json:"name" binding:"required"`
}

// List handles GET /organizations/:id/buildings.
func (h *Handler) List(c *gin.Context) {
	orgID := c.MustGet(middleware.ContextOrgID).(uuid.UUID)
	response.OK(c, h.store.Buildings(orgID))
}

// Create handles POST /organizations/:id/buildings (admin only).
func (h *Handler) Create(c *gin.Context) {
	orgID := c.MustGet(middleware.ContextOrgID).(uuid.UUID)
	var req SaveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "name required")
		return
	}
	if req.Icon != "" && !models.ValidIcon(req.Icon) {
		response.BadRequest(c, "unknown icon")
		return
	}
	b := h.store.CreateBuilding(models.Building{
		OrganizationID: orgID,
		Name:           strings.TrimSpace(req.Name),
		Icon:           req.Icon,
	})
	response.Created(c, b)
}

// Save handles PUT /organizations/:id/buildings/:bid (admin only).
// An unknown id is treated as a create, keeping save-or-create semantics.
func (h *Handler) Save(c *gin.Context) {
	orgID := c.MustGet(middleware.ContextOrgID).(uuid.UUID)
	buildingID, err := uuid.Parse(c.Param("bid"))
	if err != nil {
		response.BadRequest(c, "invalid building id")
		return
	}
	var req SaveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "name required")
		return
	}
	icon := req.Icon
	if icon == "" || !models.ValidIcon(icon) {
		icon = models.IconGeneric
	}
	var subs []models.SubSection
	if existing, err := h.store.BuildingByID(orgID, buildingID); err == nil {
		subs = existing.SubSections
	}
	b := h.store.SaveBuilding(models.Building{
		ID:             buildingID,
		OrganizationID: orgID,
		Name:           strings.TrimSpace(req.Name),
		Icon:           icon,
		SubSections:    subs,
	})
	response.OK(c, b)
}

// AddSubSection handles POST /organizations/:id/buildings/:bid/sub-sections
// (admin only).
func (h *Handler) AddSubSection(c *gin.Context) {
	orgID := c.MustGet(middleware.ContextOrgID).(uuid.UUID)
	buildingID, err := uuid.Parse(c.Param("bid"))
	if err != nil {
		response.BadRequest(c, "invalid building id")
		return
	}
	var req SubSectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "name required")
		return
	}
	sub, err := h.store.AddSubSection(orgID, buildingID, strings.TrimSpace(req.Name))
	if err != nil {
		response.NotFound(c, "building not found")
		return
	}
	response.Created(c, sub)
}

// Delete handles DELETE /organizations/:id/buildings/:bid (admin only).
// Removes the building and cascades to every event scheduled in it.
func (h *Handler) Delete(c *gin.Context) {
	orgID := c.MustGet(middleware.ContextOrgID).(uuid.UUID)
	buildingID, err := uuid.Parse(c.Param("bid"))
	if err != nil {
		response.BadRequest(c, "invalid building id")
		return
	}
	cascaded := h.store.DeleteBuilding(orgID, buildingID)
	if cascaded > 0 {
		h.logger.Info("building delete cascaded",
			zap.String("building_id", buildingID.String()),
			zap.Int("events_removed", cascaded),
		)
	}
	response.NoContent(c)
}
