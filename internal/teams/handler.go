// Package teams exposes team administration. Listing is role-scoped: a
// coach only sees teams whose coach email matches their own.
package teams

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

// Handler handles team HTTP endpoints.
type Handler struct {
	store  *store.Store
	logger *zap.Logger
}

// NewHandler creates a teams handler.
func NewHandler(st *store.Store, logger *zap.Logger) *Handler {
	return &Handler{store: st, logger: logger}
}

// SaveRequest is the body for POST and PUT team endpoints.
type SaveRequest struct {
	Name       string `json:"name" binding:"required"`
	Color      string `json:"color"`
	CoachEmail string `json:"coach_email"`
}

func validColor(color string) bool {
	for _, c := range models.TeamColors {
		if c == color {
			return true
		}
	}
	return false
}

// List handles GET /organizations/:id/teams.
func (h *Handler) List(c *gin.Context) {
	orgID := c.MustGet(middleware.ContextOrgID).(uuid.UUID)
	role := c.MustGet(middleware.ContextUserRole).(string)
	if role == string(models.RoleCoach) {
		email := c.MustGet(middleware.ContextUserEmail).(string)
		response.OK(c, h.store.TeamsForCoach(orgID, email))
		return
	}
	response.OK(c, h.store.Teams(orgID))
}

// Create handles POST /organizations/:id/teams (admin only). A missing or
// unknown color gets one picked from the palette by name hash, so the same
// team always lands on the same color.
func (h *Handler) Create(c *gin.Context) {
	orgID := c.MustGet(middleware.ContextOrgID).(uuid.UUID)
	var req SaveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "name required")
		return
	}
	name := strings.TrimSpace(req.Name)
	color := req.Color
	if !validColor(color) {
		color = pickColor(name)
	}
	t := h.store.CreateTeam(models.Team{
		OrganizationID: orgID,
		Name:           name,
		Color:          color,
		CoachEmail:     strings.TrimSpace(req.CoachEmail),
	})
	response.Created(c, t)
}

// Save handles PUT /organizations/:id/teams/:tid (admin only).
func (h *Handler) Save(c *gin.Context) {
	orgID := c.MustGet(middleware.ContextOrgID).(uuid.UUID)
	teamID, err := uuid.Parse(c.Param("tid"))
	if err != nil {
		response.BadRequest(c, "invalid team id")
		return
	}
	var req SaveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "name required")
		return
	}
	name := strings.TrimSpace(req.Name)
	color := req.Color
	if !validColor(color) {
		color = pickColor(name)
	}
	t := h.store.SaveTeam(models.Team{
		ID:             teamID,
		OrganizationID: orgID,
		Name:           name,
		Color:          color,
		CoachEmail:     strings.TrimSpace(req.CoachEmail),
	})
	response.OK(c, t)
}

// Delete handles DELETE /organizations/:id/teams/:tid (admin only).
// Removes the team and cascades to every event it had scheduled.
func (h *Handler) Delete(c *gin.Context) {
	orgID := c.MustGet(middleware.ContextOrgID).(uuid.UUID)
	teamID, err := uuid.Parse(c.Param("tid"))
	if err != nil {
		response.BadRequest(c, "invalid team id")
		return
	}
	cascaded := h.store.DeleteTeam(orgID, teamID)
	if cascaded > 0 {
		h.logger.Info("team delete cascaded",
			zap.String("team_id", teamID.String()),
			zap.Int("events_removed", cascaded),
		)
	}
	response.NoContent(c)
}

func pickColor(name string) string {
	var sum int
	for _, r := range name {
		sum += int(r)
	}
	return models.TeamColors[sum%len(models.TeamColors)]
}
