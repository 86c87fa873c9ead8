package suggest

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/ScriFi/Athletitrack/internal/middleware"
	"github.com/ScriFi/Athletitrack/internal/store"
	"github.com/ScriFi/Athletitrack/pkg/response"
)

// Handler handles POST /organizations/:id/suggest.
type Handler struct {
	client *Client
	store  *store.Store
	logger *zap.Logger
}

// NewHandler creates a suggest handler.
func NewHandler(client *Client, st *store.Store, logger *zap.Logger) *Handler {
	return &Handler{client: client, store: st, logger: logger}
}

// SuggestRequest is the body for POST /organizations/:id/suggest.
type SuggestRequest struct {
	Title      string `json:"title" binding:"required"`
	BuildingID string `json:"building_id" binding:"required,uuid"`
	TeamID     string `json:"team_id" binding:"required,uuid"`
}

// SuggestResponse always carries usable form text: on upstream failure the
// suggestion is a user-visible "could not generate" message and Failed is
// set, so the form never breaks on a flaky upstream.
type SuggestResponse struct {
	Suggestion string `json:"suggestion"`
	Failed     bool   `json:"failed,omitempty"`
}

// Suggest resolves the building and team names, asks the upstream for a
// description, and folds any failure into the response text.
func (h *Handler) Suggest(c *gin.Context) {
	orgID := c.MustGet(middleware.ContextOrgID).(uuid.UUID)
	var req SuggestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "title, building_id, and team_id required")
		return
	}
	buildingID, _ := uuid.Parse(req.BuildingID)
	teamID, _ := uuid.Parse(req.TeamID)

	building, err := h.store.BuildingByID(orgID, buildingID)
	if err != nil {
		response.NotFound(c, "building not found")
		return
	}
	team, err := h.store.TeamByID(orgID, teamID)
	if err != nil {
		response.NotFound(c, "team not found")
		return
	}
	org, err := h.store.OrganizationByID(orgID)
	if err != nil {
		response.NotFound(c, "organization not found")
		return
	}

	suggestion, err := h.client.Suggest(c.Request.Context(), Request{
		Title:            req.Title,
		Building:         EntityRef{ID: building.ID, Name: building.Name},
		Team:             EntityRef{ID: team.ID, Name: team.Name},
		OrganizationName: org.Name,
	})
	if err != nil {
		h.logger.Warn("suggestion failed", zap.Error(err))
		response.OK(c, SuggestResponse{
			Suggestion: "Could not generate a suggestion: " + err.Error(),
			Failed:     true,
		})
		return
	}
	response.OK(c, SuggestResponse{Suggestion: suggestion})
}
