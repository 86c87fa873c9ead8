package organizations

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/ScriFi/Athletitrack/internal/middleware"
	"github.com/ScriFi/Athletitrack/internal/models"
	"github.com/ScriFi/Athletitrack/internal/store"
	"github.com/ScriFi/Athletitrack/pkg/response"
)

// Handler handles organization HTTP endpoints.
type Handler struct {
	store *store.Store
}

// NewHandler creates an organizations handler.
func NewHandler(st *store.Store) *Handler {
	return &Handler{store: st}
}

// ListMine handles GET /organizations. Returns the organizations the acting
// user belongs to; superadmins see every organization and must pick one
// before any scoped data is visible.
func (h *Handler) ListMine(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uuid.UUID)
	user, err := h.store.UserByID(userID)
	if err != nil {
		response.Unauthorized(c, "unknown user")
		return
	}
	var list []models.Organization
	for _, org := range h.store.Organizations() {
		if user.MemberOf(org.ID) {
			list = append(list, org)
		}
	}
	response.OK(c, list)
}

// Get handles GET /organizations/:id.
func (h *Handler) Get(c *gin.Context) {
	orgID := c.MustGet(middleware.ContextOrgID).(uuid.UUID)
	org, err := h.store.OrganizationByID(orgID)
	if err != nil {
		response.NotFound(c, "organization not found")
		return
	}
	response.OK(c, org)
}
