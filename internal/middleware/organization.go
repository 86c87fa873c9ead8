package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/ScriFi/Athletitrack/internal/store"
	"github.com/ScriFi/Athletitrack/pkg/response"
)

// OrgAccess returns a middleware for /organizations/:id routes: it resolves
// the path organization, verifies it exists, and verifies the acting user is
// a member (superadmins pass for any organization). On success the org id is
// set in context under ContextOrgID.
func OrgAccess(st *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		orgID, err := uuid.Parse(c.Param("id"))
		if err != nil {
			response.BadRequest(c, "invalid organization id")
			c.Abort()
			return
		}
		if _, err := st.OrganizationByID(orgID); err != nil {
			response.NotFound(c, "organization not found")
			c.Abort()
			return
		}
		userID := c.MustGet(ContextUserID).(uuid.UUID)
		user, err := st.UserByID(userID)
		if err != nil || !user.MemberOf(orgID) {
			response.Forbidden(c, "not a member of this organization")
			c.Abort()
			return
		}
		c.Set(ContextOrgID, orgID)
		c.Next()
	}
}
