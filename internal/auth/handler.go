package auth

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/ScriFi/Athletitrack/internal/models"
	"github.com/ScriFi/Athletitrack/internal/store"
	"github.com/ScriFi/Athletitrack/pkg/response"
	"github.com/ScriFi/Athletitrack/pkg/utils"
)

// Login is a thin credential check against the seeded users: real identity
// management lives outside this system.

// LoginRequest is the body for POST /auth/login.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// TokenResponse is the auth response with JWT.
type TokenResponse struct {
	Token string            `json:"token"`
	User  models.UserPublic `json:"user"`
}

// Handler handles auth HTTP endpoints.
type Handler struct {
	store  *store.Store
	jwt    *JWTService
	logger *zap.Logger
}

// NewHandler creates an auth handler.
func NewHandler(st *store.Store, jwt *JWTService, logger *zap.Logger) *Handler {
	return &Handler{store: st, jwt: jwt, logger: logger}
}

// Login handles POST /auth/login.
func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request: "+err.Error())
		return
	}

	user, err := h.store.UserByEmail(req.Email)
	if err != nil {
		response.Unauthorized(c, "invalid email or password")
		return
	}
	if !utils.CheckPassword(req.Password, user.Password) {
		response.Unauthorized(c, "invalid email or password")
		return
	}

	token, err := h.jwt.Generate(user.ID, user.Email, string(user.Role))
	if err != nil {
		h.logger.Error("generate token", zap.Error(err))
		response.Internal(c, "failed to generate token")
		return
	}

	response.OK(c, TokenResponse{Token: token, User: user.ToPublic()})
}

// List handles GET /users (admin only).
func (h *Handler) List(c *gin.Context) {
	users := h.store.Users()
	list := make([]models.UserPublic, 0, len(users))
	for i := range users {
		list = append(list, users[i].ToPublic())
	}
	response.OK(c, list)
}
