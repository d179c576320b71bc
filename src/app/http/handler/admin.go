package handler

import (
	"github.com/gin-gonic/gin"

	"survivordraft/src/app/http/dto"
	"survivordraft/src/app/http/response"
	"survivordraft/src/app/middleware"
	"survivordraft/src/core/ports"
	"survivordraft/src/core/usecase"
)

// AdminHandler handles admin login and outcome entry.
type AdminHandler struct {
	authService  *usecase.AdminAuthService
	adminService *usecase.AdminService
}

func NewAdminHandler(authService *usecase.AdminAuthService, adminService *usecase.AdminService) *AdminHandler {
	return &AdminHandler{authService: authService, adminService: adminService}
}

// Login verifies the shared admin password so the client can unlock the
// admin view. Subsequent admin requests carry the password in the
// X-Admin-Password header.
// POST /v1/admin/login
func (h *AdminHandler) Login(c *gin.Context) {
	var req dto.AdminLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid payload", middleware.GetRequestID(c))
		return
	}

	if err := h.authService.Verify(req.Password); err != nil {
		c.Error(err)
		response.FromDomainError(c, err, middleware.GetRequestID(c))
		return
	}

	response.OK(c, gin.H{"authenticated": true})
}

// Outcome applies a partial outcome update to one castaway: the elimination
// rank as an episode airs, or the final-three/winner flags at the end of the
// season.
// PUT /v1/admin/castaways/:player_name/outcome
func (h *AdminHandler) Outcome(c *gin.Context) {
	var req dto.OutcomeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid payload", middleware.GetRequestID(c))
		return
	}

	castaway, err := h.adminService.RecordOutcome(c.Request.Context(), c.Param("player_name"), ports.OutcomeUpdate{
		ActualRank:   req.ActualRank,
		IsFinalThree: req.IsFinalThree,
		IsWinner:     req.IsWinner,
	})
	if err != nil {
		c.Error(err)
		response.FromDomainError(c, err, middleware.GetRequestID(c))
		return
	}

	response.OK(c, castaway)
}
