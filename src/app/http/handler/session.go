package handler

import (
	"github.com/gin-gonic/gin"

	"survivordraft/src/app/http/dto"
	"survivordraft/src/app/http/response"
	"survivordraft/src/app/middleware"
	"survivordraft/src/core/usecase"
)

// SessionHandler handles login and the user directory.
type SessionHandler struct {
	sessionService *usecase.SessionService
}

func NewSessionHandler(sessionService *usecase.SessionService) *SessionHandler {
	return &SessionHandler{sessionService: sessionService}
}

// Join logs a user in, registering the username if it is new.
// POST /v1/session/join
func (h *SessionHandler) Join(c *gin.Context) {
	var req dto.SessionJoinRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid payload", middleware.GetRequestID(c))
		return
	}

	res, err := h.sessionService.Join(c.Request.Context(), req.Username)
	if err != nil {
		c.Error(err)
		response.FromDomainError(c, err, middleware.GetRequestID(c))
		return
	}

	body := dto.SessionJoinResponse{
		Username: res.User.Username,
		Created:  res.Created,
	}
	if res.Created {
		response.Created(c, body)
		return
	}
	response.OK(c, body)
}

// Users returns the sorted list of registered usernames.
// GET /v1/users
func (h *SessionHandler) Users(c *gin.Context) {
	usernames, err := h.sessionService.Users(c.Request.Context())
	if err != nil {
		c.Error(err)
		response.FromDomainError(c, err, middleware.GetRequestID(c))
		return
	}
	if usernames == nil {
		usernames = []string{}
	}
	response.OK(c, usernames)
}
