package handler

import (
	"github.com/gin-gonic/gin"

	"survivordraft/src/app/http/response"
	"survivordraft/src/app/middleware"
	"survivordraft/src/core/domain"
	"survivordraft/src/core/usecase"
)

// CastawayHandler serves the cast browser.
type CastawayHandler struct {
	castawayService *usecase.CastawayService
}

func NewCastawayHandler(castawayService *usecase.CastawayService) *CastawayHandler {
	return &CastawayHandler{castawayService: castawayService}
}

// List returns the cast, optionally filtered by tribe.
// GET /v1/castaways?tribe=Vatu
func (h *CastawayHandler) List(c *gin.Context) {
	castaways, err := h.castawayService.List(c.Request.Context(), c.Query("tribe"))
	if err != nil {
		c.Error(err)
		response.FromDomainError(c, err, middleware.GetRequestID(c))
		return
	}
	if castaways == nil {
		castaways = []domain.Castaway{}
	}
	response.OK(c, castaways)
}
