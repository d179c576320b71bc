package handler

import (
	"github.com/gin-gonic/gin"

	"survivordraft/src/app/http/dto"
	"survivordraft/src/app/http/response"
	"survivordraft/src/app/middleware"
	"survivordraft/src/core/scoring"
	"survivordraft/src/core/usecase"
	"survivordraft/src/infra/metrics"
)

// OverviewHandler serves the derived game views: leaderboard, progression,
// standings and the narrative snapshot.
type OverviewHandler struct {
	overviewService *usecase.OverviewService
}

func NewOverviewHandler(overviewService *usecase.OverviewService) *OverviewHandler {
	return &OverviewHandler{overviewService: overviewService}
}

// Scores returns the current leaderboard.
// GET /v1/overview/scores
func (h *OverviewHandler) Scores(c *gin.Context) {
	scores, err := h.overviewService.Scores(c.Request.Context())
	if err != nil {
		c.Error(err)
		response.FromDomainError(c, err, middleware.GetRequestID(c))
		return
	}
	metrics.RecordScoreComputation()
	response.OK(c, scores)
}

// Progression returns the cumulative score series per user.
// GET /v1/overview/progression
func (h *OverviewHandler) Progression(c *gin.Context) {
	points, err := h.overviewService.Progression(c.Request.Context())
	if err != nil {
		c.Error(err)
		response.FromDomainError(c, err, middleware.GetRequestID(c))
		return
	}
	if points == nil {
		points = []scoring.ProgressionPoint{}
	}
	response.OK(c, points)
}

// Standings returns the pick-by-pick table.
// GET /v1/overview/standings
func (h *OverviewHandler) Standings(c *gin.Context) {
	table, err := h.overviewService.Standings(c.Request.Context())
	if err != nil {
		c.Error(err)
		response.FromDomainError(c, err, middleware.GetRequestID(c))
		return
	}
	response.OK(c, table)
}

// State returns the game-state snapshot plus narrative lines.
// GET /v1/overview/state
func (h *OverviewHandler) State(c *gin.Context) {
	result, err := h.overviewService.State(c.Request.Context())
	if err != nil {
		c.Error(err)
		response.FromDomainError(c, err, middleware.GetRequestID(c))
		return
	}
	metrics.RecordScoreComputation()
	response.OK(c, dto.StateResponse{State: result.State, Narrative: result.Narrative})
}
