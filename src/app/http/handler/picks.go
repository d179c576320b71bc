package handler

import (
	"github.com/gin-gonic/gin"

	"survivordraft/src/app/http/dto"
	"survivordraft/src/app/http/response"
	"survivordraft/src/app/middleware"
	"survivordraft/src/core/usecase"
	"survivordraft/src/infra/metrics"
)

// PicksHandler manages a user's predicted elimination order.
type PicksHandler struct {
	picksService *usecase.PicksService
}

func NewPicksHandler(picksService *usecase.PicksService) *PicksHandler {
	return &PicksHandler{picksService: picksService}
}

// Get returns the user's full board: every castaway with the current
// predicted rank, nil where unranked.
// GET /v1/users/:username/picks
func (h *PicksHandler) Get(c *gin.Context) {
	rows, err := h.picksService.Get(c.Request.Context(), c.Param("username"))
	if err != nil {
		c.Error(err)
		response.FromDomainError(c, err, middleware.GetRequestID(c))
		return
	}

	body := make([]dto.PickRowResponse, 0, len(rows))
	for _, row := range rows {
		body = append(body, dto.PickRowResponse{
			PlayerName:    row.PlayerName,
			Tribe:         row.Tribe,
			PredictedRank: row.PredictedRank,
		})
	}
	response.OK(c, body)
}

// Save replaces the user's prediction set.
// PUT /v1/users/:username/picks
func (h *PicksHandler) Save(c *gin.Context) {
	var req dto.SavePicksRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid payload", middleware.GetRequestID(c))
		return
	}

	picks := make([]usecase.PickEntry, 0, len(req.Picks))
	for _, p := range req.Picks {
		picks = append(picks, usecase.PickEntry{
			PlayerName:    p.PlayerName,
			PredictedRank: p.PredictedRank,
		})
	}

	result, err := h.picksService.Save(c.Request.Context(), c.Param("username"), picks)
	if err != nil {
		c.Error(err)
		response.FromDomainError(c, err, middleware.GetRequestID(c))
		return
	}

	metrics.RecordPicksSaved()
	response.OK(c, dto.SavePicksResponse{Saved: result.Saved, Total: result.Total})
}
