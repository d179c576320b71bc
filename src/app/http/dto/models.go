package dto

import "survivordraft/src/core/scoring"

// SessionJoinRequest is the payload for /v1/session/join.
type SessionJoinRequest struct {
	Username string `json:"username" binding:"required"`
}

// SessionJoinResponse reports the logged-in user.
type SessionJoinResponse struct {
	Username string `json:"username"`
	Created  bool   `json:"created"`
}

// PickInput is one submitted (castaway, rank) pair.
type PickInput struct {
	PlayerName    string `json:"player_name" binding:"required"`
	PredictedRank int    `json:"predicted_rank" binding:"required"`
}

// SavePicksRequest replaces a user's whole prediction set. Picks may be a
// partial board; an empty list clears the set.
type SavePicksRequest struct {
	Picks []PickInput `json:"picks"`
}

// SavePicksResponse reports how much of the board is filled in.
type SavePicksResponse struct {
	Saved int `json:"saved"`
	Total int `json:"total"`
}

// PickRowResponse is one castaway merged with the user's current pick.
type PickRowResponse struct {
	PlayerName    string `json:"player_name"`
	Tribe         string `json:"tribe"`
	PredictedRank *int   `json:"predicted_rank"`
}

// AdminLoginRequest is used to verify the shared admin password.
type AdminLoginRequest struct {
	Password string `json:"password" binding:"required"`
}

// OutcomeRequest is a partial update of a castaway's outcome. Omitted
// fields are left unchanged.
type OutcomeRequest struct {
	ActualRank   *int  `json:"actual_rank"`
	IsFinalThree *bool `json:"is_final_three"`
	IsWinner     *bool `json:"is_winner"`
}

// StateResponse bundles the game-state snapshot with its narrative lines.
type StateResponse struct {
	State     scoring.GameState `json:"state"`
	Narrative []string          `json:"narrative"`
}
