package domain

import "time"

// Castaway is a contestant in the season being predicted.
//
// PlayerName is the unique identifier and the join key across the whole
// system; no surrogate key is exposed outside the database.
type Castaway struct {
	PlayerName string `json:"player_name"`
	Tribe      string `json:"tribe"`

	// ActualRank is the elimination position (1 = first voted out,
	// N = Sole Survivor). Nil means the castaway is still in the game.
	ActualRank *int `json:"actual_rank"`

	// IsFinalThree and IsWinner are set by the show admin as the season
	// airs. They are independent of ActualRank.
	IsFinalThree bool `json:"is_final_three"`
	IsWinner     bool `json:"is_winner"`

	// Roster bio fields shown in the cast browser.
	PhotoURL      *string `json:"photo_url,omitempty"`
	SeasonsPlayed *string `json:"seasons_played,omitempty"`
	Age           *int    `json:"age,omitempty"`
	Hometown      *string `json:"hometown,omitempty"`
	Occupation    *string `json:"occupation,omitempty"`
}

// Eliminated reports whether the castaway has a known elimination position.
func (c Castaway) Eliminated() bool {
	return c.ActualRank != nil
}

// Prediction is one user's guessed elimination position for one castaway.
// Its identity is the (Username, PlayerName) pair.
type Prediction struct {
	Username      string `json:"username"`
	PlayerName    string `json:"player_name"`
	PredictedRank int    `json:"predicted_rank"`
}

// User is a registered participant of the draft.
type User struct {
	ID        int64     `json:"id"`
	Username  string    `json:"username"`
	CreatedAt time.Time `json:"created_at"`
}
