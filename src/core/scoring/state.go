package scoring

import "survivordraft/src/core/domain"

// GameState is a snapshot of the season used to narrate where the game
// stands.
type GameState struct {
	NEliminated int `json:"n_eliminated"`
	NRemaining  int `json:"n_remaining"`

	// MostRecent is the latest boot (highest actual rank). Nil until the
	// first elimination.
	MostRecent *domain.Castaway `json:"most_recent"`

	// Buckets of usernames classified by how their prediction for the most
	// recent boot compared to reality. TooHigh means the user expected the
	// castaway to survive longer; TooLow means an earlier exit.
	Exact   []string `json:"exact"`
	TooHigh []string `json:"too_high"`
	TooLow  []string `json:"too_low"`

	// FinalThree lists castaways flagged is_final_three. Unlike the winner
	// there is no rank-based fallback for this flag.
	FinalThree []string `json:"final_three"`

	// Winner is the flagged winner, falling back to whichever eliminated
	// castaway holds rank N when no flag is set. Nil if neither applies.
	Winner *string `json:"winner"`

	// Leaders holds every username sharing the top total. SecondGap is the
	// margin between first and second place and is nil until at least two
	// users have been scored; zero means a tie at the top.
	Leaders     []string `json:"leaders"`
	LeaderTotal int      `json:"leader_total"`
	SecondGap   *int     `json:"second_gap"`

	Scores []ScoreRecord `json:"scores"`
}

// State derives the game-state snapshot. scores is the output of Score over
// the same snapshot, bundled in for the leader and gap narration.
//
// Before the first elimination the snapshot is the "season not started"
// terminal state: counts only, nothing else populated.
func State(castaways []domain.Castaway, predictions []domain.Prediction, scores []ScoreRecord) GameState {
	total := len(castaways)

	var mostRecent *domain.Castaway
	eliminated := 0
	for i := range castaways {
		c := &castaways[i]
		if !c.Eliminated() {
			continue
		}
		eliminated++
		if mostRecent == nil || *c.ActualRank > *mostRecent.ActualRank {
			mostRecent = c
		}
	}

	state := GameState{
		NEliminated: eliminated,
		NRemaining:  total - eliminated,
	}
	if mostRecent == nil {
		return state
	}
	recent := *mostRecent
	state.MostRecent = &recent

	actual := *recent.ActualRank
	for _, p := range predictions {
		if p.PlayerName != recent.PlayerName {
			continue
		}
		switch {
		case p.PredictedRank == actual:
			state.Exact = append(state.Exact, p.Username)
		case p.PredictedRank > actual:
			state.TooHigh = append(state.TooHigh, p.Username)
		default:
			state.TooLow = append(state.TooLow, p.Username)
		}
	}

	for _, c := range castaways {
		if c.IsFinalThree {
			state.FinalThree = append(state.FinalThree, c.PlayerName)
		}
	}

	for _, c := range castaways {
		if c.IsWinner {
			name := c.PlayerName
			state.Winner = &name
			break
		}
	}
	if state.Winner == nil {
		for _, c := range castaways {
			if c.Eliminated() && *c.ActualRank == total {
				name := c.PlayerName
				state.Winner = &name
				break
			}
		}
	}

	state.Scores = scores
	if len(scores) >= 2 {
		top := scores[0].Total
		for _, rec := range scores {
			if rec.Total != top {
				break
			}
			state.Leaders = append(state.Leaders, rec.Username)
		}
		state.LeaderTotal = top
		gap := top - scores[1].Total
		state.SecondGap = &gap
	}

	return state
}
