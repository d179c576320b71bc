package scoring

import (
	"sort"

	"survivordraft/src/core/domain"
)

// Bonus points awarded on top of the base survival score.
const (
	exactPickBonus  = 1
	finalThreeBonus = 3
	winnerBonus     = 5
)

// ScoreRecord is one user's current standing on the leaderboard.
type ScoreRecord struct {
	// Position is the 1-based leaderboard position after sorting by total.
	// Equal totals are not tie-broken; their relative order is the stable
	// order in which the users first appeared in the prediction set.
	Position    int    `json:"position"`
	Username    string `json:"username"`
	Total       int    `json:"total"`
	ExactPicks  int    `json:"exact_picks"`
	PicksScored int    `json:"picks_scored"`
}

// pickPoints applies the per-pick scoring rule for a single
// (castaway, predicted rank) pair. The castaway must be eliminated.
//
//	base   : min(actual, predicted)
//	exact  : +1 when actual == predicted
//	final 3: +3 when the castaway actually made the final three and the
//	         user predicted a final-three rank
//	winner : +5 when the castaway actually won and the user predicted
//	         rank N (stacks with the final-three bonus)
//
// total is the number of castaways in the season (N); the final three
// occupies ranks N-2..N.
func pickPoints(total int, c domain.Castaway, predicted int) (points int, exact bool) {
	actual := *c.ActualRank
	finalThreeMin := total - 2

	points = min(actual, predicted)

	if predicted == actual {
		points += exactPickBonus
		exact = true
	}

	actuallyFinalThree := c.IsFinalThree || actual >= finalThreeMin
	if actuallyFinalThree && predicted >= finalThreeMin {
		points += finalThreeBonus
	}

	actuallyWon := c.IsWinner || actual == total
	if actuallyWon && predicted == total {
		points += winnerBonus
	}

	return points, exact
}

// Score computes the current leaderboard from a snapshot of castaways and
// predictions.
//
// Only castaways with a known actual rank contribute; a prediction for a
// castaway still in the game (or for an unknown name) is simply skipped this
// round, neither penalized nor deferred. Users with no scorable picks are
// omitted entirely rather than listed with zero.
func Score(castaways []domain.Castaway, predictions []domain.Prediction) []ScoreRecord {
	total := len(castaways)
	byName := make(map[string]domain.Castaway, total)
	for _, c := range castaways {
		byName[c.PlayerName] = c
	}

	type accum struct {
		total, exact, picks int
	}
	acc := make(map[string]*accum)
	var order []string

	for _, p := range predictions {
		c, ok := byName[p.PlayerName]
		if !ok || !c.Eliminated() {
			continue
		}
		a := acc[p.Username]
		if a == nil {
			a = &accum{}
			acc[p.Username] = a
			order = append(order, p.Username)
		}
		points, exact := pickPoints(total, c, p.PredictedRank)
		a.total += points
		if exact {
			a.exact++
		}
		a.picks++
	}

	records := make([]ScoreRecord, 0, len(order))
	for _, username := range order {
		a := acc[username]
		records = append(records, ScoreRecord{
			Username:    username,
			Total:       a.total,
			ExactPicks:  a.exact,
			PicksScored: a.picks,
		})
	}

	// Stable sort: equal totals keep first-appearance order.
	sort.SliceStable(records, func(i, j int) bool {
		return records[i].Total > records[j].Total
	})
	for i := range records {
		records[i].Position = i + 1
	}

	return records
}
