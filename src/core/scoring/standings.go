package scoring

import (
	"sort"

	"survivordraft/src/core/domain"
)

// StandingsRow is one castaway's line in the pick-by-pick table.
type StandingsRow struct {
	PlayerName string `json:"player_name"`
	Tribe      string `json:"tribe"`
	ActualRank *int   `json:"actual_rank"`

	// Predicted maps username to that user's predicted rank for this
	// castaway. A user who did not rank this castaway is simply absent.
	Predicted map[string]int `json:"predicted"`
}

// StandingsTable is the denormalized pick-by-pick view: one row per
// castaway, one logical column per user.
type StandingsTable struct {
	// Usernames lists the user columns in the order users first appear in
	// the prediction set. The order carries no meaning but is stable
	// within a run.
	Usernames []string       `json:"usernames"`
	Rows      []StandingsRow `json:"rows"`
}

// Standings builds the pick-by-pick table from a snapshot of castaways and
// predictions.
//
// Every castaway appears, eliminated or not. Rows are sorted ascending by
// the mean of the predicted ranks present for that castaway, so the
// consensus earliest boots come first; castaways nobody has ranked sort
// last, in input order. With zero predictions the castaway table is
// returned alone, in input order, with no user columns.
func Standings(castaways []domain.Castaway, predictions []domain.Prediction) StandingsTable {
	rows := make([]StandingsRow, 0, len(castaways))
	index := make(map[string]int, len(castaways))
	for i, c := range castaways {
		index[c.PlayerName] = i
		rows = append(rows, StandingsRow{
			PlayerName: c.PlayerName,
			Tribe:      c.Tribe,
			ActualRank: c.ActualRank,
			Predicted:  make(map[string]int),
		})
	}

	if len(predictions) == 0 {
		return StandingsTable{Rows: rows}
	}

	var usernames []string
	seen := make(map[string]bool)
	for _, p := range predictions {
		if !seen[p.Username] {
			seen[p.Username] = true
			usernames = append(usernames, p.Username)
		}
		// Predictions for names outside the castaway table are dropped.
		if i, ok := index[p.PlayerName]; ok {
			rows[i].Predicted[p.Username] = p.PredictedRank
		}
	}

	// Consensus order: mean predicted rank across the users who ranked the
	// castaway. Rows without any prediction have no mean and sort last.
	mean := func(r StandingsRow) (float64, bool) {
		if len(r.Predicted) == 0 {
			return 0, false
		}
		sum := 0
		for _, rank := range r.Predicted {
			sum += rank
		}
		return float64(sum) / float64(len(r.Predicted)), true
	}
	sort.SliceStable(rows, func(i, j int) bool {
		mi, oki := mean(rows[i])
		mj, okj := mean(rows[j])
		if oki != okj {
			return oki
		}
		return mi < mj
	})

	return StandingsTable{Usernames: usernames, Rows: rows}
}
