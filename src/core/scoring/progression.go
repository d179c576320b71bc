package scoring

import (
	"sort"

	"survivordraft/src/core/domain"
)

// ProgressionPoint is one user's cumulative score at one elimination
// checkpoint.
type ProgressionPoint struct {
	// Checkpoint is the actual rank of the castaway eliminated at this
	// point in the season.
	Checkpoint      int    `json:"checkpoint"`
	Username        string `json:"username"`
	CumulativeScore int    `json:"cumulative_score"`
}

// Progression replays the eliminations in chronological order and emits each
// user's cumulative score at every checkpoint.
//
// A checkpoint is a distinct actual rank held by an eliminated castaway. A
// user participates if they have at least one scorable pick anywhere in the
// season; at checkpoints where they made no prediction their running total
// is carried forward unchanged, so every participant has a value at every
// checkpoint and a multi-series chart renders without gaps. Per user the
// series is non-decreasing, since every pick contributes a non-negative
// amount.
//
// Points are ordered ascending by checkpoint; within a checkpoint, users
// appear in first-appearance order.
func Progression(castaways []domain.Castaway, predictions []domain.Prediction) []ProgressionPoint {
	total := len(castaways)

	eliminatedAt := make(map[int]domain.Castaway)
	var checkpoints []int
	for _, c := range castaways {
		if c.Eliminated() {
			eliminatedAt[*c.ActualRank] = c
			checkpoints = append(checkpoints, *c.ActualRank)
		}
	}
	sort.Ints(checkpoints)

	byName := make(map[string]domain.Castaway, total)
	for _, c := range castaways {
		byName[c.PlayerName] = c
	}

	// Index each user's scorable picks by castaway name, keeping the order
	// in which users first appear.
	picks := make(map[string]map[string]int)
	var users []string
	for _, p := range predictions {
		c, ok := byName[p.PlayerName]
		if !ok || !c.Eliminated() {
			continue
		}
		if picks[p.Username] == nil {
			picks[p.Username] = make(map[string]int)
			users = append(users, p.Username)
		}
		picks[p.Username][p.PlayerName] = p.PredictedRank
	}

	if len(checkpoints) == 0 || len(users) == 0 {
		return nil
	}

	running := make(map[string]int, len(users))
	points := make([]ProgressionPoint, 0, len(checkpoints)*len(users))
	for _, checkpoint := range checkpoints {
		c := eliminatedAt[checkpoint]
		for _, username := range users {
			if predicted, ok := picks[username][c.PlayerName]; ok {
				gained, _ := pickPoints(total, c, predicted)
				running[username] += gained
			}
			points = append(points, ProgressionPoint{
				Checkpoint:      checkpoint,
				Username:        username,
				CumulativeScore: running[username],
			})
		}
	}

	return points
}
