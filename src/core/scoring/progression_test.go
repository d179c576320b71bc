package scoring_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"survivordraft/src/core/domain"
	"survivordraft/src/core/scoring"
)

func TestProgressionCheckpointMajorOrder(t *testing.T) {
	castaways := []domain.Castaway{
		castaway("Ana", "Vatu", intp(1)),
		castaway("Ben", "Cila", intp(3)),
		castaway("Cleo", "Kalo", nil),
	}
	predictions := []domain.Prediction{
		prediction("alice", "Ana", 1),
		prediction("bob", "Ben", 3),
	}

	points := scoring.Progression(castaways, predictions)

	// Two checkpoints (1 and 3) times two users, checkpoint-major.
	require.Len(t, points, 4)
	assert.Equal(t, 1, points[0].Checkpoint)
	assert.Equal(t, 1, points[1].Checkpoint)
	assert.Equal(t, 3, points[2].Checkpoint)
	assert.Equal(t, 3, points[3].Checkpoint)
	assert.Equal(t, "alice", points[0].Username)
	assert.Equal(t, "bob", points[1].Username)
	assert.Equal(t, "alice", points[2].Username)
	assert.Equal(t, "bob", points[3].Username)
}

// Running totals never decrease, and a user with no pick at a checkpoint
// carries their previous total forward as a flat segment.
func TestProgressionMonotoneWithFlatSegments(t *testing.T) {
	castaways := []domain.Castaway{
		castaway("Ana", "Vatu", intp(1)),
		castaway("Ben", "Cila", intp(2)),
		castaway("Cleo", "Kalo", intp(3)),
	}
	predictions := []domain.Prediction{
		prediction("alice", "Ana", 1),
		prediction("alice", "Cleo", 3),
		prediction("bob", "Ben", 2),
	}

	points := scoring.Progression(castaways, predictions)
	require.Len(t, points, 6)

	totals := map[string][]int{}
	for _, p := range points {
		prev := totals[p.Username]
		if len(prev) > 0 {
			assert.GreaterOrEqual(t, p.CumulativeScore, prev[len(prev)-1],
				"running total decreased for %s at checkpoint %d", p.Username, p.Checkpoint)
		}
		totals[p.Username] = append(totals[p.Username], p.CumulativeScore)
	}

	// bob has no pick at checkpoints 1 and 3: flat at 0, then flat after 2.
	bob := totals["bob"]
	require.Len(t, bob, 3)
	assert.Equal(t, 0, bob[0])
	assert.Equal(t, bob[1], bob[2])
}

// The final progression value per user matches that user's total score.
func TestProgressionFinalValueMatchesScore(t *testing.T) {
	castaways := []domain.Castaway{
		castaway("Ana", "Vatu", intp(1)),
		castaway("Ben", "Cila", intp(2)),
		castaway("Cleo", "Kalo", intp(4)),
		castaway("Dina", "Vatu", nil),
		castaway("Eli", "Cila", nil),
	}
	predictions := []domain.Prediction{
		prediction("alice", "Ana", 2),
		prediction("alice", "Ben", 2),
		prediction("alice", "Cleo", 5),
		prediction("bob", "Ben", 1),
		prediction("bob", "Cleo", 4),
	}

	points := scoring.Progression(castaways, predictions)
	final := map[string]int{}
	for _, p := range points {
		final[p.Username] = p.CumulativeScore
	}

	for _, rec := range scoring.Score(castaways, predictions) {
		assert.Equal(t, rec.Total, final[rec.Username], "user %s", rec.Username)
	}
}

// Checkpoints come from every eliminated castaway, including ones nobody
// picked; such checkpoints just produce flat segments.
func TestProgressionIncludesUnpickedEliminations(t *testing.T) {
	castaways := []domain.Castaway{
		castaway("Ana", "Vatu", intp(1)),
		castaway("Ben", "Cila", intp(2)),
		castaway("Cleo", "Kalo", nil),
		castaway("Dina", "Vatu", nil),
		castaway("Eli", "Cila", nil),
		castaway("Fay", "Kalo", nil),
	}
	predictions := []domain.Prediction{prediction("alice", "Ben", 2)}

	points := scoring.Progression(castaways, predictions)

	require.Len(t, points, 2)
	assert.Equal(t, 1, points[0].Checkpoint)
	assert.Equal(t, 0, points[0].CumulativeScore)
	assert.Equal(t, 2, points[1].Checkpoint)
	assert.Equal(t, 3, points[1].CumulativeScore) // base 2 + exact 1
}

func TestProgressionDegenerateInputs(t *testing.T) {
	// No eliminations yet.
	assert.Empty(t, scoring.Progression(
		[]domain.Castaway{castaway("Ana", "Vatu", nil)},
		[]domain.Prediction{prediction("alice", "Ana", 1)},
	))
	// No scorable users.
	assert.Empty(t, scoring.Progression(
		[]domain.Castaway{castaway("Ana", "Vatu", intp(1))},
		nil,
	))
}
