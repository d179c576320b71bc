package scoring_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"survivordraft/src/core/domain"
	"survivordraft/src/core/scoring"
)

func rowNames(rows []scoring.StandingsRow) []string {
	names := make([]string, len(rows))
	for i, r := range rows {
		names[i] = r.PlayerName
	}
	return names
}

// Rows sort by the mean of the predicted ranks for each castaway, consensus
// earliest boot first.
func TestStandingsConsensusOrder(t *testing.T) {
	castaways := []domain.Castaway{
		castaway("Ana", "Vatu", nil),
		castaway("Ben", "Cila", nil),
		castaway("Cleo", "Kalo", nil),
	}
	predictions := []domain.Prediction{
		prediction("alice", "Ana", 3),
		prediction("alice", "Ben", 1),
		prediction("alice", "Cleo", 2),
		prediction("bob", "Ana", 3),
		prediction("bob", "Ben", 2),
		prediction("bob", "Cleo", 1),
	}

	table := scoring.Standings(castaways, predictions)

	// Means: Ben 1.5, Cleo 1.5, Ana 3. Equal means keep input order.
	assert.Equal(t, []string{"Ben", "Cleo", "Ana"}, rowNames(table.Rows))
	assert.Equal(t, []string{"alice", "bob"}, table.Usernames)

	require.Len(t, table.Rows, 3)
	assert.Equal(t, map[string]int{"alice": 1, "bob": 2}, table.Rows[0].Predicted)
}

// Castaways nobody has ranked sort after all ranked ones, preserving their
// input order relative to each other.
func TestStandingsUnrankedCastawaysSortLast(t *testing.T) {
	castaways := []domain.Castaway{
		castaway("Dina", "Vatu", nil),
		castaway("Ana", "Vatu", nil),
		castaway("Eli", "Cila", nil),
		castaway("Ben", "Cila", nil),
	}
	predictions := []domain.Prediction{
		prediction("alice", "Ben", 1),
		prediction("alice", "Ana", 2),
	}

	table := scoring.Standings(castaways, predictions)

	assert.Equal(t, []string{"Ben", "Ana", "Dina", "Eli"}, rowNames(table.Rows))
	assert.Empty(t, table.Rows[2].Predicted)
	assert.Empty(t, table.Rows[3].Predicted)
}

// With zero predictions the castaway table comes back alone, in input order,
// with no user columns.
func TestStandingsNoPredictions(t *testing.T) {
	castaways := []domain.Castaway{
		castaway("Ana", "Vatu", intp(1)),
		castaway("Ben", "Cila", nil),
	}

	table := scoring.Standings(castaways, nil)

	assert.Empty(t, table.Usernames)
	assert.Equal(t, []string{"Ana", "Ben"}, rowNames(table.Rows))
	require.NotNil(t, table.Rows[0].ActualRank)
	assert.Equal(t, 1, *table.Rows[0].ActualRank)
}

// User columns appear in the order users first show up in the prediction
// set, regardless of which castaways they ranked.
func TestStandingsUserColumnOrder(t *testing.T) {
	castaways := []domain.Castaway{
		castaway("Ana", "Vatu", nil),
		castaway("Ben", "Cila", nil),
	}
	predictions := []domain.Prediction{
		prediction("carol", "Ben", 1),
		prediction("alice", "Ana", 1),
		prediction("carol", "Ana", 2),
		prediction("bob", "Ben", 2),
	}

	table := scoring.Standings(castaways, predictions)

	assert.Equal(t, []string{"carol", "alice", "bob"}, table.Usernames)
}

// Predictions naming castaways outside the table are dropped, but the user
// still gets a column.
func TestStandingsDropsUnknownNames(t *testing.T) {
	castaways := []domain.Castaway{castaway("Ana", "Vatu", nil)}
	predictions := []domain.Prediction{
		prediction("alice", "Zed", 1),
		prediction("bob", "Ana", 1),
	}

	table := scoring.Standings(castaways, predictions)

	assert.Equal(t, []string{"alice", "bob"}, table.Usernames)
	require.Len(t, table.Rows, 1)
	assert.Equal(t, map[string]int{"bob": 1}, table.Rows[0].Predicted)
}
