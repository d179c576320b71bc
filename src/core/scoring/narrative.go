package scoring

import (
	"fmt"
	"strings"
)

// Narrative renders the game-state snapshot into the free-text lines shown
// on the overview page.
func Narrative(state GameState) []string {
	if state.NEliminated == 0 {
		return []string{
			"The game hasn't started yet. No castaways have been eliminated; come back after the first episode!",
		}
	}

	name := state.MostRecent.PlayerName
	actual := *state.MostRecent.ActualRank

	var lines []string
	if state.Winner != nil {
		lines = append(lines,
			"Previously on Survivor...",
			fmt.Sprintf("The game is over! All %d castaways have been accounted for.", state.NEliminated),
			fmt.Sprintf("%s has been crowned the Sole Survivor!", *state.Winner),
		)
	} else {
		lines = append(lines,
			"Previously on Survivor...",
			fmt.Sprintf("%s been eliminated; %d %s in the game.",
				countPhrase(state.NEliminated, "castaway has", "castaways have"),
				state.NRemaining, plural(state.NRemaining, "remains", "remain")),
			fmt.Sprintf("Most recently voted out: %s (rank #%d).", name, actual),
		)
	}

	if len(state.Exact) > 0 {
		lines = append(lines, fmt.Sprintf("%s correctly predicted %s would be eliminated #%d!",
			strings.Join(state.Exact, ", "), name, actual))
	} else {
		lines = append(lines, fmt.Sprintf("Nobody predicted %s would go at #%d; no exact match bonuses this round.",
			name, actual))
	}

	if state.Winner == nil && len(state.FinalThree) >= 3 {
		lines = append(lines, fmt.Sprintf("We have a final three! %s are heading to Final Tribal Council.",
			strings.Join(state.FinalThree, ", ")))
	}

	if state.SecondGap != nil {
		if *state.SecondGap == 0 {
			lines = append(lines, fmt.Sprintf("It's tied at the top! %s are level on %d pts.",
				strings.Join(state.Leaders, " and "), state.LeaderTotal))
		} else {
			lines = append(lines, fmt.Sprintf("%s leads with %d pts, %d ahead of %s.",
				state.Leaders[0], state.LeaderTotal, *state.SecondGap, state.Scores[1].Username))
		}
	}

	return lines
}

func countPhrase(n int, singular, pluralForm string) string {
	return fmt.Sprintf("%d %s", n, plural(n, singular, pluralForm))
}

func plural(n int, singular, pluralForm string) string {
	if n == 1 {
		return singular
	}
	return pluralForm
}
