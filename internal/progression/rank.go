package progression

import "github.com/avenmore/focusquest/internal/domain"

// Ranks is the ordered rank table. Ranges partition the level axis with
// no gaps or overlaps; the last rank is open-ended (MaxLevel 0).
var Ranks = []domain.Rank{
	{Code: "E", Title: "Novice", Color: "#9E9E9E", MinLevel: 1, MaxLevel: 9},
	{Code: "D", Title: "Apprentice", Color: "#8D6E63", MinLevel: 10, MaxLevel: 19},
	{Code: "C", Title: "Adept", Color: "#4CAF50", MinLevel: 20, MaxLevel: 29},
	{Code: "B", Title: "Veteran", Color: "#2196F3", MinLevel: 30, MaxLevel: 39},
	{Code: "A", Title: "Elite", Color: "#9C27B0", MinLevel: 40, MaxLevel: 49},
	{Code: "S", Title: "Master", Color: "#FF9800", MinLevel: 50, MaxLevel: 69},
	{Code: "SS", Title: "Grandmaster", Color: "#F44336", MinLevel: 70, MaxLevel: 0},
}

// RankForLevel returns the rank whose range contains level. Levels below
// the table floor clamp to the first rank.
func RankForLevel(level int) domain.Rank {
	for _, r := range Ranks {
		if r.Contains(level) {
			return r
		}
	}
	return Ranks[0]
}

// RankIndex returns the position of a rank code in the ordered table,
// or -1 when unknown.
func RankIndex(code string) int {
	for i, r := range Ranks {
		if r.Code == code {
			return i
		}
	}
	return -1
}

// RankChange describes a rank boundary crossing.
type RankChange struct {
	OldRank domain.Rank
	NewRank domain.Rank
}

// RankUp returns the rank transition between two levels, or nil when
// both levels fall inside the same rank. Same-rank level-ups never fire.
func RankUp(oldLevel, newLevel int) *RankChange {
	oldRank := RankForLevel(oldLevel)
	newRank := RankForLevel(newLevel)
	if oldRank.Code == newRank.Code {
		return nil
	}
	return &RankChange{OldRank: oldRank, NewRank: newRank}
}
