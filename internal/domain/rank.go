package domain

// Rank is a coarse progression tier spanning a contiguous range of levels.
type Rank struct {
	Code     string `json:"code"`
	Title    string `json:"title"`
	Color    string `json:"color"`
	MinLevel int    `json:"min_level"`
	MaxLevel int    `json:"max_level"` // 0 means unbounded
}

// Contains reports whether level falls inside this rank's range.
func (r Rank) Contains(level int) bool {
	if level < r.MinLevel {
		return false
	}
	return r.MaxLevel == 0 || level <= r.MaxLevel
}

// LevelProgress is the derived position of a user inside their current level.
type LevelProgress struct {
	CurrentLevel    int     `json:"current_level"`
	XPInLevel       int64   `json:"xp_in_level"`
	XPNeededForNext int64   `json:"xp_needed_for_next"`
	ProgressPercent float64 `json:"progress_percent"`
}
