package domain

// BattlerStats is the fixed stat block every combatant carries.
// FocusPower is a derived composite (base stats plus equipment bonuses)
// computed by the equipment collaborator; it is never derived here.
type BattlerStats struct {
	Health     int `json:"health"`
	Attack     int `json:"attack"`
	Defense    int `json:"defense"`
	Speed      int `json:"speed"`
	Level      int `json:"level"`
	FocusPower int `json:"focus_power"`
}

// DifficultyTier buckets the relative power balance between two combatants.
type DifficultyTier int

const (
	DifficultyEasy DifficultyTier = iota
	DifficultyFair
	DifficultyHard
)

// String returns the display name of the tier.
func (t DifficultyTier) String() string {
	switch t {
	case DifficultyEasy:
		return "easy"
	case DifficultyFair:
		return "fair"
	case DifficultyHard:
		return "hard"
	default:
		return "unknown"
	}
}

// Specialization classifies a combatant's stat distribution archetype.
// It is derived deterministically from a stable identifier, independent
// of the RNG draws used for numeric stats.
type Specialization int

const (
	SpecBalanced Specialization = iota
	SpecTank
	SpecGlassCannon
	SpecSpeedster
)

// String returns the display name of the specialization.
func (s Specialization) String() string {
	switch s {
	case SpecTank:
		return "tank"
	case SpecGlassCannon:
		return "glass_cannon"
	case SpecSpeedster:
		return "speedster"
	case SpecBalanced:
		return "balanced"
	default:
		return "unknown"
	}
}

// Opponent is an ephemeral, procedurally generated duel target.
// Regenerated per request; reproducible for identical player state.
type Opponent struct {
	ID             string         `json:"id"`
	Name           string         `json:"name"`
	Level          int            `json:"level"`
	Rank           Rank           `json:"rank"`
	Stats          BattlerStats   `json:"stats"`
	SuccessRate    int            `json:"success_rate"` // 0-100
	ExactGold      int            `json:"exact_gold"`
	Specialization Specialization `json:"specialization"`
	Tier           DifficultyTier `json:"tier"`
}

// BattleResult is the ephemeral outcome of a single duel.
type BattleResult struct {
	DidWin      bool           `json:"did_win"`
	XPEarned    int            `json:"xp_earned"`
	GoldEarned  int            `json:"gold_earned"`
	Tier        DifficultyTier `json:"tier"`
	Performance float64        `json:"performance"` // 0-1, how decisive the outcome was
}
