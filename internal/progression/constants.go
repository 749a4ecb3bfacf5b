package progression

// XP formula constants
const (
	// BaseXP is the base XP value used in level calculations
	BaseXP = 100.0

	// LevelExponent is the exponent used in the XP formula: XP = BaseXP * (Level ^ LevelExponent)
	LevelExponent = 1.5

	// MinLevel is the floor level; zero accumulated XP maps here
	MinLevel = 1

	// MaxLevel is the maximum level to iterate to when calculating levels
	MaxLevel = 100
)
