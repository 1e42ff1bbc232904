package scoring

// MBTIPair is one opposed dimension pair with its contribution weight.
type MBTIPair struct {
	Pos    string
	Neg    string
	Weight int
}

// ScoringTables carries every tunable weighting the factor scorers use.
// Passed explicitly into the pure scorers so alternative tables can be
// tested or swapped without touching package state.
type ScoringTables struct {
	MBTIPairs []MBTIPair

	// SafetyMatrix maps agreeableness level x extraversion level to a raw
	// point value. Unspecified levels resolve to "mid".
	SafetyMatrix    map[string]map[string]int
	SafetyQuestions map[string]bool
	SafetyCeiling   int

	WorkstyleWeights   map[string]int
	WorkstyleQuestions map[string]bool
	WorkstyleCeiling   int

	MotivationCeiling int

	NGCategoryCount int
	NGBaseline      int

	SyncCategoryCount int
	SyncBaseline      int
	SyncCeiling       int

	TotalCeiling int
}

// DefaultTables returns the published v1 weighting set.
func DefaultTables() ScoringTables {
	return ScoringTables{
		MBTIPairs: []MBTIPair{
			{Pos: "N", Neg: "T", Weight: 10},
			{Pos: "J", Neg: "P", Weight: 5},
			{Pos: "E", Neg: "I", Weight: 5},
		},
		SafetyMatrix: map[string]map[string]int{
			"low":  {"low": 4, "mid": 6, "high": 8},
			"mid":  {"low": 6, "mid": 8, "high": 10},
			"high": {"low": 8, "mid": 10, "high": 12},
		},
		SafetyQuestions: map[string]bool{"Q4": true, "Q5": true, "Q6": true},
		SafetyCeiling:   20,
		WorkstyleWeights: map[string]int{
			"speed":      4,
			"improv":     3,
			"structured": 4,
			"logical":    3,
			"careful":    3,
			"intuitive":  3,
		},
		WorkstyleQuestions: map[string]bool{"Q7": true, "Q8": true, "Q9": true},
		WorkstyleCeiling:   15,
		MotivationCeiling:  15,
		NGCategoryCount:    6,
		NGBaseline:         5,
		SyncCategoryCount:  6,
		SyncBaseline:       5,
		SyncCeiling:        15,
		TotalCeiling:       100,
	}
}
