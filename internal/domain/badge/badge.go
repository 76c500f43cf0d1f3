// Package badge derives achievement badges from aggregate skill statistics.
package badge

import "github.com/skillstub/skillstub/internal/domain/model"

// Threshold constants for the badge catalog.
const (
	wellRoundedAvg     = 3.5
	mastermindAvg      = 4.5
	expertTrioCount5   = 3
	perfectionistCount = 5
	climberCount4      = 5
	highAchieverCount4 = 8
	persistentTotal    = 8
	generalistTotal    = 10
	marathonTotal      = 15
	steadyGrowthCount3 = 6
)

// Level cutoffs used by the counting aggregates.
const (
	expertLevel   = 5
	advancedLevel = 4
	solidLevel    = 3
)

// Stats holds the aggregates badge rules are evaluated against.
type Stats struct {
	Total  int     // number of skills
	Avg    float64 // mean level, 0 when the collection is empty
	Count5 int     // skills with level >= 5
	Count4 int     // skills with level >= 4
	Count3 int     // skills with level >= 3
}

// Aggregate computes Stats over a skill collection. The input is never
// mutated.
func Aggregate(skills []model.Skill) Stats {
	st := Stats{Total: len(skills)}
	if st.Total == 0 {
		return st
	}
	sum := 0
	for _, s := range skills {
		sum += s.Level
		if s.Level >= expertLevel {
			st.Count5++
		}
		if s.Level >= advancedLevel {
			st.Count4++
		}
		if s.Level >= solidLevel {
			st.Count3++
		}
	}
	st.Avg = float64(sum) / float64(st.Total)
	return st
}

// rule pairs a badge definition with its predicate over Stats. Rules are
// independent: a collection may earn any subset of the catalog.
type rule struct {
	badge  model.Badge
	earned func(Stats) bool
}

// catalog is the fixed badge rule table. Output order of Compute is the
// order of this table.
var catalog = []rule{
	{
		badge:  model.Badge{ID: "b1", Name: "Well-Rounded", Description: "Average skill level of 3.5 or higher"},
		earned: func(s Stats) bool { return s.Avg >= wellRoundedAvg },
	},
	{
		badge:  model.Badge{ID: "b2", Name: "Mastermind", Description: "Average skill level of 4.5 or higher"},
		earned: func(s Stats) bool { return s.Avg >= mastermindAvg },
	},
	{
		badge:  model.Badge{ID: "b3", Name: "Expert Trio", Description: "At least 3 skills at level 5"},
		earned: func(s Stats) bool { return s.Count5 >= expertTrioCount5 },
	},
	{
		badge:  model.Badge{ID: "b4", Name: "Perfectionist", Description: "At least 5 skills at level 5"},
		earned: func(s Stats) bool { return s.Count5 >= perfectionistCount },
	},
	{
		badge:  model.Badge{ID: "b5", Name: "Climber", Description: "At least 5 skills at level 4 or higher"},
		earned: func(s Stats) bool { return s.Count4 >= climberCount4 },
	},
	{
		badge:  model.Badge{ID: "b6", Name: "High Achiever", Description: "At least 8 skills at level 4 or higher"},
		earned: func(s Stats) bool { return s.Count4 >= highAchieverCount4 },
	},
	{
		badge:  model.Badge{ID: "b7", Name: "Persistent", Description: "Track 8 or more skills"},
		earned: func(s Stats) bool { return s.Total >= persistentTotal },
	},
	{
		badge:  model.Badge{ID: "b8", Name: "Generalist", Description: "Track 10 or more skills"},
		earned: func(s Stats) bool { return s.Total >= generalistTotal },
	},
	{
		badge:  model.Badge{ID: "b9", Name: "Marathon", Description: "Track 15 or more skills"},
		earned: func(s Stats) bool { return s.Total >= marathonTotal },
	},
	{
		badge:  model.Badge{ID: "b10", Name: "Steady Growth", Description: "At least 6 skills at level 3 or higher"},
		earned: func(s Stats) bool { return s.Count3 >= steadyGrowthCount3 },
	},
}

// Compute returns the badges earned by the given collection, in catalog
// order. It is a pure function: deterministic, no side effects, input
// never mutated.
func Compute(skills []model.Skill) []model.Badge {
	st := Aggregate(skills)
	out := make([]model.Badge, 0, len(catalog))
	for _, r := range catalog {
		if r.earned(st) {
			out = append(out, r.badge)
		}
	}
	return out
}

// Catalog returns the full badge definitions in table order.
func Catalog() []model.Badge {
	out := make([]model.Badge, len(catalog))
	for i, r := range catalog {
		out[i] = r.badge
	}
	return out
}
