package demo

import (
	"fmt"

	"github.com/skillstub/skillstub/internal/domain/badge"
	"github.com/skillstub/skillstub/internal/domain/model"
	"github.com/skillstub/skillstub/internal/domain/types"
)

// verifyBadges recomputes the badge set from the fetched skills and
// checks the server's answer matches, id for id and in order.
func verifyBadges(skills []types.Skill, got []types.Badge) error {
	collection := make([]model.Skill, len(skills))
	for i, s := range skills {
		collection[i] = model.Skill{ID: s.ID, Name: s.Name, Level: s.Level}
	}
	want := badge.Compute(collection)

	if len(got) != len(want) {
		return fmt.Errorf("earned %d badges, expected %d", len(got), len(want))
	}
	for i := range want {
		if got[i].ID != want[i].ID {
			return fmt.Errorf("badge %d is %s, expected %s", i, got[i].ID, want[i].ID)
		}
	}

	// Sanity-check the arithmetic the rules were evaluated against.
	stats := badge.Aggregate(collection)
	if stats.Total != len(skills) {
		return fmt.Errorf("aggregate total %d does not match %d skills", stats.Total, len(skills))
	}
	return nil
}
