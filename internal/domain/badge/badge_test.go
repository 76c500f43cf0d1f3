package badge_test

import (
	"testing"

	badge "github.com/skillstub/skillstub/internal/domain/badge"
	"github.com/skillstub/skillstub/internal/domain/model"
	. "github.com/smartystreets/goconvey/convey"
)

func ids(badges []model.Badge) []string {
	out := make([]string, len(badges))
	for i, b := range badges {
		out[i] = b.ID
	}
	return out
}

func levels(ls ...int) []model.Skill {
	skills := make([]model.Skill, len(ls))
	for i, l := range ls {
		skills[i] = model.Skill{ID: "s", Name: "skill", Level: l}
	}
	return skills
}

func TestAggregate(t *testing.T) {
	Convey("Given a skill collection", t, func() {
		Convey("When the collection is empty", func() {
			st := badge.Aggregate(nil)

			Convey("Then every aggregate is zero", func() {
				So(st.Total, ShouldEqual, 0)
				So(st.Avg, ShouldEqual, 0)
				So(st.Count5, ShouldEqual, 0)
				So(st.Count4, ShouldEqual, 0)
				So(st.Count3, ShouldEqual, 0)
			})
		})

		Convey("When the collection has mixed levels", func() {
			st := badge.Aggregate(levels(5, 4, 3, 0))

			Convey("Then counts are cumulative by threshold", func() {
				So(st.Total, ShouldEqual, 4)
				So(st.Avg, ShouldEqual, 3.0)
				So(st.Count5, ShouldEqual, 1)
				So(st.Count4, ShouldEqual, 2)
				So(st.Count3, ShouldEqual, 3)
			})
		})
	})
}

func TestCompute(t *testing.T) {
	Convey("Given the badge rule table", t, func() {
		Convey("When the collection is empty", func() {
			Convey("Then no badge is earned", func() {
				So(badge.Compute(nil), ShouldBeEmpty)
			})
		})

		Convey("When every rule is satisfied", func() {
			// 15 skills at level 5 satisfies all thresholds at once.
			earned := badge.Compute(levels(5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5))

			Convey("Then the full catalog is returned in table order", func() {
				So(ids(earned), ShouldResemble, []string{"b1", "b2", "b3", "b4", "b5", "b6", "b7", "b8", "b9", "b10"})
			})
		})

		Convey("When exactly 8 skills sit at level 4", func() {
			earned := badge.Compute(levels(4, 4, 4, 4, 4, 4, 4, 4))

			Convey("Then High Achiever implies Climber and nothing level-5 gated fires", func() {
				So(ids(earned), ShouldResemble, []string{"b1", "b5", "b6", "b7", "b10"})
			})
		})

		Convey("When the average sits exactly on a threshold", func() {
			// avg = (4+3)/2 = 3.5
			earned := badge.Compute(levels(4, 3))

			Convey("Then the boundary is inclusive", func() {
				So(ids(earned), ShouldContain, "b1")
				So(ids(earned), ShouldNotContain, "b2")
			})
		})

		Convey("When called repeatedly with the same input", func() {
			in := levels(5, 5, 5, 1)
			first := badge.Compute(in)
			second := badge.Compute(in)

			Convey("Then the output is identical and the input untouched", func() {
				So(second, ShouldResemble, first)
				So(in, ShouldResemble, levels(5, 5, 5, 1))
			})
		})

		Convey("When a skill at or above a count threshold is added", func() {
			base := levels(5, 5, 5)
			grown := append(levels(5, 5, 5), model.Skill{Name: "extra", Level: 5})

			Convey("Then count-based badges are preserved", func() {
				So(ids(badge.Compute(base)), ShouldContain, "b3")
				So(ids(badge.Compute(grown)), ShouldContain, "b3")
			})
		})
	})
}

func TestCatalog(t *testing.T) {
	Convey("Given the static catalog", t, func() {
		defs := badge.Catalog()

		Convey("Then it holds 10 uniquely identified definitions", func() {
			So(defs, ShouldHaveLength, 10)
			seen := map[string]bool{}
			for _, b := range defs {
				So(seen[b.ID], ShouldBeFalse)
				seen[b.ID] = true
				So(b.Name, ShouldNotBeBlank)
				So(b.Description, ShouldNotBeBlank)
			}
		})
	})
}
