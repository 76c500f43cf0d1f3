package service_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/skillstub/skillstub/internal/adapters/repository"
	service "github.com/skillstub/skillstub/internal/app"
	"github.com/skillstub/skillstub/internal/domain/model"
	. "github.com/smartystreets/goconvey/convey"
)

func newTestService(t *testing.T) *service.Service {
	t.Helper()
	store, err := repository.NewSkillStore(repository.NewMemorySlot())
	if err != nil {
		t.Fatalf("new store: %v", err)
	}
	seq := 0
	svc, err := service.New(store, service.WithIDGenerator(func() string {
		seq++
		return fmt.Sprintf("id-%d", seq)
	}))
	if err != nil {
		t.Fatalf("new service: %v", err)
	}
	return svc
}

func strPtr(s string) *string { return &s }
func intPtr(i int) *int       { return &i }

func TestServiceCreateAndList(t *testing.T) {
	Convey("Given an empty service", t, func() {
		svc := newTestService(t)
		ctx := context.Background()

		Convey("When a skill is created", func() {
			created, err := svc.Create(ctx, "Go", 5)

			Convey("Then it carries a fresh id and the given fields", func() {
				So(err, ShouldBeNil)
				So(created.ID, ShouldNotBeBlank)
				So(created.Name, ShouldEqual, "Go")
				So(created.Level, ShouldEqual, 5)
			})

			Convey("And a subsequent list includes it", func() {
				skills, err := svc.List(ctx)
				So(err, ShouldBeNil)
				So(skills, ShouldHaveLength, 1)
				So(skills[0], ShouldResemble, created)
			})
		})

		Convey("When several skills are created", func() {
			first, _ := svc.Create(ctx, "Go", 5)
			second, _ := svc.Create(ctx, "SQL", 3)
			third, _ := svc.Create(ctx, "Rust", 1)

			Convey("Then ids are unique and order is insertion order", func() {
				So(first.ID, ShouldNotEqual, second.ID)
				So(second.ID, ShouldNotEqual, third.ID)
				skills, err := svc.List(ctx)
				So(err, ShouldBeNil)
				So(skills[0].Name, ShouldEqual, "Go")
				So(skills[1].Name, ShouldEqual, "SQL")
				So(skills[2].Name, ShouldEqual, "Rust")
			})
		})
	})
}

func TestServiceUpdate(t *testing.T) {
	Convey("Given a service with one stored skill", t, func() {
		svc := newTestService(t)
		ctx := context.Background()
		stored, _ := svc.Create(ctx, "Go", 2)

		Convey("When only the level is patched", func() {
			updated, err := svc.Update(ctx, stored.ID, model.SkillPatch{Level: intPtr(4)})

			Convey("Then the name is left untouched", func() {
				So(err, ShouldBeNil)
				So(updated.ID, ShouldEqual, stored.ID)
				So(updated.Name, ShouldEqual, "Go")
				So(updated.Level, ShouldEqual, 4)
			})
		})

		Convey("When only the name is patched", func() {
			updated, err := svc.Update(ctx, stored.ID, model.SkillPatch{Name: strPtr("Golang")})

			Convey("Then the level is left untouched", func() {
				So(err, ShouldBeNil)
				So(updated.Name, ShouldEqual, "Golang")
				So(updated.Level, ShouldEqual, 2)
			})
		})

		Convey("When the id is unknown", func() {
			_, err := svc.Update(ctx, "doesnotexist", model.SkillPatch{Level: intPtr(3)})

			Convey("Then the not-found sentinel is returned", func() {
				So(err, ShouldEqual, service.ErrSkillNotFound)
			})
		})
	})
}

func TestServiceDelete(t *testing.T) {
	Convey("Given a service with one stored skill", t, func() {
		svc := newTestService(t)
		ctx := context.Background()
		stored, _ := svc.Create(ctx, "Go", 2)

		Convey("When the skill is deleted", func() {
			err := svc.Delete(ctx, stored.ID)

			Convey("Then it is gone from the collection", func() {
				So(err, ShouldBeNil)
				So(svc.Count(ctx), ShouldEqual, 0)
			})

			Convey("And deleting it again reports not found", func() {
				So(err, ShouldBeNil)
				So(svc.Delete(ctx, stored.ID), ShouldEqual, service.ErrSkillNotFound)
			})
		})
	})
}

func TestServiceBadges(t *testing.T) {
	Convey("Given a service with eight level-4 skills", t, func() {
		svc := newTestService(t)
		ctx := context.Background()
		for i := 0; i < 8; i++ {
			_, err := svc.Create(ctx, fmt.Sprintf("skill-%d", i), 4)
			So(err, ShouldBeNil)
		}

		Convey("When badges are computed", func() {
			badges, err := svc.Badges(ctx)

			Convey("Then the earned set matches the rule table", func() {
				So(err, ShouldBeNil)
				got := make([]string, len(badges))
				for i, b := range badges {
					got[i] = b.ID
				}
				So(got, ShouldResemble, []string{"b1", "b5", "b6", "b7", "b10"})
			})
		})
	})
}
