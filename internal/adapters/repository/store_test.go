package repository_test

import (
	"context"
	"testing"

	repository "github.com/skillstub/skillstub/internal/adapters/repository"
	"github.com/skillstub/skillstub/internal/domain/model"
	. "github.com/smartystreets/goconvey/convey"
)

func TestSkillStoreLoad(t *testing.T) {
	Convey("Given a skill store over a memory slot", t, func() {
		ctx := context.Background()
		slot := repository.NewMemorySlot()
		store, err := repository.NewSkillStore(slot)
		So(err, ShouldBeNil)

		Convey("When the slot has never been written", func() {
			Convey("Then the load yields an empty collection", func() {
				So(store.Load(ctx), ShouldBeEmpty)
			})
		})

		Convey("When the slot holds a malformed payload", func() {
			So(slot.Set(ctx, []byte("{not json")), ShouldBeNil)

			Convey("Then the load resets to empty instead of failing", func() {
				So(store.Load(ctx), ShouldBeEmpty)
			})
		})

		Convey("When the slot holds JSON that is not an array", func() {
			So(slot.Set(ctx, []byte(`{"id":"x"}`)), ShouldBeNil)

			Convey("Then the load resets to empty instead of failing", func() {
				So(store.Load(ctx), ShouldBeEmpty)
			})
		})

		Convey("When a collection has been saved", func() {
			skills := []model.Skill{
				{ID: "a", Name: "Go", Level: 5},
				{ID: "b", Name: "SQL", Level: 3},
			}
			So(store.Save(ctx, skills), ShouldBeNil)

			Convey("Then the load returns it in insertion order", func() {
				So(store.Load(ctx), ShouldResemble, skills)
			})

			Convey("And save(load()) leaves the content unchanged", func() {
				So(store.Save(ctx, store.Load(ctx)), ShouldBeNil)
				So(store.Load(ctx), ShouldResemble, skills)
			})
		})
	})

	Convey("Given a nil slot", t, func() {
		Convey("Then store construction fails", func() {
			_, err := repository.NewSkillStore(nil)
			So(err, ShouldEqual, repository.ErrNilSlot)
		})
	})
}
