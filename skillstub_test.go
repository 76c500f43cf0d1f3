package skillstub_test

import (
	"encoding/json"
	"net/http"
	"path/filepath"
	"strings"
	"testing"

	skillstub "github.com/skillstub/skillstub"
	"github.com/skillstub/skillstub/internal/domain/types"
	. "github.com/smartystreets/goconvey/convey"
)

func TestStubEndToEnd(t *testing.T) {
	Convey("Given a client from the facade", t, func() {
		client, s, err := skillstub.NewClient(skillstub.WithLatency(0))
		So(err, ShouldBeNil)
		defer s.Close()

		Convey("When a skill is created and listed", func() {
			resp, err := client.Post("http://app/api/skills", "application/json",
				strings.NewReader(`{"name":"Go","level":5}`))
			So(err, ShouldBeNil)
			So(resp.StatusCode, ShouldEqual, http.StatusCreated)
			resp.Body.Close()

			list, err := client.Get("http://app/api/skills")
			So(err, ShouldBeNil)
			defer list.Body.Close()

			Convey("Then the collection holds the new skill", func() {
				var skills []types.Skill
				So(json.NewDecoder(list.Body).Decode(&skills), ShouldBeNil)
				So(skills, ShouldHaveLength, 1)
				So(skills[0].Name, ShouldEqual, "Go")
			})
		})
	})
}

func TestStubCustomPrefix(t *testing.T) {
	Convey("Given a stub gating /mock/api", t, func() {
		s, err := skillstub.New(
			skillstub.WithLatency(0),
			skillstub.WithPrefix("/mock/api"),
		)
		So(err, ShouldBeNil)
		defer s.Close()
		client := s.Client()

		Convey("When the custom prefix is used", func() {
			resp, err := client.Get("http://app/mock/api/badges")

			Convey("Then the stub answers", func() {
				So(err, ShouldBeNil)
				So(resp.StatusCode, ShouldEqual, http.StatusOK)
			})
		})
	})
}

func TestStubFileStoragePersists(t *testing.T) {
	Convey("Given two stubs sharing one storage file", t, func() {
		path := filepath.Join(t.TempDir(), "skills.json")

		first, err := skillstub.New(skillstub.WithLatency(0), skillstub.WithFileStorage(path))
		So(err, ShouldBeNil)
		resp, err := first.Client().Post("http://app/api/skills", "application/json",
			strings.NewReader(`{"name":"SQL","level":3}`))
		So(err, ShouldBeNil)
		resp.Body.Close()
		So(first.Close(), ShouldBeNil)

		Convey("When a second stub opens the same file", func() {
			second, err := skillstub.New(skillstub.WithLatency(0), skillstub.WithFileStorage(path))
			So(err, ShouldBeNil)
			defer second.Close()

			list, err := second.Client().Get("http://app/api/skills")
			So(err, ShouldBeNil)
			defer list.Body.Close()

			Convey("Then the collection survived the restart", func() {
				var skills []types.Skill
				So(json.NewDecoder(list.Body).Decode(&skills), ShouldBeNil)
				So(skills, ShouldHaveLength, 1)
				So(skills[0].Name, ShouldEqual, "SQL")
				So(skills[0].Level, ShouldEqual, 3)
			})
		})
	})
}
