package analytics_test

import (
	"testing"

	"github.com/placewise/placewise/internal/adapters/docstore"
	"github.com/placewise/placewise/internal/domain/analytics"
	. "github.com/smartystreets/goconvey/convey"
)

func TestSuccessRate(t *testing.T) {
	Convey("Given a user's application outcomes", t, func() {
		Convey("When outcomes are mixed", func() {
			outcomes := []docstore.Document{
				{"user_id": "u1", "job_id": "j1", "outcome": "success"},
				{"user_id": "u1", "job_id": "j2", "outcome": "rejected"},
				{"user_id": "u1", "job_id": "j3", "outcome": "SUCCESS"},
			}
			r := analytics.SuccessRate("u1", outcomes)

			Convey("Then matching should be case-insensitive", func() {
				So(r.Total, ShouldEqual, 3)
				So(r.Success, ShouldEqual, 2)
				So(r.Rate, ShouldEqual, 0.667)
			})
		})

		Convey("When the user has no outcomes", func() {
			r := analytics.SuccessRate("u2", nil)

			Convey("Then it should return zeros, not an error", func() {
				So(r.UserID, ShouldEqual, "u2")
				So(r.Total, ShouldEqual, 0)
				So(r.Success, ShouldEqual, 0)
				So(r.Rate, ShouldEqual, 0.0)
			})
		})

		Convey("When every outcome is a success", func() {
			outcomes := []docstore.Document{
				{"outcome": "Success"},
				{"outcome": "success"},
			}
			r := analytics.SuccessRate("u3", outcomes)

			Convey("Then the rate should be 1.0", func() {
				So(r.Rate, ShouldEqual, 1.0)
			})
		})

		Convey("When an outcome document lacks a label", func() {
			outcomes := []docstore.Document{
				{"outcome": "success"},
				{"notes": "no label recorded"},
			}
			r := analytics.SuccessRate("u4", outcomes)

			Convey("Then it should count toward total but not success", func() {
				So(r.Total, ShouldEqual, 2)
				So(r.Success, ShouldEqual, 1)
				So(r.Rate, ShouldEqual, 0.5)
			})
		})
	})
}
