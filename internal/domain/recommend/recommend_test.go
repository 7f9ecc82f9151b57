package recommend_test

import (
	"testing"

	"github.com/placewise/placewise/internal/adapters/docstore"
	"github.com/placewise/placewise/internal/domain/recommend"
	. "github.com/smartystreets/goconvey/convey"
)

func fltPtr(f float64) *float64 { return &f }

func TestJaccard(t *testing.T) {
	Convey("Given pairs of skill sets", t, func() {
		Convey("When both sets are empty", func() {
			So(recommend.Jaccard(nil, nil), ShouldEqual, 0.0)
			So(recommend.Jaccard([]string{}, []string{}), ShouldEqual, 0.0)
		})

		Convey("When the sets are identical", func() {
			So(recommend.Jaccard([]string{"python", "sql"}, []string{"python", "sql"}), ShouldEqual, 1.0)
		})

		Convey("When the sets partially overlap", func() {
			So(recommend.Jaccard([]string{"python"}, []string{"python", "java"}), ShouldEqual, 0.5)
		})

		Convey("When the sets are disjoint", func() {
			So(recommend.Jaccard([]string{"python"}, []string{"java"}), ShouldEqual, 0.0)
		})

		Convey("When only one side is empty", func() {
			So(recommend.Jaccard(nil, []string{"java"}), ShouldEqual, 0.0)
			So(recommend.Jaccard([]string{"python"}, nil), ShouldEqual, 0.0)
		})

		Convey("Then similarity should be symmetric", func() {
			a := []string{"python", "sql", "excel"}
			b := []string{"sql", "communication"}
			So(recommend.Jaccard(a, b), ShouldEqual, recommend.Jaccard(b, a))
		})

		Convey("Then duplicates and order should not matter", func() {
			So(recommend.Jaccard([]string{"sql", "python", "python"}, []string{"python", "sql"}), ShouldEqual, 1.0)
		})
	})
}

func TestRank(t *testing.T) {
	Convey("Given a user and candidate jobs", t, func() {
		jobs := []docstore.Document{
			{"job_id": "j1", "title": "Data Analyst", "requirements": []string{"python", "sql"}},
			{"job_id": "j2", "title": "Backend Dev", "requirements": []string{"go", "sql"}},
			{"job_id": "j3", "title": "Clerk", "requirements": []string{"typing"}},
		}
		skills := []string{"python", "sql"}

		Convey("When ranking without experience constraints", func() {
			out := recommend.Rank(skills, nil, jobs, 5)

			Convey("Then candidates should be sorted non-increasing by score", func() {
				So(out, ShouldHaveLength, 3)
				So(out[0].JobID, ShouldEqual, "j1")
				So(out[0].Score, ShouldEqual, 1.0)
				So(out[1].JobID, ShouldEqual, "j2")
				So(out[1].Score, ShouldEqual, 0.333)
				So(out[2].Score, ShouldEqual, 0.0)
			})
		})

		Convey("When topK truncates the list", func() {
			out := recommend.Rank(skills, nil, jobs, 1)
			So(out, ShouldHaveLength, 1)
			So(out[0].JobID, ShouldEqual, "j1")
		})

		Convey("When topK is zero", func() {
			So(recommend.Rank(skills, nil, jobs, 0), ShouldBeEmpty)
		})

		Convey("When scores tie", func() {
			tied := []docstore.Document{
				{"job_id": "a", "title": "A", "requirements": []string{"python", "sql"}},
				{"job_id": "b", "title": "B", "requirements": []string{"python", "sql"}},
			}
			out := recommend.Rank(skills, nil, tied, 5)

			Convey("Then scan order should be preserved", func() {
				So(out[0].JobID, ShouldEqual, "a")
				So(out[1].JobID, ShouldEqual, "b")
			})
		})
	})
}

func TestExperiencePenalty(t *testing.T) {
	Convey("Given a job with a minimum-experience threshold", t, func() {
		jobs := []docstore.Document{
			{"job_id": "j1", "title": "Senior Dev", "requirements": []string{"python", "sql"}, "min_experience": 3.0},
		}
		skills := []string{"python", "sql"}

		Convey("When the user is under-experienced", func() {
			out := recommend.Rank(skills, fltPtr(1), jobs, 5)

			Convey("Then the score should be discounted by 0.8 and rounded", func() {
				So(out[0].Score, ShouldEqual, 0.8)
			})
		})

		Convey("When the user meets the threshold exactly", func() {
			out := recommend.Rank(skills, fltPtr(3), jobs, 5)
			So(out[0].Score, ShouldEqual, 1.0)
		})

		Convey("When the user's experience is unknown", func() {
			out := recommend.Rank(skills, nil, jobs, 5)

			Convey("Then no penalty should apply", func() {
				So(out[0].Score, ShouldEqual, 1.0)
			})
		})

		Convey("When the job has no threshold", func() {
			open := []docstore.Document{
				{"job_id": "j2", "title": "Dev", "requirements": []string{"python", "sql"}},
			}
			out := recommend.Rank(skills, fltPtr(0), open, 5)

			Convey("Then no penalty should apply regardless of experience", func() {
				So(out[0].Score, ShouldEqual, 1.0)
			})
		})

		Convey("When the discounted score needs rounding", func() {
			partial := []docstore.Document{
				{"job_id": "j3", "title": "Dev", "requirements": []string{"python", "java", "go"}, "min_experience": 5.0},
			}
			out := recommend.Rank([]string{"python"}, fltPtr(2), partial, 5)

			Convey("Then the result should carry 3 decimals", func() {
				// 1/3 * 0.8 = 0.2666... -> 0.267
				So(out[0].Score, ShouldEqual, 0.267)
			})
		})
	})
}
