package docstore_test

import (
	"context"
	"errors"
	"testing"

	"github.com/placewise/placewise/internal/adapters/docstore"
	. "github.com/smartystreets/goconvey/convey"
)

func TestMemoryStore(t *testing.T) {
	Convey("Given an empty in-memory store", t, func() {
		store := docstore.NewMemoryStore()
		ctx := context.Background()

		Convey("When inserting documents", func() {
			id1, err1 := store.Insert(ctx, "event", docstore.Document{"event_type": "page_view", "user_id": "u1"})
			id2, err2 := store.Insert(ctx, "event", docstore.Document{"event_type": "click", "user_id": "u2"})

			Convey("Then each insert should assign a distinct id", func() {
				So(err1, ShouldBeNil)
				So(err2, ShouldBeNil)
				So(id1, ShouldNotBeEmpty)
				So(id1, ShouldNotEqual, id2)
			})

			Convey("And Count should reflect the inserts", func() {
				n, err := store.Count(ctx, "event")
				So(err, ShouldBeNil)
				So(n, ShouldEqual, 2)
			})

			Convey("And Find should preserve insertion order", func() {
				docs, err := store.Find(ctx, "event", nil, 0)
				So(err, ShouldBeNil)
				So(docs, ShouldHaveLength, 2)
				So(docs[0]["event_type"], ShouldEqual, "page_view")
				So(docs[1]["event_type"], ShouldEqual, "click")
			})

			Convey("And Find should honor the limit", func() {
				docs, err := store.Find(ctx, "event", nil, 1)
				So(err, ShouldBeNil)
				So(docs, ShouldHaveLength, 1)
			})

			Convey("And filters should select by field equality", func() {
				docs, err := store.Find(ctx, "event", docstore.Filter{"user_id": "u2"}, 0)
				So(err, ShouldBeNil)
				So(docs, ShouldHaveLength, 1)
				So(docs[0]["event_type"], ShouldEqual, "click")
			})
		})

		Convey("When looking up a missing document", func() {
			_, err := store.FindOne(ctx, "userprofile", docstore.Filter{"user_id": "ghost"})

			Convey("Then it should return ErrNoDocument", func() {
				So(errors.Is(err, docstore.ErrNoDocument), ShouldBeTrue)
			})
		})

		Convey("When updating a document", func() {
			_, err := store.Insert(ctx, "userprofile", docstore.Document{"user_id": "u1", "age": 30})
			So(err, ShouldBeNil)

			err = store.UpdateOne(ctx, "userprofile", docstore.Filter{"user_id": "u1"}, docstore.Document{"name": "A"})
			So(err, ShouldBeNil)

			Convey("Then supplied fields should merge without erasing others", func() {
				doc, err := store.FindOne(ctx, "userprofile", docstore.Filter{"user_id": "u1"})
				So(err, ShouldBeNil)
				So(doc["age"], ShouldEqual, 30)
				So(doc["name"], ShouldEqual, "A")
			})

			Convey("And updating a missing document should return ErrNoDocument", func() {
				err := store.UpdateOne(ctx, "userprofile", docstore.Filter{"user_id": "ghost"}, docstore.Document{"name": "B"})
				So(errors.Is(err, docstore.ErrNoDocument), ShouldBeTrue)
			})
		})

		Convey("When mutating a returned document", func() {
			_, err := store.Insert(ctx, "job", docstore.Document{"job_id": "j1", "title": "Dev"})
			So(err, ShouldBeNil)

			doc, err := store.FindOne(ctx, "job", docstore.Filter{"job_id": "j1"})
			So(err, ShouldBeNil)
			doc["title"] = "mutated"

			Convey("Then the stored copy should be unaffected", func() {
				again, err := store.FindOne(ctx, "job", docstore.Filter{"job_id": "j1"})
				So(err, ShouldBeNil)
				So(again["title"], ShouldEqual, "Dev")
			})
		})

		Convey("When the store is closed", func() {
			So(store.Close(), ShouldBeNil)

			Convey("Then operations should fail with ErrStoreClosed", func() {
				_, err := store.Insert(ctx, "event", docstore.Document{"event_type": "x"})
				So(errors.Is(err, docstore.ErrStoreClosed), ShouldBeTrue)
			})
		})
	})
}

func TestOpenFactory(t *testing.T) {
	Convey("Given the store factory", t, func() {
		Convey("When opening the memory backend", func() {
			store, err := docstore.Open(docstore.BackendMemory, "", "")
			So(err, ShouldBeNil)
			So(store, ShouldNotBeNil)
			So(store.Close(), ShouldBeNil)
		})

		Convey("When opening an unknown backend", func() {
			_, err := docstore.Open("mongodb", "", "")
			So(errors.Is(err, docstore.ErrUnknownBackend), ShouldBeTrue)
		})
	})
}
