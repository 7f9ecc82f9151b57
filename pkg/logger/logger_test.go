package logger

import (
	"context"
	"log/slog"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestLoggerInit(t *testing.T) {
	Convey("Given an uninitialized logger package", t, func() {
		Convey("When Init is called", func() {
			err := Init()

			Convey("Then it should succeed and Get should return a logger", func() {
				So(err, ShouldBeNil)
				So(Get(), ShouldNotBeNil)
			})
		})
	})
}

func TestLoggerFields(t *testing.T) {
	Convey("Given field constructors", t, func() {
		Convey("When building fields", func() {
			s := String("key", "value")
			i := Int("count", 7)
			f := Float64("rate", 0.5)

			Convey("Then keys and values should round-trip", func() {
				So(s.Key, ShouldEqual, "key")
				So(s.Value, ShouldEqual, "value")
				So(i.Value, ShouldEqual, 7)
				So(f.Value, ShouldEqual, 0.5)
			})
		})
	})
}

func TestLoggerLevels(t *testing.T) {
	Convey("Given an initialized logger", t, func() {
		So(Init(), ShouldBeNil)

		Convey("When setting levels from strings", func() {
			So(SetLevelString("debug"), ShouldBeNil)
			So(SetLevelString("WARN"), ShouldBeNil)
			So(SetLevelString(""), ShouldBeNil)

			Convey("Then unknown levels should be rejected", func() {
				So(SetLevelString("loud"), ShouldNotBeNil)
			})
		})

		Convey("When logging through a named logger", func() {
			SetLevel(slog.LevelDebug)
			l := Named("test")

			Convey("Then logging should not panic", func() {
				So(func() {
					l.Debug(context.Background(), "debug message", String("k", "v"))
					l.Info(context.Background(), "info message")
					l.Warn(context.Background(), "warn message")
				}, ShouldNotPanic)
			})
		})
	})
}
