package config_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/placewise/placewise/internal/config"
	. "github.com/smartystreets/goconvey/convey"
)

func TestLoad(t *testing.T) {
	Convey("Given the config loader", t, func() {
		Convey("When loading with no overrides", func() {
			cfg, err := config.Load(context.Background())

			Convey("Then it should return defaults", func() {
				So(err, ShouldBeNil)
				So(cfg.Addr, ShouldEqual, ":8080")
				So(cfg.StoreBackend, ShouldEqual, config.BackendMemory)
			})
		})

		Convey("When environment variables are set", func() {
			So(os.Setenv("PLACEWISE_ADDR", ":9999"), ShouldBeNil)
			So(os.Setenv("PLACEWISE_DEFAULT_TOP_K", "7"), ShouldBeNil)
			defer func() {
				_ = os.Unsetenv("PLACEWISE_ADDR")
				_ = os.Unsetenv("PLACEWISE_DEFAULT_TOP_K")
			}()

			cfg, err := config.Load(context.Background())

			Convey("Then env values should take precedence", func() {
				So(err, ShouldBeNil)
				So(cfg.Addr, ShouldEqual, ":9999")
				So(cfg.DefaultTopK, ShouldEqual, 7)
			})
		})

		Convey("When a YAML file is provided", func() {
			dir := t.TempDir()
			path := filepath.Join(dir, "config.yaml")
			content := []byte("addr: \":7070\"\ndefault_overview_limit: 25\n")
			So(os.WriteFile(path, content, 0o600), ShouldBeNil)
			So(os.Setenv("PLACEWISE_CONFIG", path), ShouldBeNil)
			defer func() { _ = os.Unsetenv("PLACEWISE_CONFIG") }()

			cfg, err := config.Load(context.Background())

			Convey("Then file values should override defaults", func() {
				So(err, ShouldBeNil)
				So(cfg.Addr, ShouldEqual, ":7070")
				So(cfg.DefaultOverviewLimit, ShouldEqual, 25)
			})
		})

		Convey("When the store backend is unknown", func() {
			So(os.Setenv("PLACEWISE_STORE_BACKEND", "mongodb"), ShouldBeNil)
			defer func() { _ = os.Unsetenv("PLACEWISE_STORE_BACKEND") }()

			_, err := config.Load(context.Background())

			Convey("Then loading should fail with ErrInvalidConfig", func() {
				So(err, ShouldNotBeNil)
				So(errors.Is(err, config.ErrInvalidConfig), ShouldBeTrue)
			})
		})

		Convey("When badger is selected without a data dir", func() {
			So(os.Setenv("PLACEWISE_STORE_BACKEND", "badger"), ShouldBeNil)
			defer func() { _ = os.Unsetenv("PLACEWISE_STORE_BACKEND") }()

			_, err := config.Load(context.Background())

			Convey("Then loading should fail", func() {
				So(err, ShouldNotBeNil)
				So(errors.Is(err, config.ErrInvalidConfig), ShouldBeTrue)
			})
		})
	})
}
