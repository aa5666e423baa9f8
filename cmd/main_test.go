package main

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/okian/lineup/internal/config"
	"github.com/okian/lineup/pkg/logger"
	"github.com/smartystreets/goconvey/convey"
)

func TestServerWiring(t *testing.T) {
	convey.Convey("Given configuration pointing at a temporary roster", t, func() {
		convey.So(logger.InitWithWriter(io.Discard, "error"), convey.ShouldBeNil)

		ctx := context.Background()
		cfg := config.New()
		cfg.RosterPath = filepath.Join(t.TempDir(), "roster.json")
		cfg.TeamName = "Wiring FC"

		svc := newService(ctx, cfg)
		convey.So(svc.Start(ctx), convey.ShouldBeNil)
		ts := httptest.NewServer(newMux(ctx, svc, cfg))
		defer ts.Close()

		convey.Convey("Then API and docs routes are served", func() {
			for _, path := range []string{"/healthz", "/stats", "/formations", "/openapi.yaml", "/api-docs"} {
				resp, err := http.Get(ts.URL + path)
				convey.So(err, convey.ShouldBeNil)
				_ = resp.Body.Close()
				convey.So(resp.StatusCode, convey.ShouldEqual, http.StatusOK)
			}
		})

		convey.Convey("Then votes are saved to the configured roster on stop", func() {
			resp, err := http.Post(ts.URL+"/votes", "application/json",
				strings.NewReader(`{"player":"ann","role":"GK","voter":"v","rating":"4"}`))
			convey.So(err, convey.ShouldBeNil)
			_ = resp.Body.Close()
			convey.So(resp.StatusCode, convey.ShouldEqual, http.StatusOK)
			convey.So(svc.Stop(ctx), convey.ShouldBeNil)

			info, err := os.Stat(cfg.RosterPath)
			convey.So(err, convey.ShouldBeNil)
			convey.So(info.Mode().Perm(), convey.ShouldEqual, rosterFileMode)

			again := newService(ctx, cfg)
			convey.So(again.Start(ctx), convey.ShouldBeNil)
			p, err := again.Player(ctx, "Ann")
			convey.So(err, convey.ShouldBeNil)
			convey.So(p.Name, convey.ShouldEqual, "Ann")
			convey.So(again.TeamName(), convey.ShouldEqual, "Wiring FC")
		})
	})
}
