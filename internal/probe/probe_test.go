package probe_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/okian/curio/internal/adapters/http/api"
	app "github.com/okian/curio/internal/app"
	"github.com/okian/curio/internal/probe"
	"github.com/okian/curio/pkg/logger"
	. "github.com/smartystreets/goconvey/convey"
)

func init() {
	// Initialize logging for tests
	if err := logger.Init(); err != nil {
		panic(err)
	}
}

func startTestService(ctx context.Context) (*httptest.Server, func()) {
	svc := app.New(app.WithLogger(logger.Get()))
	if err := svc.Start(ctx); err != nil {
		panic(err)
	}

	mux := http.NewServeMux()
	api.NewServer(svc, svc, svc.DefaultLimit()).Register(ctx, mux)
	server := httptest.NewServer(mux)

	return server, func() {
		server.Close()
		svc.Stop()
	}
}

func TestProbeRun(t *testing.T) {
	Convey("Given a running catalog service", t, func() {
		ctx := context.Background()
		server, cleanup := startTestService(ctx)
		defer cleanup()

		Convey("When running the probe against it", func() {
			err := probe.Run(ctx, &probe.Config{
				BaseURL: server.URL,
				Timeout: 5 * time.Second,
			})

			Convey("Then every check should pass", func() {
				So(err, ShouldBeNil)
			})
		})
	})

	Convey("Given an unreachable service", t, func() {
		ctx := context.Background()

		Convey("When running the probe", func() {
			err := probe.Run(ctx, &probe.Config{
				BaseURL: "http://127.0.0.1:1",
				Timeout: 500 * time.Millisecond,
			})

			Convey("Then the health check should fail", func() {
				So(err, ShouldNotBeNil)
				So(err.Error(), ShouldContainSubstring, "health check")
			})
		})
	})
}
