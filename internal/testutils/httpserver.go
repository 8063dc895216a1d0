package testutils

import (
	"net/http/httptest"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"
	"go.uber.org/fx/fxtest"

	"github.com/sergeii/enigma/cmd/enigma/application"
	"github.com/sergeii/enigma/cmd/enigma/components/api"
	"github.com/sergeii/enigma/internal/metrics"
	"github.com/sergeii/enigma/tests/testapp"
)

// PrepareTestServer serves the API router from a test server backed by a fully wired application.
func PrepareTestServer(tb fxtest.TB, extra ...fx.Option) (*httptest.Server, func()) {
	ts, _, cleanup := PrepareTestServerWithMetrics(tb, extra...)
	return ts, cleanup
}

func PrepareTestServerWithMetrics(
	tb fxtest.TB,
	extra ...fx.Option,
) (*httptest.Server, *metrics.Collector, func()) {
	gin.SetMode(gin.ReleaseMode)

	var router *gin.Engine
	var collector *metrics.Collector
	fxopts := []fx.Option{
		fx.Supply(api.Config{HTTPListenAddr: "localhost:0"}),
		fx.Provide(testapp.ProvideSettings),
		fx.Provide(testapp.NoLogging),
		application.Module,
		api.Module,
		fx.NopLogger,
		fx.Populate(&router, &collector),
	}
	fxopts = append(fxopts, extra...)

	app := fxtest.New(tb, fxopts...)
	app.RequireStart()

	ts := httptest.NewServer(router)

	return ts, collector, func() {
		defer app.RequireStop()
		defer ts.Close()
	}
}
