package components_test

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"testing"

	dto "github.com/prometheus/client_model/go"
	"github.com/prometheus/common/expfmt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx"

	"github.com/sergeii/enigma/cmd/enigma/application"
	"github.com/sergeii/enigma/cmd/enigma/components/api"
	"github.com/sergeii/enigma/cmd/enigma/components/exporter"
	tu "github.com/sergeii/enigma/internal/testutils"
	"github.com/sergeii/enigma/tests/testapp"
)

func getMetrics(t *testing.T, exp *exporter.Component) map[string]*dto.MetricFamily {
	addr := tu.Must(exp.Addr())
	resp, err := http.Get(fmt.Sprintf("http://%s/metrics", addr)) // nolint: noctx
	require.NoError(t, err)
	defer func() {
		if err := resp.Body.Close(); err != nil {
			panic(fmt.Sprintf("failed to close response body: %v", err))
		}
	}()
	assert.Equal(t, 200, resp.StatusCode)
	parser := expfmt.TextParser{}
	mf, err := parser.TextToMetricFamilies(resp.Body)
	require.NoError(t, err)
	return mf
}

func post(t *testing.T, svr *api.Component, path, body string) int {
	addr := tu.Must(svr.Addr())
	resp, err := http.Post( // nolint: noctx
		fmt.Sprintf("http://%s%s", addr, path),
		"application/json",
		bytes.NewReader([]byte(body)),
	)
	require.NoError(t, err)
	defer resp.Body.Close() // nolint: errcheck
	return resp.StatusCode
}

func get(t *testing.T, svr *api.Component, path string) int {
	addr := tu.Must(svr.Addr())
	resp, err := http.Get(fmt.Sprintf("http://%s%s", addr, path)) // nolint: noctx
	require.NoError(t, err)
	defer resp.Body.Close() // nolint: errcheck
	return resp.StatusCode
}

func labelValue(m *dto.Metric, name string) string {
	for _, pair := range m.GetLabel() {
		if pair.GetName() == name {
			return pair.GetValue()
		}
	}
	return ""
}

func TestExporter_CipherMetrics(t *testing.T) {
	var exp *exporter.Component
	var svr *api.Component

	app := fx.New(
		fx.Provide(testapp.NoLogging),
		fx.Provide(testapp.ProvideSettings),
		application.Module,
		fx.Supply(exporter.Config{
			HTTPListenAddress: "localhost:0",
		}),
		fx.Supply(api.Config{
			HTTPListenAddr: "localhost:0",
		}),
		exporter.Module,
		api.Module,
		fx.NopLogger,
		fx.Populate(&exp, &svr),
	)
	tu.MustNoErr(app.Start(context.TODO()))
	defer func() {
		tu.MustNoErr(app.Stop(context.TODO()))
	}()

	ks := `{"reflector": "B", "rotors": ["I", "II", "III"]}`
	assert.Equal(t, 200, post(t, svr, "/api/encrypt", `{"keysheet": `+ks+`, "text": "Hello, World!"}`))
	assert.Equal(t, 200, post(t, svr, "/api/encrypt", `{"keysheet": `+ks+`, "text": "AAAAA"}`))
	assert.Equal(t, 422, post(t, svr, "/api/encrypt", `{"keysheet": {"reflector": "D", "rotors": ["I", "II", "III"]}}`))
	assert.Equal(t, 400, post(t, svr, "/api/encrypt", `not json`))
	assert.Equal(t, 200, get(t, svr, "/api/keysheets/random?seed=1"))
	assert.Equal(t, 200, get(t, svr, "/api/keysheets/random"))
	assert.Equal(t, 200, get(t, svr, "/api/keysheets/random"))
	assert.Equal(t, 404, get(t, svr, "/api/unknown"))

	mf := getMetrics(t, exp)

	assert.True(t, mf["go_goroutines"].Metric[0].Gauge.GetValue() > 0)

	assert.Equal(t, 2, int(mf["cipher_requests_total"].Metric[0].Counter.GetValue()))
	assert.Equal(t, "encrypt", labelValue(mf["cipher_requests_total"].Metric[0], "op"))
	assert.Equal(t, 1, int(mf["cipher_errors_total"].Metric[0].Counter.GetValue()))
	assert.Equal(t, 15, int(mf["cipher_letters_total"].Metric[0].Counter.GetValue()))
	assert.Equal(t, 3, int(mf["cipher_passthrough_total"].Metric[0].Counter.GetValue()))
	assert.Equal(t, 2, int(mf["cipher_duration_seconds"].Metric[0].Histogram.GetSampleCount()))

	randomized := make(map[string]int)
	for _, m := range mf["keysheet_randomized_total"].Metric {
		randomized[labelValue(m, "seeded")] = int(m.Counter.GetValue())
	}
	assert.Equal(t, map[string]int{"true": 1, "false": 2}, randomized)

	requests := make(map[string]int)
	for _, m := range mf["api_requests_total"].Metric {
		requests[labelValue(m, "route")+" "+labelValue(m, "status")] = int(m.Counter.GetValue())
	}
	assert.Equal(t, map[string]int{
		"/api/encrypt 200":          2,
		"/api/encrypt 422":          1,
		"/api/encrypt 400":          1,
		"/api/keysheets/random 200": 3,
		"unmatched 404":             1,
	}, requests)
}

func TestExporter_NoCipherMetricsUntilUsed(t *testing.T) {
	var exp *exporter.Component

	app := fx.New(
		fx.Provide(testapp.NoLogging),
		fx.Provide(testapp.ProvideSettings),
		application.Module,
		fx.Supply(exporter.Config{
			HTTPListenAddress: "localhost:0",
		}),
		exporter.Module,
		fx.NopLogger,
		fx.Populate(&exp),
	)
	tu.MustNoErr(app.Start(context.TODO()))
	defer func() {
		tu.MustNoErr(app.Stop(context.TODO()))
	}()

	mf := getMetrics(t, exp)

	assert.Nil(t, mf["cipher_requests_total"])
	assert.Nil(t, mf["cipher_errors_total"])
	assert.Equal(t, 0, int(mf["cipher_letters_total"].Metric[0].Counter.GetValue()))
	assert.Equal(t, 0, int(mf["cipher_passthrough_total"].Metric[0].Counter.GetValue()))
}
