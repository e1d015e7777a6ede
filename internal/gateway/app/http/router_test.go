package http_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"toolbox/internal/gateway/adapters/cache"
	"toolbox/internal/gateway/app/dto"
	httpServer "toolbox/internal/gateway/app/http"
	"toolbox/internal/gateway/app/http/middleware"
	"toolbox/internal/gateway/app/http/tools"
	"toolbox/internal/gateway/app/services"
	"toolbox/internal/gateway/config"
	"toolbox/internal/gateway/metrics"
	"toolbox/pkg/cardgen"
	"toolbox/pkg/logger"
	"toolbox/pkg/passgen"
	"toolbox/pkg/random"
	"toolbox/pkg/rewrite"
	"toolbox/pkg/units"
)

func newTestApp(t *testing.T) (*fiber.App, *metrics.Collector) {
	t.Helper()

	collector := metrics.NewCollector("test")
	results := services.NewResultCache(cache.NewNoop(), time.Minute, collector)
	rnd := random.NewSeeded(42)

	svc := tools.Services{
		Conversion: services.NewConversionService(results, collector),
		Roman:      services.NewRomanService(results, collector),
		Generator:  services.NewGeneratorService(rnd, collector),
		Password:   services.NewPasswordService(passgen.NewGenerator(rnd), collector),
		Rewrite:    services.NewRewriteService(nil, nil, rewrite.New(nil, rnd), collector),
	}

	app := httpServer.NewApp(&config.HTTPConfig{ReadTimeout: time.Second, WriteTimeout: time.Second, BodyLimit: 1 << 20})
	httpServer.SetupRouter(app, svc, collector, &config.MetricsConfig{Enabled: true, Path: "/metrics"})
	return app, collector
}

func do(t *testing.T, app *fiber.App, method, path, body string) (int, http.Header, []byte) {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, resp.Header, data
}

func decode[T any](t *testing.T, data []byte) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(data, &out), string(data))
	return out
}

func TestHealth(t *testing.T) {
	app, _ := newTestApp(t)

	status, header, body := do(t, app, http.MethodGet, "/health", "")
	assert.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, "ok", decode[dto.HealthResponse](t, body).Status)
	assert.NotEmpty(t, header.Get(logger.HeaderRequestID))
}

func TestRequestIDEchoed(t *testing.T) {
	app, _ := newTestApp(t)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set(logger.HeaderRequestID, "client-id-1")
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, "client-id-1", resp.Header.Get(logger.HeaderRequestID))
}

func TestConvertRoutes(t *testing.T) {
	app, _ := newTestApp(t)

	tests := []struct {
		name       string
		body       string
		wantStatus int
		check      func(t *testing.T, body []byte)
	}{
		{
			name:       "hour to minute",
			body:       `{"value":"1","from":"hour","to":"minute","category":"time"}`,
			wantStatus: fiber.StatusOK,
			check: func(t *testing.T, body []byte) {
				resp := decode[dto.ConvertResponse](t, body)
				assert.InDelta(t, 60, resp.Value, 1e-12)
				assert.Equal(t, "60", resp.Formatted)
			},
		},
		{
			name:       "numeric value",
			body:       `{"value":1,"from":"hour","to":"minute","category":"time"}`,
			wantStatus: fiber.StatusOK,
			check: func(t *testing.T, body []byte) {
				assert.InDelta(t, 60, decode[dto.ConvertResponse](t, body).Value, 1e-12)
			},
		},
		{
			name:       "negative numeric value",
			body:       `{"value":-40,"from":"C","to":"F","category":"temperature"}`,
			wantStatus: fiber.StatusOK,
			check: func(t *testing.T, body []byte) {
				assert.Equal(t, "-40", decode[dto.ConvertResponse](t, body).Formatted)
			},
		},
		{
			name:       "boolean value",
			body:       `{"value":true,"from":"m","to":"km","category":"length"}`,
			wantStatus: fiber.StatusBadRequest,
		},
		{
			name:       "not a number",
			body:       `{"value":"abc","from":"m","to":"km","category":"length"}`,
			wantStatus: fiber.StatusUnprocessableEntity,
			check: func(t *testing.T, body []byte) {
				resp := decode[dto.ErrorResponse](t, body)
				assert.Equal(t, units.InvalidInput, resp.Formatted)
				assert.NotEmpty(t, resp.Error)
			},
		},
		{
			name:       "unknown category",
			body:       `{"value":"1","from":"m","to":"km","category":"speed"}`,
			wantStatus: fiber.StatusBadRequest,
		},
		{
			name:       "missing value",
			body:       `{"from":"m","to":"km","category":"length"}`,
			wantStatus: fiber.StatusBadRequest,
			check: func(t *testing.T, body []byte) {
				assert.Contains(t, decode[dto.ErrorResponse](t, body).Error, "value")
			},
		},
		{
			name:       "malformed json",
			body:       `{"value":`,
			wantStatus: fiber.StatusBadRequest,
			check: func(t *testing.T, body []byte) {
				assert.Equal(t, tools.ErrorInvalidBody, decode[dto.ErrorResponse](t, body).Error)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, _, body := do(t, app, http.MethodPost, "/api/v1/convert", tt.body)
			assert.Equal(t, tt.wantStatus, status, string(body))
			if tt.check != nil {
				tt.check(t, body)
			}
		})
	}
}

func TestUnitsRoute(t *testing.T) {
	app, _ := newTestApp(t)

	status, _, body := do(t, app, http.MethodGet, "/api/v1/units", "")
	require.Equal(t, fiber.StatusOK, status)

	resp := decode[dto.UnitsResponse](t, body)
	require.Len(t, resp.Categories, len(units.Categories()))
	assert.Equal(t, units.Length, resp.Categories[0].Category)
	assert.NotEmpty(t, resp.Categories[0].Units)
}

func TestRomanRoutes(t *testing.T) {
	app, _ := newTestApp(t)

	status, _, body := do(t, app, http.MethodPost, "/api/v1/roman/encode", `{"number":2024}`)
	require.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, "MMXXIV", decode[dto.RomanNumeralResponse](t, body).Numeral)

	status, _, body = do(t, app, http.MethodPost, "/api/v1/roman/decode", `{"numeral":"mcmxciv"}`)
	require.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, 1994, decode[dto.RomanNumeralResponse](t, body).Number)

	status, _, _ = do(t, app, http.MethodPost, "/api/v1/roman/encode", `{"number":0}`)
	assert.Equal(t, fiber.StatusUnprocessableEntity, status)

	status, _, _ = do(t, app, http.MethodPost, "/api/v1/roman/encode", `{}`)
	assert.Equal(t, fiber.StatusBadRequest, status)

	status, _, _ = do(t, app, http.MethodPost, "/api/v1/roman/decode", `{"numeral":"IIII"}`)
	assert.Equal(t, fiber.StatusUnprocessableEntity, status)

	status, _, body = do(t, app, http.MethodPost, "/api/v1/roman/date/encode", `{"day":14,"month":10,"year":2026}`)
	require.Equal(t, fiber.StatusOK, status)
	date := decode[dto.RomanDateResponse](t, body)
	assert.Equal(t, "XIV.X.MMXXVI", date.Date)

	status, _, body = do(t, app, http.MethodPost, "/api/v1/roman/date/decode", `{"date":"XIV.X.MMXXVI"}`)
	require.Equal(t, fiber.StatusOK, status)
	date = decode[dto.RomanDateResponse](t, body)
	assert.Equal(t, 14, date.Day)
	assert.Equal(t, 10, date.Month)
	assert.Equal(t, 2026, date.Year)
}

func TestGeneratorRoutes(t *testing.T) {
	app, _ := newTestApp(t)

	status, _, body := do(t, app, http.MethodPost, "/api/v1/cards", `{"brand":"mastercard","count":3}`)
	require.Equal(t, fiber.StatusOK, status)
	cards := decode[dto.CardsResponse](t, body)
	require.Len(t, cards.Cards, 3)
	assert.Equal(t, cardgen.Notice, cards.Notice)
	for _, card := range cards.Cards {
		assert.True(t, cardgen.Valid(card.Number), card.Number)
	}

	status, _, body = do(t, app, http.MethodPost, "/api/v1/identities", "")
	require.Equal(t, fiber.StatusOK, status)
	assert.Len(t, decode[dto.IdentitiesResponse](t, body).Identities, 1)

	status, _, _ = do(t, app, http.MethodPost, "/api/v1/cards", `{"count":51}`)
	assert.Equal(t, fiber.StatusBadRequest, status)
}

func TestPasswordRoutes(t *testing.T) {
	app, _ := newTestApp(t)

	status, _, body := do(t, app, http.MethodPost, "/api/v1/passwords/assess", `{"password":"password123"}`)
	require.Equal(t, fiber.StatusOK, status)
	var assessment struct {
		Score int    `json:"score"`
		Label string `json:"label"`
	}
	require.NoError(t, json.Unmarshal(body, &assessment))
	assert.Equal(t, 0, assessment.Score)
	assert.Equal(t, "Very Weak", assessment.Label)

	status, _, body = do(t, app, http.MethodPost, "/api/v1/passwords/generate", `{"length":20,"symbols":false}`)
	require.Equal(t, fiber.StatusOK, status)
	generated := decode[dto.GeneratePasswordResponse](t, body)
	assert.Equal(t, 20, generated.Length)
	assert.Len(t, generated.Password, 20)

	status, _, body = do(t, app, http.MethodPost, "/api/v1/passwords/generate",
		`{"uppercase":false,"lowercase":false,"numbers":false,"symbols":false}`)
	assert.Equal(t, fiber.StatusUnprocessableEntity, status)
	assert.Contains(t, decode[dto.ErrorResponse](t, body).Error, passgen.ErrNoCharacterClass.Error())
}

func TestRewriteRoute(t *testing.T) {
	app, collector := newTestApp(t)

	status, _, body := do(t, app, http.MethodPost, "/api/v1/rewrite", `{"text":"The cat sat on the mat.","mode":"simple"}`)
	require.Equal(t, fiber.StatusOK, status)
	resp := decode[dto.RewriteResponse](t, body)
	assert.Equal(t, dto.SourceLocal, resp.Source)
	assert.Equal(t, "simple", resp.Mode)
	assert.NotEmpty(t, resp.Text)

	assert.InDelta(t, 1, testutil.ToFloat64(collector.RewriteFallbacks), 0)

	status, _, _ = do(t, app, http.MethodPost, "/api/v1/rewrite", `{"text":""}`)
	assert.Equal(t, fiber.StatusBadRequest, status)

	status, _, _ = do(t, app, http.MethodPost, "/api/v1/rewrite", `{"text":"hi","mode":"pirate"}`)
	assert.Equal(t, fiber.StatusBadRequest, status)
}

func TestRouteNotFound(t *testing.T) {
	app, _ := newTestApp(t)

	status, _, body := do(t, app, http.MethodGet, "/api/v1/unknown", "")
	assert.Equal(t, fiber.StatusNotFound, status)
	assert.Equal(t, httpServer.ErrorRouteNotFound, decode[dto.ErrorResponse](t, body).Error)
}

func TestMetricsEndpoint(t *testing.T) {
	app, _ := newTestApp(t)

	status, _, _ := do(t, app, http.MethodGet, "/health", "")
	require.Equal(t, fiber.StatusOK, status)

	status, _, body := do(t, app, http.MethodGet, "/metrics", "")
	require.Equal(t, fiber.StatusOK, status)
	assert.Contains(t, string(body), `test_http_requests_total{method="GET",route="/health",status="200"} 1`)
}

func TestMetricsDisabled(t *testing.T) {
	app := fiber.New()
	httpServer.SetupRouter(app, tools.Services{}, nil, &config.MetricsConfig{Enabled: true, Path: "/metrics"})

	status, _, _ := do(t, app, http.MethodGet, "/metrics", "")
	assert.Equal(t, fiber.StatusNotFound, status)
}

type panickingConversion struct{}

func (panickingConversion) Units(context.Context) *dto.UnitsResponse {
	panic("units table is broken")
}

func (panickingConversion) Convert(context.Context, *dto.ConvertRequest) (*dto.ConvertResponse, error) {
	panic("converter is broken")
}

func TestRecoveryMiddleware(t *testing.T) {
	collector := metrics.NewCollector("test")
	app := fiber.New()
	httpServer.SetupRouter(app, tools.Services{Conversion: panickingConversion{}}, collector, nil)

	status, header, body := do(t, app, http.MethodGet, "/api/v1/units", "")
	assert.Equal(t, fiber.StatusInternalServerError, status)
	assert.Equal(t, middleware.ErrorInternal, decode[dto.ErrorResponse](t, body).Error)
	assert.NotEmpty(t, header.Get(logger.HeaderRequestID))

	assert.InDelta(t, 1, testutil.ToFloat64(
		collector.HTTPRequests.WithLabelValues(http.MethodGet, "/api/v1/units", "500")), 0)
}
