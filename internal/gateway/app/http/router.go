// Package http содержит компоненты для HTTP сервера.
package http

import (
	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/adaptor"

	"toolbox/internal/gateway/app/dto"
	"toolbox/internal/gateway/app/http/middleware"
	"toolbox/internal/gateway/app/http/tools"
	"toolbox/internal/gateway/config"
	"toolbox/internal/gateway/metrics"
)

// ErrorRouteNotFound - текст ответа для несуществующих маршрутов.
const ErrorRouteNotFound = "Route not found"

// NewApp создает fiber приложение с настройками HTTP сервера.
func NewApp(cfg *config.HTTPConfig) *fiber.App {
	return fiber.New(fiber.Config{
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		BodyLimit:    cfg.BodyLimit,
	})
}

// SetupRouter настраивает маршрутизацию для HTTP сервера.
// collector может быть nil, тогда метрики не собираются и не экспортируются.
func SetupRouter(app *fiber.App, svc tools.Services, collector *metrics.Collector, metricsCfg *config.MetricsConfig) {
	handler := tools.NewHandler(svc)

	// Middleware для всех запросов.
	// Метрики снаружи восстановления, чтобы учитывались и ответы после паники.
	app.Use(middleware.NewRequestIDMiddleware())
	app.Use(middleware.NewLoggerMiddleware())
	if collector != nil {
		app.Use(middleware.NewMetricsMiddleware(collector))
	}
	app.Use(middleware.NewRecoveryMiddleware())

	app.Get("/health", handler.Health)

	if collector != nil && metricsCfg != nil && metricsCfg.Enabled {
		app.Get(metricsCfg.Path, adaptor.HTTPHandler(collector.Handler()))
	}

	// API версии 1.
	apiV1 := app.Group("/api/v1")

	apiV1.Get("/units", handler.Units)
	apiV1.Post("/convert", handler.Convert)

	romanRoutes := apiV1.Group("/roman")
	romanRoutes.Post("/encode", handler.RomanEncode)
	romanRoutes.Post("/decode", handler.RomanDecode)
	romanRoutes.Post("/date/encode", handler.RomanDateEncode)
	romanRoutes.Post("/date/decode", handler.RomanDateDecode)

	apiV1.Post("/cards", handler.Cards)
	apiV1.Post("/identities", handler.Identities)

	passwordRoutes := apiV1.Group("/passwords")
	passwordRoutes.Post("/assess", handler.AssessPassword)
	passwordRoutes.Post("/generate", handler.GeneratePassword)

	apiV1.Post("/rewrite", handler.Rewrite)

	// Обработчик для несуществующих маршрутов.
	app.Use(func(c fiber.Ctx) error {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: ErrorRouteNotFound})
	})
}
