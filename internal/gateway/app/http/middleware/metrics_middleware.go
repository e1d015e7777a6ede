package middleware

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v3"

	"toolbox/internal/gateway/metrics"
)

// routeUnmatched - метка маршрута для запросов без совпавшего маршрута.
const routeUnmatched = "unmatched"

// NewMetricsMiddleware учитывает количество и длительность HTTP запросов.
func NewMetricsMiddleware(collector *metrics.Collector) fiber.Handler {
	return func(ctx fiber.Ctx) error {
		start := time.Now()
		err := ctx.Next()

		status := ctx.Response().StatusCode()
		var fiberErr *fiber.Error
		if errors.As(err, &fiberErr) {
			status = fiberErr.Code
		}

		route := ctx.Route().Path
		if status == fiber.StatusNotFound && route == "/" {
			route = routeUnmatched
		}
		collector.ObserveHTTP(ctx.Method(), route, status, time.Since(start))
		return err
	}
}
