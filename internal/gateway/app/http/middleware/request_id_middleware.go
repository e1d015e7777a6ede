// Package middleware содержит промежуточное ПО для HTTP обработчиков.
package middleware

import (
	"context"

	"github.com/gofiber/fiber/v3"

	"toolbox/pkg/logger"
)

const localsRequestID = "request_id"

// NewRequestIDMiddleware берет идентификатор запроса из X-Request-ID или
// генерирует новый и возвращает его в ответе.
func NewRequestIDMiddleware() fiber.Handler {
	return func(ctx fiber.Ctx) error {
		id := ctx.Get(logger.HeaderRequestID)
		if id == "" || len(id) > 128 {
			id = logger.GenerateRequestID()
		}
		ctx.Locals(localsRequestID, id)
		ctx.Set(logger.HeaderRequestID, id)
		return ctx.Next()
	}
}

// RequestID возвращает идентификатор текущего запроса.
func RequestID(ctx fiber.Ctx) string {
	id, _ := ctx.Locals(localsRequestID).(string)
	return id
}

// RequestContext возвращает контекст запроса с его идентификатором для
// передачи в сервисы.
func RequestContext(ctx fiber.Ctx) context.Context {
	return logger.NewRequestIDContext(ctx.Context(), RequestID(ctx))
}
