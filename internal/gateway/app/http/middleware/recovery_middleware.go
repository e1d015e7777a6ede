package middleware

import (
	"fmt"
	"runtime/debug"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"

	"toolbox/internal/gateway/app/dto"
	"toolbox/pkg/logger"
)

// Константы для логирования.
const (
	LogServerPanic        = "server panic"
	LogPanicResponseError = "failed to send error response after panic"

	ErrorInternal = "Internal Server Error"
)

// NewRecoveryMiddleware создает промежуточное ПО для восстановления после паники.
func NewRecoveryMiddleware() fiber.Handler {
	return func(ctx fiber.Ctx) (err error) {
		defer func() {
			r := recover()
			if r == nil {
				return
			}
			requestCtx := RequestContext(ctx)
			log := logger.Log(requestCtx)

			log.Error(requestCtx, LogServerPanic,
				zap.String("error", fmt.Sprintf("%v", r)),
				zap.String("stack", string(debug.Stack())))

			if sendErr := ctx.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: ErrorInternal}); sendErr != nil {
				log.Error(requestCtx, LogPanicResponseError, zap.Error(sendErr))
			}
			err = nil
		}()

		return ctx.Next()
	}
}
