// Package tools содержит HTTP обработчики инструментов.
package tools

import (
	"context"
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"

	"toolbox/internal/gateway/app/dto"
	"toolbox/internal/gateway/app/http/middleware"
	"toolbox/internal/gateway/app/services"
	portServices "toolbox/internal/gateway/ports/services"
	"toolbox/pkg/logger"
	"toolbox/pkg/units"
)

// Константы для логирования.
const (
	LogInvalidRequest = "invalid request"
	LogInvalidInput   = "tool rejected input"
	LogServiceFailed  = "failed to serve request"

	ErrorInvalidBody = "invalid request body"
	ErrorInternal    = "internal server error"

	StatusOK = "ok"
)

// Services - зависимости обработчиков.
type Services struct {
	Conversion portServices.ConversionService
	Roman      portServices.RomanService
	Generator  portServices.GeneratorService
	Password   portServices.PasswordService
	Rewrite    portServices.RewriteService
}

// Handler содержит HTTP обработчики инструментов.
type Handler struct {
	svc Services
}

// NewHandler создает новый экземпляр обработчика.
func NewHandler(svc Services) *Handler {
	return &Handler{svc: svc}
}

// Health сообщает, что сервис работает.
func (h *Handler) Health(ctx fiber.Ctx) error {
	return send(ctx, fiber.StatusOK, dto.HealthResponse{Status: StatusOK})
}

// Units возвращает таблицы единиц.
func (h *Handler) Units(ctx fiber.Ctx) error {
	return send(ctx, fiber.StatusOK, h.svc.Conversion.Units(middleware.RequestContext(ctx)))
}

// Convert конвертирует значение.
func (h *Handler) Convert(ctx fiber.Ctx) error {
	requestCtx := middleware.RequestContext(ctx)

	var req dto.ConvertRequest
	if ok, err := bind(ctx, requestCtx, &req); !ok {
		return err
	}

	resp, err := h.svc.Conversion.Convert(requestCtx, &req)
	if err != nil {
		return fail(ctx, requestCtx, err, units.InvalidInput)
	}
	return send(ctx, fiber.StatusOK, resp)
}

// RomanEncode записывает число римскими цифрами.
func (h *Handler) RomanEncode(ctx fiber.Ctx) error {
	requestCtx := middleware.RequestContext(ctx)

	var req dto.RomanEncodeRequest
	if ok, err := bind(ctx, requestCtx, &req); !ok {
		return err
	}

	resp, err := h.svc.Roman.Encode(requestCtx, *req.Number)
	if err != nil {
		return fail(ctx, requestCtx, err, "")
	}
	return send(ctx, fiber.StatusOK, resp)
}

// RomanDecode разбирает римское число.
func (h *Handler) RomanDecode(ctx fiber.Ctx) error {
	requestCtx := middleware.RequestContext(ctx)

	var req dto.RomanDecodeRequest
	if ok, err := bind(ctx, requestCtx, &req); !ok {
		return err
	}

	resp, err := h.svc.Roman.Decode(requestCtx, req.Numeral)
	if err != nil {
		return fail(ctx, requestCtx, err, "")
	}
	return send(ctx, fiber.StatusOK, resp)
}

// RomanDateEncode записывает дату римскими цифрами.
func (h *Handler) RomanDateEncode(ctx fiber.Ctx) error {
	requestCtx := middleware.RequestContext(ctx)

	var req dto.RomanDateEncodeRequest
	if ok, err := bind(ctx, requestCtx, &req); !ok {
		return err
	}

	resp, err := h.svc.Roman.EncodeDate(requestCtx, *req.Day, *req.Month, *req.Year)
	if err != nil {
		return fail(ctx, requestCtx, err, "")
	}
	return send(ctx, fiber.StatusOK, resp)
}

// RomanDateDecode разбирает римскую дату.
func (h *Handler) RomanDateDecode(ctx fiber.Ctx) error {
	requestCtx := middleware.RequestContext(ctx)

	var req dto.RomanDateDecodeRequest
	if ok, err := bind(ctx, requestCtx, &req); !ok {
		return err
	}

	resp, err := h.svc.Roman.DecodeDate(requestCtx, req.Date)
	if err != nil {
		return fail(ctx, requestCtx, err, "")
	}
	return send(ctx, fiber.StatusOK, resp)
}

// Cards генерирует тестовые номера карт.
func (h *Handler) Cards(ctx fiber.Ctx) error {
	requestCtx := middleware.RequestContext(ctx)

	var req dto.CardsRequest
	if ok, err := bindOptional(ctx, requestCtx, &req); !ok {
		return err
	}

	resp, err := h.svc.Generator.Cards(requestCtx, &req)
	if err != nil {
		return fail(ctx, requestCtx, err, "")
	}
	return send(ctx, fiber.StatusOK, resp)
}

// Identities генерирует вымышленные личности.
func (h *Handler) Identities(ctx fiber.Ctx) error {
	requestCtx := middleware.RequestContext(ctx)

	var req dto.IdentitiesRequest
	if ok, err := bindOptional(ctx, requestCtx, &req); !ok {
		return err
	}

	resp, err := h.svc.Generator.Identities(requestCtx, &req)
	if err != nil {
		return fail(ctx, requestCtx, err, "")
	}
	return send(ctx, fiber.StatusOK, resp)
}

// AssessPassword оценивает надежность пароля.
func (h *Handler) AssessPassword(ctx fiber.Ctx) error {
	requestCtx := middleware.RequestContext(ctx)

	var req dto.AssessPasswordRequest
	if ok, err := bindOptional(ctx, requestCtx, &req); !ok {
		return err
	}

	return send(ctx, fiber.StatusOK, h.svc.Password.Assess(requestCtx, req.Password))
}

// GeneratePassword генерирует пароль.
func (h *Handler) GeneratePassword(ctx fiber.Ctx) error {
	requestCtx := middleware.RequestContext(ctx)

	var req dto.GeneratePasswordRequest
	if ok, err := bindOptional(ctx, requestCtx, &req); !ok {
		return err
	}

	resp, err := h.svc.Password.Generate(requestCtx, &req)
	if err != nil {
		return fail(ctx, requestCtx, err, "")
	}
	return send(ctx, fiber.StatusOK, resp)
}

// Rewrite перерабатывает текст.
func (h *Handler) Rewrite(ctx fiber.Ctx) error {
	requestCtx := middleware.RequestContext(ctx)

	var req dto.RewriteRequest
	if ok, err := bind(ctx, requestCtx, &req); !ok {
		return err
	}

	resp, err := h.svc.Rewrite.Rewrite(requestCtx, &req)
	if err != nil {
		return fail(ctx, requestCtx, err, "")
	}
	return send(ctx, fiber.StatusOK, resp)
}

// bind разбирает JSON тело и проверяет его. При ошибке ответ уже отправлен,
// а второе значение содержит ошибку отправки.
func bind(ctx fiber.Ctx, requestCtx context.Context, req any) (bool, error) {
	if err := ctx.Bind().JSON(req); err != nil {
		logger.Log(requestCtx).Info(requestCtx, LogInvalidRequest, zap.Error(err))
		return false, send(ctx, fiber.StatusBadRequest, dto.ErrorResponse{Error: ErrorInvalidBody})
	}
	return validate(ctx, requestCtx, req)
}

// bindOptional допускает пустое тело для запросов, у которых все поля
// имеют значения по умолчанию.
func bindOptional(ctx fiber.Ctx, requestCtx context.Context, req any) (bool, error) {
	if len(ctx.Body()) == 0 {
		return validate(ctx, requestCtx, req)
	}
	return bind(ctx, requestCtx, req)
}

func validate(ctx fiber.Ctx, requestCtx context.Context, req any) (bool, error) {
	if err := dto.Validate(req); err != nil {
		logger.Log(requestCtx).Info(requestCtx, LogInvalidRequest, zap.Error(err))
		return false, send(ctx, fiber.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
	}
	return true, nil
}

// fail отображает ошибку сервиса в HTTP ответ.
func fail(ctx fiber.Ctx, requestCtx context.Context, err error, formatted string) error {
	log := logger.Log(requestCtx)

	if errors.Is(err, services.ErrInvalidInput) {
		log.Info(requestCtx, LogInvalidInput, zap.Error(err))
		return send(ctx, fiber.StatusUnprocessableEntity, dto.ErrorResponse{Error: err.Error(), Formatted: formatted})
	}

	log.Error(requestCtx, LogServiceFailed, zap.Error(err))
	return send(ctx, fiber.StatusInternalServerError, dto.ErrorResponse{Error: ErrorInternal})
}

func send(ctx fiber.Ctx, status int, body any) error {
	if err := ctx.Status(status).JSON(body); err != nil {
		return fmt.Errorf("sending response: %w", err)
	}
	return nil
}
