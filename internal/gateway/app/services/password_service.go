package services

import (
	"context"

	"toolbox/internal/gateway/app/dto"
	"toolbox/internal/gateway/metrics"
	"toolbox/internal/gateway/ports/services"
	"toolbox/pkg/passgen"
	"toolbox/pkg/strength"
)

const (
	toolPasswordAssess   = "password_assess"
	toolPasswordGenerate = "password_generate"
)

// PasswordServiceImpl реализует интерфейс PasswordService. Пароли не
// логируются и не кэшируются.
type PasswordServiceImpl struct {
	generator *passgen.Generator
	metrics   *metrics.Collector
}

// NewPasswordService создает сервис паролей.
func NewPasswordService(generator *passgen.Generator, m *metrics.Collector) services.PasswordService {
	return &PasswordServiceImpl{generator: generator, metrics: m}
}

// Assess оценивает надежность пароля.
func (s *PasswordServiceImpl) Assess(_ context.Context, password string) strength.Assessment {
	s.metrics.ToolOperation(toolPasswordAssess, metrics.OutcomeSuccess)
	return strength.Assess(password)
}

// Generate генерирует пароль по параметрам запроса.
func (s *PasswordServiceImpl) Generate(_ context.Context, req *dto.GeneratePasswordRequest) (*dto.GeneratePasswordResponse, error) {
	password, err := s.generator.Generate(req.Options())
	if err != nil {
		return observe[*dto.GeneratePasswordResponse](s.metrics, toolPasswordGenerate, nil, err)
	}
	return observe(s.metrics, toolPasswordGenerate, &dto.GeneratePasswordResponse{Password: password, Length: len(password)}, nil)
}
