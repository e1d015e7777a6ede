// Package services определяет интерфейсы сервисов Gateway.
package services

import (
	"context"

	"toolbox/internal/gateway/app/dto"
	"toolbox/pkg/strength"
)

// ConversionService конвертирует значения между единицами измерения.
type ConversionService interface {
	Units(ctx context.Context) *dto.UnitsResponse

	Convert(ctx context.Context, req *dto.ConvertRequest) (*dto.ConvertResponse, error)
}

// RomanService работает с римскими числами и датами.
type RomanService interface {
	Encode(ctx context.Context, number int) (*dto.RomanNumeralResponse, error)

	Decode(ctx context.Context, numeral string) (*dto.RomanNumeralResponse, error)

	EncodeDate(ctx context.Context, day, month, year int) (*dto.RomanDateResponse, error)

	DecodeDate(ctx context.Context, date string) (*dto.RomanDateResponse, error)
}

// GeneratorService генерирует тестовые данные.
type GeneratorService interface {
	Cards(ctx context.Context, req *dto.CardsRequest) (*dto.CardsResponse, error)

	Identities(ctx context.Context, req *dto.IdentitiesRequest) (*dto.IdentitiesResponse, error)
}

// PasswordService оценивает и генерирует пароли.
type PasswordService interface {
	Assess(ctx context.Context, password string) strength.Assessment

	Generate(ctx context.Context, req *dto.GeneratePasswordRequest) (*dto.GeneratePasswordResponse, error)
}

// RewriteService перерабатывает текст.
type RewriteService interface {
	Rewrite(ctx context.Context, req *dto.RewriteRequest) (*dto.RewriteResponse, error)
}
