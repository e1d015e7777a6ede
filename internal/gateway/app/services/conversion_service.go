package services

import (
	"context"
	"strconv"

	"go.uber.org/zap"

	"toolbox/internal/gateway/app/dto"
	"toolbox/internal/gateway/metrics"
	"toolbox/internal/gateway/ports/services"
	"toolbox/pkg/logger"
	"toolbox/pkg/units"
)

// Константы для логирования.
const (
	LogServiceConvert = "conversion service: convert"
	ErrorConvert      = "conversion failed"

	toolConvert = "convert"
)

// ConversionServiceImpl реализует интерфейс ConversionService.
type ConversionServiceImpl struct {
	results *ResultCache
	metrics *metrics.Collector
}

// NewConversionService создает сервис конвертации.
func NewConversionService(results *ResultCache, m *metrics.Collector) services.ConversionService {
	return &ConversionServiceImpl{results: results, metrics: m}
}

// Units возвращает таблицы единиц всех категорий.
func (s *ConversionServiceImpl) Units(_ context.Context) *dto.UnitsResponse {
	categories := units.Categories()
	resp := &dto.UnitsResponse{Categories: make([]dto.CategoryUnits, 0, len(categories))}
	for _, c := range categories {
		table, err := units.Units(c)
		if err != nil {
			continue
		}
		resp.Categories = append(resp.Categories, dto.CategoryUnits{Category: c, Units: table})
	}
	return resp
}

// Convert разбирает запрос и конвертирует значение.
func (s *ConversionServiceImpl) Convert(ctx context.Context, req *dto.ConvertRequest) (*dto.ConvertResponse, error) {
	log := logger.Log(ctx).With(
		zap.String("category", req.Category),
		zap.String("from", req.From),
		zap.String("to", req.To))
	log.Debug(ctx, LogServiceConvert)

	category, err := units.ParseCategory(req.Category)
	if err != nil {
		s.metrics.ToolOperation(toolConvert, metrics.OutcomeInvalid)
		return nil, invalidInput(err)
	}
	value, err := units.ParseValue(string(req.Value))
	if err != nil {
		s.metrics.ToolOperation(toolConvert, metrics.OutcomeInvalid)
		return nil, invalidInput(err)
	}

	key := CacheKey(ConvertCacheKeyPrefix, string(category), req.From, req.To, strconv.FormatFloat(value, 'g', -1, 64))
	resp, err := cached(ctx, s.results, key, func() (*dto.ConvertResponse, error) {
		res, err := units.Convert(value, req.From, req.To, category)
		if err != nil {
			return nil, err
		}
		return &dto.ConvertResponse{
			Value:     res.Value,
			Formatted: res.FormattedValue,
			Formula:   res.Formula,
			From:      req.From,
			To:        req.To,
			Category:  string(category),
		}, nil
	})
	if err != nil {
		log.Info(ctx, ErrorConvert, zap.Error(err))
		s.metrics.ToolOperation(toolConvert, metrics.OutcomeInvalid)
		return nil, invalidInput(err)
	}

	s.metrics.ToolOperation(toolConvert, metrics.OutcomeSuccess)
	return resp, nil
}
