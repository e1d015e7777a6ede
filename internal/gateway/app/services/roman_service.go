package services

import (
	"context"
	"strconv"
	"strings"

	"toolbox/internal/gateway/app/dto"
	"toolbox/internal/gateway/metrics"
	"toolbox/internal/gateway/ports/services"
	"toolbox/pkg/roman"
)

const toolRoman = "roman"

// Операции в ключах кэша.
const (
	romanOpEncode     = "encode"
	romanOpDecode     = "decode"
	romanOpEncodeDate = "encode-date"
	romanOpDecodeDate = "decode-date"
)

// RomanServiceImpl реализует интерфейс RomanService.
type RomanServiceImpl struct {
	results *ResultCache
	metrics *metrics.Collector
}

// NewRomanService создает сервис римских чисел.
func NewRomanService(results *ResultCache, m *metrics.Collector) services.RomanService {
	return &RomanServiceImpl{results: results, metrics: m}
}

// Encode записывает число римскими цифрами.
func (s *RomanServiceImpl) Encode(ctx context.Context, number int) (*dto.RomanNumeralResponse, error) {
	key := CacheKey(RomanCacheKeyPrefix, romanOpEncode, strconv.Itoa(number))
	resp, err := cached(ctx, s.results, key, func() (*dto.RomanNumeralResponse, error) {
		numeral, err := roman.ToRoman(number)
		if err != nil {
			return nil, err
		}
		return &dto.RomanNumeralResponse{Number: number, Numeral: numeral}, nil
	})
	return observe(s.metrics, toolRoman, resp, err)
}

// Decode разбирает римское число.
func (s *RomanServiceImpl) Decode(ctx context.Context, numeral string) (*dto.RomanNumeralResponse, error) {
	normalized := strings.ToUpper(strings.TrimSpace(numeral))
	key := CacheKey(RomanCacheKeyPrefix, romanOpDecode, normalized)
	resp, err := cached(ctx, s.results, key, func() (*dto.RomanNumeralResponse, error) {
		number, err := roman.FromRoman(normalized)
		if err != nil {
			return nil, err
		}
		return &dto.RomanNumeralResponse{Number: number, Numeral: normalized}, nil
	})
	return observe(s.metrics, toolRoman, resp, err)
}

// EncodeDate записывает дату римскими цифрами.
func (s *RomanServiceImpl) EncodeDate(ctx context.Context, day, month, year int) (*dto.RomanDateResponse, error) {
	key := CacheKey(RomanCacheKeyPrefix, romanOpEncodeDate, strconv.Itoa(day), strconv.Itoa(month), strconv.Itoa(year))
	resp, err := cached(ctx, s.results, key, func() (*dto.RomanDateResponse, error) {
		date, err := roman.EncodeDate(day, month, year)
		if err != nil {
			return nil, err
		}
		return &dto.RomanDateResponse{Date: date, Day: day, Month: month, Year: year}, nil
	})
	return observe(s.metrics, toolRoman, resp, err)
}

// DecodeDate разбирает дату вида XXX.IV.MMXXIII.
func (s *RomanServiceImpl) DecodeDate(ctx context.Context, date string) (*dto.RomanDateResponse, error) {
	normalized := strings.ToUpper(strings.TrimSpace(date))
	key := CacheKey(RomanCacheKeyPrefix, romanOpDecodeDate, normalized)
	resp, err := cached(ctx, s.results, key, func() (*dto.RomanDateResponse, error) {
		d, err := roman.DecodeDate(normalized)
		if err != nil {
			return nil, err
		}
		return &dto.RomanDateResponse{Date: normalized, Day: d.Day, Month: d.Month, Year: d.Year}, nil
	})
	return observe(s.metrics, toolRoman, resp, err)
}
