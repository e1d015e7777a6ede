package services

import (
	"context"

	"go.uber.org/zap"

	"toolbox/internal/gateway/app/dto"
	"toolbox/internal/gateway/metrics"
	"toolbox/internal/gateway/ports/services"
	"toolbox/pkg/cardgen"
	"toolbox/pkg/identity"
	"toolbox/pkg/logger"
	"toolbox/pkg/random"
)

// Константы для логирования.
const (
	LogServiceCards      = "generator service: cards"
	LogServiceIdentities = "generator service: identities"

	toolCards      = "cards"
	toolIdentities = "identities"
)

// GeneratorServiceImpl реализует интерфейс GeneratorService.
type GeneratorServiceImpl struct {
	cards      *cardgen.Generator
	identities *identity.Generator
	metrics    *metrics.Collector
}

// NewGeneratorService создает сервис генерации на источнике rnd.
func NewGeneratorService(rnd random.Source, m *metrics.Collector) services.GeneratorService {
	return &GeneratorServiceImpl{
		cards:      cardgen.NewGenerator(rnd),
		identities: identity.NewGenerator(rnd),
		metrics:    m,
	}
}

// Cards генерирует тестовые номера карт.
func (s *GeneratorServiceImpl) Cards(ctx context.Context, req *dto.CardsRequest) (*dto.CardsResponse, error) {
	brand := cardgen.ParseBrand(req.Brand)
	count := max(req.Count, 1)
	logger.Log(ctx).Debug(ctx, LogServiceCards, zap.String("brand", string(brand)), zap.Int("count", count))

	cards, err := s.cards.GenerateBatch(brand, count)
	if err != nil {
		return observe[*dto.CardsResponse](s.metrics, toolCards, nil, err)
	}
	return observe(s.metrics, toolCards, &dto.CardsResponse{Cards: cards, Notice: cardgen.Notice}, nil)
}

// Identities генерирует вымышленные личности.
func (s *GeneratorServiceImpl) Identities(ctx context.Context, req *dto.IdentitiesRequest) (*dto.IdentitiesResponse, error) {
	gender := identity.ParseGender(req.Gender)
	count := max(req.Count, 1)
	logger.Log(ctx).Debug(ctx, LogServiceIdentities, zap.String("gender", string(gender)), zap.Int("count", count))

	people, err := s.identities.GenerateBatch(gender, count)
	if err != nil {
		return observe[*dto.IdentitiesResponse](s.metrics, toolIdentities, nil, err)
	}
	return observe(s.metrics, toolIdentities, &dto.IdentitiesResponse{Identities: people}, nil)
}
