package services

import (
	"context"

	"go.uber.org/zap"

	"toolbox/internal/gateway/app/dto"
	"toolbox/internal/gateway/metrics"
	"toolbox/internal/gateway/ports/rewriter"
	"toolbox/internal/gateway/ports/services"
	"toolbox/internal/gateway/resilience"
	"toolbox/pkg/logger"
	"toolbox/pkg/rewrite"
)

// Константы для логирования.
const (
	LogServiceRewrite   = "rewrite service: rewrite"
	LogRewriteFallback  = "remote rewrite failed, using local transformer"
	LogRewriteLocalOnly = "remote rewriter is not configured, using local transformer"

	operationRemoteRewrite = "remote_rewrite"
	toolRewrite            = "rewrite"
)

// RewriteServiceImpl реализует интерфейс RewriteService. Удаленный сервис
// вызывается под политикой отказоустойчивости, при любой ошибке отвечает
// локальный преобразователь.
type RewriteServiceImpl struct {
	remote  rewriter.Client
	policy  *resilience.Policy
	local   *rewrite.Transformer
	metrics *metrics.Collector
}

// NewRewriteService создает сервис переработки текста. remote может быть nil.
func NewRewriteService(
	remote rewriter.Client,
	policy *resilience.Policy,
	local *rewrite.Transformer,
	m *metrics.Collector,
) services.RewriteService {
	return &RewriteServiceImpl{remote: remote, policy: policy, local: local, metrics: m}
}

// Rewrite перерабатывает текст.
func (s *RewriteServiceImpl) Rewrite(ctx context.Context, req *dto.RewriteRequest) (*dto.RewriteResponse, error) {
	mode := rewrite.ParseMode(req.Mode)
	log := logger.Log(ctx).With(zap.String("mode", string(mode)), zap.Int("length", len(req.Text)))
	log.Debug(ctx, LogServiceRewrite)

	if s.remote != nil && s.policy != nil {
		text, err := resilience.Execute(ctx, s.policy, operationRemoteRewrite, func(ctx context.Context) (string, error) {
			return s.remote.Rewrite(ctx, req.Text, string(mode))
		})
		if err == nil {
			s.metrics.ToolOperation(toolRewrite, metrics.OutcomeSuccess)
			return &dto.RewriteResponse{Text: text, Mode: string(mode), Source: dto.SourceRemote}, nil
		}
		log.Warn(ctx, LogRewriteFallback, zap.Error(err))
	} else {
		log.Debug(ctx, LogRewriteLocalOnly)
	}

	s.metrics.RewriteFallback()
	s.metrics.ToolOperation(toolRewrite, metrics.OutcomeSuccess)
	return &dto.RewriteResponse{
		Text:   s.local.Transform(req.Text, mode),
		Mode:   string(mode),
		Source: dto.SourceLocal,
	}, nil
}
