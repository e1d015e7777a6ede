package cache

import (
	"context"
	"time"

	"toolbox/internal/gateway/ports/cache"
)

// Noop - кэш, который ничего не хранит. Используется, когда Redis выключен.
type Noop struct{}

// NewNoop создает пустой кэш.
func NewNoop() Noop { return Noop{} }

func (Noop) Get(context.Context, string) (string, error) { return "", nil }

func (Noop) Set(context.Context, string, string, time.Duration) error { return nil }

func (Noop) Delete(context.Context, string) error { return nil }

func (Noop) Close() error { return nil }

var _ cache.Cache = Noop{}
