// Package shutdown реализует корректное завершение приложения по сигналам
// SIGINT и SIGTERM.
package shutdown

import (
	"context"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"go.uber.org/zap"

	"toolbox/pkg/logger"
)

const (
	logShutdownStarted = "shutdown signal received"
	logHookFailed      = "shutdown hook failed"
	logTimeoutExceeded = "shutdown timeout exceeded"
)

// Hook освобождает ресурс при завершении.
type Hook func(context.Context) error

// Wait блокируется до сигнала SIGINT/SIGTERM или отмены ctx, затем
// параллельно выполняет hooks, ожидая их не дольше timeout.
func Wait(ctx context.Context, timeout time.Duration, hooks ...Hook) {
	sigCtx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	<-sigCtx.Done()

	Run(ctx, timeout, hooks...)
}

// Run выполняет hooks параллельно с общим timeout.
func Run(ctx context.Context, timeout time.Duration, hooks ...Hook) {
	log := logger.Log(ctx)
	log.Info(ctx, logShutdownStarted, zap.Int("hooks", len(hooks)))

	hookCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), timeout)
	defer cancel()

	var wgp sync.WaitGroup
	for _, hook := range hooks {
		wgp.Add(1)
		go func(fn Hook) {
			defer wgp.Done()
			if err := fn(hookCtx); err != nil {
				log.Warn(ctx, logHookFailed, zap.Error(err))
			}
		}(hook)
	}

	done := make(chan struct{})
	go func() {
		wgp.Wait()
		close(done)
	}()

	select {
	case <-done:
	case <-hookCtx.Done():
		log.Warn(ctx, logTimeoutExceeded, zap.Duration("timeout", timeout))
	}
}
