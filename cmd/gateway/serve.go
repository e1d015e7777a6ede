package main

import (
	"context"
	"time"

	"toolbox/pkg/shutdown"
)

// serve запускает listen в отдельной горутине и ждет сигнала завершения.
// Ошибка listen прерывает ожидание: hooks выполняются, а ошибка возвращается.
func serve(ctx context.Context, listen func() error, timeout time.Duration, hooks ...shutdown.Hook) error {
	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	listenErr := make(chan error, 1)
	go func() {
		if err := listen(); err != nil {
			listenErr <- err
			cancel()
		}
	}()

	shutdown.Wait(runCtx, timeout, hooks...)

	select {
	case err := <-listenErr:
		return err
	default:
		return nil
	}
}
