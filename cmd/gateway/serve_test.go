package main

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestServeListenFailure(t *testing.T) {
	errBusy := errors.New("listen tcp :8080: bind: address already in use")
	var hookCalls atomic.Int32

	done := make(chan error, 1)
	go func() {
		done <- serve(context.Background(), func() error { return errBusy }, time.Second,
			func(context.Context) error {
				hookCalls.Add(1)
				return nil
			})
	}()

	select {
	case err := <-done:
		require.ErrorIs(t, err, errBusy)
	case <-time.After(5 * time.Second):
		t.Fatal("serve kept waiting after listen failed")
	}
	assert.Equal(t, int32(1), hookCalls.Load())
}

func TestServeStopsOnContextCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	stop := make(chan struct{})
	var hookCalls atomic.Int32

	done := make(chan error, 1)
	go func() {
		done <- serve(ctx,
			func() error {
				<-stop
				return nil
			},
			time.Second,
			func(context.Context) error {
				hookCalls.Add(1)
				close(stop)
				return nil
			})
	}()

	cancel()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("serve did not stop after context cancel")
	}
	assert.Equal(t, int32(1), hookCalls.Load())
}
