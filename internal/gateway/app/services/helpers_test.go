package services_test

import (
	"context"
	"errors"
	"sync"
	"time"
)

var errCacheDown = errors.New("cache is down")

type memoryCache struct {
	mu     sync.Mutex
	values map[string]string
	fail   bool
}

func newMemoryCache() *memoryCache {
	return &memoryCache{values: make(map[string]string)}
}

func (c *memoryCache) Get(_ context.Context, key string) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.fail {
		return "", errCacheDown
	}
	return c.values[key], nil
}

func (c *memoryCache) Set(_ context.Context, key, value string, _ time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.fail {
		return errCacheDown
	}
	c.values[key] = value
	return nil
}

func (c *memoryCache) Delete(_ context.Context, key string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.values, key)
	return nil
}

func (c *memoryCache) Close() error { return nil }

func (c *memoryCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.values)
}

type stubRewriter struct {
	text  string
	err   error
	calls int
	mu    sync.Mutex
}

func (s *stubRewriter) Rewrite(_ context.Context, text, mode string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls++
	if s.err != nil {
		return "", s.err
	}
	return s.text + "[" + mode + "]", nil
}
