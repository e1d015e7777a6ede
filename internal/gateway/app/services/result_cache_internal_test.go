package services

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"toolbox/internal/gateway/adapters/cache"
)

func TestCachedCollapsesConcurrentMisses(t *testing.T) {
	rc := NewResultCache(cache.NewNoop(), time.Minute, nil)

	var calls atomic.Int32
	release := make(chan struct{})

	var wg sync.WaitGroup
	results := make([]int, 8)
	for i := range results {
		wg.Add(1)
		go func() {
			defer wg.Done()
			v, err := cached(context.Background(), rc, "convert:same", func() (int, error) {
				calls.Add(1)
				<-release
				return 42, nil
			})
			assert.NoError(t, err)
			results[i] = v
		}()
	}

	time.Sleep(100 * time.Millisecond)
	close(release)
	wg.Wait()

	require.Equal(t, int32(1), calls.Load())
	for _, v := range results {
		assert.Equal(t, 42, v)
	}
}

func TestCachedWithoutCache(t *testing.T) {
	v, err := cached(context.Background(), nil, "k", func() (string, error) { return "direct", nil })
	require.NoError(t, err)
	assert.Equal(t, "direct", v)
}
