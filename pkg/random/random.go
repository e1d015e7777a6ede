// Package random описывает источник случайных чисел, который внедряется в
// генераторы, чтобы тесты могли подставить детерминированную последовательность.
package random

import (
	crand "crypto/rand"
	"encoding/binary"
	"math/rand/v2"
	"sync"
)

// Source - источник случайных чисел для генераторов.
type Source interface {
	// Float64 возвращает число из [0, 1).
	Float64() float64
	// IntRange возвращает целое из [minVal, maxVal] включительно.
	IntRange(minVal, maxVal int) int
}

// Default возвращает источник на глобальном генераторе math/rand/v2.
// Безопасен для конкурентного использования.
func Default() Source {
	return globalSource{}
}

type globalSource struct{}

func (globalSource) Float64() float64 { return rand.Float64() }

func (globalSource) IntRange(minVal, maxVal int) int {
	if maxVal <= minVal {
		return minVal
	}
	return minVal + rand.IntN(maxVal-minVal+1)
}

// NewSeeded возвращает воспроизводимый источник PCG.
func NewSeeded(seed uint64) Source {
	return &seededSource{r: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

type seededSource struct {
	mu sync.Mutex
	r  *rand.Rand
}

func (s *seededSource) Float64() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.r.Float64()
}

func (s *seededSource) IntRange(minVal, maxVal int) int {
	if maxVal <= minVal {
		return minVal
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return minVal + s.r.IntN(maxVal-minVal+1)
}

// Crypto возвращает источник на crypto/rand для генерации паролей.
func Crypto() Source {
	return &seededSource{r: rand.New(cryptoSource{})}
}

type cryptoSource struct{}

func (cryptoSource) Uint64() uint64 {
	var buf [8]byte
	if _, err := crand.Read(buf[:]); err != nil {
		panic("random: crypto/rand failed: " + err.Error())
	}
	return binary.LittleEndian.Uint64(buf[:])
}

// Pick возвращает случайный элемент непустого среза.
func Pick[T any](src Source, items []T) T {
	return items[src.IntRange(0, len(items)-1)]
}
