package random

import "sync"

// Scripted воспроизводит заранее заданные значения по кругу. Значения
// IntRange зажимаются в запрошенный диапазон. Используется в тестах.
type Scripted struct {
	mu     sync.Mutex
	floats []float64
	ints   []int
	fi, ii int
}

// NewScripted создает источник с последовательностями floats и ints.
// Пустая последовательность дает 0 и minVal соответственно.
func NewScripted(floats []float64, ints []int) *Scripted {
	return &Scripted{floats: floats, ints: ints}
}

func (s *Scripted) Float64() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.floats) == 0 {
		return 0
	}
	v := s.floats[s.fi%len(s.floats)]
	s.fi++
	return v
}

func (s *Scripted) IntRange(minVal, maxVal int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.ints) == 0 {
		return minVal
	}
	v := s.ints[s.ii%len(s.ints)]
	s.ii++
	return max(minVal, min(v, maxVal))
}
