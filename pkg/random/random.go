package random

import (
	"math"
	"math/rand"
	"sync"
)

// Source источник равномерно распределённых чисел в [0, 1)
type Source interface {
	Float64() float64
}

type global struct{}

// Global возвращает источник на базе math/rand (безопасен для горутин)
func Global() Source {
	return global{}
}

func (global) Float64() float64 {
	return rand.Float64()
}

// Sequence источник, который по кругу отдаёт заранее заданные значения.
// Нужен для детерминированных тестов.
type Sequence struct {
	mtx    sync.Mutex
	values []float64
	pos    int
}

// NewSequence создаёт источник из фиксированной последовательности
func NewSequence(values ...float64) *Sequence {
	return &Sequence{values: values}
}

func (s *Sequence) Float64() float64 {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	if len(s.values) == 0 {
		return 0
	}
	v := s.values[s.pos%len(s.values)]
	s.pos++
	return v
}

// Int равномерное целое из [min, max] включительно
func Int(src Source, min, max int) int {
	return int(math.Floor(src.Float64()*float64(max-min+1))) + min
}

// Tenth равномерное значение из [min, max], округлённое до десятых
func Tenth(src Source, min, max float64) float64 {
	return Round1(src.Float64()*(max-min) + min)
}

// Round1 округляет до одного знака после запятой (половина от нуля)
func Round1(v float64) float64 {
	return math.Round(v*10) / 10
}

// Chance возвращает true с вероятностью p
func Chance(src Source, p float64) bool {
	return src.Float64() < p
}
