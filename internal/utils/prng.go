package utils

import (
	"math"
	"math/rand"
	"time"
)

// PRNGService — это обертка над стандартным генератором случайных чисел Go,
// которая позволяет использовать предсказуемый (seeded) рандом во всей игре.
type PRNGService struct {
	rng *rand.Rand
}

// NewPRNGService создает новый экземпляр сервиса с указанным сидом.
// Если сид равен 0, используется текущее время.
func NewPRNGService(seed int64) *PRNGService {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	source := rand.NewSource(seed)
	return &PRNGService{
		rng: rand.New(source),
	}
}

// Intn возвращает случайное целое число в диапазоне [0, n).
func (s *PRNGService) Intn(n int) int {
	return s.rng.Intn(n)
}

// Range возвращает равномерно распределённое число в [min, max).
// При min >= max возвращает min.
func (s *PRNGService) Range(min, max float32) float32 {
	if min >= max {
		return min
	}
	v := min + float32(s.rng.Float64())*(max-min)
	if v >= max {
		// округление float32 может дотянуть до верхней границы
		v = math.Nextafter32(max, min)
	}
	return v
}
