package utils

import (
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

// Float64 возвращает случайное число с плавающей точкой в диапазоне [0.0, 1.0).
func (s *PRNGService) Float64() float64 {
	return s.rng.Float64()
}

// Range возвращает случайное число в диапазоне [min, max).
func (s *PRNGService) Range(min, max float64) float64 {
	return min + (max-min)*s.rng.Float64()
}

// NormFloat64 возвращает нормально распределённое число со
// стандартным отклонением 1 и средним 0.
func (s *PRNGService) NormFloat64() float64 {
	return s.rng.NormFloat64()
}

// GaussClamped возвращает гауссову выборку со стандартным отклонением
// sigma, жёстко ограниченную диапазоном [-limit, limit]. Выбросы
// обрезаются, а не пересэмплируются, чтобы число обращений к генератору
// оставалось детерминированным.
func (s *PRNGService) GaussClamped(sigma, limit float64) float64 {
	v := s.rng.NormFloat64() * sigma
	if v > limit {
		return limit
	}
	if v < -limit {
		return -limit
	}
	return v
}
