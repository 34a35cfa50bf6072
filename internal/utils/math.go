// internal/utils/math.go
package utils

import "math"

// Lerp выполняет стандартную линейную интерполяцию
func Lerp(from, to float64, t float64) float64 {
	return from + (to-from)*t
}

// LerpAngle выполняет линейную интерполяцию между двумя углами с учётом кратчайшего пути
func LerpAngle(from, to float64, t float64) float64 {
	from = NormalizeAngle(from)
	to = NormalizeAngle(to)

	// Находим кратчайшую разницу
	diff := to - from
	if diff > math.Pi {
		diff -= 2 * math.Pi
	} else if diff < -math.Pi {
		diff += 2 * math.Pi
	}

	return NormalizeAngle(from + diff*t)
}

// StepAngle поворачивает угол from к углу to по кратчайшей дуге,
// но не более чем на maxStep за один вызов. При достаточно большом
// шаге возвращает ровно to, без перелёта.
func StepAngle(from, to float64, maxStep float64) float64 {
	from = NormalizeAngle(from)
	to = NormalizeAngle(to)

	diff := to - from
	if diff > math.Pi {
		diff -= 2 * math.Pi
	} else if diff < -math.Pi {
		diff += 2 * math.Pi
	}

	if math.Abs(diff) <= maxStep {
		return to
	}
	if diff > 0 {
		return NormalizeAngle(from + maxStep)
	}
	return NormalizeAngle(from - maxStep)
}

// NormalizeAngle нормализует угол в диапазон (-π, π]
func NormalizeAngle(angle float64) float64 {
	for angle > math.Pi {
		angle -= 2 * math.Pi
	}
	for angle <= -math.Pi {
		angle += 2 * math.Pi
	}
	return angle
}

// Clamp ограничивает значение диапазоном [lo, hi]
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
