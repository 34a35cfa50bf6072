// internal/system/input.go
package system

import (
	"math"

	"go-battle-arena/internal/component"
)

// KeyAxes — состояние клавиш движения на момент кадра.
type KeyAxes struct {
	Left, Right bool
	Up, Down    bool
}

// InputSystem сводит клавиатуру и виртуальный джойстик в один вектор
// намерения. Аналоговый источник всегда приоритетнее цифрового.
type InputSystem struct{}

// NewInputSystem создаёт систему ввода.
func NewInputSystem() *InputSystem {
	return &InputSystem{}
}

// Merge возвращает итоговый DirectionalInput кадра. Если джойстик активен,
// клавиатура игнорируется, даже когда клавиши зажаты.
func (s *InputSystem) Merge(keys KeyAxes, stick component.DirectionalInput) component.DirectionalInput {
	if stick.Active {
		return clampToUnit(stick)
	}

	// Экранная конвенция осей: вправо x+, вниз y+. Толчок вперёд
	// даёт отрицательный y, как у веб-геймпадов.
	var x, y float64
	if keys.Left {
		x -= 1
	}
	if keys.Right {
		x += 1
	}
	if keys.Up {
		y -= 1
	}
	if keys.Down {
		y += 1
	}
	if x == 0 && y == 0 {
		return component.DirectionalInput{}
	}

	// Диагональ из двух клавиш нормализуется до единичной длины.
	inv := 1 / math.Hypot(x, y)
	return component.DirectionalInput{X: x * inv, Y: y * inv, Active: true}
}

// clampToUnit ограничивает длину аналогового вектора единицей, сохраняя
// направление. Значения внутри единичного круга не меняются.
func clampToUnit(in component.DirectionalInput) component.DirectionalInput {
	l := math.Hypot(in.X, in.Y)
	if l <= 1 || l == 0 {
		return in
	}
	return component.DirectionalInput{X: in.X / l, Y: in.Y / l, Active: true}
}
