// internal/component/input.go
package component

// DirectionalInput — нормализованный вектор намерения движения за кадр.
// Оси экранные: X — вправо, Y — вниз, так что толчок вперёд даёт
// отрицательный Y. Длина после нормализации не превышает 1.
type DirectionalInput struct {
	X, Y   float64
	Active bool // есть ли осмысленный ввод в этом кадре
}
