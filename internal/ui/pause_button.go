// internal/ui/pause_button.go
package ui

import (
	"math"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"

	"go-battle-arena/internal/config"
)

// PauseButton — экранная кнопка паузы. В игре показывает две планки,
// на паузе превращается в треугольник запуска.
type PauseButton struct {
	X, Y          float32
	Size          float32
	IsPaused      bool
	LastClickTime time.Time
}

// NewPauseButton создаёт кнопку с центром в точке (x, y).
func NewPauseButton(x, y, size float32) *PauseButton {
	return &PauseButton{X: x, Y: y, Size: size}
}

// IsClicked проверяет попадание нажатия в кнопку.
func (b *PauseButton) IsClicked(mousePos rl.Vector2) bool {
	return rl.CheckCollisionPointCircle(mousePos, rl.NewVector2(b.X, b.Y), b.Size*1.5)
}

// HandleClick запускает анимацию отскока.
func (b *PauseButton) HandleClick() {
	b.LastClickTime = time.Now()
}

// SetPaused синхронизирует иконку с состоянием симуляции.
func (b *PauseButton) SetPaused(paused bool) {
	b.IsPaused = paused
}

// Draw отрисовывает кнопку с отскоком после нажатия.
func (b *PauseButton) Draw() {
	elapsed := time.Since(b.LastClickTime).Seconds()
	scale := 1.0 + 0.3*math.Exp(-elapsed*8)
	size := b.Size * float32(scale)

	c := toRL(config.TextLightColor)
	if b.IsPaused {
		// Треугольник запуска.
		p1 := rl.NewVector2(b.X-size*0.6, b.Y-size)
		p2 := rl.NewVector2(b.X-size*0.6, b.Y+size)
		p3 := rl.NewVector2(b.X+size, b.Y)
		rl.DrawTriangle(p1, p2, p3, c)
		rl.DrawTriangleLines(p1, p2, p3, rl.White)
	} else {
		// Две планки паузы.
		width := size * 0.5
		height := size * 1.8
		spacing := size * 0.35
		rl.DrawRectangleV(rl.NewVector2(b.X-width-spacing/2, b.Y-height/2), rl.NewVector2(width, height), c)
		rl.DrawRectangleV(rl.NewVector2(b.X+spacing/2, b.Y-height/2), rl.NewVector2(width, height), c)
	}
}
