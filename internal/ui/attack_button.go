// internal/ui/attack_button.go
package ui

import (
	"image/color"
	"math"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"

	"go-battle-arena/internal/config"
)

// AttackButton — круглая экранная кнопка атаки с отскоком при нажатии.
type AttackButton struct {
	X, Y          float32
	Radius        float32
	LastClickTime time.Time
}

// NewAttackButton создаёт кнопку с центром в точке (x, y).
func NewAttackButton(x, y, radius float32) *AttackButton {
	return &AttackButton{X: x, Y: y, Radius: radius}
}

// IsClicked проверяет попадание нажатия в кнопку.
func (b *AttackButton) IsClicked(mousePos rl.Vector2) bool {
	return rl.CheckCollisionPointCircle(mousePos, rl.NewVector2(b.X, b.Y), b.Radius)
}

// HandleClick запускает анимацию отскока.
func (b *AttackButton) HandleClick() {
	b.LastClickTime = time.Now()
}

// Draw отрисовывает кнопку. Сразу после нажатия она слегка раздувается
// и затухает обратно.
func (b *AttackButton) Draw() {
	elapsed := time.Since(b.LastClickTime).Seconds()
	scale := 1.0 + 0.3*math.Exp(-elapsed*8)
	radius := b.Radius * float32(scale)

	center := rl.NewVector2(b.X, b.Y)
	rl.DrawCircleV(center, radius, toRL(config.AttackButtonColor))
	rl.DrawRing(center, radius, radius+config.UIBorderWidth, 0, 360, 36, toRL(config.UIBorderColor))
	rl.DrawCircleV(center, radius*0.35, rl.Fade(rl.White, 0.8))
}

func toRL(c color.RGBA) rl.Color {
	return rl.NewColor(c.R, c.G, c.B, c.A)
}
