// internal/ui/joystick.go
package ui

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"go-battle-arena/internal/component"
	"go-battle-arena/internal/config"
)

// VirtualJoystick — экранный стик для касаний и мыши. Пока стик захвачен,
// он выдаёт аналоговый вектор в экранных осях: X вправо, Y вниз.
type VirtualJoystick struct {
	X, Y       float32
	BaseRadius float32
	KnobRadius float32

	active bool
	knobDX float32
	knobDY float32
}

// NewVirtualJoystick создаёт стик с центром базы в точке (x, y).
func NewVirtualJoystick(x, y, baseRadius, knobRadius float32) *VirtualJoystick {
	return &VirtualJoystick{
		X:          x,
		Y:          y,
		BaseRadius: baseRadius,
		KnobRadius: knobRadius,
	}
}

// HandleDown пытается захватить стик. Возвращает true, если нажатие попало
// в базу и было поглощено, иначе событие достаётся камере.
func (j *VirtualJoystick) HandleDown(pos rl.Vector2) bool {
	if !rl.CheckCollisionPointCircle(pos, rl.NewVector2(j.X, j.Y), j.BaseRadius) {
		return false
	}
	j.active = true
	j.track(pos)
	return true
}

// HandleMove двигает ручку захваченного стика.
func (j *VirtualJoystick) HandleMove(pos rl.Vector2) {
	if !j.active {
		return
	}
	j.track(pos)
}

// HandleUp отпускает стик и возвращает ручку в центр.
func (j *VirtualJoystick) HandleUp() {
	j.active = false
	j.knobDX = 0
	j.knobDY = 0
}

// track зажимает смещение ручки внутри базового круга.
func (j *VirtualJoystick) track(pos rl.Vector2) {
	offset := rl.Vector2Subtract(pos, rl.NewVector2(j.X, j.Y))
	if rl.Vector2Length(offset) > j.BaseRadius {
		offset = rl.Vector2Scale(rl.Vector2Normalize(offset), j.BaseRadius)
	}
	j.knobDX = offset.X
	j.knobDY = offset.Y
}

// Active сообщает, захвачен ли стик.
func (j *VirtualJoystick) Active() bool {
	return j.active
}

// Input переводит смещение ручки в направленный ввод. Отпущенный стик
// возвращает неактивный нулевой вектор.
func (j *VirtualJoystick) Input() component.DirectionalInput {
	if !j.active {
		return component.DirectionalInput{}
	}
	return component.DirectionalInput{
		X:      float64(j.knobDX / j.BaseRadius),
		Y:      float64(j.knobDY / j.BaseRadius),
		Active: true,
	}
}

// Draw отрисовывает базу и ручку. Захваченный стик подсвечивается.
func (j *VirtualJoystick) Draw() {
	center := rl.NewVector2(j.X, j.Y)
	base := toRL(config.JoystickBaseColor)
	if j.active {
		base.A += 30
	}
	rl.DrawCircleV(center, j.BaseRadius, base)
	rl.DrawRing(center, j.BaseRadius, j.BaseRadius+config.UIBorderWidth, 0, 360, 36, toRL(config.UIBorderColor))

	knob := rl.NewVector2(j.X+j.knobDX, j.Y+j.knobDY)
	rl.DrawCircleV(knob, j.KnobRadius, toRL(config.JoystickKnobColor))
}
