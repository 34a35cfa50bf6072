// internal/component/actor.go
package component

import (
	"image/color"

	"go-battle-arena/pkg/geom"
)

// ActorState — общее состояние подвижного персонажа на арене.
type ActorState struct {
	Pos       geom.Vec3  // центр капсулы
	Facing    float64    // угол поворота вокруг Y, радианы
	BaseColor color.RGBA // исходный цвет материала
	Tint      color.RGBA // текущий цвет с учётом эффектов
	WalkPhase float64    // фаза покачивания при ходьбе
}
