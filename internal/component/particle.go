// internal/component/particle.go
package component

import "go-battle-arena/pkg/geom"

// ParticlePuff — один клуб дыма из пула эффектов атаки.
type ParticlePuff struct {
	Pos         geom.Vec3
	Vel         geom.Vec3
	Life        float64 // оставшееся время жизни, секунды
	InitialLife float64 // полное время жизни, секунды
	Alpha       float64 // текущая непрозрачность, 0..1
	Scale       float64 // текущий радиус клуба
	Active      bool
}
