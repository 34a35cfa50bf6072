package component

import "go-battle-arena/pkg/geom"

// AIState — текущий режим поведения врага.
type AIState int

const (
	RoamState AIState = iota
	ChaseState
	AttackState
	FleeState
)

// String returns a short label for logs and overlays.
func (s AIState) String() string {
	switch s {
	case RoamState:
		return "roam"
	case ChaseState:
		return "chase"
	case AttackState:
		return "attack"
	case FleeState:
		return "flee"
	}
	return "unknown"
}

// EnemyState представляет вражескую сущность.
type EnemyState struct {
	ActorState
	AI             AIState
	Target         geom.Vec3 // текущая точка назначения (роуминг, бегство или игрок)
	RoamTimer      float64   // оставшееся время до смены точки роуминга
	AttackCooldown float64   // оставшееся время до следующей атаки
	AttackVisualOn bool      // идёт ли анимация атаки
	AttackVisual   float64   // прошедшее время анимации атаки
}
