// internal/system/player.go
package system

import (
	"math"

	"go-battle-arena/internal/component"
	"go-battle-arena/internal/config"
	"go-battle-arena/internal/event"
	"go-battle-arena/internal/utils"
	"go-battle-arena/pkg/arena"
	"go-battle-arena/pkg/geom"
)

// PlayerSystem управляет персонажем игрока: движение относительно камеры,
// плавный разворот, откат на границе арены и вспышка атаки.
type PlayerSystem struct {
	player *component.PlayerState
	layout *arena.Layout
	events *event.Dispatcher
}

// NewPlayerSystem создаёт систему игрока.
func NewPlayerSystem(player *component.PlayerState, layout *arena.Layout, events *event.Dispatcher) *PlayerSystem {
	return &PlayerSystem{player: player, layout: layout, events: events}
}

// TriggerAttack запускает вспышку атаки и оповещает подписчиков.
// Повторный вызов перезапускает отсчёт с начала.
func (s *PlayerSystem) TriggerAttack() {
	s.player.AttackFlash = config.AttackFlashDuration
	if s.events != nil {
		s.events.Dispatch(event.Event{Type: event.PlayerAttacked})
	}
}

// Update продвигает игрока на один кадр. camForward — направление взгляда
// камеры, по которому ориентируется ввод.
func (s *PlayerSystem) Update(input component.DirectionalInput, camForward geom.Vec3, deltaTime float64) {
	p := s.player

	s.updateAttackFlash(deltaTime)

	// Проекция взгляда камеры на плоскость земли. Если камера смотрит
	// почти вертикально, берём текущее направление персонажа.
	fwd := camForward.Flat()
	if fwd.LengthSq() < config.MoveEpsilonSq {
		fwd = geom.V(math.Sin(p.Facing), 0, math.Cos(p.Facing))
	}
	fwd = fwd.Normalized()
	right := geom.Up.Cross(fwd)

	move := fwd.Scale(-input.Y).Add(right.Scale(-input.X))
	if move.LengthSq() <= config.MoveEpsilonSq {
		p.WalkPhase = 0
		return
	}

	dir := move.Normalized()

	// Поворот до желаемого курса ограничен угловой скоростью, поэтому
	// корпус доворачивается плавно даже при резкой смене направления.
	targetFacing := math.Atan2(dir.X, dir.Z)
	p.Facing = utils.StepAngle(p.Facing, targetFacing, config.PlayerTurnRate*deltaTime)

	p.WalkPhase += config.WalkBobRate * deltaTime

	// Выход за ромб арены откатывается целиком, частичного зажима по
	// осям нет. Поворот при этом сохраняется.
	tentative := p.Pos.Add(dir.Scale(config.PlayerSpeed * deltaTime))
	if s.layout.Contains(tentative) {
		p.Pos = tentative
	}
}

// updateAttackFlash гасит вспышку линейно и по истечении возвращает
// материал ровно к базовому цвету.
func (s *PlayerSystem) updateAttackFlash(deltaTime float64) {
	p := s.player

	if p.AttackFlash <= 0 {
		p.Tint = p.BaseColor
		return
	}

	p.AttackFlash -= deltaTime
	if p.AttackFlash <= 0 {
		p.AttackFlash = 0
		p.Tint = p.BaseColor
		return
	}

	f := p.AttackFlash / config.AttackFlashDuration
	p.Tint = utils.LerpColor(p.BaseColor, config.PlayerFlashColor, f)
}

// BobOffset возвращает вертикальное смещение корпуса для отрисовки.
func (s *PlayerSystem) BobOffset() float64 {
	return math.Sin(s.player.WalkPhase) * config.WalkBobAmplitude
}
