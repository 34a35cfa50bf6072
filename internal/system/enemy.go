// internal/system/enemy.go
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

// ParticleEmitter — то, что системе ИИ нужно от системы частиц.
// Доступ к пулу идёт только через этот метод, без прямой индексации.
type ParticleEmitter interface {
	Emit(pos geom.Vec3, countMultiplier float64)
}

// EnemySystem управляет поведением врага: приоритетная лестница состояний
// бегство от башен > атака > преследование > роуминг, с неподвижным
// замахом и пульсацией цвета во время атаки.
type EnemySystem struct {
	enemy  *component.EnemyState
	player *component.PlayerState
	layout *arena.Layout
	towers []component.TowerInfo
	rng    *utils.PRNGService
	puffs  ParticleEmitter
	events *event.Dispatcher
}

// NewEnemySystem создаёт систему ИИ. towers — заранее отфильтрованный
// список враждебных врагу башен.
func NewEnemySystem(
	enemy *component.EnemyState,
	player *component.PlayerState,
	layout *arena.Layout,
	towers []component.TowerInfo,
	rng *utils.PRNGService,
	puffs ParticleEmitter,
	events *event.Dispatcher,
) *EnemySystem {
	return &EnemySystem{
		enemy:  enemy,
		player: player,
		layout: layout,
		towers: towers,
		rng:    rng,
		puffs:  puffs,
		events: events,
	}
}

// Update продвигает врага на один тик. Игрок к этому моменту уже обновлён.
func (s *EnemySystem) Update(deltaTime float64) {
	e := s.enemy

	// Таймеры только убывают и не уходят в минус.
	e.AttackCooldown = math.Max(0, e.AttackCooldown-deltaTime)
	e.RoamTimer = math.Max(0, e.RoamTimer-deltaTime)

	wasVisual := e.AttackVisualOn
	wasFleeing := e.AI == component.FleeState
	sqPlayer := e.Pos.Flat().DistSq(s.player.Pos.Flat())

	if tower, sq, ok := s.nearestTower(); ok && sq < config.TowerAvoidRadiusSq {
		// Башня рядом важнее всего остального, цель бегства
		// пересчитывается каждый тик, пока угроза держится.
		away := e.Pos.Sub(tower.Pos).Flat().Normalized()
		if away.LengthSq() == 0 {
			away = geom.V(math.Sin(e.Facing), 0, math.Cos(e.Facing))
		}
		e.Target = e.Pos.Add(away.Scale(config.TowerFleeDistance))
		s.setState(component.FleeState)
	} else if wasFleeing {
		// Угроза миновала: возврат к роумингу со свежей точкой.
		s.setState(component.RoamState)
		s.pickRoamTarget()
	} else if !e.AttackVisualOn && e.AttackCooldown <= 0 && sqPlayer < config.AttackRangeSq {
		s.startAttack()
	} else if !e.AttackVisualOn && e.AI != component.AttackState && sqPlayer < config.DetectRangeSq {
		s.setState(component.ChaseState)
		e.Target = s.player.Pos // живое отслеживание каждый тик
	} else if !e.AttackVisualOn {
		if e.AI == component.ChaseState {
			// Игрок ушёл из зоны обнаружения.
			s.setState(component.RoamState)
			s.pickRoamTarget()
		} else if e.AI == component.RoamState && (e.RoamTimer <= 0 || s.reachedTarget()) {
			s.pickRoamTarget()
		}
	}

	// Завершение замаха происходит в тот же тик, не откладываясь.
	if wasVisual {
		e.AttackVisual += deltaTime
		if e.AttackVisual >= config.AttackVisualTime {
			e.AttackVisualOn = false
			e.AttackVisual = 0
			if sqPlayer < config.DetectRangeSq {
				s.setState(component.ChaseState)
				e.Target = s.player.Pos
			} else {
				s.setState(component.RoamState)
				s.pickRoamTarget()
			}
		}
	}

	if e.AttackVisualOn {
		// Во время замаха враг не движется и не доворачивается.
		e.WalkPhase = 0
	} else {
		s.moveTowardTarget(deltaTime)
	}

	s.updateTint()
}

// startAttack переводит врага в атаку: замах, сброс перезарядки, выброс
// частиц и фиксация позиции игрока на момент начала.
func (s *EnemySystem) startAttack() {
	e := s.enemy

	s.setState(component.AttackState)
	e.AttackVisualOn = true
	e.AttackVisual = 0
	e.AttackCooldown = config.AttackCooldown
	e.Target = s.player.Pos

	if s.puffs != nil {
		s.puffs.Emit(e.Pos, 1)
	}
	if s.events != nil {
		s.events.Dispatch(event.Event{Type: event.EnemyAttackStarted})
	}
}

// moveTowardTarget ведёт врага к текущей цели с далёким от телепортации
// плавным разворотом и откатом на границе арены.
func (s *EnemySystem) moveTowardTarget(deltaTime float64) {
	e := s.enemy

	to := e.Target.Sub(e.Pos).Flat()
	if to.LengthSq() <= config.MoveEpsilonSq {
		e.WalkPhase = 0
		return
	}
	dir := to.Normalized()

	turnRate := config.EnemyTurnRate
	if e.AI == component.FleeState {
		turnRate = config.EnemyFleeTurnRate
	}
	e.Facing = utils.StepAngle(e.Facing, math.Atan2(dir.X, dir.Z), turnRate*deltaTime)

	tentative := e.Pos.Add(dir.Scale(config.EnemySpeed * deltaTime))
	if s.layout.Contains(tentative) {
		e.Pos = tentative
		e.WalkPhase += config.WalkBobRate * deltaTime
		return
	}

	// Откат на границе. Вне бегства цель за границей бессмысленна,
	// поэтому роуминг-таймер гасится для быстрого перенацеливания.
	e.WalkPhase = 0
	if e.AI != component.FleeState {
		e.RoamTimer = 0
	}
}

// pickRoamTarget выбирает случайную точку арены вдали от обоих фонтанов.
// После исчерпания попыток остаётся последняя точка без ограничения.
func (s *EnemySystem) pickRoamTarget() {
	e := s.enemy

	var p geom.Vec3
	for i := 0; i < config.RoamSampleAttempts; i++ {
		p = s.layout.RandomPoint(s.rng)
		if s.farFromFountains(p) {
			break
		}
	}
	e.Target = p
	e.RoamTimer = s.rng.Range(config.RoamIntervalMin, config.RoamIntervalMax)
}

// farFromFountains проверяет зазор до обоих фонтанов.
func (s *EnemySystem) farFromFountains(p geom.Vec3) bool {
	for _, f := range s.layout.Fountains {
		if p.Flat().DistSq(f.Flat()) < config.RoamFountainClearSq {
			return false
		}
	}
	return true
}

// reachedTarget сообщает, добрался ли враг до точки роуминга.
func (s *EnemySystem) reachedTarget() bool {
	return s.enemy.Pos.Flat().DistSq(s.enemy.Target.Flat()) < config.RoamReachedDistSq
}

// nearestTower возвращает ближайшую башню и квадрат расстояния до неё.
func (s *EnemySystem) nearestTower() (component.TowerInfo, float64, bool) {
	if len(s.towers) == 0 {
		return component.TowerInfo{}, 0, false
	}
	best := math.MaxFloat64
	var bt component.TowerInfo
	for _, t := range s.towers {
		if sq := s.enemy.Pos.Flat().DistSq(t.Pos.Flat()); sq < best {
			best = sq
			bt = t
		}
	}
	return bt, best, true
}

// setState переключает режим поведения и оповещает подписчиков.
func (s *EnemySystem) setState(next component.AIState) {
	e := s.enemy
	if e.AI == next {
		return
	}
	prev := e.AI
	e.AI = next
	if s.events != nil {
		s.events.Dispatch(event.Event{
			Type: event.EnemyStateChanged,
			Data: event.StateChange{From: prev.String(), To: next.String()},
		})
	}
}

// updateTint пульсирует цветом во время замаха полуволной синуса и
// возвращает ровно базовый цвет вне атаки.
func (s *EnemySystem) updateTint() {
	e := s.enemy

	if !e.AttackVisualOn {
		e.Tint = e.BaseColor
		return
	}
	frac := utils.Clamp(e.AttackVisual/config.AttackVisualTime, 0, 1)
	pulse := math.Sin(math.Pi * frac)
	e.Tint = utils.LerpColor(e.BaseColor, config.EnemyAttackColor, pulse)
}

// BobOffset возвращает вертикальное смещение корпуса для отрисовки.
func (s *EnemySystem) BobOffset() float64 {
	return math.Sin(s.enemy.WalkPhase) * config.WalkBobAmplitude
}
