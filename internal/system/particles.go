// internal/system/particles.go
package system

import (
	"go-battle-arena/internal/component"
	"go-battle-arena/internal/config"
	"go-battle-arena/internal/utils"
	"go-battle-arena/pkg/geom"
)

// ParticleSystem владеет пулом клубов дыма фиксированного размера.
// Пул никогда не растёт: когда свободных слотов нет, запросы на эмиссию
// молча отбрасываются.
type ParticleSystem struct {
	pool [config.PuffPoolSize]component.ParticlePuff
	rng  *utils.PRNGService
}

// NewParticleSystem создаёт систему частиц с выделенным генератором случайностей.
func NewParticleSystem(rng *utils.PRNGService) *ParticleSystem {
	return &ParticleSystem{rng: rng}
}

// Emit активирует до floor(baseCount * countMultiplier) свободных слотов
// вокруг точки pos. Базовое количество выбирается случайно для каждого
// вызова. Лишние запросы не ставятся в очередь.
func (s *ParticleSystem) Emit(pos geom.Vec3, countMultiplier float64) {
	baseCount := config.PuffBurstMin + s.rng.Intn(config.PuffBurstMax-config.PuffBurstMin+1)
	want := int(float64(baseCount) * countMultiplier)

	for i := range s.pool {
		if want <= 0 {
			return
		}
		p := &s.pool[i]
		if p.Active {
			continue
		}
		s.activate(p, pos)
		want--
	}
}

// activate заполняет слот случайным смещением, скоростью и временем жизни.
func (s *ParticleSystem) activate(p *component.ParticlePuff, pos geom.Vec3) {
	spread := config.PuffSpawnSpread
	p.Pos = pos.Add(geom.V(
		s.rng.Range(-spread, spread),
		s.rng.Range(0, spread),
		s.rng.Range(-spread, spread),
	))
	p.Vel = geom.V(
		s.rng.Range(-config.PuffDriftSpeed, config.PuffDriftSpeed),
		s.rng.Range(config.PuffRiseSpeedMin, config.PuffRiseSpeedMax),
		s.rng.Range(-config.PuffDriftSpeed, config.PuffDriftSpeed),
	)
	p.InitialLife = config.PuffLifetime + s.rng.Range(-config.PuffLifeJitter, config.PuffLifeJitter)
	p.Life = p.InitialLife
	p.Alpha = config.PuffStartAlpha
	p.Scale = config.PuffStartScale
	p.Active = true
}

// Update продвигает все активные клубы и возвращает истёкшие в пул.
func (s *ParticleSystem) Update(deltaTime float64) {
	for i := range s.pool {
		p := &s.pool[i]
		if !p.Active {
			continue
		}

		p.Life -= deltaTime
		if p.Life <= 0 {
			p.Active = false
			continue
		}

		p.Pos = p.Pos.Add(p.Vel.Scale(deltaTime))

		frac := 1 - p.Life/p.InitialLife
		p.Alpha = utils.Lerp(config.PuffStartAlpha, 0, frac)
		p.Scale = utils.Lerp(config.PuffStartScale, config.PuffEndScale, frac)
	}
}

// ActiveCount возвращает число занятых слотов пула.
func (s *ParticleSystem) ActiveCount() int {
	n := 0
	for i := range s.pool {
		if s.pool[i].Active {
			n++
		}
	}
	return n
}

// ForEachActive вызывает fn для каждого активного клуба. Копия значения
// не даёт вызывающему изменить состояние пула.
func (s *ParticleSystem) ForEachActive(fn func(component.ParticlePuff)) {
	for i := range s.pool {
		if s.pool[i].Active {
			fn(s.pool[i])
		}
	}
}
