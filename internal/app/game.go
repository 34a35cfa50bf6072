// internal/app/game.go
package app

import (
	"math"

	"go-battle-arena/internal/component"
	"go-battle-arena/internal/config"
	"go-battle-arena/internal/event"
	"go-battle-arena/internal/logging"
	"go-battle-arena/internal/system"
	"go-battle-arena/internal/utils"
	"go-battle-arena/pkg/arena"
	"go-battle-arena/pkg/geom"
)

// Game holds the main game state and logic.
type Game struct {
	Settings   *config.Settings
	Layout     *arena.Layout
	Dispatcher *event.Dispatcher
	Rng        *utils.PRNGService

	Player *component.PlayerState
	Enemy  *component.EnemyState
	Rig    *component.CameraRig
	Towers []component.TowerInfo

	InputSystem    *system.InputSystem
	PlayerSystem   *system.PlayerSystem
	EnemySystem    *system.EnemySystem
	ParticleSystem *system.ParticleSystem
	CameraSystem   *system.CameraSystem

	// Game state
	gameTime   float64
	isPaused   bool
	stopped    bool
	attackSeen uint64 // внешний счётчик срабатываний атаки
	attackAck  uint64 // последнее обработанное значение счётчика
}

// NewGame initializes a new game instance.
func NewGame(settings *config.Settings) *Game {
	layout := arena.NewLayout()
	dispatcher := event.NewDispatcher()
	rng := utils.NewPRNGService(settings.Seed)

	player := &component.PlayerState{}
	player.Pos = geom.V(config.PlayerSpawnX, config.ActorBaseY, config.PlayerSpawnZ)
	player.Facing = math.Pi / 2 // лицом к вражеской половине
	player.BaseColor = config.PlayerColor
	player.Tint = config.PlayerColor

	enemy := &component.EnemyState{}
	enemy.Pos = geom.V(config.EnemySpawnX, config.ActorBaseY, config.EnemySpawnZ)
	enemy.Facing = -math.Pi / 2
	enemy.BaseColor = config.EnemyColor
	enemy.Tint = config.EnemyColor
	enemy.AI = component.RoamState

	rig := &component.CameraRig{
		Azimuth: config.CameraStartAzimuth,
		Polar:   config.CameraStartPolar,
		Radius:  config.CameraStartRadius,
		Target:  player.Pos.Add(geom.V(0, config.CameraTargetLift, 0)),
	}

	// Враг избегает только чужие башни, список фиксируется при старте.
	var towers []component.TowerInfo
	for _, tw := range layout.TowersHostileTo(arena.TeamChaos) {
		towers = append(towers, component.TowerInfo{Pos: tw.Pos, Team: tw.Team})
	}

	g := &Game{
		Settings:   settings,
		Layout:     layout,
		Dispatcher: dispatcher,
		Rng:        rng,
		Player:     player,
		Enemy:      enemy,
		Rig:        rig,
		Towers:     towers,
	}
	g.InputSystem = system.NewInputSystem()
	g.ParticleSystem = system.NewParticleSystem(rng)
	g.PlayerSystem = system.NewPlayerSystem(player, layout, dispatcher)
	g.EnemySystem = system.NewEnemySystem(enemy, player, layout, towers, rng, g.ParticleSystem, dispatcher)
	g.CameraSystem = system.NewCameraSystem(rig, settings.Camera.Sensitivity)

	listener := &logListener{}
	dispatcher.Subscribe(event.EnemyStateChanged, listener)
	dispatcher.Subscribe(event.EnemyAttackStarted, listener)
	dispatcher.Subscribe(event.PlayerAttacked, listener)
	dispatcher.Subscribe(event.GamePaused, listener)
	dispatcher.Subscribe(event.GameResumed, listener)

	return g
}

// Update progresses the simulation by one frame. Порядок систем фиксирован:
// игрок читает взгляд камеры прошлого тика, враг — уже обновлённую позицию
// игрока, камера догоняет цель последней.
func (g *Game) Update(keys system.KeyAxes, stick component.DirectionalInput, deltaTime float64) {
	if g.stopped || g.isPaused {
		return
	}
	g.gameTime += deltaTime

	// Любое увеличение счётчика с прошлого тика даёт ровно одно
	// срабатывание атаки, сколько бы нажатий ни накопилось.
	if g.attackSeen != g.attackAck {
		g.attackAck = g.attackSeen
		g.PlayerSystem.TriggerAttack()
	}

	input := g.InputSystem.Merge(keys, stick)
	camForward := g.Rig.Forward()

	g.PlayerSystem.Update(input, camForward, deltaTime)
	g.EnemySystem.Update(deltaTime)
	g.ParticleSystem.Update(deltaTime)
	g.CameraSystem.Update(g.Player.Pos)
}

// BumpAttack регистрирует нажатие атаки. Вызывается слоем ввода в любой
// момент кадра, обрабатывается на ближайшем тике.
func (g *Game) BumpAttack() {
	g.attackSeen++
}

// Stop завершает симуляцию: отпускает захват указателя и снимает все
// подписки. Повторные вызовы ничего не меняют.
func (g *Game) Stop() {
	if g.stopped {
		return
	}
	g.stopped = true
	g.CameraSystem.Release()
	g.Dispatcher.Clear()
	logging.Log.Info().Float64("game_time", g.gameTime).Msg("simulation stopped")
}

// --- Public Accessors & Mutators ---

// TogglePause переключает паузу симуляции.
func (g *Game) TogglePause() {
	g.isPaused = !g.isPaused
	if g.isPaused {
		g.Dispatcher.Dispatch(event.Event{Type: event.GamePaused})
	} else {
		g.Dispatcher.Dispatch(event.Event{Type: event.GameResumed})
	}
}

// IsPaused возвращает текущее состояние паузы.
func (g *Game) IsPaused() bool {
	return g.isPaused
}

// IsStopped сообщает, была ли симуляция остановлена.
func (g *Game) IsStopped() bool {
	return g.stopped
}

// GetGameTime возвращает накопленное время симуляции.
func (g *Game) GetGameTime() float64 {
	return g.gameTime
}

// PlayerBob возвращает вертикальное смещение корпуса игрока для отрисовки.
func (g *Game) PlayerBob() float64 {
	return g.PlayerSystem.BobOffset()
}

// EnemyBob возвращает вертикальное смещение корпуса врага для отрисовки.
func (g *Game) EnemyBob() float64 {
	return g.EnemySystem.BobOffset()
}

// logListener транслирует игровые события в журнал.
type logListener struct{}

// OnEvent реализует интерфейс event.Listener.
func (l *logListener) OnEvent(e event.Event) {
	switch e.Type {
	case event.EnemyStateChanged:
		if sc, ok := e.Data.(event.StateChange); ok {
			logging.Log.Debug().Str("from", sc.From).Str("to", sc.To).Msg("enemy state")
		}
	case event.EnemyAttackStarted:
		logging.Log.Debug().Msg("enemy attack")
	case event.PlayerAttacked:
		logging.Log.Debug().Msg("player attack")
	case event.GamePaused:
		logging.Log.Info().Msg("game paused")
	case event.GameResumed:
		logging.Log.Info().Msg("game resumed")
	}
}
