// internal/app/game_test.go
package app

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-battle-arena/internal/component"
	"go-battle-arena/internal/config"
	"go-battle-arena/internal/event"
	"go-battle-arena/internal/system"
	"go-battle-arena/pkg/arena"
	"go-battle-arena/pkg/geom"
)

type eventRecorder struct {
	events []event.Event
}

func (r *eventRecorder) OnEvent(e event.Event) {
	r.events = append(r.events, e)
}

func (r *eventRecorder) countOf(t event.EventType) int {
	n := 0
	for _, e := range r.events {
		if e.Type == t {
			n++
		}
	}
	return n
}

func testSettings() *config.Settings {
	s := &config.Settings{}
	s.Camera.Sensitivity = config.CameraSensitivity
	s.Seed = 7
	return s
}

func TestNewGame_InitialState(t *testing.T) {
	g := NewGame(testSettings())

	assert.Equal(t, geom.V(config.PlayerSpawnX, config.ActorBaseY, config.PlayerSpawnZ), g.Player.Pos)
	assert.Equal(t, geom.V(config.EnemySpawnX, config.ActorBaseY, config.EnemySpawnZ), g.Enemy.Pos)
	assert.Equal(t, g.Player.BaseColor, g.Player.Tint)
	assert.Equal(t, g.Enemy.BaseColor, g.Enemy.Tint)
	assert.Equal(t, component.RoamState, g.Enemy.AI)

	assert.False(t, g.IsPaused())
	assert.False(t, g.IsStopped())
	assert.Zero(t, g.GetGameTime())

	expectedTarget := g.Player.Pos.Add(geom.V(0, config.CameraTargetLift, 0))
	assert.Equal(t, expectedTarget, g.Rig.Target)
}

func TestNewGame_EnemyAvoidsOnlyHostileTowers(t *testing.T) {
	g := NewGame(testSettings())

	require.Len(t, g.Towers, 2)
	for _, tw := range g.Towers {
		assert.Equal(t, arena.TeamOrder, tw.Team)
	}
}

func TestGame_UpdateAdvancesTime(t *testing.T) {
	g := NewGame(testSettings())

	for i := 0; i < 5; i++ {
		g.Update(system.KeyAxes{}, component.DirectionalInput{}, 0.1)
	}

	assert.InDelta(t, 0.5, g.GetGameTime(), 1e-9)
}

func TestGame_CameraFollowsPlayerSameTick(t *testing.T) {
	g := NewGame(testSettings())

	start := g.Player.Pos
	g.Update(system.KeyAxes{Up: true}, component.DirectionalInput{}, 0.1)

	assert.NotEqual(t, start, g.Player.Pos)
	expected := g.Player.Pos.Add(geom.V(0, config.CameraTargetLift, 0))
	assert.Equal(t, expected, g.Rig.Target)
}

func TestGame_MovementIsCameraRelative(t *testing.T) {
	g := NewGame(testSettings())
	start := g.Player.Pos

	// При нулевом азимуте камера смотрит вдоль -Z, клавиша вверх должна
	// уводить игрока туда же.
	g.Update(system.KeyAxes{Up: true}, component.DirectionalInput{}, 0.1)

	assert.InDelta(t, start.X, g.Player.Pos.X, 1e-9)
	assert.Less(t, g.Player.Pos.Z, start.Z)
}

func TestGame_AttackLatchFiresOncePerTick(t *testing.T) {
	g := NewGame(testSettings())
	rec := &eventRecorder{}
	g.Dispatcher.Subscribe(event.PlayerAttacked, rec)

	// Сколько бы нажатий ни пришло между тиками, вспышка одна.
	g.BumpAttack()
	g.BumpAttack()
	g.BumpAttack()
	g.Update(system.KeyAxes{}, component.DirectionalInput{}, 0.016)

	assert.Equal(t, 1, rec.countOf(event.PlayerAttacked))
	assert.Greater(t, g.Player.AttackFlash, 0.0)

	// Тик без нажатий ничего не добавляет.
	g.Update(system.KeyAxes{}, component.DirectionalInput{}, 0.016)
	assert.Equal(t, 1, rec.countOf(event.PlayerAttacked))

	// Новое нажатие даёт новое срабатывание.
	g.BumpAttack()
	g.Update(system.KeyAxes{}, component.DirectionalInput{}, 0.016)
	assert.Equal(t, 2, rec.countOf(event.PlayerAttacked))
}

func TestGame_PauseFreezesSimulation(t *testing.T) {
	g := NewGame(testSettings())
	rec := &eventRecorder{}
	g.Dispatcher.Subscribe(event.GamePaused, rec)
	g.Dispatcher.Subscribe(event.GameResumed, rec)

	g.TogglePause()
	require.True(t, g.IsPaused())
	assert.Equal(t, 1, rec.countOf(event.GamePaused))

	start := g.Player.Pos
	g.Update(system.KeyAxes{Up: true}, component.DirectionalInput{}, 0.1)
	assert.Equal(t, start, g.Player.Pos)
	assert.Zero(t, g.GetGameTime())

	g.TogglePause()
	require.False(t, g.IsPaused())
	assert.Equal(t, 1, rec.countOf(event.GameResumed))

	g.Update(system.KeyAxes{Up: true}, component.DirectionalInput{}, 0.1)
	assert.NotEqual(t, start, g.Player.Pos)
}

func TestGame_AttackPressedDuringPauseFiresOnResume(t *testing.T) {
	g := NewGame(testSettings())
	rec := &eventRecorder{}
	g.Dispatcher.Subscribe(event.PlayerAttacked, rec)

	g.TogglePause()
	g.BumpAttack()
	g.Update(system.KeyAxes{}, component.DirectionalInput{}, 0.016)
	assert.Zero(t, rec.countOf(event.PlayerAttacked))

	g.TogglePause()
	g.Update(system.KeyAxes{}, component.DirectionalInput{}, 0.016)
	assert.Equal(t, 1, rec.countOf(event.PlayerAttacked))
}

func TestGame_StopIsIdempotent(t *testing.T) {
	g := NewGame(testSettings())
	rec := &eventRecorder{}
	g.Dispatcher.Subscribe(event.PlayerAttacked, rec)
	g.CameraSystem.PointerDown(1, 100, 100)
	require.True(t, g.CameraSystem.Dragging())

	g.Stop()
	g.Stop()

	assert.True(t, g.IsStopped())
	assert.False(t, g.CameraSystem.Dragging())

	// Тики после остановки не двигают симуляцию.
	g.Update(system.KeyAxes{Up: true}, component.DirectionalInput{}, 0.1)
	assert.Zero(t, g.GetGameTime())
	assert.Equal(t, geom.V(config.PlayerSpawnX, config.ActorBaseY, config.PlayerSpawnZ), g.Player.Pos)

	// Подписки сняты, прямая отправка события никуда не доходит.
	g.PlayerSystem.TriggerAttack()
	assert.Zero(t, rec.countOf(event.PlayerAttacked))
}

func TestGame_EnemyReadsSameTickPlayerPosition(t *testing.T) {
	g := NewGame(testSettings())

	// Подводим игрока вплотную к врагу до начала тика, враг должен
	// заметить его в радиусе обнаружения уже на этом же кадре.
	g.Player.Pos = geom.V(config.EnemySpawnX-6.0, config.ActorBaseY, 0)
	g.Update(system.KeyAxes{}, component.DirectionalInput{}, 0.016)

	assert.Equal(t, component.ChaseState, g.Enemy.AI)
}

func TestGame_FacingConvention(t *testing.T) {
	g := NewGame(testSettings())

	// Спавны смотрят друг на друга вдоль оси X.
	assert.InDelta(t, math.Pi/2, g.Player.Facing, 1e-9)
	assert.InDelta(t, -math.Pi/2, g.Enemy.Facing, 1e-9)
}
