package system

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-battle-arena/internal/component"
	"go-battle-arena/internal/config"
	"go-battle-arena/pkg/geom"
)

func newTestCamera() (*CameraSystem, *component.CameraRig) {
	rig := &component.CameraRig{
		Azimuth: 0,
		Polar:   1.0,
		Radius:  10,
		Target:  geom.V(0, 2.6, 0),
	}
	return NewCameraSystem(rig, 0.005), rig
}

func TestCameraSystem_DragRotatesAzimuth(t *testing.T) {
	s, rig := newTestCamera()

	s.PointerDown(0, 100, 100)
	s.PointerMove(0, 200, 100)

	// dx=100 при чувствительности 0.005 даёт ровно -0.5 радиана.
	assert.InDelta(t, -0.5, rig.Azimuth, 1e-12)
	assert.Equal(t, 1.0, rig.Polar)
}

func TestCameraSystem_DragDeltasAreIncremental(t *testing.T) {
	s, rig := newTestCamera()

	s.PointerDown(0, 100, 100)
	s.PointerMove(0, 150, 100)
	s.PointerMove(0, 200, 100)

	// Две половины дают тот же результат, что один длинный жест.
	assert.InDelta(t, -0.5, rig.Azimuth, 1e-12)
}

func TestCameraSystem_PolarClampedAtGround(t *testing.T) {
	s, rig := newTestCamera()

	s.PointerDown(0, 0, 1000)
	s.PointerMove(0, 0, 0) // dy = -1000, наклон к земле

	want := math.Acos((config.CameraMinHeight - rig.Target.Y) / rig.Radius)
	assert.InDelta(t, want, rig.Polar, 1e-9)

	// Глаз камеры не опускается ниже минимальной высоты.
	assert.GreaterOrEqual(t, rig.Eye().Y, config.CameraMinHeight-1e-9)
}

func TestCameraSystem_PolarClampedOverhead(t *testing.T) {
	s, rig := newTestCamera()

	s.PointerDown(0, 0, 0)
	s.PointerMove(0, 0, 1000) // dy = +1000, взгляд сверху

	assert.Equal(t, float64(config.CameraMinPolar), rig.Polar)
}

func TestCameraSystem_DegenerateRatioFallsBack(t *testing.T) {
	s, rig := newTestCamera()
	rig.Radius = 0.5 // цель слишком высоко для такого радиуса

	s.PointerDown(0, 0, 1000)
	s.PointerMove(0, 0, 900)

	// Потолок наклона откатывается к горизонту.
	assert.LessOrEqual(t, rig.Polar, math.Pi/2+1e-9)
}

func TestCameraSystem_SecondPointerIgnored(t *testing.T) {
	s, rig := newTestCamera()

	s.PointerDown(0, 100, 100)
	s.PointerDown(7, 500, 500) // второй палец не перехватывает
	s.PointerMove(7, 600, 500)
	assert.Equal(t, 0.0, rig.Azimuth)

	s.PointerMove(0, 200, 100)
	assert.InDelta(t, -0.5, rig.Azimuth, 1e-12)
}

func TestCameraSystem_SameIdRestartAllowed(t *testing.T) {
	s, _ := newTestCamera()

	s.PointerDown(0, 100, 100)
	// Повторное нажатие того же указателя лишь обновляет точку отсчёта.
	s.PointerDown(0, 300, 300)
	require.True(t, s.Dragging())

	s.PointerUp(0)
	assert.False(t, s.Dragging())
}

func TestCameraSystem_UncapturedEventsIgnored(t *testing.T) {
	s, rig := newTestCamera()

	// Move и Up без предшествующего Down: последовательность некорректна,
	// но не приводит ни к падению, ни к изменению состояния.
	s.PointerMove(3, 100, 100)
	s.PointerUp(3)

	assert.Equal(t, 0.0, rig.Azimuth)
	assert.Equal(t, 1.0, rig.Polar)
	assert.False(t, s.Dragging())
}

func TestCameraSystem_UpEndsDrag(t *testing.T) {
	s, rig := newTestCamera()

	s.PointerDown(0, 100, 100)
	s.PointerUp(0)
	s.PointerMove(0, 200, 100)

	assert.Equal(t, 0.0, rig.Azimuth)
}

func TestCameraSystem_UpForOtherIdKeepsDrag(t *testing.T) {
	s, _ := newTestCamera()

	s.PointerDown(0, 100, 100)
	s.PointerUp(5)
	assert.True(t, s.Dragging())
}

func TestCameraSystem_CancelEndsDrag(t *testing.T) {
	s, rig := newTestCamera()

	s.PointerDown(0, 100, 100)
	s.PointerCancel(0)
	assert.False(t, s.Dragging())

	s.PointerMove(0, 200, 100)
	assert.Equal(t, 0.0, rig.Azimuth)
}

func TestCameraSystem_CancelForOtherIdKeepsDrag(t *testing.T) {
	s, _ := newTestCamera()

	s.PointerDown(0, 100, 100)
	s.PointerCancel(5)
	assert.True(t, s.Dragging())
}

func TestCameraSystem_ReleaseIdempotent(t *testing.T) {
	s, _ := newTestCamera()

	s.PointerDown(0, 100, 100)
	require.True(t, s.Dragging())

	s.Release()
	s.Release()
	assert.False(t, s.Dragging())
}

func TestCameraSystem_AzimuthWraps(t *testing.T) {
	s, rig := newTestCamera()

	s.PointerDown(0, 0, 0)
	// Протяжка на полный оборот с лишком: угол остаётся в (-pi, pi].
	s.PointerMove(0, 4*math.Pi/0.005, 0)

	assert.LessOrEqual(t, rig.Azimuth, math.Pi)
	assert.Greater(t, rig.Azimuth, -math.Pi)
}

func TestCameraSystem_ZoomClamped(t *testing.T) {
	s, rig := newTestCamera()

	for i := 0; i < 100; i++ {
		s.Zoom(1)
	}
	assert.Equal(t, float64(config.CameraMinRadius), rig.Radius)

	for i := 0; i < 100; i++ {
		s.Zoom(-1)
	}
	assert.Equal(t, float64(config.CameraMaxRadius), rig.Radius)
}

func TestCameraSystem_ZoomOutReclampsPolar(t *testing.T) {
	s, rig := newTestCamera()

	// На малом радиусе допустим крутой наклон.
	for i := 0; i < 100; i++ {
		s.Zoom(1)
	}
	s.PointerDown(0, 0, 1000)
	s.PointerMove(0, 0, 0)
	require.Greater(t, rig.Polar, math.Pi/2)

	// Отдаление опускает потолок наклона, глаз остаётся над землёй.
	for i := 0; i < 100; i++ {
		s.Zoom(-1)
	}
	assert.GreaterOrEqual(t, rig.Eye().Y, config.CameraMinHeight-1e-9)
}

func TestCameraSystem_UpdateTracksPlayer(t *testing.T) {
	s, rig := newTestCamera()

	pos := geom.V(3, config.ActorBaseY, -4)
	s.Update(pos)

	assert.Equal(t, pos.Add(geom.V(0, config.CameraTargetLift, 0)), rig.Target)
}
