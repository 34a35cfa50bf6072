// internal/system/camera.go
package system

import (
	"math"

	"go-battle-arena/internal/component"
	"go-battle-arena/internal/config"
	"go-battle-arena/internal/utils"
	"go-battle-arena/pkg/geom"
)

// CameraSystem — орбитальная камера вокруг игрока. Захват указателя и
// флаг перетаскивания принадлежат только этой системе.
type CameraSystem struct {
	rig  *component.CameraRig
	sens float64

	dragging  bool
	pointerID int
	lastX     float64
	lastY     float64
}

// NewCameraSystem создаёт систему камеры с чувствительностью из настроек.
func NewCameraSystem(rig *component.CameraRig, sensitivity float64) *CameraSystem {
	return &CameraSystem{rig: rig, sens: sensitivity}
}

// Update привязывает точку наблюдения к игроку. Вызывается после того,
// как позиции персонажей за тик уже обновлены.
func (s *CameraSystem) Update(playerPos geom.Vec3) {
	s.rig.Target = playerPos.Add(geom.V(0, config.CameraTargetLift, 0))
}

// PointerDown начинает перетаскивание. Пока один указатель захвачен,
// нажатия остальных игнорируются.
func (s *CameraSystem) PointerDown(id int, x, y float64) {
	if s.dragging && s.pointerID != id {
		return
	}
	s.dragging = true
	s.pointerID = id
	s.lastX = x
	s.lastY = y
}

// PointerMove вращает камеру. События чужих или незахваченных указателей
// отбрасываются без ошибки.
func (s *CameraSystem) PointerMove(id int, x, y float64) {
	if !s.dragging || s.pointerID != id {
		return
	}
	dx := x - s.lastX
	dy := y - s.lastY
	s.lastX = x
	s.lastY = y

	s.rig.Azimuth = utils.NormalizeAngle(s.rig.Azimuth - dx*s.sens)
	s.rig.Polar = utils.Clamp(s.rig.Polar-dy*s.sens, config.CameraMinPolar, s.maxPolarForGround())
}

// PointerUp завершает перетаскивание захваченного указателя.
func (s *CameraSystem) PointerUp(id int) {
	if !s.dragging || s.pointerID != id {
		return
	}
	s.dragging = false
}

// PointerCancel обрабатывается так же, как отпускание: системные отмены
// касания не должны оставлять камеру захваченной.
func (s *CameraSystem) PointerCancel(id int) {
	s.PointerUp(id)
}

// Release безусловно отпускает захват. Повторный вызов безопасен.
func (s *CameraSystem) Release() {
	s.dragging = false
}

// Dragging сообщает, захвачен ли сейчас указатель.
func (s *CameraSystem) Dragging() bool {
	return s.dragging
}

// Zoom приближает или отдаляет камеру на ступень за щелчок колеса.
func (s *CameraSystem) Zoom(ticks float64) {
	s.rig.Radius = utils.Clamp(
		s.rig.Radius-ticks*config.CameraZoomStep,
		config.CameraMinRadius,
		config.CameraMaxRadius,
	)
	// После смены радиуса потолок наклона мог опуститься.
	s.rig.Polar = utils.Clamp(s.rig.Polar, config.CameraMinPolar, s.maxPolarForGround())
}

// maxPolarForGround ограничивает наклон так, чтобы глаз камеры не опускался
// ниже минимальной высоты над землёй при текущем радиусе и цели.
func (s *CameraSystem) maxPolarForGround() float64 {
	if s.rig.Radius <= 0 {
		return math.Pi / 2
	}
	ratio := (config.CameraMinHeight - s.rig.Target.Y) / s.rig.Radius
	if ratio < -1 || ratio > 1 {
		return math.Pi / 2
	}
	return utils.Clamp(math.Acos(ratio), config.CameraMinPolar, math.Pi-config.CameraPolarEpsilon)
}
