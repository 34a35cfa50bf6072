// internal/component/camera.go
package component

import (
	"math"

	"go-battle-arena/pkg/geom"
)

// CameraRig — состояние орбитальной камеры в сферических координатах
// вокруг точки наблюдения.
type CameraRig struct {
	Azimuth float64   // горизонтальный угол, радианы
	Polar   float64   // угол от вертикальной оси, радианы
	Radius  float64   // расстояние до цели
	Target  geom.Vec3 // точка, вокруг которой вращается камера
}

// Eye returns the camera position derived from the spherical state.
func (r *CameraRig) Eye() geom.Vec3 {
	sp := math.Sin(r.Polar)
	return geom.Vec3{
		X: r.Target.X + r.Radius*sp*math.Sin(r.Azimuth),
		Y: r.Target.Y + r.Radius*math.Cos(r.Polar),
		Z: r.Target.Z + r.Radius*sp*math.Cos(r.Azimuth),
	}
}

// Forward returns the unit vector from the eye towards the target.
func (r *CameraRig) Forward() geom.Vec3 {
	return r.Target.Sub(r.Eye()).Normalized()
}
