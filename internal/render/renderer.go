// internal/render/renderer.go
package render

import (
	"fmt"
	"image/color"
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"

	"go-battle-arena/internal/app"
	"go-battle-arena/internal/component"
	"go-battle-arena/internal/config"
	"go-battle-arena/internal/system"
	"go-battle-arena/pkg/arena"
	"go-battle-arena/pkg/geom"
)

const (
	actorRadius     = 0.45
	actorHalfHeight = 0.6
	noseRadius      = 0.18
	noseOffset      = 0.55
	puffBaseRadius  = 0.5

	towerRadius    = 0.8
	towerHeight    = 3.0
	fountainRadius = 1.4
	fountainHeight = 0.35
)

// ArenaRenderer отрисовывает мир: ромб арены, строения, персонажей и
// частицы. Вся симуляция остаётся независимой от графики, рендерер только
// читает её состояние.
type ArenaRenderer struct{}

// NewArenaRenderer создаёт рендерер.
func NewArenaRenderer() *ArenaRenderer {
	return &ArenaRenderer{}
}

// Camera собирает raylib-камеру из сферического состояния орбиты.
func (r *ArenaRenderer) Camera(rig *component.CameraRig) rl.Camera3D {
	eye := rig.Eye()
	return rl.Camera3D{
		Position:   vec3(eye),
		Target:     vec3(rig.Target),
		Up:         rl.NewVector3(0, 1, 0),
		Fovy:       config.CameraFOV,
		Projection: rl.CameraPerspective,
	}
}

// Draw рисует 3D-сцену. Вызывается между BeginMode3D и EndMode3D.
func (r *ArenaRenderer) Draw(g *app.Game) {
	r.drawGround(g.Layout)
	r.drawLandmarks(g.Layout)
	r.drawActor(&g.Player.ActorState, g.PlayerBob())
	r.drawActor(&g.Enemy.ActorState, g.EnemyBob())
	r.drawPuffs(g.ParticleSystem)
}

// drawGround рисует ромб земли двумя треугольниками и приподнятый контур.
func (r *ArenaRenderer) drawGround(l *arena.Layout) {
	h := float32(l.HalfExtent)
	n := rl.NewVector3(0, 0, -h)
	e := rl.NewVector3(h, 0, 0)
	s := rl.NewVector3(0, 0, h)
	w := rl.NewVector3(-h, 0, 0)

	ground := colorToRL(config.GroundColor)
	rl.DrawTriangle3D(n, w, s, ground)
	rl.DrawTriangle3D(s, e, n, ground)

	// Контур чуть выше плоскости, иначе он тонет в земле.
	edge := colorToRL(config.ArenaEdgeColor)
	lift := rl.NewVector3(0, 0.02, 0)
	corners := []rl.Vector3{n, e, s, w}
	for i, c := range corners {
		next := corners[(i+1)%len(corners)]
		rl.DrawLine3D(rl.Vector3Add(c, lift), rl.Vector3Add(next, lift), edge)
	}
}

// drawLandmarks рисует фонтаны и башни в цветах их команд.
func (r *ArenaRenderer) drawLandmarks(l *arena.Layout) {
	for t, pos := range l.Fountains {
		c := teamColor(arena.Team(t))
		rl.DrawCylinder(vec3(pos), fountainRadius, fountainRadius, fountainHeight, 12, c)
		rl.DrawCylinderWires(vec3(pos), fountainRadius, fountainRadius, fountainHeight, 12, rl.White)
	}

	for _, tw := range l.Towers {
		base := vec3(tw.Pos)
		top := rl.NewVector3(base.X, towerHeight, base.Z)
		c := teamColor(tw.Team)
		rl.DrawCylinderEx(base, top, towerRadius, towerRadius*0.7, 6, c)
		rl.DrawCylinderWiresEx(base, top, towerRadius, towerRadius*0.7, 6, rl.White)
		rl.DrawSphere(rl.NewVector3(base.X, towerHeight+0.4, base.Z), towerRadius*0.55, c)
	}
}

// drawActor рисует капсулу персонажа с текущей подкраской, вертикальным
// покачиванием и носиком-указателем курса.
func (r *ArenaRenderer) drawActor(a *component.ActorState, bob float64) {
	tint := colorToRL(a.Tint)
	y := float32(a.Pos.Y + bob)
	bottom := rl.NewVector3(float32(a.Pos.X), y-actorHalfHeight, float32(a.Pos.Z))
	top := rl.NewVector3(float32(a.Pos.X), y+actorHalfHeight, float32(a.Pos.Z))
	rl.DrawCapsule(bottom, top, actorRadius, 8, 8, tint)
	rl.DrawCapsuleWires(bottom, top, actorRadius, 8, 8, rl.Fade(rl.Black, 0.35))

	dir := geom.V(math.Sin(a.Facing), 0, math.Cos(a.Facing))
	nose := a.Pos.Add(dir.Scale(noseOffset))
	rl.DrawSphere(rl.NewVector3(float32(nose.X), y+0.25, float32(nose.Z)), noseRadius, rl.White)
}

// drawPuffs рисует активные частицы дыма полупрозрачными сферами.
func (r *ArenaRenderer) drawPuffs(ps *system.ParticleSystem) {
	ps.ForEachActive(func(p component.ParticlePuff) {
		c := colorToRL(config.PuffColor)
		c.A = uint8(p.Alpha * 255)
		rl.DrawSphere(vec3(p.Pos), float32(p.Scale*puffBaseRadius), c)
	})
}

// DrawHUD рисует двумерный слой: подсказки управления, строку состояния
// врага и оверлей паузы. Вызывается вне BeginMode3D.
func (r *ArenaRenderer) DrawHUD(g *app.Game) {
	text := colorToRL(config.TextLightColor)
	rl.DrawText("WASD/arrows: move  LMB drag: orbit  wheel: zoom", 10, 10, 10, text)
	rl.DrawText("SPACE: attack  P: pause  F3: debug", 10, 24, 10, text)

	label := fmt.Sprintf("enemy: %s", g.Enemy.AI)
	rl.DrawText(label, int32(rl.GetScreenWidth())-rl.MeasureText(label, 10)-10, 10, 10, text)

	if g.IsPaused() {
		msg := "PAUSED"
		size := int32(40)
		x := (int32(rl.GetScreenWidth()) - rl.MeasureText(msg, size)) / 2
		rl.DrawText(msg, x, int32(rl.GetScreenHeight())/2-size, size, rl.White)
	}
}

// DrawDebug рисует служебную геометрию ИИ: цель врага, радиусы
// обнаружения и избегания башен. Вызывается внутри BeginMode3D.
func (r *ArenaRenderer) DrawDebug(g *app.Game) {
	xAxis := rl.NewVector3(1, 0, 0)

	target := g.Enemy.Target
	target.Y = g.Enemy.Pos.Y
	rl.DrawLine3D(vec3(g.Enemy.Pos), vec3(target), rl.Yellow)
	rl.DrawCircle3D(vec3(g.Enemy.Pos.Flat()), float32(math.Sqrt(config.DetectRangeSq)), xAxis, 90, rl.Fade(rl.Red, 0.6))

	for _, tw := range g.Towers {
		rl.DrawCircle3D(vec3(tw.Pos), float32(math.Sqrt(config.TowerAvoidRadiusSq)), xAxis, 90, rl.Fade(rl.SkyBlue, 0.6))
	}
}

func teamColor(t arena.Team) rl.Color {
	if t == arena.TeamOrder {
		return colorToRL(config.OrderColor)
	}
	return colorToRL(config.ChaosColor)
}

func vec3(v geom.Vec3) rl.Vector3 {
	return rl.NewVector3(float32(v.X), float32(v.Y), float32(v.Z))
}

func colorToRL(c color.RGBA) rl.Color {
	return rl.NewColor(c.R, c.G, c.B, c.A)
}
