// cmd/topdown/main.go
package main

import (
	"fmt"
	"image/color"
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"go-battle-arena/internal/app"
	"go-battle-arena/internal/component"
	"go-battle-arena/internal/config"
	"go-battle-arena/internal/logging"
	"go-battle-arena/internal/system"
	"go-battle-arena/internal/utils"
	"go-battle-arena/pkg/arena"
	"go-battle-arena/pkg/geom"
)

// Смотровой стенд симуляции: та же игра, но сверху и без 3D. Удобен для
// наблюдения за ИИ и частицами без графической нагрузки.
type AppGame struct {
	game           *app.Game
	width          int
	height         int
	scale          float64
	lastUpdateTime time.Time
}

func NewAppGame(game *app.Game, width, height int) *AppGame {
	half := math.Min(float64(width), float64(height))/2 - 40
	return &AppGame{
		game:           game,
		width:          width,
		height:         height,
		scale:          half / game.Layout.HalfExtent,
		lastUpdateTime: time.Now(),
	}
}

func (a *AppGame) Update() error {
	now := time.Now()
	deltaTime := now.Sub(a.lastUpdateTime).Seconds()
	if deltaTime > config.MaxDeltaTime {
		deltaTime = config.MaxDeltaTime
	}
	a.lastUpdateTime = now

	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		a.game.TogglePause()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		a.game.BumpAttack()
	}

	// Мышь крутит ту же камеру, что и в 3D-клиенте: стрелка компаса
	// показывает, куда после поворота поедет игрок по W.
	mouseX, mouseY := ebiten.CursorPosition()
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		a.game.CameraSystem.PointerDown(0, float64(mouseX), float64(mouseY))
	}
	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		a.game.CameraSystem.PointerMove(0, float64(mouseX), float64(mouseY))
	}
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		a.game.CameraSystem.PointerUp(0)
	}
	if _, wheelY := ebiten.Wheel(); wheelY != 0 {
		a.game.CameraSystem.Zoom(wheelY)
	}

	keys := system.KeyAxes{
		Left:  ebiten.IsKeyPressed(ebiten.KeyA) || ebiten.IsKeyPressed(ebiten.KeyArrowLeft),
		Right: ebiten.IsKeyPressed(ebiten.KeyD) || ebiten.IsKeyPressed(ebiten.KeyArrowRight),
		Up:    ebiten.IsKeyPressed(ebiten.KeyW) || ebiten.IsKeyPressed(ebiten.KeyArrowUp),
		Down:  ebiten.IsKeyPressed(ebiten.KeyS) || ebiten.IsKeyPressed(ebiten.KeyArrowDown),
	}

	a.game.Update(keys, component.DirectionalInput{}, deltaTime)
	return nil
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)

	a.drawArena(screen)
	a.drawAIOverlay(screen)
	a.drawActors(screen)
	a.drawPuffs(screen)
	a.drawCompass(screen)
	a.drawPanel(screen)

	ebitenutil.DebugPrint(screen, fmt.Sprintf("TPS: %.0f", ebiten.ActualTPS()))
}

func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return a.width, a.height
}

// drawArena рисует контур ромба, фонтаны и башни.
func (a *AppGame) drawArena(screen *ebiten.Image) {
	h := a.game.Layout.HalfExtent
	corners := []geom.Vec3{
		geom.V(0, 0, -h),
		geom.V(h, 0, 0),
		geom.V(0, 0, h),
		geom.V(-h, 0, 0),
	}
	for i, c := range corners {
		next := corners[(i+1)%len(corners)]
		x0, y0 := a.worldToScreen(c)
		x1, y1 := a.worldToScreen(next)
		vector.StrokeLine(screen, x0, y0, x1, y1, 1, config.ArenaEdgeColor, true)
	}

	for t, pos := range a.game.Layout.Fountains {
		x, y := a.worldToScreen(pos)
		vector.DrawFilledCircle(screen, x, y, float32(1.4*a.scale), teamColor(arena.Team(t)), true)
	}
	for _, tw := range a.game.Layout.Towers {
		x, y := a.worldToScreen(tw.Pos)
		vector.DrawFilledCircle(screen, x, y, float32(0.8*a.scale), teamColor(tw.Team), true)
		vector.StrokeCircle(screen, x, y, float32(0.8*a.scale), 1, color.White, true)
	}
}

// drawAIOverlay рисует цель врага и радиусы его решений.
func (a *AppGame) drawAIOverlay(screen *ebiten.Image) {
	e := a.game.Enemy

	ex, ey := a.worldToScreen(e.Pos)
	tx, ty := a.worldToScreen(e.Target)
	vector.StrokeLine(screen, ex, ey, tx, ty, 1, color.RGBA{250, 220, 90, 180}, true)

	detect := float32(math.Sqrt(config.DetectRangeSq) * a.scale)
	vector.StrokeCircle(screen, ex, ey, detect, 1, color.RGBA{220, 90, 70, 120}, true)

	avoid := float32(math.Sqrt(config.TowerAvoidRadiusSq) * a.scale)
	for _, tw := range a.game.Towers {
		x, y := a.worldToScreen(tw.Pos)
		vector.StrokeCircle(screen, x, y, avoid, 1, color.RGBA{90, 160, 220, 120}, true)
	}
}

// drawActors рисует игрока и врага кружками с насечкой курса.
func (a *AppGame) drawActors(screen *ebiten.Image) {
	for _, actor := range []*component.ActorState{&a.game.Player.ActorState, &a.game.Enemy.ActorState} {
		x, y := a.worldToScreen(actor.Pos)
		r := float32(0.45 * a.scale)
		vector.DrawFilledCircle(screen, x, y, r, actor.Tint, true)

		dir := geom.V(math.Sin(actor.Facing), 0, math.Cos(actor.Facing))
		nx, ny := a.worldToScreen(actor.Pos.Add(dir.Scale(0.7)))
		vector.StrokeLine(screen, x, y, nx, ny, 2, color.White, true)
	}
}

// drawPuffs рисует активные частицы с их текущей прозрачностью.
func (a *AppGame) drawPuffs(screen *ebiten.Image) {
	a.game.ParticleSystem.ForEachActive(func(p component.ParticlePuff) {
		x, y := a.worldToScreen(p.Pos)
		c := utils.ScaleAlpha(config.PuffColor, p.Alpha)
		vector.DrawFilledCircle(screen, x, y, float32(p.Scale*0.5*a.scale), c, true)
	})
}

// drawCompass рисует в углу направление взгляда камеры 3D-клиента.
func (a *AppGame) drawCompass(screen *ebiten.Image) {
	cx := float32(a.width - 40)
	cy := float32(40)
	const r = 18

	fwd := a.game.Rig.Forward()
	tipX := cx + float32(fwd.X)*r
	tipY := cy + float32(fwd.Z)*r

	vector.StrokeCircle(screen, cx, cy, r, 1, config.ArenaEdgeColor, true)
	vector.StrokeLine(screen, cx, cy, tipX, tipY, 2, color.White, true)
	vector.DrawFilledCircle(screen, tipX, tipY, 3, color.White, true)
}

// drawPanel выводит сводку состояния симуляции.
func (a *AppGame) drawPanel(screen *ebiten.Image) {
	e := a.game.Enemy
	lines := []string{
		fmt.Sprintf("time    %6.1fs", a.game.GetGameTime()),
		fmt.Sprintf("enemy   %s", e.AI),
		fmt.Sprintf("cooldown %5.2fs", e.AttackCooldown),
		fmt.Sprintf("puffs   %d/%d", a.game.ParticleSystem.ActiveCount(), config.PuffPoolSize),
	}
	if a.game.IsPaused() {
		lines = append(lines, "PAUSED")
	}
	for i, line := range lines {
		text.Draw(screen, line, basicfont.Face7x13, 10, a.height-14*(len(lines)-i), config.TextLightColor)
	}
}

func (a *AppGame) worldToScreen(p geom.Vec3) (float32, float32) {
	cx := float64(a.width) / 2
	cy := float64(a.height) / 2
	return float32(cx + p.X*a.scale), float32(cy + p.Z*a.scale)
}

func teamColor(t arena.Team) color.RGBA {
	if t == arena.TeamOrder {
		return config.OrderColor
	}
	return config.ChaosColor
}

func main() {
	settings, err := config.LoadSettings(".")
	if err != nil {
		logging.Log.Fatal().Err(err).Msg("failed to load settings")
	}
	logging.Setup(settings.LogLevel)

	game := app.NewGame(settings)
	defer game.Stop()

	appGame := NewAppGame(game, settings.Window.Width, settings.Window.Height)

	ebiten.SetWindowSize(settings.Window.Width, settings.Window.Height)
	ebiten.SetWindowTitle("Battle Arena | Top-Down")
	if err := ebiten.RunGame(appGame); err != nil {
		logging.Log.Fatal().Err(err).Msg("viewer stopped")
	}
}
