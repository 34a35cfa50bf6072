// cmd/arena/main.go
package main

import (
	"image/color"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"

	"go-battle-arena/internal/app"
	"go-battle-arena/internal/audio"
	"go-battle-arena/internal/config"
	"go-battle-arena/internal/logging"
	"go-battle-arena/internal/render"
	"go-battle-arena/internal/system"
	"go-battle-arena/internal/ui"
)

// mousePointerID — единственный указатель мыши для системы камеры.
const mousePointerID = 0

func main() {
	settings, err := config.LoadSettings(".")
	if err != nil {
		logging.Log.Fatal().Err(err).Msg("failed to load settings")
	}
	logging.Setup(settings.LogLevel)
	logging.Log.Info().
		Int("width", settings.Window.Width).
		Int("height", settings.Window.Height).
		Int64("seed", settings.Seed).
		Msg("starting arena")

	rl.InitWindow(int32(settings.Window.Width), int32(settings.Window.Height), "Battle Arena")
	defer rl.CloseWindow()
	rl.SetTargetFPS(int32(settings.Window.FPS))

	game := app.NewGame(settings)
	defer game.Stop()

	renderer := render.NewArenaRenderer()

	w := float32(settings.Window.Width)
	h := float32(settings.Window.Height)
	joystick := ui.NewVirtualJoystick(config.JoystickMargin, h-config.JoystickMargin, config.JoystickBaseRadius, config.JoystickKnobRadius)
	attackButton := ui.NewAttackButton(w-config.AttackButtonMargin, h-config.AttackButtonMargin, config.AttackButtonRadius)
	pauseButton := ui.NewPauseButton(w-40, 40, 16)

	sound := audio.NewSoundManager(settings.Audio.Volume)
	if settings.Audio.Enabled {
		if err := sound.Initialize(); err != nil {
			logging.Log.Warn().Err(err).Msg("audio unavailable, continuing without sound")
		} else {
			sound.Attach(game.Dispatcher)
			defer sound.Cleanup()
		}
	}

	debugDraw := false
	lastUpdate := time.Now()

	for !rl.WindowShouldClose() {
		now := time.Now()
		deltaTime := now.Sub(lastUpdate).Seconds()
		if deltaTime > config.MaxDeltaTime {
			deltaTime = config.MaxDeltaTime
		}
		lastUpdate = now

		// --- Клавиатура ---
		if rl.IsKeyPressed(rl.KeyP) {
			game.TogglePause()
		}
		if rl.IsKeyPressed(rl.KeyF3) {
			debugDraw = !debugDraw
		}
		if rl.IsKeyPressed(rl.KeySpace) {
			game.BumpAttack()
			attackButton.HandleClick()
		}

		// --- Мышь: сначала кнопки, затем стик, остаток достаётся камере ---
		mouse := rl.GetMousePosition()
		if rl.IsMouseButtonPressed(rl.MouseLeftButton) {
			switch {
			case pauseButton.IsClicked(mouse):
				game.TogglePause()
				pauseButton.HandleClick()
			case attackButton.IsClicked(mouse):
				game.BumpAttack()
				attackButton.HandleClick()
			case joystick.HandleDown(mouse):
				// нажатие поглощено стиком
			default:
				game.CameraSystem.PointerDown(mousePointerID, float64(mouse.X), float64(mouse.Y))
			}
		}
		if rl.IsMouseButtonDown(rl.MouseLeftButton) {
			joystick.HandleMove(mouse)
			game.CameraSystem.PointerMove(mousePointerID, float64(mouse.X), float64(mouse.Y))
		}
		if rl.IsMouseButtonReleased(rl.MouseLeftButton) {
			joystick.HandleUp()
			game.CameraSystem.PointerUp(mousePointerID)
		}
		if wheel := rl.GetMouseWheelMove(); wheel != 0 {
			game.CameraSystem.Zoom(float64(wheel))
		}

		keys := system.KeyAxes{
			Left:  rl.IsKeyDown(rl.KeyA) || rl.IsKeyDown(rl.KeyLeft),
			Right: rl.IsKeyDown(rl.KeyD) || rl.IsKeyDown(rl.KeyRight),
			Up:    rl.IsKeyDown(rl.KeyW) || rl.IsKeyDown(rl.KeyUp),
			Down:  rl.IsKeyDown(rl.KeyS) || rl.IsKeyDown(rl.KeyDown),
		}

		game.Update(keys, joystick.Input(), deltaTime)

		// --- Отрисовка ---
		camera := renderer.Camera(game.Rig)
		rl.BeginDrawing()
		rl.ClearBackground(toRL(config.BackgroundColor))

		rl.BeginMode3D(camera)
		renderer.Draw(game)
		if debugDraw {
			renderer.DrawDebug(game)
		}
		rl.EndMode3D()

		renderer.DrawHUD(game)
		joystick.Draw()
		attackButton.Draw()
		pauseButton.SetPaused(game.IsPaused())
		pauseButton.Draw()
		rl.DrawFPS(10, int32(settings.Window.Height)-24)

		rl.EndDrawing()
	}
}

func toRL(c color.RGBA) rl.Color {
	return rl.NewColor(c.R, c.G, c.B, c.A)
}
