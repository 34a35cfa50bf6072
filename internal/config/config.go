// internal/config/config.go
package config

import "image/color"

const (
	ScreenWidth  = 1280
	ScreenHeight = 720
	TargetFPS    = 60
	MaxDeltaTime = 0.06

	ActorBaseY = 1.0 // высота центра капсулы над землёй

	ArenaHalfExtent = 22.0 // граница ромба: |x| + |z| <= ArenaHalfExtent
	FountainOffset  = 18.0
	TowerOffsetX    = 10.0
	TowerOffsetZ    = 7.0

	PlayerSpeed         = 6.0
	PlayerTurnRate      = 10.0 // радиан в секунду
	PlayerSpawnX        = -14.0
	PlayerSpawnZ        = 0.0
	AttackFlashDuration = 0.45
	WalkBobRate         = 9.0
	WalkBobAmplitude    = 0.12
	MoveEpsilonSq       = 1e-6

	EnemySpeed          = 4.5
	EnemyTurnRate       = 7.0
	EnemyFleeTurnRate   = 11.0
	EnemySpawnX         = 12.0
	EnemySpawnZ         = 0.0
	AttackRangeSq       = 4.84 // 2.2^2
	DetectRangeSq       = 49.0 // 7^2
	AttackCooldown      = 2.5
	AttackVisualTime    = 0.8
	TowerAvoidRadiusSq  = 25.0 // 5^2
	TowerFleeDistance   = 8.0
	RoamIntervalMin     = 2.5
	RoamIntervalMax     = 5.5
	RoamReachedDistSq   = 0.81 // 0.9^2
	RoamFountainClearSq = 36.0 // 6^2
	RoamSampleAttempts  = 10

	PuffPoolSize     = 15
	PuffBurstMin     = 2
	PuffBurstMax     = 4 // включительно
	PuffLifetime     = 1.1
	PuffLifeJitter   = 0.35
	PuffStartScale   = 0.35
	PuffEndScale     = 1.5
	PuffStartAlpha   = 0.85
	PuffRiseSpeedMin = 1.2
	PuffRiseSpeedMax = 2.2
	PuffDriftSpeed   = 0.5
	PuffSpawnSpread  = 0.4

	CameraStartRadius  = 10.0
	CameraMinRadius    = 5.0
	CameraMaxRadius    = 18.0
	CameraZoomStep     = 0.9
	CameraMinPolar     = 0.25
	CameraPolarEpsilon = 0.01
	CameraMinHeight    = 0.7
	CameraTargetLift   = 1.6
	CameraStartAzimuth = 0.0
	CameraStartPolar   = 1.05
	CameraSensitivity  = 0.005 // радиан на пиксель

	CameraFOV = 55.0

	UIBorderWidth      = 2.0
	JoystickBaseRadius = 70.0
	JoystickKnobRadius = 28.0
	JoystickMargin     = 110.0
	AttackButtonRadius = 46.0
	AttackButtonMargin = 100.0
)

var (
	BackgroundColor = color.RGBA{20, 20, 30, 255}
	GroundColor     = color.RGBA{46, 58, 44, 255}
	ArenaEdgeColor  = color.RGBA{240, 240, 240, 90}

	PlayerColor      = color.RGBA{70, 130, 180, 255}
	PlayerFlashColor = color.RGBA{250, 250, 210, 255}
	EnemyColor       = color.RGBA{150, 70, 70, 255}
	EnemyAttackColor = color.RGBA{255, 140, 40, 255}

	OrderColor = color.RGBA{80, 160, 220, 255} // дружественные строения
	ChaosColor = color.RGBA{200, 70, 60, 255}  // вражеские строения

	PuffColor      = color.RGBA{180, 180, 190, 255}
	TextLightColor = color.RGBA{240, 240, 240, 255}

	UIBorderColor     = color.RGBA{240, 240, 240, 160}
	JoystickBaseColor = color.RGBA{255, 255, 255, 40}
	JoystickKnobColor = color.RGBA{255, 255, 255, 120}
	AttackButtonColor = color.RGBA{220, 90, 70, 200}
)
