package game

import "time"

// Playfield units are pixels; speeds are pixels per second.
const (
	GunWidth        = 30.0
	GunHeight       = 40.0
	GunBottomOffset = 40.0 // gun anchor above the bottom edge

	ZombieSize   = 30.0
	CivilianSize = 24.0
	BulletSize   = 6.0
	FlashSize    = 12.0

	ZombieBaseSpeed     = 50.0
	ZombieSpeedJitter   = 30.0
	CivilianBaseSpeed   = 40.0
	CivilianSpeedJitter = 30.0
	BulletSpeed         = 400.0

	ZombieSpawnMargin      = 20.0 // keep spawns away from the side edges
	CivilianSpawnTopMargin = 50.0 // civilians cross the upper half only

	MinUpwardComponent = 0.3 // shots are never closer to horizontal than this
	AimDamping         = 0.2 // gun never tracks the pointer 1:1
	RotationPerPixel   = 0.05
	RotationSmoothing  = 0.8 // EMA weight on the previous rotation

	StartingLives   = 3
	ZombiePoints    = 10
	CivilianPenalty = -50
)

const (
	ZombieSpawnInterval    = 2000 * time.Millisecond
	ZombieSpawnStep        = 100 * time.Millisecond // interval shrink per difficulty ramp
	MinZombieSpawnInterval = 500 * time.Millisecond
	CivilianSpawnInterval  = 3000 * time.Millisecond

	DifficultyInterval = 10 * time.Second
	DifficultyStep     = 0.1

	FlashLifetime = 50 * time.Millisecond
	GameOverDelay = 500 * time.Millisecond
)
