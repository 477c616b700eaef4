// Package config centralizes all tunable game parameters.
package config

import "time"

// Arena dimensions in logical units. The midline splits it into two lanes.
const (
	ArenaWidth  = 1400.0
	ArenaHeight = 600.0
	LaneWidth   = ArenaWidth / 2
)

// Player
const (
	PlayerSize         = 30.0
	PlayerSpeed        = 7.0 // Units per tick
	PlayerSpawnOffsetY = 80.0
	InitialLives       = 3
	MaxLives           = 5
	ShotCooldown       = 250 * time.Millisecond
	ShieldGrace        = 2 * time.Second
	TripleShotDuration = 5 * time.Second
	RespawnClearBand   = 300.0 // Vertical distance cleared around a respawning player
	PlayerBlinkFreq    = 10.0  // Hz
)

// Bullets
const (
	BulletWidth      = 4.0
	BulletHeight     = 10.0
	BulletSpeed      = 10.0
	SideBulletSpeed  = 9.0
	SideBulletDrift  = 2.0
	SideBulletOffset = 10.0
)

// Enemies
const (
	EnemySize          = 25.0
	GarbageSize        = 40.0
	EnemyHP            = 1
	GarbageHP          = 2
	EnemyMinSpeed      = 0.4
	EnemySpeedRange    = 0.8
	GarbageSpeed       = 0.6
	EnemySpawnY        = -50.0
	EnemySpawnMargin   = 20.0
	EnemySpawnSpan     = LaneWidth - 80
	LevelSpeedIncrease = 0.10
)

// Power-ups
const (
	PowerUpRadius     = 15.0
	PowerUpSpeed      = 2.0
	PowerUpDropChance = 0.10
	TripleWeight      = 0.4
	ShieldWeight      = 0.4 // HEAL takes the remainder
)

// Effects
const (
	ParticleSpread    = 8.0
	ParticleDecay     = 0.05
	TextRise          = 1.0
	TextDecay         = 0.02
	KillParticles     = 10
	HitParticles      = 2
	CrashParticles    = 30
	BlockParticles    = 10
	ClearParticles    = 5
	PickupParticles   = 5
	FlashParticles    = 20
	FlashY            = 100.0
	FloatingTextLift  = 20.0
	PlayerCenterShift = PlayerSize / 2
)

// Scoring
const (
	ScoreEnemy     = 10
	ScoreGarbage   = 50
	AttackMeterMax = 8
)

// Spawning and difficulty
const (
	InitialLevel       = 1
	LevelDuration      = 15 * time.Second
	InitialThreshold   = 120.0
	ThresholdStep      = 5.0
	MinThreshold       = 20.0
	SpawnTimerJitter   = 20 // Ticks, exclusive
	InitialTimerJitter = 50.0
	GameOverMenuDelay  = 1 * time.Second
	ParticleFadeCutoff = 0.25 // Effects below this life are dimmed or skipped
)

// Client rendering
const (
	TargetFPS        = 60
	TargetFrameTime  = time.Second / TargetFPS
	ShieldRingRadius = 25.0
	MidlineDash      = 10.0
	SaveTimeout      = 3 * time.Second
)

// Inactivity (SSH sessions)
const (
	InactivityDisconnect = 5 * time.Minute
)
