package config

import (
	"image/color"
	"time"
)

// Insets shrinks a sprite rectangle to its collision rectangle.
type Insets struct {
	Top    float64 `yaml:"top"`
	Bottom float64 `yaml:"bottom"`
	Left   float64 `yaml:"left"`
	Right  float64 `yaml:"right"`
}

// CharacterConfig contains all character-related configuration values
type CharacterConfig struct {
	// Dimensions
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	StartX float64 `yaml:"startX"`
	StartY float64 `yaml:"startY"`
	Hitbox Insets  `yaml:"hitbox"`

	// Movement
	Speed     float64 `yaml:"speed"`
	JumpSpeed float64 `yaml:"jumpSpeed"`

	// Physics. RestY is the top edge of the sprite when standing on the ground.
	Gravity float64 `yaml:"gravity"`
	RestY   float64 `yaml:"restY"`

	// Combat
	MaxEnergy     int           `yaml:"maxEnergy"`
	ContactDamage int           `yaml:"contactDamage"`
	HurtWindow    time.Duration `yaml:"hurtWindow"`
	StompBounce   float64       `yaml:"stompBounce"` // negative, Y grows downward
	StompGrace    time.Duration `yaml:"stompGrace"`

	// Inventory
	MaxBottles int `yaml:"maxBottles"`

	LongIdleAfter time.Duration `yaml:"longIdleAfter"`
}

// EnemyKindConfig is the per-kind dispatch table for chickens and the boss.
type EnemyKindConfig struct {
	Name   string  `yaml:"name"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	Y      float64 `yaml:"y"`
	Hitbox Insets  `yaml:"hitbox"`

	// Contact classification thresholds, as fractions of the enemy hitbox
	MinHorizontalOverlap float64 `yaml:"minHorizontalOverlap"`
	MinVerticalOverlap   float64 `yaml:"minVerticalOverlap"`

	// Capabilities
	Stompable     bool `yaml:"stompable"`
	ContactDamage bool `yaml:"contactDamage"`
	BottleDamage  int  `yaml:"bottleDamage"` // 0 = a bottle kills outright

	// Drift speed range in px per frame
	MinSpeed float64 `yaml:"minSpeed"`
	MaxSpeed float64 `yaml:"maxSpeed"`

	RemovalDelay time.Duration `yaml:"removalDelay"`
	DeathNudge   float64       `yaml:"deathNudge"`
}

// EnemyConfig contains enemy system configuration
type EnemyConfig struct {
	Kinds map[EnemyKind]*EnemyKindConfig `yaml:"kinds"`
}

// BossConfig contains end boss configuration
type BossConfig struct {
	StartX float64 `yaml:"startX"`
	Energy int     `yaml:"energy"`

	// Phase thresholds: energy >= NormalMinEnergy is Normal, >= ChaseMinEnergy is Chase
	NormalMinEnergy int `yaml:"normalMinEnergy"`
	ChaseMinEnergy  int `yaml:"chaseMinEnergy"`

	// Behavior loop
	BehaviorInterval time.Duration         `yaml:"behaviorInterval"`
	TriggerDistance  float64               `yaml:"triggerDistance"`
	PatrolMin        float64               `yaml:"patrolMin"`
	PatrolMax        float64               `yaml:"patrolMax"`
	PatrolSpeed      float64               `yaml:"patrolSpeed"`
	ChaseSpeed       float64               `yaml:"chaseSpeed"`
	ChaseBoost       float64               `yaml:"chaseBoost"`
	BoostBelowEnergy int                   `yaml:"boostBelowEnergy"`
	AggressiveSpeed  float64               `yaml:"aggressiveSpeed"`
	RestY            map[BossPhase]float64 `yaml:"restY"`

	// Attack sequence
	TelegraphFrames   int           `yaml:"telegraphFrames"`
	TelegraphDuration time.Duration `yaml:"telegraphDuration"` // per frame
	JumpSteps         int           `yaml:"jumpSteps"`
	JumpStepDuration  time.Duration `yaml:"jumpStepDuration"`
	ArcHeight         float64       `yaml:"arcHeight"`
	JumpTolerance     float64       `yaml:"jumpTolerance"`
	JumpMinOverlap    float64       `yaml:"jumpMinOverlap"`
	JumpDamage        int           `yaml:"jumpDamage"`
	FallStep          float64       `yaml:"fallStep"`
	FallInterval      time.Duration `yaml:"fallInterval"`
	Cooldown          time.Duration `yaml:"cooldown"`

	// Death
	DeathFrameDuration time.Duration `yaml:"deathFrameDuration"`
	RemovalAfterDeath  time.Duration `yaml:"removalAfterDeath"`
}

// ProjectileConfig contains thrown bottle configuration
type ProjectileConfig struct {
	Width       float64       `yaml:"width"`
	Height      float64       `yaml:"height"`
	OffsetRight float64       `yaml:"offsetRight"`
	OffsetLeft  float64       `yaml:"offsetLeft"`
	OffsetY     float64       `yaml:"offsetY"`
	Speed       float64       `yaml:"speed"` // px per world tick
	LaunchSpeed float64       `yaml:"launchSpeed"`
	Gravity     float64       `yaml:"gravity"`
	GroundY     float64       `yaml:"groundY"`
	Removal     time.Duration `yaml:"removal"`
}

// PickupConfig contains coin and bottle pickup configuration
type PickupConfig struct {
	CoinSize          float64       `yaml:"coinSize"`
	CoinHitbox        Insets        `yaml:"coinHitbox"`
	CoinPulse         float64       `yaml:"coinPulse"`
	CoinPulseDuration time.Duration `yaml:"coinPulseDuration"`
	BottleWidth       float64       `yaml:"bottleWidth"`
	BottleHeight      float64       `yaml:"bottleHeight"`
	BottleHitbox      Insets        `yaml:"bottleHitbox"`
	CoinsForFullBar   int           `yaml:"coinsForFullBar"`
}

// TimingConfig contains the scheduler cadences
type TimingConfig struct {
	Frame     time.Duration `yaml:"frame"`
	WorldTick time.Duration `yaml:"worldTick"`
	// Per-frame duration used to derive end screen delays from death animation frame counts
	EndScreenFrame time.Duration `yaml:"endScreenFrame"`
}

// LevelConfig contains level-wide configuration
type LevelConfig struct {
	Path               string  `yaml:"path"`
	EndX               float64 `yaml:"endX"`
	CameraOffset       float64 `yaml:"cameraOffset"`
	SegmentWidth       float64 `yaml:"segmentWidth"`
	Segments           int     `yaml:"segments"`
	CloudSpeed         float64 `yaml:"cloudSpeed"`
	CloudWidth         float64 `yaml:"cloudWidth"`
	CloudHeight        float64 `yaml:"cloudHeight"`
	ChickenMinX        float64 `yaml:"chickenMinX"`
	ChickenSpread      float64 `yaml:"chickenSpread"`
	RandomSeed         int64   `yaml:"randomSeed"`

	BackgroundSkyColor color.RGBA `yaml:"-"`
}

// StatusBarLayout positions one HUD bar in screen space
type StatusBarLayout struct {
	X, Y, W, H float64
}

// StatusBarsConfig contains HUD bar layout
type StatusBarsConfig struct {
	Health  StatusBarLayout
	Bottles StatusBarLayout
	Coins   StatusBarLayout
	Boss    StatusBarLayout
	// Bar fill smoothing duration
	Smoothing time.Duration
}

// Config holds screen configuration
type Config struct {
	Width  int
	Height int
	Title  string
}

var C *Config
var Character CharacterConfig
var Enemy EnemyConfig
var Boss BossConfig
var Projectile ProjectileConfig
var Pickup PickupConfig
var Timing TimingConfig
var Level LevelConfig
var StatusBars StatusBarsConfig

func init() {
	C = &Config{
		Width:  720,
		Height: 480,
		Title:  "Pollo",
	}

	Character = CharacterConfig{
		Width:  100,
		Height: 250,
		StartX: 100,
		StartY: 80,
		Hitbox: Insets{Top: 130, Bottom: 0, Left: 35, Right: 35},

		Speed:     5,
		JumpSpeed: 18,

		Gravity: 1.2,
		RestY:   180,

		MaxEnergy:     100,
		ContactDamage: 20,
		HurtWindow:    time.Second,
		StompBounce:   -15,
		StompGrace:    300 * time.Millisecond,

		MaxBottles: 5,

		LongIdleAfter: 4 * time.Second,
	}

	Enemy = EnemyConfig{
		Kinds: map[EnemyKind]*EnemyKindConfig{
			KindNormal: {
				Name:                 "chicken",
				Width:                60,
				Height:               60,
				Y:                    360,
				MinHorizontalOverlap: 0.2,
				MinVerticalOverlap:   0.2,
				Stompable:            true,
				ContactDamage:        true,
				MinSpeed:             0.15,
				MaxSpeed:             0.40,
				RemovalDelay:         500 * time.Millisecond,
				DeathNudge:           10,
			},
			KindSmall: {
				Name:                 "chicken_small",
				Width:                40,
				Height:               40,
				Y:                    380,
				MinHorizontalOverlap: 0.4,
				MinVerticalOverlap:   0.3,
				Stompable:            true,
				ContactDamage:        true,
				MinSpeed:             0.15,
				MaxSpeed:             0.40,
				RemovalDelay:         500 * time.Millisecond,
				DeathNudge:           10,
			},
			KindBoss: {
				Name:         "boss",
				Width:        250,
				Height:       400,
				Y:            55,
				BottleDamage: 20,
				RemovalDelay: 1000 * time.Millisecond,
			},
		},
	}

	Boss = BossConfig{
		StartX: 2500,
		Energy: 100,

		NormalMinEnergy: 50,
		ChaseMinEnergy:  30,

		BehaviorInterval: 150 * time.Millisecond,
		TriggerDistance:  150,
		PatrolMin:        2200,
		PatrolMax:        2700,
		PatrolSpeed:      3,
		ChaseSpeed:       4,
		ChaseBoost:       1.5,
		BoostBelowEnergy: 80,
		AggressiveSpeed:  8,
		RestY: map[BossPhase]float64{
			PhaseNormal:     55,
			PhaseChase:      55,
			PhaseAggressive: 55,
		},

		TelegraphFrames:   8,
		TelegraphDuration: 100 * time.Millisecond,
		JumpSteps:         20,
		JumpStepDuration:  40 * time.Millisecond,
		ArcHeight:         120,
		JumpTolerance:     10,
		JumpMinOverlap:    0.1,
		JumpDamage:        100,
		FallStep:          5,
		FallInterval:      40 * time.Millisecond,
		Cooldown:          600 * time.Millisecond,

		DeathFrameDuration: 500 * time.Millisecond,
		RemovalAfterDeath:  1000 * time.Millisecond,
	}

	Projectile = ProjectileConfig{
		Width:       50,
		Height:      60,
		OffsetRight: 100,
		OffsetLeft:  -10,
		OffsetY:     130,
		Speed:       13,
		LaunchSpeed: 18,
		Gravity:     1.2,
		GroundY:     360,
		Removal:     500 * time.Millisecond,
	}

	Pickup = PickupConfig{
		CoinSize:          100,
		CoinHitbox:        Insets{Top: 20, Bottom: 20, Left: 20, Right: 20},
		CoinPulse:         5,
		CoinPulseDuration: 240 * time.Millisecond,
		BottleWidth:       80,
		BottleHeight:      80,
		BottleHitbox:      Insets{Top: 0, Bottom: 0, Left: 20, Right: 20},
		CoinsForFullBar:   5,
	}

	Timing = TimingConfig{
		Frame:          time.Second / 60,
		WorldTick:      25 * time.Millisecond,
		EndScreenFrame: 200 * time.Millisecond,
	}

	Level = LevelConfig{
		Path:               "levels/level01.tmx",
		EndX:               2600,
		CameraOffset:       100,
		SegmentWidth:       719,
		Segments:           5,
		CloudSpeed:         0.15,
		CloudWidth:         500,
		CloudHeight:        250,
		ChickenMinX:        200,
		ChickenSpread:      2300,
		RandomSeed:         1,
		BackgroundSkyColor: color.RGBA{R: 250, G: 225, B: 170, A: 255},
	}

	StatusBars = StatusBarsConfig{
		Health:    StatusBarLayout{X: 40, Y: 0, W: 200, H: 60},
		Bottles:   StatusBarLayout{X: 40, Y: 45, W: 200, H: 60},
		Coins:     StatusBarLayout{X: 40, Y: 90, W: 200, H: 60},
		Boss:      StatusBarLayout{X: 480, Y: 0, W: 200, H: 60},
		Smoothing: 200 * time.Millisecond,
	}
}

// KindConfig returns the configuration for an enemy kind, falling back to KindNormal.
func KindConfig(kind EnemyKind) *EnemyKindConfig {
	if k, ok := Enemy.Kinds[kind]; ok {
		return k
	}
	return Enemy.Kinds[KindNormal]
}
