package config

// StateID identifies an animation/behavior state of an actor
type StateID int

const (
	StateNone StateID = iota

	// Character
	Idle
	LongIdle
	Walk
	Jump
	Hurt
	Die

	// Enemies
	Alert
	Attack

	// Projectiles and pickups
	Rotate
	Splash
	Static
)

var stateNames = map[StateID]string{
	StateNone: "none",
	Idle:      "idle",
	LongIdle:  "long_idle",
	Walk:      "walk",
	Jump:      "jump",
	Hurt:      "hurt",
	Die:       "die",
	Alert:     "alert",
	Attack:    "attack",
	Rotate:    "rotate",
	Splash:    "splash",
	Static:    "static",
}

func (s StateID) String() string {
	if name, ok := stateNames[s]; ok {
		return name
	}
	return "unknown"
}

// EnemyKind replaces runtime type checks on enemies. Values match the
// "kind" property used in level files.
type EnemyKind string

const (
	KindNormal EnemyKind = "normal"
	KindSmall  EnemyKind = "small"
	KindBoss   EnemyKind = "boss"
)

// BossPhase is derived from the boss's remaining energy
type BossPhase int

const (
	PhaseNormal BossPhase = iota
	PhaseChase
	PhaseAggressive
)

func (p BossPhase) String() string {
	switch p {
	case PhaseNormal:
		return "normal"
	case PhaseChase:
		return "chase"
	case PhaseAggressive:
		return "aggressive"
	}
	return "unknown"
}

// BossStage is a step of the boss attack sequence
type BossStage int

const (
	StageNone BossStage = iota
	StageTelegraph
	StageJump
	StageSettle
	StageCooldown
)

// GameStateID is the outcome state of a running level
type GameStateID int

const (
	GamePlaying GameStateID = iota
	GameOver
	GameVictory
	GameHalted
)

// Category selects ground and landing rules in the physics step
type Category int

const (
	CategoryCharacter Category = iota
	CategoryEnemy
	CategoryProjectile
)

// PickupKind identifies a collectible
type PickupKind int

const (
	PickupCoin PickupKind = iota
	PickupBottle
)

// BarKind identifies a HUD status bar
type BarKind int

const (
	BarHealth BarKind = iota
	BarBottles
	BarCoins
	BarBoss
)
