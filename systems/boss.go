package systems

import (
	"math"

	"github.com/automoto/pollo/components"
	cfg "github.com/automoto/pollo/config"
	"github.com/automoto/pollo/engine"
	"github.com/automoto/pollo/shared/gamemath"
	"github.com/yohamta/donburi"
	dmath "github.com/yohamta/donburi/features/math"
)

// BossPhaseFor selects the boss phase from its remaining energy.
func BossPhaseFor(energy int) cfg.BossPhase {
	switch {
	case energy >= cfg.Boss.NormalMinEnergy:
		return cfg.PhaseNormal
	case energy >= cfg.Boss.ChaseMinEnergy:
		return cfg.PhaseChase
	default:
		return cfg.PhaseAggressive
	}
}

// UpdateBoss is the boss behavior tick. The phase is recomputed from energy
// every tick, then the boss either starts an attack or moves.
func UpdateBoss(ecs *engine.ECS) {
	e, ok := bossEntry(ecs)
	if !ok {
		return
	}
	health := components.Health.Get(e)
	if health.Dead {
		return
	}
	boss := components.Boss.Get(e)
	boss.Phase = BossPhaseFor(health.Energy)

	if boss.Attacking || boss.Settling {
		return
	}

	char, ok := characterEntry(ecs)
	if !ok || components.Health.Get(char).Dead {
		setBossAnimation(ecs, e, cfg.Alert)
		return
	}

	obj := components.Object.Get(e)
	charObj := components.Object.Get(char)
	distance := math.Abs(obj.X - charObj.X)

	if distance < cfg.Boss.TriggerDistance || gamemath.Overlaps(components.BoxOf(e), components.BoxOf(char)) {
		startBossAttack(ecs, e)
		return
	}

	moveBoss(e, boss, health.Energy, charObj.X)
	setBossAnimation(ecs, e, cfg.Walk)
}

func moveBoss(e *donburi.Entry, boss *components.BossData, energy int, charX float64) {
	obj := components.Object.Get(e)
	sprite := components.Sprite.Get(e)

	switch boss.Phase {
	case cfg.PhaseNormal:
		if boss.PatrolDir == 0 {
			boss.PatrolDir = -1
		}
		obj.X += boss.PatrolDir * cfg.Boss.PatrolSpeed
		if obj.X <= cfg.Boss.PatrolMin {
			obj.X = cfg.Boss.PatrolMin
			boss.PatrolDir = 1
		} else if obj.X >= cfg.Boss.PatrolMax {
			obj.X = cfg.Boss.PatrolMax
			boss.PatrolDir = -1
		}
		sprite.Mirrored = boss.PatrolDir > 0
		return
	case cfg.PhaseChase:
		speed := cfg.Boss.ChaseSpeed
		if energy < cfg.Boss.BoostBelowEnergy {
			speed *= cfg.Boss.ChaseBoost
		}
		pursue(obj, sprite, charX, speed)
	case cfg.PhaseAggressive:
		pursue(obj, sprite, charX, cfg.Boss.AggressiveSpeed)
	}
}

func pursue(obj *components.ObjectData, sprite *components.SpriteData, targetX, speed float64) {
	center := obj.X + obj.W/2
	if targetX < center {
		obj.X = math.Max(obj.X-speed, targetX-obj.W/2)
		sprite.Mirrored = false
	} else {
		obj.X = math.Min(obj.X+speed, targetX-obj.W/2)
		sprite.Mirrored = true
	}
}

// setBossAnimation switches the idle/walk loop without cutting a hurt
// animation short.
func setBossAnimation(ecs *engine.ECS, e *donburi.Entry, state cfg.StateID) {
	animData := components.Animation.Get(e)
	if animData.CurrentState == cfg.Hurt && animData.CurrentAnimation != nil && !animData.CurrentAnimation.Done() {
		return
	}
	setAnimation(ecs, e, state)
}

func startBossAttack(ecs *engine.ECS, e *donburi.Entry) {
	boss := components.Boss.Get(e)
	boss.Attacking = true
	boss.Stage = cfg.StageTelegraph
	boss.Step = 0
	setAnimation(ecs, e, cfg.Attack)
	components.Timers.Get(e).Start(components.TimerBossStep, ecs.Now()+cfg.Boss.TelegraphDuration)
}

// UpdateBossSequence advances the attack: telegraph, jump, settle and
// cooldown. Each stage waits on the boss's own step timer.
func UpdateBossSequence(ecs *engine.ECS) {
	e, ok := bossEntry(ecs)
	if !ok {
		return
	}
	boss := components.Boss.Get(e)
	if boss.Stage == cfg.StageNone {
		return
	}
	timers := components.Timers.Get(e)
	now := ecs.Now()

	// A dead boss only falls back to the ground
	if components.Health.Get(e).Dead {
		if boss.Stage == cfg.StageSettle && timers.Fired(components.TimerBossStep, now) {
			settleBoss(ecs, e)
		}
		return
	}

	if boss.Attacking {
		animData := components.Animation.Get(e)
		if animData.CurrentState == cfg.Hurt && animData.CurrentAnimation != nil && animData.CurrentAnimation.Done() {
			setAnimation(ecs, e, cfg.Attack)
		}
	}

	char, hasChar := characterEntry(ecs)
	charAlive := hasChar && !components.Health.Get(char).Dead

	if !charAlive && (boss.Stage == cfg.StageTelegraph || boss.Stage == cfg.StageJump) {
		abortBossAttack(ecs, e)
		return
	}

	if !timers.Fired(components.TimerBossStep, now) {
		return
	}

	obj := components.Object.Get(e)
	switch boss.Stage {
	case cfg.StageTelegraph:
		boss.Step++
		if boss.Step < cfg.Boss.TelegraphFrames {
			timers.Start(components.TimerBossStep, now+cfg.Boss.TelegraphDuration)
			return
		}
		charObj := components.Object.Get(char)
		boss.Start = dmath.Vec2{X: obj.X, Y: obj.Y}
		boss.Target = dmath.Vec2{
			X: charObj.X + charObj.W/2 - obj.W/2,
			Y: charObj.Y + charObj.H - obj.H,
		}
		boss.Jump = gamemath.NewJumpTween(boss.Start.X, boss.Start.Y, boss.Target.X, boss.Target.Y,
			cfg.Boss.ArcHeight, cfg.Boss.JumpSteps)
		boss.Stage = cfg.StageJump
		boss.Step = 0
		timers.Start(components.TimerBossStep, now+cfg.Boss.JumpStepDuration)

	case cfg.StageJump:
		x, y, done := boss.Jump.Step()
		obj.X, obj.Y = x, y
		boss.Step++
		if !done {
			timers.Start(components.TimerBossStep, now+cfg.Boss.JumpStepDuration)
			return
		}
		boss.Jump = nil
		if gamemath.LooseOverlap(components.BoxOf(e), components.BoxOf(char), cfg.Boss.JumpTolerance, cfg.Boss.JumpMinOverlap) {
			DamageCharacterFull(ecs, char, cfg.Boss.JumpDamage)
		}
		startSettle(ecs, e)

	case cfg.StageSettle:
		settleBoss(ecs, e)

	case cfg.StageCooldown:
		boss.Attacking = false
		boss.Stage = cfg.StageNone
		boss.Step = 0
		setBossAnimation(ecs, e, cfg.Alert)
	}
}

// settleBoss drops the boss one fall step toward its resting height, then
// moves on to the cooldown, or ends the sequence if no attack is running.
func settleBoss(ecs *engine.ECS, e *donburi.Entry) {
	boss := components.Boss.Get(e)
	obj := components.Object.Get(e)
	timers := components.Timers.Get(e)
	now := ecs.Now()

	restY := cfg.Boss.RestY[boss.Phase]
	obj.Y = gamemath.Approach(obj.Y, restY, cfg.Boss.FallStep)
	if obj.Y != restY {
		timers.Start(components.TimerBossStep, now+cfg.Boss.FallInterval)
		return
	}
	boss.Settling = false
	if boss.Attacking {
		boss.Stage = cfg.StageCooldown
		timers.Start(components.TimerBossStep, now+cfg.Boss.Cooldown)
		return
	}
	boss.Stage = cfg.StageNone
}

func startSettle(ecs *engine.ECS, e *donburi.Entry) {
	boss := components.Boss.Get(e)
	boss.Stage = cfg.StageSettle
	boss.Settling = true
	components.Timers.Get(e).Start(components.TimerBossStep, ecs.Now()+cfg.Boss.FallInterval)
}

// abortBossAttack ends the attack when the character dies mid-sequence. An
// airborne boss still falls back to its resting height.
func abortBossAttack(ecs *engine.ECS, e *donburi.Entry) {
	boss := components.Boss.Get(e)
	boss.Attacking = false
	boss.Jump = nil
	boss.Step = 0
	components.Timers.Get(e).Cancel(components.TimerBossStep)
	setAnimation(ecs, e, cfg.Alert)

	if components.Object.Get(e).Y != cfg.Boss.RestY[boss.Phase] {
		startSettle(ecs, e)
		return
	}
	boss.Stage = cfg.StageNone
	boss.Settling = false
}

// DamageBoss is the only way the boss loses energy. It is a no-op once the
// boss is dead.
func DamageBoss(ecs *engine.ECS, e *donburi.Entry) {
	health := components.Health.Get(e)
	if health.Dead {
		return
	}
	enemy := components.Enemy.Get(e)
	boss := components.Boss.Get(e)

	damage := cfg.KindConfig(cfg.KindBoss).BottleDamage
	if enemy.Rules != nil && enemy.Rules.BottleDamage > 0 {
		damage = enemy.Rules.BottleDamage
	}

	health.Energy = gamemath.ClampEnergy(health.Energy-damage, health.Max)
	health.LastHit = ecs.Now()
	SetBar(ecs, cfg.BarBoss, percentOf(health.Energy, health.Max))

	if health.Energy > 0 {
		PlaySFX(ecs, cfg.SoundHurt)
		// An attack keeps its timing; UpdateBossSequence switches back to
		// the attack animation once the hurt one finishes.
		setAnimation(ecs, e, cfg.Hurt)
		if animData := components.Animation.Get(e); animData.CurrentState == cfg.Hurt && animData.CurrentAnimation != nil {
			animData.CurrentAnimation.Restart()
		}
		return
	}

	health.Dead = true
	enemy.IgnoreCollisions = true
	boss.Attacking = false
	boss.Settling = false
	boss.Stage = cfg.StageNone
	boss.Jump = nil
	boss.Step = 0
	components.Timers.Get(e).CancelAll()
	if components.Object.Get(e).Y != cfg.Boss.RestY[boss.Phase] {
		startSettle(ecs, e)
	}

	PlaySFX(ecs, cfg.SoundVictory)
	StopLoop(ecs, cfg.SoundMusic)

	state := getOrCreateGameState(ecs)
	state.BossDefeated = true
	state.Victory = true

	setAnimation(ecs, e, cfg.Die)
	deathAnimation := cfg.Boss.DeathFrameDuration * 3
	if anim := components.Animation.Get(e).CurrentAnimation; anim != nil && components.Animation.Get(e).CurrentState == cfg.Die {
		deathAnimation = anim.Duration()
	}
	scheduleRemoval(ecs, e, deathAnimation+cfg.Boss.RemovalAfterDeath)
}
