package config

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// overrideFile mirrors the tuning file layout. Enemy kinds are decoded as
// raw nodes so a partial entry only touches the fields it names.
type overrideFile struct {
	Character  *CharacterConfig        `yaml:"character"`
	Enemies    map[EnemyKind]yaml.Node `yaml:"enemies"`
	Boss       *BossConfig             `yaml:"boss"`
	Projectile *ProjectileConfig       `yaml:"projectile"`
	Pickup     *PickupConfig           `yaml:"pickup"`
	Timing     *TimingConfig           `yaml:"timing"`
	Level      *LevelConfig            `yaml:"level"`
}

// LoadOverrides applies a YAML tuning document on top of the current
// configuration. Nothing is applied if the document is invalid.
func LoadOverrides(r io.Reader) error {
	character := Character
	boss := Boss
	boss.RestY = make(map[BossPhase]float64, len(Boss.RestY))
	for k, v := range Boss.RestY {
		boss.RestY[k] = v
	}
	projectile := Projectile
	pickup := Pickup
	timing := Timing
	level := Level

	file := overrideFile{
		Character:  &character,
		Boss:       &boss,
		Projectile: &projectile,
		Pickup:     &pickup,
		Timing:     &timing,
		Level:      &level,
	}

	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&file); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		return fmt.Errorf("decode overrides: %w", err)
	}

	kinds := make(map[EnemyKind]*EnemyKindConfig, len(Enemy.Kinds))
	for kind, k := range Enemy.Kinds {
		cp := *k
		kinds[kind] = &cp
	}
	for kind, node := range file.Enemies {
		target, ok := kinds[kind]
		if !ok {
			return fmt.Errorf("decode overrides: unknown enemy kind %q", kind)
		}
		if err := node.Decode(target); err != nil {
			return fmt.Errorf("decode overrides for %s: %w", kind, err)
		}
	}

	if err := validate(&character, &boss, &timing); err != nil {
		return err
	}

	Character = character
	Enemy.Kinds = kinds
	Boss = boss
	Projectile = projectile
	Pickup = pickup
	Timing = timing
	Level = level
	return nil
}

// LoadOverridesFile reads and applies a YAML tuning file.
func LoadOverridesFile(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open overrides %s: %w", path, err)
	}
	defer f.Close()

	if err := LoadOverrides(f); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	return nil
}

func validate(c *CharacterConfig, b *BossConfig, t *TimingConfig) error {
	if t.Frame <= 0 || t.WorldTick <= 0 || b.BehaviorInterval <= 0 {
		return errors.New("overrides: cadences must be positive")
	}
	if c.MaxEnergy <= 0 || b.Energy <= 0 {
		return errors.New("overrides: energy must be positive")
	}
	if b.ChaseMinEnergy > b.NormalMinEnergy {
		return errors.New("overrides: chase threshold above normal threshold")
	}
	if b.JumpSteps <= 0 {
		return errors.New("overrides: boss jump needs at least one step")
	}
	return nil
}
