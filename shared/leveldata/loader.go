package leveldata

import (
	"embed"
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"github.com/lafriks/go-tiled"
)

//go:embed levels
var levelsFS embed.FS

// Embedded returns the file system holding the bundled levels.
func Embedded() fs.FS {
	return levelsFS
}

// Load parses a TMX file. It takes an fs.FS so callers can pass the embedded
// levels or os.DirFS.
func Load(fsys fs.FS, tmxPath string) (*Level, error) {
	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}

	level := &Level{
		Name:   strings.TrimSuffix(filepath.Base(tmxPath), ".tmx"),
		Width:  levelMap.Width * levelMap.TileWidth,
		Height: levelMap.Height * levelMap.TileHeight,
	}

	for _, og := range levelMap.ObjectGroups {
		switch og.Name {
		case "Enemies", "Boss":
			for _, o := range og.Objects {
				kind := o.Properties.GetString("kind")
				if kind == "" {
					kind = o.Class
				}
				spawn := EnemySpawn{
					X:     o.X,
					Y:     o.Y,
					Kind:  kind,
					Speed: o.Properties.GetFloat("speed"),
				}
				if og.Name == "Boss" {
					level.Boss = append(level.Boss, spawn)
				} else {
					level.Enemies = append(level.Enemies, spawn)
				}
			}
		case "Coins":
			level.Coins = append(level.Coins, points(og.Objects)...)
		case "Bottles":
			level.Bottles = append(level.Bottles, points(og.Objects)...)
		case "Clouds":
			level.Clouds = append(level.Clouds, points(og.Objects)...)
		case "Level":
			for _, o := range og.Objects {
				if o.Name == "LevelEnd" {
					level.EndX = o.X
				}
			}
		}
	}

	if level.EndX <= 0 {
		level.EndX = float64(level.Width)
	}
	if len(level.Boss) > 1 {
		return nil, fmt.Errorf("load TMX %s: %d boss spawns, want at most 1", tmxPath, len(level.Boss))
	}

	// Sort left-to-right for stable spawn order
	sort.SliceStable(level.Enemies, func(i, j int) bool {
		return level.Enemies[i].X < level.Enemies[j].X
	})

	return level, nil
}

func points(objects []*tiled.Object) []Point {
	out := make([]Point, 0, len(objects))
	for _, o := range objects {
		out = append(out, Point{X: o.X, Y: o.Y})
	}
	return out
}
