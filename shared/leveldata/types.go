// Package leveldata parses TMX level files into spawn lists. It has no
// dependencies on ebitengine, donburi, or resolv — pure data only.
package leveldata

// Level is the immutable description of one level.
type Level struct {
	Name    string
	EndX    float64
	Width   int
	Height  int
	Enemies []EnemySpawn
	Boss    []EnemySpawn
	Coins   []Point
	Bottles []Point
	Clouds  []Point
}

// EnemySpawn places one enemy. Speed 0 means pick a random drift speed.
type EnemySpawn struct {
	X, Y  float64
	Kind  string
	Speed float64
}

// Point is a spawn position.
type Point struct {
	X, Y float64
}
