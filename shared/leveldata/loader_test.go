package leveldata

import (
	"testing"
	"testing/fstest"
)

func TestLoadEmbeddedLevel(t *testing.T) {
	level, err := Load(Embedded(), "levels/level01.tmx")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if level.Name != "level01" {
		t.Fatalf("name = %q", level.Name)
	}
	if level.EndX != 2600 {
		t.Fatalf("end x = %v, want 2600", level.EndX)
	}
	if len(level.Boss) != 1 || level.Boss[0].Kind != "boss" {
		t.Fatalf("boss spawns = %+v", level.Boss)
	}
	if len(level.Enemies) != 8 || len(level.Coins) != 10 || len(level.Bottles) != 8 {
		t.Fatalf("enemies %d coins %d bottles %d", len(level.Enemies), len(level.Coins), len(level.Bottles))
	}
	for i := 1; i < len(level.Enemies); i++ {
		if level.Enemies[i-1].X > level.Enemies[i].X {
			t.Fatalf("enemies not sorted by x")
		}
	}
	last := level.Enemies[len(level.Enemies)-1]
	if last.Kind != "small" || last.Speed != 0.3 {
		t.Fatalf("last enemy = %+v", last)
	}
}

func TestLoadRejectsTwoBosses(t *testing.T) {
	tmx := `<?xml version="1.0" encoding="UTF-8"?>
<map version="1.10" orientation="orthogonal" renderorder="right-down" width="10" height="10" tilewidth="48" tileheight="48" infinite="0">
 <objectgroup id="1" name="Boss">
  <object id="1" x="100" y="55" width="250" height="400"/>
  <object id="2" x="600" y="55" width="250" height="400"/>
 </objectgroup>
</map>
`
	fsys := fstest.MapFS{"two.tmx": {Data: []byte(tmx)}}
	if _, err := Load(fsys, "two.tmx"); err == nil {
		t.Fatalf("expected error for two bosses")
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(fstest.MapFS{}, "missing.tmx"); err == nil {
		t.Fatalf("expected error")
	}
}
