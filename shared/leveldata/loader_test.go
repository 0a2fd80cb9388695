package leveldata

import (
	"testing"
	"testing/fstest"

	"github.com/fenwick/tilecollider/shared/collision"
	"github.com/fenwick/tilecollider/shared/gamemath"
)

// A 4x3 map with an embedded tileset exercising every authored shape kind:
// tile 0 = full solid rectangle, tile 1 = half-height rectangle + ellipse,
// tile 2 = triangle polygon, tile 3 = no colliders.
const testTMX = `<?xml version="1.0" encoding="UTF-8"?>
<map version="1.10" orientation="orthogonal" renderorder="right-down" width="4" height="3" tilewidth="16" tileheight="16" infinite="0">
 <tileset firstgid="1" name="terrain" tilewidth="16" tileheight="16" tilecount="4" columns="2">
  <tile id="0">
   <objectgroup draworder="index" id="1">
    <object id="1" x="0" y="0" width="16" height="16"/>
   </objectgroup>
  </tile>
  <tile id="1">
   <objectgroup draworder="index" id="1">
    <object id="1" x="0" y="8" width="16" height="8"/>
    <object id="2" x="4" y="0" width="8" height="8">
     <ellipse/>
    </object>
   </objectgroup>
  </tile>
  <tile id="2">
   <objectgroup draworder="index" id="1">
    <object id="1" x="0" y="16">
     <polygon points="0,0 16,0 16,-16"/>
    </object>
   </objectgroup>
  </tile>
 </tileset>
 <layer id="1" name="ground" width="4" height="3">
  <data encoding="csv">
0,0,0,0,
0,2,0,0,
1,1,4,3
</data>
 </layer>
 <objectgroup id="2" name="PlayerSpawn">
  <object id="10" x="24" y="16">
   <properties>
    <property name="spawnIndex" type="int" value="0"/>
   </properties>
  </object>
  <object id="11" x="8" y="16">
   <properties>
    <property name="spawnIndex" type="int" value="1"/>
   </properties>
  </object>
 </objectgroup>
</map>
`

func testFS() fstest.MapFS {
	return fstest.MapFS{
		"levels/arena.tmx": &fstest.MapFile{Data: []byte(testTMX)},
	}
}

func TestLoadLevel(t *testing.T) {
	level, err := LoadLevel(testFS(), "levels/arena.tmx")
	if err != nil {
		t.Fatalf("LoadLevel: %v", err)
	}

	if level.Name != "arena" {
		t.Errorf("Name = %q, want %q", level.Name, "arena")
	}
	if level.PixelWidth != 64 || level.PixelHeight != 48 {
		t.Errorf("pixel size = %dx%d, want 64x48", level.PixelWidth, level.PixelHeight)
	}

	// Placements: gid 2 at (1,1) carries two shapes, gid 1 at (0,2) and
	// (1,2) one each, gid 3 at (3,2) one triangle, gid 4 at (2,2) none.
	if got := level.Colliders.Len(); got != 5 {
		t.Errorf("placed colliders = %d, want 5", got)
	}
	if level.ShapesSkipped != 0 {
		t.Errorf("ShapesSkipped = %d, want 0", level.ShapesSkipped)
	}

	// Spawns are sorted left-to-right regardless of authoring order.
	if len(level.SpawnPoints) != 2 {
		t.Fatalf("spawn points = %d, want 2", len(level.SpawnPoints))
	}
	if level.SpawnPoints[0].X != 8 || level.SpawnPoints[0].Index != 1 {
		t.Errorf("first spawn = %+v, want X=8 Index=1", level.SpawnPoints[0])
	}
}

// The solid tile at grid (0,2) must collide with a body standing on it, and
// the same tile-local shape placed at (1,2) must collide one tile over.
// This is the world-offset translation contract.
func TestLoadLevelPlacedOffsets(t *testing.T) {
	level, err := LoadLevel(testFS(), "levels/arena.tmx")
	if err != nil {
		t.Fatalf("LoadLevel: %v", err)
	}

	onFirst := collision.AABB{Pos: gamemath.Vec{X: 8, Y: 40}, Half: gamemath.Vec{X: 2, Y: 2}}
	onSecond := collision.AABB{Pos: gamemath.Vec{X: 24, Y: 40}, Half: gamemath.Vec{X: 2, Y: 2}}
	offMap := collision.AABB{Pos: gamemath.Vec{X: 56, Y: 8}, Half: gamemath.Vec{X: 2, Y: 2}}

	for _, tc := range []struct {
		name string
		box  collision.AABB
		want bool
	}{
		{"on first solid tile", onFirst, true},
		{"on second solid tile", onSecond, true},
		{"empty corner", offMap, false},
	} {
		hit := false
		for _, placed := range level.Colliders.Near(tc.box) {
			if placed.TestBox(tc.box) {
				hit = true
				break
			}
		}
		if hit != tc.want {
			t.Errorf("%s: collision = %v, want %v", tc.name, hit, tc.want)
		}
	}
}

func TestLoadAllLevels(t *testing.T) {
	fsys := testFS()
	fsys["levels/pit.tmx"] = &fstest.MapFile{Data: []byte(testTMX)}

	levels, names, err := LoadAllLevels(fsys, "levels")
	if err != nil {
		t.Fatalf("LoadAllLevels: %v", err)
	}
	if len(levels) != 2 {
		t.Fatalf("levels = %d, want 2", len(levels))
	}
	if len(names) != 2 || names[0] != "arena" || names[1] != "pit" {
		t.Fatalf("names = %v, want [arena pit]", names)
	}
}

func TestLoadAllLevelsEmptyDir(t *testing.T) {
	fsys := fstest.MapFS{"levels/readme.txt": &fstest.MapFile{Data: []byte("no maps")}}
	if _, _, err := LoadAllLevels(fsys, "levels"); err == nil {
		t.Fatalf("expected an error for a directory without .tmx files")
	}
}
