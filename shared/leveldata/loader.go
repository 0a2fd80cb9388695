package leveldata

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"github.com/lafriks/go-tiled"

	"github.com/fenwick/tilecollider/shared/collision"
	"github.com/fenwick/tilecollider/shared/gamemath"
)

// LoadLevel parses a TMX file into a Level: every tile placement of every
// layer is expanded into the placed colliders authored on its tileset tile,
// plus player spawn points. It takes an fs.FS so callers can pass embed.FS
// or os.DirFS.
func LoadLevel(fsys fs.FS, tmxPath string) (*Level, error) {
	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}

	tileW := float64(levelMap.TileWidth)
	tileH := float64(levelMap.TileHeight)

	level := &Level{
		Name:        strings.TrimSuffix(filepath.Base(tmxPath), ".tmx"),
		PixelWidth:  levelMap.Width * levelMap.TileWidth,
		PixelHeight: levelMap.Height * levelMap.TileHeight,
		TileWidth:   levelMap.TileWidth,
		TileHeight:  levelMap.TileHeight,
		Colliders:   NewColliderSet(tileW),
	}

	// Expand tile placements into placed colliders. Shapes stay tile-local;
	// the placement carries the tile's world offset.
	table := newShapeTable()
	for _, layer := range levelMap.Layers {
		for y := 0; y < levelMap.Height; y++ {
			for x := 0; x < levelMap.Width; x++ {
				tile := layer.Tiles[y*levelMap.Width+x]
				if tile.IsNil() {
					continue
				}
				for _, shape := range table.shapesFor(tile) {
					level.Colliders.Add(collision.Placed{
						Shape:  shape,
						Offset: gamemath.Vec{X: float64(x) * tileW, Y: float64(y) * tileH},
					})
				}
			}
		}
	}
	level.ShapesSkipped = table.skipped

	// Parse player spawn points from the PlayerSpawn object group.
	for _, og := range levelMap.ObjectGroups {
		if og.Name != "PlayerSpawn" {
			continue
		}
		for _, o := range og.Objects {
			level.SpawnPoints = append(level.SpawnPoints, SpawnPoint{
				X:     o.X,
				Y:     o.Y,
				Index: o.Properties.GetInt("spawnIndex"),
			})
		}
	}

	// Sort spawns left-to-right for consistent assignment.
	sort.Slice(level.SpawnPoints, func(i, j int) bool {
		return level.SpawnPoints[i].X < level.SpawnPoints[j].X
	})

	return level, nil
}

// LoadAllLevels discovers all .tmx files in levelsDir within fsys, loads each
// one, and returns a map keyed by stem name plus a sorted list of names.
func LoadAllLevels(fsys fs.FS, levelsDir string) (map[string]*Level, []string, error) {
	pattern := levelsDir + "/*.tmx"
	matches, err := fs.Glob(fsys, pattern)
	if err != nil {
		return nil, nil, fmt.Errorf("glob %s: %w", pattern, err)
	}
	if len(matches) == 0 {
		return nil, nil, fmt.Errorf("no .tmx files found in %s", levelsDir)
	}

	levels := make(map[string]*Level, len(matches))
	names := make([]string, 0, len(matches))

	for _, path := range matches {
		level, err := LoadLevel(fsys, path)
		if err != nil {
			return nil, nil, fmt.Errorf("load %s: %w", path, err)
		}
		levels[level.Name] = level
		names = append(names, level.Name)
	}

	sort.Strings(names)
	return levels, names, nil
}
