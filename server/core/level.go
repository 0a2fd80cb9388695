package core

import (
	"fmt"
	"log"
	"os"

	"github.com/fenwick/tilecollider/shared/leveldata"
)

// LoadAllServerLevels loads all .tmx levels from the given assets directory,
// returning the level map keyed by stem name plus a sorted name list.
func LoadAllServerLevels(assetsDir string) (map[string]*leveldata.Level, []string, error) {
	levels, names, err := leveldata.LoadAllLevels(os.DirFS(assetsDir), "levels")
	if err != nil {
		return nil, nil, fmt.Errorf("load all levels: %w", err)
	}

	for _, name := range names {
		level := levels[name]
		log.Printf("Loaded level %s: %d placed colliders, %d spawn points, %dx%d map",
			name, level.Colliders.Len(), len(level.SpawnPoints), level.PixelWidth, level.PixelHeight)
		if level.ShapesSkipped > 0 {
			log.Printf("Level %s: %d collider shapes skipped during load", name, level.ShapesSkipped)
		}
	}

	return levels, names, nil
}

// installLevel swaps the active collider set. Called from the game loop
// between ticks only.
func (s *Server) installLevel(level *leveldata.Level) {
	s.mu.Lock()
	s.level = level
	s.mu.Unlock()
	log.Printf("Installed level %s: %d placed colliders", level.Name, level.Colliders.Len())
}
