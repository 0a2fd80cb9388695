package core

import (
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/fenwick/tilecollider/shared/leveldata"
)

// LevelWatcher reloads the active level when its TMX file changes on disk.
// The reload is parsed off the tick goroutine and handed to the server,
// which installs it at the next tick boundary.
type LevelWatcher struct {
	watcher   *fsnotify.Watcher
	server    *Server
	assetsDir string
	active    string // stem name of the level the server runs
	closeCh   chan struct{}
}

// NewLevelWatcher watches assetsDir/levels for changes to the active level.
func NewLevelWatcher(server *Server, assetsDir, active string) (*LevelWatcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := w.Add(filepath.Join(assetsDir, "levels")); err != nil {
		_ = w.Close()
		return nil, err
	}

	lw := &LevelWatcher{
		watcher:   w,
		server:    server,
		assetsDir: assetsDir,
		active:    active,
		closeCh:   make(chan struct{}),
	}
	go lw.run()
	return lw, nil
}

func (lw *LevelWatcher) Close() error {
	close(lw.closeCh)
	return lw.watcher.Close()
}

func (lw *LevelWatcher) run() {
	// Editors fire several events per save; debounce per path.
	last := make(map[string]time.Time)

	for {
		select {
		case event, ok := <-lw.watcher.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			if strings.ToLower(filepath.Ext(event.Name)) != ".tmx" {
				continue
			}
			stem := strings.TrimSuffix(filepath.Base(event.Name), ".tmx")
			if stem != lw.active {
				continue
			}
			now := time.Now()
			if t, ok := last[event.Name]; ok && now.Sub(t) < 200*time.Millisecond {
				continue
			}
			last[event.Name] = now
			lw.reload()

		case err, ok := <-lw.watcher.Errors:
			if !ok {
				return
			}
			log.Printf("[levelwatch] watcher error: %v", err)

		case <-lw.closeCh:
			return
		}
	}
}

func (lw *LevelWatcher) reload() {
	path := filepath.Join("levels", lw.active+".tmx")
	level, err := leveldata.LoadLevel(os.DirFS(lw.assetsDir), path)
	if err != nil {
		// Keep running on the last good level.
		log.Printf("[levelwatch] reload of %s failed: %v", path, err)
		return
	}
	log.Printf("[levelwatch] reloaded %s", lw.active)
	lw.server.SwapLevel(level)
}
