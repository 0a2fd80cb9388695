package core

import (
	"log"
	"time"

	"github.com/leap-fish/necs/esync/srvsync"
)

// GameLoop drives the server at a fixed tick rate. The simulation is invoked
// synchronously from this goroutine only; a tick always finishes before the
// next one starts.
type GameLoop struct {
	server   *Server
	tickRate int
	stopChan chan struct{}
}

func NewGameLoop(server *Server, tickRate int) *GameLoop {
	return &GameLoop{
		server:   server,
		tickRate: tickRate,
		stopChan: make(chan struct{}),
	}
}

func (g *GameLoop) Run() {
	ticker := time.NewTicker(time.Second / time.Duration(g.tickRate))
	defer ticker.Stop()

	log.Printf("Game loop started at %d ticks/second", g.tickRate)

	for {
		select {
		case <-g.stopChan:
			log.Println("Game loop stopped")
			return
		case <-ticker.C:
			g.tick()
		}
	}
}

func (g *GameLoop) Stop() {
	close(g.stopChan)
}

func (g *GameLoop) tick() {
	// Install a queued level reload between ticks, never during one.
	select {
	case level := <-g.server.pendingLevel:
		g.server.installLevel(level)
	default:
	}

	g.server.updatePhysics()

	if err := srvsync.DoSync(); err != nil {
		log.Printf("Sync error: %v", err)
	}
}
