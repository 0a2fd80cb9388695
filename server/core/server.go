package core

import (
	"log"
	"sync"

	"github.com/leap-fish/necs/esync"
	"github.com/leap-fish/necs/esync/srvsync"
	"github.com/leap-fish/necs/router"
	"github.com/leap-fish/necs/transports"
	"github.com/yohamta/donburi"

	"github.com/fenwick/tilecollider/config"
	"github.com/fenwick/tilecollider/shared/gamemath"
	"github.com/fenwick/tilecollider/shared/leveldata"
	"github.com/fenwick/tilecollider/shared/messages"
	"github.com/fenwick/tilecollider/shared/netcomponents"
	"github.com/fenwick/tilecollider/shared/physics"
)

// Server runs the authoritative simulation: a donburi world with one entity
// per joined player, advanced by the physics engine at a fixed tick and
// synced to clients through necs.
type Server struct {
	cfg       config.Config
	world     donburi.World
	phys      *physics.World
	loop      *GameLoop
	transport *transports.WsServerTransport

	level        *leveldata.Level
	pendingLevel chan *leveldata.Level

	players    map[*router.NetworkClient]*playerState
	nextBodyID physics.BodyID
	nextSpawn  int
	mu         sync.RWMutex
}

// playerState holds per-player server-side state. The physics body is not a
// donburi component; it exists only on the server and is never synced.
type playerState struct {
	entity donburi.Entity
	id     physics.BodyID
	body   *physics.Body
	name   string
	joined bool

	// Latest input snapshot (written by onPlayerInput, read by the tick).
	input          messages.PlayerInput
	jumpWasPressed bool // previous tick, for edge detection
}

// NewServer creates a server for the given level.
func NewServer(cfg config.Config, level *leveldata.Level) *Server {
	world := donburi.NewWorld()

	s := &Server{
		cfg:          cfg,
		world:        world,
		phys:         cfg.Physics.World(cfg.Server.TickRate),
		level:        level,
		pendingLevel: make(chan *leveldata.Level, 1),
		players:      make(map[*router.NetworkClient]*playerState),
	}
	s.loop = NewGameLoop(s, cfg.Server.TickRate)

	srvsync.UseEsync(world)
	s.setupRouterCallbacks()

	return s
}

// Start begins the game loop and the WebSocket transport. Blocks until the
// transport shuts down.
func (s *Server) Start() error {
	go s.loop.Run()

	s.transport = transports.NewWsServerTransport(s.cfg.Server.Port, "", nil)
	return s.transport.Start()
}

// Stop gracefully shuts down the server.
func (s *Server) Stop() {
	s.loop.Stop()
}

// SwapLevel queues a new collider set to be installed at the next tick
// boundary. Colliders are immutable while a tick runs; the swap never races
// the simulation.
func (s *Server) SwapLevel(level *leveldata.Level) {
	select {
	case s.pendingLevel <- level:
	default:
		// A reload is already queued; drop the older one.
		select {
		case <-s.pendingLevel:
		default:
		}
		s.pendingLevel <- level
	}
}

func (s *Server) setupRouterCallbacks() {
	router.OnConnect(func(client *router.NetworkClient) {
		s.onConnect(client)
	})

	router.OnDisconnect(func(client *router.NetworkClient, err error) {
		s.onDisconnect(client, err)
	})

	router.On(func(client *router.NetworkClient, req messages.JoinRequest) {
		s.onJoinRequest(client, req)
	})

	router.On(func(client *router.NetworkClient, input messages.PlayerInput) {
		s.onPlayerInput(client, input)
	})

	router.OnError(func(client *router.NetworkClient, err error) {
		log.Printf("Client error: %v", err)
	})
}

func (s *Server) onConnect(client *router.NetworkClient) {
	log.Printf("Client connected: %s", client.Id())

	s.mu.Lock()
	s.players[client] = &playerState{}
	s.mu.Unlock()
}

func (s *Server) onJoinRequest(client *router.NetworkClient, req messages.JoinRequest) {
	if s.cfg.Server.Version != "" && req.Version != s.cfg.Server.Version {
		log.Printf("Rejecting client %s: version %q, server wants %q", client.Id(), req.Version, s.cfg.Server.Version)
		if err := client.SendMessage(messages.JoinRejected{Reason: "version mismatch"}); err != nil {
			log.Printf("Failed to send join rejection: %v", err)
		}
		return
	}

	s.mu.Lock()
	player, ok := s.players[client]
	if !ok || player.joined {
		s.mu.Unlock()
		return
	}

	spawn := s.pickSpawn()
	entity := s.world.Create(
		netcomponents.NetPosition,
		netcomponents.NetVelocity,
		netcomponents.NetBodyState,
	)
	entry := s.world.Entry(entity)
	netcomponents.NetPosition.Set(entry, &netcomponents.NetPositionData{X: spawn.X, Y: spawn.Y})
	netcomponents.NetVelocity.Set(entry, &netcomponents.NetVelocityData{})
	netcomponents.NetBodyState.Set(entry, &netcomponents.NetBodyStateData{Facing: 1})

	s.nextBodyID++
	player.entity = entity
	player.id = s.nextBodyID
	player.name = req.PlayerName
	player.joined = true
	player.body = physics.NewBody(
		gamemath.Vec{X: spawn.X, Y: spawn.Y},
		gamemath.Vec{X: s.cfg.Physics.BodyHalfWidth, Y: s.cfg.Physics.BodyHalfHeight},
	)
	levelName := s.level.Name
	s.mu.Unlock()

	if err := srvsync.NetworkSync(s.world, &entity,
		srvsync.WithInterp(netcomponents.NetPosition, netcomponents.NetVelocity),
		netcomponents.NetBodyState,
	); err != nil {
		log.Printf("Failed to setup network sync for player: %v", err)
		return
	}

	var networkID esync.NetworkId
	if nid := esync.GetNetworkId(entry); nid != nil {
		networkID = *nid
	}
	if err := client.SendMessage(messages.JoinAccepted{
		NetworkID:  networkID,
		ServerName: s.cfg.Server.Name,
		LevelName:  levelName,
		TickRate:   s.cfg.Server.TickRate,
	}); err != nil {
		log.Printf("Failed to send join acceptance: %v", err)
	}

	log.Printf("Player %q spawned for client %s at (%.0f, %.0f)", req.PlayerName, client.Id(), spawn.X, spawn.Y)
}

func (s *Server) onDisconnect(client *router.NetworkClient, err error) {
	if err != nil {
		log.Printf("Client %s disconnected with error: %v", client.Id(), err)
	} else {
		log.Printf("Client %s disconnected", client.Id())
	}

	s.mu.Lock()
	player, exists := s.players[client]
	if exists {
		delete(s.players, client)
	}
	s.mu.Unlock()

	if exists && player.joined && s.world.Valid(player.entity) {
		s.world.Remove(player.entity)
		log.Printf("Player %q removed for client %s", player.name, client.Id())
	}
}

func (s *Server) onPlayerInput(client *router.NetworkClient, input messages.PlayerInput) {
	s.mu.Lock()
	defer s.mu.Unlock()

	player, ok := s.players[client]
	if !ok || !player.joined {
		return
	}
	// Keep only the newest input; old packets can arrive out of order.
	if input.Sequence >= player.input.Sequence {
		player.input = input
	}
}

// pickSpawn returns the next spawn point round-robin, or the map center when
// the level has none. Caller holds s.mu.
func (s *Server) pickSpawn() leveldata.SpawnPoint {
	spawns := s.level.SpawnPoints
	if len(spawns) == 0 {
		return leveldata.SpawnPoint{
			X: float64(s.level.PixelWidth) / 2,
			Y: float64(s.level.PixelHeight) / 2,
		}
	}
	spawn := spawns[s.nextSpawn%len(spawns)]
	s.nextSpawn++
	return spawn
}

// PlayerCount returns the number of connected players.
func (s *Server) PlayerCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.players)
}

// World returns the ECS world.
func (s *Server) World() donburi.World {
	return s.world
}
