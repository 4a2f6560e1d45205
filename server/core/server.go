package core

import (
	"log"
	"sync"

	"github.com/flintgame/flint/shared/ability"
	"github.com/flintgame/flint/shared/charsim"
	"github.com/flintgame/flint/shared/messages"
	"github.com/flintgame/flint/shared/netcomponents"
	"github.com/leap-fish/necs/esync"
	"github.com/leap-fish/necs/esync/srvsync"
	"github.com/leap-fish/necs/router"
	"github.com/leap-fish/necs/transports"
	"github.com/yohamta/donburi"
)

// Config holds the server start-up options.
type Config struct {
	TickRate int
	Name     string
	// Version is the client version required to join. Empty accepts any.
	Version string
	Level   *charsim.Level
}

// Server accepts websocket clients and runs their characters.
type Server struct {
	cfg       Config
	world     donburi.World
	sim       *Simulation
	loop      *GameLoop
	transport *transports.WsServerTransport

	// mu guards sim and world. Router callbacks run on necs goroutines,
	// the simulation on the game loop goroutine.
	mu sync.Mutex
}

// NewServer creates a new game server
func NewServer(cfg Config) *Server {
	world := donburi.NewWorld()

	s := &Server{
		cfg:   cfg,
		world: world,
		sim:   NewSimulation(world, cfg.Level, ability.DefaultConfig(), charsim.DefaultTuning()),
	}
	s.loop = NewGameLoop(s, cfg.TickRate)

	srvsync.UseEsync(world)
	s.setupRouterCallbacks()

	return s
}

// Start begins the server on the given port. It blocks while the transport
// is running.
func (s *Server) Start(port uint) error {
	go s.loop.Run()

	s.transport = transports.NewWsServerTransport(port, "", nil)
	return s.transport.Start()
}

// Stop halts the game loop.
func (s *Server) Stop() {
	s.loop.Stop()
}

func (s *Server) setupRouterCallbacks() {
	router.OnConnect(func(client *router.NetworkClient) {
		log.Printf("[server] client connected: %s", client.Id())
	})

	router.OnDisconnect(func(client *router.NetworkClient, err error) {
		s.onDisconnect(client, err)
	})

	router.On(func(client *router.NetworkClient, req messages.JoinRequest) {
		s.onJoinRequest(client, req)
	})

	router.On(func(client *router.NetworkClient, input messages.PlayerInput) {
		s.mu.Lock()
		s.sim.ApplyInput(client.Id(), input)
		s.mu.Unlock()
	})

	router.OnError(func(client *router.NetworkClient, err error) {
		log.Printf("[server] client error: %v", err)
	})
}

func (s *Server) onJoinRequest(client *router.NetworkClient, req messages.JoinRequest) {
	if reason := s.checkJoin(req); reason != "" {
		log.Printf("[server] rejecting %s (%q): %s", client.Id(), req.PlayerName, reason)
		if err := client.SendMessage(messages.JoinRejected{Reason: reason}); err != nil {
			log.Printf("[server] send join rejection: %v", err)
		}
		return
	}

	s.mu.Lock()
	entity := s.sim.AddPlayer(client.Id(), req.PlayerName)
	err := srvsync.NetworkSync(s.world, &entity,
		srvsync.WithInterp(netcomponents.NetPosition, netcomponents.NetVelocity),
		netcomponents.NetCharacter,
	)
	var netID esync.NetworkId
	if err == nil {
		if nid := esync.GetNetworkId(s.world.Entry(entity)); nid != nil {
			netID = *nid
		}
	}
	s.mu.Unlock()

	if err != nil {
		log.Printf("[server] network sync for %s: %v", client.Id(), err)
		s.mu.Lock()
		s.sim.RemovePlayer(client.Id())
		s.mu.Unlock()
		return
	}

	err = client.SendMessage(messages.JoinAccepted{
		NetworkID:  netID,
		ServerName: s.cfg.Name,
		TickRate:   s.cfg.TickRate,
		Level:      s.cfg.Level.Data.Name,
	})
	if err != nil {
		log.Printf("[server] send join accepted: %v", err)
		return
	}
	log.Printf("[server] %q joined as %s (network id %d)", req.PlayerName, client.Id(), netID)
}

// checkJoin returns a rejection reason, or "" if the request is acceptable.
func (s *Server) checkJoin(req messages.JoinRequest) string {
	if s.cfg.Version != "" && req.Version != s.cfg.Version {
		return "version mismatch: server requires " + s.cfg.Version
	}
	return ""
}

func (s *Server) onDisconnect(client *router.NetworkClient, err error) {
	if err != nil {
		log.Printf("[server] client %s disconnected with error: %v", client.Id(), err)
	} else {
		log.Printf("[server] client %s disconnected", client.Id())
	}

	s.mu.Lock()
	removed := s.sim.RemovePlayer(client.Id())
	s.mu.Unlock()
	if removed {
		log.Printf("[server] character removed for client %s", client.Id())
	}
}

// tick advances the simulation by one network tick and pushes a snapshot.
func (s *Server) tick(steps int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.sim.Tick(steps)
	if err := srvsync.DoSync(); err != nil {
		log.Printf("[server] sync error: %v", err)
	}
}

// World returns the ECS world
func (s *Server) World() donburi.World {
	return s.world
}

// PlayerCount returns the number of connected players
func (s *Server) PlayerCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sim.PlayerCount()
}
