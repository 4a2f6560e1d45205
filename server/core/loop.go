package core

import (
	"log"
	"time"

	"github.com/flintgame/flint/shared/netconfig"
)

type GameLoop struct {
	server   *Server
	tickRate int
	stopChan chan struct{}
}

func NewGameLoop(server *Server, tickRate int) *GameLoop {
	if tickRate <= 0 {
		tickRate = netconfig.DefaultTickRate
	}
	return &GameLoop{
		server:   server,
		tickRate: tickRate,
		stopChan: make(chan struct{}),
	}
}

// StepClock spreads the fixed 60 Hz simulation steps over network ticks.
// Rates that do not divide 60 carry the remainder to later ticks, so
// simulated time keeps pace with wall time.
type StepClock struct {
	tickRate int
	carry    int
}

func NewStepClock(tickRate int) *StepClock {
	if tickRate <= 0 {
		tickRate = netconfig.DefaultTickRate
	}
	return &StepClock{tickRate: tickRate}
}

// Next returns the number of steps the coming tick covers. It can be zero
// when the tick rate is above the simulation rate.
func (c *StepClock) Next() int {
	c.carry += netconfig.SimulationRate
	steps := c.carry / c.tickRate
	c.carry -= steps * c.tickRate
	return steps
}

func (g *GameLoop) Run() {
	ticker := time.NewTicker(time.Second / time.Duration(g.tickRate))
	defer ticker.Stop()

	clock := NewStepClock(g.tickRate)
	log.Printf("[server] game loop started at %d ticks/second (%.2f steps per tick)",
		g.tickRate, float64(netconfig.SimulationRate)/float64(g.tickRate))

	for {
		select {
		case <-g.stopChan:
			log.Println("[server] game loop stopped")
			return
		case <-ticker.C:
			g.server.tick(clock.Next())
		}
	}
}

func (g *GameLoop) Stop() {
	close(g.stopChan)
}
