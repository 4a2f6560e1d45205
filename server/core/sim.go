package core

import (
	"github.com/flintgame/flint/shared/ability"
	"github.com/flintgame/flint/shared/charsim"
	"github.com/flintgame/flint/shared/messages"
	"github.com/flintgame/flint/shared/netcomponents"
	"github.com/flintgame/flint/shared/netconfig"
	"github.com/flintgame/flint/shared/timers"
	"github.com/yohamta/donburi"
)

// player is the server-side state of one connected character. It is never
// synced; the replicated view lives in the entity's net components.
type player struct {
	id     string
	name   string
	entity donburi.Entity

	body    *charsim.Body
	ability *ability.State
	timers  *timers.Scheduler

	input   messages.PlayerInput
	lastSeq uint32

	// Edges seen since the last simulation step.
	jumpPressed  bool
	jumpReleased bool
	dashPressed  bool
}

// Simulation runs every character of one level at the fixed 60 Hz rate.
// It is not safe for concurrent use; Server serialises access.
type Simulation struct {
	world  donburi.World
	level  *charsim.Level
	cfg    ability.Config
	tuning charsim.Tuning

	players   map[string]*player
	order     []*player
	nextSpawn int
}

func NewSimulation(world donburi.World, level *charsim.Level, cfg ability.Config, tuning charsim.Tuning) *Simulation {
	return &Simulation{
		world:   world,
		level:   level,
		cfg:     cfg,
		tuning:  tuning,
		players: make(map[string]*player),
	}
}

// AddPlayer spawns a character for id at the next spawn point and returns
// its entity. Adding an id twice returns the existing entity.
func (s *Simulation) AddPlayer(id, name string) donburi.Entity {
	if p, ok := s.players[id]; ok {
		return p.entity
	}

	body := s.level.SpawnBody(s.nextSpawn, s.tuning, "player")
	s.nextSpawn++
	tm := timers.New()
	p := &player{
		id:      id,
		name:    name,
		body:    body,
		ability: ability.New(s.cfg, body, tm),
		timers:  tm,
		input:   messages.NewPlayerInput(0),
	}
	body.Object.Data = p

	p.entity = s.world.Create(
		netcomponents.NetPosition,
		netcomponents.NetVelocity,
		netcomponents.NetCharacter,
	)
	s.players[id] = p
	s.order = append(s.order, p)
	s.writeComponents(p)
	return p.entity
}

// RemovePlayer despawns id's character. It reports whether one existed.
func (s *Simulation) RemovePlayer(id string) bool {
	p, ok := s.players[id]
	if !ok {
		return false
	}
	delete(s.players, id)
	for i, o := range s.order {
		if o == p {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	p.timers.Clear()
	p.body.Remove()
	if s.world.Valid(p.entity) {
		s.world.Remove(p.entity)
	}
	return true
}

// Entity returns the entity of id's character.
func (s *Simulation) Entity(id string) (donburi.Entity, bool) {
	var e donburi.Entity
	p, ok := s.players[id]
	if ok {
		e = p.entity
	}
	return e, ok
}

// PlayerCount returns the number of spawned characters.
func (s *Simulation) PlayerCount() int {
	return len(s.order)
}

// ApplyInput records the latest held controls of id and the press/release
// edges against the previous input. Out-of-order inputs are dropped.
func (s *Simulation) ApplyInput(id string, in messages.PlayerInput) bool {
	p, ok := s.players[id]
	if !ok {
		return false
	}
	if in.Sequence != 0 && in.Sequence <= p.lastSeq {
		return false
	}

	jumpNow := in.Held(netconfig.ActionJump)
	jumpBefore := p.input.Held(netconfig.ActionJump)
	if (jumpNow && !jumpBefore) || in.TouchStarted {
		p.jumpPressed = true
	}
	if (!jumpNow && jumpBefore) || in.TouchStopped {
		p.jumpReleased = true
	}
	if in.Held(netconfig.ActionDash) && !p.input.Held(netconfig.ActionDash) {
		p.dashPressed = true
	}

	p.input = in
	p.lastSeq = in.Sequence
	return true
}

// Tick runs steps fixed simulation steps and refreshes the replicated
// components.
func (s *Simulation) Tick(steps int) {
	dt := 1.0 / netconfig.SimulationRate
	for i := 0; i < steps; i++ {
		s.step(dt)
	}
	for _, p := range s.order {
		s.writeComponents(p)
	}
}

func (s *Simulation) step(dt float64) {
	s.level.Update(dt)

	for _, p := range s.order {
		if p.jumpPressed {
			if p.ability.RequestJump() {
				p.body.Jump()
			}
		}
		// A press and release inside one tick still leaves a short hop.
		if p.jumpReleased {
			p.ability.ReleaseJump()
		}
		if p.dashPressed {
			p.ability.RequestDash()
		}
		p.jumpPressed, p.jumpReleased, p.dashPressed = false, false, false

		res := p.body.Step(charsim.Intent{
			MoveAxis:  moveAxis(p.input),
			Extending: p.ability.JumpExtending(),
		})
		if res.Landed {
			p.ability.OnLanded()
		}
		p.ability.Tick(dt)
		p.timers.Advance(dt)
		p.ability.UpdateFacing(p.body.Velocity())
	}
}

// moveAxis prefers the analog axis and falls back to the digital actions.
func moveAxis(in messages.PlayerInput) float64 {
	if in.MoveAxis != 0 {
		return in.MoveAxis
	}
	axis := 0.0
	if in.Held(netconfig.ActionMoveLeft) {
		axis--
	}
	if in.Held(netconfig.ActionMoveRight) {
		axis++
	}
	return axis
}

func (s *Simulation) writeComponents(p *player) {
	if !s.world.Valid(p.entity) {
		return
	}
	entry := s.world.Entry(p.entity)
	vel := p.body.Velocity()

	netcomponents.NetPosition.SetValue(entry, netcomponents.NetPositionData{
		X: p.body.Object.X,
		Y: p.body.Object.Y,
	})
	netcomponents.NetVelocity.SetValue(entry, netcomponents.NetVelocityData{
		SpeedX: vel.X,
		SpeedY: vel.Y,
	})
	netcomponents.NetCharacter.SetValue(entry, netcomponents.NetCharacterData{
		StateID:        netconfig.StateFromAnim(ability.SelectAnimation(vel)),
		Facing:         int(p.ability.Facing()),
		JumpCount:      p.ability.CurrentJumpCount(),
		MaxJumpCount:   p.ability.MaxJumpCount(),
		DashOnCooldown: p.ability.DashOnCooldown(),
		LastSequence:   p.lastSeq,
	})
}
