package core

import (
	"testing"

	"github.com/flintgame/flint/shared/ability"
	"github.com/flintgame/flint/shared/charsim"
	"github.com/flintgame/flint/shared/leveldata"
	"github.com/flintgame/flint/shared/messages"
	"github.com/flintgame/flint/shared/netcomponents"
	"github.com/flintgame/flint/shared/netconfig"
	"github.com/yohamta/donburi"
)

func newTestSim(t *testing.T) (*Simulation, donburi.World) {
	t.Helper()
	data := &leveldata.CollisionData{
		Name:       "flat",
		MapWidth:   640,
		MapHeight:  240,
		TileWidth:  16,
		TileHeight: 16,
		SpawnPoints: []leveldata.SpawnPoint{
			{X: 64, Y: 150},
			{X: 320, Y: 150},
		},
	}
	for x := 0; x < 640; x += 16 {
		data.SolidRects = append(data.SolidRects, leveldata.SolidRect{X: float64(x), Y: 208, W: 16, H: 16})
	}
	world := donburi.NewWorld()
	return NewSimulation(world, charsim.NewLevel(data), ability.DefaultConfig(), charsim.DefaultTuning()), world
}

func character(t *testing.T, world donburi.World, e donburi.Entity) netcomponents.NetCharacterData {
	t.Helper()
	if !world.Valid(e) {
		t.Fatal("entity not valid")
	}
	return *netcomponents.NetCharacter.Get(world.Entry(e))
}

func input(seq uint32, held ...netconfig.ActionID) messages.PlayerInput {
	in := messages.NewPlayerInput(seq)
	for _, a := range held {
		in.Actions[a] = true
	}
	return in
}

// land runs the simulation until every character has settled on the floor.
func land(s *Simulation) {
	s.Tick(60)
}

func TestAddPlayerUsesSpawnPoints(t *testing.T) {
	s, world := newTestSim(t)
	a := s.AddPlayer("a", "Ana")
	b := s.AddPlayer("b", "Bo")

	posA := netcomponents.NetPosition.Get(world.Entry(a))
	posB := netcomponents.NetPosition.Get(world.Entry(b))
	if posA.X != 64 || posB.X != 320 {
		t.Errorf("spawn x = %v, %v", posA.X, posB.X)
	}
	if again := s.AddPlayer("a", "Ana"); again != a {
		t.Error("adding the same id spawned a second character")
	}
	if s.PlayerCount() != 2 {
		t.Errorf("players = %d", s.PlayerCount())
	}

	c := character(t, world, a)
	if c.MaxJumpCount != 3 || c.Facing != 1 || c.StateID != netconfig.Idle {
		t.Errorf("initial character = %+v", c)
	}
}

func TestJumpEdgesAndMultiJump(t *testing.T) {
	s, world := newTestSim(t)
	e := s.AddPlayer("a", "Ana")
	land(s)

	s.ApplyInput("a", input(1, netconfig.ActionJump))
	s.Tick(1)
	if got := character(t, world, e).JumpCount; got != 1 {
		t.Fatalf("jump count = %d after first press", got)
	}

	// Still held: no new jump.
	s.ApplyInput("a", input(2, netconfig.ActionJump))
	s.Tick(1)
	if got := character(t, world, e).JumpCount; got != 1 {
		t.Fatalf("held jump re-triggered: count %d", got)
	}

	for seq := uint32(3); seq < 9; seq += 2 {
		s.ApplyInput("a", input(seq))
		s.ApplyInput("a", input(seq+1, netconfig.ActionJump))
		s.Tick(1)
	}
	c := character(t, world, e)
	if c.JumpCount != 3 || c.JumpsLeft() != 0 {
		t.Errorf("after extra presses: count %d left %d", c.JumpCount, c.JumpsLeft())
	}

	s.ApplyInput("a", input(20))
	s.Tick(240)
	if got := character(t, world, e).JumpCount; got != 0 {
		t.Errorf("landing did not reset the jump count: %d", got)
	}
}

func TestTouchStartsJump(t *testing.T) {
	s, world := newTestSim(t)
	e := s.AddPlayer("a", "Ana")
	land(s)

	in := input(1)
	in.TouchStarted = true
	s.ApplyInput("a", in)
	s.Tick(1)
	if got := character(t, world, e).JumpCount; got != 1 {
		t.Errorf("touch did not jump: count %d", got)
	}
}

func TestStaleInputDropped(t *testing.T) {
	s, world := newTestSim(t)
	e := s.AddPlayer("a", "Ana")
	land(s)

	if !s.ApplyInput("a", input(5)) {
		t.Fatal("fresh input dropped")
	}
	if s.ApplyInput("a", input(4, netconfig.ActionJump)) {
		t.Fatal("stale input accepted")
	}
	s.Tick(1)
	c := character(t, world, e)
	if c.JumpCount != 0 || c.LastSequence != 5 {
		t.Errorf("count %d last seq %d", c.JumpCount, c.LastSequence)
	}
	if s.ApplyInput("nobody", input(6)) {
		t.Error("input for an unknown player accepted")
	}
}

func TestDashCooldownOnServer(t *testing.T) {
	s, world := newTestSim(t)
	e := s.AddPlayer("a", "Ana")
	land(s)

	// Dash needs horizontal motion to pick a direction.
	s.ApplyInput("a", input(1, netconfig.ActionDash))
	s.Tick(1)
	if character(t, world, e).DashOnCooldown {
		t.Fatal("dash from standstill accepted")
	}

	s.ApplyInput("a", input(2, netconfig.ActionMoveRight))
	s.Tick(3)
	s.ApplyInput("a", input(3, netconfig.ActionMoveRight, netconfig.ActionDash))
	s.Tick(1)

	c := character(t, world, e)
	vel := netcomponents.NetVelocity.Get(world.Entry(e))
	if !c.DashOnCooldown {
		t.Fatal("dash not on cooldown")
	}
	if vel.SpeedX <= charsim.DefaultTuning().MaxWalkSpeed {
		t.Errorf("dash speed %v not above walk speed", vel.SpeedX)
	}
	if c.StateID != netconfig.Running || c.Facing != 1 {
		t.Errorf("state %v facing %d", c.StateID, c.Facing)
	}

	s.ApplyInput("a", input(4))
	s.Tick(60)
	if !character(t, world, e).DashOnCooldown {
		t.Fatal("cooldown ended early")
	}
	s.Tick(60)
	if character(t, world, e).DashOnCooldown {
		t.Fatal("cooldown did not end after two seconds")
	}
}

func TestFacingFollowsMovement(t *testing.T) {
	s, world := newTestSim(t)
	e := s.AddPlayer("a", "Ana")
	land(s)

	in := input(1)
	in.MoveAxis = -1
	s.ApplyInput("a", in)
	s.Tick(5)
	if got := character(t, world, e).Facing; got != -1 {
		t.Fatalf("facing = %d, want -1", got)
	}

	s.ApplyInput("a", input(2))
	s.Tick(60)
	c := character(t, world, e)
	if c.Facing != -1 || c.StateID != netconfig.Idle {
		t.Errorf("after stopping: facing %d state %v", c.Facing, c.StateID)
	}
}

func TestRemovePlayer(t *testing.T) {
	s, world := newTestSim(t)
	e := s.AddPlayer("a", "Ana")
	objects := len(s.level.Objects())

	if !s.RemovePlayer("a") {
		t.Fatal("remove reported no player")
	}
	if world.Valid(e) {
		t.Error("entity still valid")
	}
	if len(s.level.Objects()) != objects-1 {
		t.Error("body still in the space")
	}
	if s.RemovePlayer("a") {
		t.Error("second remove reported a player")
	}
	if _, ok := s.Entity("a"); ok {
		t.Error("entity lookup still succeeds")
	}
}

func TestStepClock(t *testing.T) {
	tests := []struct {
		rate  int
		first []int
	}{
		{20, []int{3, 3, 3}},
		{60, []int{1, 1, 1}},
		{25, []int{2, 2, 3, 2, 3}},
		{120, []int{0, 1, 0, 1}},
	}
	for _, tt := range tests {
		c := NewStepClock(tt.rate)
		for i, want := range tt.first {
			if got := c.Next(); got != want {
				t.Errorf("rate %d tick %d: steps = %d, want %d", tt.rate, i, got, want)
			}
		}
	}
}

func TestStepClockKeepsPace(t *testing.T) {
	for _, rate := range []int{7, 20, 25, 45, 60, 90, 144} {
		c := NewStepClock(rate)
		total := 0
		for i := 0; i < rate; i++ {
			total += c.Next()
		}
		if total != netconfig.SimulationRate {
			t.Errorf("rate %d: %d steps in one second, want %d", rate, total, netconfig.SimulationRate)
		}
	}

	c := NewStepClock(0)
	total := 0
	for i := 0; i < netconfig.DefaultTickRate; i++ {
		total += c.Next()
	}
	if total != netconfig.SimulationRate {
		t.Errorf("default rate: %d steps in one second", total)
	}
}
