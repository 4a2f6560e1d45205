package scenes

import (
	"image/color"
	"log"
	"sync"

	"github.com/flintgame/flint/assets"
	"github.com/flintgame/flint/components"
	cfg "github.com/flintgame/flint/config"
	"github.com/flintgame/flint/systems"
	"github.com/flintgame/flint/systems/factory"
	"github.com/flintgame/flint/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// WorldScene is local single-player: the game mode's pawn on one level.
type WorldScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	mode         GameMode
	levelName    string
	once         sync.Once
	failed       bool
}

// NewWorldScene plays levelName, or the first level when it is empty.
func NewWorldScene(sc SceneChanger, mode GameMode, levelName string) *WorldScene {
	return &WorldScene{sceneChanger: sc, mode: mode, levelName: levelName}
}

func (ws *WorldScene) Update() {
	ws.once.Do(ws.configure)
	if ws.failed {
		ws.sceneChanger.ChangeScene(NewMenuScene(ws.sceneChanger))
		return
	}

	ws.ecs.Update()

	if systems.GetOrCreatePause(ws.ecs).ExitRequested {
		ws.sceneChanger.ChangeScene(NewMenuScene(ws.sceneChanger))
	}
}

func (ws *WorldScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if ws.ecs == nil {
		return
	}
	ws.ecs.Draw(screen)
}

func (ws *WorldScene) configure() {
	// Decode everything up front so the first jump doesn't hitch.
	systems.PreloadAllSFX()
	assets.PreloadAnimations(cfg.Flint.SpriteKey, cfg.Flint.FrameWidth, cfg.Flint.FrameHeight)

	level, err := assets.LoadLevel(ws.levelName)
	if err != nil {
		log.Printf("[world] %v", err)
		ws.failed = true
		return
	}

	ecs := ecs.NewECS(donburi.NewWorld())

	// Audio runs first, even when paused for menu sounds
	ecs.AddSystem(systems.UpdateAudio)

	// Systems that always run
	ecs.AddSystem(systems.UpdateInput)
	ecs.AddSystem(systems.UpdatePause)
	ecs.AddSystem(systems.UpdateDebugToggle)

	// Order matters: requests, then platforms, then the body step, then timers.
	ecs.AddSystem(systems.WithGameplayChecks(systems.UpdateCharacters))
	ecs.AddSystem(systems.WithGameplayChecks(systems.UpdateObjects))
	ecs.AddSystem(systems.WithGameplayChecks(systems.UpdatePhysics))
	ecs.AddSystem(systems.WithGameplayChecks(systems.UpdateTimers))
	ecs.AddSystem(systems.WithGameplayChecks(systems.UpdateAnimations))
	ecs.AddSystem(systems.WithGameplayChecks(systems.UpdateCamera))

	ecs.AddRenderer(cfg.Default, systems.DrawLevel)
	ecs.AddRenderer(cfg.Default, systems.DrawPlatforms)
	ecs.AddRenderer(cfg.Default, systems.DrawCharacters)
	ecs.AddRenderer(cfg.Default, systems.DrawHUD)
	ecs.AddRenderer(cfg.Default, systems.DrawDebug)
	ecs.AddRenderer(cfg.Default, systems.DrawPause)

	ws.ecs = ecs

	factory.CreateLevel(ecs, level)

	pawn := ws.mode.DefaultPawn(ecs, 0)
	pawn.AddComponent(tags.LocalPlayer)
	components.Character.Get(pawn).Local = 0

	// Start the camera on the pawn instead of panning in from the origin.
	obj := components.Object.Get(pawn)
	factory.CreateCamera(ecs, obj.X+obj.W/2, obj.Y+obj.H/2)

	log.Printf("[world] playing %s as %s", level.Name, ws.mode.Name)
}
