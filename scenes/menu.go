package scenes

import (
	"image/color"
	"sync"

	cfg "github.com/flintgame/flint/config"
	"github.com/flintgame/flint/network"
	"github.com/flintgame/flint/systems"
	"github.com/flintgame/flint/ui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// MenuScene is the title screen. It starts local play or joins a server.
type MenuScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	menuUI       *ui.MenuUI
	netClient    *network.Client
	once         sync.Once

	play bool
	exit bool
}

// NewMenuScene creates a new menu scene
func NewMenuScene(sc SceneChanger) *MenuScene {
	return &MenuScene{sceneChanger: sc}
}

func (ms *MenuScene) Update() {
	ms.once.Do(ms.configure)

	ms.ecs.Update()
	ms.menuUI.Update()

	switch {
	case ms.exit:
		ms.disconnect()
		ms.sceneChanger.Quit()
		return
	case ms.play:
		ms.disconnect()
		ms.sceneChanger.ChangeScene(NewWorldScene(ms.sceneChanger, FlintGameMode(), cfg.Debug.Level))
		return
	}

	if ms.netClient == nil {
		return
	}
	switch ms.netClient.State() {
	case network.StateJoinedGame:
		ms.menuUI.SetStatus("Joined! Loading level...")
		client := ms.netClient
		ms.netClient = nil
		ms.sceneChanger.ChangeScene(NewNetworkedScene(ms.sceneChanger, client))

	case network.StateError:
		errMsg := "Connection failed"
		if err := ms.netClient.LastError(); err != nil {
			errMsg = err.Error()
		}
		ms.menuUI.SetStatus(errMsg)
		ms.disconnect()

	case network.StateConnecting:
		ms.menuUI.SetStatus("Connecting...")

	case network.StateConnected:
		ms.menuUI.SetStatus("Connected, joining game...")

	case network.StateDisconnected:
		ms.menuUI.SetStatus("Disconnected")
		ms.disconnect()
	}
}

func (ms *MenuScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if ms.menuUI == nil {
		return
	}
	ms.menuUI.UI.Draw(screen)
}

func (ms *MenuScene) configure() {
	ms.ecs = ecs.NewECS(donburi.NewWorld())
	ms.ecs.AddSystem(systems.UpdateAudio)

	ms.menuUI = ui.NewMenuUI(cfg.Network.DefaultAddress,
		func() {
			systems.PlaySFX(ms.ecs, cfg.SoundMenuSelect)
			ms.play = true
		},
		ms.join,
		func() { ms.exit = true },
	)
}

func (ms *MenuScene) join(address string) {
	systems.PlaySFX(ms.ecs, cfg.SoundMenuSelect)
	ms.disconnect()

	ms.menuUI.SetStatus("Connecting...")
	ms.menuUI.SetConnecting(true)

	ms.netClient = network.NewClient()
	ms.netClient.Connect(address, cfg.Network.GameVersion, cfg.Network.PlayerName)
}

func (ms *MenuScene) disconnect() {
	if ms.netClient != nil {
		ms.netClient.Disconnect()
		ms.netClient = nil
	}
	ms.menuUI.SetConnecting(false)
}
