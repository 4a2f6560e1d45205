package scenes

import (
	"image/color"
	"log"
	"sync"

	"github.com/flintgame/flint/assets"
	"github.com/flintgame/flint/components"
	"github.com/flintgame/flint/network"
	"github.com/flintgame/flint/shared/netcomponents"
	"github.com/flintgame/flint/systems"
	"github.com/flintgame/flint/systems/factory"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/leap-fish/necs/esync"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	cfg "github.com/flintgame/flint/config"
)

// NetworkedScene renders the server's world. Every character, the local one
// included, is drawn from snapshots.
type NetworkedScene struct {
	ecsWorld     *ecs.ECS
	sceneChanger SceneChanger
	netClient    *network.Client
	once         sync.Once
	presentIDs   map[esync.NetworkId]bool
}

func NewNetworkedScene(sc SceneChanger, client *network.Client) *NetworkedScene {
	return &NetworkedScene{
		sceneChanger: sc,
		netClient:    client,
		presentIDs:   make(map[esync.NetworkId]bool),
	}
}

func (ns *NetworkedScene) Update() {
	ns.once.Do(ns.configure)

	state := ns.netClient.State()
	if state == network.StateDisconnected || state == network.StateError {
		log.Printf("[networked] connection %s, returning to menu", state)
		ns.leave()
		return
	}

	if snap := ns.netClient.LatestSnapshot(); snap != nil {
		ns.applySnapshot(*snap)
	}

	ns.ecsWorld.Update()

	if systems.GetOrCreatePause(ns.ecsWorld).ExitRequested {
		ns.leave()
	}
}

func (ns *NetworkedScene) leave() {
	ns.netClient.Disconnect()
	ns.sceneChanger.ChangeScene(NewMenuScene(ns.sceneChanger))
}

func (ns *NetworkedScene) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)

	if ns.ecsWorld == nil {
		return
	}
	ns.ecsWorld.Draw(screen)
}

func (ns *NetworkedScene) configure() {
	systems.PreloadAllSFX()
	assets.PreloadAnimations(cfg.Flint.SpriteKey, cfg.Flint.FrameWidth, cfg.Flint.FrameHeight)

	ns.ecsWorld = ecs.NewECS(donburi.NewWorld())

	// Load the level the server is running. Platforms animate locally.
	level, err := assets.LoadLevel(ns.netClient.Level())
	if err != nil {
		log.Printf("[networked] %v, falling back to the first level", err)
		level = assets.MustLoadLevel("")
	}
	factory.CreateLevel(ns.ecsWorld, level)
	spawn := level.Data.Spawn(0)
	factory.CreateCamera(ns.ecsWorld, spawn.X, spawn.Y)

	sendFn := func(msg any) error {
		if ns.netClient.State() != network.StateJoinedGame {
			return nil
		}
		return ns.netClient.SendMessage(msg)
	}
	localNetID := func() esync.NetworkId {
		return ns.netClient.NetworkID()
	}

	ns.ecsWorld.AddSystem(systems.UpdateAudio)
	ns.ecsWorld.AddSystem(systems.UpdateInput)
	ns.ecsWorld.AddSystem(systems.UpdatePause)
	ns.ecsWorld.AddSystem(systems.UpdateDebugToggle)
	ns.ecsWorld.AddSystem(systems.NewNetworkInputSystem(sendFn))
	ns.ecsWorld.AddSystem(systems.UpdateObjects)
	ns.ecsWorld.AddSystem(systems.NewNetInterpSystem(ns.netClient.TickRate))
	ns.ecsWorld.AddSystem(systems.UpdateNetAnimations)
	ns.ecsWorld.AddSystem(systems.NewNetCameraSystem(localNetID))

	ns.ecsWorld.AddRenderer(cfg.Default, systems.DrawLevel)
	ns.ecsWorld.AddRenderer(cfg.Default, systems.DrawPlatforms)
	ns.ecsWorld.AddRenderer(cfg.Default, systems.DrawNetworkedCharacters)
	ns.ecsWorld.AddRenderer(cfg.Default, systems.DrawNetworkHUD)
	ns.ecsWorld.AddRenderer(cfg.Default, systems.DrawDebug)
	ns.ecsWorld.AddRenderer(cfg.Default, systems.DrawPause)

	log.Printf("[networked] joined %s on %s", ns.netClient.ServerName(), level.Name)
}

func (ns *NetworkedScene) applySnapshot(snapshot esync.WorldSnapshot) {
	world := ns.ecsWorld.World
	myNetID := ns.netClient.NetworkID()

	clear(ns.presentIDs)

	for _, ent := range snapshot {
		ns.presentIDs[ent.Id] = true

		var compData []any
		for _, componentBytes := range ent.State {
			instance, err := esync.Mapper.Deserialize(componentBytes)
			if err != nil {
				continue
			}
			compData = append(compData, instance)
		}

		entity := esync.FindByNetworkId(world, ent.Id)
		if !world.Valid(entity) {
			entity = world.Create(componentTypesFromInstances(compData)...)

			entry := world.Entry(entity)
			entry.AddComponent(esync.NetworkIdComponent)
			esync.NetworkIdComponent.SetValue(entry, ent.Id)

			initNetCharacter(entry)
		}

		entry := world.Entry(entity)
		for _, data := range compData {
			switch v := data.(type) {
			case netcomponents.NetPositionData:
				ensureComponent(entry, netcomponents.NetPosition)
				systems.SetInterpTarget(entry, v.X, v.Y)
			case netcomponents.NetCharacterData:
				v.IsLocal = ent.Id == myNetID
				ensureComponent(entry, netcomponents.NetCharacter)
				netcomponents.NetCharacter.SetValue(entry, v)
			case netcomponents.NetVelocityData:
				ensureComponent(entry, netcomponents.NetVelocity)
				netcomponents.NetVelocity.SetValue(entry, v)
			}
		}
	}

	esync.NetworkEntityQuery.Each(world, func(entry *donburi.Entry) {
		id := esync.GetNetworkId(entry)
		if id == nil {
			return
		}
		if !ns.presentIDs[*id] {
			entry.Remove()
		}
	})
}

// initNetCharacter attaches Animation and NetInterp components to a
// replicated character.
func initNetCharacter(entry *donburi.Entry) {
	entry.AddComponent(components.Animation)
	components.Animation.Set(entry, factory.GenerateAnimations(cfg.Flint.SpriteKey, cfg.Flint.FrameWidth, cfg.Flint.FrameHeight))

	entry.AddComponent(components.NetInterp)
}

func componentTypesFromInstances(instances []any) []donburi.IComponentType {
	var ctypes []donburi.IComponentType
	for _, data := range instances {
		switch data.(type) {
		case netcomponents.NetPositionData:
			ctypes = append(ctypes, netcomponents.NetPosition)
		case netcomponents.NetVelocityData:
			ctypes = append(ctypes, netcomponents.NetVelocity)
		case netcomponents.NetCharacterData:
			ctypes = append(ctypes, netcomponents.NetCharacter)
		}
	}
	return ctypes
}

func ensureComponent(entry *donburi.Entry, c donburi.IComponentType) {
	if !entry.HasComponent(c) {
		entry.AddComponent(c)
	}
}
