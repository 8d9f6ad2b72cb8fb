package skyisles

import (
	"math"
	"math/rand/v2"
	"time"

	"github.com/gekko3d/skyisles/core"
	"github.com/go-gl/mathgl/mgl32"
)

const seedTreeAttempts = 20

// World wires the editor and its collaborators around one scene.
type World struct {
	Config     Config
	Pool       *core.ResourcePool
	Scene      *core.Scene
	Camera     *core.Camera
	Registry   *Registry
	Factory    *ProceduralFactory
	Animations *AnimationSystem
	Lifecycle  *Lifecycle
	Orbit      *OrbitCamera
	Editor     *Editor
	Clouds     []*core.Node

	logger Logger
	rng    *rand.Rand
}

// NewWorld builds an empty world in View mode. viewport may be nil.
func NewWorld(cfg Config, logger Logger, viewport Viewport) *World {
	if logger == nil {
		logger = NewNopLogger()
	}
	seed := cfg.Seed.RandomSeed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	rng := rand.New(rand.NewPCG(seed, seed^0x9E3779B97F4A7C15))

	pool := core.NewResourcePool()
	scene := core.NewScene(pool, cfg.Editor.GroundLevel, cfg.Editor.GroundSize)

	camera := core.NewCamera()
	camera.FovY = cfg.Camera.FovY
	camera.Near = cfg.Camera.Near
	camera.Far = cfg.Camera.Far
	camera.Aspect = float32(cfg.Window.Width) / float32(cfg.Window.Height)
	orbit := NewOrbitCamera(cfg.Camera)
	orbit.Apply(camera)

	registry := NewRegistry(cfg.Editor.GridCellSize)
	factory := NewProceduralFactory(pool, rng, cfg)
	animations := NewAnimationSystem(scene, rng, logger)
	lifecycle := NewLifecycle(scene, registry, factory, animations, logger)

	w := &World{
		Config:     cfg,
		Pool:       pool,
		Scene:      scene,
		Camera:     camera,
		Registry:   registry,
		Factory:    factory,
		Animations: animations,
		Lifecycle:  lifecycle,
		Orbit:      orbit,
		logger:     logger,
		rng:        rng,
	}
	w.Editor = NewEditor(EditorContext{
		Scene:     scene,
		Registry:  registry,
		Lifecycle: lifecycle,
		Factory:   factory,
		Camera:    camera,
		Navigator: orbit,
		Viewport:  viewport,
		Logger:    logger,
		Config:    cfg,
	})
	return w
}

// Populate adds the starting island with its trees, the clouds and the sun orbit.
func (w *World) Populate() {
	seed := w.Config.Seed
	if seed.InitialIsland {
		island := w.Lifecycle.Create(KindIsland, PoseAt(mgl32.Vec3{0, w.Config.Editor.IslandBaseLevel, 0}), nil)
		planted := 0
		for i := 0; i < seed.InitialTrees*seedTreeAttempts && planted < seed.InitialTrees; i++ {
			local := w.randomIslandSpot()
			if TreeTooClose(local, island, w.Config.Editor.TreeMinSpacing) {
				continue
			}
			w.Lifecycle.Create(KindTree, PoseAt(local), island)
			planted++
		}
		if planted < seed.InitialTrees {
			w.logger.Warnf("planted %d of %d initial trees", planted, seed.InitialTrees)
		}
	}

	for i := 0; i < seed.Clouds; i++ {
		cloud := w.Factory.CloudGroup(true)
		w.Scene.Add(cloud.Node)
		for _, a := range cloud.Animations {
			w.Animations.Register(a.Target, a.Behavior, a.Params)
		}
		w.Clouds = append(w.Clouds, cloud.Node)
	}

	w.Animations.Register(w.Scene.Sun, BehaviorSunOrbit, AnimationParams{
		OrbitSpeed:  w.Config.Animation.SunOrbitSpeed,
		OrbitRadius: w.Config.Animation.SunOrbitRange,
	})

	w.logger.Infof("scene populated: %d islands, %d trees, %d clouds",
		len(w.Registry.Islands()), len(w.Registry.Trees()), len(w.Clouds))
}

// randomIslandSpot picks a point on the island top within 80% of its radius.
func (w *World) randomIslandSpot() mgl32.Vec3 {
	angle := w.rng.Float64() * 2 * math.Pi
	radius := w.rng.Float64() * float64(islandTopDesc.RadiusTop) * 0.8
	return mgl32.Vec3{
		float32(math.Cos(angle) * radius),
		islandTopDesc.Height/2 + w.Config.Editor.TreeClearance,
		float32(math.Sin(angle) * radius),
	}
}

// ApplyConfig pushes reloaded tunables into the running world. Window, ground and
// seeding settings only take effect on restart.
func (w *World) ApplyConfig(cfg Config) {
	w.Config.Editor.TreeClearance = cfg.Editor.TreeClearance
	w.Config.Editor.RockClearance = cfg.Editor.RockClearance
	w.Config.Editor.TreeMinSpacing = cfg.Editor.TreeMinSpacing
	w.Config.Editor.IslandBaseLevel = cfg.Editor.IslandBaseLevel
	w.Config.Palette = cfg.Palette
	w.Config.Animation = cfg.Animation
	w.Config.Camera.MoveSpeed = cfg.Camera.MoveSpeed
	w.Config.Camera.OrbitSpeed = cfg.Camera.OrbitSpeed
	w.Config.Debug = cfg.Debug

	w.Editor.ApplyConfig(w.Config)
	w.Factory.Configure(w.Config)
	w.Orbit.MoveSpeed = cfg.Camera.MoveSpeed
	w.Orbit.OrbitSpeed = cfg.Camera.OrbitSpeed
	w.logger.SetDebug(cfg.Debug)
	w.logger.Infof("config applied")
}

// WorldModule creates the World and exposes its parts as resources.
type WorldModule struct {
	Config   Config
	Viewport Viewport
	// Empty skips Populate.
	Empty bool
}

func (m WorldModule) Install(app *App, cmd *Commands) {
	w := NewWorld(m.Config, app.Logger(), m.Viewport)
	if !m.Empty {
		w.Populate()
	}
	cmd.AddResources(w, w.Scene, w.Camera, w.Registry, w.Editor, w.Animations, w.Orbit)
}

type AnimationModule struct{}

func (m AnimationModule) Install(app *App, cmd *Commands) {
	app.UseSystem(
		System(animationSystem).
			InStage(PostUpdate),
	)
}

func animationSystem(t *Time, animations *AnimationSystem) {
	animations.Update(t.Dt, t.Elapsed)
}

// ConfigReloadModule applies configs received on Updates at the start of a frame.
type ConfigReloadModule struct {
	Updates <-chan Config
}

type configUpdates struct {
	ch <-chan Config
}

func (m ConfigReloadModule) Install(app *App, cmd *Commands) {
	cmd.AddResources(&configUpdates{ch: m.Updates})
	app.UseSystem(
		System(configReloadSystem).
			InStage(PreUpdate),
	)
}

func configReloadSystem(updates *configUpdates, w *World) {
	for {
		select {
		case cfg, ok := <-updates.ch:
			if !ok {
				updates.ch = nil
				return
			}
			w.ApplyConfig(cfg)
		default:
			return
		}
	}
}
