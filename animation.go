package skyisles

import (
	"fmt"
	"math"
	"math/rand/v2"

	"github.com/gekko3d/skyisles/core"
	"github.com/go-gl/mathgl/mgl32"
)

type Behavior int

const (
	BehaviorIslandBob Behavior = iota
	BehaviorTreeSway
	BehaviorCrystalGlow
	BehaviorCloudDrift
	BehaviorSunOrbit
)

func (b Behavior) String() string {
	switch b {
	case BehaviorIslandBob:
		return "island_bob"
	case BehaviorTreeSway:
		return "tree_sway"
	case BehaviorCrystalGlow:
		return "crystal_glow"
	case BehaviorCloudDrift:
		return "cloud_drift"
	case BehaviorSunOrbit:
		return "sun_orbit"
	}
	return fmt.Sprintf("Behavior(%d)", int(b))
}

// AnimationParams carries the per-behavior tunables; fields a behavior does not use
// stay zero.
type AnimationParams struct {
	InitialY        float32
	BobSpeed        float32
	BobAmount       float32
	InitialRotation mgl32.Vec3 // euler XYZ, radians
	SwaySpeed       float32
	SwayAmount      float32
	DriftSpeed      float32
	InitialZ        float32
	WrapX           float32
	OrbitSpeed      float32
	OrbitRadius     float32
}

type animationEntry struct {
	target   *core.Node
	behavior Behavior
	params   AnimationParams
}

// AnimationSystem advances every registered animation once per frame. A failing
// entry is dropped on its own; the rest of the pass continues.
type AnimationSystem struct {
	scene   *core.Scene
	entries []animationEntry
	rng     *rand.Rand
	logger  Logger
}

func NewAnimationSystem(scene *core.Scene, rng *rand.Rand, logger Logger) *AnimationSystem {
	if logger == nil {
		logger = NewNopLogger()
	}
	return &AnimationSystem{
		scene:  scene,
		rng:    rng,
		logger: logger,
	}
}

func (s *AnimationSystem) Register(target *core.Node, behavior Behavior, params AnimationParams) {
	if target == nil {
		return
	}
	s.entries = append(s.entries, animationEntry{target: target, behavior: behavior, params: params})
}

func (s *AnimationSystem) Deregister(target *core.Node) {
	if target == nil {
		return
	}
	kept := s.entries[:0]
	for _, e := range s.entries {
		if e.target == target || target.IsAncestorOf(e.target) {
			continue
		}
		kept = append(kept, e)
	}
	clear(s.entries[len(kept):])
	s.entries = kept
}

func (s *AnimationSystem) Len() int { return len(s.entries) }

// Registered reports whether target has at least one animation.
func (s *AnimationSystem) Registered(target *core.Node) bool {
	for _, e := range s.entries {
		if e.target == target {
			return true
		}
	}
	return false
}

// Update advances all animations. dt and elapsed are in seconds.
func (s *AnimationSystem) Update(dt, elapsed float32) {
	// Backwards so dropping an entry does not skip the next one.
	for i := len(s.entries) - 1; i >= 0; i-- {
		e := s.entries[i]
		if e.target.Parent() == nil {
			s.drop(i)
			continue
		}
		if err := s.step(e, dt, elapsed); err != nil {
			s.logger.Errorf("animation %v on %q dropped: %v", e.behavior, e.target.Name, err)
			s.drop(i)
		}
	}
}

func (s *AnimationSystem) drop(i int) {
	s.entries = append(s.entries[:i], s.entries[i+1:]...)
}

func (s *AnimationSystem) step(e animationEntry, dt, elapsed float32) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic: %v", r)
		}
	}()

	obj := e.target
	p := e.params
	switch e.behavior {
	case BehaviorIslandBob:
		// Only top-level islands bob.
		if obj.Parent() == s.scene.Root {
			obj.Transform.Position[1] = p.InitialY + sin(elapsed*p.BobSpeed)*p.BobAmount
		}
	case BehaviorTreeSway:
		if obj.Mesh == nil {
			return fmt.Errorf("sway target has no mesh")
		}
		z := p.InitialRotation.Z() + sin(elapsed*p.SwaySpeed)*p.SwayAmount
		x := p.InitialRotation.X() + cos(elapsed*p.SwaySpeed*0.7)*p.SwayAmount*0.5
		obj.Transform.Rotation = core.EulerXYZ(x, p.InitialRotation.Y(), z)
	case BehaviorCrystalGlow:
		if obj.Mesh == nil || obj.Mesh.Material == nil {
			return fmt.Errorf("glow target has no material")
		}
		if obj.Mesh.Material.Disposed() {
			return fmt.Errorf("glow material already released")
		}
		if obj.Mesh.Material.Overlay {
			return nil
		}
		obj.Mesh.Material.Desc.EmissiveIntensity = 0.4 + sin(elapsed*1.5)*0.2
	case BehaviorCloudDrift:
		obj.Transform.Position[0] += p.DriftSpeed * dt
		wrap := p.WrapX
		if wrap <= 0 {
			wrap = 60
		}
		if obj.Transform.Position[0] > wrap || obj.Transform.Position[0] < -wrap {
			obj.Transform.Position[0] = -float32(math.Copysign(float64(wrap), float64(p.DriftSpeed)))
			obj.Transform.Position[2] = p.InitialZ + (s.rng.Float32()-0.5)*20
		}
	case BehaviorSunOrbit:
		obj.Transform.Position[0] = sin(elapsed*p.OrbitSpeed) * p.OrbitRadius
		obj.Transform.Position[2] = cos(elapsed*p.OrbitSpeed) * p.OrbitRadius
	default:
		return fmt.Errorf("unknown behavior %v", e.behavior)
	}
	return nil
}

func sin(x float32) float32 { return float32(math.Sin(float64(x))) }
func cos(x float32) float32 { return float32(math.Cos(float64(x))) }
