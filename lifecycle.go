package skyisles

import (
	"fmt"

	"github.com/gekko3d/skyisles/core"
	"github.com/google/uuid"
)

// Lifecycle creates and destroys placed entities. It is the only code that mutates
// the registry and the entity part of the scene graph.
type Lifecycle struct {
	scene    *core.Scene
	registry *Registry
	factory  Factory
	animator Animator
	logger   Logger
}

func NewLifecycle(scene *core.Scene, registry *Registry, factory Factory, animator Animator, logger Logger) *Lifecycle {
	if logger == nil {
		logger = NewNopLogger()
	}
	return &Lifecycle{
		scene:    scene,
		registry: registry,
		factory:  factory,
		animator: animator,
		logger:   logger,
	}
}

// Create builds an entity of kind at pose, attaches it under parent (nil means the
// scene root) and registers it. pose is in the parent's frame. Islands always attach
// to the root and cache their world bounds right after attachment.
func (l *Lifecycle) Create(kind Kind, pose Pose, parent *Entity) *Entity {
	if kind == KindIsland {
		parent = nil
	}
	if parent != nil && (parent.Kind != KindIsland || parent.Removed()) {
		l.logger.Warnf("cannot attach %v to %v, using scene root", kind, parent)
		parent = nil
	}

	built := l.factory.Construct(kind, pose)
	e := &Entity{
		ID:   uuid.New(),
		Kind: kind,
		Node: built.Node,
	}

	if parent != nil {
		parent.Node.Add(e.Node)
		parent.addChild(e)
	} else {
		l.scene.Add(e.Node)
	}

	switch kind {
	case KindIsland:
		e.Island = &IslandData{Bounds: e.Node.WorldBounds()}
	case KindTree:
		e.Tree = built.Tree
		if e.Tree == nil {
			e.Tree = &TreeData{}
		}
	case KindRock:
		e.Rock = built.Rock
		if e.Rock == nil {
			e.Rock = &RockData{}
		}
	default:
		panic(fmt.Sprintf("unknown entity kind %v", kind))
	}

	for _, a := range built.Animations {
		l.animator.Register(a.Target, a.Behavior, a.Params)
	}
	l.registry.Add(e)

	l.logger.Debugf("created %v at %v under %v", e, pose.Position, parentLabel(parent))
	return e
}

// Remove destroys e. Islands first remove their trees and rocks, children before the
// island. Removing an entity that is already gone is a no-op.
func (l *Lifecycle) Remove(e *Entity) {
	if e == nil || e.removed {
		return
	}

	switch e.Kind {
	case KindIsland:
		for _, child := range e.Children() {
			l.Remove(child)
		}
	case KindTree, KindRock:
	default:
		panic(fmt.Sprintf("unknown entity kind %v", e.Kind))
	}

	l.animator.Deregister(e.Node)
	e.Node.Detach()
	e.Node.Dispose()
	l.registry.Remove(e)
	if e.parent != nil {
		e.parent.removeChild(e)
	}
	e.removed = true

	l.logger.Debugf("removed %v", e)
}

func parentLabel(parent *Entity) string {
	if parent == nil {
		return core.RootName
	}
	return parent.String()
}
