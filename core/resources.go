package core

import (
	"sync"

	"github.com/google/uuid"
)

type resourceKind int

const (
	resourceGeometry resourceKind = iota
	resourceMaterial
)

// ResourcePool hands out geometry and material handles and tracks which are still
// live. A renderer keys its GPU buffers by the handle IDs; OnRelease lets it free them.
type ResourcePool struct {
	mu        sync.Mutex
	geometry  map[uuid.UUID]struct{}
	materials map[uuid.UUID]struct{}

	OnRelease func(id uuid.UUID)
}

func NewResourcePool() *ResourcePool {
	return &ResourcePool{
		geometry:  make(map[uuid.UUID]struct{}),
		materials: make(map[uuid.UUID]struct{}),
	}
}

func (p *ResourcePool) NewGeometry(desc GeometryDesc) *Geometry {
	g := &Geometry{
		ID:     uuid.New(),
		Desc:   desc,
		Bounds: desc.Bounds(),
		pool:   p,
	}
	p.mu.Lock()
	p.geometry[g.ID] = struct{}{}
	p.mu.Unlock()
	return g
}

func (p *ResourcePool) NewMaterial(desc MaterialDesc) *Material {
	m := &Material{
		ID:   uuid.New(),
		Desc: desc,
		pool: p,
	}
	p.mu.Lock()
	p.materials[m.ID] = struct{}{}
	p.mu.Unlock()
	return m
}

// Live returns the number of geometry and material handles not yet disposed.
func (p *ResourcePool) Live() (geometry, materials int) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.geometry), len(p.materials)
}

func (p *ResourcePool) release(kind resourceKind, id uuid.UUID) {
	if p == nil {
		return
	}
	p.mu.Lock()
	switch kind {
	case resourceGeometry:
		delete(p.geometry, id)
	case resourceMaterial:
		delete(p.materials, id)
	}
	hook := p.OnRelease
	p.mu.Unlock()

	if hook != nil {
		hook(id)
	}
}
