package skyisles

import (
	"github.com/gekko3d/skyisles/core"
	"github.com/go-gl/mathgl/mgl32"
)

// Preview is the ghost shown under the pointer before a placement is confirmed.
// It is never registered and never a pick target.
type Preview struct {
	Kind Kind
	Node *core.Node

	normal  *core.Material
	blocked *core.Material
	legal   bool
	target  *Entity
}

// NewPreview wraps a ghost subtree. It starts hidden and illegal.
func NewPreview(kind Kind, node *core.Node, normal, blocked *core.Material) *Preview {
	node.SetMaterial(normal)
	node.Visible = false
	return &Preview{
		Kind:    kind,
		Node:    node,
		normal:  normal,
		blocked: blocked,
	}
}

func (p *Preview) Visible() bool { return p.Node.Visible }
func (p *Preview) Legal() bool   { return p.legal }

// Target is the island under the pointer for tree and rock previews.
func (p *Preview) Target() *Entity { return p.target }

func (p *Preview) Position() mgl32.Vec3 { return p.Node.Transform.Position }

func (p *Preview) showAt(position mgl32.Vec3) {
	p.Node.Transform.Position = position
	p.Node.Visible = true
}

func (p *Preview) hide() {
	p.Node.Visible = false
	p.legal = false
	p.target = nil
}

func (p *Preview) setLegal(legal bool) {
	p.legal = legal
	if legal {
		p.Node.SetMaterial(p.normal)
	} else {
		p.Node.SetMaterial(p.blocked)
	}
}

// WorldBounds is the ghost's current footprint.
func (p *Preview) WorldBounds() core.AABB {
	return p.Node.WorldBounds()
}

func (p *Preview) destroy() {
	p.Node.Detach()
	p.Node.Dispose()
	p.normal.Dispose()
	p.blocked.Dispose()
	p.target = nil
}
