package core

import (
	"github.com/google/uuid"
)

// MaterialDesc is the renderer-facing description of a surface.
type MaterialDesc struct {
	BaseColor         [4]uint8 // RGBA
	Emissive          [4]uint8 // RGBA
	EmissiveIntensity float32
	Roughness         float32
	Metalness         float32
	Transparency      float32
	FlatShading       bool
	DoubleSided       bool
}

func NewMaterialDesc(baseColor [4]uint8, emissive [4]uint8) MaterialDesc {
	return MaterialDesc{
		BaseColor:   baseColor,
		Emissive:    emissive,
		Roughness:   1.0,
		Metalness:   0.0,
		FlatShading: true,
	}
}

// RGBA splits a 0xRRGGBB color and appends alpha.
func RGBA(hex uint32, alpha uint8) [4]uint8 {
	return [4]uint8{uint8(hex >> 16), uint8(hex >> 8), uint8(hex), alpha}
}

// Material is a GPU material buffer owned by exactly one mesh subtree.
type Material struct {
	ID       uuid.UUID
	Desc     MaterialDesc
	// Overlay marks a temporary editor stand-in. Animations leave it alone.
	Overlay  bool
	pool     *ResourcePool
	disposed bool
}

// Clone allocates an independent material with the same description.
func (m *Material) Clone() *Material {
	return m.pool.NewMaterial(m.Desc)
}

func (m *Material) Disposed() bool { return m.disposed }

// Dispose releases the material. Repeated calls are no-ops.
func (m *Material) Dispose() {
	if m == nil || m.disposed {
		return
	}
	m.disposed = true
	m.pool.release(resourceMaterial, m.ID)
}
