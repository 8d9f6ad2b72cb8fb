package skyisles

import (
	"encoding/binary"
	"math"
	"slices"

	"github.com/cespare/xxhash/v2"
	"github.com/gekko3d/skyisles/core"
	"github.com/google/uuid"
)

// SpatialHashGrid buckets ids by the grid cells their bounds cover. It only returns
// broadphase candidates; callers run the exact test.
type SpatialHashGrid struct {
	cellSize float32
	cells    map[uint64][]uuid.UUID
	bounds   map[uuid.UUID]core.AABB
}

func NewSpatialHashGrid(cellSize float32) *SpatialHashGrid {
	return &SpatialHashGrid{
		cellSize: cellSize,
		cells:    make(map[uint64][]uuid.UUID),
		bounds:   make(map[uuid.UUID]core.AABB),
	}
}

func (grid *SpatialHashGrid) Clear() {
	clear(grid.cells)
	clear(grid.bounds)
}

func (grid *SpatialHashGrid) Len() int { return len(grid.bounds) }

func (grid *SpatialHashGrid) Insert(id uuid.UUID, aabb core.AABB) {
	if aabb.IsEmpty() {
		return
	}
	if _, ok := grid.bounds[id]; ok {
		grid.Remove(id)
	}
	grid.bounds[id] = aabb
	grid.forEachCell(aabb, func(key uint64) {
		grid.cells[key] = append(grid.cells[key], id)
	})
}

func (grid *SpatialHashGrid) Remove(id uuid.UUID) {
	aabb, ok := grid.bounds[id]
	if !ok {
		return
	}
	delete(grid.bounds, id)
	grid.forEachCell(aabb, func(key uint64) {
		ids := grid.cells[key]
		if i := slices.Index(ids, id); i >= 0 {
			ids = slices.Delete(ids, i, i+1)
		}
		if len(ids) == 0 {
			delete(grid.cells, key)
		} else {
			grid.cells[key] = ids
		}
	})
}

func (grid *SpatialHashGrid) QueryAABB(aabb core.AABB) []uuid.UUID {
	if aabb.IsEmpty() {
		return nil
	}
	unique := make(map[uuid.UUID]struct{})
	var results []uuid.UUID
	grid.forEachCell(aabb, func(key uint64) {
		for _, id := range grid.cells[key] {
			if _, ok := unique[id]; !ok {
				unique[id] = struct{}{}
				results = append(results, id)
			}
		}
	})
	return results
}

func (grid *SpatialHashGrid) forEachCell(aabb core.AABB, fn func(key uint64)) {
	minX, maxX := grid.getCellIndex(aabb.Min.X()), grid.getCellIndex(aabb.Max.X())
	minY, maxY := grid.getCellIndex(aabb.Min.Y()), grid.getCellIndex(aabb.Max.Y())
	minZ, maxZ := grid.getCellIndex(aabb.Min.Z()), grid.getCellIndex(aabb.Max.Z())

	for x := minX; x <= maxX; x++ {
		for y := minY; y <= maxY; y++ {
			for z := minZ; z <= maxZ; z++ {
				fn(grid.hashKey(x, y, z))
			}
		}
	}
}

func (grid *SpatialHashGrid) getCellIndex(pos float32) int64 {
	return int64(math.Floor(float64(pos / grid.cellSize)))
}

func (grid *SpatialHashGrid) hashKey(x, y, z int64) uint64 {
	var buf [24]byte
	binary.LittleEndian.PutUint64(buf[0:], uint64(x))
	binary.LittleEndian.PutUint64(buf[8:], uint64(y))
	binary.LittleEndian.PutUint64(buf[16:], uint64(z))
	return xxhash.Sum64(buf[:])
}
