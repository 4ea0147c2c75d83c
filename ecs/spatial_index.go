package ecs

import "github.com/jakecoffman/cp"

// SpatialIndex tracks entity footprints on the ground plane as static
// circles in a Chipmunk space. World X maps to space X and world Z to space Y.
type SpatialIndex struct {
	space         *cp.Space
	shapeToEntity map[*cp.Shape]Entity
	entityToShape map[Entity]*cp.Shape
}

// NewSpatialIndex creates an empty index.
func NewSpatialIndex() *SpatialIndex {
	return &SpatialIndex{
		space:         cp.NewSpace(),
		shapeToEntity: make(map[*cp.Shape]Entity),
		entityToShape: make(map[Entity]*cp.Shape),
	}
}

// Insert places e at (x, z) with the given footprint radius, replacing any
// previous footprint.
func (s *SpatialIndex) Insert(e Entity, x, z, radius float64) {
	if s == nil || radius <= 0 {
		return
	}
	s.Remove(e)
	shape := cp.NewCircle(s.space.StaticBody, radius, cp.Vector{X: x, Y: z})
	s.space.AddShape(shape)
	s.shapeToEntity[shape] = e
	s.entityToShape[e] = shape
}

// Remove drops the footprint of e.
func (s *SpatialIndex) Remove(e Entity) {
	if s == nil {
		return
	}
	shape, ok := s.entityToShape[e]
	if !ok {
		return
	}
	s.space.RemoveShape(shape)
	delete(s.entityToShape, e)
	delete(s.shapeToEntity, shape)
}

// Contains reports whether e has a footprint.
func (s *SpatialIndex) Contains(e Entity) bool {
	if s == nil {
		return false
	}
	_, ok := s.entityToShape[e]
	return ok
}

// Len returns the number of indexed footprints.
func (s *SpatialIndex) Len() int {
	if s == nil {
		return 0
	}
	return len(s.entityToShape)
}

// Nearest returns the entity whose footprint edge is closest to (x, z),
// ignoring anything farther than maxDist.
func (s *SpatialIndex) Nearest(x, z, maxDist float64) (Entity, bool) {
	if s == nil || len(s.entityToShape) == 0 {
		return 0, false
	}
	info := s.space.PointQueryNearest(cp.Vector{X: x, Y: z}, maxDist, cp.SHAPE_FILTER_ALL)
	if info == nil || info.Shape == nil {
		return 0, false
	}
	e, ok := s.shapeToEntity[info.Shape]
	return e, ok
}

// Overlaps reports whether a circle of radius at (x, z) touches any
// indexed footprint.
func (s *SpatialIndex) Overlaps(x, z, radius float64) bool {
	_, ok := s.Nearest(x, z, radius)
	return ok
}
