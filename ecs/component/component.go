package component

import (
	"errors"
	"sync/atomic"
)

var (
	ErrEntityNotAlive       = errors.New("ecs: entity not alive")
	ErrNilComponent         = errors.New("ecs: component is nil")
	ErrInvalidComponentKind = errors.New("ecs: invalid component kind")
)

// ComponentID identifies a component storage inside a world.
type ComponentID uint32

var nextComponentID atomic.Uint32

// ComponentKind is the typed key of a component storage.
type ComponentKind[T any] struct {
	id   ComponentID
	name string
}

func (k ComponentKind[T]) ID() ComponentID {
	return k.id
}

func (k ComponentKind[T]) Name() string {
	return k.name
}

func (k ComponentKind[T]) Valid() bool {
	return k.id != 0
}

// ComponentHandle is the package-level declaration of a component type.
type ComponentHandle[T any] struct {
	kind ComponentKind[T]
}

// NewComponent registers a new component type. name is used in logs and
// error messages only.
func NewComponent[T any](name string) ComponentHandle[T] {
	return ComponentHandle[T]{kind: ComponentKind[T]{id: ComponentID(nextComponentID.Add(1)), name: name}}
}

func (h ComponentHandle[T]) Kind() ComponentKind[T] {
	return h.kind
}
