package ecs

import (
	"fmt"

	"github.com/milk9111/spritesim/ecs/component"
)

// Add attaches value to e, replacing any existing value of the same kind.
func Add[T any](w *World, e Entity, kind component.ComponentKind[T], value *T) error {
	if w == nil || !w.IsAlive(e) {
		return component.ErrEntityNotAlive
	}
	if !kind.Valid() {
		return component.ErrInvalidComponentKind
	}
	if value == nil {
		return fmt.Errorf("add %s to %s: %w", kind.Name(), e, component.ErrNilComponent)
	}
	w.store(kind.ID(), true).Set(e, value)
	return nil
}

// Remove detaches the kind from e and reports whether it was present.
func Remove[T any](w *World, e Entity, kind component.ComponentKind[T]) bool {
	if w == nil {
		return false
	}
	return w.store(kind.ID(), false).Remove(e)
}

// Has reports whether e carries the kind.
func Has[T any](w *World, e Entity, kind component.ComponentKind[T]) bool {
	if w == nil || !w.IsAlive(e) {
		return false
	}
	return w.store(kind.ID(), false).Has(e)
}

// Get returns the value of kind attached to e.
func Get[T any](w *World, e Entity, kind component.ComponentKind[T]) (*T, bool) {
	if w == nil || !w.IsAlive(e) {
		return nil, false
	}
	v, ok := w.store(kind.ID(), false).Get(e).(*T)
	return v, ok && v != nil
}

// ForEach calls fn for every entity carrying kind. fn may add or remove
// components and destroy entities; those changes are not observed by the
// running iteration.
func ForEach[T any](w *World, kind component.ComponentKind[T], fn func(Entity, *T)) {
	if w == nil || fn == nil {
		return
	}
	set := w.store(kind.ID(), false)
	for _, e := range set.Entities() {
		v, ok := set.Get(e).(*T)
		if !ok || !w.IsAlive(e) {
			continue
		}
		fn(e, v)
	}
}

// ForEach2 calls fn for every entity carrying both kinds.
func ForEach2[A, B any](w *World, ka component.ComponentKind[A], kb component.ComponentKind[B], fn func(Entity, *A, *B)) {
	if w == nil || fn == nil {
		return
	}
	sa := w.store(ka.ID(), false)
	sb := w.store(kb.ID(), false)
	if sa.Len() > sb.Len() {
		ForEach2(w, kb, ka, func(e Entity, b *B, a *A) { fn(e, a, b) })
		return
	}
	for _, e := range sa.Entities() {
		a, ok := sa.Get(e).(*A)
		if !ok || !w.IsAlive(e) {
			continue
		}
		b, ok := sb.Get(e).(*B)
		if !ok {
			continue
		}
		fn(e, a, b)
	}
}

// First returns the first entity carrying kind, for singleton components
// such as the camera.
func First[T any](w *World, kind component.ComponentKind[T]) (Entity, *T, bool) {
	if w == nil {
		return 0, nil, false
	}
	set := w.store(kind.ID(), false)
	for _, e := range set.Entities() {
		if v, ok := set.Get(e).(*T); ok && w.IsAlive(e) {
			return e, v, true
		}
	}
	return 0, nil, false
}

// Count returns how many entities carry kind.
func Count[T any](w *World, kind component.ComponentKind[T]) int {
	if w == nil {
		return 0
	}
	return w.store(kind.ID(), false).Len()
}
