// Package ecs implements a small generational entity/component store.
// Entities are opaque index+generation handles; components are stored in
// one dense array per component type (sparse-set layout) so queries and
// iteration stay cache-friendly. The package contains no external
// dependencies to keep the simulation core pure and testable.
package ecs

import (
	"errors"
	"fmt"
	"reflect"
)

// ErrInvalidEntity is returned when an operation references an entity id
// that was never issued or has already been removed.
var ErrInvalidEntity = errors.New("ecs: invalid entity")

// Entity is an opaque handle to an entity. The zero value is never a live
// entity. A handle becomes stale once the entity is removed; the generation
// counter detects reuse of the underlying slot.
type Entity struct {
	index uint32
	gen   uint32
}

// IsZero reports whether e is the zero handle.
func (e Entity) IsZero() bool {
	return e == Entity{}
}

// String returns a debug representation of the handle.
func (e Entity) String() string {
	return fmt.Sprintf("entity(%d@%d)", e.index, e.gen)
}

// table is the type-erased view of a component store, used by World for
// operations that span all component types.
type table interface {
	has(index uint32) bool
	removeSlot(index uint32)
	owners() []uint32
	size() int
}

// store holds all components of a single type T. Components live in a dense
// slice; slots maps entity index to dense row (-1 when absent).
type store[T any] struct {
	dense   []T
	rows    []uint32 // entity index per dense row
	slots   []int32  // entity index -> dense row
}

func (s *store[T]) ensure(index uint32) {
	for uint32(len(s.slots)) <= index {
		s.slots = append(s.slots, -1)
	}
}

func (s *store[T]) has(index uint32) bool {
	return index < uint32(len(s.slots)) && s.slots[index] >= 0
}

func (s *store[T]) set(index uint32, c T) {
	s.ensure(index)
	if row := s.slots[index]; row >= 0 {
		s.dense[row] = c
		return
	}
	s.slots[index] = int32(len(s.dense))
	s.dense = append(s.dense, c)
	s.rows = append(s.rows, index)
}

func (s *store[T]) get(index uint32) *T {
	if !s.has(index) {
		return nil
	}
	return &s.dense[s.slots[index]]
}

// removeSlot detaches the component for the given entity index using
// swap-remove, keeping the dense slice packed.
func (s *store[T]) removeSlot(index uint32) {
	if !s.has(index) {
		return
	}
	row := s.slots[index]
	last := int32(len(s.dense) - 1)
	if row != last {
		s.dense[row] = s.dense[last]
		moved := s.rows[last]
		s.rows[row] = moved
		s.slots[moved] = row
	}
	s.dense = s.dense[:last]
	s.rows = s.rows[:last]
	s.slots[index] = -1
}

func (s *store[T]) owners() []uint32 { return s.rows }
func (s *store[T]) size() int        { return len(s.dense) }

// World owns all entities and their attached components. It is not safe for
// concurrent use; the engine accesses it only from the tick loop.
type World struct {
	gens   []uint32
	alive  []bool
	free   []uint32
	tables map[reflect.Type]table
}

// NewWorld creates an empty world.
func NewWorld() *World {
	return &World{
		tables: make(map[reflect.Type]table),
	}
}

// CreateEntity issues a fresh, never-before-seen entity handle.
func (w *World) CreateEntity() Entity {
	var index uint32
	if n := len(w.free); n > 0 {
		index = w.free[n-1]
		w.free = w.free[:n-1]
		w.alive[index] = true
	} else {
		index = uint32(len(w.gens))
		w.gens = append(w.gens, 1)
		w.alive = append(w.alive, true)
	}
	return Entity{index: index, gen: w.gens[index]}
}

// Alive reports whether the handle refers to a live entity.
func (w *World) Alive(e Entity) bool {
	return e.index < uint32(len(w.gens)) &&
		w.alive[e.index] &&
		w.gens[e.index] == e.gen
}

// RemoveEntity detaches every component attached to the entity and
// invalidates the handle. It reports whether the entity existed; removing
// an already-removed entity is a no-op returning false.
func (w *World) RemoveEntity(e Entity) bool {
	if !w.Alive(e) {
		return false
	}
	for _, t := range w.tables {
		t.removeSlot(e.index)
	}
	w.alive[e.index] = false
	w.gens[e.index]++ // stale handles now fail the generation check
	w.free = append(w.free, e.index)
	return true
}

// EntityCount returns the number of live entities.
func (w *World) EntityCount() int {
	n := 0
	for _, a := range w.alive {
		if a {
			n++
		}
	}
	return n
}

// KindOf returns the component-type key for T, used with Query.
func KindOf[T any]() reflect.Type {
	return reflect.TypeOf((*T)(nil)).Elem()
}

func storeFor[T any](w *World, create bool) *store[T] {
	typ := KindOf[T]()
	if t, ok := w.tables[typ]; ok {
		return t.(*store[T])
	}
	if !create {
		return nil
	}
	s := &store[T]{}
	w.tables[typ] = s
	return s
}

// Attach attaches a component to a live entity, overwriting any existing
// component of the same type. It returns ErrInvalidEntity if the entity
// does not exist.
func Attach[T any](w *World, e Entity, c T) error {
	if !w.Alive(e) {
		return fmt.Errorf("%w: attach %s to %v", ErrInvalidEntity, KindOf[T](), e)
	}
	storeFor[T](w, true).set(e.index, c)
	return nil
}

// Get returns a pointer to the entity's component of type T, or (nil, false)
// when the entity is dead or holds no such component. A missing component is
// not an error.
//
// The pointer aliases the dense storage: it stays valid until a component of
// the same type is attached or detached anywhere in the world.
func Get[T any](w *World, e Entity) (*T, bool) {
	if !w.Alive(e) {
		return nil, false
	}
	s := storeFor[T](w, false)
	if s == nil {
		return nil, false
	}
	c := s.get(e.index)
	if c == nil {
		return nil, false
	}
	return c, true
}

// MustGet returns the entity's component of type T and panics when it is
// absent. Use it only where a missing component means the simulation state
// is corrupt and continuing would be worse than crashing.
func MustGet[T any](w *World, e Entity) *T {
	c, ok := Get[T](w, e)
	if !ok {
		panic(fmt.Sprintf("ecs: missing required component %s on %v", KindOf[T](), e))
	}
	return c
}

// Detach removes the entity's component of type T. It returns
// ErrInvalidEntity for a dead entity and reports whether a component was
// actually removed.
func Detach[T any](w *World, e Entity) (bool, error) {
	if !w.Alive(e) {
		return false, fmt.Errorf("%w: detach %s from %v", ErrInvalidEntity, KindOf[T](), e)
	}
	s := storeFor[T](w, false)
	if s == nil || !s.has(e.index) {
		return false, nil
	}
	s.removeSlot(e.index)
	return true, nil
}
