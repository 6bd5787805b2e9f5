package ecs

import "reflect"

// Query returns every live entity currently holding all of the given
// component types. The result is a snapshot: callers may remove discovered
// entities while iterating it without affecting the slice. Order is
// unspecified but stable for the returned slice.
func (w *World) Query(kinds ...reflect.Type) []Entity {
	if len(kinds) == 0 {
		return nil
	}

	// Iterate the smallest table and probe the rest.
	var base table
	for _, k := range kinds {
		t, ok := w.tables[k]
		if !ok {
			return nil
		}
		if base == nil || t.size() < base.size() {
			base = t
		}
	}

	var result []Entity
	for _, index := range base.owners() {
		if !w.alive[index] {
			continue
		}
		hasAll := true
		for _, k := range kinds {
			if !w.tables[k].has(index) {
				hasAll = false
				break
			}
		}
		if hasAll {
			result = append(result, Entity{index: index, gen: w.gens[index]})
		}
	}
	return result
}
