package ecs

import (
	"errors"
	"testing"
)

type position struct {
	X, Y float64
}

type velocity struct {
	VX, VY float64
}

type marker struct{}

func TestCreateAndRemoveEntity(t *testing.T) {
	w := NewWorld()

	a := w.CreateEntity()
	b := w.CreateEntity()

	if a == b {
		t.Fatal("two created entities share a handle")
	}
	if !w.Alive(a) || !w.Alive(b) {
		t.Fatal("freshly created entities should be alive")
	}

	if !w.RemoveEntity(a) {
		t.Error("first removal should report the entity existed")
	}
	if w.RemoveEntity(a) {
		t.Error("second removal should be a no-op returning false")
	}
	if w.Alive(a) {
		t.Error("removed entity still reported alive")
	}
	if w.EntityCount() != 1 {
		t.Errorf("EntityCount = %d, want 1", w.EntityCount())
	}
}

func TestStaleHandleAfterSlotReuse(t *testing.T) {
	w := NewWorld()

	a := w.CreateEntity()
	w.RemoveEntity(a)

	// The slot is reused but the generation differs, so the old handle
	// must stay invalid.
	b := w.CreateEntity()
	if w.Alive(a) {
		t.Error("stale handle reported alive after slot reuse")
	}
	if !w.Alive(b) {
		t.Error("reused slot entity should be alive")
	}
	if err := Attach(w, a, position{}); !errors.Is(err, ErrInvalidEntity) {
		t.Errorf("Attach on stale handle: got %v, want ErrInvalidEntity", err)
	}
}

func TestAttachGetOverwrite(t *testing.T) {
	w := NewWorld()
	e := w.CreateEntity()

	if err := Attach(w, e, position{X: 1, Y: 2}); err != nil {
		t.Fatalf("Attach: %v", err)
	}
	p, ok := Get[position](w, e)
	if !ok || p.X != 1 || p.Y != 2 {
		t.Fatalf("Get after attach = %+v, %v", p, ok)
	}

	// Same-type attach overwrites in place.
	if err := Attach(w, e, position{X: 7, Y: 8}); err != nil {
		t.Fatalf("Attach overwrite: %v", err)
	}
	p, _ = Get[position](w, e)
	if p.X != 7 || p.Y != 8 {
		t.Errorf("overwrite not applied, got %+v", p)
	}

	// Missing component is an absent result, not an error.
	if _, ok := Get[velocity](w, e); ok {
		t.Error("Get for missing component reported present")
	}
}

func TestGetReturnsMutablePointer(t *testing.T) {
	w := NewWorld()
	e := w.CreateEntity()
	if err := Attach(w, e, position{X: 1}); err != nil {
		t.Fatal(err)
	}

	p, _ := Get[position](w, e)
	p.X = 42

	again, _ := Get[position](w, e)
	if again.X != 42 {
		t.Errorf("mutation through pointer lost, got %v", again.X)
	}
}

func TestNoDanglingComponentsAfterRemove(t *testing.T) {
	w := NewWorld()
	e := w.CreateEntity()
	if err := Attach(w, e, position{}); err != nil {
		t.Fatal(err)
	}
	if err := Attach(w, e, velocity{}); err != nil {
		t.Fatal(err)
	}
	if err := Attach(w, e, marker{}); err != nil {
		t.Fatal(err)
	}

	w.RemoveEntity(e)

	if _, ok := Get[position](w, e); ok {
		t.Error("position survives entity removal")
	}
	if _, ok := Get[velocity](w, e); ok {
		t.Error("velocity survives entity removal")
	}
	if _, ok := Get[marker](w, e); ok {
		t.Error("marker survives entity removal")
	}
	if got := w.Query(KindOf[position]()); len(got) != 0 {
		t.Errorf("query still returns removed entity: %v", got)
	}
}

func TestDetach(t *testing.T) {
	w := NewWorld()
	e := w.CreateEntity()
	if err := Attach(w, e, position{}); err != nil {
		t.Fatal(err)
	}

	removed, err := Detach[position](w, e)
	if err != nil || !removed {
		t.Fatalf("Detach = %v, %v", removed, err)
	}
	removed, err = Detach[position](w, e)
	if err != nil || removed {
		t.Fatalf("second Detach = %v, %v, want false, nil", removed, err)
	}

	w.RemoveEntity(e)
	if _, err := Detach[position](w, e); !errors.Is(err, ErrInvalidEntity) {
		t.Errorf("Detach on dead entity: got %v, want ErrInvalidEntity", err)
	}
}

func TestMustGetPanicsOnMissing(t *testing.T) {
	w := NewWorld()
	e := w.CreateEntity()

	defer func() {
		if recover() == nil {
			t.Error("MustGet on missing component did not panic")
		}
	}()
	MustGet[position](w, e)
}

func TestQueryRequiresAllKinds(t *testing.T) {
	w := NewWorld()

	both := w.CreateEntity()
	posOnly := w.CreateEntity()
	velOnly := w.CreateEntity()

	if err := Attach(w, both, position{}); err != nil {
		t.Fatal(err)
	}
	if err := Attach(w, both, velocity{}); err != nil {
		t.Fatal(err)
	}
	if err := Attach(w, posOnly, position{}); err != nil {
		t.Fatal(err)
	}
	if err := Attach(w, velOnly, velocity{}); err != nil {
		t.Fatal(err)
	}

	got := w.Query(KindOf[position](), KindOf[velocity]())
	if len(got) != 1 || got[0] != both {
		t.Errorf("Query = %v, want exactly %v", got, both)
	}
	if got := w.Query(KindOf[position]()); len(got) != 2 {
		t.Errorf("single-kind query returned %d entities, want 2", len(got))
	}
	if got := w.Query(); got != nil {
		t.Errorf("empty query returned %v, want nil", got)
	}
	if got := w.Query(KindOf[marker]()); got != nil {
		t.Errorf("query for absent kind returned %v, want nil", got)
	}
}

func TestQuerySafeWhileRemoving(t *testing.T) {
	w := NewWorld()
	for i := 0; i < 10; i++ {
		e := w.CreateEntity()
		if err := Attach(w, e, position{X: float64(i)}); err != nil {
			t.Fatal(err)
		}
	}

	// Collect-then-remove, the pattern the systems use.
	snapshot := w.Query(KindOf[position]())
	var toRemove []Entity
	for _, e := range snapshot {
		p, ok := Get[position](w, e)
		if !ok {
			t.Fatalf("snapshot entity %v lost its component", e)
		}
		if int(p.X)%2 == 0 {
			toRemove = append(toRemove, e)
		}
	}
	for _, e := range toRemove {
		if !w.RemoveEntity(e) {
			t.Errorf("removal of %v failed", e)
		}
	}

	if rest := w.Query(KindOf[position]()); len(rest) != 5 {
		t.Errorf("after removals query returned %d entities, want 5", len(rest))
	}
}
