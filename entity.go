package semblance

import "github.com/likeness/semblance/engine"

// Entity is a leaf placeholder for a person, place or thing. Entities are
// generic by default: the name labels a role in the enclosing statement, and
// any entity of the same shape can be substituted without changing that
// statement's meaning. MakeConcrete pins the entity to its name.
type Entity struct {
	name     string
	concrete bool
	absent   bool
}

// NewEntity creates a generic entity.
func NewEntity(name string) Entity {
	return Entity{name: name}
}

// MakeConcrete returns an entity that stands only for its own name.
func (e Entity) MakeConcrete() Entity {
	e.concrete = true
	return e
}

// MakeGeneric returns a generic copy of the entity.
func (e Entity) MakeGeneric() Entity {
	e.concrete = false
	return e
}

// MakeAbsent returns an entity asserting the negation of its counterpart.
func (e Entity) MakeAbsent() Entity {
	e.absent = true
	return e
}

func (e Entity) Generic() bool { return !e.concrete }

func (e Entity) Absent() bool { return e.absent }

func (e Entity) Name() string { return e.name }

func (e Entity) Terms() []engine.Term { return nil }

func (e Entity) Key() string { return e.String() }

func (e Entity) String() string {
	s := e.name
	if !e.concrete {
		s = "<" + s + ">"
	}
	if e.absent {
		s = "absent " + s
	}
	return s
}

func (e Entity) SameKind(other engine.Term) bool {
	_, ok := other.(Entity)
	return ok
}

func (e Entity) LeafImplies(other engine.Term) bool {
	o := other.(Entity)
	return e.name == o.name
}

func (e Entity) LeafMeans(other engine.Term) bool {
	o := other.(Entity)
	return e.name == o.name
}

// LeafContradicts is always false: entities assert nothing on their own.
func (e Entity) LeafContradicts(engine.Term) bool { return false }

func (e Entity) Interchangeable() [][]int { return nil }

func (e Entity) WithTerms([]engine.Term) engine.Term { return e }
