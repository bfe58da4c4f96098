// The registry owns every declared type for one document.
// Implements: prd001-registry-core R6 (ownership, id allocation, two-phase
// load).
package types

import "fmt"

// Registry owns the declared types of a single document, in declaration
// order. Ids are assigned monotonically and never reused within a
// registry's lifetime.
//
// A registry is a document-scoped, single-writer structure: it has no
// internal locking, and concurrent mutation requires external mutual
// exclusion by the host.
type Registry struct {
	types  []PropertyType
	nextID int
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{}
}

// Len returns the number of declared types.
func (r *Registry) Len() int { return len(r.types) }

// Count returns the number of declared types of the given kind.
func (r *Registry) Count(kind Kind) int {
	n := 0
	for _, t := range r.types {
		if t.Kind() == kind {
			n++
		}
	}
	return n
}

// Types returns the declared types in declaration order.
func (r *Registry) Types() []PropertyType {
	out := make([]PropertyType, len(r.types))
	copy(out, r.types)
	return out
}

// FindTypeByID returns the type with the given id, or nil. Absence is an
// expected outcome: callers treat it as "value is untyped" or "type was
// deleted", never as an error.
func (r *Registry) FindTypeByID(id int) PropertyType {
	if id <= 0 {
		return nil
	}
	for _, t := range r.types {
		if t.ID() == id {
			return t
		}
	}
	return nil
}

// FindTypeByName returns the type with the given name, or nil.
func (r *Registry) FindTypeByName(name string) PropertyType {
	for _, t := range r.types {
		if t.Name() == name {
			return t
		}
	}
	return nil
}

// Add registers a type and takes ownership of it. A type with no id yet
// gets the next fresh one; a type loaded with an id advances the counter
// past it, so types created afterwards never collide with loaded ones.
func (r *Registry) Add(t PropertyType) {
	if t.ID() == 0 {
		r.nextID++
		t.setID(r.nextID)
	} else if t.ID() > r.nextID {
		r.nextID = t.ID()
	}
	r.types = append(r.types, t)
}

// RemoveByName drops the named type. Values referencing it degrade to
// untyped on their next lookup.
func (r *Registry) RemoveByName(name string) bool {
	for i, t := range r.types {
		if t.Name() == name {
			r.types = append(r.types[:i], r.types[i+1:]...)
			return true
		}
	}
	return false
}

// Clear drops every type and resets the id counter.
func (r *Registry) Clear() {
	r.types = nil
	r.nextID = 0
}

// LoadFrom replaces the registry contents with the given serialized
// records. Loading is two-phase: every record is parsed and registered
// first, and only then are cross-type references resolved, because a
// class member may reference a type declared later in the document.
// Records with an unrecognized kind are dropped, not fatal.
func (r *Registry) LoadFrom(records []map[string]any, basePath string) {
	r.Clear()

	ctx := NewExportContext(r, basePath)

	for _, record := range records {
		if t, ok := CreateFromVariant(record); ok {
			r.Add(t)
		}
	}

	for _, t := range r.types {
		t.ResolveDependencies(ctx)
	}
}

// ToVariant serializes every declared type in declaration order.
func (r *Registry) ToVariant(basePath string) []map[string]any {
	ctx := NewExportContext(r, basePath)

	records := make([]map[string]any, 0, len(r.types))
	for _, t := range r.types {
		records = append(records, t.ToVariant(ctx))
	}
	return records
}

// Merge imports the types of another registry. Types whose name already
// exists here are skipped (the existing declaration wins); the rest are
// re-registered with fresh ids, and member references among the imported
// types are rewritten to the ids they ended up with. Returns the number
// of types added.
func (r *Registry) Merge(other *Registry) int {
	idMap := make(map[int]int, len(other.types))
	var imported []PropertyType

	for _, t := range other.types {
		if existing := r.FindTypeByName(t.Name()); existing != nil {
			idMap[t.ID()] = existing.ID()
			continue
		}
		oldID := t.ID()
		t.setID(0)
		r.Add(t)
		idMap[oldID] = t.ID()
		imported = append(imported, t)
	}

	for _, t := range imported {
		c, ok := t.(*ClassType)
		if !ok {
			continue
		}
		for i := range c.members {
			pv, ok := c.members[i].Value.(PropertyValue)
			if !ok {
				continue
			}
			if newID, mapped := idMap[pv.TypeID]; mapped {
				pv.TypeID = newID
				c.members[i].Value = pv
			}
		}
	}

	return len(imported)
}

// Check validates the whole set: duplicate names (a soft invariant the
// editing layer should have kept) and flag enums wider than their mask.
// Findings are reported, never thrown; the set stays usable.
func (r *Registry) Check() []error {
	var problems []error

	seen := make(map[string]bool, len(r.types))
	for _, t := range r.types {
		if seen[t.Name()] {
			problems = append(problems, fmt.Errorf("type %q: %w", t.Name(), ErrDuplicateName))
		}
		seen[t.Name()] = true

		if e, ok := t.(*EnumType); ok {
			if err := e.Validate(); err != nil {
				problems = append(problems, fmt.Errorf("type %q: %w", t.Name(), err))
			}
		}
	}

	return problems
}
