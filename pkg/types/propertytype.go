// Declared property types: the contract shared by enums and classes.
// Implements: prd001-registry-core R1-R3.
package types

import "github.com/spf13/cast"

// PropertyType is a user-declared type: an enum or a class. It owns the
// conversion between values of the type and their external form.
//
// The interface is closed: only EnumType and ClassType implement it, so a
// switch over the two concrete types is exhaustive.
type PropertyType interface {
	// ID is the registry-assigned identity of the type. Zero means
	// "not yet registered" and never matches a lookup.
	ID() int

	// Name is the display and lookup key. Uniqueness is a soft invariant
	// kept by the editing layer, not enforced here.
	Name() string

	// Kind reports which declared variant this is.
	Kind() Kind

	// Wrap pairs a raw value with this type's id.
	Wrap(value any) PropertyValue

	// DefaultValue is the value a fresh property of this type holds.
	DefaultValue() any

	// ToExportValue prepares a value of this type for saving, applying
	// kind-specific encoding before the generic conversion.
	ToExportValue(value any, ctx ExportContext) ExportValue

	// ToPropertyValue decodes a loaded external value, wrapping the
	// result as a PropertyValue of this type. Values that cannot be
	// decoded are wrapped unchanged, never guessed at.
	ToPropertyValue(value any, ctx ExportContext) any

	// ToVariant serializes the declaration itself.
	ToVariant(ctx ExportContext) map[string]any

	// FromVariant reads the kind-specific declaration fields. Cross-type
	// references stay unresolved until ResolveDependencies.
	FromVariant(record map[string]any)

	// ResolveDependencies is the second load phase: it re-interprets
	// anything that could reference another declared type, once every
	// type in the document is registered.
	ResolveDependencies(ctx ExportContext)

	setID(id int)
}

// base carries the identity shared by both declared variants.
type base struct {
	id   int
	name string
	kind Kind
}

func (b *base) ID() int      { return b.id }
func (b *base) Name() string { return b.name }
func (b *base) Kind() Kind   { return b.kind }
func (b *base) setID(id int) { b.id = id }

func (b *base) Wrap(value any) PropertyValue {
	return PropertyValue{Value: value, TypeID: b.id}
}

// toVariant serializes the fields common to every declaration.
func (b *base) toVariant() map[string]any {
	return map[string]any{
		"type": b.kind.String(),
		"id":   b.id,
		"name": b.name,
	}
}

// exportValue runs the generic conversion and stamps the result with the
// declared type's name. It is the shared tail of every ToExportValue.
func exportValue(t PropertyType, value any, ctx ExportContext) ExportValue {
	result := ctx.ToExportValue(value)
	result.PropertyTypeName = t.Name()
	return result
}

// CreateFromVariant builds a declared type from its serialized record.
// This is phase one of loading: the returned type may still hold
// unresolved references to other types, so after every type in a document
// is registered, ResolveDependencies must be called on each of them.
//
// Returns false for an unrecognized kind token; the caller drops the
// record. The parsed id is set on the returned type so the registry can
// fold it into its id counter.
func CreateFromVariant(record map[string]any) (PropertyType, bool) {
	id := cast.ToInt(record["id"])
	name := cast.ToString(record["name"])

	var t PropertyType
	switch KindFromString(cast.ToString(record["type"])) {
	case KindEnum:
		t = NewEnumType(name)
	case KindClass:
		t = NewClassType(name)
	default:
		return nil, false
	}

	t.setID(id)
	t.FromVariant(record)
	return t, true
}
