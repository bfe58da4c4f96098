package types

// PropertyValue pairs a raw value with the id of the declared type that
// governs its interpretation. The id is a weak reference: it is resolved
// against a Registry at the point of use and never pins the type itself,
// so types can be removed or reloaded independently of values that
// reference them.
type PropertyValue struct {
	Value  any
	TypeID int
}

// Type resolves the referenced declared type in the given registry.
// Returns nil when the type has been removed, which callers treat as
// "value is untyped", never as an error.
func (pv PropertyValue) Type(types *Registry) PropertyType {
	if types == nil {
		return nil
	}
	return types.FindTypeByID(pv.TypeID)
}

// FilePath is a string value holding a path to an external resource.
// Export makes it relative to the document location; import resolves it
// back to an absolute path.
type FilePath string

// Color is a string value holding a #AARRGGBB or #RRGGBB color.
type Color string

// ObjectRef is a reference to an object by its numeric id. It exists so
// object references survive the export boundary with their own type
// annotation instead of decaying to plain integers.
type ObjectRef struct {
	ID int
}
