// The export boundary converts values between their in-memory form and the
// generic serialized ("export") form, independent of any declared type.
// Implements: prd004-export-boundary R1-R5.
package types

import (
	"path/filepath"

	"github.com/spf13/cast"
)

// External generic type name tokens (prd004-export-boundary R2).
const (
	TypeNameString = "string"
	TypeNameInt    = "int"
	TypeNameFloat  = "float"
	TypeNameBool   = "bool"
	TypeNameFile   = "file"
	TypeNameColor  = "color"
	TypeNameObject = "object"
	TypeNameClass  = "class"
)

// ExportValue is the external form of a value: the serialized payload, the
// generic type name, and, when the value came from a declared type, that
// type's name.
type ExportValue struct {
	Value            any
	TypeName         string
	PropertyTypeName string
}

// ExportContext carries everything a conversion needs: the registry used to
// resolve declared type references and the directory the document lives in,
// used to make file paths relative on export and absolute on import.
type ExportContext struct {
	types *Registry
	path  string
}

// NewExportContext creates a context over the given registry. path is the
// directory of the document being read or written; it may be empty, in
// which case file paths pass through unchanged.
func NewExportContext(types *Registry, path string) ExportContext {
	return ExportContext{types: types, path: path}
}

// Types returns the registry known to this context.
func (c ExportContext) Types() *Registry { return c.types }

// Path returns the document directory of this context.
func (c ExportContext) Path() string { return c.path }

// ExportTypeName returns the external generic type name for a value's
// in-memory representation. Unrecognized representations report no name,
// which round-trips as "leave the value alone".
func ExportTypeName(value any) string {
	switch value.(type) {
	case string:
		return TypeNameString
	case int, int64:
		return TypeNameInt
	case float64:
		return TypeNameFloat
	case bool:
		return TypeNameBool
	case FilePath:
		return TypeNameFile
	case Color:
		return TypeNameColor
	case ObjectRef:
		return TypeNameObject
	case map[string]any:
		return TypeNameClass
	default:
		return ""
	}
}

// ToExportValue converts a value to its external form. A PropertyValue is
// dispatched to its declared type when the registry still knows it;
// otherwise the inner value is exported untyped (the type was deleted).
func (c ExportContext) ToExportValue(value any) ExportValue {
	if pv, ok := value.(PropertyValue); ok {
		if t := pv.Type(c.types); t != nil {
			return t.ToExportValue(pv.Value, c)
		}
		value = pv.Value
	}

	result := ExportValue{Value: value, TypeName: ExportTypeName(value)}

	switch v := value.(type) {
	case FilePath:
		result.Value = c.relativePath(string(v))
	case Color:
		result.Value = string(v)
	case ObjectRef:
		result.Value = v.ID
	}

	return result
}

// ToPropertyValue converts an external form back to its in-memory value,
// re-wrapping it through its declared type when the annotation resolves.
// An annotation naming an unknown type degrades to the untyped value.
func (c ExportContext) ToPropertyValue(exportValue ExportValue) any {
	value := c.ToPropertyValueKind(exportValue.Value, exportValue.TypeName)

	if exportValue.PropertyTypeName != "" && c.types != nil {
		if t := c.types.FindTypeByName(exportValue.PropertyTypeName); t != nil {
			return t.ToPropertyValue(value, c)
		}
	}

	return value
}

// ToPropertyValueKind coerces a raw value to the in-memory representation
// of the named external kind. An empty or unknown name leaves the value
// unchanged.
func (c ExportContext) ToPropertyValueKind(value any, typeName string) any {
	switch typeName {
	case TypeNameString:
		return cast.ToString(value)
	case TypeNameInt:
		return cast.ToInt(value)
	case TypeNameFloat:
		return cast.ToFloat64(value)
	case TypeNameBool:
		return cast.ToBool(value)
	case TypeNameFile:
		return FilePath(c.absolutePath(cast.ToString(value)))
	case TypeNameColor:
		return Color(cast.ToString(value))
	case TypeNameObject:
		return ObjectRef{ID: cast.ToInt(value)}
	case TypeNameClass:
		if m, ok := value.(map[string]any); ok {
			return m
		}
		return map[string]any{}
	default:
		return value
	}
}

// relativePath rewrites an absolute file path relative to the document
// directory. Paths that cannot be made relative are kept as-is.
func (c ExportContext) relativePath(path string) string {
	if c.path == "" || path == "" || !filepath.IsAbs(path) {
		return path
	}
	rel, err := filepath.Rel(c.path, path)
	if err != nil {
		return path
	}
	return filepath.ToSlash(rel)
}

// absolutePath resolves a document-relative file path against the document
// directory.
func (c ExportContext) absolutePath(path string) string {
	if c.path == "" || path == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(c.path, filepath.FromSlash(path))
}
