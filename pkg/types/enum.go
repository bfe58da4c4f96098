// Enum declarations: a named ordered list of symbolic values.
// Implements: prd001-registry-core R4 (enum conversion rules).
package types

import (
	"slices"
	"strings"

	"github.com/spf13/cast"
)

// StorageType selects how a chosen enum value appears in the external
// form: as its integer index or as its name string.
type StorageType int

const (
	StringValue StorageType = iota
	IntValue
)

// Serialized storage type tokens. Unrecognized input falls back to
// string storage.
const (
	storageTokenString = "string"
	storageTokenInt    = "int"
)

// MaxFlagValues is the number of values a flag enum can address. Flag
// masks are carried in an int, and bit 62 is the highest bit that
// survives a round-trip through a 64-bit signed integer on every
// supported target, so values beyond the first 63 are not addressable.
const MaxFlagValues = 63

// EnumType is a declared enumeration. The order of Values is the type's
// canonical encoding: each value's index is its integer representation.
// With ValuesAsFlags set, an integer is instead a bitmask over Values
// (bit i set means Values[i] selected), enabling multi-selection.
type EnumType struct {
	base

	StorageType   StorageType
	Values        []string
	ValuesAsFlags bool
}

// NewEnumType creates an enum declaration with no values, stored as
// strings. The id stays zero until the registry assigns one.
func NewEnumType(name string) *EnumType {
	return &EnumType{base: base{name: name, kind: KindEnum}}
}

// DefaultValue returns index 0, which doubles as the empty flag set.
func (e *EnumType) DefaultValue() any { return 0 }

// Validate reports whether the declaration is internally consistent.
// A flag enum with more values than MaxFlagValues cannot represent its
// own tail and is rejected rather than silently truncated.
func (e *EnumType) Validate() error {
	if e.ValuesAsFlags && len(e.Values) > MaxFlagValues {
		return ErrTooManyFlagValues
	}
	return nil
}

// ToExportValue converts an integer payload to its name form when the
// enum stores strings: a comma-joined name list in flags mode, the
// indexed name otherwise. Anything else (int storage, a non-integer
// payload, an out-of-range index) exports unchanged.
func (e *EnumType) ToExportValue(value any, ctx ExportContext) ExportValue {
	if intValue, ok := enumInt(value); ok && e.StorageType == StringValue {
		if e.ValuesAsFlags {
			var names []string
			for i, name := range e.Values {
				if i >= MaxFlagValues {
					break
				}
				if intValue&(1<<i) != 0 {
					names = append(names, name)
				}
			}
			return exportValue(e, strings.Join(names, ","), ctx)
		}
		if intValue >= 0 && intValue < len(e.Values) {
			return exportValue(e, e.Values[intValue], ctx)
		}
	}

	return exportValue(e, value, ctx)
}

// ToPropertyValue decodes a string payload back to its integer form. In
// flags mode every comma-separated segment must resolve to a value name;
// a single unknown segment keeps the original string untouched, since a
// partially applied mask would silently lose data. A non-string payload
// wraps unchanged.
func (e *EnumType) ToPropertyValue(value any, ctx ExportContext) any {
	stringValue, ok := value.(string)
	if !ok {
		return e.Wrap(value)
	}

	if e.ValuesAsFlags {
		flags := 0
		for _, segment := range strings.Split(stringValue, ",") {
			if segment == "" {
				continue
			}
			index := slices.Index(e.Values, segment)
			if index < 0 || index >= MaxFlagValues {
				return e.Wrap(value)
			}
			flags |= 1 << index
		}
		return e.Wrap(flags)
	}

	if index := slices.Index(e.Values, stringValue); index >= 0 {
		return e.Wrap(index)
	}

	return e.Wrap(value)
}

// ToVariant serializes the declaration.
func (e *EnumType) ToVariant(ctx ExportContext) map[string]any {
	record := e.toVariant()
	record["storageType"] = e.StorageType.String()
	record["values"] = slices.Clone(e.Values)
	record["valuesAsFlags"] = e.ValuesAsFlags
	return record
}

// FromVariant reads the kind-specific declaration fields.
func (e *EnumType) FromVariant(record map[string]any) {
	e.StorageType = StorageTypeFromString(cast.ToString(record["storageType"]))
	e.Values = cast.ToStringSlice(record["values"])
	e.ValuesAsFlags = cast.ToBool(record["valuesAsFlags"])
}

// ResolveDependencies is a no-op: enums never reference other types.
func (e *EnumType) ResolveDependencies(ctx ExportContext) {}

// StorageTypeFromString maps a serialized storage token to its
// StorageType, defaulting to string storage.
func StorageTypeFromString(s string) StorageType {
	if s == storageTokenInt {
		return IntValue
	}
	return StringValue
}

// String returns the serialized token for the storage type.
func (s StorageType) String() string {
	if s == IntValue {
		return storageTokenInt
	}
	return storageTokenString
}

// enumInt extracts an integer payload. JSON decoding hands integers over
// as float64, so whole floats count; strings never do, they take the
// decode path instead.
func enumInt(value any) (int, bool) {
	switch v := value.(type) {
	case int:
		return v, true
	case int64:
		return int(v), true
	case float64:
		if v == float64(int(v)) {
			return int(v), true
		}
	}
	return 0, false
}
