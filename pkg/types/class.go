// Class declarations: a named ordered set of members with typed defaults.
// Implements: prd001-registry-core R5 (class conversion, two-phase load,
// containment acyclicity).
package types

import "github.com/spf13/cast"

// ClassMember is one named member of a class and its default value. The
// default may be a PropertyValue, which types the member as another
// declared type.
type ClassMember struct {
	Name  string
	Value any
}

// rawMember is the phase-one form of a member loaded from a document: the
// untouched export record, held until every type in the document is
// registered and ResolveDependencies can interpret it.
type rawMember map[string]any

// ClassType is a declared composite. Member order is declaration order
// and is preserved through serialize and deserialize.
type ClassType struct {
	base

	members []ClassMember
}

// NewClassType creates a class declaration with no members. The id stays
// zero until the registry assigns one.
func NewClassType(name string) *ClassType {
	return &ClassType{base: base{name: name, kind: KindClass}}
}

// DefaultValue returns an empty member map.
func (c *ClassType) DefaultValue() any { return map[string]any{} }

// Members returns the members in declaration order.
func (c *ClassType) Members() []ClassMember {
	out := make([]ClassMember, len(c.members))
	copy(out, c.members)
	return out
}

// Member returns the default value of the named member.
func (c *ClassType) Member(name string) (any, bool) {
	for _, m := range c.members {
		if m.Name == name {
			return m.Value, true
		}
	}
	return nil, false
}

// AddMember appends a member. Containment cycles are the caller's
// concern: check CanAddMemberOfType before adding a class-typed default.
func (c *ClassType) AddMember(name string, value any) error {
	if name == "" {
		return ErrInvalidName
	}
	if _, exists := c.Member(name); exists {
		return ErrDuplicateMember
	}
	c.members = append(c.members, ClassMember{Name: name, Value: value})
	return nil
}

// SetMember replaces the default value of an existing member.
func (c *ClassType) SetMember(name string, value any) error {
	for i := range c.members {
		if c.members[i].Name == name {
			c.members[i].Value = value
			return nil
		}
	}
	return ErrMemberNotFound
}

// RemoveMember deletes the named member, keeping the order of the rest.
func (c *ClassType) RemoveMember(name string) error {
	for i := range c.members {
		if c.members[i].Name == name {
			c.members = append(c.members[:i], c.members[i+1:]...)
			return nil
		}
	}
	return ErrMemberNotFound
}

// ToExportValue flattens every entry of a class value through the generic
// conversion. Export never dispatches to member types: the external form
// of a class is always the generic map.
func (c *ClassType) ToExportValue(value any, ctx ExportContext) ExportValue {
	properties, ok := value.(map[string]any)
	if !ok {
		return exportValue(c, value, ctx)
	}

	converted := make(map[string]any, len(properties))
	for name, v := range properties {
		converted[name] = ctx.ToExportValue(v).Value
	}

	return exportValue(c, converted, ctx)
}

// ToPropertyValue rebuilds a class value from its external map. Entries
// whose key no longer names a member are dropped: documents written
// against an older declaration load cleanly after members are removed or
// renamed. Entries typed as another declared type are re-decoded through
// that type when the registry still knows it.
func (c *ClassType) ToPropertyValue(value any, ctx ExportContext) any {
	properties, ok := value.(map[string]any)
	if !ok {
		return c.Wrap(value)
	}

	converted := make(map[string]any, len(properties))
	for name, v := range properties {
		memberValue, exists := c.Member(name)
		if !exists {
			continue
		}

		if pv, ok := memberValue.(PropertyValue); ok {
			if t := pv.Type(ctx.Types()); t != nil {
				converted[name] = t.ToPropertyValue(v, ctx)
			} else {
				converted[name] = v
			}
			continue
		}

		converted[name] = ctx.ToPropertyValueKind(v, ExportTypeName(memberValue))
	}

	return c.Wrap(converted)
}

// ToVariant serializes the declaration, members in declaration order.
func (c *ClassType) ToVariant(ctx ExportContext) map[string]any {
	members := make([]any, 0, len(c.members))
	for _, m := range c.members {
		ev := ctx.ToExportValue(m.Value)

		member := map[string]any{
			"name":  m.Name,
			"type":  ev.TypeName,
			"value": ev.Value,
		}
		if ev.PropertyTypeName != "" {
			member["propertyType"] = ev.PropertyTypeName
		}

		members = append(members, member)
	}

	record := c.toVariant()
	record["members"] = members
	return record
}

// FromVariant reads the member list, keeping each member's record in its
// raw form. Member defaults may reference types that are not registered
// yet, so interpretation waits for ResolveDependencies.
func (c *ClassType) FromVariant(record map[string]any) {
	for _, entry := range cast.ToSlice(record["members"]) {
		m := cast.ToStringMap(entry)
		name := cast.ToString(m["name"])
		if name == "" {
			continue
		}
		c.members = append(c.members, ClassMember{Name: name, Value: rawMember(m)})
	}
}

// ResolveDependencies is the second load phase: every raw member record
// is re-interpreted through the import boundary now that all types in
// the document are registered, so forward references resolve regardless
// of declaration order.
func (c *ClassType) ResolveDependencies(ctx ExportContext) {
	for i := range c.members {
		rm, ok := c.members[i].Value.(rawMember)
		if !ok {
			continue
		}

		c.members[i].Value = ctx.ToPropertyValue(ExportValue{
			Value:            rm["value"],
			TypeName:         cast.ToString(rm["type"]),
			PropertyTypeName: cast.ToString(rm["propertyType"]),
		})
	}
}

// CanAddMemberOfType reports whether a member of the candidate type can
// be added without making this class contain itself, directly or through
// any chain of class-typed members. Non-class candidates are always
// addable; a class is addable only if every one of its typed members is,
// transitively. Members whose type cannot be resolved never block.
func (c *ClassType) CanAddMemberOfType(candidate PropertyType, types *Registry) bool {
	classType, ok := candidate.(*ClassType)
	if !ok {
		return true
	}
	if classType == c {
		return false
	}

	for _, m := range classType.members {
		pv, ok := m.Value.(PropertyValue)
		if !ok {
			continue
		}

		memberType := pv.Type(types)
		if memberType == nil {
			continue
		}

		if !c.CanAddMemberOfType(memberType, types) {
			return false
		}
	}

	return true
}
