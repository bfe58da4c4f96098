package types

import (
	"errors"
	"testing"
)

func TestClassMemberEditing(t *testing.T) {
	c := NewClassType("Monster")

	if err := c.AddMember("hp", 10); err != nil {
		t.Fatalf("AddMember(hp): %v", err)
	}
	if err := c.AddMember("name", "grue"); err != nil {
		t.Fatalf("AddMember(name): %v", err)
	}
	if err := c.AddMember("hp", 20); !errors.Is(err, ErrDuplicateMember) {
		t.Fatalf("duplicate AddMember = %v, want ErrDuplicateMember", err)
	}
	if err := c.AddMember("", 1); !errors.Is(err, ErrInvalidName) {
		t.Fatalf("empty AddMember = %v, want ErrInvalidName", err)
	}

	if err := c.SetMember("hp", 25); err != nil {
		t.Fatalf("SetMember(hp): %v", err)
	}
	if v, ok := c.Member("hp"); !ok || v != 25 {
		t.Fatalf("Member(hp) = (%v, %v), want (25, true)", v, ok)
	}

	if err := c.RemoveMember("name"); err != nil {
		t.Fatalf("RemoveMember(name): %v", err)
	}
	if err := c.RemoveMember("name"); !errors.Is(err, ErrMemberNotFound) {
		t.Fatalf("second RemoveMember = %v, want ErrMemberNotFound", err)
	}

	members := c.Members()
	if len(members) != 1 || members[0].Name != "hp" {
		t.Fatalf("Members() = %v, want [hp]", members)
	}
}

func TestClassDefaultValue(t *testing.T) {
	c := NewClassType("Monster")
	m, ok := c.DefaultValue().(map[string]any)
	if !ok || len(m) != 0 {
		t.Fatalf("DefaultValue() = %v, want empty map", c.DefaultValue())
	}
}

func TestClassImportPrunesRemovedMembers(t *testing.T) {
	reg := NewRegistry()
	c := NewClassType("Monster")
	if err := c.AddMember("hp", 0); err != nil {
		t.Fatal(err)
	}
	reg.Add(c)
	ctx := NewExportContext(reg, "")

	// "legacy" was a member once; the document still carries it.
	got := c.ToPropertyValue(map[string]any{"hp": float64(12), "legacy": true}, ctx)
	pv, ok := got.(PropertyValue)
	if !ok {
		t.Fatalf("import returned %T, want PropertyValue", got)
	}
	m := pv.Value.(map[string]any)
	if _, present := m["legacy"]; present {
		t.Error("removed member survived import")
	}
	if m["hp"] != 12 {
		t.Errorf("hp = %v (%T), want int 12", m["hp"], m["hp"])
	}
}

func TestClassImportDecodesTypedMembers(t *testing.T) {
	reg := NewRegistry()

	dir := NewEnumType("Direction")
	dir.Values = []string{"N", "E", "S", "W"}
	reg.Add(dir)

	c := NewClassType("Monster")
	if err := c.AddMember("facing", dir.Wrap(0)); err != nil {
		t.Fatal(err)
	}
	reg.Add(c)
	ctx := NewExportContext(reg, "")

	got := c.ToPropertyValue(map[string]any{"facing": "S"}, ctx)
	m := got.(PropertyValue).Value.(map[string]any)
	facing, ok := m["facing"].(PropertyValue)
	if !ok {
		t.Fatalf("facing = %T, want PropertyValue", m["facing"])
	}
	if facing.Value != 2 || facing.TypeID != dir.ID() {
		t.Errorf("facing = %+v, want index 2 of Direction", facing)
	}
}

func TestClassImportKeepsValueWhenMemberTypeDeleted(t *testing.T) {
	reg := NewRegistry()

	dir := NewEnumType("Direction")
	dir.Values = []string{"N", "E", "S", "W"}
	reg.Add(dir)

	c := NewClassType("Monster")
	if err := c.AddMember("facing", dir.Wrap(0)); err != nil {
		t.Fatal(err)
	}
	reg.Add(c)
	reg.RemoveByName("Direction")
	ctx := NewExportContext(reg, "")

	got := c.ToPropertyValue(map[string]any{"facing": "S"}, ctx)
	m := got.(PropertyValue).Value.(map[string]any)
	if m["facing"] != "S" {
		t.Errorf("facing = %v, want untouched string after type deletion", m["facing"])
	}
}

func TestClassImportNonMapPayload(t *testing.T) {
	reg := NewRegistry()
	c := NewClassType("Monster")
	reg.Add(c)
	ctx := NewExportContext(reg, "")

	got := c.ToPropertyValue("not a map", ctx)
	pv := got.(PropertyValue)
	if pv.Value != "not a map" {
		t.Errorf("non-map payload = %v, want wrapped unchanged", pv.Value)
	}
}

func TestClassExportFlattensEntries(t *testing.T) {
	reg := NewRegistry()

	dir := NewEnumType("Direction")
	dir.Values = []string{"N", "E", "S", "W"}
	reg.Add(dir)

	c := NewClassType("Monster")
	if err := c.AddMember("facing", dir.Wrap(0)); err != nil {
		t.Fatal(err)
	}
	if err := c.AddMember("hp", 0); err != nil {
		t.Fatal(err)
	}
	reg.Add(c)
	ctx := NewExportContext(reg, "")

	ev := c.ToExportValue(map[string]any{"facing": dir.Wrap(1), "hp": 12}, ctx)
	if ev.PropertyTypeName != "Monster" {
		t.Errorf("propertyType = %q, want Monster", ev.PropertyTypeName)
	}
	m, ok := ev.Value.(map[string]any)
	if !ok {
		t.Fatalf("export value = %T, want map", ev.Value)
	}
	// Entries flatten to the generic form: the enum decays to its name.
	if m["facing"] != "E" {
		t.Errorf("facing = %v, want E", m["facing"])
	}
	if m["hp"] != 12 {
		t.Errorf("hp = %v, want 12", m["hp"])
	}
}

func TestClassVariantPreservesMemberOrder(t *testing.T) {
	reg := NewRegistry()
	c := NewClassType("Monster")
	names := []string{"zeta", "alpha", "mid"}
	for _, n := range names {
		if err := c.AddMember(n, 0); err != nil {
			t.Fatal(err)
		}
	}
	reg.Add(c)

	record := c.ToVariant(NewExportContext(reg, ""))
	members := record["members"].([]any)
	if len(members) != 3 {
		t.Fatalf("serialized %d members, want 3", len(members))
	}
	for i, entry := range members {
		m := entry.(map[string]any)
		if m["name"] != names[i] {
			t.Errorf("member %d = %v, want %q", i, m["name"], names[i])
		}
	}

	loaded, ok := CreateFromVariant(record)
	if !ok {
		t.Fatal("CreateFromVariant rejected a class record")
	}
	got := loaded.(*ClassType).Members()
	for i, m := range got {
		if m.Name != names[i] {
			t.Errorf("loaded member %d = %q, want %q", i, m.Name, names[i])
		}
	}
}

func TestCanAddMemberOfType(t *testing.T) {
	reg := NewRegistry()

	a := NewClassType("A")
	b := NewClassType("B")
	c := NewClassType("C")
	dir := NewEnumType("Direction")
	reg.Add(a)
	reg.Add(b)
	reg.Add(c)
	reg.Add(dir)

	// A contains B, B contains C.
	if err := a.AddMember("b", b.Wrap(b.DefaultValue())); err != nil {
		t.Fatal(err)
	}
	if err := b.AddMember("c", c.Wrap(c.DefaultValue())); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name      string
		host      *ClassType
		candidate PropertyType
		want      bool
	}{
		{"class into itself", a, a, false},
		{"enum always addable", a, dir, true},
		{"leaf class into root", a, c, true},
		{"closing the cycle", c, a, false},
		{"direct back edge", b, a, false},
		{"forward along the chain", b, c, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.host.CanAddMemberOfType(tt.candidate, reg); got != tt.want {
				t.Errorf("CanAddMemberOfType = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCanAddMemberOfTypeUnresolvedMemberSkipped(t *testing.T) {
	reg := NewRegistry()

	a := NewClassType("A")
	b := NewClassType("B")
	reg.Add(a)
	reg.Add(b)

	// B carries a member whose type id resolves to nothing; the check
	// must treat it as non-blocking.
	if err := b.AddMember("ghost", PropertyValue{Value: map[string]any{}, TypeID: 999}); err != nil {
		t.Fatal(err)
	}

	if !a.CanAddMemberOfType(b, reg) {
		t.Error("unresolved member reference blocked the add")
	}
}
