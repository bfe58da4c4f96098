package types

import "testing"

func TestKindFromString(t *testing.T) {
	tests := []struct {
		token string
		want  Kind
	}{
		{"enum", KindEnum},
		{"class", KindClass},
		{"", KindEnum}, // legacy documents carry no type token
		{"struct", KindInvalid},
		{"ENUM", KindInvalid},
	}
	for _, tt := range tests {
		t.Run(tt.token, func(t *testing.T) {
			if got := KindFromString(tt.token); got != tt.want {
				t.Errorf("KindFromString(%q) = %v, want %v", tt.token, got, tt.want)
			}
		})
	}
}

func TestKindString(t *testing.T) {
	tests := []struct {
		kind Kind
		want string
	}{
		{KindEnum, "enum"},
		{KindClass, "class"},
		{KindInvalid, "invalid"},
		{Kind(42), "invalid"},
	}
	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("Kind(%d).String() = %q, want %q", tt.kind, got, tt.want)
		}
	}
}

func TestStorageTypeTokens(t *testing.T) {
	if got := StorageTypeFromString("int"); got != IntValue {
		t.Errorf("StorageTypeFromString(int) = %v, want IntValue", got)
	}
	// Anything else defaults to string storage.
	for _, token := range []string{"string", "", "INT", "text"} {
		if got := StorageTypeFromString(token); got != StringValue {
			t.Errorf("StorageTypeFromString(%q) = %v, want StringValue", token, got)
		}
	}

	if got := IntValue.String(); got != "int" {
		t.Errorf("IntValue.String() = %q, want int", got)
	}
	if got := StringValue.String(); got != "string" {
		t.Errorf("StringValue.String() = %q, want string", got)
	}
}
