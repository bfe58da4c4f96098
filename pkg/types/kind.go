package types

// Kind discriminates the declared type variants. Every conversion site
// switches exhaustively over it, so adding a kind is a compile-visible
// change rather than a new virtual override.
type Kind int

const (
	KindInvalid Kind = iota
	KindEnum
	KindClass
)

// Serialized kind tokens (prd001-registry-core R2.2).
const (
	kindTokenEnum    = "enum"
	kindTokenClass   = "class"
	kindTokenInvalid = "invalid"
)

// KindFromString maps a serialized kind token to its Kind. An empty token
// maps to KindEnum: early documents predate the class kind and carried no
// type field at all.
func KindFromString(s string) Kind {
	switch s {
	case kindTokenEnum, "":
		return KindEnum
	case kindTokenClass:
		return KindClass
	default:
		return KindInvalid
	}
}

// String returns the serialized token for the kind. Unknown kinds
// serialize to the literal "invalid" token rather than an empty string.
func (k Kind) String() string {
	switch k {
	case KindEnum:
		return kindTokenEnum
	case KindClass:
		return kindTokenClass
	default:
		return kindTokenInvalid
	}
}
