package generator

// This file houses the intermediate representation structures handed to the
// templates (synthesis -> modeling -> render). Templates substitute
// placeholders only; every decision is made while building these models.

// fileModel is the root template model for one generated document.
type fileModel struct {
	Command    string
	Version    string
	Imports    []string // sorted external declarations
	Components []componentModel
}

// componentModel carries everything rendered for one value class.
type componentModel struct {
	ClassName string
	Extends   string // inheritance fragment, empty when no base capability
	Enums     []enumModel
	Structs   []structModel
	Fields    []fieldModel
}

// enumModel describes one synthesized enumeration declaration.
type enumModel struct {
	Name     string
	MaskName string // set for the bitmask representation only
	Bitmask  bool
	Options  []optionModel
}

// optionModel is one enum constant. Index fixes the bit position for flag
// enums; reordering options is a breaking change to serialized masks.
type optionModel struct {
	Identifier string
	Literal    string
	Index      int
}

// structModel describes one synthesized aggregate declaration. When
// ArrayConverter is set, a sequence-conversion routine is rendered directly
// after the struct's own converter.
type structModel struct {
	Name           string
	Fields         []fieldModel
	ArrayConverter bool
}

// fieldModel is one declared field with its inline default literal.
type fieldModel struct {
	TypeName string
	Name     string
	Default  string
}
