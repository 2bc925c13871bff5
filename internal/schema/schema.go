package schema

// This file houses the typed schema model the generator consumes. The model
// is a closed set of tagged variants: every switch over a kind must carry a
// default case that reports the unknown variant, so adding a kind without
// updating a consumer fails loudly instead of generating garbage.

// TypeKind discriminates the TypeAnnotation variants.
type TypeKind int

const (
	KindBoolean TypeKind = iota
	KindString
	KindInt32
	KindDouble
	KindFloat
	KindNativePrimitive
	KindArray
	KindObject
	KindStringEnum
)

// PrimitiveKind identifies an opaque host type.
type PrimitiveKind int

const (
	PrimitiveColor PrimitiveKind = iota
	PrimitiveImageSource
	PrimitivePoint
)

// ExtendsClause identifies a known base capability set.
type ExtendsClause int

const (
	// ExtendsViewProps references the platform's base view property set.
	ExtendsViewProps ExtendsClause = iota
)

// Schema is an ordered mapping from module name to component definitions.
// Read-only input; the generator never mutates it.
type Schema struct {
	Modules []Module
}

// Module groups the components declared under one schema module, in
// document order.
type Module struct {
	Name       string
	Components []Component
}

// Component is one declared UI element.
type Component struct {
	Name    string
	Extends []ExtendsClause
	Props   []Prop
}

// Prop is one named, typed field of a component. Declaration order is
// significant: it fixes field order and, for flag enums, bit positions.
type Prop struct {
	Name    string
	Type    TypeAnnotation
	Default any
}

// TypeAnnotation is the closed tagged variant describing a prop's type.
// Exactly the fields relevant to Kind are populated:
//
//	KindNativePrimitive -> Primitive
//	KindArray           -> Element
//	KindObject          -> Properties
//	KindStringEnum      -> Options
type TypeAnnotation struct {
	Kind       TypeKind
	Primitive  PrimitiveKind
	Element    *TypeAnnotation
	Properties []Prop
	Options    []EnumOption
}

// EnumOption is one literal of a string enumeration.
type EnumOption struct {
	Name string
}
