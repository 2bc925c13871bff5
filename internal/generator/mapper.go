package generator

import (
	"fmt"
	"slices"
	"strings"
	"unicode"

	"github.com/propkit/propsgen/internal/schema"
)

func upperFirst(s string) string {
	if s == "" {
		return s
	}
	r := []rune(s)
	r[0] = []rune(strings.ToUpper(string(r[0])))[0]
	return string(r)
}

// enumName derives a synthesized enum's name from the component and prop
// names only. The nesting path is deliberately not part of the name; see
// synthesizeEnums for the collision check this requires.
func enumName(componentName, propName string) string {
	return componentName + upperFirst(propName)
}

// maskNameFor is the storage alias for a flag enum.
func maskNameFor(componentName, propName string) string {
	return enumName(componentName, propName) + "Mask"
}

// structNameFor derives a synthesized aggregate's name from the full chain of
// prop names leading to it. Two distinct paths must never collapse to the
// same name.
func structNameFor(componentName string, pathSegments []string) string {
	var b strings.Builder
	b.WriteString(componentName)
	for _, seg := range pathSegments {
		b.WriteString(upperFirst(seg))
	}
	b.WriteString("Struct")
	return b.String()
}

// safeIdentifier maps an arbitrary enum option literal to a valid identifier:
// non-alphanumeric runs split the literal into parts, each part is
// capitalized, and a leading digit is shielded with an underscore.
func safeIdentifier(literal string) string {
	var parts []string
	var cur strings.Builder
	for _, r := range literal {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			cur.WriteRune(r)
			continue
		}
		if cur.Len() > 0 {
			parts = append(parts, cur.String())
			cur.Reset()
		}
	}
	if cur.Len() > 0 {
		parts = append(parts, cur.String())
	}
	var b strings.Builder
	for _, p := range parts {
		b.WriteString(upperFirst(p))
	}
	id := b.String()
	if id == "" {
		return "_"
	}
	if unicode.IsDigit([]rune(id)[0]) {
		return "_" + id
	}
	return id
}

// scalarTypeName maps each scalar primitive kind to its fixed native type
// name. The second result reports whether the kind is a scalar at all.
func scalarTypeName(kind schema.TypeKind) (string, bool) {
	switch kind {
	case schema.KindBoolean:
		return "bool", true
	case schema.KindString:
		return "std::string", true
	case schema.KindInt32:
		return "int", true
	case schema.KindDouble:
		return "double", true
	case schema.KindFloat:
		return "Float", true
	}
	return "", false
}

func nativePrimitiveTypeName(kind schema.PrimitiveKind) (string, error) {
	switch kind {
	case schema.PrimitiveColor:
		return "SharedColor", nil
	case schema.PrimitiveImageSource:
		return "ImageSource", nil
	case schema.PrimitivePoint:
		return "Point", nil
	default:
		return "", fmt.Errorf("%w: unknown native primitive kind %d", ErrInvalidSchema, kind)
	}
}

// baseCapabilityReference maps a known extends clause to its inheritance
// fragment and the external declaration it requires.
func baseCapabilityReference(clause schema.ExtendsClause) (string, string, error) {
	switch clause {
	case schema.ExtendsViewProps:
		return "ViewProps", "react/renderer/components/view/ViewProps.h", nil
	default:
		return "", "", fmt.Errorf("%w: unknown extends clause %d", ErrInvalidSchema, clause)
	}
}

// nativeTypeName maps one prop's declared type to its native type name.
// pathSegments is the chain of prop names from the component root down to,
// and excluding, this prop.
func nativeTypeName(componentName string, prop schema.Prop, pathSegments []string) (string, error) {
	return annotationTypeName(componentName, prop.Name, prop.Type, pathSegments)
}

func annotationTypeName(componentName, propName string, ta schema.TypeAnnotation, pathSegments []string) (string, error) {
	switch ta.Kind {
	case schema.KindBoolean, schema.KindString, schema.KindInt32, schema.KindDouble, schema.KindFloat:
		name, _ := scalarTypeName(ta.Kind)
		return name, nil
	case schema.KindNativePrimitive:
		return nativePrimitiveTypeName(ta.Primitive)
	case schema.KindArray:
		if ta.Element == nil {
			return "", fmt.Errorf("%w: prop %s: array without element type", ErrInvalidSchema, propName)
		}
		switch ta.Element.Kind {
		case schema.KindArray:
			return "", fmt.Errorf("%w: prop %s", ErrUnsupportedNesting, propName)
		case schema.KindObject:
			path := append(slices.Clone(pathSegments), propName)
			return "std::vector<" + structNameFor(componentName, path) + ">", nil
		case schema.KindStringEnum:
			return maskNameFor(componentName, propName), nil
		default:
			elem, err := annotationTypeName(componentName, propName, *ta.Element, pathSegments)
			if err != nil {
				return "", err
			}
			return "std::vector<" + elem + ">", nil
		}
	case schema.KindObject:
		path := append(slices.Clone(pathSegments), propName)
		return structNameFor(componentName, path), nil
	case schema.KindStringEnum:
		return enumName(componentName, propName), nil
	default:
		return "", fmt.Errorf("%w: prop %s: unknown type kind %d", ErrInvalidSchema, propName, ta.Kind)
	}
}
