package generator

import (
	"fmt"

	"github.com/propkit/propsgen/internal/schema"
)

// External declarations contributed per type. The set is deduplicated during
// resolution and always rendered sorted, so discovery order is never
// observable in the output.
const (
	importColor            = "react/renderer/graphics/Color.h"
	importImageSource      = "react/renderer/imagemanager/primitives.h"
	importPoint            = "react/renderer/graphics/Point.h"
	importVector           = "vector"
	importCinttypes        = "cinttypes"
	importPropsConversions = "react/renderer/core/propsConversions.h"
)

// resolveImports accumulates the external declarations required by a property
// list into the given set, recursing through nested objects.
func resolveImports(props []schema.Prop, into map[string]struct{}) error {
	for _, p := range props {
		if err := resolveTypeImports(p.Name, p.Type, into); err != nil {
			return err
		}
	}
	return nil
}

func resolveTypeImports(propName string, ta schema.TypeAnnotation, into map[string]struct{}) error {
	switch ta.Kind {
	case schema.KindBoolean, schema.KindString, schema.KindInt32, schema.KindDouble, schema.KindFloat:
		// scalars need no external declaration
	case schema.KindStringEnum:
		// scalar enums are self-contained declarations
	case schema.KindNativePrimitive:
		switch ta.Primitive {
		case schema.PrimitiveColor:
			into[importColor] = struct{}{}
		case schema.PrimitiveImageSource:
			into[importImageSource] = struct{}{}
		case schema.PrimitivePoint:
			into[importPoint] = struct{}{}
		default:
			return fmt.Errorf("%w: prop %s: unknown native primitive kind %d", ErrInvalidSchema, propName, ta.Primitive)
		}
	case schema.KindArray:
		if ta.Element == nil {
			return fmt.Errorf("%w: prop %s: array without element type", ErrInvalidSchema, propName)
		}
		into[importVector] = struct{}{}
		switch ta.Element.Kind {
		case schema.KindArray:
			return fmt.Errorf("%w: prop %s", ErrUnsupportedNesting, propName)
		case schema.KindStringEnum:
			into[importCinttypes] = struct{}{}
		case schema.KindObject:
			into[importPropsConversions] = struct{}{}
			return resolveImports(ta.Element.Properties, into)
		default:
			return resolveTypeImports(propName, *ta.Element, into)
		}
	case schema.KindObject:
		into[importPropsConversions] = struct{}{}
		return resolveImports(ta.Properties, into)
	default:
		return fmt.Errorf("%w: prop %s: unknown type kind %d", ErrInvalidSchema, propName, ta.Kind)
	}
	return nil
}
