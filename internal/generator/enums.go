package generator

import (
	"fmt"

	"github.com/propkit/propsgen/internal/schema"
)

// maxFlagOptions is the hard cap on flag-enum options; the generated mask
// storage type is uint32_t.
const maxFlagOptions = 32

// synthesizeEnums collects the enum declarations for one component in
// discovery order. The representation is chosen by context: a StringEnum prop
// becomes a scalar enum, an Array(StringEnum) prop a bitmask enum.
//
// The walk is shallow on purpose: top-level props plus one level into
// directly nested object props. Enums nested deeper than that are not
// synthesized, matching the established naming scheme which keys enums on
// (component, prop) without a nesting path.
func synthesizeEnums(c schema.Component) ([]enumModel, error) {
	var out []enumModel
	seen := map[string]enumModel{}
	add := func(em enumModel) error {
		if prev, ok := seen[em.Name]; ok {
			if !sameEnum(prev, em) {
				return fmt.Errorf("%w: enum name collision on %s", ErrInvalidSchema, em.Name)
			}
			return nil
		}
		seen[em.Name] = em
		out = append(out, em)
		return nil
	}
	emit := func(propName string, ta schema.TypeAnnotation) error {
		switch {
		case ta.Kind == schema.KindStringEnum:
			em, err := buildEnum(c.Name, propName, ta.Options, false)
			if err != nil {
				return err
			}
			return add(em)
		case ta.Kind == schema.KindArray && ta.Element != nil && ta.Element.Kind == schema.KindStringEnum:
			em, err := buildEnum(c.Name, propName, ta.Element.Options, true)
			if err != nil {
				return err
			}
			return add(em)
		}
		return nil
	}
	for _, p := range c.Props {
		if err := emit(p.Name, p.Type); err != nil {
			return nil, err
		}
		if p.Type.Kind == schema.KindObject {
			for _, inner := range p.Type.Properties {
				if err := emit(inner.Name, inner.Type); err != nil {
					return nil, err
				}
			}
		}
	}
	return out, nil
}

func buildEnum(componentName, propName string, options []schema.EnumOption, bitmask bool) (enumModel, error) {
	if len(options) == 0 {
		return enumModel{}, fmt.Errorf("%w: enum prop %s has no options", ErrInvalidSchema, propName)
	}
	em := enumModel{Name: enumName(componentName, propName), Bitmask: bitmask}
	if bitmask {
		if len(options) > maxFlagOptions {
			return enumModel{}, fmt.Errorf("%w: flag enum %s has %d options, storage holds %d bits",
				ErrInvalidSchema, em.Name, len(options), maxFlagOptions)
		}
		em.MaskName = maskNameFor(componentName, propName)
	}
	for i, o := range options {
		em.Options = append(em.Options, optionModel{
			Identifier: safeIdentifier(o.Name),
			Literal:    o.Name,
			Index:      i,
		})
	}
	return em, nil
}

func sameEnum(a, b enumModel) bool {
	if a.Bitmask != b.Bitmask || len(a.Options) != len(b.Options) {
		return false
	}
	for i := range a.Options {
		if a.Options[i].Literal != b.Options[i].Literal {
			return false
		}
	}
	return true
}
