package generator

import (
	"fmt"
	"slices"

	"github.com/propkit/propsgen/internal/schema"
)

// structAccumulator is the per-component keyed dictionary of synthesized
// aggregates. Keyed by struct name, read back in insertion order; since
// children are inserted before the struct that references them, insertion
// order is the dependency-order guarantee for rendering.
type structAccumulator struct {
	order  []string
	byName map[string]structModel
}

func newStructAccumulator() *structAccumulator {
	return &structAccumulator{byName: map[string]structModel{}}
}

// put inserts or overwrites by name. A revisited name keeps its original
// position; within one component a revisited path always carries identical
// content, so the overwrite is a no-op in practice.
func (a *structAccumulator) put(sm structModel) {
	if _, ok := a.byName[sm.Name]; !ok {
		a.order = append(a.order, sm.Name)
	}
	a.byName[sm.Name] = sm
}

func (a *structAccumulator) models() []structModel {
	out := make([]structModel, 0, len(a.order))
	for _, name := range a.order {
		out = append(out, a.byName[name])
	}
	return out
}

// synthesizeStructs walks all object-shaped props of a component depth-first
// and returns the accumulated declarations.
func synthesizeStructs(c schema.Component) (*structAccumulator, error) {
	acc := newStructAccumulator()
	for _, p := range c.Props {
		if err := synthesizePropStructs(c.Name, p, nil, acc); err != nil {
			return nil, err
		}
	}
	return acc, nil
}

func synthesizePropStructs(componentName string, prop schema.Prop, pathSegments []string, acc *structAccumulator) error {
	var inner []schema.Prop
	arrayConverter := false
	switch {
	case prop.Type.Kind == schema.KindObject:
		if prop.Type.Properties == nil {
			return fmt.Errorf("%w: prop %s", ErrMissingObjectProperties, prop.Name)
		}
		inner = prop.Type.Properties
	case prop.Type.Kind == schema.KindArray && prop.Type.Element != nil && prop.Type.Element.Kind == schema.KindObject:
		if prop.Type.Element.Properties == nil {
			return fmt.Errorf("%w: prop %s", ErrMissingObjectProperties, prop.Name)
		}
		inner = prop.Type.Element.Properties
		arrayConverter = true
	default:
		return nil
	}

	path := append(slices.Clone(pathSegments), prop.Name)

	// children first: nested declarations must precede the struct that
	// references them, forward references are not permitted in the output
	for _, ip := range inner {
		if err := synthesizePropStructs(componentName, ip, path, acc); err != nil {
			return err
		}
	}

	sm := structModel{Name: structNameFor(componentName, path), ArrayConverter: arrayConverter}
	for _, ip := range inner {
		tn, err := nativeTypeName(componentName, ip, path)
		if err != nil {
			return err
		}
		sm.Fields = append(sm.Fields, fieldModel{
			TypeName: tn,
			Name:     ip.Name,
			Default:  defaultLiteral(componentName, ip),
		})
	}
	acc.put(sm)
	return nil
}
