package schema

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// componentDoc mirrors one component mapping in the YAML document.
type componentDoc struct {
	Extends []string  `yaml:"extends"`
	Props   []propDoc `yaml:"props"`
}

// propDoc mirrors one prop entry. Type fields are flattened into the prop
// mapping; element carries the same shape for array element types.
type propDoc struct {
	Name       string    `yaml:"name"`
	Type       string    `yaml:"type"`
	Element    *typeDoc  `yaml:"element"`
	Properties []propDoc `yaml:"properties"`
	Options    []string  `yaml:"options"`
	Default    any       `yaml:"default"`
}

type typeDoc struct {
	Type       string    `yaml:"type"`
	Element    *typeDoc  `yaml:"element"`
	Properties []propDoc `yaml:"properties"`
	Options    []string  `yaml:"options"`
}

// LoadFromFile reads and parses a schema document from disk.
func LoadFromFile(path string) (*Schema, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read schema: %w", err)
	}
	return Parse(data)
}

// Parse decodes a YAML schema document into the typed model. Modules and
// components are walked through the raw node tree so the result preserves
// document order; a plain map decode would lose it.
func Parse(data []byte) (*Schema, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse schema: %w", err)
	}
	s := &Schema{}
	if len(doc.Content) == 0 {
		return s, nil
	}
	root := doc.Content[0]
	modules := mappingValue(root, "modules")
	if modules == nil {
		return nil, fmt.Errorf("parse schema: missing top-level modules mapping")
	}
	for i := 0; i+1 < len(modules.Content); i += 2 {
		nameNode, bodyNode := modules.Content[i], modules.Content[i+1]
		mod := Module{Name: nameNode.Value}
		for j := 0; j+1 < len(bodyNode.Content); j += 2 {
			compName, compBody := bodyNode.Content[j], bodyNode.Content[j+1]
			var cd componentDoc
			if err := compBody.Decode(&cd); err != nil {
				return nil, fmt.Errorf("parse component %s: %w", compName.Value, err)
			}
			comp, err := buildComponent(compName.Value, cd)
			if err != nil {
				return nil, err
			}
			mod.Components = append(mod.Components, comp)
		}
		s.Modules = append(s.Modules, mod)
	}
	return s, nil
}

func mappingValue(node *yaml.Node, key string) *yaml.Node {
	if node == nil || node.Kind != yaml.MappingNode {
		return nil
	}
	for i := 0; i+1 < len(node.Content); i += 2 {
		if node.Content[i].Value == key {
			return node.Content[i+1]
		}
	}
	return nil
}

func buildComponent(name string, cd componentDoc) (Component, error) {
	comp := Component{Name: name}
	for _, e := range cd.Extends {
		switch e {
		case "ViewProps":
			comp.Extends = append(comp.Extends, ExtendsViewProps)
		default:
			return Component{}, fmt.Errorf("component %s: unknown extends clause %q", name, e)
		}
	}
	for _, pd := range cd.Props {
		prop, err := buildProp(name, pd)
		if err != nil {
			return Component{}, err
		}
		comp.Props = append(comp.Props, prop)
	}
	return comp, nil
}

func buildProp(componentName string, pd propDoc) (Prop, error) {
	ta, err := buildType(componentName, pd.Name, typeDoc{
		Type:       pd.Type,
		Element:    pd.Element,
		Properties: pd.Properties,
		Options:    pd.Options,
	})
	if err != nil {
		return Prop{}, err
	}
	return Prop{Name: pd.Name, Type: ta, Default: pd.Default}, nil
}

func buildType(componentName, propName string, td typeDoc) (TypeAnnotation, error) {
	switch td.Type {
	case "boolean":
		return TypeAnnotation{Kind: KindBoolean}, nil
	case "string":
		return TypeAnnotation{Kind: KindString}, nil
	case "int32":
		return TypeAnnotation{Kind: KindInt32}, nil
	case "double":
		return TypeAnnotation{Kind: KindDouble}, nil
	case "float":
		return TypeAnnotation{Kind: KindFloat}, nil
	case "color":
		return TypeAnnotation{Kind: KindNativePrimitive, Primitive: PrimitiveColor}, nil
	case "imageSource":
		return TypeAnnotation{Kind: KindNativePrimitive, Primitive: PrimitiveImageSource}, nil
	case "point":
		return TypeAnnotation{Kind: KindNativePrimitive, Primitive: PrimitivePoint}, nil
	case "array":
		if td.Element == nil {
			return TypeAnnotation{}, fmt.Errorf("component %s: prop %s: array without element type", componentName, propName)
		}
		elem, err := buildType(componentName, propName, *td.Element)
		if err != nil {
			return TypeAnnotation{}, err
		}
		return TypeAnnotation{Kind: KindArray, Element: &elem}, nil
	case "object":
		ta := TypeAnnotation{Kind: KindObject}
		for _, inner := range td.Properties {
			p, err := buildProp(componentName, inner)
			if err != nil {
				return TypeAnnotation{}, err
			}
			ta.Properties = append(ta.Properties, p)
		}
		return ta, nil
	case "enum":
		ta := TypeAnnotation{Kind: KindStringEnum}
		for _, o := range td.Options {
			ta.Options = append(ta.Options, EnumOption{Name: o})
		}
		return ta, nil
	default:
		return TypeAnnotation{}, fmt.Errorf("component %s: prop %s: unknown type %q", componentName, propName, td.Type)
	}
}
