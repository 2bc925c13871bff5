package generator

import (
	"bytes"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/propkit/propsgen/internal/schema"
)

// Config holds generation settings.
type Config struct {
	Schema  string // path to the schema document
	Output  string // output filename
	Command string // canonical invocation line, embedded in the banner
	Version string // propsgen build version
}

// Run loads the schema and writes the generated document. Any error aborts
// the pass; no partial output is written.
func Run(cfg Config) error {
	s, err := schema.LoadFromFile(cfg.Schema)
	if err != nil {
		return err
	}
	doc, err := Generate(s, cfg.Command, cfg.Version)
	if err != nil {
		return err
	}
	return os.WriteFile(cfg.Output, []byte(doc), 0o644)
}

// Generate renders the whole output document for one schema. It is a pure
// function of its inputs: identical input yields byte-identical output.
func Generate(s *schema.Schema, command, version string) (string, error) {
	if err := ensureTemplates(); err != nil {
		return "", err
	}
	imports := map[string]struct{}{}
	var components []componentModel
	for _, mod := range s.Modules {
		for _, c := range mod.Components {
			cm, err := buildComponentModel(c, imports)
			if err != nil {
				return "", fmt.Errorf("component %s: %w", c.Name, err)
			}
			components = append(components, cm)
		}
	}
	sorted := make([]string, 0, len(imports))
	for imp := range imports {
		sorted = append(sorted, imp)
	}
	sort.Strings(sorted)

	data := fileModel{Command: command, Version: version, Imports: sorted, Components: components}
	var out bytes.Buffer
	if err := fileTmpl.ExecuteTemplate(&out, tmplFile, data); err != nil {
		return "", err
	}
	return out.String(), nil
}

// buildComponentModel assembles one value class from the synthesizer outputs
// and merges the component's external declarations into the document set.
func buildComponentModel(c schema.Component, imports map[string]struct{}) (componentModel, error) {
	cm := componentModel{ClassName: c.Name + "Props"}

	var bases []string
	for _, e := range c.Extends {
		frag, imp, err := baseCapabilityReference(e)
		if err != nil {
			return componentModel{}, err
		}
		bases = append(bases, "public "+frag)
		imports[imp] = struct{}{}
	}
	cm.Extends = strings.Join(bases, ", ")

	enums, err := synthesizeEnums(c)
	if err != nil {
		return componentModel{}, err
	}
	cm.Enums = enums

	acc, err := synthesizeStructs(c)
	if err != nil {
		return componentModel{}, err
	}
	cm.Structs = acc.models()

	for _, p := range c.Props {
		tn, err := nativeTypeName(c.Name, p, nil)
		if err != nil {
			return componentModel{}, err
		}
		cm.Fields = append(cm.Fields, fieldModel{
			TypeName: tn,
			Name:     p.Name,
			Default:  defaultLiteral(c.Name, p),
		})
	}

	if err := resolveImports(c.Props, imports); err != nil {
		return componentModel{}, err
	}
	return cm, nil
}
