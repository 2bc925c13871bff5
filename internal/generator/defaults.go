package generator

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/propkit/propsgen/internal/schema"
)

// defaultLiteral returns the inline initializer expression for a prop's
// declared default. Total over the closed variant set; a default whose raw
// type does not fit the annotation falls back to the zero initializer rather
// than failing, since the schema is assumed pre-validated.
func defaultLiteral(componentName string, prop schema.Prop) string {
	switch prop.Type.Kind {
	case schema.KindBoolean:
		if b, ok := prop.Default.(bool); ok && b {
			return "true"
		}
		return "false"
	case schema.KindString:
		if s, ok := prop.Default.(string); ok && s != "" {
			return strconv.Quote(s)
		}
		return ""
	case schema.KindInt32:
		return intLiteral(prop.Default)
	case schema.KindDouble, schema.KindFloat:
		return floatLiteral(prop.Default)
	case schema.KindStringEnum:
		return scalarEnumLiteral(componentName, prop)
	case schema.KindArray:
		if prop.Type.Element != nil && prop.Type.Element.Kind == schema.KindStringEnum {
			return flagEnumLiteral(componentName, prop)
		}
		return ""
	default:
		// native primitives and objects brace-initialize empty
		return ""
	}
}

func intLiteral(v any) string {
	switch n := v.(type) {
	case int:
		return strconv.Itoa(n)
	case int64:
		return strconv.FormatInt(n, 10)
	}
	return "0"
}

func floatLiteral(v any) string {
	switch n := v.(type) {
	case float64:
		s := strconv.FormatFloat(n, 'f', -1, 64)
		if !strings.Contains(s, ".") {
			s += ".0"
		}
		return s
	case int:
		return strconv.Itoa(n) + ".0"
	}
	return "0.0"
}

func scalarEnumLiteral(componentName string, prop schema.Prop) string {
	options := prop.Type.Options
	if len(options) == 0 {
		return ""
	}
	name := enumName(componentName, prop.Name)
	if s, ok := prop.Default.(string); ok {
		for _, o := range options {
			if o.Name == s {
				return name + "::" + safeIdentifier(s)
			}
		}
	}
	return name + "::" + safeIdentifier(options[0].Name)
}

func flagEnumLiteral(componentName string, prop schema.Prop) string {
	options := prop.Type.Element.Options
	list, ok := prop.Default.([]any)
	if !ok || len(list) == 0 {
		return ""
	}
	name := enumName(componentName, prop.Name)
	var refs []string
	for _, v := range list {
		s, ok := v.(string)
		if !ok {
			continue
		}
		for _, o := range options {
			if o.Name == s {
				refs = append(refs, name+"::"+safeIdentifier(s))
				break
			}
		}
	}
	if len(refs) == 0 {
		return ""
	}
	return fmt.Sprintf("static_cast<%s>(%s)", maskNameFor(componentName, prop.Name), strings.Join(refs, " | "))
}
