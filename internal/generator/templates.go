package generator

import (
	"embed"
	"fmt"
	"sync"
	"text/template"
)

const (
	tmplFile        = "file"
	tmplComponent   = "component"
	tmplEnumScalar  = "enum_scalar"
	tmplEnumBitmask = "enum_bitmask"
	tmplStruct      = "struct"
	tmplStructArray = "struct_array"
)

const templatePattern = "templates/*.gtpl"

//go:embed templates/*.gtpl
var templatesFS embed.FS

var (
	fileTmpl     *template.Template
	tmplInitOnce sync.Once
	tmplInitErr  error
)

// validateTemplates ensures all required templates are defined
func validateTemplates() error {
	requiredTemplates := []string{
		tmplFile,
		tmplComponent,
		tmplEnumScalar,
		tmplEnumBitmask,
		tmplStruct,
		tmplStructArray,
	}
	for _, name := range requiredTemplates {
		if fileTmpl.Lookup(name) == nil {
			return fmt.Errorf("required template %q not found", name)
		}
	}
	return nil
}

// ensureTemplates parses and validates templates exactly once.
func ensureTemplates() error {
	tmplInitOnce.Do(func() {
		var t *template.Template
		t, tmplInitErr = template.New(tmplFile).ParseFS(templatesFS, templatePattern)
		if tmplInitErr != nil {
			return
		}
		fileTmpl = t
		tmplInitErr = validateTemplates()
	})
	return tmplInitErr
}
