package schema

import (
	"testing"

	"github.com/stretchr/testify/require"
)

const basicDoc = `
modules:
  CoreComponents:
    Badge:
      extends: [ViewProps]
      props:
        - name: enabled
          type: boolean
          default: true
        - name: alignment
          type: enum
          options: [left, right]
          default: right
        - name: edges
          type: array
          element:
            type: enum
            options: [top, bottom]
        - name: insets
          type: object
          properties:
            - name: top
              type: float
        - name: tintColor
          type: color
    Chip:
      props:
        - name: label
          type: string
  Extras:
    Card:
      props:
        - name: anchor
          type: point
`

func TestParse(t *testing.T) {
	t.Run("document order of modules and components is preserved", func(t *testing.T) {
		s, err := Parse([]byte(basicDoc))
		require.NoError(t, err)
		require.Len(t, s.Modules, 2)
		require.Equal(t, "CoreComponents", s.Modules[0].Name)
		require.Equal(t, "Extras", s.Modules[1].Name)
		require.Len(t, s.Modules[0].Components, 2)
		require.Equal(t, "Badge", s.Modules[0].Components[0].Name)
		require.Equal(t, "Chip", s.Modules[0].Components[1].Name)
	})

	t.Run("props decode in declaration order with their kinds", func(t *testing.T) {
		s, err := Parse([]byte(basicDoc))
		require.NoError(t, err)
		badge := s.Modules[0].Components[0]
		require.Equal(t, []ExtendsClause{ExtendsViewProps}, badge.Extends)
		require.Len(t, badge.Props, 5)

		require.Equal(t, "enabled", badge.Props[0].Name)
		require.Equal(t, KindBoolean, badge.Props[0].Type.Kind)
		require.Equal(t, true, badge.Props[0].Default)

		require.Equal(t, KindStringEnum, badge.Props[1].Type.Kind)
		require.Equal(t, []EnumOption{{Name: "left"}, {Name: "right"}}, badge.Props[1].Type.Options)
		require.Equal(t, "right", badge.Props[1].Default)

		edges := badge.Props[2].Type
		require.Equal(t, KindArray, edges.Kind)
		require.NotNil(t, edges.Element)
		require.Equal(t, KindStringEnum, edges.Element.Kind)

		insets := badge.Props[3].Type
		require.Equal(t, KindObject, insets.Kind)
		require.Len(t, insets.Properties, 1)
		require.Equal(t, KindFloat, insets.Properties[0].Type.Kind)

		require.Equal(t, KindNativePrimitive, badge.Props[4].Type.Kind)
		require.Equal(t, PrimitiveColor, badge.Props[4].Type.Primitive)
	})

	t.Run("unknown type names are rejected", func(t *testing.T) {
		doc := `
modules:
  M:
    C:
      props:
        - name: p
          type: tuple
`
		_, err := Parse([]byte(doc))
		require.Error(t, err)
		require.Contains(t, err.Error(), `unknown type "tuple"`)
	})

	t.Run("unknown extends clauses are rejected", func(t *testing.T) {
		doc := `
modules:
  M:
    C:
      extends: [ScrollViewProps]
      props: []
`
		_, err := Parse([]byte(doc))
		require.Error(t, err)
		require.Contains(t, err.Error(), "unknown extends clause")
	})

	t.Run("arrays require an element type", func(t *testing.T) {
		doc := `
modules:
  M:
    C:
      props:
        - name: xs
          type: array
`
		_, err := Parse([]byte(doc))
		require.Error(t, err)
		require.Contains(t, err.Error(), "array without element type")
	})

	t.Run("missing modules mapping is rejected", func(t *testing.T) {
		_, err := Parse([]byte("components: {}"))
		require.Error(t, err)
	})
}
