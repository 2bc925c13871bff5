package generator

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/propkit/propsgen/internal/schema"
)

func TestDefaultLiteral(t *testing.T) {
	t.Run("booleans", func(t *testing.T) {
		require.Equal(t, "false", defaultLiteral("Badge", schema.Prop{Name: "p", Type: scalar(schema.KindBoolean)}))
		require.Equal(t, "true", defaultLiteral("Badge", schema.Prop{Name: "p", Type: scalar(schema.KindBoolean), Default: true}))
	})

	t.Run("strings quote the declared default", func(t *testing.T) {
		require.Equal(t, `"badge"`, defaultLiteral("Badge", schema.Prop{Name: "p", Type: scalar(schema.KindString), Default: "badge"}))
		require.Equal(t, "", defaultLiteral("Badge", schema.Prop{Name: "p", Type: scalar(schema.KindString)}))
	})

	t.Run("integers", func(t *testing.T) {
		require.Equal(t, "5", defaultLiteral("Badge", schema.Prop{Name: "p", Type: scalar(schema.KindInt32), Default: 5}))
		require.Equal(t, "0", defaultLiteral("Badge", schema.Prop{Name: "p", Type: scalar(schema.KindInt32)}))
	})

	t.Run("floats always carry a decimal point", func(t *testing.T) {
		require.Equal(t, "1.5", defaultLiteral("Badge", schema.Prop{Name: "p", Type: scalar(schema.KindFloat), Default: 1.5}))
		require.Equal(t, "2.0", defaultLiteral("Badge", schema.Prop{Name: "p", Type: scalar(schema.KindFloat), Default: 2.0}))
		require.Equal(t, "1.0", defaultLiteral("Badge", schema.Prop{Name: "p", Type: scalar(schema.KindDouble), Default: 1}))
		require.Equal(t, "0.0", defaultLiteral("Badge", schema.Prop{Name: "p", Type: scalar(schema.KindDouble)}))
	})

	t.Run("scalar enums reference the declared default option", func(t *testing.T) {
		p := schema.Prop{Name: "alignment", Type: enumOf("left", "right"), Default: "right"}
		require.Equal(t, "BadgeAlignment::Right", defaultLiteral("Badge", p))
	})

	t.Run("scalar enums fall back to the first option", func(t *testing.T) {
		p := schema.Prop{Name: "alignment", Type: enumOf("left", "right")}
		require.Equal(t, "BadgeAlignment::Left", defaultLiteral("Badge", p))
	})

	t.Run("flag enums with one default option cast to the mask", func(t *testing.T) {
		p := schema.Prop{Name: "edges", Type: arrayOf(enumOf("top", "bottom")), Default: []any{"top"}}
		require.Equal(t, "static_cast<BadgeEdgesMask>(BadgeEdges::Top)", defaultLiteral("Badge", p))
	})

	t.Run("flag enums with several default options OR their constants inside the cast", func(t *testing.T) {
		p := schema.Prop{Name: "edges", Type: arrayOf(enumOf("top", "left", "bottom")), Default: []any{"top", "bottom"}}
		require.Equal(t, "static_cast<BadgeEdgesMask>(BadgeEdges::Top | BadgeEdges::Bottom)", defaultLiteral("Badge", p))
	})

	t.Run("flag enums without defaults brace-initialize empty", func(t *testing.T) {
		p := schema.Prop{Name: "edges", Type: arrayOf(enumOf("top"))}
		require.Equal(t, "", defaultLiteral("Badge", p))
	})

	t.Run("native primitives and aggregates brace-initialize empty", func(t *testing.T) {
		require.Equal(t, "", defaultLiteral("Badge", schema.Prop{Name: "p", Type: native(schema.PrimitiveColor)}))
		require.Equal(t, "", defaultLiteral("Badge", schema.Prop{Name: "p", Type: objectOf()}))
		require.Equal(t, "", defaultLiteral("Badge", schema.Prop{Name: "p", Type: arrayOf(scalar(schema.KindInt32))}))
	})
}
