package xlsxgrid

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKnownAttr(t *testing.T) {
	for _, key := range []string{"bold", "italic", "border", "align", "valign", "fg_color", "font_color", "font_size"} {
		assert.True(t, KnownAttr(key), key)
	}
	assert.False(t, KnownAttr("bolt"))
	assert.False(t, KnownAttr(""))
}

func TestAttrsClone(t *testing.T) {
	orig := Attrs{AttrBold: true, AttrFgColor: "#D9D9D9"}
	cp := orig.Clone()
	cp[AttrBold] = false

	assert.Equal(t, true, orig[AttrBold])
	assert.Equal(t, false, cp[AttrBold])
	assert.Nil(t, Attrs(nil).Clone())
}

func TestCacheKeyOrderIndependent(t *testing.T) {
	a := Attrs{AttrBold: true, AttrBorder: 2, AttrFgColor: "#fae7b5"}
	b := Attrs{AttrFgColor: "#fae7b5", AttrBold: true, AttrBorder: 2}
	assert.Equal(t, a.cacheKey(), b.cacheKey())
	assert.NotEqual(t, a.cacheKey(), Attrs{AttrBold: true}.cacheKey())
	assert.Empty(t, Attrs{}.cacheKey())
}

func TestStyleTranslation(t *testing.T) {
	attrs := Attrs{
		AttrBold:      true,
		AttrItalic:    true,
		AttrBorder:    2,
		AttrAlign:     "center",
		AttrVAlign:    "top",
		AttrFgColor:   "#C5D9F1",
		AttrFontColor: "#cf1020",
		AttrFontSize:  11.0,
	}
	st := attrs.style()

	require.NotNil(t, st.Font)
	assert.True(t, st.Font.Bold)
	assert.True(t, st.Font.Italic)
	assert.Equal(t, "cf1020", st.Font.Color)
	assert.Equal(t, 11.0, st.Font.Size)

	require.Len(t, st.Border, 4)
	for _, b := range st.Border {
		assert.Equal(t, 2, b.Style)
	}

	require.NotNil(t, st.Alignment)
	assert.Equal(t, "center", st.Alignment.Horizontal)
	assert.Equal(t, "top", st.Alignment.Vertical)

	assert.Equal(t, "pattern", st.Fill.Type)
	assert.Equal(t, []string{"C5D9F1"}, st.Fill.Color)
}

func TestStyleCoercesYAMLValues(t *testing.T) {
	// YAML layers deliver untyped scalars; ints and strings must still land.
	attrs := Attrs{
		AttrBold:     "true",
		AttrBorder:   "2",
		AttrFontSize: 9,
	}
	st := attrs.style()

	require.NotNil(t, st.Font)
	assert.True(t, st.Font.Bold)
	assert.Equal(t, 9.0, st.Font.Size)
	require.Len(t, st.Border, 4)
	assert.Equal(t, 2, st.Border[0].Style)
}

func TestBuilderBuildsCopy(t *testing.T) {
	b := NewAttrs().Bold().Border(1).Align("center").Fill("#D9D9D9")
	first := b.Build()
	second := b.FontSize(9).Build()

	assert.NotContains(t, first, AttrFontSize)
	assert.Contains(t, second, AttrFontSize)
	assert.Equal(t, true, first[AttrBold])
	assert.Equal(t, 1, first[AttrBorder])
	assert.Equal(t, "center", first[AttrAlign])
	assert.Equal(t, "#D9D9D9", first[AttrFgColor])
}

func TestBuilderCoversFullVocabulary(t *testing.T) {
	attrs := NewAttrs().
		Bold().
		Italic().
		Border(2).
		Align("center").
		VAlign("top").
		Fill("#C5D9F1").
		FontColor("#cf1020").
		FontSize(11).
		Build()

	require.Len(t, attrs, len(knownAttrs))
	for key := range attrs {
		assert.True(t, KnownAttr(key), key)
	}
	assert.Equal(t, "top", attrs[AttrVAlign])
	assert.Equal(t, "#cf1020", attrs[AttrFontColor])
}
