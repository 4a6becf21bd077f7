package xlsxgrid

// AttrsBuilder builds attribute maps fluently. It is a convenience for code
// that assembles formats programmatically; configuration layers construct
// Attrs directly from YAML.
type AttrsBuilder struct {
	attrs Attrs
}

// NewAttrs starts an empty attribute builder.
func NewAttrs() *AttrsBuilder {
	return &AttrsBuilder{attrs: Attrs{}}
}

// Bold sets the bold font flag.
func (b *AttrsBuilder) Bold() *AttrsBuilder {
	b.attrs[AttrBold] = true
	return b
}

// Italic sets the italic font flag.
func (b *AttrsBuilder) Italic() *AttrsBuilder {
	b.attrs[AttrItalic] = true
	return b
}

// Border sets the border weight on all four cell edges.
func (b *AttrsBuilder) Border(weight int) *AttrsBuilder {
	b.attrs[AttrBorder] = weight
	return b
}

// Align sets the horizontal alignment ("left", "center", "right").
func (b *AttrsBuilder) Align(horizontal string) *AttrsBuilder {
	b.attrs[AttrAlign] = horizontal
	return b
}

// VAlign sets the vertical alignment ("top", "center", "bottom").
func (b *AttrsBuilder) VAlign(vertical string) *AttrsBuilder {
	b.attrs[AttrVAlign] = vertical
	return b
}

// Fill sets the background fill color, "#RRGGBB" or "RRGGBB".
func (b *AttrsBuilder) Fill(color string) *AttrsBuilder {
	b.attrs[AttrFgColor] = color
	return b
}

// FontColor sets the font color, "#RRGGBB" or "RRGGBB".
func (b *AttrsBuilder) FontColor(color string) *AttrsBuilder {
	b.attrs[AttrFontColor] = color
	return b
}

// FontSize sets the font size in points.
func (b *AttrsBuilder) FontSize(size float64) *AttrsBuilder {
	b.attrs[AttrFontSize] = size
	return b
}

// Build returns the accumulated attributes. The builder can keep being used;
// Build hands out a copy.
func (b *AttrsBuilder) Build() Attrs {
	return b.attrs.Clone()
}
