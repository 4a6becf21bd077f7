package xlsxgrid

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"
)

// Attrs is a flat cell format description. Keys follow the vocabulary the
// calendar configuration files use: bold, italic, border, align, valign,
// fg_color, font_color, font_size. Values are kept loosely typed so that
// whatever a YAML layer supplies is carried through to the sink unchanged.
type Attrs map[string]interface{}

// Attribute keys understood by the grid when building a cell style.
const (
	AttrBold      = "bold"
	AttrItalic    = "italic"
	AttrBorder    = "border"
	AttrAlign     = "align"
	AttrVAlign    = "valign"
	AttrFgColor   = "fg_color"
	AttrFontColor = "font_color"
	AttrFontSize  = "font_size"
)

var knownAttrs = map[string]bool{
	AttrBold:      true,
	AttrItalic:    true,
	AttrBorder:    true,
	AttrAlign:     true,
	AttrVAlign:    true,
	AttrFgColor:   true,
	AttrFontColor: true,
	AttrFontSize:  true,
}

// KnownAttr reports whether key is an attribute the grid can translate into
// cell styling. Callers merging user-supplied format layers use this to weed
// out typos before they reach the sink.
func KnownAttr(key string) bool {
	return knownAttrs[key]
}

// Clone returns an independent copy of the attribute map.
func (a Attrs) Clone() Attrs {
	if a == nil {
		return nil
	}
	out := make(Attrs, len(a))
	for k, v := range a {
		out[k] = v
	}
	return out
}

// cacheKey renders the attributes into a deterministic string used to dedupe
// style registrations across cells.
func (a Attrs) cacheKey() string {
	if len(a) == 0 {
		return ""
	}
	keys := make([]string, 0, len(a))
	for k := range a {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	var sb strings.Builder
	for _, k := range keys {
		fmt.Fprintf(&sb, "%s=%v;", k, a[k])
	}
	return sb.String()
}

// style translates the attributes into an excelize style definition. Values
// are coerced best-effort; anything that does not fit its slot is left to the
// spreadsheet engine to accept or reject.
func (a Attrs) style() *excelize.Style {
	st := &excelize.Style{}

	if asBool(a[AttrBold]) || asBool(a[AttrItalic]) || a[AttrFontColor] != nil || a[AttrFontSize] != nil {
		st.Font = &excelize.Font{
			Bold:   asBool(a[AttrBold]),
			Italic: asBool(a[AttrItalic]),
			Color:  normalizeColor(asString(a[AttrFontColor])),
			Size:   asFloat(a[AttrFontSize]),
		}
	}
	if w := asInt(a[AttrBorder]); w > 0 {
		st.Border = []excelize.Border{
			{Type: "left", Style: w, Color: "000000"},
			{Type: "right", Style: w, Color: "000000"},
			{Type: "top", Style: w, Color: "000000"},
			{Type: "bottom", Style: w, Color: "000000"},
		}
	}
	if a[AttrAlign] != nil || a[AttrVAlign] != nil {
		st.Alignment = &excelize.Alignment{
			Horizontal: asString(a[AttrAlign]),
			Vertical:   asString(a[AttrVAlign]),
		}
	}
	if c := asString(a[AttrFgColor]); c != "" {
		st.Fill = excelize.Fill{
			Type:    "pattern",
			Pattern: 1,
			Color:   []string{normalizeColor(c)},
		}
	}
	return st
}

func normalizeColor(c string) string {
	return strings.TrimPrefix(c, "#")
}

func asBool(v interface{}) bool {
	switch t := v.(type) {
	case bool:
		return t
	case string:
		b, err := strconv.ParseBool(t)
		return err == nil && b
	case int:
		return t != 0
	default:
		return false
	}
}

func asInt(v interface{}) int {
	switch t := v.(type) {
	case int:
		return t
	case int64:
		return int(t)
	case float64:
		return int(t)
	case string:
		i, _ := strconv.Atoi(t)
		return i
	default:
		return 0
	}
}

func asFloat(v interface{}) float64 {
	switch t := v.(type) {
	case float64:
		return t
	case float32:
		return float64(t)
	case int:
		return float64(t)
	case string:
		f, _ := strconv.ParseFloat(t, 64)
		return f
	default:
		return 0
	}
}

func asString(v interface{}) string {
	switch t := v.(type) {
	case string:
		return t
	case nil:
		return ""
	default:
		return fmt.Sprintf("%v", t)
	}
}
