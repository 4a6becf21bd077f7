// Package format holds the calendar's cell formatting vocabulary: the fixed
// set of region tags, the builtin default attributes per tag, and the
// resolver that folds theme and inline override layers on top of the
// defaults.
package format

import "github.com/torbjornhedqvist/xlsxcalendar/pkg/xlsxgrid"

// Tag names a region of the calendar grid that carries its own format rule.
type Tag string

// The fixed region tag set. Configuration layers may override attributes for
// these tags and no others.
const (
	TagDay            Tag = "day"
	TagWeekend        Tag = "weekend"
	TagWeekOdd        Tag = "week_odd"
	TagWeekEven       Tag = "week_even"
	TagMonthOdd       Tag = "month_odd"
	TagMonthEven      Tag = "month_even"
	TagYearOdd        Tag = "year_odd"
	TagYearEven       Tag = "year_even"
	TagContentHeading Tag = "content_heading"
)

// Tags lists every region tag in a stable order.
var Tags = []Tag{
	TagDay,
	TagWeekend,
	TagWeekOdd,
	TagWeekEven,
	TagMonthOdd,
	TagMonthEven,
	TagYearOdd,
	TagYearEven,
	TagContentHeading,
}

// RuleSet maps each region tag to its resolved cell attributes. Built once
// per run and read-only afterwards.
type RuleSet map[Tag]xlsxgrid.Attrs

// Get returns the attributes for tag, nil if the tag is unknown.
func (r RuleSet) Get(tag Tag) xlsxgrid.Attrs {
	return r[tag]
}

// WeekTag selects week_odd or week_even from the band's zero-based ordinal
// since range start. The first band is always odd.
func WeekTag(ordinal int) Tag {
	if ordinal%2 == 0 {
		return TagWeekOdd
	}
	return TagWeekEven
}

// MonthTag selects month_odd or month_even from the band ordinal.
func MonthTag(ordinal int) Tag {
	if ordinal%2 == 0 {
		return TagMonthOdd
	}
	return TagMonthEven
}

// YearTag selects year_odd or year_even from the band ordinal.
func YearTag(ordinal int) Tag {
	if ordinal%2 == 0 {
		return TagYearOdd
	}
	return TagYearEven
}

// Defaults returns a fresh copy of the builtin format rules. Callers may
// mutate the result without affecting later calls.
func Defaults() RuleSet {
	return RuleSet{
		TagDay: xlsxgrid.Attrs{
			xlsxgrid.AttrBorder:  1,
			xlsxgrid.AttrAlign:   "center",
			xlsxgrid.AttrFgColor: "#D9D9D9",
		},
		TagWeekend: xlsxgrid.Attrs{
			xlsxgrid.AttrBorder:  1,
			xlsxgrid.AttrAlign:   "center",
			xlsxgrid.AttrFgColor: "#cf1020",
		},
		TagWeekOdd: xlsxgrid.Attrs{
			xlsxgrid.AttrBold:    true,
			xlsxgrid.AttrBorder:  2,
			xlsxgrid.AttrAlign:   "center",
			xlsxgrid.AttrFgColor: "#fae7b5",
		},
		TagWeekEven: xlsxgrid.Attrs{
			xlsxgrid.AttrBold:    true,
			xlsxgrid.AttrBorder:  2,
			xlsxgrid.AttrAlign:   "center",
			xlsxgrid.AttrFgColor: "#C5D9F1",
		},
		TagMonthOdd: xlsxgrid.Attrs{
			xlsxgrid.AttrBold:    true,
			xlsxgrid.AttrBorder:  2,
			xlsxgrid.AttrAlign:   "center",
			xlsxgrid.AttrFgColor: "#B8CCE4",
		},
		TagMonthEven: xlsxgrid.Attrs{
			xlsxgrid.AttrBold:    true,
			xlsxgrid.AttrBorder:  2,
			xlsxgrid.AttrAlign:   "center",
			xlsxgrid.AttrFgColor: "#95B3D7",
		},
		TagYearOdd: xlsxgrid.Attrs{
			xlsxgrid.AttrBold:    true,
			xlsxgrid.AttrBorder:  2,
			xlsxgrid.AttrAlign:   "center",
			xlsxgrid.AttrFgColor: "#B7DEE8",
		},
		TagYearEven: xlsxgrid.Attrs{
			xlsxgrid.AttrBold:    true,
			xlsxgrid.AttrBorder:  2,
			xlsxgrid.AttrAlign:   "center",
			xlsxgrid.AttrFgColor: "#DAEEF3",
		},
		TagContentHeading: xlsxgrid.Attrs{
			xlsxgrid.AttrBold:    true,
			xlsxgrid.AttrBorder:  1,
			xlsxgrid.AttrFgColor: "#ffa700",
		},
	}
}

// Static formats used by the fixed parts of the layout. Not overridable from
// configuration.

// Bold returns a bold-only format.
func Bold() xlsxgrid.Attrs {
	return xlsxgrid.NewAttrs().Bold().Build()
}

// BoldBorder returns bold with a single line border.
func BoldBorder() xlsxgrid.Attrs {
	return xlsxgrid.NewAttrs().Bold().Border(1).Build()
}

// BoldBorderCenter returns bold with a single line border, centered.
func BoldBorderCenter() xlsxgrid.Attrs {
	return xlsxgrid.NewAttrs().Bold().Border(1).Align("center").Build()
}

// Border returns a single line border format.
func Border() xlsxgrid.Attrs {
	return xlsxgrid.NewAttrs().Border(1).Build()
}

// BorderCenter returns a single line border format, centered.
func BorderCenter() xlsxgrid.Attrs {
	return xlsxgrid.NewAttrs().Border(1).Align("center").Build()
}

// BoldItalic returns a bold italic format.
func BoldItalic() xlsxgrid.Attrs {
	return xlsxgrid.NewAttrs().Bold().Italic().Build()
}
