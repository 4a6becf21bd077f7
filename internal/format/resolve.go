package format

import (
	"github.com/rs/zerolog"

	"github.com/torbjornhedqvist/xlsxcalendar/pkg/xlsxgrid"
)

// Resolve folds override layers onto the builtin defaults, left to right,
// one attribute key at a time. A later layer overrides only the keys it
// names; keys it omits stay inherited. Layers are typically the theme import
// followed by the inline cell_formats map, either of which may be nil.
//
// Unknown region tags and unknown attribute keys are logged and skipped.
// Attribute values are not validated here; the sink decides what it accepts.
func Resolve(log zerolog.Logger, layers ...map[string]xlsxgrid.Attrs) RuleSet {
	rules := Defaults()
	for _, layer := range layers {
		for name, attrs := range layer {
			tag := Tag(name)
			rule, ok := rules[tag]
			if !ok {
				log.Warn().Str("tag", name).Msg("ignoring format rule for unknown region tag")
				continue
			}
			for key, value := range attrs {
				if !xlsxgrid.KnownAttr(key) {
					log.Warn().Str("tag", name).Str("attribute", key).Msg("ignoring unknown format attribute")
					continue
				}
				rule[key] = value
			}
		}
	}
	return rules
}
