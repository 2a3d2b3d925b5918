// Package selector maps free-form infobox labels onto a fixed set of
// canonical fields using case-insensitive substring hints.
package selector

import (
	"strings"

	"placeinfo/internal/infobox"
)

// Field is a canonical output field and the label substrings that satisfy it,
// in priority order.
type Field struct {
	Key   string
	Hints []string
}

// Spec is an ordered list of canonical fields.
type Spec []Field

// DefaultSpec is the canonical field list used by the CLI.
var DefaultSpec = Spec{
	{Key: "Country", Hints: []string{"Country"}},
	{Key: "State/Province", Hints: []string{"State", "Province", "Region", "Prefecture"}},
	{Key: "County/District", Hints: []string{"County", "District", "Municipality"}},
	{Key: "Settlement type", Hints: []string{"Settlement type", "Type"}},
	{Key: "Incorporated/Founded", Hints: []string{"Incorporated", "Established", "Founded"}},
	{Key: "Mayor/Leader", Hints: []string{"Mayor", "Leader", "Governing body"}},
	{Key: "Area total", Hints: []string{"Area total", "Area", "Area Total"}},
	{Key: "Elevation", Hints: []string{"Elevation"}},
	{Key: "Population", Hints: []string{"Population", "Population Total", "Population ("}},
	{Key: "Demonym", Hints: []string{"Demonym"}},
	{Key: "Time zone", Hints: []string{"Time zone", "Timezone"}},
	{Key: "Postal code", Hints: []string{"Postal code", "Postcode", "ZIP codes"}},
	{Key: "FIPS/GNIS", Hints: []string{"FIPS code", "GNIS feature ID"}},
	{Key: "Coordinates", Hints: []string{"Coordinates"}},
}

// Select returns the first matching value for each field of spec, in spec order.
// Fields with no matching label are omitted. A label may satisfy several fields.
func (spec Spec) Select(fields *infobox.Fields) *infobox.Fields {
	selected := infobox.NewFields()
	if fields.Len() == 0 {
		return selected
	}

	labels := fields.Keys()
	lowered := make([]string, len(labels))
	for i, l := range labels {
		lowered[i] = strings.ToLower(l)
	}

	for _, f := range spec {
		if v, ok := match(f.Hints, labels, lowered, fields); ok {
			selected.Set(f.Key, v)
		}
	}
	return selected
}

func match(hints, labels, lowered []string, fields *infobox.Fields) (string, bool) {
	for _, hint := range hints {
		h := strings.ToLower(hint)
		for i, l := range lowered {
			if strings.Contains(l, h) {
				return fields.Get(labels[i])
			}
		}
	}
	return "", false
}

// Select applies DefaultSpec.
func Select(fields *infobox.Fields) *infobox.Fields {
	return DefaultSpec.Select(fields)
}
