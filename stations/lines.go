package stations

import (
	"slices"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// PreferredLineOrder is the display order for known line names. Lines not in
// this list sort after every known line.
var PreferredLineOrder = []string{
	"Bakerloo",
	"Central",
	"Circle",
	"District",
	"Hammersmith & City",
	"Jubilee",
	"Metropolitan",
	"Northern",
	"Piccadilly",
	"Victoria",
	"Waterloo & City",
	"Elizabeth line",
	"DLR",
}

func lineRank(name string) int {
	for i, l := range PreferredLineOrder {
		if l == name {
			return i
		}
	}
	return len(PreferredLineOrder)
}

// Lines returns the distinct line names served by the catalogue, sorted by
// PreferredLineOrder with ties (and all unknown lines) broken by British
// English collation. The list is recomputed from the catalogue on each call,
// so it reflects exactly the lines actually in service.
func (c *Catalogue) Lines() []string {
	seen := make(map[string]struct{})
	var lines []string
	for _, s := range c.stations {
		for _, l := range s.Lines {
			if _, ok := seen[l]; !ok {
				seen[l] = struct{}{}
				lines = append(lines, l)
			}
		}
	}

	// collate.Collator is not safe for concurrent use, so build one per call.
	col := collate.New(language.BritishEnglish)
	slices.SortStableFunc(lines, func(a, b string) int {
		if d := lineRank(a) - lineRank(b); d != 0 {
			return d
		}
		return col.CompareString(a, b)
	})
	return lines
}
