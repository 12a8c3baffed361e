package stations

// Catalogue is the fixed, ordered station list. It is built once at startup
// and read-only thereafter, so it may be shared freely without locking.
// Ordering follows the source dataset and is preserved by every
// non-random operation.
type Catalogue struct {
	stations []Station
}

// NewCatalogue builds a catalogue from a station list. The list is copied;
// the caller keeps ownership of its slice.
func NewCatalogue(list []Station) *Catalogue {
	c := &Catalogue{stations: make([]Station, len(list))}
	copy(c.stations, list)
	return c
}

// Stations returns the full catalogue in source order. The returned slice is
// a fresh copy owned by the caller.
func (c *Catalogue) Stations() []Station {
	out := make([]Station, len(c.stations))
	copy(out, c.stations)
	return out
}

// Len returns the number of stations in the catalogue.
func (c *Catalogue) Len() int {
	return len(c.stations)
}

// FromString resolves a station by its display identity. The second return
// is false when no station matches; absence is a normal outcome, not an
// error. Identities are unique within the catalogue, so the first match is
// the only match.
func (c *Catalogue) FromString(id string) (Station, bool) {
	for _, s := range c.stations {
		if s.String() == id {
			return s, true
		}
	}
	return Station{}, false
}
