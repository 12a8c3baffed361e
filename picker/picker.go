package picker

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"slices"

	"github.com/tubetrivia/station-roulette/stations"
)

var (
	// ErrInsufficientCandidates is returned by Generate when the requested
	// count exceeds the basket size.
	ErrInsufficientCandidates = errors.New("not enough candidate stations")

	// ErrStartNotInBasket is returned by Generate when the starting
	// station's identity is absent from the basket.
	ErrStartNotInBasket = errors.New("starting station not in basket")
)

// Criteria restricts a basket along up to four dimensions. A nil slice
// leaves that dimension unconstrained; a non-nil empty slice is an empty
// acceptance set and matches nothing on that dimension. Within a dimension
// a station matches if its values intersect the acceptance set; across
// dimensions every test must pass.
type Criteria struct {
	Zones      []stations.Zone
	Modes      []stations.Mode
	RiverBanks []stations.RiverBank
	Lines      []string
}

func intersects[T comparable](have, want []T) bool {
	if want == nil {
		return true
	}
	for _, w := range want {
		if slices.Contains(have, w) {
			return true
		}
	}
	return false
}

func (c Criteria) matches(s stations.Station) bool {
	return intersects(s.Zones, c.Zones) &&
		intersects(s.Modes, c.Modes) &&
		intersects(s.RiverBanks, c.RiverBanks) &&
		intersects(s.Lines, c.Lines)
}

// Basket returns the catalogue stations matching the criteria, in catalogue
// order.
func Basket(cat *stations.Catalogue, c Criteria) []stations.Station {
	out := make([]stations.Station, 0, cat.Len())
	for _, s := range cat.Stations() {
		if c.matches(s) {
			out = append(out, s)
		}
	}
	return out
}

// Exclude returns the members of basket whose identity does not appear in
// toExclude. Basket order is preserved; the order of toExclude is
// irrelevant.
func Exclude(basket, toExclude []stations.Station) []stations.Station {
	drop := make(map[string]struct{}, len(toExclude))
	for _, s := range toExclude {
		drop[s.String()] = struct{}{}
	}
	out := make([]stations.Station, 0, len(basket))
	for _, s := range basket {
		if _, ok := drop[s.String()]; !ok {
			out = append(out, s)
		}
	}
	return out
}

// Shuffler permutes a station slice in place, uniformly at random. It is a
// seam for tests, which substitute deterministic permutations.
type Shuffler func([]stations.Station)

func randShuffle(list []stations.Station) {
	rand.Shuffle(len(list), func(i, j int) {
		list[i], list[j] = list[j], list[i]
	})
}

// Picker draws random ordered subsets from a basket.
type Picker struct {
	Shuffle Shuffler
}

// New returns a Picker using the default uniform shuffle.
func New() *Picker {
	return &Picker{Shuffle: randShuffle}
}

// Generate draws count stations from basket in random order. When start is
// non-nil it becomes the first element of the draw and must be a member of
// the basket by identity; the remaining basket is shuffled behind it.
//
// Fails with ErrInsufficientCandidates when count is negative or exceeds the
// basket size, and with ErrStartNotInBasket when start cannot be located in
// the basket.
func (p *Picker) Generate(count int, basket []stations.Station, start *stations.Station) ([]stations.Station, error) {
	if count < 0 || count > len(basket) {
		return nil, fmt.Errorf("%w: requested %d of %d", ErrInsufficientCandidates, count, len(basket))
	}

	pool := make([]stations.Station, len(basket))
	copy(pool, basket)

	var full []stations.Station
	if start == nil {
		p.Shuffle(pool)
		full = pool
	} else {
		id := start.String()
		found := false
		var first stations.Station
		rest := make([]stations.Station, 0, len(pool))
		for _, s := range pool {
			if !found && s.String() == id {
				found = true
				first = s
				continue
			}
			rest = append(rest, s)
		}
		if !found {
			return nil, fmt.Errorf("%w: %s", ErrStartNotInBasket, id)
		}
		p.Shuffle(rest)
		full = append([]stations.Station{first}, rest...)
	}

	// The anchored draw must account for every basket member exactly once;
	// a length mismatch means the starting station was lost in construction.
	if len(full) != len(basket) {
		return nil, fmt.Errorf("%w: draw dropped a basket member", ErrStartNotInBasket)
	}
	return full[:count], nil
}

// Generate draws with the default uniform shuffle. See Picker.Generate.
func Generate(count int, basket []stations.Station, start *stations.Station) ([]stations.Station, error) {
	return New().Generate(count, basket, start)
}
