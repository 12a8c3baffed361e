package stations

import (
	"slices"
	"testing"
)

func testCatalogue() *Catalogue {
	return NewCatalogue([]Station{
		{
			Name:           "Brixton",
			LocalAuthority: "Lambeth",
			Lines:          []string{"Victoria"},
			Zones:          []Zone{2},
			Modes:          []Mode{ModeUnderground},
			RiverBanks:     []RiverBank{BankSouth},
		},
		{
			Name:           "Edgware Road",
			Disambiguation: "Bakerloo",
			LocalAuthority: "Westminster",
			Lines:          []string{"Bakerloo"},
			Zones:          []Zone{1},
			Modes:          []Mode{ModeUnderground},
			RiverBanks:     []RiverBank{BankNorth},
		},
		{
			Name:           "Edgware Road",
			Disambiguation: "Circle",
			LocalAuthority: "Westminster",
			Lines:          []string{"Circle", "District"},
			Zones:          []Zone{1},
			Modes:          []Mode{ModeUnderground},
			RiverBanks:     []RiverBank{BankNorth},
		},
		{
			Name:           "Stratford International",
			LocalAuthority: "Newham",
			Lines:          []string{"DLR"},
			Zones:          []Zone{SFA},
			Modes:          []Mode{ModeDLR, ModeNationalRail},
			RiverBanks:     []RiverBank{BankNorth},
		},
	})
}

func TestFromString(t *testing.T) {
	cat := testCatalogue()

	for _, s := range cat.Stations() {
		got, ok := cat.FromString(s.String())
		if !ok {
			t.Fatalf("FromString(%q) not found", s)
		}
		if !got.Same(s) {
			t.Errorf("FromString(%q) returned %q", s, got)
		}
	}

	if _, ok := cat.FromString("Narnia Central"); ok {
		t.Error("unknown identity should not resolve")
	}
	// Bare name must not resolve a disambiguated entry.
	if _, ok := cat.FromString("Edgware Road"); ok {
		t.Error("bare name should not match a disambiguated station")
	}
}

func TestStationsIsOwnedCopy(t *testing.T) {
	cat := testCatalogue()

	first := cat.Stations()
	first[0].Name = "Mutated"
	second := cat.Stations()
	if second[0].Name != "Brixton" {
		t.Error("mutating a returned slice must not touch the catalogue")
	}

	want := []string{"Brixton", "Edgware Road (Bakerloo)", "Edgware Road (Circle)", "Stratford International"}
	var got []string
	for _, s := range second {
		got = append(got, s.String())
	}
	if !slices.Equal(got, want) {
		t.Errorf("catalogue order not preserved: %v", got)
	}
}

func TestLinesOrdering(t *testing.T) {
	tests := []struct {
		name     string
		stations []Station
		expected []string
	}{
		{
			name: "preferred order beats alphabetical",
			stations: []Station{
				{Name: "A", Lines: []string{"Victoria"}},
				{Name: "B", Lines: []string{"Circle"}},
			},
			expected: []string{"Circle", "Victoria"},
		},
		{
			name: "unknown lines sort last, alphabetically",
			stations: []Station{
				{Name: "A", Lines: []string{"Zigzag Line", "Victoria"}},
				{Name: "B", Lines: []string{"Circle", "Aardvark Way"}},
			},
			expected: []string{"Circle", "Victoria", "Aardvark Way", "Zigzag Line"},
		},
		{
			name: "duplicates collapse",
			stations: []Station{
				{Name: "A", Lines: []string{"Northern", "Victoria"}},
				{Name: "B", Lines: []string{"Victoria", "Northern"}},
			},
			expected: []string{"Northern", "Victoria"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NewCatalogue(tt.stations).Lines()
			if !slices.Equal(got, tt.expected) {
				t.Errorf("expected %v, got %v", tt.expected, got)
			}
		})
	}
}

func TestLinesRecomputed(t *testing.T) {
	cat := testCatalogue()
	a := cat.Lines()
	a[0] = "Scribbled Over"
	b := cat.Lines()
	if b[0] == "Scribbled Over" {
		t.Error("Lines must return a fresh slice per call")
	}
}
