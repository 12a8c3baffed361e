package stations

import "testing"

func TestStationString(t *testing.T) {
	tests := []struct {
		name     string
		station  Station
		expected string
	}{
		{
			name:     "no disambiguation",
			station:  Station{Name: "Euston"},
			expected: "Euston",
		},
		{
			name:     "with disambiguation",
			station:  Station{Name: "Euston", Disambiguation: "Underground"},
			expected: "Euston (Underground)",
		},
		{
			name:     "real duplicate",
			station:  Station{Name: "Edgware Road", Disambiguation: "Circle"},
			expected: "Edgware Road (Circle)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.station.String(); got != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, got)
			}
		})
	}
}

func TestSame(t *testing.T) {
	euston := Station{Name: "Euston", LocalAuthority: "Camden", Lines: []string{"Victoria"}}
	eustonCopy := Station{Name: "Euston", LocalAuthority: "Somewhere Else", Lines: []string{"Northern"}}
	eustonUG := Station{Name: "Euston", Disambiguation: "Underground", LocalAuthority: "Camden", Lines: []string{"Victoria"}}

	if !euston.Same(eustonCopy) {
		t.Error("stations with equal identity but different fields should be the same")
	}
	if euston.Same(eustonUG) {
		t.Error("shared name with distinct disambiguation should not be the same")
	}
}

func TestParseMode(t *testing.T) {
	tests := []struct {
		input    string
		expected Mode
		wantErr  bool
	}{
		{input: "underground", expected: ModeUnderground},
		{input: "Tube", expected: ModeUnderground},
		{input: "DLR", expected: ModeDLR},
		{input: "national rail", expected: ModeNationalRail},
		{input: " rail ", expected: ModeNationalRail},
		{input: "tram", wantErr: true},
		{input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseMode(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error for %q", tt.input)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, got)
			}
		})
	}
}

func TestParseRiverBank(t *testing.T) {
	if b, err := ParseRiverBank("North"); err != nil || b != BankNorth {
		t.Errorf("expected North, got %q (err %v)", b, err)
	}
	if b, err := ParseRiverBank("south"); err != nil || b != BankSouth {
		t.Errorf("expected South, got %q (err %v)", b, err)
	}
	if _, err := ParseRiverBank("east"); err == nil {
		t.Error("expected error for unknown bank")
	}
}

func TestParseZone(t *testing.T) {
	tests := []struct {
		input    string
		expected Zone
		wantErr  bool
	}{
		{input: "1", expected: Zone(1)},
		{input: " 6 ", expected: Zone(6)},
		{input: "cpay", expected: CPAY},
		{input: "SFA", expected: SFA},
		{input: "16", expected: CPAY},
		{input: "zone one", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseZone(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error for %q", tt.input)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.expected {
				t.Errorf("expected %v, got %v", tt.expected, got)
			}
		})
	}
}

func TestZoneString(t *testing.T) {
	if SFA.String() != "SFA" || CPAY.String() != "CPAY" || Zone(3).String() != "3" {
		t.Errorf("zone rendering wrong: %s %s %s", SFA, CPAY, Zone(3))
	}
}
