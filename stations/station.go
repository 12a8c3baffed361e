package stations

import (
	"fmt"
	"strconv"
	"strings"
)

// Mode is a transport mode served by a station.
type Mode string

const (
	ModeUnderground  Mode = "Underground"
	ModeDLR          Mode = "DLR"
	ModeNationalRail Mode = "National Rail"
)

// RiverBank is the side of the Thames a station sits on.
type RiverBank string

const (
	BankNorth RiverBank = "North"
	BankSouth RiverBank = "South"
)

// Zone is a Travelcard fare zone. Two pseudo-zones exist alongside the
// ordinary 1..9 range; filters treat every zone as an opaque integer.
type Zone int

const (
	// SFA is the special-fares pseudo-zone, reserved for Stratford International.
	SFA Zone = 0
	// CPAY is the pseudo-zone for contactless-only stations outside the
	// Travelcard area.
	CPAY Zone = 16
)

// String renders a zone for display: pseudo-zones by name, ordinary zones
// as their number.
func (z Zone) String() string {
	switch z {
	case SFA:
		return "SFA"
	case CPAY:
		return "CPAY"
	}
	return strconv.Itoa(int(z))
}

// Station is a single catalogue entry. Values are never mutated after the
// catalogue is built.
type Station struct {
	Name           string
	Disambiguation string
	LocalAuthority string
	Lines          []string
	Zones          []Zone
	Modes          []Mode
	RiverBanks     []RiverBank
}

// String renders the station's display identity: the name alone, or
// "Name (Disambiguation)" when two catalogue entries share a name.
// This string is the sole comparison key for stations; no selection or
// lookup operation uses field-wise equality.
func (s Station) String() string {
	if s.Disambiguation == "" {
		return s.Name
	}
	return fmt.Sprintf("%s (%s)", s.Name, s.Disambiguation)
}

// Same reports whether two stations share a display identity.
func (s Station) Same(other Station) bool {
	return s.String() == other.String()
}

// ParseMode converts a mode tag to its Mode value. Matching is
// case-insensitive.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "underground", "tube":
		return ModeUnderground, nil
	case "dlr":
		return ModeDLR, nil
	case "national rail", "rail":
		return ModeNationalRail, nil
	}
	return "", fmt.Errorf("unknown mode %q", s)
}

// ParseRiverBank converts a river bank tag to its RiverBank value. Matching
// is case-insensitive.
func ParseRiverBank(s string) (RiverBank, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "north":
		return BankNorth, nil
	case "south":
		return BankSouth, nil
	}
	return "", fmt.Errorf("unknown river bank %q", s)
}

// ParseZone converts a zone token to its Zone value. Numeric tokens are
// taken as-is; the pseudo-zones are accepted by name ("cpay", "sfa").
func ParseZone(s string) (Zone, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "cpay":
		return CPAY, nil
	case "sfa":
		return SFA, nil
	}
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("unknown zone %q", s)
	}
	return Zone(n), nil
}
