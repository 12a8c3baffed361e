package stations

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
)

//go:embed data/stations.json
var defaultDataset []byte

// stationRecord is the raw dataset shape. Records are validated before being
// converted, so enum values are checked once at the ingest boundary and
// nowhere else.
type stationRecord struct {
	Name           string   `json:"name" validate:"required"`
	Disambiguation *string  `json:"disambiguation"`
	LocalAuthority string   `json:"localAuthority" validate:"required"`
	Lines          []string `json:"lines" validate:"required,min=1,dive,required"`
	Zones          []int    `json:"zones" validate:"required,min=1"`
	Modes          []string `json:"modes" validate:"required,min=1,dive,oneof=Underground DLR 'National Rail'"`
	RiverBanks     []string `json:"riverBanks" validate:"required,min=1,dive,oneof=North South"`
}

func (r stationRecord) toStation() Station {
	s := Station{
		Name:           r.Name,
		LocalAuthority: r.LocalAuthority,
		Lines:          r.Lines,
	}
	if r.Disambiguation != nil {
		s.Disambiguation = *r.Disambiguation
	}
	for _, z := range r.Zones {
		s.Zones = append(s.Zones, Zone(z))
	}
	for _, m := range r.Modes {
		s.Modes = append(s.Modes, Mode(m))
	}
	for _, b := range r.RiverBanks {
		s.RiverBanks = append(s.RiverBanks, RiverBank(b))
	}
	return s
}

// Load builds the catalogue from the embedded default dataset.
func Load() (*Catalogue, error) {
	return LoadBytes(defaultDataset)
}

// LoadFile builds a catalogue from a dataset file on disk.
func LoadFile(path string) (*Catalogue, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read dataset: %w", err)
	}
	return LoadBytes(data)
}

// LoadBytes builds a catalogue from raw dataset JSON. Every record is
// validated; a single bad record fails the whole load, since a partially
// ingested catalogue would silently change filter results.
func LoadBytes(data []byte) (*Catalogue, error) {
	var records []stationRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("parse dataset: %w", err)
	}

	v := validator.New()
	list := make([]Station, 0, len(records))
	for i, rec := range records {
		if err := v.Struct(rec); err != nil {
			return nil, fmt.Errorf("dataset record %d (%s): %w", i, rec.Name, err)
		}
		list = append(list, rec.toStation())
	}
	return NewCatalogue(list), nil
}
