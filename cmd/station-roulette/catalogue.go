package main

import (
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/tubetrivia/station-roulette/config"
	"github.com/tubetrivia/station-roulette/picker"
	"github.com/tubetrivia/station-roulette/stations"
)

// log is replaced with the configured logger once the root command has
// loaded config; this default covers failures before that point.
var log = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}).
	With().Timestamp().Logger()

// loadCatalogue builds the catalogue from the configured dataset, falling
// back to the embedded one.
func loadCatalogue() (*stations.Catalogue, error) {
	if path := config.Config.Dataset.Path; path != "" {
		log.Debug().Str("path", path).Msg("loading dataset file")
		return stations.LoadFile(path)
	}
	return stations.Load()
}

// criteriaFlags are the four basket dimensions, shared by draw and quiz.
// A flag left unset leaves its dimension unconstrained.
type criteriaFlags struct {
	zones []string
	modes []string
	banks []string
	lines []string
}

func (f *criteriaFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringSliceVar(&f.zones, "zones", nil, `acceptable zones, e.g. "1,2" (also "cpay", "sfa")`)
	cmd.Flags().StringSliceVar(&f.modes, "modes", nil, `acceptable modes: "underground", "dlr", "rail"`)
	cmd.Flags().StringSliceVar(&f.banks, "banks", nil, `acceptable river banks: "north", "south"`)
	cmd.Flags().StringSliceVar(&f.lines, "lines", nil, `acceptable line names, e.g. "Victoria,Circle"`)
}

func (f *criteriaFlags) criteria(cmd *cobra.Command) (picker.Criteria, error) {
	var c picker.Criteria
	if cmd.Flags().Changed("zones") {
		c.Zones = []stations.Zone{}
		for _, tok := range f.zones {
			z, err := stations.ParseZone(tok)
			if err != nil {
				return c, err
			}
			c.Zones = append(c.Zones, z)
		}
	}
	if cmd.Flags().Changed("modes") {
		c.Modes = []stations.Mode{}
		for _, tok := range f.modes {
			m, err := stations.ParseMode(tok)
			if err != nil {
				return c, err
			}
			c.Modes = append(c.Modes, m)
		}
	}
	if cmd.Flags().Changed("banks") {
		c.RiverBanks = []stations.RiverBank{}
		for _, tok := range f.banks {
			b, err := stations.ParseRiverBank(tok)
			if err != nil {
				return c, err
			}
			c.RiverBanks = append(c.RiverBanks, b)
		}
	}
	if cmd.Flags().Changed("lines") {
		c.Lines = []string{}
		for _, l := range f.lines {
			if l = strings.TrimSpace(l); l != "" {
				c.Lines = append(c.Lines, l)
			}
		}
	}
	return c, nil
}
