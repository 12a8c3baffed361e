package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tubetrivia/station-roulette/picker"
	"github.com/tubetrivia/station-roulette/stations"
)

var (
	drawFlags   criteriaFlags
	flagCount   int
	flagStart   string
	flagExclude []string
)

var drawCmd = &cobra.Command{
	Use:   "draw",
	Short: "Draw a random ordered selection of stations",
	RunE:  runDraw,
}

func init() {
	drawFlags.register(drawCmd)
	drawCmd.Flags().IntVar(&flagCount, "count", 5, "number of stations to draw")
	drawCmd.Flags().StringVar(&flagStart, "start", "", `station identity to anchor as the first draw, e.g. "Edgware Road (Circle)"`)
	drawCmd.Flags().StringArrayVar(&flagExclude, "exclude", nil, "station identity to leave out (repeatable)")
}

func runDraw(cmd *cobra.Command, args []string) error {
	cat, err := loadCatalogue()
	if err != nil {
		return err
	}

	criteria, err := drawFlags.criteria(cmd)
	if err != nil {
		return err
	}
	basket := picker.Basket(cat, criteria)
	log.Debug().Int("basket", len(basket)).Int("catalogue", cat.Len()).Msg("basket filtered")

	if len(flagExclude) > 0 {
		var out []stations.Station
		for _, id := range flagExclude {
			s, ok := cat.FromString(id)
			if !ok {
				return fmt.Errorf("unknown station %q", id)
			}
			out = append(out, s)
		}
		basket = picker.Exclude(basket, out)
	}

	var start *stations.Station
	if flagStart != "" {
		s, ok := cat.FromString(flagStart)
		if !ok {
			return fmt.Errorf("unknown station %q", flagStart)
		}
		start = &s
	}

	drawn, err := picker.Generate(flagCount, basket, start)
	if err != nil {
		return err
	}
	for i, s := range drawn {
		fmt.Printf("%2d. %s\n", i+1, s)
	}
	return nil
}
