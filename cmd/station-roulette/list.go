package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var linesCmd = &cobra.Command{
	Use:   "lines",
	Short: "List the lines in service, in display order",
	RunE: func(cmd *cobra.Command, args []string) error {
		cat, err := loadCatalogue()
		if err != nil {
			return err
		}
		for _, l := range cat.Lines() {
			fmt.Println(l)
		}
		return nil
	},
}

var stationsCmd = &cobra.Command{
	Use:   "stations",
	Short: "List the full station catalogue",
	RunE: func(cmd *cobra.Command, args []string) error {
		cat, err := loadCatalogue()
		if err != nil {
			return err
		}
		for _, s := range cat.Stations() {
			zones := make([]string, len(s.Zones))
			for i, z := range s.Zones {
				zones[i] = z.String()
			}
			fmt.Printf("%-35s zones %-8s %s\n", s, strings.Join(zones, ","), strings.Join(s.Lines, ", "))
		}
		return nil
	},
}
