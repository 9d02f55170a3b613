package main

import (
	"fmt"

	"github.com/esimov/seamcarver"
	"github.com/spf13/cobra"
)

var energyOpts struct {
	source      string
	destination string
}

var energyCmd = &cobra.Command{
	Use:   "energy",
	Short: "Render the energy map of an image as a grayscale image",
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := loadCarver(energyOpts.source)
		if err != nil {
			return err
		}
		if err := seamcarver.Save(energyOpts.destination, seamcarver.EnergyImage(c.EnergyMap())); err != nil {
			return fmt.Errorf("could not save the energy map: %w", err)
		}
		return nil
	},
}

func init() {
	f := energyCmd.Flags()
	f.StringVarP(&energyOpts.source, "in", "i", "", "Source image")
	f.StringVarP(&energyOpts.destination, "out", "o", "", "Destination image")
	energyCmd.MarkFlagRequired("in")
	energyCmd.MarkFlagRequired("out")

	rootCmd.AddCommand(energyCmd)
}

func loadCarver(path string) (*seamcarver.Carver, error) {
	img, err := seamcarver.Load(path)
	if err != nil {
		return nil, err
	}
	return seamcarver.NewCarver(img)
}
