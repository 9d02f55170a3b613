package main

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/esimov/seamcarver"
	"github.com/esimov/seamcarver/imop"
	"github.com/esimov/seamcarver/utils"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

var seamOpts struct {
	source      string
	destination string
	axis        string
	color       string
	operator    string
}

var seamCmd = &cobra.Command{
	Use:   "seam",
	Short: "Draw the next seam of minimum energy over the image",
	RunE: func(cmd *cobra.Command, args []string) error {
		axis, err := parseAxis(seamOpts.axis)
		if err != nil {
			return err
		}

		var col color.Color
		if seamOpts.color != "" {
			rgba, err := utils.HexToRGBA(seamOpts.color)
			if err != nil {
				return err
			}
			col = rgba
		}

		c, err := loadCarver(seamOpts.source)
		if err != nil {
			return err
		}
		seam := c.FindSeam(axis)
		energy, err := c.SeamEnergy(axis, seam)
		if err != nil {
			return err
		}

		img, err := seamcarver.DrawSeamOp(c.Image(), seam, axis, col, imop.Operator(seamOpts.operator))
		if err != nil {
			return err
		}
		if err := seamcarver.Save(seamOpts.destination, img); err != nil {
			return fmt.Errorf("could not save the image: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "The %s seam energy is %s\n",
			axis, utils.DecorateText(fmt.Sprintf("%.2f", energy), utils.SuccessMessage),
		)
		return nil
	},
}

func init() {
	f := seamCmd.Flags()
	f.StringVarP(&seamOpts.source, "in", "i", "", "Source image")
	f.StringVarP(&seamOpts.destination, "out", "o", "", "Destination image")
	f.StringVar(&seamOpts.axis, "axis", "v", "Seam orientation: v or h")
	f.StringVar(&seamOpts.color, "color", "", "Seam color in #rrggbb format")
	f.StringVar(&seamOpts.operator, "op", string(imop.SrcOver), "Seam composition operator: "+operatorNames())
	seamCmd.MarkFlagRequired("in")
	seamCmd.MarkFlagRequired("out")

	rootCmd.AddCommand(seamCmd)
}

func parseAxis(s string) (seamcarver.Axis, error) {
	switch s {
	case "v", "vertical":
		return seamcarver.Vertical, nil
	case "h", "horizontal":
		return seamcarver.Horizontal, nil
	}
	return 0, fmt.Errorf("invalid seam axis %q, expected v or h", s)
}

func operatorNames() string {
	return strings.Join(lo.Map(imop.Operators, func(op imop.Operator, _ int) string {
		return string(op)
	}), ", ")
}
