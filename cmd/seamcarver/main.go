package main

import (
	"fmt"
	"log"

	"github.com/esimov/seamcarver/utils"
	"github.com/spf13/cobra"
)

const helpBanner = `
┌─┐┌─┐┌─┐┌┬┐┌─┐┌─┐┬─┐┬  ┬┌─┐┬─┐
└─┐├┤ ├─┤│││├┤ ├─┤├┬┘└┐┌┘├┤ ├┬┘
└─┘└─┘┴ ┴┴ ┴└─┘┴ ┴┴└─ └┘ └─┘┴└─

Content aware image reduction by seam carving.
    Version: %s
`

// pipeName is the file name that indicates stdin/stdout is being used.
const pipeName = "-"

// Version indicates the current build version.
var Version string

var rootCmd = &cobra.Command{
	Use:           "seamcarver",
	Short:         "Shrink images by removing their least important seams",
	Long:          fmt.Sprintf(helpBanner, Version),
	SilenceUsage:  true,
	SilenceErrors: true,
}

func main() {
	log.SetFlags(0)

	if err := rootCmd.Execute(); err != nil {
		log.Fatalf("%s %s",
			utils.DecorateText("seamcarver:", utils.ErrorMessage),
			utils.DecorateText(err.Error(), utils.DefaultMessage),
		)
	}
}

// statusPrefix is the label printed in front of the progress messages.
func statusPrefix() string {
	return utils.DecorateText("⚡ SEAMCARVER", utils.StatusMessage)
}
