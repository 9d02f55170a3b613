package main

import (
	"bufio"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/esimov/seamcarver"
	"github.com/esimov/seamcarver/utils"
	"github.com/spf13/cobra"
)

var interactiveOpts struct {
	source      string
	destination string
}

var interactiveCmd = &cobra.Command{
	Use:   "interactive",
	Short: "Remove seams one at a time, reading the commands from stdin",
	Long: `Remove seams one at a time, reading the commands from stdin.
Type h for a horizontal seam, v for a vertical seam and quit to save the
carved image, by default as carved_<name> next to the source.`,
	RunE: runInteractiveCmd,
}

func init() {
	f := interactiveCmd.Flags()
	f.StringVarP(&interactiveOpts.source, "in", "i", "", "Source image")
	f.StringVarP(&interactiveOpts.destination, "out", "o", "", "Destination image")
	interactiveCmd.MarkFlagRequired("in")

	rootCmd.AddCommand(interactiveCmd)
}

func runInteractiveCmd(cmd *cobra.Command, args []string) error {
	src := interactiveOpts.source
	img, err := seamcarver.Load(src)
	if err != nil {
		return err
	}
	c, err := seamcarver.NewCarver(img)
	if err != nil {
		return err
	}

	if err := runInteractive(cmd.InOrStdin(), cmd.OutOrStdout(), c); err != nil {
		return err
	}

	dst := interactiveOpts.destination
	if dst == "" {
		dst = filepath.Join(filepath.Dir(src), "carved_"+filepath.Base(src))
	}
	if err := seamcarver.Save(dst, c.Image()); err != nil {
		return fmt.Errorf("the resulting image could not be saved: %w", err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "The image has been saved as: %s\n",
		utils.DecorateText(dst, utils.SuccessMessage),
	)
	return nil
}

// runInteractive reads the commands from in until quit or the end of the
// input, removing one seam per command and reporting the image size to out.
func runInteractive(in io.Reader, out io.Writer, c *seamcarver.Carver) error {
	fmt.Fprintln(out, "Seam removal started. Type h for horizontal seam or v for vertical seam.")
	fmt.Fprintln(out, "Type 'quit' for exit.")

	scanner := bufio.NewScanner(in)
	scanner.Split(bufio.ScanWords)
	for scanner.Scan() {
		cmd := scanner.Text()
		if strings.Contains(cmd, "quit") {
			break
		}

		switch cmd {
		case "h":
			if err := c.RemoveHorizontalSeam(c.FindHorizontalSeam()); err != nil {
				fmt.Fprintln(out, utils.DecorateText(err.Error(), utils.ErrorMessage))
			} else {
				fmt.Fprintln(out, "Horizontal seam removed!")
			}
		case "v":
			if err := c.RemoveVerticalSeam(c.FindVerticalSeam()); err != nil {
				fmt.Fprintln(out, utils.DecorateText(err.Error(), utils.ErrorMessage))
			} else {
				fmt.Fprintln(out, "Vertical seam removed!")
			}
		default:
			fmt.Fprintln(out, "Type h for horizontal seam or v for vertical seam.")
		}
		fmt.Fprintf(out, "Image is %dx%d pixels\n", c.Width(), c.Height())
	}
	return scanner.Err()
}
