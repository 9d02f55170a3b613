/*
Package seamcarver is a content aware image reduction library. It shrinks an
image one pixel at a time, either vertically or horizontally, by removing the
connected path of pixels (the seam) carrying the least visual information.

The importance of a pixel is measured by its dual-gradient energy: the
color difference between its left and right neighbors plus the one between
its top and bottom neighbors. Border pixels get a fixed, high energy.

The package also provides a command line interface. To check the supported commands type:

	$ seamcarver --help

In case you wish to integrate the API in a self constructed environment here is a simple example:

	package main

	import (
		"fmt"
		"github.com/esimov/seamcarver"
	)

	func main() {
		c, err := seamcarver.NewCarver(img)
		if err != nil {
			return err
		}
		for i := 0; i < 50; i++ {
			seam := c.FindVerticalSeam()
			if err := c.RemoveVerticalSeam(seam); err != nil {
				fmt.Printf("Error removing the seam: %s", err.Error())
			}
		}
		carved := c.Image()
	}

The Processor type wraps the same steps, resizing an image to the requested dimensions:

	p := &seamcarver.Processor{NewWidth: 300}
	if err := p.Process(in, out); err != nil {
		fmt.Printf("Error rescaling image: %s", err.Error())
	}
*/
package seamcarver
