package seamcarver

import (
	"errors"
	"fmt"
	"image"
	"io"
	"math"
	"os"
	"path/filepath"

	"github.com/disintegration/imaging"
	"github.com/esimov/seamcarver/utils"
)

var (
	// ErrEnlargeUnsupported is returned when the requested size is larger than the source image.
	ErrEnlargeUnsupported = errors.New("image enlargement is not supported")
	// ErrInvalidTarget is returned when the requested size can not be reached by removing seams.
	ErrInvalidTarget = errors.New("invalid target size")
)

// SeamCarver is the interface implemented by the image resizers.
type SeamCarver interface {
	Resize(*image.NRGBA) (image.Image, error)
}

var _ SeamCarver = (*Processor)(nil)

// Processor options
type Processor struct {
	NewWidth   int
	NewHeight  int
	Percentage bool // NewWidth and NewHeight are the percentage to reduce the image by
	Square     bool // reduce the image to a square based on its shorter edge
	Scale      bool // scale the image proportionally before carving

	// OnSeam, when set, is called after each removed seam.
	OnSeam func(axis Axis, seam Seam)
}

// Resize shrinks the image to the requested size by removing the seams of
// lowest energy one at a time. When both dimensions are reduced the vertical
// and horizontal seams are removed alternately, so the two kinds of seams
// are spread evenly over the image.
func (p *Processor) Resize(img *image.NRGBA) (image.Image, error) {
	if img == nil {
		return nil, fmt.Errorf("%w: nil image", ErrInvalidImage)
	}
	width, height := img.Bounds().Dx(), img.Bounds().Dy()
	newWidth, newHeight, err := p.targetSize(width, height)
	if err != nil {
		return nil, err
	}

	if p.Scale && newWidth < width && newHeight < height {
		img = scaleToFit(img, newWidth, newHeight)
	}

	c, err := NewCarver(img)
	if err != nil {
		return nil, err
	}
	for c.Width() > newWidth || c.Height() > newHeight {
		if c.Width() > newWidth {
			if err := p.carve(c, Vertical); err != nil {
				return nil, err
			}
		}
		if c.Height() > newHeight {
			if err := p.carve(c, Horizontal); err != nil {
				return nil, err
			}
		}
	}
	return c.Image(), nil
}

// carve finds and removes a single seam along the given axis.
func (p *Processor) carve(c *Carver, axis Axis) error {
	seam := c.FindSeam(axis)
	if err := c.RemoveSeam(axis, seam); err != nil {
		return fmt.Errorf("removing %s seam: %w", axis, err)
	}
	if p.OnSeam != nil {
		p.OnSeam(axis, seam)
	}
	return nil
}

// targetSize computes the final image size. A zero value leaves the dimension unchanged.
func (p *Processor) targetSize(width, height int) (int, int, error) {
	if p.Square {
		side := utils.Min(width, height)
		return side, side, nil
	}

	newWidth, newHeight := p.NewWidth, p.NewHeight
	if p.Percentage {
		if newWidth < 0 || newWidth >= 100 || newHeight < 0 || newHeight >= 100 {
			return 0, 0, fmt.Errorf("%w: percentage should be in the [0, 100) range", ErrInvalidTarget)
		}
		newWidth = width - int(float64(width)*float64(p.NewWidth)/100)
		newHeight = height - int(float64(height)*float64(p.NewHeight)/100)
	}
	if newWidth == 0 {
		newWidth = width
	}
	if newHeight == 0 {
		newHeight = height
	}

	if newWidth < 0 || newHeight < 0 {
		return 0, 0, fmt.Errorf("%w: %dx%d", ErrInvalidTarget, newWidth, newHeight)
	}
	if newWidth > width || newHeight > height {
		return 0, 0, fmt.Errorf("%w: %dx%d is larger than %dx%d", ErrEnlargeUnsupported, newWidth, newHeight, width, height)
	}
	return newWidth, newHeight, nil
}

// scaleToFit downscales the image preserving its aspect ratio, up until one
// of its dimensions reaches the requested size. The seam carver is then
// applied only to the remaining pixels of the other dimension.
func scaleToFit(img *image.NRGBA, newWidth, newHeight int) *image.NRGBA {
	w, h := float64(img.Bounds().Dx()), float64(img.Bounds().Dy())
	ratio := math.Max(float64(newWidth)/w, float64(newHeight)/h)

	sw := utils.Max(newWidth, int(math.Round(w*ratio)))
	sh := utils.Max(newHeight, int(math.Round(h*ratio)))
	if sw == int(w) && sh == int(h) {
		return img
	}
	return imaging.Resize(img, sw, sh, imaging.Lanczos)
}

// Process decodes the source image, resizes it and encodes the result into w.
// When w is a file the output format follows its extension, otherwise it is JPEG.
func (p *Processor) Process(r io.Reader, w io.Writer) error {
	src, err := Decode(r)
	if err != nil {
		return err
	}

	res, err := p.Resize(imaging.Clone(src))
	if err != nil {
		return err
	}

	var ext string
	if f, ok := w.(*os.File); ok {
		ext = filepath.Ext(f.Name())
	}
	return Encode(w, res, ext)
}
