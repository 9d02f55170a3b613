package seamcarver

import (
	"errors"
	"fmt"
	"image"
	"image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"path/filepath"
	"strings"

	"github.com/anthonynsimon/bild/imgio"
	_ "golang.org/x/image/bmp"
)

// ErrUnsupportedFormat is returned when an image can not be encoded in the requested format.
var ErrUnsupportedFormat = errors.New("unsupported image format")

// SupportedExtensions lists the file extensions the images can be read from and written to.
var SupportedExtensions = []string{".jpg", ".jpeg", ".png", ".bmp", ".gif"}

// Decode decodes a JPEG, PNG, GIF or BMP image.
func Decode(r io.Reader) (image.Image, error) {
	img, _, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("could not decode the source image: %w", err)
	}
	return img, nil
}

// Load reads and decodes the image file found at path.
func Load(path string) (image.Image, error) {
	img, err := imgio.Open(path)
	if err != nil {
		return nil, fmt.Errorf("could not load the image %s: %w", path, err)
	}
	return img, nil
}

// Save encodes the image into the file found at path, in the format given by the file extension.
func Save(path string, img image.Image) error {
	enc, err := encoderFor(filepath.Ext(path))
	if err != nil {
		return err
	}
	return imgio.Save(path, img, enc)
}

// Encode writes the image into w using the format matching the extension.
// An empty extension stands for JPEG.
func Encode(w io.Writer, img image.Image, ext string) error {
	enc, err := encoderFor(ext)
	if err != nil {
		return err
	}
	return enc(w, img)
}

// encoderFor returns the image encoder matching the file extension.
func encoderFor(ext string) (imgio.Encoder, error) {
	switch strings.ToLower(ext) {
	case "", ".jpg", ".jpeg":
		return imgio.JPEGEncoder(100), nil
	case ".png":
		return imgio.PNGEncoder(), nil
	case ".bmp":
		return imgio.BMPEncoder(), nil
	case ".gif":
		return func(w io.Writer, img image.Image) error {
			return gif.Encode(w, img, nil)
		}, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
}
