// Package imop implements the Porter-Duff composition operations
// used for mixing a graphic element with its backdrop.
// The image/draw core package implements only the source and the
// source-over-destination operators, this package covers the rest of them.
//
// It is used to render the seams on top of the carved image when debugging.
package imop

import (
	"fmt"
	"image/color"

	"github.com/esimov/seamcarver/utils"
)

// Operator names a Porter-Duff composition operation.
type Operator string

// Operators lists every supported composition operator.
var Operators = []Operator{
	Clear, Copy, Dst, SrcOver, DstOver, SrcIn, DstIn, SrcOut, DstOut, SrcAtop, DstAtop, Xor,
}

const (
	Clear   Operator = "clear"
	Copy    Operator = "copy"
	Dst     Operator = "dst"
	SrcOver Operator = "src_over"
	DstOver Operator = "dst_over"
	SrcIn   Operator = "src_in"
	DstIn   Operator = "dst_in"
	SrcOut  Operator = "src_out"
	DstOut  Operator = "dst_out"
	SrcAtop Operator = "src_atop"
	DstAtop Operator = "dst_atop"
	Xor     Operator = "xor"
)

// fractions returns the share of the source (fa) and of the backdrop (fb)
// kept by each operator, given the source and backdrop alpha.
var fractions = map[Operator]func(as, ab float64) (fa, fb float64){
	Clear:   func(as, ab float64) (float64, float64) { return 0, 0 },
	Copy:    func(as, ab float64) (float64, float64) { return 1, 0 },
	Dst:     func(as, ab float64) (float64, float64) { return 0, 1 },
	SrcOver: func(as, ab float64) (float64, float64) { return 1, 1 - as },
	DstOver: func(as, ab float64) (float64, float64) { return 1 - ab, 1 },
	SrcIn:   func(as, ab float64) (float64, float64) { return ab, 0 },
	DstIn:   func(as, ab float64) (float64, float64) { return 0, as },
	SrcOut:  func(as, ab float64) (float64, float64) { return 1 - ab, 0 },
	DstOut:  func(as, ab float64) (float64, float64) { return 0, 1 - as },
	SrcAtop: func(as, ab float64) (float64, float64) { return ab, 1 - as },
	DstAtop: func(as, ab float64) (float64, float64) { return 1 - ab, as },
	Xor:     func(as, ab float64) (float64, float64) { return 1 - ab, 1 - as },
}

// Composite holds the currently active composition operator.
type Composite struct {
	current Operator
}

// InitOp returns a compositor using the source-over-destination operator.
func InitOp() *Composite {
	return &Composite{current: SrcOver}
}

// Set activates one of the supported composition operators.
func (op *Composite) Set(cop Operator) error {
	if _, ok := fractions[cop]; !ok {
		return fmt.Errorf("unsupported composite operation: %q", cop)
	}
	op.current = cop
	return nil
}

// Compose mixes a single source pixel with its backdrop.
func (op *Composite) Compose(src, dst color.Color) color.NRGBA {
	rs, gs, bs, as := normalize(src)
	rb, gb, bb, ab := normalize(dst)

	fa, fb := fractions[op.current](as, ab)

	// The channels returned by normalize are alpha premultiplied.
	a := fa*as + fb*ab
	if a == 0 {
		return color.NRGBA{}
	}
	r := (fa*rs + fb*rb) / a
	g := (fa*gs + fb*gb) / a
	b := (fa*bs + fb*bb) / a

	return color.NRGBA{
		R: toUint8(r),
		G: toUint8(g),
		B: toUint8(b),
		A: toUint8(a),
	}
}

// normalize returns the premultiplied channels of c in the [0, 1] range.
func normalize(c color.Color) (r, g, b, a float64) {
	r32, g32, b32, a32 := c.RGBA()
	return float64(r32) / 0xffff, float64(g32) / 0xffff, float64(b32) / 0xffff, float64(a32) / 0xffff
}

func toUint8(v float64) uint8 {
	return uint8(utils.Clamp(v, 0, 1)*0xff + 0.5)
}
