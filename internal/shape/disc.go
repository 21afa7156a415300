package shape

import (
	"fmt"
	"image/color"
)

// sweepSteps is the number of one-degree orientations drawn per disc.
const sweepSteps = 360

// Disc is a filled circle approximated by a swept wedge. Coordinates that
// would leave the int32 range clamp to its bounds, so a disc touching the
// range limits renders flattened against them.
type Disc struct {
	Center Point
	Radius uint32
	Color  color.RGBA
}

// Wedge returns the reference triangle: a one pixel wide sliver from the
// center down to the bottom of the disc's bounding box.
func (d Disc) Wedge() Triangle {
	r := saturate(int64(d.Radius))
	return Triangle{
		Color: d.Color,
		P1:    d.Center,
		P2:    d.Center.Add(Point{X: 0, Y: r}),
		P3:    d.Center.Add(Point{X: -1, Y: r}),
	}
}

// Render sweeps the wedge through a full turn around the center, drawing
// the unrotated wedge first and then one copy per degree from 1 to 359.
// The first draw failure stops the sweep; wedges already drawn remain.
func (d Disc) Render(s Surface) error {
	wedge := d.Wedge()
	if err := wedge.Render(s); err != nil {
		return fmt.Errorf("disc at %v: %w", d.Center, err)
	}
	for angle := 1; angle < sweepSteps; angle++ {
		if err := wedge.Rotate(d.Center, float64(angle)).Render(s); err != nil {
			return fmt.Errorf("disc at %v, %d degrees: %w", d.Center, angle, err)
		}
	}
	return nil
}
