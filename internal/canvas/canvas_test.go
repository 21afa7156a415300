package canvas

import (
	"image/color"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kafatopu/internal/shape"
)

var (
	red   = color.RGBA{R: 255, A: 255}
	black = color.RGBA{A: 255}
)

func drawnPixels(c *Canvas, clr color.RGBA) map[shape.Point]bool {
	set := map[shape.Point]bool{}
	for y := 0; y < c.Height(); y++ {
		for x := 0; x < c.Width(); x++ {
			if c.At(x, y) == clr {
				set[shape.Pt(int32(x), int32(y))] = true
			}
		}
	}
	return set
}

func TestCanvasClear(t *testing.T) {
	c := New(4, 3)
	assert.Equal(t, color.RGBA{}, c.At(1, 1))
	c.Clear(black)
	assert.Len(t, drawnPixels(c, black), 12)
	assert.Len(t, c.Pix(), 4*3*4)
}

func TestCanvasDrawLines(t *testing.T) {
	tests := []struct {
		name   string
		points []shape.Point
		want   []shape.Point
	}{
		{"empty", nil, nil},
		{"single point", []shape.Point{shape.Pt(2, 3)}, []shape.Point{shape.Pt(2, 3)}},
		{
			"horizontal",
			[]shape.Point{shape.Pt(1, 1), shape.Pt(4, 1)},
			[]shape.Point{shape.Pt(1, 1), shape.Pt(2, 1), shape.Pt(3, 1), shape.Pt(4, 1)},
		},
		{
			"diagonal",
			[]shape.Point{shape.Pt(3, 3), shape.Pt(0, 0)},
			[]shape.Point{shape.Pt(0, 0), shape.Pt(1, 1), shape.Pt(2, 2), shape.Pt(3, 3)},
		},
		{
			"connected",
			[]shape.Point{shape.Pt(0, 0), shape.Pt(0, 2), shape.Pt(2, 2)},
			[]shape.Point{shape.Pt(0, 0), shape.Pt(0, 1), shape.Pt(0, 2), shape.Pt(1, 2), shape.Pt(2, 2)},
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			c := New(8, 8)
			c.Clear(black)
			c.SetDrawColor(red)
			require.NoError(t, c.DrawLines(tc.points))

			got := drawnPixels(c, red)
			assert.Len(t, got, len(tc.want))
			for _, p := range tc.want {
				assert.True(t, got[p], "missing %v", p)
			}
		})
	}
}

func TestCanvasClipsOutOfBounds(t *testing.T) {
	c := New(5, 5)
	c.SetDrawColor(red)
	require.NoError(t, c.DrawLines([]shape.Point{shape.Pt(-3, 2), shape.Pt(8, 2)}))
	got := drawnPixels(c, red)
	assert.Len(t, got, 5)
	for x := int32(0); x < 5; x++ {
		assert.True(t, got[shape.Pt(x, 2)])
	}
	assert.Equal(t, color.RGBA{}, c.At(-1, 2))
	assert.Equal(t, color.RGBA{}, c.At(5, 2))
}

func TestCanvasRendersTriangle(t *testing.T) {
	c := New(16, 16)
	tri := shape.Triangle{Color: red, P1: shape.Pt(0, 0), P2: shape.Pt(10, 0), P3: shape.Pt(5, 10)}
	require.NoError(t, tri.Render(c))

	got := drawnPixels(c, red)
	for _, p := range tri.Rasterize() {
		assert.True(t, got[p], "sample %v not drawn", p)
	}
	// The first row joins its two samples; the bottom vertex row is excluded.
	assert.True(t, got[shape.Pt(5, 0)])
	assert.True(t, got[shape.Pt(5, 9)])
	assert.False(t, got[shape.Pt(5, 10)])
}

func TestVectorSurface(t *testing.T) {
	v := NewVector(64, 64)
	v.Clear(black)
	d := shape.Disc{Center: shape.Pt(32, 32), Radius: 12, Color: red}
	require.NoError(t, d.Render(v))
	require.NoError(t, v.DrawLines(nil))
	require.NoError(t, v.DrawLines([]shape.Point{shape.Pt(1, 1)}))

	img := v.Image()
	assert.Equal(t, 64, img.Bounds().Dx())
	r, g, b, _ := img.At(32, 32).RGBA()
	assert.Greater(t, r, uint32(0x8000))
	assert.Zero(t, g)
	assert.Zero(t, b)
	r, _, _, _ = img.At(1, 1).RGBA()
	assert.Equal(t, uint32(0xffff), r)
	r, _, _, a := img.At(60, 4).RGBA()
	assert.Zero(t, r)
	assert.Equal(t, uint32(0xffff), a)
}

func TestSavePNG(t *testing.T) {
	c := New(8, 8)
	c.Clear(black)
	path := filepath.Join(t.TempDir(), "frame.png")
	require.NoError(t, SavePNG(path, c.Image()))
	assert.FileExists(t, path)

	err := SavePNG(filepath.Join(t.TempDir(), "missing", "frame.png"), c.Image())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "frame.png")
}
