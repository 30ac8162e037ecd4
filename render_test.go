package chartgeom

import (
	"errors"
	"image"
	"image/color"
	"image/png"
	"maps"
	"os"
	"path/filepath"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"

	"seehuhn.de/go/chartgeom/testcases"
)

func TestRenderAll(t *testing.T) {
	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			name := category + "_" + tc.Name
			t.Run(name, func(t *testing.T) {
				w, h := tc.Width, tc.Height
				buf := make([]byte, w*h)
				require.NoError(t, RenderExample(tc, buf, w, h, w))

				inked := 0
				for _, c := range buf {
					if c > 0 {
						inked++
					}
				}
				if inked == 0 || inked == w*h {
					writeDebugImage(name, buf, w, h)
					t.Errorf("%d of %d pixels covered", inked, w*h)
				}
			})
		}
	}
}

// pairCase returns the two-record chart from the test case table.
func pairCase(t *testing.T, category string) testcases.TestCase {
	t.Helper()
	for _, tc := range testcases.All[category] {
		if tc.Name == "pair" {
			return tc
		}
	}
	t.Fatalf("no pair case in category %q", category)
	return testcases.TestCase{}
}

// The pair chart maps (3, 7) onto a 64x64 canvas with a margin of 4: the
// line runs from (4, 36) to (60, 4), and the baseline is at y=60.

func TestRenderArea(t *testing.T) {
	tc := pairCase(t, "area")
	buf := make([]byte, 64*64)
	require.NoError(t, RenderExample(tc, buf, 64, 64, 64))

	at := func(x, y int) byte { return buf[y*64+x] }
	assert.GreaterOrEqual(t, at(10, 50), byte(250), "below the line")
	assert.GreaterOrEqual(t, at(55, 10), byte(250), "below the line, right")
	assert.Equal(t, byte(0), at(10, 20), "above the line")
	assert.Equal(t, byte(0), at(1, 50), "left of the chart")
	assert.Equal(t, byte(0), at(62, 50), "right of the chart")
	assert.Equal(t, byte(0), at(30, 62), "below the baseline")
}

func TestRenderLine(t *testing.T) {
	tc := pairCase(t, "line")
	buf := make([]byte, 64*64)
	require.NoError(t, RenderExample(tc, buf, 64, 64, 64))

	at := func(x, y int) byte { return buf[y*64+x] }
	assert.Greater(t, int(at(32, 19))+int(at(32, 20)), 128, "on the line")
	assert.Equal(t, byte(0), at(32, 40), "below the line")
	assert.Equal(t, byte(0), at(32, 5), "above the line")
}

func TestRenderDots(t *testing.T) {
	for _, tc := range testcases.All["scatter"] {
		w, h := tc.Width, tc.Height
		buf := make([]byte, w*h)
		require.NoError(t, RenderExample(tc, buf, w, h, w))

		pts, err := tc.Points()
		require.NoError(t, err)
		for _, p := range pts {
			c := buf[int(p.Y)*w+int(p.X)]
			assert.GreaterOrEqual(t, c, byte(200), "%s: dot at %v", tc.Name, p)
		}
	}
}

// TestRenderRoundJoins checks that overlapping join discs and segments do
// not cancel each other out.
func TestRenderRoundJoins(t *testing.T) {
	var tc testcases.TestCase
	for _, c := range testcases.All["line"] {
		if op, ok := c.Op.(testcases.Stroke); ok && op.Join == graphics.LineJoinRound {
			tc = c
		}
	}
	require.NotEmpty(t, tc.Name, "no round-join case")

	w, h := tc.Width, tc.Height
	buf := make([]byte, w*h)
	require.NoError(t, RenderExample(tc, buf, w, h, w))

	pts, err := tc.Points()
	require.NoError(t, err)
	for _, p := range pts {
		x, y := int(p.X), int(p.Y)
		if x < 0 || x >= w || y < 0 || y >= h {
			continue
		}
		assert.GreaterOrEqual(t, buf[y*w+x], byte(200), "vertex %v", p)
	}
}

func TestRenderStride(t *testing.T) {
	tc := pairCase(t, "area")
	const stride = 80
	buf := make([]byte, 63*stride+64)
	require.NoError(t, RenderExample(tc, buf, 64, 64, stride))

	for y := range 63 {
		for x := 64; x < stride; x++ {
			require.Zero(t, buf[y*stride+x], "padding at (%d,%d) written", x, y)
		}
	}
	assert.GreaterOrEqual(t, buf[50*stride+10], byte(250))
}

func TestRenderErrors(t *testing.T) {
	tc := pairCase(t, "area")
	err := RenderExample(tc, make([]byte, 10), 64, 64, 64)
	assert.True(t, errors.Is(err, errShortBuffer), "got %v", err)

	bad := pairCase(t, "line")
	bad.Op = testcases.Stroke{Width: 0}
	assert.Error(t, RenderExample(bad, make([]byte, 64*64), 64, 64, 64))

	bad.Op = nil
	assert.Error(t, RenderExample(bad, make([]byte, 64*64), 64, 64, 64))
}

func TestSignedArea(t *testing.T) {
	square := []vec.Vec2{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 1}}
	assert.InDelta(t, 1, signedArea(square), 1e-12)
	slices.Reverse(square)
	assert.InDelta(t, -1, signedArea(square), 1e-12)
}

func TestDedup(t *testing.T) {
	pts := []vec.Vec2{{X: 0, Y: 0}, {X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 0}, {X: 0, Y: 0}}
	want := []vec.Vec2{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 0, Y: 0}}
	assert.Equal(t, want, dedup(pts))
}

func TestFlattenEndpoints(t *testing.T) {
	p0 := vec.Vec2{X: 0, Y: 0}
	p3 := vec.Vec2{X: 30, Y: 0}

	var got []vec.Vec2
	emit := func(_, to vec.Vec2) { got = append(got, to) }

	flattenCubic(p0, vec.Vec2{X: 0, Y: 20}, vec.Vec2{X: 30, Y: 20}, p3, emit)
	require.Greater(t, len(got), 4, "curve flattened too coarsely")
	assert.Equal(t, p3, got[len(got)-1])

	got = got[:0]
	flattenQuadratic(p0, vec.Vec2{X: 15, Y: 30}, p3, emit)
	require.Greater(t, len(got), 4)
	assert.Equal(t, p3, got[len(got)-1])

	got = got[:0]
	flattenQuadratic(p0, vec.Vec2{X: 15, Y: 0}, p3, emit)
	assert.Len(t, got, 1, "straight curve needs one segment")
}

// writeDebugImage saves a coverage buffer for inspection after a failure.
func writeDebugImage(name string, buf []byte, w, h int) {
	os.MkdirAll("debug", 0755)

	img := image.NewGray(image.Rect(0, 0, w, h))
	for y := range h {
		for x := range w {
			img.SetGray(x, y, color.Gray{Y: buf[y*w+x]})
		}
	}

	f, err := os.Create(filepath.Join("debug", name+".png"))
	if err != nil {
		return
	}
	defer f.Close()
	png.Encode(f, img)
}
