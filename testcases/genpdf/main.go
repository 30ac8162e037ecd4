// seehuhn.de/go/chartgeom - geometry helpers for chart rendering
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Command genpdf draws all chart test cases as PDF files, together with
// PNG previews produced by the package renderer.
package main

import (
	"flag"
	"fmt"
	"image"
	"image/png"
	"log"
	"maps"
	"os"
	"path/filepath"
	"slices"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/document"
	"seehuhn.de/go/pdf/graphics/color"

	"seehuhn.de/go/chartgeom"
	"seehuhn.de/go/chartgeom/testcases"
)

func main() {
	outDir := flag.String("out", "testdata/preview", "output directory")
	noPNG := flag.Bool("nopng", false, "only write PDF files")
	flag.Parse()
	log.SetFlags(0)

	if err := os.MkdirAll(*outDir, 0755); err != nil {
		log.Fatal(err)
	}

	count := 0
	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			name := category + "_" + tc.Name
			pdfPath := filepath.Join(*outDir, name+".pdf")
			pngPath := filepath.Join(*outDir, name+".png")

			if err := generatePDF(tc, pdfPath); err != nil {
				log.Fatalf("%s: %v", name, err)
			}
			if !*noPNG {
				if err := renderPNG(tc, pngPath); err != nil {
					log.Fatalf("%s: %v", name, err)
				}
			}
			count++
		}
	}
	log.Printf("wrote %d test cases to %s", count, *outDir)
}

func generatePDF(tc testcases.TestCase, pdfPath string) error {
	p, err := tc.Path()
	if err != nil {
		return err
	}

	// Page size in points (1 point = 1 pixel at 72 DPI)
	paper := &pdf.Rectangle{
		URx: float64(tc.Width),
		URy: float64(tc.Height),
	}

	page, err := document.CreateSinglePage(pdfPath, paper, pdf.V1_7, nil)
	if err != nil {
		return err
	}

	// Black background, so that white paint shows coverage.
	page.SetFillColor(color.DeviceGray(0))
	page.Rectangle(0, 0, float64(tc.Width), float64(tc.Height))
	page.Fill()

	// PDF origin is bottom-left; chart coordinates have y pointing down.
	page.Transform(matrix.Matrix{1, 0, 0, -1, 0, float64(tc.Height)})

	page.SetFillColor(color.DeviceGray(1))
	page.SetStrokeColor(color.DeviceGray(1))

	// Stroke parameters must be set before path construction.
	if op, ok := tc.Op.(testcases.Stroke); ok {
		page.SetLineWidth(op.Width)
		page.SetLineCap(op.Cap)
		page.SetLineJoin(op.Join)
	}

	// PDF has no quadratic curves, convert them to cubic ones.
	for cmd, pts := range p.Iter().ToCubic() {
		switch cmd {
		case path.CmdMoveTo:
			page.MoveTo(pts[0].X, pts[0].Y)
		case path.CmdLineTo:
			page.LineTo(pts[0].X, pts[0].Y)
		case path.CmdCubeTo:
			page.CurveTo(pts[0].X, pts[0].Y, pts[1].X, pts[1].Y, pts[2].X, pts[2].Y)
		case path.CmdClose:
			page.ClosePath()
		}
	}

	switch op := tc.Op.(type) {
	case testcases.Fill:
		page.Fill()
	case testcases.Stroke:
		page.Stroke()
	default:
		page.Close()
		return fmt.Errorf("unknown operation %T", op)
	}

	return page.Close()
}

func renderPNG(tc testcases.TestCase, pngPath string) (err error) {
	img := image.NewGray(image.Rect(0, 0, tc.Width, tc.Height))
	if err := chartgeom.RenderExample(tc, img.Pix, tc.Width, tc.Height, img.Stride); err != nil {
		return err
	}

	f, err := os.Create(pngPath)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	return png.Encode(f, img)
}
