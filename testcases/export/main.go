// Command export writes the generated geometry of all test cases to JSON,
// for comparison with other chart implementations. With -html, it also
// writes an interactive scatter preview of the generated points.
// Run from the module root directory.
package main

import (
	"encoding/json"
	"flag"
	"log"
	"maps"
	"os"
	"path/filepath"
	"slices"

	"seehuhn.de/go/geom/path"

	"seehuhn.de/go/chartgeom/testcases"
)

func main() {
	out := flag.String("out", "testdata/testcases.json", "output file")
	htmlOut := flag.String("html", "", "optional HTML preview file")
	flag.Parse()
	log.SetFlags(0)

	var doc struct {
		TestCases []jsonTestCase `json:"testcases"`
	}
	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			jtc, err := toJSON(category, tc)
			if err != nil {
				log.Fatalf("export: %v", err)
			}
			doc.TestCases = append(doc.TestCases, jtc)
		}
	}

	if err := writeJSON(*out, doc); err != nil {
		log.Fatalf("export: %v", err)
	}
	log.Printf("wrote %d test cases to %s", len(doc.TestCases), *out)

	if *htmlOut != "" {
		if err := writePreview(*htmlOut, testcases.All); err != nil {
			log.Fatalf("export: %v", err)
		}
		log.Printf("wrote preview to %s", *htmlOut)
	}
}

func writeJSON(fname string, v any) (err error) {
	if err := os.MkdirAll(filepath.Dir(fname), 0755); err != nil {
		return err
	}
	f, err := os.Create(fname)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

type jsonTestCase struct {
	Name      string        `json:"name"`
	Width     int           `json:"width"`
	Height    int           `json:"height"`
	Kind      string        `json:"kind"`
	Points    [][]float64   `json:"points"`
	Path      []jsonSegment `json:"path"`
	Op        string        `json:"op"`
	LineWidth float64       `json:"line_width,omitempty"`
	LineCap   string        `json:"line_cap,omitempty"`
	LineJoin  string        `json:"line_join,omitempty"`
}

type jsonSegment struct {
	Cmd string      `json:"cmd"`
	Pts [][]float64 `json:"pts"`
}

func toJSON(category string, tc testcases.TestCase) (jsonTestCase, error) {
	pts, err := tc.Points()
	if err != nil {
		return jsonTestCase{}, err
	}
	p, err := tc.Path()
	if err != nil {
		return jsonTestCase{}, err
	}

	jtc := jsonTestCase{
		Name:   category + "_" + tc.Name,
		Width:  tc.Width,
		Height: tc.Height,
		Points: make([][]float64, len(pts)),
		Path:   pathToJSON(p),
	}
	for i, pt := range pts {
		jtc.Points[i] = []float64{pt.X, pt.Y}
	}

	switch g := tc.Geom.(type) {
	case testcases.Scatter:
		jtc.Kind = "scatter"
	case testcases.Chart:
		jtc.Kind = "line"
		if g.Closed {
			jtc.Kind = "area"
		}
	}

	switch op := tc.Op.(type) {
	case testcases.Fill:
		jtc.Op = "fill"
	case testcases.Stroke:
		jtc.Op = "stroke"
		jtc.LineWidth = op.Width
		jtc.LineCap = op.Cap.String()
		jtc.LineJoin = op.Join.String()
	}
	return jtc, nil
}

func pathToJSON(p *path.Data) []jsonSegment {
	var segs []jsonSegment
	k := 0
	for _, cmd := range p.Cmds {
		var seg jsonSegment
		var n int
		switch cmd {
		case path.CmdMoveTo:
			seg.Cmd, n = "M", 1
		case path.CmdLineTo:
			seg.Cmd, n = "L", 1
		case path.CmdQuadTo:
			seg.Cmd, n = "Q", 2
		case path.CmdCubeTo:
			seg.Cmd, n = "C", 3
		case path.CmdClose:
			seg.Cmd = "Z"
		}
		seg.Pts = make([][]float64, n)
		for i := range n {
			c := p.Coords[k+i]
			seg.Pts[i] = []float64{c.X, c.Y}
		}
		k += n
		segs = append(segs, seg)
	}
	return segs
}
