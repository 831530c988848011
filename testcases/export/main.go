// Command export writes the test case definitions to JSON, so that
// reference renderings can be produced by independent tools.
// Run from the module root directory.
package main

import (
	"encoding/json"
	"image"
	"maps"
	"os"
	"slices"

	"seehuhn.de/go/scope"
	"seehuhn.de/go/scope/testcases"
)

func main() {
	var out struct {
		TestCases []jsonTestCase `json:"testcases"`
	}

	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			out.TestCases = append(out.TestCases, toJSON(category, tc))
		}
	}

	if err := os.MkdirAll("testdata", 0755); err != nil {
		panic(err)
	}
	f, err := os.Create("testdata/testcases.json")
	if err != nil {
		panic(err)
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		panic(err)
	}
}

type jsonTestCase struct {
	Name       string       `json:"name"`
	Width      int          `json:"width"`
	Height     int          `json:"height"`
	Channels   int          `json:"channels"`
	SampleRate int          `json:"sample_rate"`
	Config     scope.Config `json:"config"`
	Samples    []float32    `json:"samples"`
	Lit        [][2]int     `json:"lit,omitempty"`
	Dark       [][2]int     `json:"dark,omitempty"`
}

func toJSON(category string, tc testcases.TestCase) jsonTestCase {
	return jsonTestCase{
		Name:       category + "_" + tc.Name,
		Width:      tc.Width,
		Height:     tc.Height,
		Channels:   tc.Block.Format.NumChannels,
		SampleRate: tc.Block.Format.SampleRate,
		Config: scope.Config{
			Color:          scope.Color(tc.Color),
			LeftHorizontal: tc.LeftHorizontal,
		},
		Samples: tc.Block.Data,
		Lit:     pointsToJSON(tc.Lit),
		Dark:    pointsToJSON(tc.Dark),
	}
}

func pointsToJSON(pts []image.Point) [][2]int {
	var res [][2]int
	for _, p := range pts {
		res = append(res, [2]int{p.X, p.Y})
	}
	return res
}
