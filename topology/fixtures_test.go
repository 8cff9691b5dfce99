// Copyright 2023 Google Inc. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS-IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package topology

import (
	"strconv"
	"testing"

	"github.com/akhenakh/topology/assemble"
	"github.com/akhenakh/topology/feature"
	"github.com/akhenakh/topology/internal/wkt"
	"github.com/akhenakh/topology/lineedit"
	"github.com/akhenakh/topology/planar"
)

// sequence returns a deterministic local id generator.
func sequence(prefix string) func() string {
	n := 0
	return func() string {
		n++
		return prefix + strconv.Itoa(n)
	}
}

func newTestEngine() *Engine {
	asm := assemble.NewAssembler(&assemble.Options{NewID: sequence("a")})
	return NewEngine(asm, lineedit.New(), &Options{NewID: sequence("n")})
}

func parseLine(id, s string) feature.Feature {
	return feature.New(wkt.MustParse(s), id)
}

func parsePolygon(s string) planar.Polygon {
	return wkt.MustParse(s).(planar.Polygon)
}

func parseRing(s string) planar.Ring {
	return planar.Ring(wkt.MustParse(s).(planar.LineString))
}

// Two lines meeting at (0 0) and (10 10) forming the square shell of "p".
func makeTwoLinePolygon() (l1, l2, poly feature.Feature) {
	l1 = parseLine("1", "LINESTRING (0 0, 10 0, 10 10)")
	l2 = parseLine("2", "LINESTRING (10 10, 0 10, 0 0)")
	poly = feature.New(parsePolygon("POLYGON ((0 0, 10 0, 10 10, 0 10, 0 0))"), "p").
		WithReferenceIDs([]string{"1", "2"}, nil)
	return l1, l2, poly
}

// A single closed line "8" forming the shell of "p8".
func makeClosedLinePolygon() (eight, poly feature.Feature) {
	eight = parseLine("8", "LINESTRING (0 0, 10 0, 10 10, 0 10, 0 0)")
	poly = feature.New(parsePolygon("POLYGON ((0 0, 10 0, 10 10, 0 10, 0 0))"), "p8").
		WithReferenceIDs([]string{"8"}, nil)
	return eight, poly
}

const (
	// Clockwise hole line.
	cwHoleWKT = "LINESTRING (2 2, 2 4, 4 4, 4 2, 2 2)"
	// Counter-clockwise hole line, referenced reversed.
	ccwHoleWKT = "LINESTRING (6 6, 8 6, 8 8, 6 8, 6 6)"
)

// "ph": the "8" shell with holes "h1" (clockwise) and "h2" (counter-clockwise
// line, referenced reversed).
func makeHolePolygon() (eight, h1, h2, poly feature.Feature) {
	eight, _ = makeClosedLinePolygon()
	h1 = parseLine("h1", cwHoleWKT)
	h2 = parseLine("h2", ccwHoleWKT)
	poly = feature.New(parsePolygon(
		"POLYGON ((0 0, 10 0, 10 10, 0 10, 0 0), (2 2, 2 4, 4 4, 4 2, 2 2), (6 6, 6 8, 8 8, 8 6, 6 6))"), "ph").
		WithReferenceIDs([]string{"8"}, [][]string{{"h1"}, {"-h2"}})
	return eight, h1, h2, poly
}

// "p1h": the "8" shell with the single hole "h1".
func makeOneHolePolygon() (eight, h1, poly feature.Feature) {
	eight, _ = makeClosedLinePolygon()
	h1 = parseLine("h1", cwHoleWKT)
	poly = feature.New(parsePolygon(
		"POLYGON ((0 0, 10 0, 10 10, 0 10, 0 0), (2 2, 2 4, 4 4, 4 2, 2 2))"), "p1h").
		WithReferenceIDs([]string{"8"}, [][]string{{"h1"}})
	return eight, h1, poly
}

func lineByID(t *testing.T, fs []feature.Feature, id string) planar.LineString {
	t.Helper()
	f, ok := feature.Find(fs, id)
	if !ok {
		t.Fatalf("no feature %q in %v", id, fs)
	}
	ls, ok := f.LineString()
	if !ok {
		t.Fatalf("feature %q is not a line", id)
	}
	return ls
}
