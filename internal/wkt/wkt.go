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

// Package wkt decodes well-known text into planar geometries.
package wkt

import (
	"fmt"

	"github.com/peterstace/simplefeatures/geom"

	"github.com/akhenakh/topology/planar"
)

// Parse decodes a POINT, LINESTRING or POLYGON. Other geometry types are
// rejected. Coordinates are kept exactly as written, including ring
// orientation.
func Parse(s string) (planar.Geometry, error) {
	g, err := geom.UnmarshalWKT(s)
	if err != nil {
		return nil, err
	}
	switch g.Type() {
	case geom.TypePoint:
		xy, ok := g.MustAsPoint().XY()
		if !ok {
			return nil, fmt.Errorf("empty point is not supported")
		}
		return planar.Point{Coord: planar.Coord{X: xy.X, Y: xy.Y}}, nil
	case geom.TypeLineString:
		return planar.LineString(coords(g.MustAsLineString().Coordinates())), nil
	case geom.TypePolygon:
		poly := g.MustAsPolygon()
		if poly.IsEmpty() {
			return planar.Polygon{}, nil
		}
		out := planar.Polygon{Shell: coords(poly.ExteriorRing().Coordinates())}
		for i := 0; i < poly.NumInteriorRings(); i++ {
			out.Holes = append(out.Holes, coords(poly.InteriorRingN(i).Coordinates()))
		}
		return out, nil
	}
	return nil, fmt.Errorf("unsupported geometry type %v", g.Type())
}

// MustParse is like Parse but panics on error.
func MustParse(s string) planar.Geometry {
	g, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return g
}

func coords(seq geom.Sequence) []planar.Coord {
	n := seq.Length()
	if n == 0 {
		return nil
	}
	out := make([]planar.Coord, n)
	for i := 0; i < n; i++ {
		xy := seq.GetXY(i)
		out[i] = planar.Coord{X: xy.X, Y: xy.Y}
	}
	return out
}
